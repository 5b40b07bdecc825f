package token

const (
	TokenName   = "Veridian"
	TokenSymbol = "VRD"

	// MaxSupply is 1_000_000_000 tokens scaled by 10^18. Fixed at
	// initialization, never changed.
	MaxSupply = "1000000000000000000000000000"

	nameKey        = "token_name"
	symbolKey      = "token_symbol"
	totalSupplyKey = "token_total_supply"
	pausedKey      = "token_paused"
	initializedKey = "token_initialized"

	balanceKeyPrefix = "balance"

	initializedEvent = "Initialized"
	mintEvent        = "Mint"
	burnEvent        = "Burn"
	transferEvent    = "Transfer"
	pausedEvent      = "Paused"
	unpausedEvent    = "Unpaused"
)
