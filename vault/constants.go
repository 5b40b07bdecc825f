package vault

const (
	allocationCounterKey = "allocation_counter"
	airdropCounterKey    = "airdrop_counter"
	vestingManagerKey    = "vesting_manager"
	pausedKey            = "vault_paused"

	allocationKeyPrefix      = "allocation"
	userAllocationsKeyPrefix = "userallocations"

	allocationCreatedEvent        = "AllocationCreated"
	allocationRevokedEvent        = "AllocationRevoked"
	airdropExecutedEvent          = "AirdropExecuted"
	vestingManagerConfiguredEvent = "VestingManagerConfigured"
	vaultPausedEvent              = "VaultPaused"
	vaultUnpausedEvent            = "VaultUnpaused"
)
