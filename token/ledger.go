package token

import (
	"net/http"

	"github.com/veridian-network/veridian-token-contracts/ledger"
)

// Ledger owns balances and the supply cap. It holds no references to the
// ledgers built on top of it and no state of its own; the host may
// simulate concurrent proposals against one instance.
type Ledger struct{}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Initialize records the token metadata and grants every role to the
// deploying identity. It runs exactly once.
func (l *Ledger) Initialize(ctx ledger.TransactionContextInterface) error {
	initialized, err := isInitialized(ctx)
	if err != nil {
		return err
	}
	if initialized {
		return ErrAlreadyInitialized()
	}

	deployer, err := ledger.GetUserID(ctx)
	if err != nil {
		return err
	}

	if err := ctx.PutStateWithoutKYC(nameKey, []byte(TokenName)); err != nil {
		return ledger.NewCustomError(http.StatusInternalServerError, "failed to set token name", err)
	}
	if err := ctx.PutStateWithoutKYC(symbolKey, []byte(TokenSymbol)); err != nil {
		return ledger.NewCustomError(http.StatusInternalServerError, "failed to set token symbol", err)
	}
	if err := ctx.PutStateWithoutKYC(initializedKey, []byte{1}); err != nil {
		return ledger.NewCustomError(http.StatusInternalServerError, "failed to set initialized flag", err)
	}

	if err := ledger.SeedRoles(ctx, deployer); err != nil {
		return err
	}

	return emitEvent(ctx, initializedEvent, InitializedEvent{
		Name:      TokenName,
		Symbol:    TokenSymbol,
		MaxSupply: MaxSupply,
		Deployer:  deployer,
	})
}

// Mint credits newly issued tokens to an account. Signer needs RoleMinter.
func (l *Ledger) Mint(ctx ledger.TransactionContextInterface, to string, amount string) error {
	if _, err := ledger.RequireRole(ctx, ledger.RoleMinter); err != nil {
		return err
	}

	value, err := ledger.ParseAmount(amount)
	if err != nil {
		return err
	}

	return MintUtils(ctx, to, value)
}

// Burn destroys tokens from the signer's own balance.
func (l *Ledger) Burn(ctx ledger.TransactionContextInterface, amount string) error {
	signer, err := ledger.GetUserID(ctx)
	if err != nil {
		return err
	}

	value, err := ledger.ParseAmount(amount)
	if err != nil {
		return err
	}

	return BurnUtils(ctx, signer, value)
}

// Transfer moves tokens from the signer to another account.
func (l *Ledger) Transfer(ctx ledger.TransactionContextInterface, to string, amount string) error {
	signer, err := ledger.GetUserID(ctx)
	if err != nil {
		return err
	}

	value, err := ledger.ParseAmount(amount)
	if err != nil {
		return err
	}

	return TransferUtils(ctx, signer, to, value)
}

// Pause blocks mint, burn and transfer. Signer needs RolePauser.
func (l *Ledger) Pause(ctx ledger.TransactionContextInterface) error {
	signer, err := ledger.RequireRole(ctx, ledger.RolePauser)
	if err != nil {
		return err
	}

	paused, err := IsPaused(ctx)
	if err != nil {
		return err
	}
	if paused {
		return ErrTokenPaused("pause")
	}

	if err := setPaused(ctx, true); err != nil {
		return err
	}

	return emitEvent(ctx, pausedEvent, PauseEvent{Account: signer})
}

// Unpause lifts a pause. Signer needs RolePauser.
func (l *Ledger) Unpause(ctx ledger.TransactionContextInterface) error {
	signer, err := ledger.RequireRole(ctx, ledger.RolePauser)
	if err != nil {
		return err
	}

	paused, err := IsPaused(ctx)
	if err != nil {
		return err
	}
	if !paused {
		return ErrNotPausedConflict()
	}

	if err := setPaused(ctx, false); err != nil {
		return err
	}

	return emitEvent(ctx, unpausedEvent, PauseEvent{Account: signer})
}

// AuthorizeUpgrade is consulted by the host's upgrade mechanism before a
// logic swap; it succeeds only for RoleUpgrader holders. The swap itself,
// and state continuity across it, are the host's concern.
func (l *Ledger) AuthorizeUpgrade(ctx ledger.TransactionContextInterface) error {
	_, err := ledger.RequireRole(ctx, ledger.RoleUpgrader)
	return err
}

func (l *Ledger) BalanceOf(ctx ledger.TransactionContextInterface, account string) (string, error) {
	balance, err := GetBalance(ctx, account)
	if err != nil {
		return "0", err
	}

	return balance.String(), nil
}

func (l *Ledger) TotalSupply(ctx ledger.TransactionContextInterface) (string, error) {
	supply, err := GetTotalSupply(ctx)
	if err != nil {
		return "0", err
	}

	return supply.String(), nil
}

func (l *Ledger) Name() string {
	return TokenName
}

func (l *Ledger) Symbol() string {
	return TokenSymbol
}

func (l *Ledger) Decimals() uint64 {
	return ledger.Decimals()
}
