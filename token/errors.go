package token

import (
	"fmt"
	"math/big"

	"github.com/veridian-network/veridian-token-contracts/ledger"
)

func ErrCapExceeded(requested, available *big.Int) error {
	return fmt.Errorf("%w: mint would breach max supply: requested=%s, available=%s",
		ledger.ErrCapacityExceeded, requested.String(), available.String())
}

func ErrInsufficientBalance(account string, balance, needed *big.Int) error {
	return fmt.Errorf("%w: insufficient balance for %s: balance=%s, needed=%s",
		ledger.ErrTransferFailure, account, balance.String(), needed.String())
}

func ErrBatchLengthMismatch(accounts, amounts int) error {
	return fmt.Errorf("%w: mint batch accounts and amounts length mismatch: %d != %d",
		ledger.ErrInvalidArgument, accounts, amounts)
}

func ErrTokenPaused(op string) error {
	return fmt.Errorf("%w: %s is blocked while the token is paused", ledger.ErrPaused, op)
}

func ErrNotPausedConflict() error {
	return fmt.Errorf("%w: token is not paused", ledger.ErrStateConflict)
}

func ErrAlreadyInitialized() error {
	return fmt.Errorf("%w: token ledger is already initialized", ledger.ErrStateConflict)
}

func ErrNotInitialized() error {
	return fmt.Errorf("%w: token ledger is not initialized", ledger.ErrStateConflict)
}
