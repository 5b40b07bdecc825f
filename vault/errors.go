package vault

import (
	"fmt"

	"github.com/veridian-network/veridian-token-contracts/ledger"
)

var (
	ErrNoBeneficiaries      = fmt.Errorf("%w: no beneficiaries provided", ledger.ErrInvalidArgument)
	ErrVestingManagerNotSet = fmt.Errorf("%w: vesting manager is not configured", ledger.ErrStateConflict)
)

func ErrArraysLengthMismatch(length1, length2 int) error {
	return fmt.Errorf("%w: beneficiaries and amounts length mismatch: %d != %d",
		ledger.ErrInvalidArgument, length1, length2)
}

func ErrInvalidAllocationID(id uint64) error {
	return fmt.Errorf("%w: invalid allocation id %d", ledger.ErrInvalidArgument, id)
}

func ErrAllocationAlreadyRevoked(id uint64) error {
	return fmt.Errorf("%w: allocation %d is already revoked", ledger.ErrStateConflict, id)
}

func ErrInvalidBeneficiaryInBatch(index int) error {
	return fmt.Errorf("%w: beneficiary at index %d is the zero address", ledger.ErrInvalidArgument, index)
}

func ErrInvalidAmountInBatch(index int, value string) error {
	return fmt.Errorf("%w: amount at index %d is invalid: %q", ledger.ErrInvalidArgument, index, value)
}

func ErrVaultPaused(op string) error {
	return fmt.Errorf("%w: %s is blocked while the vault is paused", ledger.ErrPaused, op)
}

func ErrVaultNotPaused() error {
	return fmt.Errorf("%w: vault is not paused", ledger.ErrStateConflict)
}
