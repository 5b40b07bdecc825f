package vault

import (
	"math/big"

	"github.com/veridian-network/veridian-token-contracts/ledger"
	"github.com/veridian-network/veridian-token-contracts/token"
)

// recordAllocation writes a new allocation and appends its id to the
// beneficiary's list. Mint has already succeeded by the time this runs.
func recordAllocation(ctx ledger.TransactionContextInterface, id, airdropID uint64, beneficiary string, amount *big.Int) error {
	allocation := &Allocation{
		ID:          id,
		AirdropID:   airdropID,
		Beneficiary: beneficiary,
		Amount:      amount.String(),
		Revoked:     false,
	}
	if err := SetAllocation(ctx, allocation); err != nil {
		return err
	}

	ids, err := GetUserAllocations(ctx, beneficiary)
	if err != nil {
		return err
	}

	return SetUserAllocations(ctx, beneficiary, append(ids, id))
}

// mintRecipient resolves where allocation mints land: the configured vesting
// manager's holding balance, or the beneficiary directly when none is set.
func mintRecipient(ctx ledger.TransactionContextInterface, beneficiary string) (string, error) {
	manager, err := GetVestingManager(ctx)
	if err != nil {
		return "", err
	}
	if manager == "" {
		return beneficiary, nil
	}

	return manager, nil
}

// RevokeRecord marks an allocation revoked without a role check. The Vesting
// Ledger calls in here when a schedule is revoked; the contract surface
// wraps it with the allocator-role gate. Revocation does not claw back
// minted tokens.
func RevokeRecord(ctx ledger.TransactionContextInterface, id uint64) error {
	if id == 0 {
		return ErrInvalidAllocationID(id)
	}

	allocation, err := GetAllocation(ctx, id)
	if err != nil {
		return err
	}
	if allocation.Revoked {
		return ErrAllocationAlreadyRevoked(id)
	}

	allocation.Revoked = true
	if err := SetAllocation(ctx, allocation); err != nil {
		return err
	}

	return emitEvent(ctx, allocationRevokedEvent, AllocationRevokedEvent{
		AllocationID: id,
		Beneficiary:  allocation.Beneficiary,
		Amount:       allocation.Amount,
	})
}

// availableSupply returns how much may still be minted under the cap.
func availableSupply(ctx ledger.TransactionContextInterface) (*big.Int, error) {
	supply, err := token.GetTotalSupply(ctx)
	if err != nil {
		return nil, err
	}

	return new(big.Int).Sub(token.MaxSupplyAmount(), supply), nil
}
