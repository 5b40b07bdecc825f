package vault

import (
	"math/big"
	"net/http"

	"github.com/veridian-network/veridian-token-contracts/ledger"
	"github.com/veridian-network/veridian-token-contracts/token"
)

// Ledger tracks promises to mint per beneficiary. It mints through the
// Token Ledger within the same transaction; the Token Ledger holds no
// reference back.
type Ledger struct{}

func NewLedger() *Ledger {
	return &Ledger{}
}

// SetVestingManager points allocation mints at the vesting manager's
// holding balance. Signer needs RoleAdmin. The pointer can be changed later.
func (l *Ledger) SetVestingManager(ctx ledger.TransactionContextInterface, address string) error {
	signer, err := ledger.RequireRole(ctx, ledger.RoleAdmin)
	if err != nil {
		return err
	}

	if ledger.IsZeroAddress(address) {
		return ledger.ErrZeroAddress("vesting manager")
	}

	if err := ctx.PutStateWithoutKYC(vestingManagerKey, []byte(address)); err != nil {
		return ledger.NewCustomError(http.StatusInternalServerError, "failed to set vesting manager address", err)
	}

	return emitEvent(ctx, vestingManagerConfiguredEvent, VestingManagerConfiguredEvent{
		VestingManager: address,
		Sender:         signer,
	})
}

// CreateAllocation records a promise of amount to beneficiary and mints it,
// to the vesting manager when one is configured, else to the beneficiary
// directly. Returns the new allocation id. Signer needs RoleAllocator.
func (l *Ledger) CreateAllocation(ctx ledger.TransactionContextInterface, beneficiary string, amount string) (uint64, error) {
	if _, err := ledger.RequireRole(ctx, ledger.RoleAllocator); err != nil {
		return 0, err
	}

	paused, err := IsPaused(ctx)
	if err != nil {
		return 0, err
	}
	if paused {
		return 0, ErrVaultPaused("CreateAllocation")
	}

	if ledger.IsZeroAddress(beneficiary) {
		return 0, ledger.ErrZeroAddress("beneficiary")
	}

	value, err := ledger.ParseAmount(amount)
	if err != nil {
		return 0, err
	}
	if value.Sign() == 0 {
		return 0, ledger.ErrZeroAmount("allocation")
	}

	recipient, err := mintRecipient(ctx, beneficiary)
	if err != nil {
		return 0, err
	}

	// Mint before recording anything so a cap failure leaves no trace.
	if err := token.MintUtils(ctx, recipient, value); err != nil {
		return 0, err
	}

	counter, err := getCounter(ctx, allocationCounterKey)
	if err != nil {
		return 0, err
	}
	id := counter + 1
	if err := setCounter(ctx, allocationCounterKey, id); err != nil {
		return 0, err
	}

	if err := recordAllocation(ctx, id, 0, beneficiary, value); err != nil {
		return 0, err
	}

	err = emitEvent(ctx, allocationCreatedEvent, AllocationCreatedEvent{
		AllocationID: id,
		AirdropID:    0,
		Beneficiary:  beneficiary,
		Amount:       value.String(),
		MintedTo:     recipient,
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// RevokeAllocation marks an allocation revoked. Signer needs RoleAllocator.
// Already-minted tokens stay where they are; clawback, if any, is the
// caller's concern.
func (l *Ledger) RevokeAllocation(ctx ledger.TransactionContextInterface, id uint64) error {
	if _, err := ledger.RequireRole(ctx, ledger.RoleAllocator); err != nil {
		return err
	}

	return RevokeRecord(ctx, id)
}

// ExecuteAirdrop creates one allocation per entry under a shared airdrop id,
// minting each in order. The whole batch is validated, and checked against
// the supply cap, before the first effect. Signer needs RoleAirdropper.
func (l *Ledger) ExecuteAirdrop(ctx ledger.TransactionContextInterface, beneficiaries []string, amounts []string) (uint64, error) {
	if _, err := ledger.RequireRole(ctx, ledger.RoleAirdropper); err != nil {
		return 0, err
	}

	paused, err := IsPaused(ctx)
	if err != nil {
		return 0, err
	}
	if paused {
		return 0, ErrVaultPaused("ExecuteAirdrop")
	}

	if len(beneficiaries) == 0 {
		return 0, ErrNoBeneficiaries
	}
	if len(beneficiaries) != len(amounts) {
		return 0, ErrArraysLengthMismatch(len(beneficiaries), len(amounts))
	}

	values := make([]*big.Int, len(amounts))
	total := big.NewInt(0)
	for i := range beneficiaries {
		if ledger.IsZeroAddress(beneficiaries[i]) {
			return 0, ErrInvalidBeneficiaryInBatch(i)
		}

		value, ok := new(big.Int).SetString(amounts[i], 10)
		if !ok || value.Sign() <= 0 {
			return 0, ErrInvalidAmountInBatch(i, amounts[i])
		}

		values[i] = value
		total.Add(total, value)
	}

	available, err := availableSupply(ctx)
	if err != nil {
		return 0, err
	}
	if total.Cmp(available) > 0 {
		return 0, token.ErrCapExceeded(total, available)
	}

	manager, err := GetVestingManager(ctx)
	if err != nil {
		return 0, err
	}

	airdropCounter, err := getCounter(ctx, airdropCounterKey)
	if err != nil {
		return 0, err
	}
	airdropID := airdropCounter + 1
	if err := setCounter(ctx, airdropCounterKey, airdropID); err != nil {
		return 0, err
	}

	allocationCounter, err := getCounter(ctx, allocationCounterKey)
	if err != nil {
		return 0, err
	}

	// The host serves reads from the committed snapshot, so every mint in
	// the batch flows through one supply write and one write per balance
	// key, and a beneficiary's id list is written once however many entries
	// name them.
	recipients := make([]string, len(beneficiaries))
	allocationIDs := make([]uint64, len(beneficiaries))
	listOrder := make([]string, 0, len(beneficiaries))
	listIDs := make(map[string][]uint64, len(beneficiaries))
	for i := range beneficiaries {
		recipients[i] = beneficiaries[i]
		if manager != "" {
			recipients[i] = manager
		}

		allocationCounter++
		allocationIDs[i] = allocationCounter

		if _, seen := listIDs[beneficiaries[i]]; !seen {
			listOrder = append(listOrder, beneficiaries[i])
		}
		listIDs[beneficiaries[i]] = append(listIDs[beneficiaries[i]], allocationCounter)
	}

	if err := token.MintBatchUtils(ctx, recipients, values); err != nil {
		return 0, err
	}

	for i := range beneficiaries {
		allocation := &Allocation{
			ID:          allocationIDs[i],
			AirdropID:   airdropID,
			Beneficiary: beneficiaries[i],
			Amount:      values[i].String(),
			Revoked:     false,
		}
		if err := SetAllocation(ctx, allocation); err != nil {
			return 0, err
		}

		err = emitEvent(ctx, allocationCreatedEvent, AllocationCreatedEvent{
			AllocationID: allocationIDs[i],
			AirdropID:    airdropID,
			Beneficiary:  beneficiaries[i],
			Amount:       values[i].String(),
			MintedTo:     recipients[i],
		})
		if err != nil {
			return 0, err
		}
	}

	for _, beneficiary := range listOrder {
		ids, err := GetUserAllocations(ctx, beneficiary)
		if err != nil {
			return 0, err
		}
		if err := SetUserAllocations(ctx, beneficiary, append(ids, listIDs[beneficiary]...)); err != nil {
			return 0, err
		}
	}

	if err := setCounter(ctx, allocationCounterKey, allocationCounter); err != nil {
		return 0, err
	}

	err = emitEvent(ctx, airdropExecutedEvent, AirdropExecutedEvent{
		AirdropID:     airdropID,
		AllocationIDs: allocationIDs,
		TotalAmount:   total.String(),
	})
	if err != nil {
		return 0, err
	}

	return airdropID, nil
}

// GetAllocationsForBeneficiary returns the beneficiary's ordered allocation
// id list, possibly empty.
func (l *Ledger) GetAllocationsForBeneficiary(ctx ledger.TransactionContextInterface, beneficiary string) ([]uint64, error) {
	return GetUserAllocations(ctx, beneficiary)
}

// Allocation returns a single allocation record.
func (l *Ledger) Allocation(ctx ledger.TransactionContextInterface, id uint64) (*Allocation, error) {
	if id == 0 {
		return nil, ErrInvalidAllocationID(id)
	}

	return GetAllocation(ctx, id)
}

// VestingManager returns the configured vesting manager address, or an
// empty string.
func (l *Ledger) VestingManager(ctx ledger.TransactionContextInterface) (string, error) {
	return GetVestingManager(ctx)
}

// Pause blocks allocation creation and airdrops. Signer needs RolePauser.
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
		return ErrVaultPaused("Pause")
	}

	if err := setPaused(ctx, true); err != nil {
		return err
	}

	return emitEvent(ctx, vaultPausedEvent, VaultPauseEvent{Account: signer})
}

// Unpause lifts a vault pause. Signer needs RolePauser.
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
		return ErrVaultNotPaused()
	}

	if err := setPaused(ctx, false); err != nil {
		return err
	}

	return emitEvent(ctx, vaultUnpausedEvent, VaultPauseEvent{Account: signer})
}
