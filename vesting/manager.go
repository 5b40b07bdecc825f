package vesting

import (
	"math"
	"math/big"

	"github.com/veridian-network/veridian-token-contracts/ledger"
	"github.com/veridian-network/veridian-token-contracts/token"
	"github.com/veridian-network/veridian-token-contracts/vault"
)

// Manager tracks time-based release schedules and pays beneficiaries out of
// its own holding balance, the account the vault mints allocations into. It
// reads allocation state to revoke it alongside a schedule; the vault and
// token ledgers hold no references back.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// holdingAccount is where released tokens are paid from: the vesting
// manager address the vault is configured with.
func holdingAccount(ctx ledger.TransactionContextInterface) (string, error) {
	manager, err := vault.GetVestingManager(ctx)
	if err != nil {
		return "", err
	}
	if manager == "" {
		return "", vault.ErrVestingManagerNotSet
	}

	return manager, nil
}

// CreateSchedule records a new vesting schedule. It moves no tokens; the
// corresponding allocation already minted them into the holding balance.
// Signer needs RoleVestingAdmin.
func (m *Manager) CreateSchedule(ctx ledger.TransactionContextInterface, beneficiary string, totalAmount string,
	startTime, cliffDuration, duration, allocationID uint64) (uint64, error) {
	if _, err := ledger.RequireRole(ctx, ledger.RoleVestingAdmin); err != nil {
		return 0, err
	}

	paused, err := IsPaused(ctx)
	if err != nil {
		return 0, err
	}
	if paused {
		return 0, ErrVestingPaused("CreateSchedule")
	}

	now, err := ledger.TxTime(ctx)
	if err != nil {
		return 0, err
	}

	if ledger.IsZeroAddress(beneficiary) {
		return 0, ledger.ErrZeroAddress("beneficiary")
	}

	total, err := ledger.ParseAmount(totalAmount)
	if err != nil {
		return 0, err
	}
	if total.Sign() == 0 {
		return 0, ledger.ErrZeroAmount("schedule")
	}

	if duration == 0 {
		return 0, ErrInvalidDuration()
	}
	if duration < cliffDuration {
		return 0, ErrInvalidCliffDuration(cliffDuration, duration)
	}
	if startTime < now {
		return 0, ErrInvalidStartTime(startTime, now)
	}
	// duration >= cliffDuration here, so this also bounds start + cliff.
	if startTime > math.MaxUint64-duration {
		return 0, ErrScheduleEndOverflow(startTime, duration)
	}

	counter, err := getScheduleCounter(ctx)
	if err != nil {
		return 0, err
	}
	id := counter + 1
	if err := setScheduleCounter(ctx, id); err != nil {
		return 0, err
	}

	schedule := &Schedule{
		ID:             id,
		Beneficiary:    beneficiary,
		TotalAmount:    total.String(),
		StartTime:      startTime,
		CliffDuration:  cliffDuration,
		Duration:       duration,
		ReleasedAmount: "0",
		CreatedAt:      now,
		AllocationID:   allocationID,
		Revoked:        false,
	}
	if err := SetSchedule(ctx, schedule); err != nil {
		return 0, err
	}

	ids, err := GetUserSchedules(ctx, beneficiary)
	if err != nil {
		return 0, err
	}
	if err := SetUserSchedules(ctx, beneficiary, append(ids, id)); err != nil {
		return 0, err
	}

	err = emitEvent(ctx, scheduleCreatedEvent, ScheduleCreatedEvent{
		ScheduleID:    id,
		Beneficiary:   beneficiary,
		TotalAmount:   total.String(),
		StartTime:     startTime,
		CliffDuration: cliffDuration,
		Duration:      duration,
		AllocationID:  allocationID,
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Release pays the signer everything currently due under their schedule.
// Returns the amount released.
func (m *Manager) Release(ctx ledger.TransactionContextInterface, scheduleID uint64) (string, error) {
	signer, err := ledger.GetUserID(ctx)
	if err != nil {
		return "0", err
	}

	paused, err := IsPaused(ctx)
	if err != nil {
		return "0", err
	}
	if paused {
		return "0", ErrVestingPaused("Release")
	}

	schedule, err := GetSchedule(ctx, scheduleID)
	if err != nil {
		return "0", err
	}
	if schedule.Beneficiary != signer {
		return "0", ErrNotBeneficiary(signer, scheduleID)
	}

	now, err := ledger.TxTime(ctx)
	if err != nil {
		return "0", err
	}

	releasable, err := Releasable(schedule, now)
	if err != nil {
		return "0", err
	}
	if releasable.Sign() == 0 {
		return "0", ErrNoTokensDue(scheduleID)
	}

	holding, err := holdingAccount(ctx)
	if err != nil {
		return "0", err
	}

	// Transfer before the bookkeeping write so a failed transfer leaves
	// the released amount untouched.
	if err := token.TransferUtils(ctx, holding, schedule.Beneficiary, releasable); err != nil {
		return "0", err
	}

	released, _ := new(big.Int).SetString(schedule.ReleasedAmount, 10)
	schedule.ReleasedAmount = new(big.Int).Add(released, releasable).String()
	if err := SetSchedule(ctx, schedule); err != nil {
		return "0", err
	}

	err = emitEvent(ctx, tokensReleasedEvent, TokensReleasedEvent{
		ScheduleID:  scheduleID,
		Beneficiary: schedule.Beneficiary,
		Amount:      releasable.String(),
	})
	if err != nil {
		return "0", err
	}

	return releasable.String(), nil
}

// ManualUnlock releases amount ahead of the schedule's normal accrual and
// records which privileged identity initiated it. Deliberately not gated by
// the vesting pause: it is the emergency channel. Signer needs RoleUnlocker.
func (m *Manager) ManualUnlock(ctx ledger.TransactionContextInterface, scheduleID uint64, amount string) error {
	unlocker, err := ledger.RequireRole(ctx, ledger.RoleUnlocker)
	if err != nil {
		return err
	}

	value, err := ledger.ParseAmount(amount)
	if err != nil {
		return err
	}
	if value.Sign() == 0 {
		return ledger.ErrZeroAmount("unlock")
	}

	schedule, err := GetSchedule(ctx, scheduleID)
	if err != nil {
		return err
	}
	if schedule.Revoked {
		return ErrScheduleAlreadyRevoked(scheduleID)
	}

	total, _ := new(big.Int).SetString(schedule.TotalAmount, 10)
	released, _ := new(big.Int).SetString(schedule.ReleasedAmount, 10)
	remaining := new(big.Int).Sub(total, released)
	if value.Cmp(remaining) > 0 {
		return ErrAmountExceedsRemaining(value.String(), remaining.String())
	}

	holding, err := holdingAccount(ctx)
	if err != nil {
		return err
	}

	if err := token.TransferUtils(ctx, holding, schedule.Beneficiary, value); err != nil {
		return err
	}

	schedule.ReleasedAmount = new(big.Int).Add(released, value).String()
	if err := SetSchedule(ctx, schedule); err != nil {
		return err
	}

	return emitEvent(ctx, manualUnlockEvent, ManualUnlockEvent{
		ScheduleID:  scheduleID,
		Beneficiary: schedule.Beneficiary,
		Amount:      value.String(),
		Unlocker:    unlocker,
	})
}

// RevokeSchedule terminates a schedule: the currently-releasable portion is
// settled and paid, the remaining locked portion is also transferred to the
// beneficiary (not clawed back to a treasury), and the linked allocation, if
// any, is revoked. Returns the remaining-locked amount transferred. Signer
// needs RoleVestingAdmin.
func (m *Manager) RevokeSchedule(ctx ledger.TransactionContextInterface, scheduleID uint64) (string, error) {
	if _, err := ledger.RequireRole(ctx, ledger.RoleVestingAdmin); err != nil {
		return "0", err
	}

	schedule, err := GetSchedule(ctx, scheduleID)
	if err != nil {
		return "0", err
	}
	if schedule.Revoked {
		return "0", ErrScheduleAlreadyRevoked(scheduleID)
	}

	now, err := ledger.TxTime(ctx)
	if err != nil {
		return "0", err
	}

	releasable, err := Releasable(schedule, now)
	if err != nil {
		return "0", err
	}

	remaining, err := remainingLocked(schedule, releasable)
	if err != nil {
		return "0", err
	}
	if remaining.Sign() == 0 {
		return "0", ErrNoTokensToRevoke(scheduleID)
	}

	if schedule.AllocationID != 0 {
		if err := vault.RevokeRecord(ctx, schedule.AllocationID); err != nil {
			return "0", err
		}
	}

	holding, err := holdingAccount(ctx)
	if err != nil {
		return "0", err
	}

	if releasable.Sign() > 0 {
		released, _ := new(big.Int).SetString(schedule.ReleasedAmount, 10)
		schedule.ReleasedAmount = new(big.Int).Add(released, releasable).String()
	}

	// The settled and locked portions move in one transfer. The host reads
	// only committed state within a transaction, so a second transfer on
	// the same pair would not see the first one's balance writes.
	payout := new(big.Int).Add(releasable, remaining)
	if err := token.TransferUtils(ctx, holding, schedule.Beneficiary, payout); err != nil {
		return "0", err
	}

	schedule.Revoked = true
	if err := SetSchedule(ctx, schedule); err != nil {
		return "0", err
	}

	err = emitEvent(ctx, scheduleRevokedEvent, ScheduleRevokedEvent{
		ScheduleID:      scheduleID,
		Beneficiary:     schedule.Beneficiary,
		SettledAmount:   releasable.String(),
		RemainingAmount: remaining.String(),
		AllocationID:    schedule.AllocationID,
	})
	if err != nil {
		return "0", err
	}

	return remaining.String(), nil
}

// GetVestingInfo returns the read-only aggregate view of one schedule.
func (m *Manager) GetVestingInfo(ctx ledger.TransactionContextInterface, scheduleID uint64) (*VestingInfo, error) {
	schedule, err := GetSchedule(ctx, scheduleID)
	if err != nil {
		return nil, err
	}

	now, err := ledger.TxTime(ctx)
	if err != nil {
		return nil, err
	}

	releasable, err := Releasable(schedule, now)
	if err != nil {
		return nil, err
	}

	remaining, err := remainingLocked(schedule, releasable)
	if err != nil {
		return nil, err
	}

	return &VestingInfo{
		ScheduleID:      schedule.ID,
		Beneficiary:     schedule.Beneficiary,
		TotalAmount:     schedule.TotalAmount,
		ReleasedAmount:  schedule.ReleasedAmount,
		Releasable:      releasable.String(),
		RemainingLocked: remaining.String(),
		NextUnlock:      nextUnlockTime(schedule, now),
		Revoked:         schedule.Revoked,
	}, nil
}

// SchedulesForBeneficiary returns the beneficiary's ordered schedule id
// list, possibly empty.
func (m *Manager) SchedulesForBeneficiary(ctx ledger.TransactionContextInterface, beneficiary string) ([]uint64, error) {
	return GetUserSchedules(ctx, beneficiary)
}

// Pause blocks schedule creation and release. ManualUnlock stays open.
// Signer needs RolePauser.
func (m *Manager) Pause(ctx ledger.TransactionContextInterface) error {
	signer, err := ledger.RequireRole(ctx, ledger.RolePauser)
	if err != nil {
		return err
	}

	paused, err := IsPaused(ctx)
	if err != nil {
		return err
	}
	if paused {
		return ErrVestingPaused("Pause")
	}

	if err := setPaused(ctx, true); err != nil {
		return err
	}

	return emitEvent(ctx, vestingPausedEvent, VestingPauseEvent{Account: signer})
}

// Unpause lifts a vesting pause. Signer needs RolePauser.
func (m *Manager) Unpause(ctx ledger.TransactionContextInterface) error {
	signer, err := ledger.RequireRole(ctx, ledger.RolePauser)
	if err != nil {
		return err
	}

	paused, err := IsPaused(ctx)
	if err != nil {
		return err
	}
	if !paused {
		return ErrVestingNotPaused()
	}

	if err := setPaused(ctx, false); err != nil {
		return err
	}

	return emitEvent(ctx, vestingUnpausedEvent, VestingPauseEvent{Account: signer})
}
