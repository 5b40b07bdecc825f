package vesting

import (
	"fmt"

	"github.com/veridian-network/veridian-token-contracts/ledger"
)

func ErrInvalidScheduleID(id uint64) error {
	return fmt.Errorf("%w: invalid schedule id %d", ledger.ErrInvalidArgument, id)
}

func ErrScheduleAlreadyRevoked(id uint64) error {
	return fmt.Errorf("%w: schedule %d is already revoked", ledger.ErrStateConflict, id)
}

func ErrNotBeneficiary(signer string, id uint64) error {
	return fmt.Errorf("%w: %s is not the beneficiary of schedule %d", ledger.ErrUnauthorized, signer, id)
}

func ErrNoTokensDue(id uint64) error {
	return fmt.Errorf("%w: no tokens due for schedule %d", ledger.ErrStateConflict, id)
}

func ErrNoTokensToRevoke(id uint64) error {
	return fmt.Errorf("%w: no locked tokens to revoke for schedule %d", ledger.ErrStateConflict, id)
}

func ErrAmountExceedsRemaining(amount, remaining string) error {
	return fmt.Errorf("%w: unlock amount %s exceeds remaining %s", ledger.ErrInvalidArgument, amount, remaining)
}

func ErrInvalidDuration() error {
	return fmt.Errorf("%w: duration cannot be zero", ledger.ErrInvalidArgument)
}

func ErrInvalidCliffDuration(cliff, duration uint64) error {
	return fmt.Errorf("%w: cliff duration %d exceeds duration %d", ledger.ErrInvalidArgument, cliff, duration)
}

func ErrScheduleEndOverflow(start, duration uint64) error {
	return fmt.Errorf("%w: start time %d plus duration %d overflows", ledger.ErrInvalidArgument, start, duration)
}

func ErrInvalidStartTime(start, now uint64) error {
	return fmt.Errorf("%w: start time %d is in the past (now %d)", ledger.ErrInvalidArgument, start, now)
}

// ErrReleasedAheadOfSchedule reports the checked-arithmetic failure that
// occurs when a prior manual unlock has outrun linear accrual: the recorded
// released amount exceeds the freshly computed vested amount.
func ErrReleasedAheadOfSchedule(id uint64, released, vested string) error {
	return fmt.Errorf("%w: schedule %d released amount %s exceeds vested amount %s",
		ledger.ErrStateConflict, id, released, vested)
}

func ErrVestingPaused(op string) error {
	return fmt.Errorf("%w: %s is blocked while vesting is paused", ledger.ErrPaused, op)
}

func ErrVestingNotPaused() error {
	return fmt.Errorf("%w: vesting is not paused", ledger.ErrStateConflict)
}
