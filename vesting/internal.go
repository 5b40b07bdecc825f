package vesting

import (
	"math/big"
)

// Releasable computes how much of a schedule may be claimed at now.
//
//   - revoked: nothing
//   - before the cliff: nothing
//   - at or past start+duration: everything remaining
//   - linear phase: totalAmount * (now - startTime) / duration, truncating,
//     minus what was already released
//
// If a prior manual unlock pushed ReleasedAmount past the linear accrual the
// subtraction would go negative; that surfaces as ErrReleasedAheadOfSchedule
// rather than saturating, preserving checked-arithmetic semantics.
func Releasable(schedule *Schedule, now uint64) (*big.Int, error) {
	if schedule.Revoked {
		return big.NewInt(0), nil
	}

	total, ok := new(big.Int).SetString(schedule.TotalAmount, 10)
	if !ok {
		return nil, ErrInvalidScheduleID(schedule.ID)
	}
	released, ok := new(big.Int).SetString(schedule.ReleasedAmount, 10)
	if !ok {
		return nil, ErrInvalidScheduleID(schedule.ID)
	}

	if now < schedule.StartTime+schedule.CliffDuration {
		return big.NewInt(0), nil
	}

	if now >= schedule.StartTime+schedule.Duration {
		return new(big.Int).Sub(total, released), nil
	}

	elapsed := new(big.Int).SetUint64(now - schedule.StartTime)
	duration := new(big.Int).SetUint64(schedule.Duration)
	vested := new(big.Int).Mul(total, elapsed)
	vested.Div(vested, duration)

	if released.Cmp(vested) > 0 {
		return nil, ErrReleasedAheadOfSchedule(schedule.ID, released.String(), vested.String())
	}

	return vested.Sub(vested, released), nil
}

// remainingLocked is totalAmount - releasedAmount - releasable: the portion
// neither released nor currently due.
func remainingLocked(schedule *Schedule, releasable *big.Int) (*big.Int, error) {
	total, ok := new(big.Int).SetString(schedule.TotalAmount, 10)
	if !ok {
		return nil, ErrInvalidScheduleID(schedule.ID)
	}
	released, ok := new(big.Int).SetString(schedule.ReleasedAmount, 10)
	if !ok {
		return nil, ErrInvalidScheduleID(schedule.ID)
	}

	remaining := new(big.Int).Sub(total, released)
	return remaining.Sub(remaining, releasable), nil
}

// nextUnlockTime approximates when the next tokens unlock. Coarse on
// purpose: during the linear phase it reports now plus one day, not the
// exact next accrual tick.
func nextUnlockTime(schedule *Schedule, now uint64) uint64 {
	if schedule.Revoked || now >= schedule.StartTime+schedule.Duration {
		return 0
	}
	if now < schedule.StartTime+schedule.CliffDuration {
		return schedule.StartTime + schedule.CliffDuration
	}

	return now + nextUnlockInterval
}
