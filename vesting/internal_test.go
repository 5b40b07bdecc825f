package vesting

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veridian-network/veridian-token-contracts/ledger"
)

const (
	day   = uint64(24 * 60 * 60)
	start = uint64(1_700_000_000)
)

func newSchedule(total, released string) *Schedule {
	return &Schedule{
		ID:             1,
		Beneficiary:    "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		TotalAmount:    total,
		StartTime:      start,
		CliffDuration:  30 * day,
		Duration:       365 * day,
		ReleasedAmount: released,
		CreatedAt:      start,
	}
}

func TestReleasable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		schedule *Schedule
		now      uint64
		want     string
	}{
		{
			name:     "before start",
			schedule: newSchedule("1000", "0"),
			now:      start - 1,
			want:     "0",
		},
		{
			name:     "before cliff",
			schedule: newSchedule("1000", "0"),
			now:      start + 30*day - 1,
			want:     "0",
		},
		{
			name:     "at cliff",
			schedule: newSchedule("1000", "0"),
			now:      start + 30*day,
			want:     "82", // 1000 * 30 / 365, truncating
		},
		{
			name:     "half duration",
			schedule: newSchedule("1000", "0"),
			now:      start + 365*day/2,
			want:     "500",
		},
		{
			name:     "half duration partially released",
			schedule: newSchedule("1000", "200"),
			now:      start + 365*day/2,
			want:     "300",
		},
		{
			name:     "at full duration",
			schedule: newSchedule("1000", "0"),
			now:      start + 365*day,
			want:     "1000",
		},
		{
			name:     "past full duration partially released",
			schedule: newSchedule("1000", "400"),
			now:      start + 400*day,
			want:     "600",
		},
		{
			name:     "released caught up at same tick",
			schedule: newSchedule("1000", "500"),
			now:      start + 365*day/2,
			want:     "0",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Releasable(tt.schedule, tt.now)
			require.NoError(t, err)
			require.Equal(t, tt.want, got.String())
		})
	}
}

func TestReleasableRevoked(t *testing.T) {
	t.Parallel()

	schedule := newSchedule("1000", "100")
	schedule.Revoked = true

	got, err := Releasable(schedule, start+400*day)
	require.NoError(t, err)
	require.Equal(t, "0", got.String())
}

func TestReleasableAheadOfSchedule(t *testing.T) {
	t.Parallel()

	// A manual unlock pushed the released amount past linear accrual:
	// the subtraction fails fast instead of saturating.
	schedule := newSchedule("1000", "800")

	_, err := Releasable(schedule, start+365*day/2)
	require.ErrorIs(t, err, ledger.ErrStateConflict)

	// Past the full duration everything remaining is due again.
	got, err := Releasable(schedule, start+365*day)
	require.NoError(t, err)
	require.Equal(t, "200", got.String())
}

func TestRemainingLocked(t *testing.T) {
	t.Parallel()

	schedule := newSchedule("1000", "200")

	releasable, err := Releasable(schedule, start+365*day/2)
	require.NoError(t, err)
	require.Equal(t, "300", releasable.String())

	remaining, err := remainingLocked(schedule, releasable)
	require.NoError(t, err)
	require.Equal(t, "500", remaining.String())
}

func TestNextUnlockTime(t *testing.T) {
	t.Parallel()

	schedule := newSchedule("1000", "0")

	// Before the cliff: the cliff time.
	require.Equal(t, start+30*day, nextUnlockTime(schedule, start))

	// Linear phase: a coarse now-plus-one-day heuristic.
	now := start + 100*day
	require.Equal(t, now+day, nextUnlockTime(schedule, now))

	// Fully vested: none.
	require.Equal(t, uint64(0), nextUnlockTime(schedule, start+365*day))

	schedule.Revoked = true
	require.Equal(t, uint64(0), nextUnlockTime(schedule, start))
}
