package vesting

const (
	scheduleCounterKey = "schedule_counter"
	pausedKey          = "vesting_paused"

	scheduleKeyPrefix      = "schedule"
	userSchedulesKeyPrefix = "userschedules"

	scheduleCreatedEvent = "ScheduleCreated"
	tokensReleasedEvent  = "TokensReleased"
	manualUnlockEvent    = "ManualUnlock"
	scheduleRevokedEvent = "ScheduleRevoked"
	vestingPausedEvent   = "VestingPaused"
	vestingUnpausedEvent = "VestingUnpaused"

	// nextUnlockInterval is the coarse heuristic GetVestingInfo reports
	// during the linear phase. It is not an exact next-tick.
	nextUnlockInterval = 24 * 60 * 60
)
