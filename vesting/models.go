package vesting

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/veridian-network/veridian-token-contracts/ledger"
)

// Schedule is a time-parameterized release plan. TotalAmount is immutable;
// ReleasedAmount only grows and never exceeds TotalAmount; Revoked
// transitions false to true exactly once. AllocationID 0 means no linked
// allocation and is never validated against the vault.
type Schedule struct {
	ID             uint64 `json:"id"`
	Beneficiary    string `json:"beneficiary"`
	TotalAmount    string `json:"totalAmount"`
	StartTime      uint64 `json:"startTime"`
	CliffDuration  uint64 `json:"cliffDuration"`
	Duration       uint64 `json:"duration"`
	ReleasedAmount string `json:"releasedAmount"`
	CreatedAt      uint64 `json:"createdAt"`
	AllocationID   uint64 `json:"allocationId"`
	Revoked        bool   `json:"revoked"`
}

// VestingInfo is the read-only aggregate GetVestingInfo returns. NextUnlock
// is 0 once fully vested or revoked, the cliff time before the cliff, and a
// coarse now-plus-one-day during the linear phase.
type VestingInfo struct {
	ScheduleID      uint64 `json:"scheduleId"`
	Beneficiary     string `json:"beneficiary"`
	TotalAmount     string `json:"totalAmount"`
	ReleasedAmount  string `json:"releasedAmount"`
	Releasable      string `json:"releasable"`
	RemainingLocked string `json:"remainingLocked"`
	NextUnlock      uint64 `json:"nextUnlock"`
	Revoked         bool   `json:"revoked"`
}

func scheduleKey(id uint64) string {
	return fmt.Sprintf("%s_%d", scheduleKeyPrefix, id)
}

func userSchedulesKey(beneficiary string) string {
	return fmt.Sprintf("%s_%s", userSchedulesKeyPrefix, beneficiary)
}

func GetSchedule(ctx ledger.TransactionContextInterface, id uint64) (*Schedule, error) {
	scheduleAsBytes, err := ctx.GetState(scheduleKey(id))
	if err != nil {
		return nil, ledger.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get schedule %d", id), err)
	}
	if scheduleAsBytes == nil {
		return nil, ErrInvalidScheduleID(id)
	}

	var schedule Schedule
	if err := json.Unmarshal(scheduleAsBytes, &schedule); err != nil {
		return nil, ledger.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to unmarshal schedule %d", id), err)
	}

	return &schedule, nil
}

func SetSchedule(ctx ledger.TransactionContextInterface, schedule *Schedule) error {
	scheduleAsBytes, err := json.Marshal(schedule)
	if err != nil {
		return ledger.NewCustomError(http.StatusInternalServerError, "failed to marshal schedule", err)
	}

	if err := ctx.PutStateWithoutKYC(scheduleKey(schedule.ID), scheduleAsBytes); err != nil {
		return ledger.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to set schedule %d", schedule.ID), err)
	}

	return nil
}

func GetUserSchedules(ctx ledger.TransactionContextInterface, beneficiary string) ([]uint64, error) {
	listAsBytes, err := ctx.GetState(userSchedulesKey(beneficiary))
	if err != nil {
		return nil, ledger.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get schedules for %s", beneficiary), err)
	}
	if listAsBytes == nil {
		return []uint64{}, nil
	}

	var ids []uint64
	if err := json.Unmarshal(listAsBytes, &ids); err != nil {
		return nil, ledger.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to unmarshal schedule list for %s", beneficiary), err)
	}

	return ids, nil
}

func SetUserSchedules(ctx ledger.TransactionContextInterface, beneficiary string, ids []uint64) error {
	listAsBytes, err := json.Marshal(ids)
	if err != nil {
		return ledger.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to marshal schedule list for %s", beneficiary), err)
	}

	if err := ctx.PutStateWithoutKYC(userSchedulesKey(beneficiary), listAsBytes); err != nil {
		return ledger.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to set schedule list for %s", beneficiary), err)
	}

	return nil
}

func getScheduleCounter(ctx ledger.TransactionContextInterface) (uint64, error) {
	counterAsBytes, err := ctx.GetState(scheduleCounterKey)
	if err != nil {
		return 0, ledger.NewCustomError(http.StatusInternalServerError, "failed to get schedule counter", err)
	}
	if counterAsBytes == nil {
		return 0, nil
	}

	counter, err := strconv.ParseUint(string(counterAsBytes), 10, 64)
	if err != nil {
		return 0, ledger.NewCustomError(http.StatusInternalServerError, "failed to parse schedule counter", err)
	}

	return counter, nil
}

func setScheduleCounter(ctx ledger.TransactionContextInterface, counter uint64) error {
	err := ctx.PutStateWithoutKYC(scheduleCounterKey, []byte(strconv.FormatUint(counter, 10)))
	if err != nil {
		return ledger.NewCustomError(http.StatusInternalServerError, "failed to set schedule counter", err)
	}

	return nil
}

func IsPaused(ctx ledger.TransactionContextInterface) (bool, error) {
	pausedAsBytes, err := ctx.GetState(pausedKey)
	if err != nil {
		return false, ledger.NewCustomError(http.StatusInternalServerError, "failed to get vesting paused flag", err)
	}

	return pausedAsBytes != nil, nil
}

func setPaused(ctx ledger.TransactionContextInterface, paused bool) error {
	var err error
	if paused {
		err = ctx.PutStateWithoutKYC(pausedKey, []byte{1})
	} else {
		err = ctx.DelStateWithoutKYC(pausedKey)
	}
	if err != nil {
		return ledger.NewCustomError(http.StatusInternalServerError, "failed to set vesting paused flag", err)
	}

	return nil
}
