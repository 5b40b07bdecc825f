package vesting

import (
	"encoding/json"
	"net/http"

	"github.com/veridian-network/veridian-token-contracts/ledger"
)

type ScheduleCreatedEvent struct {
	ScheduleID    uint64 `json:"scheduleId"`
	Beneficiary   string `json:"beneficiary"`
	TotalAmount   string `json:"totalAmount"`
	StartTime     uint64 `json:"startTime"`
	CliffDuration uint64 `json:"cliffDuration"`
	Duration      uint64 `json:"duration"`
	AllocationID  uint64 `json:"allocationId"`
}

type TokensReleasedEvent struct {
	ScheduleID  uint64 `json:"scheduleId"`
	Beneficiary string `json:"beneficiary"`
	Amount      string `json:"amount"`
}

type ManualUnlockEvent struct {
	ScheduleID  uint64 `json:"scheduleId"`
	Beneficiary string `json:"beneficiary"`
	Amount      string `json:"amount"`
	Unlocker    string `json:"unlocker"`
}

type ScheduleRevokedEvent struct {
	ScheduleID      uint64 `json:"scheduleId"`
	Beneficiary     string `json:"beneficiary"`
	SettledAmount   string `json:"settledAmount"`
	RemainingAmount string `json:"remainingAmount"`
	AllocationID    uint64 `json:"allocationId"`
}

type VestingPauseEvent struct {
	Account string `json:"account"`
}

func emitEvent(ctx ledger.TransactionContextInterface, name string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return ledger.NewCustomError(http.StatusInternalServerError, "failed to marshal event", err)
	}

	if err := ctx.SetEvent(name, payload); err != nil {
		return ledger.NewCustomError(http.StatusInternalServerError, "failed to set event", err)
	}

	return nil
}
