package vault

import (
	"encoding/json"
	"net/http"

	"github.com/veridian-network/veridian-token-contracts/ledger"
)

type AllocationCreatedEvent struct {
	AllocationID uint64 `json:"allocationId"`
	AirdropID    uint64 `json:"airdropId"`
	Beneficiary  string `json:"beneficiary"`
	Amount       string `json:"amount"`
	MintedTo     string `json:"mintedTo"`
}

type AllocationRevokedEvent struct {
	AllocationID uint64 `json:"allocationId"`
	Beneficiary  string `json:"beneficiary"`
	Amount       string `json:"amount"`
}

type AirdropExecutedEvent struct {
	AirdropID     uint64   `json:"airdropId"`
	AllocationIDs []uint64 `json:"allocationIds"`
	TotalAmount   string   `json:"totalAmount"`
}

type VestingManagerConfiguredEvent struct {
	VestingManager string `json:"vestingManager"`
	Sender         string `json:"sender"`
}

type VaultPauseEvent struct {
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
