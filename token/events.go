package token

import (
	"encoding/json"
	"net/http"

	"github.com/veridian-network/veridian-token-contracts/ledger"
)

type InitializedEvent struct {
	Name      string `json:"name"`
	Symbol    string `json:"symbol"`
	MaxSupply string `json:"maxSupply"`
	Deployer  string `json:"deployer"`
}

type SupplyEvent struct {
	Account string `json:"account"`
	Amount  string `json:"amount"`
}

type TransferEvent struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

type PauseEvent struct {
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
