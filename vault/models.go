package vault

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/veridian-network/veridian-token-contracts/ledger"
)

// Allocation is a recorded promise of a fixed amount to a beneficiary. The
// amount is immutable once set; Revoked transitions false to true exactly
// once. AirdropID is 0 for single allocations.
type Allocation struct {
	ID          uint64 `json:"id"`
	AirdropID   uint64 `json:"airdropId"`
	Beneficiary string `json:"beneficiary"`
	Amount      string `json:"amount"`
	Revoked     bool   `json:"revoked"`
}

func allocationKey(id uint64) string {
	return fmt.Sprintf("%s_%d", allocationKeyPrefix, id)
}

func userAllocationsKey(beneficiary string) string {
	return fmt.Sprintf("%s_%s", userAllocationsKeyPrefix, beneficiary)
}

func GetAllocation(ctx ledger.TransactionContextInterface, id uint64) (*Allocation, error) {
	allocationAsBytes, err := ctx.GetState(allocationKey(id))
	if err != nil {
		return nil, ledger.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get allocation %d", id), err)
	}
	if allocationAsBytes == nil {
		return nil, ErrInvalidAllocationID(id)
	}

	var allocation Allocation
	if err := json.Unmarshal(allocationAsBytes, &allocation); err != nil {
		return nil, ledger.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to unmarshal allocation %d", id), err)
	}

	return &allocation, nil
}

func SetAllocation(ctx ledger.TransactionContextInterface, allocation *Allocation) error {
	allocationAsBytes, err := json.Marshal(allocation)
	if err != nil {
		return ledger.NewCustomError(http.StatusInternalServerError, "failed to marshal allocation", err)
	}

	if err := ctx.PutStateWithoutKYC(allocationKey(allocation.ID), allocationAsBytes); err != nil {
		return ledger.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to set allocation %d", allocation.ID), err)
	}

	return nil
}

func GetUserAllocations(ctx ledger.TransactionContextInterface, beneficiary string) ([]uint64, error) {
	listAsBytes, err := ctx.GetState(userAllocationsKey(beneficiary))
	if err != nil {
		return nil, ledger.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get allocations for %s", beneficiary), err)
	}
	if listAsBytes == nil {
		return []uint64{}, nil
	}

	var ids []uint64
	if err := json.Unmarshal(listAsBytes, &ids); err != nil {
		return nil, ledger.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to unmarshal allocation list for %s", beneficiary), err)
	}

	return ids, nil
}

func SetUserAllocations(ctx ledger.TransactionContextInterface, beneficiary string, ids []uint64) error {
	listAsBytes, err := json.Marshal(ids)
	if err != nil {
		return ledger.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to marshal allocation list for %s", beneficiary), err)
	}

	if err := ctx.PutStateWithoutKYC(userAllocationsKey(beneficiary), listAsBytes); err != nil {
		return ledger.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to set allocation list for %s", beneficiary), err)
	}

	return nil
}

func getCounter(ctx ledger.TransactionContextInterface, key string) (uint64, error) {
	counterAsBytes, err := ctx.GetState(key)
	if err != nil {
		return 0, ledger.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get counter %s", key), err)
	}
	if counterAsBytes == nil {
		return 0, nil
	}

	counter, err := strconv.ParseUint(string(counterAsBytes), 10, 64)
	if err != nil {
		return 0, ledger.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to parse counter %s", key), err)
	}

	return counter, nil
}

func setCounter(ctx ledger.TransactionContextInterface, key string, counter uint64) error {
	err := ctx.PutStateWithoutKYC(key, []byte(strconv.FormatUint(counter, 10)))
	if err != nil {
		return ledger.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to set counter %s", key), err)
	}

	return nil
}

// GetVestingManager returns the configured vesting manager address, or the
// empty string when none is configured.
func GetVestingManager(ctx ledger.TransactionContextInterface) (string, error) {
	addressAsBytes, err := ctx.GetState(vestingManagerKey)
	if err != nil {
		return "", ledger.NewCustomError(http.StatusInternalServerError, "failed to get vesting manager address", err)
	}

	return string(addressAsBytes), nil
}

func IsPaused(ctx ledger.TransactionContextInterface) (bool, error) {
	pausedAsBytes, err := ctx.GetState(pausedKey)
	if err != nil {
		return false, ledger.NewCustomError(http.StatusInternalServerError, "failed to get vault paused flag", err)
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
		return ledger.NewCustomError(http.StatusInternalServerError, "failed to set vault paused flag", err)
	}

	return nil
}
