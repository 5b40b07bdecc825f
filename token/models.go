package token

import (
	"fmt"
	"math/big"
	"net/http"

	"github.com/veridian-network/veridian-token-contracts/ledger"
)

func balanceKey(account string) string {
	return fmt.Sprintf("%s_%s", balanceKeyPrefix, account)
}

func GetBalance(ctx ledger.TransactionContextInterface, account string) (*big.Int, error) {
	balanceAsBytes, err := ctx.GetState(balanceKey(account))
	if err != nil {
		return nil, ledger.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to get balance for %s", account), err)
	}

	balance := big.NewInt(0)
	if balanceAsBytes != nil {
		if _, ok := balance.SetString(string(balanceAsBytes), 10); !ok {
			return nil, ledger.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to parse balance for %s", account), nil)
		}
	}

	return balance, nil
}

func SetBalance(ctx ledger.TransactionContextInterface, account string, balance *big.Int) error {
	err := ctx.PutStateWithoutKYC(balanceKey(account), []byte(balance.String()))
	if err != nil {
		return ledger.NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to set balance for %s", account), err)
	}

	return nil
}

func GetTotalSupply(ctx ledger.TransactionContextInterface) (*big.Int, error) {
	supplyAsBytes, err := ctx.GetState(totalSupplyKey)
	if err != nil {
		return nil, ledger.NewCustomError(http.StatusInternalServerError, "failed to get total supply", err)
	}

	supply := big.NewInt(0)
	if supplyAsBytes != nil {
		if _, ok := supply.SetString(string(supplyAsBytes), 10); !ok {
			return nil, ledger.NewCustomError(http.StatusInternalServerError, "failed to parse total supply", nil)
		}
	}

	return supply, nil
}

func SetTotalSupply(ctx ledger.TransactionContextInterface, supply *big.Int) error {
	err := ctx.PutStateWithoutKYC(totalSupplyKey, []byte(supply.String()))
	if err != nil {
		return ledger.NewCustomError(http.StatusInternalServerError, "failed to set total supply", err)
	}

	return nil
}

func IsPaused(ctx ledger.TransactionContextInterface) (bool, error) {
	pausedAsBytes, err := ctx.GetState(pausedKey)
	if err != nil {
		return false, ledger.NewCustomError(http.StatusInternalServerError, "failed to get paused flag", err)
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
		return ledger.NewCustomError(http.StatusInternalServerError, "failed to set paused flag", err)
	}

	return nil
}

func isInitialized(ctx ledger.TransactionContextInterface) (bool, error) {
	initializedAsBytes, err := ctx.GetState(initializedKey)
	if err != nil {
		return false, ledger.NewCustomError(http.StatusInternalServerError, "failed to get initialized flag", err)
	}

	return initializedAsBytes != nil, nil
}

// MaxSupplyAmount returns the fixed supply cap as a big.Int.
func MaxSupplyAmount() *big.Int {
	cap, _ := new(big.Int).SetString(MaxSupply, 10)
	return cap
}
