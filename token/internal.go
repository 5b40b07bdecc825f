package token

import (
	"math/big"

	"github.com/veridian-network/veridian-token-contracts/ledger"
)

// The utils move balances without consulting the signer. Authorization is
// the caller's concern: the contract surface checks roles before calling
// in, and the sibling ledgers call in directly within the same transaction.
// All validation happens before the first world-state write, so a failed
// operation leaves no trace.

// MintUtils credits amount to account, enforcing the supply cap.
func MintUtils(ctx ledger.TransactionContextInterface, account string, amount *big.Int) error {
	initialized, err := isInitialized(ctx)
	if err != nil {
		return err
	}
	if !initialized {
		return ErrNotInitialized()
	}

	if ledger.IsZeroAddress(account) {
		return ledger.ErrZeroAddress("mint recipient")
	}
	if amount.Sign() <= 0 {
		return ledger.ErrZeroAmount("mint")
	}

	paused, err := IsPaused(ctx)
	if err != nil {
		return err
	}
	if paused {
		return ErrTokenPaused("mint")
	}

	supply, err := GetTotalSupply(ctx)
	if err != nil {
		return err
	}

	available := new(big.Int).Sub(MaxSupplyAmount(), supply)
	if amount.Cmp(available) > 0 {
		return ErrCapExceeded(amount, available)
	}

	balance, err := GetBalance(ctx, account)
	if err != nil {
		return err
	}

	if err := SetBalance(ctx, account, new(big.Int).Add(balance, amount)); err != nil {
		return err
	}
	if err := SetTotalSupply(ctx, new(big.Int).Add(supply, amount)); err != nil {
		return err
	}

	return emitEvent(ctx, mintEvent, SupplyEvent{
		Account: account,
		Amount:  amount.String(),
	})
}

// MintBatchUtils credits several accounts within one transaction. The host
// serves GetState from the committed snapshot and never from the pending
// write set, so the total supply and each balance key are read and written
// exactly once, with repeat accounts folded together beforehand.
func MintBatchUtils(ctx ledger.TransactionContextInterface, accounts []string, amounts []*big.Int) error {
	initialized, err := isInitialized(ctx)
	if err != nil {
		return err
	}
	if !initialized {
		return ErrNotInitialized()
	}

	if len(accounts) == 0 || len(accounts) != len(amounts) {
		return ErrBatchLengthMismatch(len(accounts), len(amounts))
	}

	paused, err := IsPaused(ctx)
	if err != nil {
		return err
	}
	if paused {
		return ErrTokenPaused("mint")
	}

	order := make([]string, 0, len(accounts))
	credits := make(map[string]*big.Int, len(accounts))
	total := big.NewInt(0)
	for i := range accounts {
		if ledger.IsZeroAddress(accounts[i]) {
			return ledger.ErrZeroAddress("mint recipient")
		}
		if amounts[i].Sign() <= 0 {
			return ledger.ErrZeroAmount("mint")
		}

		if _, seen := credits[accounts[i]]; !seen {
			order = append(order, accounts[i])
			credits[accounts[i]] = big.NewInt(0)
		}
		credits[accounts[i]].Add(credits[accounts[i]], amounts[i])
		total.Add(total, amounts[i])
	}

	supply, err := GetTotalSupply(ctx)
	if err != nil {
		return err
	}

	available := new(big.Int).Sub(MaxSupplyAmount(), supply)
	if total.Cmp(available) > 0 {
		return ErrCapExceeded(total, available)
	}

	for _, account := range order {
		balance, err := GetBalance(ctx, account)
		if err != nil {
			return err
		}
		if err := SetBalance(ctx, account, new(big.Int).Add(balance, credits[account])); err != nil {
			return err
		}
	}
	if err := SetTotalSupply(ctx, new(big.Int).Add(supply, total)); err != nil {
		return err
	}

	for i := range accounts {
		err := emitEvent(ctx, mintEvent, SupplyEvent{
			Account: accounts[i],
			Amount:  amounts[i].String(),
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// BurnUtils debits amount from account and shrinks the total supply.
func BurnUtils(ctx ledger.TransactionContextInterface, account string, amount *big.Int) error {
	if amount.Sign() <= 0 {
		return ledger.ErrZeroAmount("burn")
	}

	paused, err := IsPaused(ctx)
	if err != nil {
		return err
	}
	if paused {
		return ErrTokenPaused("burn")
	}

	balance, err := GetBalance(ctx, account)
	if err != nil {
		return err
	}
	if balance.Cmp(amount) < 0 {
		return ErrInsufficientBalance(account, balance, amount)
	}

	supply, err := GetTotalSupply(ctx)
	if err != nil {
		return err
	}

	if err := SetBalance(ctx, account, new(big.Int).Sub(balance, amount)); err != nil {
		return err
	}
	if err := SetTotalSupply(ctx, new(big.Int).Sub(supply, amount)); err != nil {
		return err
	}

	return emitEvent(ctx, burnEvent, SupplyEvent{
		Account: account,
		Amount:  amount.String(),
	})
}

// TransferUtils moves amount between two balances; the total supply is
// unchanged.
func TransferUtils(ctx ledger.TransactionContextInterface, from, to string, amount *big.Int) error {
	if ledger.IsZeroAddress(to) {
		return ledger.ErrZeroAddress("transfer recipient")
	}
	if amount.Sign() <= 0 {
		return ledger.ErrZeroAmount("transfer")
	}

	paused, err := IsPaused(ctx)
	if err != nil {
		return err
	}
	if paused {
		return ErrTokenPaused("transfer")
	}

	fromBalance, err := GetBalance(ctx, from)
	if err != nil {
		return err
	}
	if fromBalance.Cmp(amount) < 0 {
		return ErrInsufficientBalance(from, fromBalance, amount)
	}

	// A self-transfer moves nothing; writing the key twice would let the
	// credit, computed from the committed balance, swallow the debit.
	if from != to {
		if err := SetBalance(ctx, from, new(big.Int).Sub(fromBalance, amount)); err != nil {
			return err
		}

		toBalance, err := GetBalance(ctx, to)
		if err != nil {
			return err
		}
		if err := SetBalance(ctx, to, new(big.Int).Add(toBalance, amount)); err != nil {
			return err
		}
	}

	return emitEvent(ctx, transferEvent, TransferEvent{
		From:   from,
		To:     to,
		Amount: amount.String(),
	})
}
