// Package contracts assembles the three ledgers into one chaincode. The
// SmartContract is the replaceable logic; everything durable lives in the
// world state, so a chaincode upgrade swaps this type out from under the
// persisted balances, roles, allocations and schedules.
package contracts

import (
	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"

	"github.com/veridian-network/veridian-token-contracts/ledger"
	"github.com/veridian-network/veridian-token-contracts/token"
	"github.com/veridian-network/veridian-token-contracts/vault"
	"github.com/veridian-network/veridian-token-contracts/vesting"
)

type SmartContract struct {
	kalpsdk.Contract

	token   *token.Ledger
	vault   *vault.Ledger
	vesting *vesting.Manager
}

// NewSmartContract wires the ledgers together. The token ledger is the
// leaf; the vault mints through it; the vesting manager transfers through
// it and revokes allocations through the vault.
func NewSmartContract(contract kalpsdk.Contract) *SmartContract {
	return &SmartContract{
		Contract: contract,
		token:    token.NewLedger(),
		vault:    vault.NewLedger(),
		vesting:  vesting.NewManager(),
	}
}

// Token Ledger surface.

func (s *SmartContract) Initialize(ctx ledger.TransactionContextInterface) error {
	return s.token.Initialize(ctx)
}

func (s *SmartContract) Mint(ctx ledger.TransactionContextInterface, to string, amount string) error {
	return s.token.Mint(ctx, to, amount)
}

func (s *SmartContract) Burn(ctx ledger.TransactionContextInterface, amount string) error {
	return s.token.Burn(ctx, amount)
}

func (s *SmartContract) Transfer(ctx ledger.TransactionContextInterface, to string, amount string) error {
	return s.token.Transfer(ctx, to, amount)
}

func (s *SmartContract) Pause(ctx ledger.TransactionContextInterface) error {
	return s.token.Pause(ctx)
}

func (s *SmartContract) Unpause(ctx ledger.TransactionContextInterface) error {
	return s.token.Unpause(ctx)
}

func (s *SmartContract) AuthorizeUpgrade(ctx ledger.TransactionContextInterface) error {
	return s.token.AuthorizeUpgrade(ctx)
}

func (s *SmartContract) BalanceOf(ctx ledger.TransactionContextInterface, account string) (string, error) {
	return s.token.BalanceOf(ctx, account)
}

func (s *SmartContract) TotalSupply(ctx ledger.TransactionContextInterface) (string, error) {
	return s.token.TotalSupply(ctx)
}

func (s *SmartContract) Name() string {
	return s.token.Name()
}

func (s *SmartContract) Symbol() string {
	return s.token.Symbol()
}

func (s *SmartContract) Decimals() uint64 {
	return s.token.Decimals()
}

// Role administration.

func (s *SmartContract) GrantRole(ctx ledger.TransactionContextInterface, role, account string) error {
	return ledger.GrantRole(ctx, role, account)
}

func (s *SmartContract) RevokeRole(ctx ledger.TransactionContextInterface, role, account string) error {
	return ledger.RevokeRole(ctx, role, account)
}

func (s *SmartContract) HasRole(ctx ledger.TransactionContextInterface, role, account string) (bool, error) {
	return ledger.HasRole(ctx, role, account)
}

// Allocation Ledger surface.

func (s *SmartContract) SetVestingManager(ctx ledger.TransactionContextInterface, address string) error {
	return s.vault.SetVestingManager(ctx, address)
}

func (s *SmartContract) CreateAllocation(ctx ledger.TransactionContextInterface, beneficiary string, amount string) (uint64, error) {
	return s.vault.CreateAllocation(ctx, beneficiary, amount)
}

func (s *SmartContract) RevokeAllocation(ctx ledger.TransactionContextInterface, id uint64) error {
	return s.vault.RevokeAllocation(ctx, id)
}

func (s *SmartContract) ExecuteAirdrop(ctx ledger.TransactionContextInterface, beneficiaries []string, amounts []string) (uint64, error) {
	return s.vault.ExecuteAirdrop(ctx, beneficiaries, amounts)
}

func (s *SmartContract) GetAllocation(ctx ledger.TransactionContextInterface, id uint64) (*vault.Allocation, error) {
	return s.vault.Allocation(ctx, id)
}

func (s *SmartContract) GetAllocationsForBeneficiary(ctx ledger.TransactionContextInterface, beneficiary string) ([]uint64, error) {
	return s.vault.GetAllocationsForBeneficiary(ctx, beneficiary)
}

func (s *SmartContract) PauseVault(ctx ledger.TransactionContextInterface) error {
	return s.vault.Pause(ctx)
}

func (s *SmartContract) UnpauseVault(ctx ledger.TransactionContextInterface) error {
	return s.vault.Unpause(ctx)
}

// Vesting Ledger surface.

func (s *SmartContract) CreateVestingSchedule(ctx ledger.TransactionContextInterface, beneficiary string, totalAmount string,
	startTime, cliffDuration, duration, allocationID uint64) (uint64, error) {
	return s.vesting.CreateSchedule(ctx, beneficiary, totalAmount, startTime, cliffDuration, duration, allocationID)
}

func (s *SmartContract) Release(ctx ledger.TransactionContextInterface, scheduleID uint64) (string, error) {
	return s.vesting.Release(ctx, scheduleID)
}

func (s *SmartContract) ManualUnlock(ctx ledger.TransactionContextInterface, scheduleID uint64, amount string) error {
	return s.vesting.ManualUnlock(ctx, scheduleID, amount)
}

func (s *SmartContract) RevokeSchedule(ctx ledger.TransactionContextInterface, scheduleID uint64) (string, error) {
	return s.vesting.RevokeSchedule(ctx, scheduleID)
}

func (s *SmartContract) GetVestingInfo(ctx ledger.TransactionContextInterface, scheduleID uint64) (*vesting.VestingInfo, error) {
	return s.vesting.GetVestingInfo(ctx, scheduleID)
}

func (s *SmartContract) GetSchedulesForBeneficiary(ctx ledger.TransactionContextInterface, beneficiary string) ([]uint64, error) {
	return s.vesting.SchedulesForBeneficiary(ctx, beneficiary)
}

func (s *SmartContract) PauseVesting(ctx ledger.TransactionContextInterface) error {
	return s.vesting.Pause(ctx)
}

func (s *SmartContract) UnpauseVesting(ctx ledger.TransactionContextInterface) error {
	return s.vesting.Unpause(ctx)
}
