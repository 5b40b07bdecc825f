package contracts_test

import (
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/golang/protobuf/ptypes/timestamp"
	"github.com/p2eengineering/kalp-sdk-public/kalpsdk"
	"github.com/stretchr/testify/require"

	"github.com/veridian-network/veridian-token-contracts/contracts"
	"github.com/veridian-network/veridian-token-contracts/ledger"
	"github.com/veridian-network/veridian-token-contracts/mocks"
)

const (
	adminUser      = "0b87970433b22494faff1cc7a819e71bddc7880c"
	beneficiaryB   = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	beneficiaryC   = "cccccccccccccccccccccccccccccccccccccccc"
	vestingHolding = "dddddddddddddddddddddddddddddddddddddddd"

	day       = uint64(24 * 60 * 60)
	startTime = uint64(1_700_000_000)
)

func newMockContext(worldState map[string][]byte) *mocks.TransactionContext {
	ctx := &mocks.TransactionContext{}
	ctx.GetStateStub = func(key string) ([]byte, error) {
		return worldState[key], nil
	}
	ctx.PutStateWithoutKYCStub = func(key string, value []byte) error {
		worldState[key] = value
		return nil
	}
	ctx.DelStateWithoutKYCStub = func(key string) error {
		delete(worldState, key)
		return nil
	}
	ctx.GetTxTimestampReturns(&timestamp.Timestamp{Seconds: int64(startTime)}, nil)

	return ctx
}

func setUserID(ctx *mocks.TransactionContext, userID string) {
	completeID := fmt.Sprintf("x509::CN=%s,O=Organization,L=City,ST=State,C=Country", userID)
	b64ID := base64.StdEncoding.EncodeToString([]byte(completeID))

	clientIdentity := &mocks.ClientIdentity{}
	clientIdentity.GetIDReturns(b64ID, nil)
	ctx.GetClientIdentityReturns(clientIdentity)
}

// TestAllocationToVestedRelease walks the distribution path end to end: a
// direct allocation pays out immediately, while one made after the vesting
// manager is configured parks in the holding account until the schedule's
// cliff passes and the beneficiary releases.
func TestAllocationToVestedRelease(t *testing.T) {
	t.Parallel()

	contract := contracts.NewSmartContract(kalpsdk.Contract{})
	worldState := map[string][]byte{}
	ctx := newMockContext(worldState)
	setUserID(ctx, adminUser)

	require.NoError(t, contract.Initialize(ctx))
	require.Equal(t, "Veridian", contract.Name())
	require.Equal(t, "VRD", contract.Symbol())
	require.Equal(t, uint64(18), contract.Decimals())

	directAmount := ledger.ConvertToWei(1000)
	vestedAmount := ledger.ConvertToWei(500)

	// No vesting manager yet: the mint lands on the beneficiary directly.
	allocB, err := contract.CreateAllocation(ctx, beneficiaryB, directAmount)
	require.NoError(t, err)
	require.Equal(t, uint64(1), allocB)

	balanceB, err := contract.BalanceOf(ctx, beneficiaryB)
	require.NoError(t, err)
	require.Equal(t, directAmount, balanceB)

	require.NoError(t, contract.SetVestingManager(ctx, vestingHolding))

	// With the manager configured the mint parks in the holding account.
	allocC, err := contract.CreateAllocation(ctx, beneficiaryC, vestedAmount)
	require.NoError(t, err)
	require.Equal(t, uint64(2), allocC)

	balanceC, err := contract.BalanceOf(ctx, beneficiaryC)
	require.NoError(t, err)
	require.Equal(t, "0", balanceC)

	held, err := contract.BalanceOf(ctx, vestingHolding)
	require.NoError(t, err)
	require.Equal(t, vestedAmount, held)

	scheduleID, err := contract.CreateVestingSchedule(ctx, beneficiaryC, vestedAmount,
		startTime, 30*day, 365*day, allocC)
	require.NoError(t, err)
	require.Equal(t, uint64(1), scheduleID)

	// Nothing claimable before the cliff.
	setUserID(ctx, beneficiaryC)
	_, err = contract.Release(ctx, scheduleID)
	require.ErrorIs(t, err, ledger.ErrStateConflict)

	// Fully vested: the whole grant is claimable in one release.
	ctx.GetTxTimestampReturns(&timestamp.Timestamp{Seconds: int64(startTime + 365*day)}, nil)

	released, err := contract.Release(ctx, scheduleID)
	require.NoError(t, err)
	require.Equal(t, vestedAmount, released)

	balanceC, err = contract.BalanceOf(ctx, beneficiaryC)
	require.NoError(t, err)
	require.Equal(t, vestedAmount, balanceC)

	held, err = contract.BalanceOf(ctx, vestingHolding)
	require.NoError(t, err)
	require.Equal(t, "0", held)

	info, err := contract.GetVestingInfo(ctx, scheduleID)
	require.NoError(t, err)
	require.Equal(t, vestedAmount, info.ReleasedAmount)
	require.Equal(t, "0", info.RemainingLocked)

	// Supply reflects both allocations and nothing else.
	supply, err := contract.TotalSupply(ctx)
	require.NoError(t, err)
	require.Equal(t, ledger.ConvertToWei(1500), supply)
}

// TestRoleAdministration exercises the contract-level role surface that the
// distribution flows depend on.
func TestRoleAdministration(t *testing.T) {
	t.Parallel()

	contract := contracts.NewSmartContract(kalpsdk.Contract{})
	worldState := map[string][]byte{}
	ctx := newMockContext(worldState)
	setUserID(ctx, adminUser)

	require.NoError(t, contract.Initialize(ctx))

	has, err := contract.HasRole(ctx, ledger.RoleAllocator, beneficiaryB)
	require.NoError(t, err)
	require.False(t, has)

	require.NoError(t, contract.GrantRole(ctx, ledger.RoleAllocator, beneficiaryB))

	has, err = contract.HasRole(ctx, ledger.RoleAllocator, beneficiaryB)
	require.NoError(t, err)
	require.True(t, has)

	setUserID(ctx, beneficiaryB)
	_, err = contract.CreateAllocation(ctx, beneficiaryC, "1000")
	require.NoError(t, err)

	setUserID(ctx, adminUser)
	require.NoError(t, contract.RevokeRole(ctx, ledger.RoleAllocator, beneficiaryB))

	setUserID(ctx, beneficiaryB)
	_, err = contract.CreateAllocation(ctx, beneficiaryC, "1000")
	require.ErrorIs(t, err, ledger.ErrUnauthorized)
}
