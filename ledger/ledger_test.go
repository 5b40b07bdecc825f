package ledger_test

import (
	"encoding/base64"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veridian-network/veridian-token-contracts/ledger"
	"github.com/veridian-network/veridian-token-contracts/mocks"
)

const (
	adminUser = "0b87970433b22494faff1cc7a819e71bddc7880c"
	otherUser = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
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

	return ctx
}

func setUserID(ctx *mocks.TransactionContext, userID string) {
	completeID := fmt.Sprintf("x509::CN=%s,O=Organization,L=City,ST=State,C=Country", userID)
	b64ID := base64.StdEncoding.EncodeToString([]byte(completeID))

	clientIdentity := &mocks.ClientIdentity{}
	clientIdentity.GetIDReturns(b64ID, nil)
	ctx.GetClientIdentityReturns(clientIdentity)
}

func TestGetUserID(t *testing.T) {
	t.Parallel()

	ctx := newMockContext(map[string][]byte{})
	setUserID(ctx, adminUser)

	userID, err := ledger.GetUserID(ctx)
	require.NoError(t, err)
	require.Equal(t, adminUser, userID)
}

func TestGetUserIDErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		setupMock func(*mocks.TransactionContext)
	}{
		{
			name: "identity error",
			setupMock: func(ctx *mocks.TransactionContext) {
				clientIdentity := &mocks.ClientIdentity{}
				clientIdentity.GetIDReturns("", errors.New("failed to get ID"))
				ctx.GetClientIdentityReturns(clientIdentity)
			},
		},
		{
			name: "not base64",
			setupMock: func(ctx *mocks.TransactionContext) {
				clientIdentity := &mocks.ClientIdentity{}
				clientIdentity.GetIDReturns("%%%not-base64%%%", nil)
				ctx.GetClientIdentityReturns(clientIdentity)
			},
		},
		{
			name: "malformed subject",
			setupMock: func(ctx *mocks.TransactionContext) {
				clientIdentity := &mocks.ClientIdentity{}
				clientIdentity.GetIDReturns(base64.StdEncoding.EncodeToString([]byte("garbage")), nil)
				ctx.GetClientIdentityReturns(clientIdentity)
			},
		},
		{
			name: "signer address not hex",
			setupMock: func(ctx *mocks.TransactionContext) {
				setUserID(ctx, "not-an-address")
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := newMockContext(map[string][]byte{})
			tt.setupMock(ctx)

			_, err := ledger.GetUserID(ctx)
			require.Error(t, err)
		})
	}
}

func TestAddressHelpers(t *testing.T) {
	t.Parallel()

	require.True(t, ledger.IsUserAddressValid(adminUser))
	require.False(t, ledger.IsUserAddressValid(""))
	require.False(t, ledger.IsUserAddressValid("0x1234"))

	require.True(t, ledger.IsContractAddressValid("klp-6b616c70627169646731-cc"))
	require.False(t, ledger.IsContractAddressValid("klp--cc"))

	require.True(t, ledger.IsZeroAddress(""))
	require.True(t, ledger.IsZeroAddress(ledger.ZeroAddress))
	require.False(t, ledger.IsZeroAddress(adminUser))
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	amount, err := ledger.ParseAmount("1000000000000000000")
	require.NoError(t, err)
	require.Equal(t, "1000000000000000000", amount.String())

	zero, err := ledger.ParseAmount("0")
	require.NoError(t, err)
	require.Equal(t, 0, zero.Sign())

	_, err = ledger.ParseAmount("")
	require.ErrorIs(t, err, ledger.ErrInvalidArgument)

	_, err = ledger.ParseAmount("12.5")
	require.ErrorIs(t, err, ledger.ErrInvalidArgument)

	_, err = ledger.ParseAmount("-5")
	require.ErrorIs(t, err, ledger.ErrInvalidArgument)
}

func TestConvertToWei(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1000000000000000000", ledger.ConvertToWei(1))
	require.Equal(t, "1000000000000000000000000000", ledger.ConvertToWei(1_000_000_000))
}

func TestRoleLifecycle(t *testing.T) {
	t.Parallel()

	worldState := map[string][]byte{}
	ctx := newMockContext(worldState)
	setUserID(ctx, adminUser)

	require.NoError(t, ledger.SeedRoles(ctx, adminUser))

	ok, err := ledger.HasRole(ctx, ledger.RoleAdmin, adminUser)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = ledger.HasRole(ctx, ledger.RoleMinter, otherUser)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, ledger.GrantRole(ctx, ledger.RoleMinter, otherUser))

	ok, err = ledger.HasRole(ctx, ledger.RoleMinter, otherUser)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, ledger.RevokeRole(ctx, ledger.RoleMinter, otherUser))

	ok, err = ledger.HasRole(ctx, ledger.RoleMinter, otherUser)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestGrantRoleRequiresAdmin(t *testing.T) {
	t.Parallel()

	worldState := map[string][]byte{}
	ctx := newMockContext(worldState)
	setUserID(ctx, adminUser)
	require.NoError(t, ledger.SeedRoles(ctx, adminUser))

	setUserID(ctx, otherUser)
	err := ledger.GrantRole(ctx, ledger.RoleMinter, otherUser)
	require.ErrorIs(t, err, ledger.ErrUnauthorized)

	err = ledger.RevokeRole(ctx, ledger.RoleAdmin, adminUser)
	require.ErrorIs(t, err, ledger.ErrUnauthorized)
}

func TestGrantRoleValidation(t *testing.T) {
	t.Parallel()

	worldState := map[string][]byte{}
	ctx := newMockContext(worldState)
	setUserID(ctx, adminUser)
	require.NoError(t, ledger.SeedRoles(ctx, adminUser))

	err := ledger.GrantRole(ctx, "made_up_role", otherUser)
	require.ErrorIs(t, err, ledger.ErrInvalidArgument)

	err = ledger.GrantRole(ctx, ledger.RoleMinter, ledger.ZeroAddress)
	require.ErrorIs(t, err, ledger.ErrInvalidArgument)
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	worldState := map[string][]byte{}
	ctx := newMockContext(worldState)
	setUserID(ctx, adminUser)
	require.NoError(t, ledger.SeedRoles(ctx, adminUser))

	signer, err := ledger.RequireRole(ctx, ledger.RoleAllocator)
	require.NoError(t, err)
	require.Equal(t, adminUser, signer)

	setUserID(ctx, otherUser)
	_, err = ledger.RequireRole(ctx, ledger.RoleAllocator)
	require.ErrorIs(t, err, ledger.ErrUnauthorized)
}
