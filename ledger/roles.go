package ledger

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Role tags. RoleAdmin holders may grant and revoke any role, including
// RoleAdmin itself.
const (
	RoleAdmin        = "admin"
	RoleMinter       = "minter"
	RolePauser       = "pauser"
	RoleUpgrader     = "upgrader"
	RoleAllocator    = "allocator"
	RoleAirdropper   = "airdropper"
	RoleVestingAdmin = "vesting_admin"
	RoleUnlocker     = "unlocker"
)

const (
	roleGrantedEvent = "RoleGranted"
	roleRevokedEvent = "RoleRevoked"
)

type RoleEvent struct {
	Role    string `json:"role"`
	Account string `json:"account"`
	Sender  string `json:"sender"`
}

func roleKey(role, account string) string {
	return fmt.Sprintf("role_%s_%s", role, account)
}

func isKnownRole(role string) bool {
	switch role {
	case RoleAdmin, RoleMinter, RolePauser, RoleUpgrader,
		RoleAllocator, RoleAirdropper, RoleVestingAdmin, RoleUnlocker:
		return true
	}
	return false
}

// HasRole reports whether account holds role.
func HasRole(ctx TransactionContextInterface, role, account string) (bool, error) {
	granted, err := ctx.GetState(roleKey(role, account))
	if err != nil {
		return false, NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to read role %s for %s", role, account), err)
	}

	return granted != nil, nil
}

// RequireRole aborts with Unauthorized unless the signer holds role, and
// returns the signer's address.
func RequireRole(ctx TransactionContextInterface, role string) (string, error) {
	signer, err := GetUserID(ctx)
	if err != nil {
		return "", err
	}

	ok, err := HasRole(ctx, role, signer)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrMissingRole(role, signer)
	}

	return signer, nil
}

// GrantRole assigns role to account. Only RoleAdmin holders may call it.
func GrantRole(ctx TransactionContextInterface, role, account string) error {
	sender, err := RequireRole(ctx, RoleAdmin)
	if err != nil {
		return err
	}

	return grantRole(ctx, role, account, sender)
}

// grantRole writes the assignment without an admin check. Initialize uses it
// to seed the deployer's roles.
func grantRole(ctx TransactionContextInterface, role, account, sender string) error {
	if !isKnownRole(role) {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidArgument, role)
	}
	if IsZeroAddress(account) {
		return ErrZeroAddress("role account")
	}

	if err := ctx.PutStateWithoutKYC(roleKey(role, account), []byte{1}); err != nil {
		return NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to grant role %s to %s", role, account), err)
	}

	return emitRoleEvent(ctx, roleGrantedEvent, role, account, sender)
}

// RevokeRole removes role from account. Only RoleAdmin holders may call it.
func RevokeRole(ctx TransactionContextInterface, role, account string) error {
	sender, err := RequireRole(ctx, RoleAdmin)
	if err != nil {
		return err
	}

	if !isKnownRole(role) {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidArgument, role)
	}

	if err := ctx.DelStateWithoutKYC(roleKey(role, account)); err != nil {
		return NewCustomError(http.StatusInternalServerError, fmt.Sprintf("failed to revoke role %s from %s", role, account), err)
	}

	return emitRoleEvent(ctx, roleRevokedEvent, role, account, sender)
}

// SeedRoles grants every role to the deploying identity at initialization.
func SeedRoles(ctx TransactionContextInterface, deployer string) error {
	roles := []string{
		RoleAdmin, RoleMinter, RolePauser, RoleUpgrader,
		RoleAllocator, RoleAirdropper, RoleVestingAdmin, RoleUnlocker,
	}
	for _, role := range roles {
		if err := grantRole(ctx, role, deployer, deployer); err != nil {
			return err
		}
	}

	return nil
}

func emitRoleEvent(ctx TransactionContextInterface, name, role, account, sender string) error {
	payload, err := json.Marshal(RoleEvent{
		Role:    role,
		Account: account,
		Sender:  sender,
	})
	if err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to marshal role event", err)
	}

	if err := ctx.SetEvent(name, payload); err != nil {
		return NewCustomError(http.StatusInternalServerError, "failed to set role event", err)
	}

	return nil
}
