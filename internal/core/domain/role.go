package domain

import "strings"

// WalletRole is a member's governance role within one wallet.
type WalletRole string

const (
	RoleNone             WalletRole = "NONE"
	RoleMaster           WalletRole = "MASTER"
	RoleKeyholder        WalletRole = "KEYHOLDER"
	RoleObserver         WalletRole = "OBSERVER"
	RoleAdmin            WalletRole = "ADMIN"
	RoleKeyholderLimited WalletRole = "KEYHOLDER_LIMITED"
)

// ParseWalletRole maps a server-supplied role string to a WalletRole.
// Unrecognised values become RoleNone: the server vocabulary may grow.
func ParseWalletRole(s string) WalletRole {
	switch r := WalletRole(strings.ToUpper(strings.TrimSpace(s))); r {
	case RoleMaster, RoleKeyholder, RoleObserver, RoleAdmin, RoleKeyholderLimited:
		return r
	default:
		return RoleNone
	}
}

// IsKeyHolder reports whether the role may counter-sign proposals and counts
// toward quorum.
func (r WalletRole) IsKeyHolder() bool {
	return r == RoleMaster || r == RoleKeyholder || r == RoleAdmin
}

// CanManageHealthChecks reports whether the role may cancel health checks it did not request.
func (r WalletRole) CanManageHealthChecks() bool {
	return r == RoleMaster || r == RoleAdmin
}

// DisplayTitle returns the user-facing title for the role.
func (r WalletRole) DisplayTitle() string {
	switch r {
	case RoleMaster:
		return "Master"
	case RoleKeyholder:
		return "Keyholder"
	case RoleObserver:
		return "Observer"
	case RoleAdmin:
		return "Admin"
	case RoleKeyholderLimited:
		return "Keyholder (limited)"
	default:
		return ""
	}
}
