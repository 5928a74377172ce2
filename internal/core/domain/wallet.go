package domain

import (
	"fmt"
	"time"
)

// GroupWalletConfig is the m-of-n shape of a wallet.
type GroupWalletConfig struct {
	RequiredSignatures int  `json:"required_signatures"`
	TotalKeys          int  `json:"total_keys"`
	IsProfessional     bool `json:"is_professional"`
}

// Validate enforces 1 <= m <= n.
func (c GroupWalletConfig) Validate() error {
	if c.RequiredSignatures < 1 {
		return fmt.Errorf("required signatures must be at least 1, got %d", c.RequiredSignatures)
	}
	if c.RequiredSignatures > c.TotalKeys {
		return fmt.Errorf("required signatures %d exceeds total keys %d", c.RequiredSignatures, c.TotalKeys)
	}
	return nil
}

// QuorumThreshold is the number of key-holder approvals every proposal on the wallet needs.
func (c GroupWalletConfig) QuorumThreshold() int {
	return c.RequiredSignatures
}

// SpendingTimeUnit is the window a spending limit applies to.
type SpendingTimeUnit string

const (
	SpendingDaily   SpendingTimeUnit = "DAILY"
	SpendingWeekly  SpendingTimeUnit = "WEEKLY"
	SpendingMonthly SpendingTimeUnit = "MONTHLY"
)

// Valid reports whether u is a known time unit.
func (u SpendingTimeUnit) Valid() bool {
	return u == SpendingDaily || u == SpendingWeekly || u == SpendingMonthly
}

// SpendingPolicy is stored and read back; the decision whether a spend needs
// quorum is made by the external business rules.
type SpendingPolicy struct {
	LimitAmount  string           `json:"limit_amount"` // decimal string, unit given by CurrencyUnit
	TimeUnit     SpendingTimeUnit `json:"time_unit"`
	CurrencyUnit string           `json:"currency_unit"`
}

// ServerKeyPolicy configures the platform co-signing key. It only changes through
// an executed UPDATE_SERVER_KEY proposal.
type ServerKeyPolicy struct {
	SpendingLimit       *SpendingPolicy `json:"spending_limit,omitempty"`
	SigningDelaySeconds int64           `json:"signing_delay_seconds"`
	AutoBroadcast       bool            `json:"auto_broadcast"`
}

// Wallet is a governed group wallet.
type Wallet struct {
	ID              string            `json:"id"`
	GroupID         string            `json:"group_id"`
	LocalID         string            `json:"local_id"`
	Config          GroupWalletConfig `json:"config"`
	SpendingPolicy  *SpendingPolicy   `json:"spending_policy,omitempty"`
	ServerKeyPolicy *ServerKeyPolicy  `json:"server_key_policy,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// Member is one participant of a wallet.
type Member struct {
	WalletID       string          `json:"wallet_id"`
	UserID         string          `json:"user_id"`
	Role           WalletRole      `json:"role"`
	XFPs           []string        `json:"xfps"`
	SpendingPolicy *SpendingPolicy `json:"spending_policy,omitempty"`
}

// OwnsKey reports whether xfp is one of the member's signing keys.
func (m *Member) OwnsKey(xfp string) bool {
	for _, k := range m.XFPs {
		if k == xfp {
			return true
		}
	}
	return false
}
