package dto

import "wallet-governance/internal/core/domain"

// RegisterWalletRequest is the request body for wallet registration.
type RegisterWalletRequest struct {
	ID                 string                 `json:"id" binding:"required,safe_id,max=128"`
	GroupID            string                 `json:"group_id" binding:"omitempty,safe_id,max=128"`
	LocalID            string                 `json:"local_id" binding:"omitempty,max=128"`
	RequiredSignatures int                    `json:"required_signatures" binding:"required,min=1,max=15"`
	TotalKeys          int                    `json:"total_keys" binding:"required,min=1,max=15"`
	IsProfessional     bool                   `json:"is_professional"`
	Members            []MemberRequest        `json:"members" binding:"required,min=1,dive"`
	SpendingPolicy     *SpendingPolicyRequest `json:"spending_policy,omitempty"`
}

// MemberRequest is one member of a wallet being registered.
type MemberRequest struct {
	UserID         string                 `json:"user_id" binding:"required,safe_id,max=128"`
	Role           string                 `json:"role" binding:"required,wallet_role"`
	XFPs           []string               `json:"xfps" binding:"omitempty,dive,xfp"`
	SpendingPolicy *SpendingPolicyRequest `json:"spending_policy,omitempty"`
}

// SpendingPolicyRequest is a spending limit as entered by a member.
type SpendingPolicyRequest struct {
	LimitAmount  string `json:"limit_amount" binding:"required,decimal_amount"`
	TimeUnit     string `json:"time_unit" binding:"required,oneof=DAILY WEEKLY MONTHLY"`
	CurrencyUnit string `json:"currency_unit" binding:"required,max=16"`
}

// ServerKeyPolicyRequest proposes a new server key policy.
type ServerKeyPolicyRequest struct {
	SpendingLimit       *SpendingPolicyRequest `json:"spending_limit,omitempty"`
	SigningDelaySeconds int64                  `json:"signing_delay_seconds" binding:"min=0"`
	AutoBroadcast       bool                   `json:"auto_broadcast"`
}

// CreateDummyTransactionRequest opens a proposal; the requester's signature is
// counted immediately.
type CreateDummyTransactionRequest struct {
	Type      string `json:"type" binding:"required,dummy_tx_type"`
	Payload   string `json:"payload" binding:"max=65536"`
	XFP       string `json:"xfp" binding:"omitempty,xfp"`
	Signature string `json:"signature" binding:"max=4096"`
}

// SignRequest is one counter-signature.
type SignRequest struct {
	XFP       string `json:"xfp" binding:"omitempty,xfp"`
	Signature string `json:"signature" binding:"max=4096"`
}

// ListDummyTransactionsQuery filters a wallet's proposals.
type ListDummyTransactionsQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=PENDING_SIGNATURES READY_TO_BROADCAST EXECUTED CANCELLED"`
}

// RecordHealthResultRequest reports a completed key health check.
type RecordHealthResultRequest struct {
	CheckedAtMillis int64 `json:"checked_at_millis" binding:"required,gt=0"`
}

// InheritanceTermsRequest proposes a new or updated inheritance plan.
type InheritanceTermsRequest struct {
	Draft                DraftWalletRequest `json:"draft" binding:"required"`
	BufferInterval       string             `json:"buffer_interval" binding:"omitempty,oneof=NONE HOURLY DAILY WEEKLY MONTHLY"`
	BufferIntervalCount  int                `json:"buffer_interval_count" binding:"min=0,max=1000"`
	ActivationTimeMillis int64              `json:"activation_time_millis" binding:"min=0"`
}

// DraftWalletRequest is the wallet shape the plan hands over.
type DraftWalletRequest struct {
	RequiredSignatures          int      `json:"required_signatures" binding:"required,min=1,max=15"`
	TotalKeys                   int      `json:"total_keys" binding:"required,min=1,max=15"`
	IsMasterSecurityQuestionSet bool     `json:"is_master_security_question_set"`
	Signers                     []string `json:"signers" binding:"omitempty,dive,xfp"`
	WalletType                  string   `json:"wallet_type" binding:"max=64"`
	TimelockSeconds             int64    `json:"timelock_seconds" binding:"min=0"`
	ReplaceWallet               *string  `json:"replace_wallet,omitempty" binding:"omitempty,safe_id"`
}

// WalletResponse is a wallet with its members.
type WalletResponse struct {
	Wallet  *domain.Wallet  `json:"wallet"`
	Members []domain.Member `json:"members"`
}

// CanClaimResponse answers whether the inheritance can be claimed now.
type CanClaimResponse struct {
	CanClaim  bool                          `json:"can_claim"`
	Countdown *domain.BufferPeriodCountdown `json:"countdown,omitempty"`
}

// ExpireResponse reports how many stale proposals were cancelled.
type ExpireResponse struct {
	Expired int `json:"expired"`
}

// HandleEventResponse reports what happened to an inbound event.
type HandleEventResponse struct {
	EventID string `json:"event_id"`
	Result  string `json:"result"`
}

// ToDomain converts a validated spending policy.
func (r *SpendingPolicyRequest) ToDomain() *domain.SpendingPolicy {
	if r == nil {
		return nil
	}
	return &domain.SpendingPolicy{
		LimitAmount:  r.LimitAmount,
		TimeUnit:     domain.SpendingTimeUnit(r.TimeUnit),
		CurrencyUnit: r.CurrencyUnit,
	}
}

// ToDomain converts a validated server key policy.
func (r ServerKeyPolicyRequest) ToDomain() domain.ServerKeyPolicy {
	return domain.ServerKeyPolicy{
		SpendingLimit:       r.SpendingLimit.ToDomain(),
		SigningDelaySeconds: r.SigningDelaySeconds,
		AutoBroadcast:       r.AutoBroadcast,
	}
}

// ToDomain converts the member list of a registration.
func (r RegisterWalletRequest) ToDomain() (domain.GroupWalletConfig, []domain.Member) {
	cfg := domain.GroupWalletConfig{
		RequiredSignatures: r.RequiredSignatures,
		TotalKeys:          r.TotalKeys,
		IsProfessional:     r.IsProfessional,
	}
	members := make([]domain.Member, 0, len(r.Members))
	for _, m := range r.Members {
		members = append(members, domain.Member{
			WalletID:       r.ID,
			UserID:         m.UserID,
			Role:           domain.ParseWalletRole(m.Role),
			XFPs:           m.XFPs,
			SpendingPolicy: m.SpendingPolicy.ToDomain(),
		})
	}
	return cfg, members
}

// ToDomain converts validated inheritance terms.
func (r InheritanceTermsRequest) ToDomain() domain.InheritanceTerms {
	return domain.InheritanceTerms{
		Draft: domain.DraftWallet{
			Config: domain.GroupWalletConfig{
				RequiredSignatures: r.Draft.RequiredSignatures,
				TotalKeys:          r.Draft.TotalKeys,
			},
			IsMasterSecurityQuestionSet: r.Draft.IsMasterSecurityQuestionSet,
			Signers:                     r.Draft.Signers,
			WalletType:                  r.Draft.WalletType,
			TimelockSeconds:             r.Draft.TimelockSeconds,
			ReplaceWallet:               r.Draft.ReplaceWallet,
		},
		BufferInterval:       domain.ParseBufferInterval(r.BufferInterval),
		BufferIntervalCount:  r.BufferIntervalCount,
		ActivationTimeMillis: r.ActivationTimeMillis,
	}
}
