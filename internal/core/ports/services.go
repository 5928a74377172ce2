package ports

import (
	"context"
	"time"

	"wallet-governance/internal/core/domain"

	"github.com/google/uuid"
)

// --- External collaborators ---

// SigningLayer is the opaque native signing engine. Both calls only hand work
// over; results come back as events.
type SigningLayer interface {
	Broadcast(ctx context.Context, tx *domain.DummyTransaction) error
	SubmitHealthCheck(ctx context.Context, req domain.HealthCheckRequest) error
}

// PushPublisher fans reconciled events out to the UI layer.
type PushPublisher interface {
	Publish(ctx context.Context, ev domain.PushEvent) error
}

// HandledEventCache is the fast path in front of HandledEventStore.
type HandledEventCache interface {
	Seen(ctx context.Context, eventID string) (bool, error)
	// Mark stores the id and returns true if it was not already present.
	Mark(ctx context.Context, eventID string, ttl time.Duration) (bool, error)
}

// TokenService validates session tokens issued by the wallet backend.
type TokenService interface {
	Generate(memberID, deviceID string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	MemberID string
	DeviceID string
}

// ExecutionHandler applies an executed proposal of the types it is registered for.
type ExecutionHandler interface {
	Types() []domain.DummyTransactionType
	OnDummyTransactionExecuted(ctx context.Context, tx *domain.DummyTransaction) error
}

// ExpiryPolicy decides whether a proposal stuck in PENDING_SIGNATURES is stale.
type ExpiryPolicy interface {
	// Cutoff returns the creation time before which pending proposals expire,
	// or false when nothing ever expires.
	Cutoff(now time.Time) (time.Time, bool)
}

// --- Service ports ---

// WalletService registers wallets and manages their read-only spending policies.
type WalletService interface {
	Register(ctx context.Context, req RegisterWalletRequest) (*domain.Wallet, error)
	Get(ctx context.Context, walletID string) (*domain.Wallet, []domain.Member, error)
	SetSpendingPolicy(ctx context.Context, walletID string, policy domain.SpendingPolicy) error
	SetMemberSpendingPolicy(ctx context.Context, walletID, userID string, policy domain.SpendingPolicy) error
	Member(ctx context.Context, walletID, userID string) (*domain.Member, error)
}

// ServerKeyService proposes and applies server key policy changes.
type ServerKeyService interface {
	ProposePolicy(ctx context.Context, walletID, memberID string, policy domain.ServerKeyPolicy) (*domain.DummyTransaction, error)
}

// RegisterWalletRequest holds validated input for wallet registration.
type RegisterWalletRequest struct {
	ID      string
	GroupID string
	LocalID string
	Config  domain.GroupWalletConfig
	Members []domain.Member
	Policy  *domain.SpendingPolicy
}

// DummyTransactionService is the quorum engine.
type DummyTransactionService interface {
	Create(ctx context.Context, req CreateDummyTransactionRequest) (*domain.DummyTransaction, error)
	Sign(ctx context.Context, req SignDummyTransactionRequest) (*domain.DummyTransaction, error)
	Cancel(ctx context.Context, id uuid.UUID, memberID string) (*domain.DummyTransaction, error)
	// ApplyCancellation applies a cancel the wallet backend already performed.
	ApplyCancellation(ctx context.Context, id uuid.UUID, actorID string) (*domain.DummyTransaction, error)
	Broadcast(ctx context.Context, id uuid.UUID, memberID string) (*domain.DummyTransaction, error)
	ConfirmExecuted(ctx context.Context, id uuid.UUID) (*domain.DummyTransaction, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.DummyTransaction, error)
	List(ctx context.Context, walletID string, status *domain.DummyTransactionStatus) ([]domain.DummyTransaction, error)
	ExpireStale(ctx context.Context) (int, error)
}

// CreateDummyTransactionRequest holds validated input for opening a proposal.
type CreateDummyTransactionRequest struct {
	WalletID string
	MemberID string
	Type     domain.DummyTransactionType
	Payload  string
	XFP      string
	Value    string
}

// SignDummyTransactionRequest holds one counter-signature.
type SignDummyTransactionRequest struct {
	ID       uuid.UUID
	MemberID string
	XFP      string
	Value    string
}

// HealthService drives key health checks across wallets.
type HealthService interface {
	Request(ctx context.Context, walletID, xfp, memberID string) (domain.HealthCheckRequest, error)
	RecordResult(ctx context.Context, walletID, xfp string, checkedAt time.Time) (domain.KeyHealthStatus, error)
	Cancel(ctx context.Context, walletID, xfp, memberID string) (domain.KeyHealthStatus, error)
	TrackKey(ctx context.Context, walletID, xfp string) (domain.KeyHealthStatus, error)
	Reset(ctx context.Context, walletID string) error
	List(ctx context.Context, walletID string) ([]domain.KeyHealthStatus, error)
	Due(ctx context.Context, walletID string) ([]domain.KeyHealthStatus, error)
}

// InheritanceService proposes plan changes and answers claim eligibility.
type InheritanceService interface {
	CreatePlan(ctx context.Context, walletID, memberID string, terms domain.InheritanceTerms) (*domain.DummyTransaction, error)
	UpdatePlan(ctx context.Context, walletID, memberID string, terms domain.InheritanceTerms) (*domain.DummyTransaction, error)
	CancelPlan(ctx context.Context, walletID, memberID string) (*domain.DummyTransaction, error)
	GetPlan(ctx context.Context, walletID string) (*domain.InheritancePlan, error)
	GetCountdown(ctx context.Context, walletID string, now time.Time) (*domain.BufferPeriodCountdown, error)
	CanClaim(ctx context.Context, walletID string, now time.Time) (bool, error)
	Deactivate(ctx context.Context, walletID string) error
}

// EventReconciler is the single entry point for inbound events.
type EventReconciler interface {
	Handle(ctx context.Context, ev domain.Event) (HandleResult, error)
}

// HandleResult tells the caller what happened to an event.
type HandleResult string

const (
	HandleApplied   HandleResult = "APPLIED"
	HandleDuplicate HandleResult = "DUPLICATE"
	HandleDropped   HandleResult = "DROPPED"
)
