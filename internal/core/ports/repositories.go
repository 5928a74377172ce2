package ports

import (
	"context"
	"time"

	"wallet-governance/internal/core/domain"

	"github.com/google/uuid"
)

// Lookups return (nil, nil) when the row does not exist; services translate that
// into apperror.ErrNotFound.

// WalletRepository persists wallets and their registered members.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet, members []domain.Member) error
	GetByID(ctx context.Context, id string) (*domain.Wallet, error)
	UpdateSpendingPolicy(ctx context.Context, walletID string, policy *domain.SpendingPolicy) error
	UpdateServerKeyPolicy(ctx context.Context, walletID string, policy *domain.ServerKeyPolicy) error
	GetMember(ctx context.Context, walletID, userID string) (*domain.Member, error)
	ListMembers(ctx context.Context, walletID string) ([]domain.Member, error)
	UpdateMemberSpendingPolicy(ctx context.Context, walletID, userID string, policy *domain.SpendingPolicy) error
}

// DummyTransactionRepository persists proposals. There is no delete: terminal
// proposals are kept for audit.
type DummyTransactionRepository interface {
	Create(ctx context.Context, tx *domain.DummyTransaction) error
	Update(ctx context.Context, tx *domain.DummyTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DummyTransaction, error)
	ListByWallet(ctx context.Context, walletID string, status *domain.DummyTransactionStatus) ([]domain.DummyTransaction, error)
	// ListPendingBefore returns PENDING_SIGNATURES proposals created before cutoff.
	ListPendingBefore(ctx context.Context, cutoff time.Time) ([]domain.DummyTransaction, error)
}

// KeyHealthRepository keeps the best-effort copy of each wallet's key health map.
type KeyHealthRepository interface {
	Upsert(ctx context.Context, status domain.KeyHealthStatus) error
	ListByWallet(ctx context.Context, walletID string) ([]domain.KeyHealthStatus, error)
	DeleteByWallet(ctx context.Context, walletID string) error
}

// InheritancePlanRepository stores at most one plan per wallet.
type InheritancePlanRepository interface {
	Get(ctx context.Context, walletID string) (*domain.InheritancePlan, error)
	Save(ctx context.Context, plan *domain.InheritancePlan) error
}

// HandledEventStore is the durable set of processed event ids.
type HandledEventStore interface {
	IsHandled(ctx context.Context, eventID string) (bool, error)
	// MarkHandled records the id and reports whether it was newly inserted.
	MarkHandled(ctx context.Context, ev domain.HandledEvent) (bool, error)
}
