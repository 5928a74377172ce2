package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"wallet-governance/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// InheritancePlanRepo implements ports.InheritancePlanRepository.
type InheritancePlanRepo struct {
	pool Pool
}

// NewInheritancePlanRepo creates a new InheritancePlanRepo.
func NewInheritancePlanRepo(pool Pool) *InheritancePlanRepo {
	return &InheritancePlanRepo{pool: pool}
}

// Get fetches the plan of a wallet.
func (r *InheritancePlanRepo) Get(ctx context.Context, walletID string) (*domain.InheritancePlan, error) {
	query := `SELECT wallet_id, terms, activation_time_millis, active, dummy_transaction_id, created_at, updated_at
		FROM inheritance_plans WHERE wallet_id = $1`

	p := &domain.InheritancePlan{}
	var terms []byte
	err := r.pool.QueryRow(ctx, query, walletID).Scan(
		&p.WalletID, &terms, &p.ActivationTimeMillis, &p.Active, &p.DummyTransactionID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inheritance plan: %w", err)
	}
	if err := json.Unmarshal(terms, &p.Terms); err != nil {
		return nil, fmt.Errorf("decode inheritance terms of %s: %w", walletID, err)
	}
	return p, nil
}

// Save inserts or replaces the plan of a wallet.
func (r *InheritancePlanRepo) Save(ctx context.Context, p *domain.InheritancePlan) error {
	terms, err := json.Marshal(p.Terms)
	if err != nil {
		return fmt.Errorf("encode inheritance terms: %w", err)
	}

	query := `INSERT INTO inheritance_plans (wallet_id, terms, activation_time_millis, active, dummy_transaction_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (wallet_id) DO UPDATE SET
			terms = EXCLUDED.terms,
			activation_time_millis = EXCLUDED.activation_time_millis,
			active = EXCLUDED.active,
			dummy_transaction_id = EXCLUDED.dummy_transaction_id,
			updated_at = EXCLUDED.updated_at`

	_, err = r.pool.Exec(ctx, query,
		p.WalletID, terms, p.ActivationTimeMillis, p.Active, p.DummyTransactionID, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save inheritance plan: %w", err)
	}
	return nil
}
