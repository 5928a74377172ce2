package postgres

import (
	"context"
	"fmt"

	"wallet-governance/internal/core/domain"
)

// KeyHealthRepo implements ports.KeyHealthRepository.
type KeyHealthRepo struct {
	pool Pool
}

// NewKeyHealthRepo creates a new KeyHealthRepo.
func NewKeyHealthRepo(pool Pool) *KeyHealthRepo {
	return &KeyHealthRepo{pool: pool}
}

// Upsert inserts or replaces one key's status.
func (r *KeyHealthRepo) Upsert(ctx context.Context, s domain.KeyHealthStatus) error {
	query := `INSERT INTO key_health (wallet_id, xfp, is_pending_health_check, can_request_health_check, last_health_check_time_millis)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (wallet_id, xfp) DO UPDATE SET
			is_pending_health_check = EXCLUDED.is_pending_health_check,
			can_request_health_check = EXCLUDED.can_request_health_check,
			last_health_check_time_millis = EXCLUDED.last_health_check_time_millis`

	_, err := r.pool.Exec(ctx, query,
		s.WalletID, s.XFP, s.IsPendingHealthCheck, s.CanRequestHealthCheck, s.LastHealthCheckTimeMillis)
	if err != nil {
		return fmt.Errorf("upsert key health: %w", err)
	}
	return nil
}

// ListByWallet returns every tracked key of a wallet.
func (r *KeyHealthRepo) ListByWallet(ctx context.Context, walletID string) ([]domain.KeyHealthStatus, error) {
	query := `SELECT wallet_id, xfp, is_pending_health_check, can_request_health_check, last_health_check_time_millis
		FROM key_health WHERE wallet_id = $1 ORDER BY xfp`

	rows, err := r.pool.Query(ctx, query, walletID)
	if err != nil {
		return nil, fmt.Errorf("list key health: %w", err)
	}
	defer rows.Close()

	var out []domain.KeyHealthStatus
	for rows.Next() {
		var s domain.KeyHealthStatus
		if err := rows.Scan(&s.WalletID, &s.XFP, &s.IsPendingHealthCheck, &s.CanRequestHealthCheck, &s.LastHealthCheckTimeMillis); err != nil {
			return nil, fmt.Errorf("scan key health row: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate key health rows: %w", err)
	}
	return out, nil
}

// DeleteByWallet forgets the whole health map of a wallet.
func (r *KeyHealthRepo) DeleteByWallet(ctx context.Context, walletID string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM key_health WHERE wallet_id = $1`, walletID); err != nil {
		return fmt.Errorf("delete key health: %w", err)
	}
	return nil
}
