package postgres

import (
	"context"
	"fmt"

	"wallet-governance/internal/core/domain"
)

// HandledEventRepo implements ports.HandledEventStore.
type HandledEventRepo struct {
	pool Pool
}

// NewHandledEventRepo creates a new HandledEventRepo.
func NewHandledEventRepo(pool Pool) *HandledEventRepo {
	return &HandledEventRepo{pool: pool}
}

// IsHandled reports whether eventID was already recorded.
func (r *HandledEventRepo) IsHandled(ctx context.Context, eventID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM handled_events WHERE event_id = $1)`, eventID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check handled event: %w", err)
	}
	return exists, nil
}

// MarkHandled records the event; false means another worker recorded it first.
func (r *HandledEventRepo) MarkHandled(ctx context.Context, ev domain.HandledEvent) (bool, error) {
	tag, err := r.pool.Exec(ctx, `INSERT INTO handled_events (event_id, kind, handled_at)
		VALUES ($1, $2, $3) ON CONFLICT (event_id) DO NOTHING`,
		ev.EventID, string(ev.Kind), ev.HandledAt)
	if err != nil {
		return false, fmt.Errorf("mark handled event: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
