package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"wallet-governance/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const dummyTxColumns = `id, wallet_id, group_id, type, payload, required_signatures, pending_signatures,
	requested_by_user_id, status, signatures, broadcast_requested_at, cancelled_by,
	created_at, updated_at, executed_at, cancelled_at`

// DummyTransactionRepo implements ports.DummyTransactionRepository.
type DummyTransactionRepo struct {
	pool Pool
}

// NewDummyTransactionRepo creates a new DummyTransactionRepo.
func NewDummyTransactionRepo(pool Pool) *DummyTransactionRepo {
	return &DummyTransactionRepo{pool: pool}
}

// Create inserts a new proposal.
func (r *DummyTransactionRepo) Create(ctx context.Context, t *domain.DummyTransaction) error {
	sigs, err := encodeSignatures(t.Signatures)
	if err != nil {
		return err
	}

	query := `INSERT INTO dummy_transactions (` + dummyTxColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err = r.pool.Exec(ctx, query,
		t.ID, t.WalletID, t.GroupID, string(t.Type), t.Payload, t.RequiredSignatures, t.PendingSignatures,
		t.RequestedByUserID, string(t.Status), sigs, t.BroadcastRequestedAt, t.CancelledBy,
		t.CreatedAt, t.UpdatedAt, t.ExecutedAt, t.CancelledAt,
	)
	if err != nil {
		return fmt.Errorf("insert dummy transaction: %w", err)
	}
	return nil
}

// Update writes back the mutable part of a proposal.
func (r *DummyTransactionRepo) Update(ctx context.Context, t *domain.DummyTransaction) error {
	sigs, err := encodeSignatures(t.Signatures)
	if err != nil {
		return err
	}

	query := `UPDATE dummy_transactions SET pending_signatures = $1, status = $2, signatures = $3,
		broadcast_requested_at = $4, cancelled_by = $5, updated_at = $6, executed_at = $7, cancelled_at = $8
		WHERE id = $9`

	tag, err := r.pool.Exec(ctx, query,
		t.PendingSignatures, string(t.Status), sigs,
		t.BroadcastRequestedAt, t.CancelledBy, t.UpdatedAt, t.ExecutedAt, t.CancelledAt,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("update dummy transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("dummy transaction not found: %s", t.ID)
	}
	return nil
}

// GetByID fetches a proposal by id.
func (r *DummyTransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DummyTransaction, error) {
	query := `SELECT ` + dummyTxColumns + ` FROM dummy_transactions WHERE id = $1`

	t, err := scanDummyTransaction(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dummy transaction: %w", err)
	}
	return t, nil
}

// ListByWallet lists a wallet's proposals oldest first, optionally filtered by status.
func (r *DummyTransactionRepo) ListByWallet(ctx context.Context, walletID string, status *domain.DummyTransactionStatus) ([]domain.DummyTransaction, error) {
	conditions := []string{"wallet_id = $1"}
	args := []any{walletID}
	if status != nil {
		conditions = append(conditions, "status = $2")
		args = append(args, string(*status))
	}

	query := fmt.Sprintf(`SELECT %s FROM dummy_transactions WHERE %s ORDER BY created_at`,
		dummyTxColumns, strings.Join(conditions, " AND "))
	return r.list(ctx, query, args...)
}

// ListPendingBefore returns PENDING_SIGNATURES proposals created before cutoff.
func (r *DummyTransactionRepo) ListPendingBefore(ctx context.Context, cutoff time.Time) ([]domain.DummyTransaction, error) {
	query := `SELECT ` + dummyTxColumns + ` FROM dummy_transactions
		WHERE status = $1 AND created_at < $2 ORDER BY created_at`
	return r.list(ctx, query, string(domain.DummyTxPendingSignatures), cutoff)
}

func (r *DummyTransactionRepo) list(ctx context.Context, query string, args ...any) ([]domain.DummyTransaction, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list dummy transactions: %w", err)
	}
	defer rows.Close()

	var txs []domain.DummyTransaction
	for rows.Next() {
		t, err := scanDummyTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dummy transaction row: %w", err)
		}
		txs = append(txs, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dummy transaction rows: %w", err)
	}
	return txs, nil
}

func scanDummyTransaction(row pgx.Row) (*domain.DummyTransaction, error) {
	t := &domain.DummyTransaction{}
	var txType, status string
	var sigs []byte
	err := row.Scan(
		&t.ID, &t.WalletID, &t.GroupID, &txType, &t.Payload, &t.RequiredSignatures, &t.PendingSignatures,
		&t.RequestedByUserID, &status, &sigs, &t.BroadcastRequestedAt, &t.CancelledBy,
		&t.CreatedAt, &t.UpdatedAt, &t.ExecutedAt, &t.CancelledAt,
	)
	if err != nil {
		return nil, err
	}
	t.Type = domain.ParseDummyTransactionType(txType)
	t.Status = domain.DummyTransactionStatus(status)
	if len(sigs) > 0 {
		if err := json.Unmarshal(sigs, &t.Signatures); err != nil {
			return nil, fmt.Errorf("decode signatures of %s: %w", t.ID, err)
		}
	}
	return t, nil
}

func encodeSignatures(sigs []domain.Signature) ([]byte, error) {
	if sigs == nil {
		sigs = []domain.Signature{}
	}
	raw, err := json.Marshal(sigs)
	if err != nil {
		return nil, fmt.Errorf("encode signatures: %w", err)
	}
	return raw, nil
}
