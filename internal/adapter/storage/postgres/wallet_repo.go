package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"wallet-governance/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
	tr   *Transactor
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool, tr: NewTransactor(pool)}
}

// Create inserts the wallet and its members in one transaction.
func (r *WalletRepo) Create(ctx context.Context, w *domain.Wallet, members []domain.Member) error {
	spending, err := nullableJSON(w.SpendingPolicy)
	if err != nil {
		return err
	}
	serverKey, err := nullableJSON(w.ServerKeyPolicy)
	if err != nil {
		return err
	}

	return r.tr.WithTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `INSERT INTO wallets (id, group_id, local_id, required_signatures, total_keys,
			is_professional, spending_policy, server_key_policy, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			w.ID, w.GroupID, w.LocalID, w.Config.RequiredSignatures, w.Config.TotalKeys,
			w.Config.IsProfessional, spending, serverKey, w.CreatedAt, w.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert wallet: %w", err)
		}

		for i, m := range members {
			policy, err := nullableJSON(m.SpendingPolicy)
			if err != nil {
				return err
			}
			xfps := m.XFPs
			if xfps == nil {
				xfps = []string{}
			}
			_, err = tx.Exec(ctx, `INSERT INTO wallet_members (wallet_id, user_id, position, role, xfps, spending_policy)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				w.ID, m.UserID, i, string(m.Role), xfps, policy,
			)
			if err != nil {
				return fmt.Errorf("insert wallet member %s: %w", m.UserID, err)
			}
		}
		return nil
	})
}

// GetByID fetches a wallet by id.
func (r *WalletRepo) GetByID(ctx context.Context, id string) (*domain.Wallet, error) {
	query := `SELECT id, group_id, local_id, required_signatures, total_keys, is_professional,
		spending_policy, server_key_policy, created_at, updated_at
		FROM wallets WHERE id = $1`

	w := &domain.Wallet{}
	var spending, serverKey []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.GroupID, &w.LocalID, &w.Config.RequiredSignatures, &w.Config.TotalKeys,
		&w.Config.IsProfessional, &spending, &serverKey, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by id: %w", err)
	}

	if len(spending) > 0 {
		w.SpendingPolicy = &domain.SpendingPolicy{}
		if err := json.Unmarshal(spending, w.SpendingPolicy); err != nil {
			return nil, fmt.Errorf("decode spending policy of %s: %w", id, err)
		}
	}
	if len(serverKey) > 0 {
		w.ServerKeyPolicy = &domain.ServerKeyPolicy{}
		if err := json.Unmarshal(serverKey, w.ServerKeyPolicy); err != nil {
			return nil, fmt.Errorf("decode server key policy of %s: %w", id, err)
		}
	}
	return w, nil
}

// UpdateSpendingPolicy replaces the wallet-level spending policy.
func (r *WalletRepo) UpdateSpendingPolicy(ctx context.Context, walletID string, policy *domain.SpendingPolicy) error {
	raw, err := nullableJSON(policy)
	if err != nil {
		return err
	}
	return r.execOne(ctx, "update spending policy", walletID,
		`UPDATE wallets SET spending_policy = $1, updated_at = NOW() WHERE id = $2`, raw, walletID)
}

// UpdateServerKeyPolicy replaces the server key policy.
func (r *WalletRepo) UpdateServerKeyPolicy(ctx context.Context, walletID string, policy *domain.ServerKeyPolicy) error {
	raw, err := nullableJSON(policy)
	if err != nil {
		return err
	}
	return r.execOne(ctx, "update server key policy", walletID,
		`UPDATE wallets SET server_key_policy = $1, updated_at = NOW() WHERE id = $2`, raw, walletID)
}

// GetMember fetches one member of a wallet.
func (r *WalletRepo) GetMember(ctx context.Context, walletID, userID string) (*domain.Member, error) {
	query := `SELECT wallet_id, user_id, role, xfps, spending_policy
		FROM wallet_members WHERE wallet_id = $1 AND user_id = $2`

	m, err := scanMember(r.pool.QueryRow(ctx, query, walletID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet member: %w", err)
	}
	return m, nil
}

// ListMembers returns the members in registration order.
func (r *WalletRepo) ListMembers(ctx context.Context, walletID string) ([]domain.Member, error) {
	query := `SELECT wallet_id, user_id, role, xfps, spending_policy
		FROM wallet_members WHERE wallet_id = $1 ORDER BY position`

	rows, err := r.pool.Query(ctx, query, walletID)
	if err != nil {
		return nil, fmt.Errorf("list wallet members: %w", err)
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan wallet member row: %w", err)
		}
		members = append(members, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallet member rows: %w", err)
	}
	return members, nil
}

// UpdateMemberSpendingPolicy replaces one member's spending policy.
func (r *WalletRepo) UpdateMemberSpendingPolicy(ctx context.Context, walletID, userID string, policy *domain.SpendingPolicy) error {
	raw, err := nullableJSON(policy)
	if err != nil {
		return err
	}
	return r.execOne(ctx, "update member spending policy", walletID+"/"+userID,
		`UPDATE wallet_members SET spending_policy = $1 WHERE wallet_id = $2 AND user_id = $3`, raw, walletID, userID)
}

func (r *WalletRepo) execOne(ctx context.Context, op, ref, query string, args ...any) error {
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %s not found", op, ref)
	}
	return nil
}

func scanMember(row pgx.Row) (*domain.Member, error) {
	m := &domain.Member{}
	var role string
	var policy []byte
	if err := row.Scan(&m.WalletID, &m.UserID, &role, &m.XFPs, &policy); err != nil {
		return nil, err
	}
	m.Role = domain.ParseWalletRole(role)
	if len(policy) > 0 {
		m.SpendingPolicy = &domain.SpendingPolicy{}
		if err := json.Unmarshal(policy, m.SpendingPolicy); err != nil {
			return nil, fmt.Errorf("decode member spending policy: %w", err)
		}
	}
	return m, nil
}

// nullableJSON encodes v for a JSONB column; a nil pointer becomes NULL.
func nullableJSON[T any](v *T) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %T: %w", v, err)
	}
	return raw, nil
}
