package service

import (
	"context"
	"fmt"
	"time"

	"wallet-governance/internal/core/domain"
	"wallet-governance/internal/core/ports"
	"wallet-governance/pkg/apperror"

	"github.com/rs/zerolog"
)

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	walletRepo ports.WalletRepository
	health     ports.HealthService
	now        func() time.Time
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl. health may be nil; when set,
// every registered member key starts being tracked.
func NewWalletService(walletRepo ports.WalletRepository, health ports.HealthService, log zerolog.Logger) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		health:     health,
		now:        func() time.Time { return time.Now().UTC() },
		log:        log,
	}
}

// Register stores a wallet and its members as given by the wallet backend.
func (s *WalletServiceImpl) Register(ctx context.Context, req ports.RegisterWalletRequest) (*domain.Wallet, error) {
	if req.ID == "" {
		return nil, apperror.Validation("wallet id is required")
	}
	if err := req.Config.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	if req.Policy != nil && !req.Policy.TimeUnit.Valid() {
		return nil, apperror.Validation("invalid spending policy time unit")
	}

	existing, err := s.walletRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get wallet: %w", err))
	}
	if existing != nil {
		return nil, apperror.Validation("wallet already registered")
	}

	seen := make(map[string]bool, len(req.Members))
	members := make([]domain.Member, 0, len(req.Members))
	for _, m := range req.Members {
		if m.UserID == "" {
			return nil, apperror.Validation("member user id is required")
		}
		if seen[m.UserID] {
			return nil, apperror.Validation(fmt.Sprintf("member %s listed twice", m.UserID))
		}
		seen[m.UserID] = true
		m.WalletID = req.ID
		members = append(members, m)
	}

	now := s.now()
	wallet := &domain.Wallet{
		ID:             req.ID,
		GroupID:        req.GroupID,
		LocalID:        req.LocalID,
		Config:         req.Config,
		SpendingPolicy: req.Policy,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.walletRepo.Create(ctx, wallet, members); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create wallet: %w", err))
	}

	if s.health != nil {
		for _, m := range members {
			if !m.Role.IsKeyHolder() {
				continue
			}
			for _, xfp := range m.XFPs {
				if _, err := s.health.TrackKey(ctx, wallet.ID, xfp); err != nil {
					s.log.Warn().Err(err).Str("wallet_id", wallet.ID).Str("xfp", xfp).Msg("failed to track member key")
				}
			}
		}
	}

	s.log.Info().
		Str("wallet_id", wallet.ID).
		Int("required_signatures", wallet.Config.RequiredSignatures).
		Int("total_keys", wallet.Config.TotalKeys).
		Int("members", len(members)).
		Msg("wallet registered")

	return wallet, nil
}

// Get returns the wallet and its members.
func (s *WalletServiceImpl) Get(ctx context.Context, walletID string) (*domain.Wallet, []domain.Member, error) {
	wallet, err := s.loadWallet(ctx, walletID)
	if err != nil {
		return nil, nil, err
	}
	members, err := s.walletRepo.ListMembers(ctx, walletID)
	if err != nil {
		return nil, nil, apperror.ErrDatabaseError(fmt.Errorf("list members: %w", err))
	}
	return wallet, members, nil
}

// SetSpendingPolicy replaces the wallet-level spending policy.
func (s *WalletServiceImpl) SetSpendingPolicy(ctx context.Context, walletID string, policy domain.SpendingPolicy) error {
	if !policy.TimeUnit.Valid() {
		return apperror.Validation("invalid spending policy time unit")
	}
	if _, err := s.loadWallet(ctx, walletID); err != nil {
		return err
	}
	if err := s.walletRepo.UpdateSpendingPolicy(ctx, walletID, &policy); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("update spending policy: %w", err))
	}
	return nil
}

// SetMemberSpendingPolicy replaces the spending policy of one member.
func (s *WalletServiceImpl) SetMemberSpendingPolicy(ctx context.Context, walletID, userID string, policy domain.SpendingPolicy) error {
	if !policy.TimeUnit.Valid() {
		return apperror.Validation("invalid spending policy time unit")
	}
	if _, err := s.Member(ctx, walletID, userID); err != nil {
		return err
	}
	if err := s.walletRepo.UpdateMemberSpendingPolicy(ctx, walletID, userID, &policy); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("update member spending policy: %w", err))
	}
	return nil
}

// Member returns one registered member of the wallet.
func (s *WalletServiceImpl) Member(ctx context.Context, walletID, userID string) (*domain.Member, error) {
	m, err := s.walletRepo.GetMember(ctx, walletID, userID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get member: %w", err))
	}
	if m == nil {
		return nil, apperror.ErrNotFound("member")
	}
	return m, nil
}

func (s *WalletServiceImpl) loadWallet(ctx context.Context, walletID string) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	return wallet, nil
}
