package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"wallet-governance/internal/core/domain"
	"wallet-governance/internal/core/ports"
	"wallet-governance/pkg/apperror"

	"github.com/rs/zerolog"
)

// HealthServiceImpl implements ports.HealthService. It keeps one
// domain.KeyHealthTracker per wallet, hydrated from the repository on first
// use. Persistence is best effort: the map can be rebuilt from the backend.
type HealthServiceImpl struct {
	healthRepo ports.KeyHealthRepository
	walletRepo ports.WalletRepository
	signer     ports.SigningLayer
	cooldown   time.Duration
	reminder   time.Duration
	locks      *walletLocks

	mu       sync.Mutex
	trackers map[string]*domain.KeyHealthTracker

	now func() time.Time
	log zerolog.Logger
}

// NewHealthService creates a new HealthServiceImpl.
func NewHealthService(
	healthRepo ports.KeyHealthRepository,
	walletRepo ports.WalletRepository,
	signer ports.SigningLayer,
	cooldown, reminder time.Duration,
	log zerolog.Logger,
) *HealthServiceImpl {
	ensureMetrics()
	return &HealthServiceImpl{
		healthRepo: healthRepo,
		walletRepo: walletRepo,
		signer:     signer,
		cooldown:   cooldown,
		reminder:   reminder,
		locks:      newWalletLocks(),
		trackers:   make(map[string]*domain.KeyHealthTracker),
		now:        func() time.Time { return time.Now().UTC() },
		log:        log,
	}
}

// Request opens a health-check round for xfp and hands it to the signing layer.
func (s *HealthServiceImpl) Request(ctx context.Context, walletID, xfp, memberID string) (domain.HealthCheckRequest, error) {
	unlock := s.locks.Lock(walletID)
	defer unlock()

	tr, err := s.tracker(ctx, walletID)
	if err != nil {
		return domain.HealthCheckRequest{}, err
	}
	member, err := s.walletRepo.GetMember(ctx, walletID, memberID)
	if err != nil {
		return domain.HealthCheckRequest{}, apperror.ErrDatabaseError(fmt.Errorf("get member: %w", err))
	}

	req, err := tr.RequestHealthCheck(xfp, member)
	if err != nil {
		healthRequests.WithLabelValues(apperror.CodeOf(err)).Inc()
		return domain.HealthCheckRequest{}, err
	}
	s.persist(ctx, tr, xfp)

	if err := s.signer.SubmitHealthCheck(ctx, req); err != nil {
		if _, cerr := tr.CancelHealthCheck(xfp, s.now()); cerr == nil {
			s.persist(ctx, tr, xfp)
		}
		healthRequests.WithLabelValues("upstream_failure").Inc()
		return domain.HealthCheckRequest{}, apperror.ErrUpstreamFailure(err)
	}

	healthRequests.WithLabelValues("requested").Inc()
	s.log.Info().
		Str("wallet_id", walletID).
		Str("xfp", xfp).
		Str("member_id", memberID).
		Bool("can_health_check", req.CanHealthCheck).
		Msg("health check requested")
	return req, nil
}

// RecordResult stores a completed health check.
func (s *HealthServiceImpl) RecordResult(ctx context.Context, walletID, xfp string, checkedAt time.Time) (domain.KeyHealthStatus, error) {
	unlock := s.locks.Lock(walletID)
	defer unlock()

	tr, err := s.tracker(ctx, walletID)
	if err != nil {
		return domain.KeyHealthStatus{}, err
	}
	status := tr.RecordHealthCheckResult(xfp, checkedAt, s.now())
	s.persist(ctx, tr, xfp)

	s.log.Info().Str("wallet_id", walletID).Str("xfp", xfp).Time("checked_at", checkedAt).Msg("health check recorded")
	return status, nil
}

// Cancel abandons an outstanding round. Masters and admins may cancel any key's
// round; other key holders only their own.
func (s *HealthServiceImpl) Cancel(ctx context.Context, walletID, xfp, memberID string) (domain.KeyHealthStatus, error) {
	unlock := s.locks.Lock(walletID)
	defer unlock()

	tr, err := s.tracker(ctx, walletID)
	if err != nil {
		return domain.KeyHealthStatus{}, err
	}
	member, err := s.walletRepo.GetMember(ctx, walletID, memberID)
	if err != nil {
		return domain.KeyHealthStatus{}, apperror.ErrDatabaseError(fmt.Errorf("get member: %w", err))
	}
	if member == nil || !member.Role.IsKeyHolder() ||
		(!member.Role.CanManageHealthChecks() && !member.OwnsKey(xfp)) {
		return domain.KeyHealthStatus{}, apperror.ErrNotKeyHolder()
	}
	status, err := tr.CancelHealthCheck(xfp, s.now())
	if err != nil {
		return domain.KeyHealthStatus{}, err
	}
	s.persist(ctx, tr, xfp)
	return status, nil
}

// TrackKey starts tracking xfp; an already tracked key is returned unchanged.
func (s *HealthServiceImpl) TrackKey(ctx context.Context, walletID, xfp string) (domain.KeyHealthStatus, error) {
	if xfp == "" {
		return domain.KeyHealthStatus{}, apperror.Validation("xfp is required")
	}
	unlock := s.locks.Lock(walletID)
	defer unlock()

	tr, err := s.tracker(ctx, walletID)
	if err != nil {
		return domain.KeyHealthStatus{}, err
	}
	if st, ok := tr.Status(xfp); ok {
		return st, nil
	}
	st := tr.Track(domain.KeyHealthStatus{XFP: xfp}, s.now())
	s.persist(ctx, tr, xfp)
	return st, nil
}

// Reset forgets every key of the wallet, e.g. after its draft was reset.
func (s *HealthServiceImpl) Reset(ctx context.Context, walletID string) error {
	unlock := s.locks.Lock(walletID)
	defer unlock()

	s.mu.Lock()
	delete(s.trackers, walletID)
	s.mu.Unlock()

	if err := s.healthRepo.DeleteByWallet(ctx, walletID); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("delete key health: %w", err))
	}
	s.log.Info().Str("wallet_id", walletID).Msg("key health reset")
	return nil
}

// List returns every tracked key of the wallet with eligibility at now.
func (s *HealthServiceImpl) List(ctx context.Context, walletID string) ([]domain.KeyHealthStatus, error) {
	unlock := s.locks.Lock(walletID)
	defer unlock()

	tr, err := s.tracker(ctx, walletID)
	if err != nil {
		return nil, err
	}
	tr.Refresh(s.now())
	return tr.Statuses(), nil
}

// Due lists keys whose last check is older than the reminder interval.
func (s *HealthServiceImpl) Due(ctx context.Context, walletID string) ([]domain.KeyHealthStatus, error) {
	unlock := s.locks.Lock(walletID)
	defer unlock()

	tr, err := s.tracker(ctx, walletID)
	if err != nil {
		return nil, err
	}
	return tr.Due(s.now(), s.reminder), nil
}

// tracker returns the wallet's tracker, hydrating it on first use. Callers hold
// the wallet lock.
func (s *HealthServiceImpl) tracker(ctx context.Context, walletID string) (*domain.KeyHealthTracker, error) {
	s.mu.Lock()
	tr, ok := s.trackers[walletID]
	s.mu.Unlock()
	if ok {
		return tr, nil
	}

	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	statuses, err := s.healthRepo.ListByWallet(ctx, walletID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list key health: %w", err))
	}

	now := s.now()
	tr = domain.NewKeyHealthTracker(*wallet, s.cooldown)
	for _, st := range statuses {
		tr.Track(st, now)
	}

	s.mu.Lock()
	s.trackers[walletID] = tr
	s.mu.Unlock()
	return tr, nil
}

func (s *HealthServiceImpl) persist(ctx context.Context, tr *domain.KeyHealthTracker, xfp string) {
	st, ok := tr.Status(xfp)
	if !ok {
		return
	}
	if err := s.healthRepo.Upsert(ctx, st); err != nil {
		s.log.Warn().Err(err).Str("wallet_id", st.WalletID).Str("xfp", xfp).Msg("failed to persist key health")
	}
}
