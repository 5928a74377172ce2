package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wallet-governance/internal/core/domain"
	"wallet-governance/internal/core/ports"
	"wallet-governance/pkg/apperror"

	"github.com/rs/zerolog"
)

// InheritanceServiceImpl implements ports.InheritanceService and is the
// execution handler for the three inheritance proposal types.
//
// Plan changes are only proposed here; the plan itself changes when the
// matching proposal executes. Its lock is never held while calling into the
// dummy transaction service.
type InheritanceServiceImpl struct {
	planRepo ports.InheritancePlanRepository
	dummyTx  ports.DummyTransactionService
	locks    *walletLocks
	now      func() time.Time
	log      zerolog.Logger
}

// NewInheritanceService creates a new InheritanceServiceImpl.
func NewInheritanceService(
	planRepo ports.InheritancePlanRepository,
	dummyTx ports.DummyTransactionService,
	log zerolog.Logger,
) *InheritanceServiceImpl {
	return &InheritanceServiceImpl{
		planRepo: planRepo,
		dummyTx:  dummyTx,
		locks:    newWalletLocks(),
		now:      func() time.Time { return time.Now().UTC() },
		log:      log,
	}
}

// Types implements ports.ExecutionHandler.
func (s *InheritanceServiceImpl) Types() []domain.DummyTransactionType {
	return []domain.DummyTransactionType{
		domain.DummyTxCreateInheritance,
		domain.DummyTxUpdateInheritance,
		domain.DummyTxCancelInheritance,
	}
}

// CreatePlan proposes a new plan. It fails with PlanAlreadyActive if the wallet
// already has one.
func (s *InheritanceServiceImpl) CreatePlan(ctx context.Context, walletID, memberID string, terms domain.InheritanceTerms) (*domain.DummyTransaction, error) {
	if err := terms.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	plan, err := s.load(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if plan != nil && plan.Active {
		return nil, apperror.ErrPlanAlreadyActive()
	}
	return s.propose(ctx, walletID, memberID, domain.DummyTxCreateInheritance, terms)
}

// UpdatePlan proposes new terms for the active plan.
func (s *InheritanceServiceImpl) UpdatePlan(ctx context.Context, walletID, memberID string, terms domain.InheritanceTerms) (*domain.DummyTransaction, error) {
	if err := terms.Validate(); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	if _, err := s.activePlan(ctx, walletID); err != nil {
		return nil, err
	}
	return s.propose(ctx, walletID, memberID, domain.DummyTxUpdateInheritance, terms)
}

// CancelPlan proposes cancelling the active plan.
func (s *InheritanceServiceImpl) CancelPlan(ctx context.Context, walletID, memberID string) (*domain.DummyTransaction, error) {
	plan, err := s.activePlan(ctx, walletID)
	if err != nil {
		return nil, err
	}
	return s.propose(ctx, walletID, memberID, domain.DummyTxCancelInheritance, plan.Terms)
}

func (s *InheritanceServiceImpl) propose(
	ctx context.Context,
	walletID, memberID string,
	txType domain.DummyTransactionType,
	terms domain.InheritanceTerms,
) (*domain.DummyTransaction, error) {
	payload, err := json.Marshal(terms)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal inheritance terms: %w", err))
	}
	return s.dummyTx.Create(ctx, ports.CreateDummyTransactionRequest{
		WalletID: walletID,
		MemberID: memberID,
		Type:     txType,
		Payload:  string(payload),
	})
}

// OnDummyTransactionExecuted applies an executed inheritance proposal.
func (s *InheritanceServiceImpl) OnDummyTransactionExecuted(ctx context.Context, tx *domain.DummyTransaction) error {
	unlock := s.locks.Lock(tx.WalletID)
	defer unlock()

	now := s.now()
	executedAt := now
	if tx.ExecutedAt != nil {
		executedAt = *tx.ExecutedAt
	}

	plan, err := s.load(ctx, tx.WalletID)
	if err != nil {
		return err
	}

	if plan != nil && plan.DummyTransactionID == tx.ID {
		return nil
	}

	log := s.log.With().Str("wallet_id", tx.WalletID).Str("tx_id", tx.ID.String()).Str("type", string(tx.Type)).Logger()

	switch tx.Type {
	case domain.DummyTxCancelInheritance:
		if plan == nil || !plan.Active {
			return nil
		}
		plan.Active = false
	case domain.DummyTxCreateInheritance, domain.DummyTxUpdateInheritance:
		active := plan != nil && plan.Active
		if tx.Type == domain.DummyTxUpdateInheritance && !active {
			log.Warn().Msg("update executed without an active plan, ignoring")
			return apperror.ErrNoPlanFound()
		}
		if tx.Type == domain.DummyTxCreateInheritance && active {
			log.Warn().Msg("create executed over an active plan, ignoring")
			return apperror.ErrPlanAlreadyActive()
		}

		var terms domain.InheritanceTerms
		if err := json.Unmarshal([]byte(tx.Payload), &terms); err != nil {
			return apperror.Validation(fmt.Sprintf("inheritance payload: %v", err))
		}
		terms.BufferInterval = domain.ParseBufferInterval(string(terms.BufferInterval))

		if plan == nil {
			plan = &domain.InheritancePlan{WalletID: tx.WalletID, CreatedAt: now}
		}
		switch {
		case terms.ActivationTimeMillis > 0:
			plan.ActivationTimeMillis = terms.ActivationTimeMillis
		case tx.Type == domain.DummyTxCreateInheritance:
			plan.ActivationTimeMillis = executedAt.UnixMilli()
		}
		plan.Terms = terms
		plan.Active = true
	default:
		return apperror.ErrInvariantViolation(fmt.Sprintf("inheritance handler got %s", tx.Type))
	}

	plan.DummyTransactionID = tx.ID
	plan.UpdatedAt = now
	if err := s.planRepo.Save(ctx, plan); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("save inheritance plan: %w", err))
	}

	log.Info().
		Bool("active", plan.Active).
		Int64("activation_time_millis", plan.ActivationTimeMillis).
		Msg("inheritance plan applied")
	return nil
}

// Deactivate switches the plan off after the backend reported it cancelled.
func (s *InheritanceServiceImpl) Deactivate(ctx context.Context, walletID string) error {
	unlock := s.locks.Lock(walletID)
	defer unlock()

	plan, err := s.load(ctx, walletID)
	if err != nil {
		return err
	}
	if plan == nil || !plan.Active {
		return nil
	}
	plan.Active = false
	plan.UpdatedAt = s.now()
	if err := s.planRepo.Save(ctx, plan); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("save inheritance plan: %w", err))
	}
	s.log.Info().Str("wallet_id", walletID).Msg("inheritance plan deactivated")
	return nil
}

// GetPlan returns the wallet's plan, active or not.
func (s *InheritanceServiceImpl) GetPlan(ctx context.Context, walletID string) (*domain.InheritancePlan, error) {
	plan, err := s.load(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperror.ErrNoPlanFound()
	}
	return plan, nil
}

// GetCountdown derives the buffer countdown of the active plan at now.
func (s *InheritanceServiceImpl) GetCountdown(ctx context.Context, walletID string, now time.Time) (*domain.BufferPeriodCountdown, error) {
	plan, err := s.activePlan(ctx, walletID)
	if err != nil {
		return nil, err
	}
	cd := plan.Countdown(now)
	return &cd, nil
}

// CanClaim reports whether a claim may be made at now. While the buffer is
// running it fails with BufferPeriodActive carrying the countdown.
func (s *InheritanceServiceImpl) CanClaim(ctx context.Context, walletID string, now time.Time) (bool, error) {
	cd, err := s.GetCountdown(ctx, walletID, now)
	if err != nil {
		return false, err
	}
	if cd.RemainingCount > 0 {
		return false, apperror.ErrBufferPeriodActive(*cd)
	}
	return true, nil
}

func (s *InheritanceServiceImpl) activePlan(ctx context.Context, walletID string) (*domain.InheritancePlan, error) {
	plan, err := s.load(ctx, walletID)
	if err != nil {
		return nil, err
	}
	if plan == nil || !plan.Active {
		return nil, apperror.ErrNoPlanFound()
	}
	return plan, nil
}

func (s *InheritanceServiceImpl) load(ctx context.Context, walletID string) (*domain.InheritancePlan, error) {
	plan, err := s.planRepo.Get(ctx, walletID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get inheritance plan: %w", err))
	}
	return plan, nil
}
