package service

import (
	"context"
	"fmt"
	"time"

	"wallet-governance/internal/core/domain"
	"wallet-governance/internal/core/ports"
	"wallet-governance/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DummyTransactionServiceImpl implements ports.DummyTransactionService. All
// mutations of one wallet's proposals run under that wallet's lock.
type DummyTransactionServiceImpl struct {
	txRepo     ports.DummyTransactionRepository
	walletRepo ports.WalletRepository
	signer     ports.SigningLayer
	expiry     ports.ExpiryPolicy
	handlers   map[domain.DummyTransactionType]ports.ExecutionHandler
	locks      *walletLocks
	now        func() time.Time
	log        zerolog.Logger
}

// NewDummyTransactionService creates a new DummyTransactionServiceImpl. A nil
// expiry policy means proposals never expire.
func NewDummyTransactionService(
	txRepo ports.DummyTransactionRepository,
	walletRepo ports.WalletRepository,
	signer ports.SigningLayer,
	expiry ports.ExpiryPolicy,
	log zerolog.Logger,
) *DummyTransactionServiceImpl {
	ensureMetrics()
	if expiry == nil {
		expiry = NeverExpire{}
	}
	return &DummyTransactionServiceImpl{
		txRepo:     txRepo,
		walletRepo: walletRepo,
		signer:     signer,
		expiry:     expiry,
		handlers:   make(map[domain.DummyTransactionType]ports.ExecutionHandler),
		locks:      newWalletLocks(),
		now:        func() time.Time { return time.Now().UTC() },
		log:        log,
	}
}

// RegisterHandler routes executed proposals of h.Types() to h. Call it during
// wiring, before the service is used.
func (s *DummyTransactionServiceImpl) RegisterHandler(h ports.ExecutionHandler) {
	for _, t := range h.Types() {
		s.handlers[t] = h
	}
}

// Create opens a proposal on behalf of a key-holding member. The creator's
// approval counts immediately.
func (s *DummyTransactionServiceImpl) Create(ctx context.Context, req ports.CreateDummyTransactionRequest) (*domain.DummyTransaction, error) {
	unlock := s.locks.Lock(req.WalletID)
	defer unlock()

	wallet, err := s.loadWallet(ctx, req.WalletID)
	if err != nil {
		return nil, err
	}
	if _, err := s.keyHolder(ctx, req.WalletID, req.MemberID, req.XFP); err != nil {
		observeRejection("dummy_tx", "create", err)
		return nil, err
	}

	tx, err := domain.NewDummyTransaction(wallet, req.Type, req.Payload, domain.Signature{
		MemberID: req.MemberID,
		XFP:      req.XFP,
		Value:    req.Value,
	}, s.now())
	if err != nil {
		return nil, s.fail("create", err)
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create dummy transaction: %w", err))
	}
	dummyTxTransitions.WithLabelValues(string(tx.Type), string(tx.Status)).Inc()

	s.log.Info().
		Str("tx_id", tx.ID.String()).
		Str("wallet_id", tx.WalletID).
		Str("type", string(tx.Type)).
		Int("required_signatures", tx.RequiredSignatures).
		Int("pending_signatures", tx.PendingSignatures).
		Msg("dummy transaction created")

	s.autoBroadcast(ctx, wallet, tx)
	return tx, nil
}

// Sign counts one counter-signature.
func (s *DummyTransactionServiceImpl) Sign(ctx context.Context, req ports.SignDummyTransactionRequest) (*domain.DummyTransaction, error) {
	walletID, err := s.walletOf(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	unlock := s.locks.Lock(walletID)
	defer unlock()

	tx, err := s.load(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if _, err := s.keyHolder(ctx, tx.WalletID, req.MemberID, req.XFP); err != nil {
		observeRejection("dummy_tx", "sign", err)
		return nil, err
	}

	becameReady, err := tx.ApplySignature(domain.Signature{
		MemberID: req.MemberID,
		XFP:      req.XFP,
		Value:    req.Value,
	}, s.now())
	if err != nil {
		return nil, s.fail("sign", err)
	}
	if err := s.txRepo.Update(ctx, tx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update dummy transaction: %w", err))
	}

	s.log.Info().
		Str("tx_id", tx.ID.String()).
		Str("wallet_id", tx.WalletID).
		Str("member_id", req.MemberID).
		Int("pending_signatures", tx.PendingSignatures).
		Msg("dummy transaction signed")

	if becameReady {
		dummyTxTransitions.WithLabelValues(string(tx.Type), string(tx.Status)).Inc()
		if wallet, err := s.walletRepo.GetByID(ctx, tx.WalletID); err == nil && wallet != nil {
			s.autoBroadcast(ctx, wallet, tx)
		}
	}
	return tx, nil
}

// Cancel withdraws a proposal on behalf of its requester or any key holder.
func (s *DummyTransactionServiceImpl) Cancel(ctx context.Context, id uuid.UUID, memberID string) (*domain.DummyTransaction, error) {
	walletID, err := s.walletOf(ctx, id)
	if err != nil {
		return nil, err
	}
	unlock := s.locks.Lock(walletID)
	defer unlock()

	tx, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx.RequestedByUserID != memberID {
		if _, err := s.keyHolder(ctx, tx.WalletID, memberID, ""); err != nil {
			observeRejection("dummy_tx", "cancel", err)
			return nil, err
		}
	}
	return s.cancelLocked(ctx, tx, memberID)
}

// ApplyCancellation applies a cancel reported by the wallet backend. No role
// check is made: the backend already authorised it.
func (s *DummyTransactionServiceImpl) ApplyCancellation(ctx context.Context, id uuid.UUID, actorID string) (*domain.DummyTransaction, error) {
	walletID, err := s.walletOf(ctx, id)
	if err != nil {
		return nil, err
	}
	unlock := s.locks.Lock(walletID)
	defer unlock()

	tx, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.cancelLocked(ctx, tx, actorID)
}

func (s *DummyTransactionServiceImpl) cancelLocked(ctx context.Context, tx *domain.DummyTransaction, by string) (*domain.DummyTransaction, error) {
	changed, err := tx.Cancel(by, s.now())
	if err != nil {
		return nil, s.fail("cancel", err)
	}
	if !changed {
		return tx, nil
	}
	if err := s.txRepo.Update(ctx, tx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update dummy transaction: %w", err))
	}
	dummyTxTransitions.WithLabelValues(string(tx.Type), string(tx.Status)).Inc()

	s.log.Info().
		Str("tx_id", tx.ID.String()).
		Str("wallet_id", tx.WalletID).
		Str("cancelled_by", by).
		Msg("dummy transaction cancelled")
	return tx, nil
}

// Broadcast hands a ready proposal to the signing layer. The in-flight flag is
// persisted before the hand-off; if the signing layer refuses, it is cleared
// again. Completion arrives later through ConfirmExecuted.
func (s *DummyTransactionServiceImpl) Broadcast(ctx context.Context, id uuid.UUID, memberID string) (*domain.DummyTransaction, error) {
	walletID, err := s.walletOf(ctx, id)
	if err != nil {
		return nil, err
	}
	unlock := s.locks.Lock(walletID)
	defer unlock()

	tx, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.keyHolder(ctx, tx.WalletID, memberID, ""); err != nil {
		observeRejection("dummy_tx", "broadcast", err)
		return nil, err
	}
	if err := s.broadcastLocked(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *DummyTransactionServiceImpl) broadcastLocked(ctx context.Context, tx *domain.DummyTransaction) error {
	if tx.BroadcastRequestedAt != nil && tx.Status == domain.DummyTxReadyToBroadcast {
		return nil
	}
	if err := tx.MarkBroadcastRequested(s.now()); err != nil {
		return s.fail("broadcast", err)
	}
	if err := s.txRepo.Update(ctx, tx); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("update dummy transaction: %w", err))
	}

	if err := s.signer.Broadcast(ctx, tx); err != nil {
		tx.ClearBroadcastRequest(s.now())
		if uerr := s.txRepo.Update(ctx, tx); uerr != nil {
			s.log.Error().Err(uerr).Str("tx_id", tx.ID.String()).Msg("failed to clear broadcast flag")
		}
		s.log.Warn().Err(err).Str("tx_id", tx.ID.String()).Msg("signing layer refused broadcast")
		return apperror.ErrUpstreamFailure(err)
	}

	s.log.Info().
		Str("tx_id", tx.ID.String()).
		Str("wallet_id", tx.WalletID).
		Msg("dummy transaction handed to signing layer")
	return nil
}

// autoBroadcast submits a proposal that just reached quorum when the wallet's
// server key policy asks for it. Failures leave the proposal READY.
func (s *DummyTransactionServiceImpl) autoBroadcast(ctx context.Context, wallet *domain.Wallet, tx *domain.DummyTransaction) {
	if tx.Status != domain.DummyTxReadyToBroadcast || wallet.ServerKeyPolicy == nil || !wallet.ServerKeyPolicy.AutoBroadcast {
		return
	}
	if err := s.broadcastLocked(ctx, tx); err != nil {
		s.log.Warn().Err(err).Str("tx_id", tx.ID.String()).Msg("auto broadcast failed")
	}
}

// ConfirmExecuted applies the broadcast confirmation and runs the execution
// handler for the proposal type. The handler runs before the new status is
// stored, so a failed handler leaves the proposal READY and the confirmation
// can be retried. A handler that refuses the effect with a policy error still
// lets the proposal become EXECUTED, since the backend already executed it.
func (s *DummyTransactionServiceImpl) ConfirmExecuted(ctx context.Context, id uuid.UUID) (*domain.DummyTransaction, error) {
	walletID, err := s.walletOf(ctx, id)
	if err != nil {
		return nil, err
	}
	unlock := s.locks.Lock(walletID)
	defer unlock()

	tx, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	changed, err := tx.ConfirmExecuted(s.now())
	if err != nil {
		return nil, s.fail("confirm", err)
	}
	if !changed {
		return tx, nil
	}

	if h, ok := s.handlers[tx.Type]; ok {
		if err := h.OnDummyTransactionExecuted(ctx, tx); err != nil {
			if !apperror.IsPolicy(err) {
				s.log.Error().Err(err).Str("tx_id", tx.ID.String()).Str("type", string(tx.Type)).Msg("execution handler failed")
				if apperror.CodeOf(err) != "" {
					return nil, err
				}
				return nil, apperror.InternalError(fmt.Errorf("execute %s: %w", tx.Type, err))
			}
			// executed upstream; the local effect no longer applies
			s.log.Warn().Err(err).Str("tx_id", tx.ID.String()).Str("type", string(tx.Type)).Msg("execution effect skipped")
		}
	}

	if err := s.txRepo.Update(ctx, tx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("update dummy transaction: %w", err))
	}
	dummyTxTransitions.WithLabelValues(string(tx.Type), string(tx.Status)).Inc()

	s.log.Info().
		Str("tx_id", tx.ID.String()).
		Str("wallet_id", tx.WalletID).
		Str("type", string(tx.Type)).
		Msg("dummy transaction executed")
	return tx, nil
}

// Get returns one proposal.
func (s *DummyTransactionServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.DummyTransaction, error) {
	return s.load(ctx, id)
}

// List returns the wallet's proposals, optionally filtered by status.
func (s *DummyTransactionServiceImpl) List(ctx context.Context, walletID string, status *domain.DummyTransactionStatus) ([]domain.DummyTransaction, error) {
	txs, err := s.txRepo.ListByWallet(ctx, walletID, status)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list dummy transactions: %w", err))
	}
	return txs, nil
}

// ExpireStale cancels pending proposals older than the expiry policy allows
// and returns how many were cancelled.
func (s *DummyTransactionServiceImpl) ExpireStale(ctx context.Context) (int, error) {
	cutoff, ok := s.expiry.Cutoff(s.now())
	if !ok {
		return 0, nil
	}

	stale, err := s.txRepo.ListPendingBefore(ctx, cutoff)
	if err != nil {
		return 0, apperror.ErrDatabaseError(fmt.Errorf("list stale dummy transactions: %w", err))
	}

	expired := 0
	for _, candidate := range stale {
		n, err := s.expireOne(ctx, candidate, cutoff)
		if err != nil {
			return expired, err
		}
		expired += n
	}
	if expired > 0 {
		s.log.Info().Int("count", expired).Time("cutoff", cutoff).Msg("expired stale dummy transactions")
	}
	return expired, nil
}

func (s *DummyTransactionServiceImpl) expireOne(ctx context.Context, candidate domain.DummyTransaction, cutoff time.Time) (int, error) {
	unlock := s.locks.Lock(candidate.WalletID)
	defer unlock()

	tx, err := s.load(ctx, candidate.ID)
	if err != nil {
		return 0, err
	}
	// re-check under the lock: it may have been signed meanwhile
	if tx.Status != domain.DummyTxPendingSignatures || !tx.CreatedAt.Before(cutoff) {
		return 0, nil
	}
	if _, err := s.cancelLocked(ctx, tx, SystemActor); err != nil {
		return 0, err
	}
	return 1, nil
}

func (s *DummyTransactionServiceImpl) load(ctx context.Context, id uuid.UUID) (*domain.DummyTransaction, error) {
	tx, err := s.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get dummy transaction: %w", err))
	}
	if tx == nil {
		return nil, apperror.ErrNotFound("dummy transaction")
	}
	return tx, nil
}

// walletOf resolves the wallet a proposal belongs to so its lock can be taken.
// The proposal is read again under the lock.
func (s *DummyTransactionServiceImpl) walletOf(ctx context.Context, id uuid.UUID) (string, error) {
	tx, err := s.load(ctx, id)
	if err != nil {
		return "", err
	}
	return tx.WalletID, nil
}

func (s *DummyTransactionServiceImpl) loadWallet(ctx context.Context, walletID string) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	return wallet, nil
}

// keyHolder returns the member if it may approve governed actions, and, when
// xfp is given, holds that key.
func (s *DummyTransactionServiceImpl) keyHolder(ctx context.Context, walletID, memberID, xfp string) (*domain.Member, error) {
	m, err := s.walletRepo.GetMember(ctx, walletID, memberID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get member: %w", err))
	}
	if m == nil || !m.Role.IsKeyHolder() {
		return nil, apperror.ErrNotKeyHolder()
	}
	if xfp != "" && !m.OwnsKey(xfp) {
		return nil, apperror.ErrNotKeyHolder()
	}
	return m, nil
}

// fail records a refused transition. Invariant violations are logged as
// defects and returned unchanged.
func (s *DummyTransactionServiceImpl) fail(operation string, err error) error {
	observeRejection("dummy_tx", operation, err)
	if apperror.IsInvariant(err) {
		s.log.Error().Err(err).Str("operation", operation).Msg("invariant violation")
	}
	return err
}
