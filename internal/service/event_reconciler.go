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

// EventReconcilerImpl implements ports.EventReconciler.
//
// An event id is recorded in the durable store before any side effect, so a
// redelivered event is never applied twice. Events sharing a serialization key
// are handled one at a time; its locks are taken before any service lock.
type EventReconcilerImpl struct {
	store       ports.HandledEventStore
	cache       ports.HandledEventCache
	cacheTTL    time.Duration
	dummyTx     ports.DummyTransactionService
	health      ports.HealthService
	inheritance ports.InheritanceService
	push        ports.PushPublisher
	session     domain.Session
	locks       *walletLocks
	now         func() time.Time
	log         zerolog.Logger
}

// NewEventReconciler creates a new EventReconcilerImpl. cache may be nil.
func NewEventReconciler(
	store ports.HandledEventStore,
	cache ports.HandledEventCache,
	cacheTTL time.Duration,
	dummyTx ports.DummyTransactionService,
	health ports.HealthService,
	inheritance ports.InheritanceService,
	push ports.PushPublisher,
	session domain.Session,
	log zerolog.Logger,
) *EventReconcilerImpl {
	ensureMetrics()
	return &EventReconcilerImpl{
		store:       store,
		cache:       cache,
		cacheTTL:    cacheTTL,
		dummyTx:     dummyTx,
		health:      health,
		inheritance: inheritance,
		push:        push,
		session:     session,
		locks:       newWalletLocks(),
		now:         func() time.Time { return time.Now().UTC() },
		log:         log,
	}
}

// Handle applies ev at most once.
func (r *EventReconcilerImpl) Handle(ctx context.Context, ev domain.Event) (ports.HandleResult, error) {
	h := ev.Header()
	if h.ID == "" {
		return "", apperror.Validation("event id is required")
	}
	start := time.Now()
	defer func() {
		handleDuration.WithLabelValues(string(ev.Kind())).Observe(time.Since(start).Seconds())
	}()

	unlock := r.locks.Lock(h.SerializationKey())
	defer unlock()

	log := r.log.With().Str("event_id", h.ID).Str("kind", string(ev.Kind())).Logger()

	handled, err := r.isHandled(ctx, h.ID)
	if err != nil {
		return "", err
	}
	if handled {
		eventsHandled.WithLabelValues(string(ev.Kind()), string(ports.HandleDuplicate)).Inc()
		log.Debug().Msg("event already handled")
		return ports.HandleDuplicate, nil
	}

	inserted, err := r.store.MarkHandled(ctx, domain.HandledEvent{EventID: h.ID, Kind: ev.Kind(), HandledAt: r.now()})
	if err != nil {
		return "", apperror.ErrDatabaseError(fmt.Errorf("record handled event: %w", err))
	}
	if !inserted {
		eventsHandled.WithLabelValues(string(ev.Kind()), string(ports.HandleDuplicate)).Inc()
		return ports.HandleDuplicate, nil
	}
	if r.cache != nil {
		if _, err := r.cache.Mark(ctx, h.ID, r.cacheTTL); err != nil {
			log.Warn().Err(err).Msg("handled event cache write failed")
		}
	}

	push, err := r.dispatch(ctx, ev)
	switch {
	case err == nil:
	case apperror.IsPolicy(err):
		// expected when the event echoes a local action or arrives late
		lvl := log.Warn()
		if r.session.IsLocal(h.ActorID) {
			lvl = log.Debug()
		}
		lvl.Err(err).Msg("event rejected by engine state")
	default:
		if apperror.IsInvariant(err) {
			invariantFailures.WithLabelValues("reconciler").Inc()
		}
		eventsHandled.WithLabelValues(string(ev.Kind()), "failed").Inc()
		log.Error().Err(err).Msg("event dispatch failed")
		return "", err
	}

	if push == nil {
		eventsHandled.WithLabelValues(string(ev.Kind()), string(ports.HandleDropped)).Inc()
		log.Debug().Msg("event dropped")
		return ports.HandleDropped, nil
	}

	push.EventID = h.ID
	push.WalletID = h.WalletID
	push.GroupID = h.GroupID
	push.LocalOrigin = r.session.IsLocal(h.ActorID)
	push.At = r.now()
	if err := r.push.Publish(ctx, *push); err != nil {
		log.Warn().Err(err).Msg("push publish failed")
	}

	eventsHandled.WithLabelValues(string(ev.Kind()), string(ports.HandleApplied)).Inc()
	log.Info().Str("serialization_key", h.SerializationKey()).Msg("event applied")
	return ports.HandleApplied, nil
}

func (r *EventReconcilerImpl) isHandled(ctx context.Context, id string) (bool, error) {
	if r.cache != nil {
		seen, err := r.cache.Seen(ctx, id)
		if err != nil {
			r.log.Warn().Err(err).Str("event_id", id).Msg("handled event cache read failed, falling through to store")
		}
		if seen {
			return true, nil
		}
	}
	handled, err := r.store.IsHandled(ctx, id)
	if err != nil {
		return false, apperror.ErrDatabaseError(fmt.Errorf("check handled event: %w", err))
	}
	return handled, nil
}

// dispatch routes one event to its component. A nil push means the event was
// dropped.
func (r *EventReconcilerImpl) dispatch(ctx context.Context, ev domain.Event) (*domain.PushEvent, error) {
	switch e := ev.(type) {
	case domain.ServerTransactionUpdated:
		return r.onServerTransaction(ctx, e)
	case domain.KeyAdded:
		if _, err := r.health.TrackKey(ctx, e.WalletID, e.XFP); err != nil {
			return nil, err
		}
		return &domain.PushEvent{Kind: domain.PushKeyAdded, XFP: e.XFP}, nil
	case domain.WalletCreated:
		return &domain.PushEvent{Kind: domain.PushWalletCreated}, nil
	case domain.WalletReset:
		if err := r.health.Reset(ctx, e.WalletID); err != nil {
			return nil, err
		}
		return &domain.PushEvent{Kind: domain.PushWalletReset}, nil
	case domain.TransactionCancelled:
		push := &domain.PushEvent{Kind: domain.PushTransactionCancelled, TransactionID: e.TransactionID}
		id, err := uuid.Parse(e.TransactionID)
		if err != nil {
			return push, apperror.Validation("invalid transaction id")
		}
		if _, err := r.dummyTx.ApplyCancellation(ctx, id, e.ActorID); err != nil {
			return push, err
		}
		return push, nil
	case domain.MembershipRequestCreated:
		return &domain.PushEvent{Kind: domain.PushMembershipRequestCreated}, nil
	case domain.GroupWalletCreated:
		return &domain.PushEvent{Kind: domain.PushGroupWalletCreated}, nil
	case domain.HealthCheckCompleted:
		checkedAt := e.OccurredAt
		if e.CheckedAtMillis > 0 {
			checkedAt = time.UnixMilli(e.CheckedAtMillis).UTC()
		}
		if checkedAt.IsZero() {
			checkedAt = r.now()
		}
		if _, err := r.health.RecordResult(ctx, e.WalletID, e.XFP, checkedAt); err != nil {
			return nil, err
		}
		return &domain.PushEvent{Kind: domain.PushHealthCheckCompleted, XFP: e.XFP}, nil
	case domain.InheritanceChanged:
		if e.Cancelled {
			if err := r.inheritance.Deactivate(ctx, e.WalletID); err != nil {
				return nil, err
			}
		}
		return &domain.PushEvent{Kind: domain.PushInheritanceChanged, Cancelled: e.Cancelled}, nil
	case domain.UnknownEvent:
		return nil, nil
	default:
		return nil, apperror.ErrInvariantViolation(fmt.Sprintf("unhandled event type %T", ev))
	}
}

func (r *EventReconcilerImpl) onServerTransaction(ctx context.Context, e domain.ServerTransactionUpdated) (*domain.PushEvent, error) {
	push := &domain.PushEvent{Kind: domain.PushServerTransaction, TransactionID: e.TransactionID}
	if e.ErrorMessage != "" {
		push.Kind = domain.PushTransactionError
		push.Message = e.ErrorMessage
		return push, nil
	}

	id, err := uuid.Parse(e.TransactionID)
	if err != nil {
		return push, apperror.Validation("invalid transaction id")
	}
	if e.UnrecognizedStatus != "" {
		r.log.Warn().
			Str("event_id", e.ID).
			Str("tx_id", e.TransactionID).
			Str("status", e.UnrecognizedStatus).
			Msg("unrecognized transaction status, no status change applied")
	}

	if e.SignerID != "" {
		_, err := r.dummyTx.Sign(ctx, ports.SignDummyTransactionRequest{
			ID:       id,
			MemberID: e.SignerID,
			XFP:      e.SignerXFP,
			Value:    e.Signature,
		})
		if err != nil && (!apperror.IsPolicy(err) || e.Status == "") {
			return push, err
		}
		// a signature already counted does not stop the status from applying
	}

	switch e.Status {
	case domain.DummyTxExecuted:
		if _, err := r.dummyTx.ConfirmExecuted(ctx, id); err != nil {
			return push, err
		}
	case domain.DummyTxCancelled:
		if _, err := r.dummyTx.ApplyCancellation(ctx, id, e.ActorID); err != nil {
			return push, err
		}
	}
	return push, nil
}
