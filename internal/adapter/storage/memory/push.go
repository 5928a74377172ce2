package memory

import (
	"context"
	"sync"

	"wallet-governance/internal/core/domain"

	"github.com/rs/zerolog"
)

// PushRecorder implements ports.PushPublisher by logging each push and
// keeping the most recent ones in memory.
type PushRecorder struct {
	mu     sync.Mutex
	events []domain.PushEvent
	limit  int
	log    zerolog.Logger
}

// NewPushRecorder keeps at most limit pushes; limit <= 0 keeps all of them.
func NewPushRecorder(limit int, log zerolog.Logger) *PushRecorder {
	return &PushRecorder{limit: limit, log: log}
}

// Publish implements ports.PushPublisher.
func (p *PushRecorder) Publish(_ context.Context, ev domain.PushEvent) error {
	p.mu.Lock()
	p.events = append(p.events, ev)
	if p.limit > 0 && len(p.events) > p.limit {
		p.events = p.events[len(p.events)-p.limit:]
	}
	p.mu.Unlock()

	p.log.Info().
		Str("kind", string(ev.Kind)).
		Str("event_id", ev.EventID).
		Str("wallet_id", ev.WalletID).
		Bool("local_origin", ev.LocalOrigin).
		Msg("push")
	return nil
}

// Events returns a copy of the recorded pushes, oldest first.
func (p *PushRecorder) Events() []domain.PushEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.PushEvent(nil), p.events...)
}
