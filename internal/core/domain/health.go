package domain

import (
	"sort"
	"time"

	"wallet-governance/pkg/apperror"
)

// KeyHealthStatus is the health-check state of one signing key in one wallet.
type KeyHealthStatus struct {
	WalletID                  string `json:"wallet_id"`
	XFP                       string `json:"xfp"`
	IsPendingHealthCheck      bool   `json:"is_pending_health_check"`
	CanRequestHealthCheck     bool   `json:"can_request_health_check"`
	LastHealthCheckTimeMillis int64  `json:"last_health_check_time_millis"`
}

// HealthCheckRequest is handed to the signing layer; it is never persisted.
type HealthCheckRequest struct {
	KeyXFP         string `json:"key_xfp,omitempty"`
	GroupID        string `json:"group_id,omitempty"`
	WalletID       string `json:"wallet_id,omitempty"`
	WalletLocalID  string `json:"wallet_local_id,omitempty"`
	CanHealthCheck bool   `json:"can_health_check"`
	CanCancel      bool   `json:"can_cancel"`
}

// KeyHealthTracker holds the key health map of a single wallet. It performs no
// I/O: callers persist the statuses and execute the requests it returns.
type KeyHealthTracker struct {
	wallet   Wallet
	cooldown time.Duration
	keys     map[string]*KeyHealthStatus
}

// NewKeyHealthTracker creates an empty tracker for wallet.
func NewKeyHealthTracker(wallet Wallet, cooldown time.Duration) *KeyHealthTracker {
	return &KeyHealthTracker{
		wallet:   wallet,
		cooldown: cooldown,
		keys:     make(map[string]*KeyHealthStatus),
	}
}

// Track inserts or replaces the status of a key.
func (t *KeyHealthTracker) Track(status KeyHealthStatus, now time.Time) KeyHealthStatus {
	status.WalletID = t.wallet.ID
	status.CanRequestHealthCheck = t.canRequest(&status, now)
	t.keys[status.XFP] = &status
	return status
}

// Remove forgets a key, e.g. after the wallet draft was reset.
func (t *KeyHealthTracker) Remove(xfp string) {
	delete(t.keys, xfp)
}

// Status returns the status of xfp.
func (t *KeyHealthTracker) Status(xfp string) (KeyHealthStatus, bool) {
	s, ok := t.keys[xfp]
	if !ok {
		return KeyHealthStatus{}, false
	}
	return *s, true
}

// Statuses returns all tracked keys ordered by fingerprint.
func (t *KeyHealthTracker) Statuses() []KeyHealthStatus {
	out := make([]KeyHealthStatus, 0, len(t.keys))
	for _, s := range t.keys {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].XFP < out[j].XFP })
	return out
}

// RecordHealthCheckResult stores a completed check. A result for an untracked
// key starts tracking it.
func (t *KeyHealthTracker) RecordHealthCheckResult(xfp string, checkedAt, now time.Time) KeyHealthStatus {
	s, ok := t.keys[xfp]
	if !ok {
		s = &KeyHealthStatus{WalletID: t.wallet.ID, XFP: xfp}
		t.keys[xfp] = s
	}
	s.LastHealthCheckTimeMillis = checkedAt.UnixMilli()
	s.IsPendingHealthCheck = false
	s.CanRequestHealthCheck = t.canRequest(s, now)
	return *s
}

// RequestHealthCheck opens a health-check round for xfp on behalf of requester.
// The cool-down only drives CanRequestHealthCheck for reminders; it does not
// block an explicit request.
func (t *KeyHealthTracker) RequestHealthCheck(xfp string, requester *Member) (HealthCheckRequest, error) {
	if requester == nil || !requester.Role.IsKeyHolder() {
		return HealthCheckRequest{}, apperror.ErrNotKeyHolder()
	}
	s, ok := t.keys[xfp]
	if !ok {
		return HealthCheckRequest{}, apperror.ErrNotFound("key")
	}
	if s.IsPendingHealthCheck {
		return HealthCheckRequest{}, apperror.ErrAlreadyPending()
	}

	s.IsPendingHealthCheck = true
	s.CanRequestHealthCheck = false

	return HealthCheckRequest{
		KeyXFP:         xfp,
		GroupID:        t.wallet.GroupID,
		WalletID:       t.wallet.ID,
		WalletLocalID:  t.wallet.LocalID,
		CanHealthCheck: requester.OwnsKey(xfp),
		CanCancel:      true,
	}, nil
}

// CancelHealthCheck abandons an outstanding round without touching the timestamp.
func (t *KeyHealthTracker) CancelHealthCheck(xfp string, now time.Time) (KeyHealthStatus, error) {
	s, ok := t.keys[xfp]
	if !ok {
		return KeyHealthStatus{}, apperror.ErrNotFound("key")
	}
	s.IsPendingHealthCheck = false
	s.CanRequestHealthCheck = t.canRequest(s, now)
	return *s, nil
}

// Refresh recomputes CanRequestHealthCheck for every key at now.
func (t *KeyHealthTracker) Refresh(now time.Time) {
	for _, s := range t.keys {
		s.CanRequestHealthCheck = t.canRequest(s, now)
	}
}

// Due lists keys that are not being checked and whose last check is older than
// reminder (or that were never checked).
func (t *KeyHealthTracker) Due(now time.Time, reminder time.Duration) []KeyHealthStatus {
	var due []KeyHealthStatus
	for _, s := range t.Statuses() {
		if s.IsPendingHealthCheck {
			continue
		}
		if s.LastHealthCheckTimeMillis == 0 || now.Sub(time.UnixMilli(s.LastHealthCheckTimeMillis)) >= reminder {
			due = append(due, s)
		}
	}
	return due
}

func (t *KeyHealthTracker) canRequest(s *KeyHealthStatus, now time.Time) bool {
	if s.IsPendingHealthCheck {
		return false
	}
	if s.LastHealthCheckTimeMillis == 0 {
		return true
	}
	return now.Sub(time.UnixMilli(s.LastHealthCheckTimeMillis)) >= t.cooldown
}
