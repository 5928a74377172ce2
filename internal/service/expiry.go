package service

import "time"

// NeverExpire keeps pending proposals until they are signed or cancelled.
type NeverExpire struct{}

// Cutoff implements ports.ExpiryPolicy.
func (NeverExpire) Cutoff(time.Time) (time.Time, bool) { return time.Time{}, false }

// TTLExpiry expires proposals that stayed in PENDING_SIGNATURES longer than TTL.
type TTLExpiry struct {
	TTL time.Duration
}

// Cutoff implements ports.ExpiryPolicy.
func (p TTLExpiry) Cutoff(now time.Time) (time.Time, bool) {
	if p.TTL <= 0 {
		return time.Time{}, false
	}
	return now.Add(-p.TTL), true
}

// SystemActor is recorded as the canceller of expired proposals.
const SystemActor = "system"
