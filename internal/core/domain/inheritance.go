package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BufferInterval is the unit of an inheritance buffer period.
type BufferInterval string

const (
	BufferNone    BufferInterval = "NONE"
	BufferHourly  BufferInterval = "HOURLY"
	BufferDaily   BufferInterval = "DAILY"
	BufferWeekly  BufferInterval = "WEEKLY"
	BufferMonthly BufferInterval = "MONTHLY"
)

// ParseBufferInterval maps unknown strings to BufferNone, whose countdown never
// elapses.
func ParseBufferInterval(s string) BufferInterval {
	switch b := BufferInterval(strings.ToUpper(strings.TrimSpace(s))); b {
	case BufferHourly, BufferDaily, BufferWeekly, BufferMonthly:
		return b
	default:
		return BufferNone
	}
}

// Duration is the wall-clock length of one interval. Months are fixed at 30 days
// so the countdown stays a pure function of time.
func (b BufferInterval) Duration() time.Duration {
	switch b {
	case BufferHourly:
		return time.Hour
	case BufferDaily:
		return 24 * time.Hour
	case BufferWeekly:
		return 7 * 24 * time.Hour
	case BufferMonthly:
		return 30 * 24 * time.Hour
	default:
		return 0
	}
}

func (b BufferInterval) unit() string {
	switch b {
	case BufferHourly:
		return "hour"
	case BufferWeekly:
		return "week"
	case BufferMonthly:
		return "month"
	default:
		return "day"
	}
}

// DisplayName renders count intervals, e.g. "3 days" or "1 week".
func (b BufferInterval) DisplayName(count int) string {
	if count == 1 {
		return "1 " + b.unit()
	}
	return fmt.Sprintf("%d %ss", count, b.unit())
}

// DraftWallet is the wallet shape an inheritance plan is set up for.
type DraftWallet struct {
	Config                      GroupWalletConfig `json:"config"`
	IsMasterSecurityQuestionSet bool              `json:"is_master_security_question_set"`
	Signers                     []string          `json:"signers"`
	WalletType                  string            `json:"wallet_type"`
	TimelockSeconds             int64             `json:"timelock_seconds"`
	ReplaceWallet               *string           `json:"replace_wallet,omitempty"`
}

// InheritanceTerms is what a CREATE/UPDATE_INHERITANCE proposal carries.
type InheritanceTerms struct {
	Draft                DraftWallet    `json:"draft"`
	BufferInterval       BufferInterval `json:"buffer_interval"`
	BufferIntervalCount  int            `json:"buffer_interval_count"`
	ActivationTimeMillis int64          `json:"activation_time_millis,omitempty"` // 0 = when the proposal executes
}

// Validate checks the terms before they are proposed.
func (t InheritanceTerms) Validate() error {
	if err := t.Draft.Config.Validate(); err != nil {
		return fmt.Errorf("draft wallet: %w", err)
	}
	if t.Draft.TimelockSeconds < 0 {
		return fmt.Errorf("timelock must not be negative")
	}
	if t.BufferIntervalCount < 0 {
		return fmt.Errorf("buffer interval count must not be negative")
	}
	if t.BufferIntervalCount > 0 && ParseBufferInterval(string(t.BufferInterval)) == BufferNone {
		return fmt.Errorf("unknown buffer interval %q", t.BufferInterval)
	}
	return nil
}

// InheritancePlan is the plan state of one wallet. It is not active until the
// creating proposal has executed.
type InheritancePlan struct {
	WalletID             string           `json:"wallet_id"`
	Terms                InheritanceTerms `json:"terms"`
	ActivationTimeMillis int64            `json:"activation_time_millis"`
	Active               bool             `json:"active"`
	DummyTransactionID   uuid.UUID        `json:"dummy_transaction_id"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

// BufferPeriodCountdown is a derived read of how much of the buffer is left.
type BufferPeriodCountdown struct {
	ActivationTimeMillis int64          `json:"activation_time_millis"`
	BufferInterval       BufferInterval `json:"buffer_interval"`
	BufferIntervalCount  int            `json:"buffer_interval_count"`
	RemainingCount       int            `json:"remaining_count"`
	RemainingDisplayName string         `json:"remaining_display_name"`
}

// ComputeCountdown derives the countdown at now. Before activation the whole
// buffer remains; afterwards one interval is consumed per elapsed interval.
func ComputeCountdown(activationMillis int64, interval BufferInterval, count int, now time.Time) BufferPeriodCountdown {
	interval = ParseBufferInterval(string(interval))
	remaining := count
	if remaining < 0 {
		remaining = 0
	}

	step := interval.Duration().Milliseconds()
	nowMillis := now.UnixMilli()
	if remaining > 0 && step > 0 && nowMillis >= activationMillis {
		elapsed := (nowMillis - activationMillis) / step
		if elapsed >= int64(remaining) {
			remaining = 0
		} else {
			remaining -= int(elapsed)
		}
	}

	return BufferPeriodCountdown{
		ActivationTimeMillis: activationMillis,
		BufferInterval:       interval,
		BufferIntervalCount:  count,
		RemainingCount:       remaining,
		RemainingDisplayName: interval.DisplayName(remaining),
	}
}

// Countdown returns the plan's countdown at now.
func (p *InheritancePlan) Countdown(now time.Time) BufferPeriodCountdown {
	return ComputeCountdown(p.ActivationTimeMillis, p.Terms.BufferInterval, p.Terms.BufferIntervalCount, now)
}
