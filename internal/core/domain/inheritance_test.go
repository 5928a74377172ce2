package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseBufferInterval(t *testing.T) {
	assert.Equal(t, BufferDaily, ParseBufferInterval("daily"))
	assert.Equal(t, BufferMonthly, ParseBufferInterval("MONTHLY"))
	assert.Equal(t, BufferNone, ParseBufferInterval("FORTNIGHTLY"))
	assert.Equal(t, time.Duration(0), BufferNone.Duration())
	assert.Equal(t, 30*24*time.Hour, BufferMonthly.Duration())
}

func TestBufferInterval_DisplayName(t *testing.T) {
	tests := []struct {
		interval BufferInterval
		count    int
		want     string
	}{
		{BufferDaily, 1, "1 day"},
		{BufferDaily, 3, "3 days"},
		{BufferHourly, 0, "0 hours"},
		{BufferWeekly, 2, "2 weeks"},
		{BufferMonthly, 1, "1 month"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.interval.DisplayName(tt.count))
		})
	}
}

func TestComputeCountdown(t *testing.T) {
	activation := testNow.UnixMilli()

	tests := []struct {
		name     string
		interval BufferInterval
		count    int
		now      time.Time
		want     int
	}{
		{"before activation", BufferDaily, 7, testNow.Add(-48 * time.Hour), 7},
		{"at activation", BufferDaily, 7, testNow, 7},
		{"partial interval", BufferDaily, 7, testNow.Add(23 * time.Hour), 7},
		{"two days in", BufferDaily, 7, testNow.Add(49 * time.Hour), 5},
		{"exactly elapsed", BufferDaily, 7, testNow.Add(7 * 24 * time.Hour), 0},
		{"long after", BufferWeekly, 2, testNow.Add(365 * 24 * time.Hour), 0},
		{"zero count", BufferDaily, 0, testNow, 0},
		{"unknown interval never elapses", BufferInterval("BOGUS"), 3, testNow.Add(1000 * time.Hour), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cd := ComputeCountdown(activation, tt.interval, tt.count, tt.now)
			assert.Equal(t, tt.want, cd.RemainingCount)
			assert.Equal(t, tt.count, cd.BufferIntervalCount)
			assert.Equal(t, activation, cd.ActivationTimeMillis)
		})
	}
}

func TestComputeCountdown_ActivationInPastReachesZero(t *testing.T) {
	for _, interval := range []BufferInterval{BufferHourly, BufferDaily, BufferWeekly, BufferMonthly} {
		count := 4
		activation := testNow.Add(-time.Duration(count) * interval.Duration()).UnixMilli()

		cd := ComputeCountdown(activation, interval, count, testNow)
		assert.Equal(t, 0, cd.RemainingCount, string(interval))
	}
}

func TestComputeCountdown_IsPure(t *testing.T) {
	activation := testNow.UnixMilli()
	at := testNow.Add(50 * time.Hour)

	first := ComputeCountdown(activation, BufferDaily, 5, at)
	second := ComputeCountdown(activation, BufferDaily, 5, at)
	assert.Equal(t, first, second)
	assert.Equal(t, "3 days", first.RemainingDisplayName)
}

func TestInheritanceTerms_Validate(t *testing.T) {
	valid := InheritanceTerms{
		Draft:               DraftWallet{Config: GroupWalletConfig{RequiredSignatures: 2, TotalKeys: 3}},
		BufferInterval:      BufferDaily,
		BufferIntervalCount: 7,
	}
	assert.NoError(t, valid.Validate())

	badQuorum := valid
	badQuorum.Draft.Config.RequiredSignatures = 5
	assert.Error(t, badQuorum.Validate())

	badInterval := valid
	badInterval.BufferInterval = "YEARLY"
	assert.Error(t, badInterval.Validate())

	negative := valid
	negative.BufferIntervalCount = -1
	assert.Error(t, negative.Validate())

	noBuffer := valid
	noBuffer.BufferInterval = ""
	noBuffer.BufferIntervalCount = 0
	assert.NoError(t, noBuffer.Validate())
}

func TestInheritancePlan_Countdown(t *testing.T) {
	plan := &InheritancePlan{
		Terms:                InheritanceTerms{BufferInterval: BufferHourly, BufferIntervalCount: 10},
		ActivationTimeMillis: testNow.UnixMilli(),
		Active:               true,
	}
	cd := plan.Countdown(testNow.Add(3 * time.Hour))
	assert.Equal(t, 7, cd.RemainingCount)
	assert.Equal(t, "7 hours", cd.RemainingDisplayName)
}
