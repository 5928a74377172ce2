package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"wallet-governance/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandledEventRepo_MarkHandled(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	ev := domain.HandledEvent{EventID: "evt-1", Kind: domain.EventWalletCreated, HandledAt: now}

	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{"first delivery", 1, true},
		{"already recorded", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			mock.ExpectExec("INSERT INTO handled_events .+ ON CONFLICT \\(event_id\\) DO NOTHING").
				WithArgs("evt-1", "WALLET_CREATED", now).
				WillReturnResult(pgxmock.NewResult("INSERT", tt.affected))

			inserted, err := NewHandledEventRepo(mock).MarkHandled(context.Background(), ev)
			require.NoError(t, err)
			assert.Equal(t, tt.want, inserted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestHandledEventRepo_IsHandled(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("evt-1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	handled, err := NewHandledEventRepo(mock).IsHandled(context.Background(), "evt-1")
	require.NoError(t, err)
	assert.True(t, handled)
}

func TestHandledEventRepo_IsHandled_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT EXISTS").WillReturnError(errors.New("connection reset"))

	_, err = NewHandledEventRepo(mock).IsHandled(context.Background(), "evt-1")
	assert.ErrorContains(t, err, "check handled event")
}
