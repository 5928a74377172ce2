package postgres

import (
	"context"
	"testing"
	"time"

	"wallet-governance/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInheritancePlanRepo_Save(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewInheritancePlanRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)
	plan := &domain.InheritancePlan{
		WalletID:             "wallet-1",
		Terms:                domain.InheritanceTerms{BufferInterval: domain.BufferDaily, BufferIntervalCount: 7},
		ActivationTimeMillis: now.UnixMilli(),
		Active:               true,
		DummyTransactionID:   uuid.New(),
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	mock.ExpectExec("INSERT INTO inheritance_plans .+ ON CONFLICT").
		WithArgs("wallet-1", pgxmock.AnyArg(), plan.ActivationTimeMillis, true, plan.DummyTransactionID, now, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Save(context.Background(), plan))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInheritancePlanRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewInheritancePlanRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)
	txID := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM inheritance_plans WHERE wallet_id").
		WithArgs("wallet-1").
		WillReturnRows(pgxmock.NewRows([]string{"wallet_id", "terms", "activation_time_millis", "active", "dummy_transaction_id", "created_at", "updated_at"}).
			AddRow("wallet-1", []byte(`{"draft":{"config":{"required_signatures":1,"total_keys":1,"is_professional":false}},"buffer_interval":"WEEKLY","buffer_interval_count":2}`),
				int64(1000), true, txID, now, now))

	plan, err := repo.Get(context.Background(), "wallet-1")
	require.NoError(t, err)
	require.NotNil(t, plan)
	assert.Equal(t, domain.BufferWeekly, plan.Terms.BufferInterval)
	assert.Equal(t, 2, plan.Terms.BufferIntervalCount)
	assert.Equal(t, txID, plan.DummyTransactionID)
	assert.True(t, plan.Active)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInheritancePlanRepo_Get_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewInheritancePlanRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM inheritance_plans").
		WithArgs("wallet-1").
		WillReturnError(pgx.ErrNoRows)

	plan, err := repo.Get(context.Background(), "wallet-1")
	assert.NoError(t, err)
	assert.Nil(t, plan)
}
