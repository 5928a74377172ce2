package postgres

import (
	"context"
	"testing"

	"wallet-governance/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyHealthRepo_Upsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewKeyHealthRepo(mock)
	s := domain.KeyHealthStatus{WalletID: "wallet-1", XFP: "aaaa0001", IsPendingHealthCheck: true, LastHealthCheckTimeMillis: 42}

	mock.ExpectExec("INSERT INTO key_health .+ ON CONFLICT").
		WithArgs("wallet-1", "aaaa0001", true, false, int64(42)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Upsert(context.Background(), s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyHealthRepo_ListByWallet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewKeyHealthRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM key_health WHERE wallet_id").
		WithArgs("wallet-1").
		WillReturnRows(pgxmock.NewRows([]string{"wallet_id", "xfp", "is_pending_health_check", "can_request_health_check", "last_health_check_time_millis"}).
			AddRow("wallet-1", "aaaa0001", false, true, int64(0)).
			AddRow("wallet-1", "aaaa0002", true, false, int64(1000)))

	out, err := repo.ListByWallet(context.Background(), "wallet-1")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.True(t, out[1].IsPendingHealthCheck)
	assert.Equal(t, int64(1000), out[1].LastHealthCheckTimeMillis)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyHealthRepo_DeleteByWallet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewKeyHealthRepo(mock)

	mock.ExpectExec("DELETE FROM key_health WHERE wallet_id").
		WithArgs("wallet-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	assert.NoError(t, repo.DeleteByWallet(context.Background(), "wallet-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
