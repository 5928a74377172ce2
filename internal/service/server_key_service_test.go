package service

import (
	"context"
	"testing"

	"wallet-governance/internal/core/domain"
	"wallet-governance/internal/core/ports"
	"wallet-governance/internal/core/ports/mocks"
	"wallet-governance/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestServerKeyService_ProposeAndApply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	walletRepo := mocks.NewMockWalletRepository(ctrl)
	dummyTx := mocks.NewMockDummyTransactionService(ctrl)
	svc := NewServerKeyService(walletRepo, dummyTx, zerolog.Nop())

	policy := domain.ServerKeyPolicy{
		SpendingLimit:       &domain.SpendingPolicy{LimitAmount: "1000", TimeUnit: domain.SpendingDaily, CurrencyUnit: "USD"},
		SigningDelaySeconds: 3600,
		AutoBroadcast:       true,
	}

	var proposed *domain.DummyTransaction
	dummyTx.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.CreateDummyTransactionRequest) (*domain.DummyTransaction, error) {
			assert.Equal(t, domain.DummyTxUpdateServerKey, req.Type)
			proposed = &domain.DummyTransaction{WalletID: req.WalletID, Type: req.Type, Payload: req.Payload}
			return proposed, nil
		})

	_, err := svc.ProposePolicy(ctx, "wallet-1", "alice", policy)
	require.NoError(t, err)

	walletRepo.EXPECT().UpdateServerKeyPolicy(ctx, "wallet-1", &policy).Return(nil)
	require.NoError(t, svc.OnDummyTransactionExecuted(ctx, proposed))
}

func TestServerKeyService_ProposePolicy_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := NewServerKeyService(mocks.NewMockWalletRepository(ctrl), mocks.NewMockDummyTransactionService(ctrl), zerolog.Nop())

	_, err := svc.ProposePolicy(context.Background(), "wallet-1", "alice", domain.ServerKeyPolicy{SigningDelaySeconds: -1})
	assert.Equal(t, "GOV_012", apperror.CodeOf(err))

	_, err = svc.ProposePolicy(context.Background(), "wallet-1", "alice", domain.ServerKeyPolicy{
		SpendingLimit: &domain.SpendingPolicy{TimeUnit: "HOURLY"},
	})
	assert.Equal(t, "GOV_012", apperror.CodeOf(err))
}

func TestServerKeyService_Types(t *testing.T) {
	svc := NewServerKeyService(nil, nil, zerolog.Nop())
	assert.Equal(t, []domain.DummyTransactionType{domain.DummyTxUpdateServerKey}, svc.Types())
}
