package service

import (
	"context"
	"encoding/json"
	"fmt"

	"wallet-governance/internal/core/domain"
	"wallet-governance/internal/core/ports"
	"wallet-governance/pkg/apperror"

	"github.com/rs/zerolog"
)

// ServerKeyServiceImpl proposes server key policy changes and applies them
// once the UPDATE_SERVER_KEY proposal executes.
type ServerKeyServiceImpl struct {
	walletRepo ports.WalletRepository
	dummyTx    ports.DummyTransactionService
	log        zerolog.Logger
}

// NewServerKeyService creates a new ServerKeyServiceImpl.
func NewServerKeyService(walletRepo ports.WalletRepository, dummyTx ports.DummyTransactionService, log zerolog.Logger) *ServerKeyServiceImpl {
	return &ServerKeyServiceImpl{walletRepo: walletRepo, dummyTx: dummyTx, log: log}
}

// Types implements ports.ExecutionHandler.
func (s *ServerKeyServiceImpl) Types() []domain.DummyTransactionType {
	return []domain.DummyTransactionType{domain.DummyTxUpdateServerKey}
}

// ProposePolicy opens an UPDATE_SERVER_KEY proposal carrying policy.
func (s *ServerKeyServiceImpl) ProposePolicy(ctx context.Context, walletID, memberID string, policy domain.ServerKeyPolicy) (*domain.DummyTransaction, error) {
	if policy.SigningDelaySeconds < 0 {
		return nil, apperror.Validation("signing delay must not be negative")
	}
	if policy.SpendingLimit != nil && !policy.SpendingLimit.TimeUnit.Valid() {
		return nil, apperror.Validation("invalid spending limit time unit")
	}
	payload, err := json.Marshal(policy)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal server key policy: %w", err))
	}
	return s.dummyTx.Create(ctx, ports.CreateDummyTransactionRequest{
		WalletID: walletID,
		MemberID: memberID,
		Type:     domain.DummyTxUpdateServerKey,
		Payload:  string(payload),
	})
}

// OnDummyTransactionExecuted stores the policy carried by the proposal.
func (s *ServerKeyServiceImpl) OnDummyTransactionExecuted(ctx context.Context, tx *domain.DummyTransaction) error {
	var policy domain.ServerKeyPolicy
	if err := json.Unmarshal([]byte(tx.Payload), &policy); err != nil {
		return apperror.Validation(fmt.Sprintf("server key payload: %v", err))
	}
	if err := s.walletRepo.UpdateServerKeyPolicy(ctx, tx.WalletID, &policy); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("update server key policy: %w", err))
	}
	s.log.Info().
		Str("wallet_id", tx.WalletID).
		Str("tx_id", tx.ID.String()).
		Int64("signing_delay_seconds", policy.SigningDelaySeconds).
		Bool("auto_broadcast", policy.AutoBroadcast).
		Msg("server key policy applied")
	return nil
}
