package signing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"wallet-governance/internal/core/domain"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// BroadcastRequest is posted to the signing engine for a proposal that reached quorum.
type BroadcastRequest struct {
	TransactionID      string             `json:"transaction_id"`
	WalletID           string             `json:"wallet_id"`
	GroupID            string             `json:"group_id,omitempty"`
	Type               string             `json:"type"`
	Payload            string             `json:"payload"`
	RequiredSignatures int                `json:"required_signatures"`
	Signatures         []domain.Signature `json:"signatures"`
}

// HTTPSigner implements ports.SigningLayer against the signing engine's HTTP
// API. Hand-offs are retried on transport errors and 5xx responses; a 4xx is
// final.
type HTTPSigner struct {
	baseURL string
	client  HTTPClient
	retries []time.Duration
	log     zerolog.Logger
}

// NewHTTPSigner creates a new HTTPSigner. retries lists the wait before each
// additional attempt.
func NewHTTPSigner(baseURL string, client HTTPClient, retries []time.Duration, log zerolog.Logger) *HTTPSigner {
	return &HTTPSigner{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		retries: retries,
		log:     log,
	}
}

// Broadcast hands a signed proposal to the engine.
func (s *HTTPSigner) Broadcast(ctx context.Context, tx *domain.DummyTransaction) error {
	return s.post(ctx, "/v1/broadcasts", tx.ID.String(), BroadcastRequest{
		TransactionID:      tx.ID.String(),
		WalletID:           tx.WalletID,
		GroupID:            tx.GroupID,
		Type:               string(tx.Type),
		Payload:            tx.Payload,
		RequiredSignatures: tx.RequiredSignatures,
		Signatures:         tx.Signatures,
	})
}

// SubmitHealthCheck asks the engine to run a key health check.
func (s *HTTPSigner) SubmitHealthCheck(ctx context.Context, req domain.HealthCheckRequest) error {
	return s.post(ctx, "/v1/health-checks", req.KeyXFP, req)
}

func (s *HTTPSigner) post(ctx context.Context, path, ref string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}

	var lastErr error
	for attempt := 0; attempt <= len(s.retries); attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.retries[attempt-1]):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", ref)

		resp, err := s.client.Do(req)
		if err != nil {
			lastErr = err
			s.log.Warn().Err(err).Str("path", path).Str("ref", ref).Int("attempt", attempt+1).Msg("signing: request failed")
			continue
		}
		resp.Body.Close()

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			s.log.Debug().Str("path", path).Str("ref", ref).Int("attempt", attempt+1).Msg("signing: accepted")
			return nil
		case resp.StatusCode >= 500:
			lastErr = fmt.Errorf("signing engine returned %d", resp.StatusCode)
			s.log.Warn().Str("path", path).Str("ref", ref).Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("signing: server error, retrying")
		default:
			return fmt.Errorf("signing engine rejected %s: status %d", path, resp.StatusCode)
		}
	}

	s.log.Error().Str("path", path).Str("ref", ref).Msg("signing: all retry attempts exhausted")
	return fmt.Errorf("signing engine unavailable: %w", lastErr)
}

// LogSigner accepts every hand-off and only logs it. It stands in for the
// signing engine in development; confirmations are then posted as events.
type LogSigner struct {
	log zerolog.Logger
}

// NewLogSigner creates a new LogSigner.
func NewLogSigner(log zerolog.Logger) *LogSigner {
	return &LogSigner{log: log}
}

// Broadcast implements ports.SigningLayer.
func (s *LogSigner) Broadcast(_ context.Context, tx *domain.DummyTransaction) error {
	s.log.Info().Str("tx_id", tx.ID.String()).Str("wallet_id", tx.WalletID).Msg("broadcast requested (log signer)")
	return nil
}

// SubmitHealthCheck implements ports.SigningLayer.
func (s *LogSigner) SubmitHealthCheck(_ context.Context, req domain.HealthCheckRequest) error {
	s.log.Info().Str("wallet_id", req.WalletID).Str("xfp", req.KeyXFP).Msg("health check requested (log signer)")
	return nil
}
