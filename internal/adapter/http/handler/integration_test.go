package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	httpHandler "wallet-governance/internal/adapter/http/handler"
	"wallet-governance/internal/adapter/signing"
	"wallet-governance/internal/adapter/storage/memory"
	redisStorage "wallet-governance/internal/adapter/storage/redis"
	"wallet-governance/internal/core/domain"
	"wallet-governance/internal/core/ports"
	"wallet-governance/internal/service"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires the real HTTP layer, services and memory stores, with
// miniredis behind the handled-event cache and a fake signing engine.
type testApp struct {
	server     *httptest.Server
	signer     *httptest.Server
	redis      *miniredis.Miniredis
	tokens     *service.JWTTokenService
	push       *memory.PushRecorder
	broadcasts atomic.Int32
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	app := &testApp{}

	mr, err := miniredis.Run()
	require.NoError(t, err)
	app.redis = mr
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	app.signer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/broadcasts" {
			app.broadcasts.Add(1)
		}
		w.WriteHeader(http.StatusAccepted)
	}))

	log := zerolog.Nop()
	signer := signing.NewHTTPSigner(app.signer.URL, app.signer.Client(), []time.Duration{10 * time.Millisecond}, log)

	walletRepo := memory.NewWalletRepo()
	app.push = memory.NewPushRecorder(0, log)
	app.tokens = service.NewJWTTokenService("integration-secret-0123456789abcdef", time.Hour, "wallet-governance")

	healthSvc := service.NewHealthService(memory.NewKeyHealthRepo(), walletRepo, signer, 24*time.Hour, 720*time.Hour, log)
	walletSvc := service.NewWalletService(walletRepo, healthSvc, log)
	dummyTxSvc := service.NewDummyTransactionService(memory.NewDummyTransactionRepo(), walletRepo, signer, nil, log)
	serverKeySvc := service.NewServerKeyService(walletRepo, dummyTxSvc, log)
	inheritanceSvc := service.NewInheritanceService(memory.NewInheritancePlanRepo(), dummyTxSvc, log)
	dummyTxSvc.RegisterHandler(serverKeySvc)
	dummyTxSvc.RegisterHandler(inheritanceSvc)

	reconciler := service.NewEventReconciler(
		memory.NewHandledEventStore(),
		redisStorage.NewHandledEventCache(rdb),
		time.Hour,
		dummyTxSvc,
		healthSvc,
		inheritanceSvc,
		app.push,
		domain.Session{},
		log,
	)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		ServerKeySvc:   serverKeySvc,
		DummyTxSvc:     dummyTxSvc,
		HealthSvc:      healthSvc,
		InheritanceSvc: inheritanceSvc,
		Reconciler:     reconciler,
		TokenSvc:       app.tokens,
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		Logger:         log,
	})
	app.server = httptest.NewServer(router)

	t.Cleanup(func() {
		app.server.Close()
		app.signer.Close()
		rdb.Close()
		mr.Close()
	})
	return app
}

type envelope struct {
	Data      json.RawMessage `json:"data"`
	ErrorCode string          `json:"error_code"`
}

func (a *testApp) call(t *testing.T, member, method, path string, body interface{}) (int, envelope) {
	t.Helper()
	status, env, err := a.send(member, method, path, body)
	require.NoError(t, err)
	return status, env
}

// send performs one request without touching t, so it is safe from any goroutine.
func (a *testApp) send(member, method, path string, body interface{}) (int, envelope, error) {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			if err := json.NewEncoder(&buf).Encode(b); err != nil {
				return 0, envelope{}, err
			}
		}
	}
	req, err := http.NewRequest(method, a.server.URL+path, &buf)
	if err != nil {
		return 0, envelope{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if member != "" {
		token, _, err := a.tokens.Generate(member, member+"-device")
		if err != nil {
			return 0, envelope{}, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, envelope{}, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return resp.StatusCode, envelope{}, fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return resp.StatusCode, env, nil
}

func (a *testApp) registerWallet(t *testing.T, id string, required int, members []map[string]interface{}) {
	t.Helper()
	status, env := a.call(t, "alice", http.MethodPost, "/api/v1/wallets", map[string]interface{}{
		"id":                  id,
		"required_signatures": required,
		"total_keys":          len(members),
		"members":             members,
	})
	require.Equal(t, http.StatusCreated, status, env.ErrorCode)
}

func decodeTx(t *testing.T, env envelope) domain.DummyTransaction {
	t.Helper()
	var tx domain.DummyTransaction
	require.NoError(t, json.Unmarshal(env.Data, &tx))
	return tx
}

func TestServerKeyPolicyLifecycle(t *testing.T) {
	app := newTestApp(t)
	app.registerWallet(t, "wallet-1", 2, []map[string]interface{}{
		{"user_id": "alice", "role": "MASTER", "xfps": []string{"aaaa0001"}},
		{"user_id": "bob", "role": "KEYHOLDER", "xfps": []string{"bbbb0001"}},
		{"user_id": "carol", "role": "KEYHOLDER", "xfps": []string{"cccc0001"}},
		{"user_id": "dave", "role": "OBSERVER"},
	})

	// Proposal: the requester's approval is counted at once.
	status, env := app.call(t, "alice", http.MethodPost, "/api/v1/wallets/wallet-1/server-key-policy", map[string]interface{}{
		"signing_delay_seconds": 600,
		"auto_broadcast":        true,
	})
	require.Equal(t, http.StatusCreated, status, env.ErrorCode)
	tx := decodeTx(t, env)
	assert.Equal(t, domain.DummyTxPendingSignatures, tx.Status)
	assert.Equal(t, 1, tx.PendingSignatures)
	txPath := "/api/v1/dummy-transactions/" + tx.ID.String()

	status, env = app.call(t, "dave", http.MethodPost, txPath+"/signatures", map[string]string{})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "GOV_008", env.ErrorCode)

	status, env = app.call(t, "alice", http.MethodPost, txPath+"/broadcast", nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "GOV_009", env.ErrorCode)

	status, env = app.call(t, "bob", http.MethodPost, txPath+"/signatures", map[string]string{"xfp": "bbbb0001", "signature": "sig-b"})
	require.Equal(t, http.StatusOK, status, env.ErrorCode)
	tx = decodeTx(t, env)
	assert.Equal(t, domain.DummyTxReadyToBroadcast, tx.Status)
	assert.Equal(t, 0, tx.PendingSignatures)

	status, env = app.call(t, "bob", http.MethodPost, txPath+"/signatures", map[string]string{"xfp": "bbbb0001"})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "GOV_002", env.ErrorCode)

	status, _ = app.call(t, "alice", http.MethodPost, txPath+"/broadcast", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int32(1), app.broadcasts.Load())

	// The signing engine reports execution through the event relay.
	executed := fmt.Sprintf(`{"id":"evt-exec-1","type":"server_transaction.updated","wallet_id":"wallet-1","data":{"transaction_id":%q,"status":"EXECUTED"}}`, tx.ID)
	status, env = app.call(t, "alice", http.MethodPost, "/api/v1/events", executed)
	require.Equal(t, http.StatusAccepted, status, env.ErrorCode)
	assert.Contains(t, string(env.Data), `"APPLIED"`)

	status, env = app.call(t, "alice", http.MethodPost, "/api/v1/events", executed)
	require.Equal(t, http.StatusAccepted, status)
	assert.Contains(t, string(env.Data), `"DUPLICATE"`)
	assert.True(t, app.redis.Exists("handled_event:evt-exec-1"))

	status, env = app.call(t, "carol", http.MethodGet, txPath, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, domain.DummyTxExecuted, decodeTx(t, env).Status)

	status, env = app.call(t, "carol", http.MethodPost, txPath+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "GOV_005", env.ErrorCode)

	status, env = app.call(t, "carol", http.MethodGet, "/api/v1/wallets/wallet-1", nil)
	require.Equal(t, http.StatusOK, status)
	var wallet struct {
		Wallet domain.Wallet `json:"wallet"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &wallet))
	require.NotNil(t, wallet.Wallet.ServerKeyPolicy)
	assert.True(t, wallet.Wallet.ServerKeyPolicy.AutoBroadcast)
	assert.Equal(t, int64(600), wallet.Wallet.ServerKeyPolicy.SigningDelaySeconds)

	pushes := app.push.Events()
	require.Len(t, pushes, 1)
	assert.Equal(t, domain.PushServerTransaction, pushes[0].Kind)
	assert.Equal(t, "evt-exec-1", pushes[0].EventID)
}

func TestKeyHealthCheckFlow(t *testing.T) {
	app := newTestApp(t)
	app.registerWallet(t, "wallet-2", 1, []map[string]interface{}{
		{"user_id": "alice", "role": "MASTER", "xfps": []string{"aaaa0001"}},
		{"user_id": "bob", "role": "KEYHOLDER", "xfps": []string{"bbbb0001"}},
	})

	status, env := app.call(t, "alice", http.MethodGet, "/api/v1/wallets/wallet-2/health", nil)
	require.Equal(t, http.StatusOK, status)
	var statuses []domain.KeyHealthStatus
	require.NoError(t, json.Unmarshal(env.Data, &statuses))
	assert.Len(t, statuses, 2)

	status, _ = app.call(t, "alice", http.MethodPost, "/api/v1/wallets/wallet-2/health/bbbb0001/request", nil)
	require.Equal(t, http.StatusAccepted, status)

	status, env = app.call(t, "alice", http.MethodPost, "/api/v1/wallets/wallet-2/health/bbbb0001/request", nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "GOV_001", env.ErrorCode)

	completed := `{"id":"evt-hc-1","type":"HEALTH_CHECK_COMPLETED","wallet_id":"wallet-2","data":{"xfp":"bbbb0001","checked_at_millis":1767225600000}}`
	status, env = app.call(t, "alice", http.MethodPost, "/api/v1/events", completed)
	require.Equal(t, http.StatusAccepted, status, env.ErrorCode)

	status, env = app.call(t, "alice", http.MethodGet, "/api/v1/wallets/wallet-2/health", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &statuses))
	for _, s := range statuses {
		if s.XFP == "bbbb0001" {
			assert.False(t, s.IsPendingHealthCheck)
			assert.Equal(t, int64(1767225600000), s.LastHealthCheckTimeMillis)
		}
	}
}

func TestRequiresToken(t *testing.T) {
	app := newTestApp(t)

	status, env := app.call(t, "", http.MethodGet, "/api/v1/wallets/wallet-1", nil)

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "AUTH_003", env.ErrorCode)
}

// TestConcurrentSignatures has every key holder sign at once and checks that
// no signature is lost and the counter never goes below zero.
func TestConcurrentSignatures(t *testing.T) {
	app := newTestApp(t)

	const signers = 12
	members := make([]map[string]interface{}, 0, signers)
	for i := 0; i < signers; i++ {
		members = append(members, map[string]interface{}{
			"user_id": fmt.Sprintf("member-%02d", i),
			"role":    "KEYHOLDER",
			"xfps":    []string{fmt.Sprintf("%08x", i+1)},
		})
	}
	members[0]["user_id"] = "alice"
	app.registerWallet(t, "wallet-3", signers, members)

	status, env := app.call(t, "alice", http.MethodPost, "/api/v1/wallets/wallet-3/dummy-transactions", map[string]string{
		"type": "UPDATE_SERVER_KEY",
		"xfp":  "00000001",
	})
	require.Equal(t, http.StatusCreated, status, env.ErrorCode)
	tx := decodeTx(t, env)
	txPath := "/api/v1/dummy-transactions/" + tx.ID.String() + "/signatures"

	attempts := (signers - 1) * 3
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		dupes     atomic.Int32
		errs      = make(chan error, attempts)
	)
	for i := 1; i < signers; i++ {
		member := fmt.Sprintf("member-%02d", i)
		xfp := fmt.Sprintf("%08x", i+1)
		// each member also races against itself
		for attempt := 0; attempt < 3; attempt++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				status, _, err := app.send(member, http.MethodPost, txPath, map[string]string{"xfp": xfp})
				if err != nil {
					errs <- err
					return
				}
				switch status {
				case http.StatusOK:
					succeeded.Add(1)
				case http.StatusConflict:
					dupes.Add(1)
				}
			}()
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	assert.Equal(t, int32(signers-1), succeeded.Load())
	assert.Equal(t, int32((signers-1)*2), dupes.Load())

	status, env = app.call(t, "alice", http.MethodGet, "/api/v1/dummy-transactions/"+tx.ID.String(), nil)
	require.Equal(t, http.StatusOK, status)
	final := decodeTx(t, env)
	assert.Equal(t, domain.DummyTxReadyToBroadcast, final.Status)
	assert.Equal(t, 0, final.PendingSignatures)
	assert.Len(t, final.Signatures, signers)
}
