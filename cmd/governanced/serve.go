package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wallet-governance/config"
	httpHandler "wallet-governance/internal/adapter/http/handler"
	"wallet-governance/internal/adapter/signing"
	"wallet-governance/internal/adapter/storage/memory"
	pgStorage "wallet-governance/internal/adapter/storage/postgres"
	redisStorage "wallet-governance/internal/adapter/storage/redis"
	"wallet-governance/internal/core/domain"
	"wallet-governance/internal/core/ports"
	"wallet-governance/internal/service"
	"wallet-governance/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newServeCommand(configPath *string) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the governance engine HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return serve(cmd.Context(), cfg, migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving (postgres only)")
	return cmd
}

// stores is the state backend chosen by storage.driver.
type stores struct {
	wallets     ports.WalletRepository
	dummyTxs    ports.DummyTransactionRepository
	keyHealth   ports.KeyHealthRepository
	inheritance ports.InheritancePlanRepository
	handled     ports.HandledEventStore
	cache       ports.HandledEventCache
	push        ports.PushPublisher
	rateLimit   *redisStorage.RateLimitStore
	checkers    []ports.HealthChecker
	closers     []func()
}

func (s *stores) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

func openStores(ctx context.Context, cfg *config.Config, migrate bool, log zerolog.Logger) (*stores, error) {
	s := &stores{}

	if cfg.Storage.Driver == "memory" {
		log.Warn().Msg("Using in-memory storage; state is lost on restart")
		s.wallets = memory.NewWalletRepo()
		s.dummyTxs = memory.NewDummyTransactionRepo()
		s.keyHealth = memory.NewKeyHealthRepo()
		s.inheritance = memory.NewInheritancePlanRepo()
		s.handled = memory.NewHandledEventStore()
		s.push = memory.NewPushRecorder(1000, log)
		return s, nil
	}

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	s.closers = append(s.closers, pool.Close)
	log.Info().Msg("PostgreSQL connected")

	if migrate {
		if _, err := pgStorage.Migrate(ctx, pool, log); err != nil {
			s.close()
			return nil, err
		}
	}

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		s.close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	s.closers = append(s.closers, func() { _ = rdb.Close() })
	log.Info().Msg("Redis connected")

	s.wallets = pgStorage.NewWalletRepo(pool)
	s.dummyTxs = pgStorage.NewDummyTransactionRepo(pool)
	s.keyHealth = pgStorage.NewKeyHealthRepo(pool)
	s.inheritance = pgStorage.NewInheritancePlanRepo(pool)
	s.handled = pgStorage.NewHandledEventRepo(pool)
	s.cache = redisStorage.NewHandledEventCache(rdb)
	s.push = redisStorage.NewPushPublisher(rdb, cfg.Governance.PushChannel)
	s.rateLimit = redisStorage.NewRateLimitStore(rdb)
	s.checkers = []ports.HealthChecker{pgStorage.NewHealthCheck(pool), redisStorage.NewHealthCheck(rdb)}
	return s, nil
}

func newSigner(cfg config.SigningConfig, log zerolog.Logger) ports.SigningLayer {
	if cfg.BaseURL == "" {
		log.Warn().Msg("signing.base_url not set, signing requests are only logged")
		return signing.NewLogSigner(log)
	}
	return signing.NewHTTPSigner(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout}, cfg.Retries, log)
}

func serve(ctx context.Context, cfg *config.Config, migrate bool) error {
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("storage", cfg.Storage.Driver).
		Int("port", cfg.Server.Port).
		Msg("Starting wallet governance engine")

	st, err := openStores(ctx, cfg, migrate, log)
	if err != nil {
		return err
	}
	defer st.close()

	session := domain.Session{MemberID: cfg.Session.MemberID, DeviceID: cfg.Session.DeviceID}
	signer := newSigner(cfg.Signing, logger.ForComponent(log, "signing"))

	var expiry ports.ExpiryPolicy = service.NeverExpire{}
	if cfg.Governance.PendingTTL > 0 {
		expiry = service.TTLExpiry{TTL: cfg.Governance.PendingTTL}
	}

	healthSvc := service.NewHealthService(st.keyHealth, st.wallets, signer,
		cfg.Governance.HealthCheckCooldown, cfg.Governance.HealthReminderInterval, logger.ForComponent(log, "health"))
	walletSvc := service.NewWalletService(st.wallets, healthSvc, logger.ForComponent(log, "wallet"))
	dummyTxSvc := service.NewDummyTransactionService(st.dummyTxs, st.wallets, signer, expiry, logger.ForComponent(log, "dummy_tx"))
	serverKeySvc := service.NewServerKeyService(st.wallets, dummyTxSvc, logger.ForComponent(log, "server_key"))
	inheritanceSvc := service.NewInheritanceService(st.inheritance, dummyTxSvc, logger.ForComponent(log, "inheritance"))
	dummyTxSvc.RegisterHandler(serverKeySvc)
	dummyTxSvc.RegisterHandler(inheritanceSvc)

	reconciler := service.NewEventReconciler(
		st.handled,
		st.cache,
		cfg.Governance.HandledEventCacheTTL,
		dummyTxSvc,
		healthSvc,
		inheritanceSvc,
		st.push,
		session,
		logger.ForComponent(log, "reconciler"),
	)

	var tokenSvc ports.TokenService
	if cfg.JWT.Secret != "" {
		tokenSvc = service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	} else if session.MemberID == "" {
		log.Warn().Msg("Neither jwt.secret nor session.member_id is set; member endpoints will reject every request")
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		ServerKeySvc:   serverKeySvc,
		DummyTxSvc:     dummyTxSvc,
		HealthSvc:      healthSvc,
		InheritanceSvc: inheritanceSvc,
		Reconciler:     reconciler,
		TokenSvc:       tokenSvc,
		Session:        session,
		RateLimitStore: st.rateLimit,
		HealthCheckers: st.checkers,
		Logger:         log,
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Governance.PendingTTL > 0 {
		go runExpiry(ctx, dummyTxSvc, cfg.Governance.PendingTTL, log)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
	case <-ctx.Done():
	}
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
	return nil
}

// runExpiry cancels stale proposals until ctx is done. It sweeps a few times
// per TTL so nothing outlives it by much.
func runExpiry(ctx context.Context, svc ports.DummyTransactionService, ttl time.Duration, log zerolog.Logger) {
	interval := ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := svc.ExpireStale(ctx)
			if err != nil {
				log.Error().Err(err).Msg("expiring stale proposals failed")
				continue
			}
			if n > 0 {
				log.Info().Int("expired", n).Msg("stale proposals cancelled")
			}
		}
	}
}
