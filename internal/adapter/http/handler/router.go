package handler

import (
	"wallet-governance/internal/adapter/http/middleware"
	redisStore "wallet-governance/internal/adapter/storage/redis"
	"wallet-governance/internal/core/domain"
	"wallet-governance/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	ServerKeySvc   ports.ServerKeyService
	DummyTxSvc     ports.DummyTransactionService
	HealthSvc      ports.HealthService
	InheritanceSvc ports.InheritanceService
	Reconciler     ports.EventReconciler
	TokenSvc       ports.TokenService // nil = act for Session
	Session        domain.Session
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit
	r.Use(middleware.AuditLog(deps.Logger))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1", middleware.MemberAuth(deps.TokenSvc, deps.Session))

	walletHandler := NewWalletHandler(deps.WalletSvc, deps.ServerKeySvc)
	dummyTxHandler := NewDummyTransactionHandler(deps.DummyTxSvc)
	keyHealthHandler := NewKeyHealthHandler(deps.HealthSvc)
	inheritanceHandler := NewInheritanceHandler(deps.InheritanceSvc)

	v1.POST("/wallets", rl("proposals"), walletHandler.Register)

	wallet := v1.Group("/wallets/:wallet_id")
	{
		wallet.GET("", rl("reads"), walletHandler.Get)
		wallet.PUT("/spending-policy", rl("proposals"), walletHandler.SetSpendingPolicy)
		wallet.PUT("/members/:user_id/spending-policy", rl("proposals"), walletHandler.SetMemberSpendingPolicy)
		wallet.POST("/server-key-policy", rl("proposals"), walletHandler.ProposeServerKeyPolicy)

		wallet.POST("/dummy-transactions", rl("proposals"), dummyTxHandler.Create)
		wallet.GET("/dummy-transactions", rl("reads"), dummyTxHandler.List)

		wallet.GET("/health", rl("reads"), keyHealthHandler.List)
		wallet.POST("/health/:xfp/request", rl("health_checks"), keyHealthHandler.Request)
		wallet.POST("/health/:xfp/cancel", rl("health_checks"), keyHealthHandler.Cancel)
		wallet.POST("/health/:xfp/result", rl("health_checks"), keyHealthHandler.RecordResult)

		wallet.GET("/inheritance", rl("reads"), inheritanceHandler.Get)
		wallet.POST("/inheritance", rl("proposals"), inheritanceHandler.Create)
		wallet.PUT("/inheritance", rl("proposals"), inheritanceHandler.Update)
		wallet.DELETE("/inheritance", rl("proposals"), inheritanceHandler.Cancel)
		wallet.GET("/inheritance/countdown", rl("reads"), inheritanceHandler.Countdown)
		wallet.GET("/inheritance/claim-status", rl("reads"), inheritanceHandler.ClaimStatus)
	}

	dummyTxs := v1.Group("/dummy-transactions/:id")
	{
		dummyTxs.GET("", rl("reads"), dummyTxHandler.Get)
		dummyTxs.POST("/signatures", rl("signatures"), dummyTxHandler.Sign)
		dummyTxs.POST("/cancel", rl("signatures"), dummyTxHandler.Cancel)
		dummyTxs.POST("/broadcast", rl("signatures"), dummyTxHandler.Broadcast)
		dummyTxs.POST("/confirm", rl("signatures"), dummyTxHandler.Confirm)
	}

	v1.POST("/maintenance/expire-stale", dummyTxHandler.ExpireStale)

	if deps.Reconciler != nil {
		eventHandler := NewEventHandler(deps.Reconciler)
		v1.POST("/events", rl("events"), eventHandler.Handle)
	}

	return r
}
