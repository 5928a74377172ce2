package handler

import (
	"net/http"
	"time"

	"wallet-governance/internal/adapter/http/dto"
	"wallet-governance/internal/core/domain"
	"wallet-governance/internal/core/ports"
	"wallet-governance/pkg/response"

	"github.com/gin-gonic/gin"
)

// HealthCheck handles GET /health, pinging every backing store.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}

// KeyHealthHandler handles the key health-check endpoints.
type KeyHealthHandler struct {
	svc ports.HealthService
}

// NewKeyHealthHandler creates a new KeyHealthHandler.
func NewKeyHealthHandler(svc ports.HealthService) *KeyHealthHandler {
	return &KeyHealthHandler{svc: svc}
}

// List handles GET /api/v1/wallets/:wallet_id/health. With ?due=true only
// keys whose last check is older than the reminder interval are returned.
func (h *KeyHealthHandler) List(c *gin.Context) {
	var (
		statuses []domain.KeyHealthStatus
		err      error
	)
	if c.Query("due") == "true" {
		statuses, err = h.svc.Due(c.Request.Context(), c.Param("wallet_id"))
	} else {
		statuses, err = h.svc.List(c.Request.Context(), c.Param("wallet_id"))
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	if statuses == nil {
		statuses = []domain.KeyHealthStatus{}
	}
	response.OK(c, statuses)
}

// Request handles POST /api/v1/wallets/:wallet_id/health/:xfp/request.
func (h *KeyHealthHandler) Request(c *gin.Context) {
	member, ok := memberOrAbort(c)
	if !ok {
		return
	}
	req, err := h.svc.Request(c.Request.Context(), c.Param("wallet_id"), c.Param("xfp"), member)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, req)
}

// Cancel handles POST /api/v1/wallets/:wallet_id/health/:xfp/cancel.
func (h *KeyHealthHandler) Cancel(c *gin.Context) {
	member, ok := memberOrAbort(c)
	if !ok {
		return
	}
	status, err := h.svc.Cancel(c.Request.Context(), c.Param("wallet_id"), c.Param("xfp"), member)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, status)
}

// RecordResult handles POST /api/v1/wallets/:wallet_id/health/:xfp/result.
func (h *KeyHealthHandler) RecordResult(c *gin.Context) {
	var req dto.RecordHealthResultRequest
	if !bindJSON(c, &req) {
		return
	}
	status, err := h.svc.RecordResult(c.Request.Context(), c.Param("wallet_id"), c.Param("xfp"), time.UnixMilli(req.CheckedAtMillis).UTC())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, status)
}
