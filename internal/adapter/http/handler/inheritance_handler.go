package handler

import (
	"context"
	"errors"
	"time"

	"wallet-governance/internal/adapter/http/dto"
	"wallet-governance/internal/core/domain"
	"wallet-governance/internal/core/ports"
	"wallet-governance/pkg/apperror"
	"wallet-governance/pkg/response"

	"github.com/gin-gonic/gin"
)

// InheritanceHandler handles inheritance plan endpoints.
type InheritanceHandler struct {
	svc ports.InheritanceService
	now func() time.Time
}

// NewInheritanceHandler creates a new InheritanceHandler.
func NewInheritanceHandler(svc ports.InheritanceService) *InheritanceHandler {
	return &InheritanceHandler{svc: svc, now: time.Now}
}

// Get handles GET /api/v1/wallets/:wallet_id/inheritance.
func (h *InheritanceHandler) Get(c *gin.Context) {
	plan, err := h.svc.GetPlan(c.Request.Context(), c.Param("wallet_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, plan)
}

// Create handles POST /api/v1/wallets/:wallet_id/inheritance.
func (h *InheritanceHandler) Create(c *gin.Context) {
	h.propose(c, h.svc.CreatePlan)
}

// Update handles PUT /api/v1/wallets/:wallet_id/inheritance.
func (h *InheritanceHandler) Update(c *gin.Context) {
	h.propose(c, h.svc.UpdatePlan)
}

// Cancel handles DELETE /api/v1/wallets/:wallet_id/inheritance.
func (h *InheritanceHandler) Cancel(c *gin.Context) {
	member, ok := memberOrAbort(c)
	if !ok {
		return
	}
	tx, err := h.svc.CancelPlan(c.Request.Context(), c.Param("wallet_id"), member)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, tx)
}

// Countdown handles GET /api/v1/wallets/:wallet_id/inheritance/countdown.
func (h *InheritanceHandler) Countdown(c *gin.Context) {
	cd, err := h.svc.GetCountdown(c.Request.Context(), c.Param("wallet_id"), h.now())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, cd)
}

// ClaimStatus handles GET /api/v1/wallets/:wallet_id/inheritance/claim-status.
// An active buffer period is an answer, not a failure.
func (h *InheritanceHandler) ClaimStatus(c *gin.Context) {
	ok, err := h.svc.CanClaim(c.Request.Context(), c.Param("wallet_id"), h.now())
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == "GOV_004" {
			if cd, isCountdown := appErr.Data.(domain.BufferPeriodCountdown); isCountdown {
				response.OK(c, dto.CanClaimResponse{CanClaim: false, Countdown: &cd})
				return
			}
		}
		response.Error(c, err)
		return
	}
	response.OK(c, dto.CanClaimResponse{CanClaim: ok})
}

func (h *InheritanceHandler) propose(
	c *gin.Context,
	fn func(ctx context.Context, walletID, memberID string, terms domain.InheritanceTerms) (*domain.DummyTransaction, error),
) {
	member, ok := memberOrAbort(c)
	if !ok {
		return
	}
	var req dto.InheritanceTermsRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.TrimStruct(&req)

	tx, err := fn(c.Request.Context(), c.Param("wallet_id"), member, req.ToDomain())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, tx)
}
