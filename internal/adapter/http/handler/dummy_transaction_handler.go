package handler

import (
	"context"

	"wallet-governance/internal/adapter/http/dto"
	"wallet-governance/internal/core/domain"
	"wallet-governance/internal/core/ports"
	"wallet-governance/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DummyTransactionHandler exposes the quorum engine.
type DummyTransactionHandler struct {
	svc ports.DummyTransactionService
}

// NewDummyTransactionHandler creates a new DummyTransactionHandler.
func NewDummyTransactionHandler(svc ports.DummyTransactionService) *DummyTransactionHandler {
	return &DummyTransactionHandler{svc: svc}
}

// Create handles POST /api/v1/wallets/:wallet_id/dummy-transactions.
func (h *DummyTransactionHandler) Create(c *gin.Context) {
	member, ok := memberOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateDummyTransactionRequest
	if !bindJSON(c, &req) {
		return
	}

	tx, err := h.svc.Create(c.Request.Context(), ports.CreateDummyTransactionRequest{
		WalletID: c.Param("wallet_id"),
		MemberID: member,
		Type:     domain.ParseDummyTransactionType(req.Type),
		Payload:  req.Payload,
		XFP:      req.XFP,
		Value:    req.Signature,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, tx)
}

// List handles GET /api/v1/wallets/:wallet_id/dummy-transactions.
func (h *DummyTransactionHandler) List(c *gin.Context) {
	var q dto.ListDummyTransactionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, validationErr(err))
		return
	}
	var status *domain.DummyTransactionStatus
	if q.Status != "" {
		s := domain.DummyTransactionStatus(q.Status)
		status = &s
	}

	txs, err := h.svc.List(c.Request.Context(), c.Param("wallet_id"), status)
	if err != nil {
		response.Error(c, err)
		return
	}
	if txs == nil {
		txs = []domain.DummyTransaction{}
	}
	response.OK(c, txs)
}

// Get handles GET /api/v1/dummy-transactions/:id.
func (h *DummyTransactionHandler) Get(c *gin.Context) {
	id, ok := txIDOrAbort(c)
	if !ok {
		return
	}
	tx, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tx)
}

// Sign handles POST /api/v1/dummy-transactions/:id/signatures.
func (h *DummyTransactionHandler) Sign(c *gin.Context) {
	member, ok := memberOrAbort(c)
	if !ok {
		return
	}
	id, ok := txIDOrAbort(c)
	if !ok {
		return
	}
	var req dto.SignRequest
	if !bindJSON(c, &req) {
		return
	}

	tx, err := h.svc.Sign(c.Request.Context(), ports.SignDummyTransactionRequest{
		ID:       id,
		MemberID: member,
		XFP:      req.XFP,
		Value:    req.Signature,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tx)
}

// Cancel handles POST /api/v1/dummy-transactions/:id/cancel.
func (h *DummyTransactionHandler) Cancel(c *gin.Context) {
	h.memberAction(c, h.svc.Cancel)
}

// Broadcast handles POST /api/v1/dummy-transactions/:id/broadcast.
func (h *DummyTransactionHandler) Broadcast(c *gin.Context) {
	h.memberAction(c, h.svc.Broadcast)
}

// Confirm handles POST /api/v1/dummy-transactions/:id/confirm, the signing
// engine's synchronous confirmation path.
func (h *DummyTransactionHandler) Confirm(c *gin.Context) {
	id, ok := txIDOrAbort(c)
	if !ok {
		return
	}
	tx, err := h.svc.ConfirmExecuted(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tx)
}

// ExpireStale handles POST /api/v1/maintenance/expire-stale.
func (h *DummyTransactionHandler) ExpireStale(c *gin.Context) {
	n, err := h.svc.ExpireStale(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ExpireResponse{Expired: n})
}

func (h *DummyTransactionHandler) memberAction(
	c *gin.Context,
	action func(ctx context.Context, id uuid.UUID, memberID string) (*domain.DummyTransaction, error),
) {
	member, ok := memberOrAbort(c)
	if !ok {
		return
	}
	id, ok := txIDOrAbort(c)
	if !ok {
		return
	}
	tx, err := action(c.Request.Context(), id, member)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, tx)
}
