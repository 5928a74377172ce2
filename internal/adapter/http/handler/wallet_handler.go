package handler

import (
	"wallet-governance/internal/adapter/http/dto"
	"wallet-governance/internal/core/ports"
	"wallet-governance/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet registration and policy endpoints.
type WalletHandler struct {
	walletSvc    ports.WalletService
	serverKeySvc ports.ServerKeyService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService, serverKeySvc ports.ServerKeyService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc, serverKeySvc: serverKeySvc}
}

// Register handles POST /api/v1/wallets.
func (h *WalletHandler) Register(c *gin.Context) {
	var req dto.RegisterWalletRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.TrimStruct(&req)

	cfg, members := req.ToDomain()
	wallet, err := h.walletSvc.Register(c.Request.Context(), ports.RegisterWalletRequest{
		ID:      req.ID,
		GroupID: req.GroupID,
		LocalID: req.LocalID,
		Config:  cfg,
		Members: members,
		Policy:  req.SpendingPolicy.ToDomain(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.WalletResponse{Wallet: wallet, Members: members})
}

// Get handles GET /api/v1/wallets/:wallet_id.
func (h *WalletHandler) Get(c *gin.Context) {
	wallet, members, err := h.walletSvc.Get(c.Request.Context(), c.Param("wallet_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.WalletResponse{Wallet: wallet, Members: members})
}

// SetSpendingPolicy handles PUT /api/v1/wallets/:wallet_id/spending-policy.
func (h *WalletHandler) SetSpendingPolicy(c *gin.Context) {
	var req dto.SpendingPolicyRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.TrimStruct(&req)

	policy := req.ToDomain()
	if err := h.walletSvc.SetSpendingPolicy(c.Request.Context(), c.Param("wallet_id"), *policy); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, policy)
}

// SetMemberSpendingPolicy handles PUT /api/v1/wallets/:wallet_id/members/:user_id/spending-policy.
func (h *WalletHandler) SetMemberSpendingPolicy(c *gin.Context) {
	var req dto.SpendingPolicyRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.TrimStruct(&req)

	policy := req.ToDomain()
	err := h.walletSvc.SetMemberSpendingPolicy(c.Request.Context(), c.Param("wallet_id"), c.Param("user_id"), *policy)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, policy)
}

// ProposeServerKeyPolicy handles POST /api/v1/wallets/:wallet_id/server-key-policy.
// The change only applies once the proposal executes.
func (h *WalletHandler) ProposeServerKeyPolicy(c *gin.Context) {
	member, ok := memberOrAbort(c)
	if !ok {
		return
	}
	var req dto.ServerKeyPolicyRequest
	if !bindJSON(c, &req) {
		return
	}

	tx, err := h.serverKeySvc.ProposePolicy(c.Request.Context(), c.Param("wallet_id"), member, req.ToDomain())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, tx)
}
