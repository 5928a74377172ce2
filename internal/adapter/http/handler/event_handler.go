package handler

import (
	"io"

	"wallet-governance/internal/adapter/http/dto"
	"wallet-governance/internal/adapter/transport"
	"wallet-governance/internal/core/ports"
	"wallet-governance/pkg/apperror"
	"wallet-governance/pkg/response"

	"github.com/gin-gonic/gin"
)

// EventHandler accepts events relayed from the sync server.
type EventHandler struct {
	reconciler ports.EventReconciler
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(reconciler ports.EventReconciler) *EventHandler {
	return &EventHandler{reconciler: reconciler}
}

// Handle handles POST /api/v1/events. Duplicates and dropped events are still
// acknowledged so the relay stops redelivering them.
func (h *EventHandler) Handle(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperror.Validation("unreadable event body"))
		return
	}

	ev, err := transport.Decode(raw)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.reconciler.Handle(c.Request.Context(), ev)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, dto.HandleEventResponse{
		EventID: ev.Header().ID,
		Result:  string(result),
	})
}
