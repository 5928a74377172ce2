// Package transport turns inbound notification envelopes into domain events.
package transport

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"wallet-governance/internal/core/domain"
	"wallet-governance/pkg/apperror"
)

// Envelope is the wire shape of every inbound notification.
type Envelope struct {
	ID         string          `json:"id" binding:"required"`
	Type       string          `json:"type" binding:"required"`
	WalletID   string          `json:"wallet_id,omitempty"`
	GroupID    string          `json:"group_id,omitempty"`
	ActorID    string          `json:"actor_id,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
	Data       json.RawMessage `json:"data,omitempty"`
}

type serverTransactionData struct {
	TransactionID string `json:"transaction_id"`
	SignerID      string `json:"signer_id"`
	SignerXFP     string `json:"signer_xfp"`
	Signature     string `json:"signature"`
	Status        string `json:"status"`
	ErrorMessage  string `json:"error_message"`
}

type transactionData struct {
	TransactionID string `json:"transaction_id"`
}

type keyData struct {
	XFP             string `json:"xfp"`
	CheckedAtMillis int64  `json:"checked_at_millis"`
}

type inheritanceData struct {
	Cancelled bool `json:"cancelled"`
}

// Decode parses raw as an Envelope and converts it.
func Decode(raw []byte) (domain.Event, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, apperror.Validation(fmt.Sprintf("malformed event envelope: %v", err))
	}
	return env.Event()
}

// Event converts the envelope into its domain variant. Types the engine does
// not know become domain.UnknownEvent.
func (e Envelope) Event() (domain.Event, error) {
	if strings.TrimSpace(e.ID) == "" {
		return nil, apperror.Validation("event id is required")
	}
	h := domain.EventHeader{
		ID:         e.ID,
		WalletID:   e.WalletID,
		GroupID:    e.GroupID,
		ActorID:    e.ActorID,
		OccurredAt: e.OccurredAt,
	}

	switch kind := normalizeType(e.Type); kind {
	case domain.EventServerTransactionUpdated:
		var d serverTransactionData
		if err := e.decodeData(&d); err != nil {
			return nil, err
		}
		if d.TransactionID == "" {
			return nil, apperror.Validation("transaction_id is required")
		}
		ev := domain.ServerTransactionUpdated{
			EventHeader:   h,
			TransactionID: d.TransactionID,
			SignerID:      d.SignerID,
			SignerXFP:     d.SignerXFP,
			Signature:     d.Signature,
			ErrorMessage:  d.ErrorMessage,
		}
		if d.Status != "" {
			if status := domain.DummyTransactionStatus(strings.ToUpper(d.Status)); validStatus(status) {
				ev.Status = status
			} else {
				ev.UnrecognizedStatus = d.Status
			}
		}
		return ev, nil

	case domain.EventTransactionCancelled:
		var d transactionData
		if err := e.decodeData(&d); err != nil {
			return nil, err
		}
		if d.TransactionID == "" {
			return nil, apperror.Validation("transaction_id is required")
		}
		return domain.TransactionCancelled{EventHeader: h, TransactionID: d.TransactionID}, nil

	case domain.EventKeyAdded:
		var d keyData
		if err := e.decodeData(&d); err != nil {
			return nil, err
		}
		if d.XFP == "" {
			return nil, apperror.Validation("xfp is required")
		}
		return domain.KeyAdded{EventHeader: h, XFP: d.XFP}, nil

	case domain.EventHealthCheckCompleted:
		var d keyData
		if err := e.decodeData(&d); err != nil {
			return nil, err
		}
		if d.XFP == "" {
			return nil, apperror.Validation("xfp is required")
		}
		return domain.HealthCheckCompleted{EventHeader: h, XFP: d.XFP, CheckedAtMillis: d.CheckedAtMillis}, nil

	case domain.EventInheritanceChanged:
		var d inheritanceData
		if err := e.decodeData(&d); err != nil {
			return nil, err
		}
		return domain.InheritanceChanged{EventHeader: h, Cancelled: d.Cancelled}, nil

	case domain.EventWalletCreated:
		return domain.WalletCreated{EventHeader: h}, nil
	case domain.EventWalletReset:
		return domain.WalletReset{EventHeader: h}, nil
	case domain.EventMembershipRequestCreated:
		return domain.MembershipRequestCreated{EventHeader: h}, nil
	case domain.EventGroupWalletCreated:
		return domain.GroupWalletCreated{EventHeader: h}, nil

	default:
		return domain.UnknownEvent{EventHeader: h, RawType: e.Type}, nil
	}
}

func (e Envelope) decodeData(v interface{}) error {
	if len(e.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return apperror.Validation(fmt.Sprintf("malformed %s data: %v", e.Type, err))
	}
	return nil
}

// normalizeType accepts "wallet.created", "wallet-created" and "WALLET_CREATED".
func normalizeType(t string) domain.EventKind {
	t = strings.ToUpper(strings.TrimSpace(t))
	t = strings.NewReplacer(".", "_", "-", "_").Replace(t)
	return domain.EventKind(t)
}

func validStatus(s domain.DummyTransactionStatus) bool {
	switch s {
	case domain.DummyTxPendingSignatures, domain.DummyTxReadyToBroadcast, domain.DummyTxExecuted, domain.DummyTxCancelled:
		return true
	}
	return false
}
