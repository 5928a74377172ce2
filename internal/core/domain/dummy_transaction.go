package domain

import (
	"fmt"
	"strings"
	"time"

	"wallet-governance/pkg/apperror"

	"github.com/google/uuid"
)

// DummyTransactionType names the governed action a proposal carries. The engine
// only dispatches on it and never reads the payload.
type DummyTransactionType string

const (
	DummyTxNone              DummyTransactionType = "NONE"
	DummyTxUpdateServerKey   DummyTransactionType = "UPDATE_SERVER_KEY"
	DummyTxCreateInheritance DummyTransactionType = "CREATE_INHERITANCE"
	DummyTxUpdateInheritance DummyTransactionType = "UPDATE_INHERITANCE"
	DummyTxCancelInheritance DummyTransactionType = "CANCEL_INHERITANCE"
)

// ParseDummyTransactionType maps unknown strings to DummyTxNone.
func ParseDummyTransactionType(s string) DummyTransactionType {
	switch t := DummyTransactionType(strings.ToUpper(strings.TrimSpace(s))); t {
	case DummyTxUpdateServerKey, DummyTxCreateInheritance, DummyTxUpdateInheritance, DummyTxCancelInheritance:
		return t
	default:
		return DummyTxNone
	}
}

// IsInheritance reports whether the type is handled by the inheritance controller.
func (t DummyTransactionType) IsInheritance() bool {
	return t == DummyTxCreateInheritance || t == DummyTxUpdateInheritance || t == DummyTxCancelInheritance
}

// DummyTransactionStatus is the lifecycle state of a proposal.
type DummyTransactionStatus string

const (
	DummyTxPendingSignatures DummyTransactionStatus = "PENDING_SIGNATURES"
	DummyTxReadyToBroadcast  DummyTransactionStatus = "READY_TO_BROADCAST"
	DummyTxExecuted          DummyTransactionStatus = "EXECUTED"
	DummyTxCancelled         DummyTransactionStatus = "CANCELLED"
)

// IsTerminal returns true for EXECUTED and CANCELLED.
func (s DummyTransactionStatus) IsTerminal() bool {
	return s == DummyTxExecuted || s == DummyTxCancelled
}

// Signature is one member's approval of a proposal.
type Signature struct {
	MemberID string    `json:"member_id"`
	XFP      string    `json:"xfp,omitempty"`
	Value    string    `json:"value,omitempty"` // opaque token produced by the signing layer
	SignedAt time.Time `json:"signed_at"`
}

// DummyTransaction is a pending governed action awaiting quorum.
// Proposals are never deleted; terminal ones are kept for audit.
type DummyTransaction struct {
	ID                   uuid.UUID              `json:"id"`
	WalletID             string                 `json:"wallet_id"`
	GroupID              string                 `json:"group_id,omitempty"`
	Type                 DummyTransactionType   `json:"type"`
	Payload              string                 `json:"payload"`
	RequiredSignatures   int                    `json:"required_signatures"`
	PendingSignatures    int                    `json:"pending_signatures"`
	RequestedByUserID    string                 `json:"requested_by_user_id"`
	Status               DummyTransactionStatus `json:"status"`
	Signatures           []Signature            `json:"signatures"`
	BroadcastRequestedAt *time.Time             `json:"broadcast_requested_at,omitempty"`
	CancelledBy          string                 `json:"cancelled_by,omitempty"`
	CreatedAt            time.Time              `json:"created_at"`
	UpdatedAt            time.Time              `json:"updated_at"`
	ExecutedAt           *time.Time             `json:"executed_at,omitempty"`
	CancelledAt          *time.Time             `json:"cancelled_at,omitempty"`
}

// NewDummyTransaction opens a proposal. The requester's approval is counted
// immediately, so pending starts at required-1. A 1-of-n wallet therefore opens
// directly in READY_TO_BROADCAST.
func NewDummyTransaction(
	wallet *Wallet,
	txType DummyTransactionType,
	payload string,
	requester Signature,
	now time.Time,
) (*DummyTransaction, error) {
	required := wallet.Config.QuorumThreshold()
	if required < 1 {
		return nil, apperror.ErrInvariantViolation(fmt.Sprintf("wallet %s has quorum %d", wallet.ID, required))
	}
	if requester.SignedAt.IsZero() {
		requester.SignedAt = now
	}

	tx := &DummyTransaction{
		ID:                 uuid.New(),
		WalletID:           wallet.ID,
		GroupID:            wallet.GroupID,
		Type:               txType,
		Payload:            payload,
		RequiredSignatures: required,
		PendingSignatures:  required - 1,
		RequestedByUserID:  requester.MemberID,
		Status:             DummyTxPendingSignatures,
		Signatures:         []Signature{requester},
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if tx.PendingSignatures == 0 {
		tx.Status = DummyTxReadyToBroadcast
	}
	return tx, nil
}

// HasSigned reports whether memberID already approved the proposal.
func (t *DummyTransaction) HasSigned(memberID string) bool {
	for _, s := range t.Signatures {
		if s.MemberID == memberID {
			return true
		}
	}
	return false
}

// CheckInvariants verifies the quorum counters agree with the status and the
// collected signatures.
func (t *DummyTransaction) CheckInvariants() error {
	if t.PendingSignatures < 0 || t.PendingSignatures > t.RequiredSignatures {
		return apperror.ErrInvariantViolation(fmt.Sprintf(
			"pending signatures %d outside [0, %d] for %s", t.PendingSignatures, t.RequiredSignatures, t.ID))
	}
	if collected := len(t.Signatures); collected != t.RequiredSignatures-t.PendingSignatures {
		return apperror.ErrInvariantViolation(fmt.Sprintf(
			"%d signatures collected but counter implies %d for %s",
			collected, t.RequiredSignatures-t.PendingSignatures, t.ID))
	}
	switch t.Status {
	case DummyTxReadyToBroadcast, DummyTxExecuted:
		if t.PendingSignatures != 0 {
			return apperror.ErrInvariantViolation(fmt.Sprintf(
				"%s with %d pending signatures for %s", t.Status, t.PendingSignatures, t.ID))
		}
	case DummyTxPendingSignatures:
		if t.PendingSignatures == 0 {
			return apperror.ErrInvariantViolation(fmt.Sprintf("quorum reached but still pending for %s", t.ID))
		}
	}
	return nil
}

// ApplySignature counts one counter-signature. It reports whether this
// signature completed the quorum. A signer who already approved is rejected
// with DuplicateSignature whatever the status, and nothing changes.
func (t *DummyTransaction) ApplySignature(sig Signature, now time.Time) (bool, error) {
	if t.HasSigned(sig.MemberID) {
		return false, apperror.ErrDuplicateSignature()
	}

	switch t.Status {
	case DummyTxExecuted:
		return false, apperror.ErrAlreadyExecuted()
	case DummyTxCancelled:
		return false, apperror.ErrAlreadyCancelled()
	case DummyTxReadyToBroadcast:
		return false, apperror.ErrNotAwaitingSignatures()
	}

	if t.PendingSignatures < 1 {
		return false, apperror.ErrInvariantViolation(fmt.Sprintf(
			"signature would drive pending below zero for %s", t.ID))
	}

	if sig.SignedAt.IsZero() {
		sig.SignedAt = now
	}
	t.PendingSignatures--
	t.Signatures = append(t.Signatures, sig)
	t.UpdatedAt = now

	if t.PendingSignatures == 0 {
		t.Status = DummyTxReadyToBroadcast
		return true, nil
	}
	return false, nil
}

// MarkBroadcastRequested records that the signed proposal was handed to the
// signing layer. From then on a cancel loses to the pending confirmation.
func (t *DummyTransaction) MarkBroadcastRequested(now time.Time) error {
	switch t.Status {
	case DummyTxExecuted:
		return apperror.ErrAlreadyExecuted()
	case DummyTxCancelled:
		return apperror.ErrAlreadyCancelled()
	case DummyTxPendingSignatures:
		return apperror.ErrNotReadyToBroadcast()
	}
	if t.BroadcastRequestedAt == nil {
		t.BroadcastRequestedAt = &now
		t.UpdatedAt = now
	}
	return nil
}

// Cancel moves the proposal to CANCELLED. Cancelling twice is a no-op; the
// returned bool is false when nothing changed.
func (t *DummyTransaction) Cancel(by string, now time.Time) (bool, error) {
	switch t.Status {
	case DummyTxExecuted:
		return false, apperror.ErrAlreadyExecuted()
	case DummyTxCancelled:
		return false, nil
	case DummyTxReadyToBroadcast:
		if t.BroadcastRequestedAt != nil {
			// execution wins the cancel/broadcast race
			return false, apperror.ErrAlreadyExecuted()
		}
	}

	t.Status = DummyTxCancelled
	t.CancelledBy = by
	t.CancelledAt = &now
	t.UpdatedAt = now
	return true, nil
}

// ConfirmExecuted applies the external broadcast confirmation. A repeated
// confirmation is a no-op; confirming anything but a ready proposal is a defect.
func (t *DummyTransaction) ConfirmExecuted(now time.Time) (bool, error) {
	switch t.Status {
	case DummyTxExecuted:
		return false, nil
	case DummyTxReadyToBroadcast:
	default:
		return false, apperror.ErrIllegalTransition(string(t.Status), string(DummyTxExecuted))
	}
	if t.PendingSignatures != 0 {
		return false, apperror.ErrInvariantViolation(fmt.Sprintf(
			"ready proposal %s still has %d pending signatures", t.ID, t.PendingSignatures))
	}

	t.Status = DummyTxExecuted
	t.ExecutedAt = &now
	t.UpdatedAt = now
	return true, nil
}

// ClearBroadcastRequest withdraws a hand-off the signing layer refused, so the
// proposal can be broadcast again or cancelled.
func (t *DummyTransaction) ClearBroadcastRequest(now time.Time) {
	if t.Status != DummyTxReadyToBroadcast || t.BroadcastRequestedAt == nil {
		return
	}
	t.BroadcastRequestedAt = nil
	t.UpdatedAt = now
}
