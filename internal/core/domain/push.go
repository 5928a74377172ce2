package domain

import "time"

// PushKind is the domain notification emitted after an event is reconciled.
type PushKind string

const (
	PushServerTransaction        PushKind = "SERVER_TRANSACTION"
	PushTransactionError         PushKind = "TRANSACTION_ERROR"
	PushKeyAdded                 PushKind = "KEY_ADDED"
	PushWalletCreated            PushKind = "WALLET_CREATED"
	PushWalletReset              PushKind = "WALLET_RESET"
	PushTransactionCancelled     PushKind = "TRANSACTION_CANCELLED"
	PushMembershipRequestCreated PushKind = "MEMBERSHIP_REQUEST_CREATED"
	PushGroupWalletCreated       PushKind = "GROUP_WALLET_CREATED"
	PushHealthCheckCompleted     PushKind = "HEALTH_CHECK_COMPLETED"
	PushInheritanceChanged       PushKind = "INHERITANCE_CHANGED"
)

// PushEvent is what UI-side subscribers receive.
type PushEvent struct {
	Kind          PushKind  `json:"kind"`
	EventID       string    `json:"event_id"`
	WalletID      string    `json:"wallet_id,omitempty"`
	GroupID       string    `json:"group_id,omitempty"`
	TransactionID string    `json:"transaction_id,omitempty"`
	XFP           string    `json:"xfp,omitempty"`
	Message       string    `json:"message,omitempty"`
	Cancelled     bool      `json:"cancelled,omitempty"`
	LocalOrigin   bool      `json:"local_origin"`
	At            time.Time `json:"at"`
}
