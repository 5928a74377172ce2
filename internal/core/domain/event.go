package domain

import "time"

// EventKind classifies an inbound notification after decoding.
type EventKind string

const (
	EventServerTransactionUpdated EventKind = "SERVER_TRANSACTION_UPDATED"
	EventKeyAdded                 EventKind = "KEY_ADDED"
	EventWalletCreated            EventKind = "WALLET_CREATED"
	EventWalletReset              EventKind = "WALLET_RESET"
	EventTransactionCancelled     EventKind = "TRANSACTION_CANCELLED"
	EventMembershipRequestCreated EventKind = "MEMBERSHIP_REQUEST_CREATED"
	EventGroupWalletCreated       EventKind = "GROUP_WALLET_CREATED"
	EventHealthCheckCompleted     EventKind = "HEALTH_CHECK_COMPLETED"
	EventInheritanceChanged       EventKind = "INHERITANCE_CHANGED"
	EventUnknown                  EventKind = "UNKNOWN"
)

// Event is the closed set of decoded notifications. Only types in this file
// implement it.
type Event interface {
	Header() EventHeader
	Kind() EventKind
	isEvent()
}

// EventHeader carries the addressing shared by every event.
type EventHeader struct {
	ID         string    `json:"id"`
	WalletID   string    `json:"wallet_id,omitempty"`
	GroupID    string    `json:"group_id,omitempty"`
	ActorID    string    `json:"actor_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Header returns the shared header.
func (h EventHeader) Header() EventHeader { return h }

// SerializationKey is the wallet (or group, when no wallet exists yet) whose
// events must be applied one at a time.
func (h EventHeader) SerializationKey() string {
	if h.WalletID != "" {
		return "wallet:" + h.WalletID
	}
	if h.GroupID != "" {
		return "group:" + h.GroupID
	}
	return "global"
}

func (EventHeader) isEvent() {}

// ServerTransactionUpdated reports progress on a server-side transaction: a
// counter-signature (SignerID set) and/or a new status.
type ServerTransactionUpdated struct {
	EventHeader
	TransactionID string                 `json:"transaction_id"`
	SignerID      string                 `json:"signer_id,omitempty"`
	SignerXFP     string                 `json:"signer_xfp,omitempty"`
	Signature     string                 `json:"signature,omitempty"`
	Status        DummyTransactionStatus `json:"status,omitempty"`
	ErrorMessage  string                 `json:"error_message,omitempty"`

	// UnrecognizedStatus holds a status string the engine does not know.
	// Status is empty in that case.
	UnrecognizedStatus string `json:"unrecognized_status,omitempty"`
}

func (ServerTransactionUpdated) Kind() EventKind { return EventServerTransactionUpdated }

type KeyAdded struct {
	EventHeader
	XFP string `json:"xfp"`
}

func (KeyAdded) Kind() EventKind { return EventKeyAdded }

type WalletCreated struct {
	EventHeader
}

func (WalletCreated) Kind() EventKind { return EventWalletCreated }

// WalletReset reports that a draft group wallet was reset and its keys discarded.
type WalletReset struct {
	EventHeader
}

func (WalletReset) Kind() EventKind { return EventWalletReset }

type TransactionCancelled struct {
	EventHeader
	TransactionID string `json:"transaction_id"`
}

func (TransactionCancelled) Kind() EventKind { return EventTransactionCancelled }

type MembershipRequestCreated struct {
	EventHeader
}

func (MembershipRequestCreated) Kind() EventKind { return EventMembershipRequestCreated }

type GroupWalletCreated struct {
	EventHeader
}

func (GroupWalletCreated) Kind() EventKind { return EventGroupWalletCreated }

// HealthCheckCompleted reports the result of a key health check performed by the signing layer.
type HealthCheckCompleted struct {
	EventHeader
	XFP             string `json:"xfp"`
	CheckedAtMillis int64  `json:"checked_at_millis"`
}

func (HealthCheckCompleted) Kind() EventKind { return EventHealthCheckCompleted }

// InheritanceChanged reports that the server-side plan changed outside a local proposal.
type InheritanceChanged struct {
	EventHeader
	Cancelled bool `json:"cancelled"`
}

func (InheritanceChanged) Kind() EventKind { return EventInheritanceChanged }

// UnknownEvent is any notification the decoder did not recognise. It is dropped.
type UnknownEvent struct {
	EventHeader
	RawType string `json:"raw_type"`
}

func (UnknownEvent) Kind() EventKind { return EventUnknown }

// HandledEvent records that an event id was processed.
type HandledEvent struct {
	EventID   string    `json:"event_id"`
	Kind      EventKind `json:"kind"`
	HandledAt time.Time `json:"handled_at"`
}
