package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventHeader_SerializationKey(t *testing.T) {
	assert.Equal(t, "wallet:w1", EventHeader{WalletID: "w1", GroupID: "g1"}.SerializationKey())
	assert.Equal(t, "group:g1", EventHeader{GroupID: "g1"}.SerializationKey())
	assert.Equal(t, "global", EventHeader{}.SerializationKey())
}

func TestEvent_Kinds(t *testing.T) {
	h := EventHeader{ID: "e1", WalletID: "w1"}
	events := map[EventKind]Event{
		EventServerTransactionUpdated: ServerTransactionUpdated{EventHeader: h},
		EventKeyAdded:                 KeyAdded{EventHeader: h},
		EventWalletCreated:            WalletCreated{EventHeader: h},
		EventWalletReset:              WalletReset{EventHeader: h},
		EventTransactionCancelled:     TransactionCancelled{EventHeader: h},
		EventMembershipRequestCreated: MembershipRequestCreated{EventHeader: h},
		EventGroupWalletCreated:       GroupWalletCreated{EventHeader: h},
		EventHealthCheckCompleted:     HealthCheckCompleted{EventHeader: h},
		EventInheritanceChanged:       InheritanceChanged{EventHeader: h},
		EventUnknown:                  UnknownEvent{EventHeader: h},
	}

	for kind, ev := range events {
		assert.Equal(t, kind, ev.Kind())
		assert.Equal(t, "e1", ev.Header().ID)
	}
}

func TestSession_IsLocal(t *testing.T) {
	s := Session{MemberID: "alice"}
	assert.True(t, s.IsLocal("alice"))
	assert.False(t, s.IsLocal("bob"))
	assert.False(t, Session{}.IsLocal(""))
}
