package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"wallet-governance/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPublisher_Publish(t *testing.T) {
	_, client := newTestClient(t)
	ctx := context.Background()

	sub := client.Subscribe(ctx, "governance:push")
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	pub := NewPushPublisher(client, "governance:push")
	at := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	err = pub.Publish(ctx, domain.PushEvent{
		Kind:          domain.PushServerTransaction,
		EventID:       "evt-1",
		WalletID:      "wallet-1",
		TransactionID: "tx-1",
		At:            at,
	})
	require.NoError(t, err)

	select {
	case msg := <-sub.Channel():
		var got domain.PushEvent
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, domain.PushServerTransaction, got.Kind)
		assert.Equal(t, "wallet-1", got.WalletID)
		assert.True(t, at.Equal(got.At))
	case <-time.After(time.Second):
		t.Fatal("push not received")
	}
}

func TestPushPublisher_NoSubscribers(t *testing.T) {
	_, client := newTestClient(t)
	pub := NewPushPublisher(client, "governance:push")

	err := pub.Publish(context.Background(), domain.PushEvent{Kind: domain.PushWalletCreated})
	assert.NoError(t, err)
}
