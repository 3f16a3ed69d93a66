package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"companion-learning-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	hub := NewHub(nil, logger.NewNopLogger())
	go hub.Run(ctx)
	return hub
}

func TestHub_BroadcastRevalidationReachesEveryClient(t *testing.T) {
	hub := startHub(t)

	alice := &Client{Hub: hub, UserID: "alice", Send: make(chan []byte, 1)}
	anon := &Client{Hub: hub, Send: make(chan []byte, 1)}
	hub.register <- alice
	hub.register <- anon
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	hub.BroadcastRevalidation("/companions")

	for _, c := range []*Client{alice, anon} {
		select {
		case raw := <-c.Send:
			var msg RevalidateMessage
			require.NoError(t, json.Unmarshal(raw, &msg))
			assert.Equal(t, RevalidateMessage{Type: "revalidate", Path: "/companions"}, msg)
		case <-time.After(time.Second):
			t.Fatal("client did not receive the broadcast")
		}
	}
}

func TestHub_SlowClientIsDropped(t *testing.T) {
	hub := startHub(t)

	slow := &Client{Hub: hub, UserID: "slow", Send: make(chan []byte)}
	hub.register <- slow
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.BroadcastRevalidation("/")

	assert.Equal(t, 0, hub.ClientCount())
	_, open := <-slow.Send
	assert.False(t, open)
}

func TestHub_UnregisterTwiceIsHarmless(t *testing.T) {
	hub := startHub(t)

	c := &Client{Hub: hub, UserID: "u1", Send: make(chan []byte, 1)}
	hub.register <- c
	hub.unregister <- c
	hub.unregister <- c

	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
}

func TestHub_LeaveAfterStopDoesNotBlock(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(nil, logger.NewNopLogger())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	c := &Client{Hub: hub, UserID: "u1", Send: make(chan []byte, 1)}
	require.True(t, hub.join(c))
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	<-stopped

	left := make(chan struct{})
	go func() {
		hub.leave(c)
		close(left)
	}()
	select {
	case <-left:
	case <-time.After(time.Second):
		t.Fatal("leave blocked on a stopped hub")
	}
	assert.Equal(t, 0, hub.ClientCount())
	_, open := <-c.Send
	assert.False(t, open)

	assert.False(t, hub.join(&Client{Hub: hub, UserID: "late", Send: make(chan []byte, 1)}))
}
