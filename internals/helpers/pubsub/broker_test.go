package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv(t *testing.T, ch <-chan []byte) string {
	t.Helper()
	select {
	case b, ok := <-ch:
		require.True(t, ok, "channel closed")
		return string(b)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return ""
	}
}

func TestMemory_FanOutInOrder(t *testing.T) {
	ctx := context.Background()
	b := NewMemory()

	a, cancelA, err := b.Subscribe(ctx, "group:1")
	require.NoError(t, err)
	defer cancelA()
	c, cancelC, err := b.Subscribe(ctx, "group:1")
	require.NoError(t, err)
	defer cancelC()

	other, cancelO, _ := b.Subscribe(ctx, "group:2")
	defer cancelO()

	for _, m := range []string{"m1", "m2", "m3"} {
		require.NoError(t, b.Publish(ctx, "group:1", []byte(m)))
	}

	for _, want := range []string{"m1", "m2", "m3"} {
		assert.Equal(t, want, recv(t, a))
		assert.Equal(t, want, recv(t, c))
	}
	select {
	case <-other:
		t.Fatal("message leaked to another channel")
	default:
	}
}

func TestMemory_CancelClosesAndUnregisters(t *testing.T) {
	ctx := context.Background()
	b := NewMemory()

	ch, cancel, err := b.Subscribe(ctx, "g")
	require.NoError(t, err)
	assert.Equal(t, 1, b.Subscribers("g"))

	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)
	assert.Equal(t, 0, b.Subscribers("g"))
	assert.NoError(t, b.Publish(ctx, "g", []byte("late")))
}

func TestMemory_NoReplayForLateSubscriber(t *testing.T) {
	ctx := context.Background()
	b := NewMemory()
	require.NoError(t, b.Publish(ctx, "g", []byte("early")))

	ch, cancel, _ := b.Subscribe(ctx, "g")
	defer cancel()
	require.NoError(t, b.Publish(ctx, "g", []byte("late")))
	assert.Equal(t, "late", recv(t, ch))
}
