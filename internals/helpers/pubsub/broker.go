package pubsub

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"capacitajun_backend/internals/helpers/logger"
)

// Broker fans out payloads published on a channel to every live subscriber,
// in publish order. There is no replay for late subscribers.
type Broker interface {
	Publish(ctx context.Context, channel string, payload []byte) error
	// Subscribe returns a receive channel and a cancel func that must be
	// called to release the subscription. The channel is closed on cancel.
	Subscribe(ctx context.Context, channel string) (<-chan []byte, func(), error)
}

const subscriberBuffer = 64

func New(client *redis.Client) Broker {
	if client == nil {
		return NewMemory()
	}
	return NewRedis(client)
}

/* =========================
   In-process
========================= */

type Memory struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string]map[int]chan []byte
}

func NewMemory() *Memory {
	return &Memory{subs: map[string]map[int]chan []byte{}}
}

func (m *Memory) Publish(_ context.Context, channel string, payload []byte) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for id, ch := range m.subs[channel] {
		select {
		case ch <- payload:
		default:
			logger.Log.WithField("channel", channel).WithField("subscriber", id).Warn("pubsub: slow subscriber, message dropped")
		}
	}
	return nil
}

func (m *Memory) Subscribe(_ context.Context, channel string) (<-chan []byte, func(), error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	ch := make(chan []byte, subscriberBuffer)
	if m.subs[channel] == nil {
		m.subs[channel] = map[int]chan []byte{}
	}
	m.subs[channel][id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.subs[channel], id)
			if len(m.subs[channel]) == 0 {
				delete(m.subs, channel)
			}
			close(ch)
		})
	}
	return ch, cancel, nil
}

// Subscribers reports live subscribers on channel.
func (m *Memory) Subscribers(channel string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subs[channel])
}

/* =========================
   Redis pub/sub
========================= */

type redisBroker struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) Broker {
	return &redisBroker{client: client}
}

func (r *redisBroker) Publish(ctx context.Context, channel string, payload []byte) error {
	if err := r.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish to Redis: %w", err)
	}
	return nil
}

func (r *redisBroker) Subscribe(ctx context.Context, channel string) (<-chan []byte, func(), error) {
	ps := r.client.Subscribe(ctx, channel)
	// wait for the subscription confirmation so no message is lost after return
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, nil, fmt.Errorf("failed to subscribe %s: %w", channel, err)
	}

	out := make(chan []byte, subscriberBuffer)
	done := make(chan struct{})
	go func() {
		defer close(out)
		msgs := ps.Channel()
		for {
			select {
			case <-done:
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				select {
				case out <- []byte(msg.Payload):
				case <-done:
					return
				}
			}
		}
	}()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(done)
			_ = ps.Close()
		})
	}
	return out, cancel, nil
}
