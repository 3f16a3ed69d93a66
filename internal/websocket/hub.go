package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"companion-learning-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const clusterChannel = "cluster_events"

// RevalidateMessage is what clients receive on the socket.
type RevalidateMessage struct {
	Type string `json:"type"`
	Path string `json:"path"`
}

type clusterEnvelope struct {
	Origin  string          `json:"origin"`
	Message json.RawMessage `json:"message"`
}

type Hub struct {
	// Registered clients: user id -> connections (multi-device). Anonymous viewers share the "" key.
	clients map[string][]*Client

	register   chan *Client
	unregister chan *Client

	// closed once Run returns
	done chan struct{}

	mu sync.RWMutex

	// Redis connection for cross-instance relay, nil for a single instance
	rdb *redis.Client

	// instanceID lets the relay skip messages this instance published itself
	instanceID string

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[string][]*Client),
		rdb:        rdb,
		instanceID: uuid.NewString(),
		logger:     log,
	}
}

// Run serves register/unregister requests until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"user_id": client.UserID})

		case client := <-h.unregister:
			h.remove(client)
		}
	}
}

// join hands client to Run. It reports false once the hub has stopped.
func (h *Hub) join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// leave never blocks past Run: a stopped hub drops the client directly.
func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
		h.remove(client)
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.clients[client.UserID]
	if !ok {
		return
	}
	for i, c := range clients {
		if c == client {
			h.clients[client.UserID] = append(clients[:i], clients[i+1:]...)
			close(client.Send)
			break
		}
	}
	if len(h.clients[client.UserID]) == 0 {
		delete(h.clients, client.UserID)
		h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"user_id": client.UserID})
	}
}

// BroadcastRevalidation tells every connected client, on every instance, that path is stale.
func (h *Hub) BroadcastRevalidation(path string) {
	data, err := json.Marshal(RevalidateMessage{Type: "revalidate", Path: path})
	if err != nil {
		h.logger.Error("Hub", "Failed to marshal revalidate message", map[string]interface{}{"error": err.Error()})
		return
	}

	h.deliverLocal(data)

	if h.rdb != nil {
		payload, _ := json.Marshal(clusterEnvelope{Origin: h.instanceID, Message: data})
		if err := h.rdb.Publish(context.Background(), clusterChannel, payload).Err(); err != nil {
			h.logger.Warn("Hub", "Failed to relay revalidation over redis", map[string]interface{}{"error": err.Error()})
		}
	}
}

func (h *Hub) deliverLocal(data []byte) {
	var stale []*Client

	h.mu.RLock()
	for _, clients := range h.clients {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				stale = append(stale, client)
			}
		}
	}
	h.mu.RUnlock()

	for _, client := range stale {
		h.logger.Warn("Hub", "Client Send buffer full, dropping connection", map[string]interface{}{"user_id": client.UserID})
		h.remove(client)
	}
}

// ClientCount reports how many connections are registered on this instance.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := 0
	for _, clients := range h.clients {
		n += len(clients)
	}
	return n
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var envelope clusterEnvelope
			if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
				h.logger.Warn("Hub", "Redis msg parse error", map[string]interface{}{"error": err.Error()})
				continue
			}
			if envelope.Origin == h.instanceID {
				continue
			}
			h.deliverLocal(envelope.Message)
		}
	}
}
