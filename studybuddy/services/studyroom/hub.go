package studyroom

import (
	"sync"

	"studybuddy/studybuddy/sources/psql/models"

	"github.com/google/uuid"
)

// Hub fans newly appended room messages out to websocket subscribers.
// Slow subscribers are skipped, never blocked on.
type Hub struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]map[chan models.RoomMessage]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uuid.UUID]map[chan models.RoomMessage]struct{})}
}

// Subscribe registers a listener for a room and returns the channel plus a
// cancel func the caller must invoke when done.
func (h *Hub) Subscribe(roomID uuid.UUID) (<-chan models.RoomMessage, func()) {
	ch := make(chan models.RoomMessage, 16)

	h.mu.Lock()
	if h.subs[roomID] == nil {
		h.subs[roomID] = make(map[chan models.RoomMessage]struct{})
	}
	h.subs[roomID][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[roomID]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(h.subs, roomID)
			}
		}
		h.mu.Unlock()
		close(ch)
	}
	return ch, cancel
}

func (h *Hub) Publish(roomID uuid.UUID, msg models.RoomMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs[roomID] {
		select {
		case ch <- msg:
		default:
		}
	}
}
