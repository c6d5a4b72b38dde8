package realtime

import (
	"sync"

	"movieplus/internal/metrics"
)

// Hub holds the broadcast groups: which live sessions are subscribed to
// which conversation. It is derived state, rebuilt from the participant
// table on every connect, and is never a trust boundary — participation
// is re-checked on each action.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*Session            // connection handle -> session
	groups   map[uint]map[*Session]struct{} // conversation id -> subscribers
}

func NewHub() *Hub {
	return &Hub{
		sessions: make(map[string]*Session),
		groups:   make(map[uint]map[*Session]struct{}),
	}
}

func (h *Hub) Add(s *Session) {
	h.mu.Lock()
	h.sessions[s.Handle] = s
	h.mu.Unlock()
	metrics.OnlineConns.Inc()
}

// Remove drops the session from the registry and every group it joined.
func (h *Hub) Remove(s *Session) {
	h.mu.Lock()
	if _, ok := h.sessions[s.Handle]; ok {
		delete(h.sessions, s.Handle)
		for _, members := range h.groups {
			delete(members, s)
		}
		metrics.OnlineConns.Dec()
	}
	h.mu.Unlock()
}

func (h *Hub) Join(s *Session, conversationID uint) {
	h.mu.Lock()
	if h.groups[conversationID] == nil {
		h.groups[conversationID] = make(map[*Session]struct{})
	}
	h.groups[conversationID][s] = struct{}{}
	h.mu.Unlock()
}

// Leave is unconditional: leaving a group the session never joined is a
// no-op.
func (h *Hub) Leave(s *Session, conversationID uint) {
	h.mu.Lock()
	if members, ok := h.groups[conversationID]; ok {
		delete(members, s)
		if len(members) == 0 {
			delete(h.groups, conversationID)
		}
	}
	h.mu.Unlock()
}

// Broadcast queues data to every subscriber of the conversation, except
// the session with exceptHandle when set. A subscriber whose outbound
// queue is full is closed and dropped; one slow recipient never stalls
// the rest.
func (h *Hub) Broadcast(conversationID uint, data []byte, exceptHandle string) {
	h.mu.RLock()
	members := make([]*Session, 0, len(h.groups[conversationID]))
	for s := range h.groups[conversationID] {
		if exceptHandle != "" && s.Handle == exceptHandle {
			continue
		}
		members = append(members, s)
	}
	h.mu.RUnlock()

	for _, s := range members {
		if s.enqueue(data) {
			metrics.BroadcastOK.Inc()
		} else {
			metrics.BroadcastBackpressure.Inc()
			s.Close()
			h.Remove(s)
		}
	}
}

// GroupSize reports the subscriber count for a conversation.
func (h *Hub) GroupSize(conversationID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.groups[conversationID])
}

// SessionCount reports total live sessions.
func (h *Hub) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}
