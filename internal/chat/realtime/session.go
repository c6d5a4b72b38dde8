package realtime

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024

	// bounded outbound queue (backpressure)
	sendBufferSize = 256
)

// Session is one live client connection. Its send channel is the only
// path to the socket; the write pump owns all writes. The mutex guards
// send against the channel closing while another goroutine enqueues.
type Session struct {
	Handle string
	UserID string

	conn   *websocket.Conn
	send   chan []byte
	mu     sync.RWMutex
	closed bool
}

func newSession(handle, userID string, conn *websocket.Conn) *Session {
	return &Session{
		Handle: handle,
		UserID: userID,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
	}
}

// enqueue hands data to the write pump without blocking. Reports false
// when the session is closed or the buffer is full, which the hub
// treats as a dead session. The read lock is held across the send so
// Close cannot close the channel mid-enqueue.
func (s *Session) enqueue(data []byte) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false
	}
	select {
	case s.send <- data:
		return true
	default:
		return false
	}
}

// Close terminates the session. Safe to call more than once and safe
// against concurrent enqueues; the write pump exits when the send
// channel closes.
func (s *Session) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.send)
	}
	s.mu.Unlock()
}

// writePump drains the send channel onto the socket and keeps the
// connection alive with pings.
func (s *Session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case data, ok := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump pulls client frames until the connection dies. onFrame
// handles each frame; onPong fires when the client answers a ping.
func (s *Session) readPump(onFrame func([]byte), onPong func()) {
	defer s.conn.Close()

	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		onPong()
		return nil
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			return
		}
		onFrame(data)
	}
}
