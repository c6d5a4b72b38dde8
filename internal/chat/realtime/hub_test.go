package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recvFrame(t *testing.T, s *Session) []byte {
	t.Helper()
	select {
	case data := <-s.send:
		return data
	default:
		t.Fatal("expected a queued frame")
		return nil
	}
}

func assertNoFrame(t *testing.T, s *Session) {
	t.Helper()
	select {
	case data := <-s.send:
		t.Fatalf("unexpected frame queued: %s", data)
	default:
	}
}

func TestHub_BroadcastToGroup(t *testing.T) {
	hub := NewHub()
	alice := newSession("conn-a", "alice", nil)
	bob := newSession("conn-b", "bob", nil)
	carol := newSession("conn-c", "carol", nil)

	hub.Add(alice)
	hub.Add(bob)
	hub.Add(carol)
	hub.Join(alice, 10)
	hub.Join(bob, 10)
	hub.Join(carol, 99)

	hub.Broadcast(10, []byte(`{"event":"message.new"}`), "")

	assert.Equal(t, `{"event":"message.new"}`, string(recvFrame(t, alice)))
	assert.Equal(t, `{"event":"message.new"}`, string(recvFrame(t, bob)))
	assertNoFrame(t, carol)
}

func TestHub_BroadcastExcludesOneHandle(t *testing.T) {
	hub := NewHub()
	alice := newSession("conn-a", "alice", nil)
	bob := newSession("conn-b", "bob", nil)

	hub.Add(alice)
	hub.Add(bob)
	hub.Join(alice, 10)
	hub.Join(bob, 10)

	hub.Broadcast(10, []byte(`{"event":"typing.start"}`), "conn-a")

	assertNoFrame(t, alice)
	assert.Equal(t, `{"event":"typing.start"}`, string(recvFrame(t, bob)))
}

func TestHub_RemovePurgesAllGroups(t *testing.T) {
	hub := NewHub()
	alice := newSession("conn-a", "alice", nil)

	hub.Add(alice)
	hub.Join(alice, 10)
	hub.Join(alice, 11)
	require.Equal(t, 1, hub.GroupSize(10))
	require.Equal(t, 1, hub.GroupSize(11))
	require.Equal(t, 1, hub.SessionCount())

	hub.Remove(alice)

	assert.Equal(t, 0, hub.GroupSize(10))
	assert.Equal(t, 0, hub.GroupSize(11))
	assert.Equal(t, 0, hub.SessionCount())

	// A second remove of the same session is harmless.
	hub.Remove(alice)
	assert.Equal(t, 0, hub.SessionCount())
}

func TestHub_LeaveUnknownGroupIsNoop(t *testing.T) {
	hub := NewHub()
	alice := newSession("conn-a", "alice", nil)
	hub.Add(alice)

	hub.Leave(alice, 123)

	assert.Equal(t, 0, hub.GroupSize(123))
}

func TestHub_BackpressureClosesSlowSession(t *testing.T) {
	hub := NewHub()
	slow := newSession("conn-slow", "slouch", nil)
	hub.Add(slow)
	hub.Join(slow, 10)

	for i := 0; i < sendBufferSize; i++ {
		require.True(t, slow.enqueue([]byte("x")))
	}

	// Queue is full: the broadcast drops and closes the session instead
	// of blocking.
	hub.Broadcast(10, []byte("y"), "")

	_, open := <-slow.send
	assert.True(t, open) // buffered frames still drain
	for i := 0; i < sendBufferSize-1; i++ {
		<-slow.send
	}
	_, open = <-slow.send
	assert.False(t, open)
}

func TestHub_BackpressureUnsubscribesSlowSession(t *testing.T) {
	hub := NewHub()
	slow := newSession("conn-slow", "slouch", nil)
	fast := newSession("conn-fast", "flash", nil)
	hub.Add(slow)
	hub.Add(fast)
	hub.Join(slow, 10)
	hub.Join(fast, 10)

	for i := 0; i < sendBufferSize; i++ {
		require.True(t, slow.enqueue([]byte("x")))
	}

	hub.Broadcast(10, []byte("y"), "")

	// The slow session is gone from the registry and its groups; the
	// healthy peer is untouched.
	assert.Equal(t, 1, hub.GroupSize(10))
	assert.Equal(t, 1, hub.SessionCount())

	// A follow-up broadcast must not panic on the closed session and
	// still reaches the healthy peer.
	hub.Broadcast(10, []byte("z"), "")
	<-fast.send
	assert.Equal(t, "z", string(recvFrame(t, fast)))
}

func TestSession_EnqueueAfterCloseIsRejected(t *testing.T) {
	s := newSession("conn-a", "alice", nil)

	require.True(t, s.enqueue([]byte("x")))
	s.Close()

	assert.False(t, s.enqueue([]byte("y")))
	s.Close() // repeat close stays harmless
}
