package telemetry

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/undertow/internal/simulation"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readSnapshot(t *testing.T, conn *websocket.Conn) simulation.Snapshot {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var snap simulation.Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	return snap
}

func TestPublishReachesClients(t *testing.T) {
	s := NewServer(zerolog.Nop())
	srv := httptest.NewServer(s)
	defer srv.Close()
	defer s.Close()

	a := dial(t, srv)
	b := dial(t, srv)
	require.Eventually(t, func() bool { return s.ClientCount() == 2 }, time.Second, 10*time.Millisecond)

	s.Publish(simulation.Snapshot{Tick: 7, Mode: "swimming", Depth: 12.5})

	for _, conn := range []*websocket.Conn{a, b} {
		snap := readSnapshot(t, conn)
		assert.Equal(t, uint64(7), snap.Tick)
		assert.Equal(t, "swimming", snap.Mode)
		assert.Equal(t, 12.5, snap.Depth)
	}
}

func TestNewClientGetsLatestSnapshot(t *testing.T) {
	s := NewServer(zerolog.Nop())
	srv := httptest.NewServer(s)
	defer srv.Close()
	defer s.Close()

	s.Publish(simulation.Snapshot{Tick: 1})
	s.Publish(simulation.Snapshot{Tick: 2})

	conn := dial(t, srv)
	assert.Equal(t, uint64(2), readSnapshot(t, conn).Tick)
}

func TestPublishWithoutClientsDoesNotBlock(t *testing.T) {
	s := NewServer(zerolog.Nop())
	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			s.Publish(simulation.Snapshot{Tick: uint64(i)})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked")
	}
}

func TestSlowClientSeesNewest(t *testing.T) {
	c := &client{send: make(chan []byte, 1), done: make(chan struct{})}
	c.offer([]byte("1"))
	c.offer([]byte("2"))
	c.offer([]byte("3"))
	assert.Equal(t, "3", string(<-c.send))
}

func TestDisconnectUnregisters(t *testing.T) {
	s := NewServer(zerolog.Nop())
	srv := httptest.NewServer(s)
	defer srv.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return s.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	require.Eventually(t, func() bool { return s.ClientCount() == 0 }, time.Second, 10*time.Millisecond)

	dial(t, srv)
	require.Eventually(t, func() bool { return s.ClientCount() == 1 }, time.Second, 10*time.Millisecond)
	s.Close()
	assert.Zero(t, s.ClientCount())
}
