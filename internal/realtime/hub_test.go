package realtime

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/linskybing/catalyst/internal/domain/ticket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("condition not met")
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	waitFor(t, func() bool { return hub.Subscribers() == 1 })

	hub.Publish(Event{Type: TicketCreated, ID: "t-1", Ticket: &ticket.Ticket{ID: "t-1", Title: "Ship"}})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got Event
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, TicketCreated, got.Type)
	assert.Equal(t, "t-1", got.ID)
	require.NotNil(t, got.Ticket)
	assert.Equal(t, "Ship", got.Ticket.Title)

	conn.Close()
	waitFor(t, func() bool { return hub.Subscribers() == 0 })
}

func TestPublishDropsSlowSubscriber(t *testing.T) {
	hub := NewHub(nil)
	s := hub.subscribe()

	for i := 0; i < sendBuffer; i++ {
		hub.Publish(Event{Type: TicketUpdated, ID: "x"})
	}
	assert.Equal(t, 1, hub.Subscribers())

	done := make(chan struct{})
	go func() {
		hub.Publish(Event{Type: TicketDeleted, ID: "x"})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("publish blocked")
	}
	assert.Equal(t, 0, hub.Subscribers())

	n := 0
	for range s.send {
		n++
	}
	assert.Equal(t, sendBuffer, n)
}

func TestDiscard(t *testing.T) {
	Discard.Publish(Event{Type: TicketCreated})
}
