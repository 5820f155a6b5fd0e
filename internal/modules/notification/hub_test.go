package notification

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"rentadmin/internal/domain"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTestHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Register(conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	conn := dialTestHub(t, hub)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Broadcast(Event{Type: "reservation.created", At: "2025-10-05T00:00:00Z"})

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	var got Event
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "reservation.created", got.Type)
}

func TestHubBroadcastConcurrent(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	conn := dialTestHub(t, hub)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	const (
		writers   = 8
		perWriter = 200
	)

	received := make(chan struct{}, writers*perWriter)
	go func() {
		for {
			var ev Event
			if err := conn.ReadJSON(&ev); err != nil {
				return
			}
			received <- struct{}{}
		}
	}()

	// services emit from concurrent request handlers, so broadcasts
	// must be safe to issue from many goroutines at once
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				hub.Broadcast(Event{Type: "payment.received"})
			}
		}()
	}
	wg.Wait()

	deadline := time.After(5 * time.Second)
	for n := 0; n < writers*perWriter; n++ {
		select {
		case <-received:
		case <-deadline:
			t.Fatalf("received %d of %d events", n, writers*perWriter)
		}
	}
	assert.Equal(t, 1, hub.ClientCount())
}

func TestHubDropsDeadConnections(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	conn := dialTestHub(t, hub)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	_ = conn.Close()

	// first write after the close fails and evicts the connection
	assert.Eventually(t, func() bool {
		hub.Broadcast(Event{Type: "ping"})
		return hub.ClientCount() == 0
	}, time.Second, 20*time.Millisecond)
}

func TestServiceEmitsEvents(t *testing.T) {
	hub := NewHub()
	defer hub.Close()
	svc := NewService(hub, nil)

	conn := dialTestHub(t, hub)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	svc.ReservationCreated(context.Background(), &domain.Reservation{
		ID: 1, GuestName: "Julian Soto",
		StartDate: time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 10, 8, 0, 0, 0, 0, time.UTC),
		Origin:    domain.OriginAirbnb,
	}, "Depto Playa Grande")

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	var got Event
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "reservation.created", got.Type)
	assert.NotEmpty(t, got.At)
}
