package main

import (
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"auctionBack/internal/models"
	"auctionBack/utils"
)

func newWSTestApp(t *testing.T) *application {
	t.Helper()
	tm, err := utils.NewManager("ws-test-key")
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	app := &application{
		infoLog:      log.New(os.Stdout, "", 0),
		errorLog:     log.New(os.Stderr, "", 0),
		tokenManager: tm,
		wsManager:    NewWebSocketManager(),
	}
	go app.wsManager.Run()
	return app
}

func dialWS(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return conn
}

func TestWebSocketRejectsInvalidHelloToken(t *testing.T) {
	app := newWSTestApp(t)
	srv := httptest.NewServer(http.HandlerFunc(app.AuctionWebSocketHandler))
	defer srv.Close()

	conn := dialWS(t, srv)
	defer conn.Close()

	if err := conn.WriteJSON(map[string]any{"token": "not-a-jwt", "item_id": 7}); err != nil {
		t.Fatalf("write hello: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	if err == nil {
		t.Fatal("expected the connection to be closed for a bad token")
	}
	if !websocket.IsCloseError(err, websocket.ClosePolicyViolation) {
		t.Fatalf("expected policy violation close, got %v", err)
	}
}

func TestWebSocketRequiresHelloToken(t *testing.T) {
	app := newWSTestApp(t)
	srv := httptest.NewServer(http.HandlerFunc(app.AuctionWebSocketHandler))
	defer srv.Close()

	conn := dialWS(t, srv)
	defer conn.Close()

	if err := conn.WriteJSON(map[string]any{"item_id": 7}); err != nil {
		t.Fatalf("write hello: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); !websocket.IsCloseError(err, websocket.ClosePolicyViolation) {
		t.Fatalf("expected policy violation close without a token, got %v", err)
	}
}

// A rejected bid must reach every subscriber of the item's room, not just the
// bidder who sent it.
func TestBidRejectionReachesAllSubscribers(t *testing.T) {
	app := newWSTestApp(t)
	srv := httptest.NewServer(http.HandlerFunc(app.AuctionWebSocketHandler))
	defer srv.Close()

	tokenA, err := app.tokenManager.NewJWT(1, "user", time.Minute)
	if err != nil {
		t.Fatalf("NewJWT: %v", err)
	}
	tokenB, err := app.tokenManager.NewJWT(2, "user", time.Minute)
	if err != nil {
		t.Fatalf("NewJWT: %v", err)
	}

	a := dialWS(t, srv)
	defer a.Close()
	b := dialWS(t, srv)
	defer b.Close()

	if err := a.WriteJSON(map[string]any{"token": tokenA, "item_id": 7}); err != nil {
		t.Fatalf("write hello: %v", err)
	}
	if err := b.WriteJSON(map[string]any{"token": tokenB, "item_id": 7}); err != nil {
		t.Fatalf("write hello: %v", err)
	}

	// registration happens on the manager goroutine
	time.Sleep(100 * time.Millisecond)

	app.wsManager.BroadcastBid(7, models.BidMessage{
		ItemID:       7,
		Success:      false,
		ErrorMessage: "bid must exceed current price",
	})

	for _, conn := range []*websocket.Conn{a, b} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var msg models.BidMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read broadcast: %v", err)
		}
		if msg.Success {
			t.Fatal("expected a failed bid message")
		}
		if msg.ItemID != 7 || msg.ErrorMessage == "" {
			t.Fatalf("unexpected payload: %+v", msg)
		}
	}
}
