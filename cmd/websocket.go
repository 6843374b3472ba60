package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"auctionBack/internal/models"
)

const (
	readLimit          = 1 << 20
	readDeadline       = 120 * time.Second
	writeDeadline      = 5 * time.Second
	pingInterval       = 15 * time.Second
	firstHelloDeadline = 30 * time.Second
	bidTimeout         = 3 * time.Second
)

type wsClient struct {
	userID int
	itemID int
	conn   *websocket.Conn
}

type bidBroadcast struct {
	itemID int
	msg    models.BidMessage
}

// WebSocketManager keeps one room per auction item. All access to rooms
// happens on the Run goroutine.
type WebSocketManager struct {
	rooms      map[int]map[*websocket.Conn]int
	broadcast  chan bidBroadcast
	register   chan wsClient
	unregister chan wsClient
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		rooms:      make(map[int]map[*websocket.Conn]int),
		broadcast:  make(chan bidBroadcast),
		register:   make(chan wsClient),
		unregister: make(chan wsClient),
	}
}

// BroadcastBid delivers an accepted bid to every subscriber of the item's room.
func (ws *WebSocketManager) BroadcastBid(itemID int, msg models.BidMessage) {
	ws.broadcast <- bidBroadcast{itemID: itemID, msg: msg}
}

func (ws *WebSocketManager) Run() {
	for {
		select {
		case client := <-ws.register:
			room, ok := ws.rooms[client.itemID]
			if !ok {
				room = make(map[*websocket.Conn]int)
				ws.rooms[client.itemID] = room
			}
			room[client.conn] = client.userID
			log.Printf("WS register user=%d item=%d", client.userID, client.itemID)

		case client := <-ws.unregister:
			if room, ok := ws.rooms[client.itemID]; ok {
				if _, ok := room[client.conn]; ok {
					_ = client.conn.Close()
					delete(room, client.conn)
					log.Printf("WS unregister user=%d item=%d", client.userID, client.itemID)
				}
				if len(room) == 0 {
					delete(ws.rooms, client.itemID)
				}
			}

		case b := <-ws.broadcast:
			room, ok := ws.rooms[b.itemID]
			if !ok {
				continue
			}
			for conn, uid := range room {
				_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
				if err := conn.WriteJSON(b.msg); err != nil {
					log.Printf("broadcast error to=%d item=%d: %v", uid, b.itemID, err)
					_ = conn.Close()
					delete(room, conn)
				}
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin:       func(r *http.Request) bool { return true },
	ReadBufferSize:    1024,
	WriteBufferSize:   1024,
	EnableCompression: true,
}

// AuctionWebSocketHandler upgrades the connection and subscribes the client
// to an item's bid room. The first frame must be { "token": <access token>,
// "item_id": <int> }; every following frame is a bid { "bid_amount": <int> }.
// The bidder identity comes from the token, never from the client.
func (app *application) AuctionWebSocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	conn.SetReadLimit(readLimit)
	conn.SetReadDeadline(time.Now().Add(firstHelloDeadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	var hello struct {
		Token  string `json:"token"`
		ItemID int    `json:"item_id"`
	}
	if err := conn.ReadJSON(&hello); err != nil || hello.ItemID == 0 {
		log.Println("invalid hello payload:", err)
		_ = writeClose(conn, websocket.ClosePolicyViolation, "hello required")
		_ = conn.Close()
		return
	}
	userID, _, err := app.tokenManager.Parse(hello.Token)
	if err != nil {
		log.Println("ws auth failed:", err)
		_ = writeClose(conn, websocket.ClosePolicyViolation, "authentication required")
		_ = conn.Close()
		return
	}
	conn.SetReadDeadline(time.Now().Add(readDeadline))

	client := wsClient{userID: userID, itemID: hello.ItemID, conn: conn}
	app.wsManager.register <- client

	go pingLoop(app.wsManager, client)
	go app.handleBidFrames(client)
}

func pingLoop(ws *WebSocketManager, client wsClient) {
	t := time.NewTicker(pingInterval)
	defer t.Stop()
	for range t.C {
		_ = client.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
		if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			_ = writeClose(client.conn, websocket.CloseGoingAway, "ping error")
			ws.unregister <- client
			return
		}
	}
}

func (app *application) handleBidFrames(client wsClient) {
	defer func() {
		app.wsManager.unregister <- client
		_ = client.conn.Close()
	}()

	for {
		var frame struct {
			BidAmount int64 `json:"bid_amount"`
		}
		if err := client.conn.ReadJSON(&frame); err != nil {
			_ = writeClose(client.conn, websocket.CloseNormalClosure, "read error")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), bidTimeout)
		msg := app.placeBidFromWS(ctx, client, frame.BidAmount)
		cancel()

		// rejections are broadcast too, so every watcher sees the outcome
		app.wsManager.BroadcastBid(client.itemID, msg)
	}
}

func (app *application) placeBidFromWS(ctx context.Context, client wsClient, amount int64) models.BidMessage {
	msg := models.BidMessage{ItemID: client.itemID, BidAmount: amount}

	user, err := app.userService.GetUserByID(ctx, client.userID)
	if err != nil {
		msg.ErrorMessage = err.Error()
		return msg
	}

	bid, err := app.auctionService.PlaceBid(ctx, client.itemID, user, amount)
	if err != nil {
		msg.ErrorMessage = err.Error()
		return msg
	}

	msg.BidderUsername = user.Username
	msg.BidderName = user.Name
	msg.BidTime = bid.BidTime.Format("2006-01-02 15:04:05")
	msg.Success = true
	return msg
}

func writeClose(conn *websocket.Conn, code int, reason string) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	return conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason),
		time.Now().Add(writeDeadline),
	)
}
