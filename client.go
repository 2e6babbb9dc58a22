package main

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait         = 10 * time.Second
	pongWait          = 60 * time.Second
	pingPeriod        = (pongWait * 9) / 10
	maxMessageSize    = 4096
	sendBufSize       = 256
	maxMessagesPerSec = 50
)

// Client represents a WebSocket connection. Its id doubles as the in-game
// player identity for the lifetime of the connection.
type Client struct {
	hub        *Hub
	conn       *websocket.Conn
	send       chan []byte
	id         string
	remoteAddr string
	msgCount   int
	msgResetAt time.Time
	// Auth state
	accountID int64  // 0 = unauthenticated/guest
	username  string // "" = unauthenticated
}

// NewClient creates a new Client
func NewClient(hub *Hub, conn *websocket.Conn, remoteAddr string) *Client {
	return &Client{
		hub:        hub,
		conn:       conn,
		send:       make(chan []byte, sendBufSize),
		id:         GenerateID(8),
		remoteAddr: remoteAddr,
	}
}

// ReadPump reads messages from the WebSocket connection
func (c *Client) ReadPump() {
	defer func() {
		c.hub.TrackDisconnect(c.remoteAddr)
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws error: %v", err)
			}
			break
		}

		// Rate limiting
		now := time.Now()
		if now.After(c.msgResetAt) {
			c.msgCount = 0
			c.msgResetAt = now.Add(time.Second)
		}
		c.msgCount++
		if c.msgCount > maxMessagesPerSec {
			log.Printf("rate limit exceeded for %s, disconnecting", c.remoteAddr)
			break
		}

		c.handleMessage(message)
	}
}

// WritePump writes messages to the WebSocket connection
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			// Check for binary marker (0xFF prefix from SendBinary)
			var err error
			if len(message) > 0 && message[0] == 0xFF {
				err = c.conn.WriteMessage(websocket.BinaryMessage, message[1:])
			} else {
				err = c.conn.WriteMessage(websocket.TextMessage, message)
			}
			if err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendJSON sends a JSON message to the client
func (c *Client) SendJSON(msg interface{}) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("marshal error: %v", err)
		return
	}
	c.SendRaw(data)
}

// SendRaw sends pre-marshaled bytes as a text message to the client
func (c *Client) SendRaw(data []byte) {
	defer func() { recover() }()
	select {
	case c.send <- data:
	default:
		// Client too slow, drop message
	}
}

// SendBinary sends pre-marshaled bytes as a binary WebSocket message.
// Prefixes with 0xFF marker byte so WritePump can distinguish from text.
func (c *Client) SendBinary(data []byte) {
	defer func() { recover() }()
	msg := make([]byte, len(data)+1)
	msg[0] = 0xFF // binary marker
	copy(msg[1:], data)
	select {
	case c.send <- msg:
	default:
	}
}

func (c *Client) sendError(reason string) {
	c.SendJSON(Envelope{T: MsgServerError, Data: ErrorMsg{Msg: reason}})
}

// handleMessage routes incoming messages (single-pass decode via InEnvelope)
func (c *Client) handleMessage(raw []byte) {
	var env InEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		log.Printf("unmarshal error: %v", err)
		return
	}

	switch env.T {
	case MsgCreateRoom:
		c.handleCreateRoom(env.D)
	case MsgJoinRoom:
		c.handleJoinRoom(env.D)
	case MsgLeaveRoom:
		c.handleLeaveRoom()
	case MsgSetReady:
		c.handleSetReady(env.D)
	case MsgSetColor:
		c.handleSetColor(env.D)
	case MsgInput:
		c.handleInput(env.D)
	case MsgAction:
		c.handleAction()
	case MsgCollect:
		c.handleCollect()
	case MsgStartGame:
		c.handleStartGame()
	case MsgStartRound:
		c.handleStartRound()
	case MsgAddBot:
		c.handleAddBot()
	case MsgRemoveBot:
		c.handleRemoveBot()
	case MsgRequestState:
		c.handleRequestState()
	case MsgRegister:
		c.handleRegister(env.D)
	case MsgLogin:
		c.handleLogin(env.D)
	case MsgAuth:
		c.handleAuth(env.D)
	case MsgProfile:
		c.handleProfile()
	case MsgStoreList:
		c.handleStoreList()
	case MsgStoreBuy:
		c.handleStoreBuy(env.D)
	}
}

func (c *Client) handleCreateRoom(data json.RawMessage) {
	var msg CreateRoomMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	name := safeName(msg.Name)
	if name == "Player" && c.username != "" {
		name = c.username
	}

	room, p := c.hub.rooms.CreateRoom(c.id, name, msg.Color)
	p.AccountID = c.accountID
	room.SetClient(c.id, c)

	room.mu.Lock()
	summary := room.summaryLocked()
	room.mu.Unlock()
	c.SendJSON(Envelope{T: MsgRoomJoined, Data: RoomJoinedMsg{Room: summary, YouID: c.id}})
}

func (c *Client) handleJoinRoom(data json.RawMessage) {
	var msg JoinRoomMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	code := strings.ToUpper(strings.TrimSpace(msg.Room))
	name := safeName(msg.Name)
	if name == "Player" && c.username != "" {
		name = c.username
	}

	room, p, reason := c.hub.rooms.JoinRoom(code, c.id, name, msg.Color)
	if reason != "" {
		c.sendError(reason)
		return
	}
	p.AccountID = c.accountID
	room.SetClient(c.id, c)

	room.mu.Lock()
	summary := room.summaryLocked()
	room.broadcastJSON(Envelope{T: MsgRoomUpdate, Data: RoomPayload{Room: summary}})
	room.mu.Unlock()
	c.SendJSON(Envelope{T: MsgRoomJoined, Data: RoomJoinedMsg{Room: summary, YouID: c.id}})
}

func (c *Client) handleLeaveRoom() {
	room := c.hub.rooms.RemovePlayer(c.id)
	if room == nil {
		return
	}
	room.mu.Lock()
	room.broadcastJSON(Envelope{T: MsgRoomUpdate, Data: RoomPayload{Room: room.summaryLocked()}})
	room.mu.Unlock()
}

func (c *Client) handleSetReady(data json.RawMessage) {
	var msg SetReadyMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	room := c.hub.rooms.GetByPlayer(c.id)
	if room == nil {
		return
	}
	room.SetReady(c.id, msg.Ready)
	room.mu.Lock()
	room.broadcastJSON(Envelope{T: MsgRoomUpdate, Data: RoomPayload{Room: room.summaryLocked()}})
	room.mu.Unlock()
}

func (c *Client) handleSetColor(data json.RawMessage) {
	var msg SetColorMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	room := c.hub.rooms.GetByPlayer(c.id)
	if room == nil {
		return
	}
	if reason := room.SetColor(c.id, msg.Color); reason != "" {
		c.sendError(reason)
		return
	}
	room.mu.Lock()
	room.broadcastJSON(Envelope{T: MsgRoomUpdate, Data: RoomPayload{Room: room.summaryLocked()}})
	room.mu.Unlock()
}

func (c *Client) handleInput(data json.RawMessage) {
	var msg InputMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	room := c.hub.rooms.GetByPlayer(c.id)
	if room == nil {
		return
	}
	room.HandleInput(c.id, msg.X, msg.Y)
}

func (c *Client) handleAction() {
	room := c.hub.rooms.GetByPlayer(c.id)
	if room == nil {
		return
	}
	room.HandleAction(c.id)
}

func (c *Client) handleCollect() {
	room := c.hub.rooms.GetByPlayer(c.id)
	if room == nil {
		return
	}
	if reason := room.HandleCollect(c.id); reason != "" && reason != "Too fast" {
		c.sendError(reason)
	}
}

func (c *Client) handleStartGame() {
	room := c.hub.rooms.GetByPlayer(c.id)
	if room == nil {
		c.sendError("Room not found")
		return
	}
	if reason := room.StartGame(c.id); reason != "" {
		c.sendError(reason)
	}
}

func (c *Client) handleStartRound() {
	room := c.hub.rooms.GetByPlayer(c.id)
	if room == nil {
		c.sendError("Room not found")
		return
	}
	if reason := room.StartRound(c.id, c.hub.rooms); reason != "" {
		c.sendError(reason)
	}
}

func (c *Client) handleAddBot() {
	room := c.hub.rooms.GetByPlayer(c.id)
	if room == nil {
		return
	}
	if reason := room.AddBot(c.id); reason != "" {
		c.sendError(reason)
	}
}

func (c *Client) handleRemoveBot() {
	room := c.hub.rooms.GetByPlayer(c.id)
	if room == nil {
		return
	}
	if reason := room.RemoveBot(c.id); reason != "" {
		c.sendError(reason)
	}
}

func (c *Client) handleRequestState() {
	room := c.hub.rooms.GetByPlayer(c.id)
	if room == nil {
		return
	}
	room.mu.Lock()
	summary := room.summaryLocked()
	room.mu.Unlock()
	c.SendJSON(Envelope{T: MsgRoomUpdate, Data: RoomPayload{Room: summary}})
}

func (c *Client) handleRegister(data json.RawMessage) {
	if c.hub.auth == nil {
		return
	}
	var msg RegisterMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	id, token, err := c.hub.auth.Register(msg.Username, msg.Password)
	if err != nil {
		c.sendError(err.Error())
		return
	}
	c.accountID = id
	c.username = msg.Username
	c.hub.SetOnline(id, c)
	c.SendJSON(Envelope{T: MsgAuthOK, Data: AuthOKMsg{
		Token:     token,
		Username:  msg.Username,
		AccountID: id,
	}})
}

func (c *Client) handleLogin(data json.RawMessage) {
	if c.hub.auth == nil {
		return
	}
	var msg LoginMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	id, token, err := c.hub.auth.Login(msg.Username, msg.Password, c.remoteAddr)
	if err != nil {
		c.sendError(err.Error())
		return
	}
	c.accountID = id
	c.username = msg.Username
	c.hub.SetOnline(id, c)
	c.SendJSON(Envelope{T: MsgAuthOK, Data: AuthOKMsg{
		Token:     token,
		Username:  msg.Username,
		AccountID: id,
	}})
}

func (c *Client) handleAuth(data json.RawMessage) {
	if c.hub.auth == nil {
		return
	}
	var msg AuthMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	id, username, err := c.hub.auth.ValidateToken(msg.Token)
	if err != nil {
		c.sendError("invalid token")
		return
	}
	c.accountID = id
	c.username = username
	c.hub.SetOnline(id, c)
	c.SendJSON(Envelope{T: MsgAuthOK, Data: AuthOKMsg{
		Token:     msg.Token,
		Username:  username,
		AccountID: id,
	}})
}

func (c *Client) handleProfile() {
	if c.hub.db == nil || c.accountID == 0 {
		c.sendError("not authenticated")
		return
	}
	stats, err := c.hub.db.GetStats(c.accountID)
	if err != nil || stats == nil {
		c.sendError("profile not found")
		return
	}
	items, err := c.hub.db.GetItems(c.accountID)
	if err != nil {
		c.sendError("profile not found")
		return
	}
	c.SendJSON(Envelope{T: MsgProfileData, Data: ProfileDataMsg{
		Username:   c.username,
		Games:      stats.Games,
		Wins:       stats.Wins,
		BestScore:  stats.BestScore,
		TotalScore: stats.TotalScore,
		Playtime:   stats.Playtime,
		Crowns:     stats.Crowns,
		Items:      items,
	}})
}

func (c *Client) handleStoreList() {
	c.SendJSON(Envelope{T: MsgStoreItems, Data: StoreCatalog})
}

func (c *Client) handleStoreBuy(data json.RawMessage) {
	if c.hub.db == nil || c.accountID == 0 {
		c.sendError("not authenticated")
		return
	}
	var msg StoreBuyMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	item, ok := StoreCatalogMap[msg.ItemID]
	if !ok {
		c.sendError("unknown item")
		return
	}
	owned, err := c.hub.db.HasItem(c.accountID, item.ID)
	if err != nil {
		c.sendError("database error")
		return
	}
	if owned {
		c.sendError("already owned")
		return
	}
	paid, err := c.hub.db.SpendCrowns(c.accountID, item.Price)
	if err != nil {
		c.sendError("database error")
		return
	}
	if !paid {
		c.sendError("not enough crowns")
		return
	}
	if err := c.hub.db.AddItem(c.accountID, item.ID); err != nil {
		c.sendError("database error")
		return
	}
	if c.hub.analytics != nil {
		c.hub.analytics.Track(EvtPurchase, c.accountID, "", fmt.Sprintf(`{"item_id":%q,"price":%d}`, item.ID, item.Price))
	}
	stats, _ := c.hub.db.GetStats(c.accountID)
	crowns := 0
	if stats != nil {
		crowns = stats.Crowns
	}
	c.SendJSON(Envelope{T: MsgPurchaseOK, Data: PurchaseOKMsg{ItemID: item.ID, Crowns: crowns}})
}
