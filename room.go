package main

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

const (
	BaseWidth   = 960.0
	BaseHeight  = 540.0
	IceWidth    = 2400.0
	IceHeight   = 1600.0
	LargeWidth  = 6000.0
	LargeHeight = 3600.0
)

// RoomStatus is the lifecycle state of a room
type RoomStatus string

const (
	StatusLobby         RoomStatus = "lobby"
	StatusBetweenRounds RoomStatus = "between_rounds"
	StatusInRound       RoomStatus = "in_round"
	StatusFinished      RoomStatus = "finished"
)

// Broadcaster delivers messages to one connected client
type Broadcaster interface {
	SendJSON(msg interface{})
	SendBinary(data []byte)
}

// Room is one game session. Every read-modify-write of its state, including
// the tick update and every command handler, runs under mu; rooms are fully
// independent of each other.
type Room struct {
	mu sync.Mutex

	Code    string
	HostID  string
	Players map[string]*Player
	clients map[string]Broadcaster

	Status        RoomStatus
	RoundType     RoundType
	RoundOrder    []RoundType
	CurrentRound  int
	MaxRounds     int
	RoundDuration float64
	RoundEndsAt   float64
	timerRunning  bool

	Width  float64
	Height float64

	Projectiles        []*Projectile
	MonsterProjectiles []*MonsterProjectile
	Monsters           []*Monster
	Decorations        []*Decoration
	Hazards            []*Hazard
	Gifts              []*Gift
	Walls              []Wall
	LightToken         *Light
	TrailMap           map[TrailCell]*TrailTile

	LastUpdate   time.Time
	Tick         uint64
	RoundElapsed float64

	hazardAccum          float64
	giftAccum            float64
	nextYetiAt           float64
	bossSpawned          bool
	iceFinishLineSpawned bool
	gameStartedAt        float64

	nextProjectileID        int
	nextMonsterProjectileID int
	nextMonsterID           int
	nextItemID              int
	nextDecorationID        int

	db        *DB
	analytics *Analytics
}

// NewRoom creates an empty lobby room owned by the given host
func NewRoom(code, hostID string, db *DB, analytics *Analytics) *Room {
	return &Room{
		Code:                    code,
		HostID:                  hostID,
		Players:                 make(map[string]*Player),
		clients:                 make(map[string]Broadcaster),
		Status:                  StatusLobby,
		RoundType:               RoundLobby,
		Width:                   BaseWidth,
		Height:                  BaseHeight,
		TrailMap:                make(map[TrailCell]*TrailTile),
		LastUpdate:              time.Now(),
		nextProjectileID:        1,
		nextMonsterProjectileID: 1,
		nextMonsterID:           1,
		nextItemID:              1,
		nextDecorationID:        1,
		db:                      db,
		analytics:               analytics,
	}
}

// pickAvailableColor returns the first palette color no player holds,
// or "" if the palette is exhausted
func (r *Room) pickAvailableColor() string {
	used := make(map[string]bool, len(r.Players))
	for _, p := range r.Players {
		used[p.Color] = true
	}
	for _, c := range PlayerColors {
		if !used[c] {
			return c
		}
	}
	return ""
}

func (r *Room) colorTaken(color string) bool {
	for _, p := range r.Players {
		if p.Color == color {
			return true
		}
	}
	return false
}

func validColor(color string) bool {
	for _, c := range PlayerColors {
		if c == color {
			return true
		}
	}
	return false
}

// lobbySpawn deterministically staggers lobby spawn positions by join index
func (r *Room) lobbySpawn(index int) (float64, float64) {
	margin := 40.0
	x := margin + math.Mod(float64(index)*60, r.Width-margin*2)
	y := margin + math.Mod(float64(index)*90, r.Height-margin*2)
	return x, y
}

// randomSpawn staggers round spawn positions by player index
func (r *Room) randomSpawn(index int) (float64, float64) {
	margin := 50.0
	x := margin + math.Mod(float64(index)*70, r.Width-margin*2)
	y := margin + math.Mod(float64(index)*110, r.Height-margin*2)
	return x, y
}

// edgeSpawns places players on an arc near the arena rim, evenly spaced with
// a shared random offset
func (r *Room) edgeSpawns(players []*Player, startAngle, endAngle float64) {
	count := len(players)
	if count == 0 {
		return
	}
	margin := 80.0
	radius := math.Min(r.Width, r.Height)/2 - margin
	cx := r.Width / 2
	cy := r.Height / 2
	step := (endAngle - startAngle) / float64(count)
	offset := rand.Float64() * step
	for i, p := range players {
		angle := startAngle + offset + float64(i)*step
		p.X = cx + math.Cos(angle)*radius
		p.Y = cy + math.Sin(angle)*radius
	}
}

// AddPlayer joins a player to the room. Returns a rejection reason for the
// client, or "" on success.
func (r *Room) AddPlayer(id, name, color string, bot bool) (*Player, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.addPlayerLocked(id, name, color, bot)
}

func (r *Room) addPlayerLocked(id, name, color string, bot bool) (*Player, string) {
	if r.Status != StatusLobby {
		return nil, "Room already started"
	}
	if len(r.Players) >= MaxPlayersPerRoom {
		return nil, "Room is full"
	}
	chosen := ""
	if validColor(color) && !r.colorTaken(color) {
		chosen = color
	}
	if chosen == "" {
		chosen = r.pickAvailableColor()
	}
	if chosen == "" {
		return nil, "No colors available"
	}
	p := NewPlayer(id, name, chosen)
	p.Bot = bot
	p.X, p.Y = r.lobbySpawn(len(r.Players))
	r.Players[id] = p
	return p, ""
}

// RemovePlayer drops a player; the host role moves to any remaining member.
// Returns (wasMember, roomNowEmpty).
func (r *Room) RemovePlayer(id string) (bool, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.Players[id]; !ok {
		return false, false
	}
	delete(r.Players, id)
	delete(r.clients, id)
	if r.HostID == id {
		r.HostID = ""
		for pid, p := range r.Players {
			if !p.Bot {
				r.HostID = pid
				break
			}
		}
	}
	return true, r.humanCount() == 0
}

func (r *Room) humanCount() int {
	n := 0
	for _, p := range r.Players {
		if !p.Bot {
			n++
		}
	}
	return n
}

// SetClient attaches a broadcaster to a player
func (r *Room) SetClient(playerID string, client Broadcaster) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[playerID] = client
}

// HasPlayer reports room membership
func (r *Room) HasPlayer(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.Players[id]
	return ok
}

// HandleInput stores a movement intent; a short critical section per call
func (r *Room) HandleInput(playerID string, x, y float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.Players[playerID]; ok {
		p.SetInput(x, y)
	}
}

// SetReady flags lobby readiness
func (r *Room) SetReady(playerID string, ready bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.Players[playerID]; ok {
		p.Ready = ready
	}
}

// SetColor changes a player's color while in the lobby. Returns a rejection
// reason or "".
func (r *Room) SetColor(playerID, color string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Status != StatusLobby {
		return "Game already started"
	}
	if !validColor(color) {
		return "Pick a valid color"
	}
	if r.colorTaken(color) {
		return "Color already taken"
	}
	if p, ok := r.Players[playerID]; ok {
		p.Color = color
	}
	return ""
}

// HandleAction routes an action trigger to the current round rules. In the
// lobby and between rounds everyone may throw warm-up snowballs.
func (r *Room) HandleAction(playerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.Players[playerID]
	if !ok {
		return
	}
	r.performAction(p, nowSeconds())
}

// performAction applies an action trigger. Caller holds the room lock.
func (r *Room) performAction(p *Player, now float64) {
	switch r.Status {
	case StatusLobby, StatusBetweenRounds:
		r.throwSnowball(p, now)
	case StatusInRound:
		if h, ok := roundHandlers[r.RoundType]; ok {
			h.OnAction(r, p, now)
		}
	}
}

// throwSnowball spawns a projectile if the per-player cooldown allows it
func (r *Room) throwSnowball(p *Player, now float64) {
	if now-p.LastActionAt < ActionCooldown {
		return
	}
	p.LastActionAt = now
	r.SpawnProjectile(p)
}

// HandleCollect awards a tap-to-collect point, rate limited per player.
// Returns a rejection reason or "".
func (r *Room) HandleCollect(playerID string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Status != StatusInRound {
		return "Round not active"
	}
	p, ok := r.Players[playerID]
	if !ok {
		return "Player not found"
	}
	now := nowSeconds()
	if now-p.LastCollectAt < CollectWindow {
		return "Too fast"
	}
	p.LastCollectAt = now
	p.Score++
	p.RoundScore++
	return ""
}

// broadcastJSON sends an envelope to every attached client
func (r *Room) broadcastJSON(msg Envelope) {
	for _, c := range r.clients {
		c.SendJSON(msg)
	}
}

// broadcastBinary sends msgpack payloads (world snapshots) to every client
func (r *Room) broadcastBinary(data []byte) {
	for _, c := range r.clients {
		c.SendBinary(data)
	}
}

var botNames = []string{
	"Snowy", "Pixel", "Waffle", "Biscuit", "Comet", "Mochi", "Ziggy", "Pepper",
	"Noodle", "Tofu", "Clover", "Sprout", "Dizzy", "Pudding", "Maple", "Scout",
}

// AddBot drops a computer player into the room. Host only. Returns a
// rejection reason or "".
func (r *Room) AddBot(requesterID string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.HostID != requesterID {
		return "Only the host can add bots"
	}
	name := botNames[rand.Intn(len(botNames))]
	p, reason := r.addPlayerLocked("bot_"+GenerateID(4), name, "", true)
	if reason != "" {
		return reason
	}
	p.Ready = true
	r.broadcastJSON(Envelope{T: MsgRoomUpdate, Data: RoomPayload{Room: r.summaryLocked()}})
	return ""
}

// RemoveBot kicks one bot from the room. Host only. Returns a rejection
// reason or "".
func (r *Room) RemoveBot(requesterID string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.HostID != requesterID {
		return "Only the host can remove bots"
	}
	for id, p := range r.Players {
		if p.Bot {
			delete(r.Players, id)
			r.broadcastJSON(Envelope{T: MsgRoomUpdate, Data: RoomPayload{Room: r.summaryLocked()}})
			return ""
		}
	}
	return "No bots to remove"
}

// announce emits a transient text event to the whole room
func (r *Room) announce(text string) {
	r.broadcastJSON(Envelope{T: MsgAnnouncement, Data: AnnouncementMsg{Message: text}})
}
