package main

import "encoding/json"

// Client -> Server message types
const (
	MsgCreateRoom   = "create_room"
	MsgJoinRoom     = "join_room"
	MsgLeaveRoom    = "leave_room"
	MsgSetReady     = "set_ready"
	MsgSetColor     = "set_color"
	MsgInput        = "input"
	MsgAction       = "action"
	MsgCollect      = "collect"
	MsgStartGame    = "start_game"
	MsgStartRound   = "start_round"
	MsgAddBot       = "add_bot"
	MsgRemoveBot    = "remove_bot"
	MsgRequestState = "request_state"
	MsgRegister     = "register"
	MsgLogin        = "login"
	MsgAuth         = "auth"
	MsgProfile      = "profile"
	MsgStoreList    = "store_list"
	MsgStoreBuy     = "store_buy"
)

// Server -> Client message types
const (
	MsgRoomJoined   = "room_joined"
	MsgRoomUpdate   = "room_update"
	MsgRoundStarted = "round_started"
	MsgWorldState   = "world_state" // msgpack binary, not an envelope
	MsgRoundEnded   = "round_ended"
	MsgGameOver     = "game_over"
	MsgAnnouncement = "announcement"
	MsgServerError  = "server_error"
	MsgAuthOK       = "auth_ok"
	MsgProfileData  = "profile_data"
	MsgStoreItems   = "store_items"
	MsgPurchaseOK   = "purchase_ok"
	MsgAchievement  = "achievement"
)

// Envelope wraps all outgoing JSON messages with a type field
type Envelope struct {
	T    string      `json:"t"`
	Data interface{} `json:"d,omitempty"`
}

// InEnvelope is used for incoming messages — json.RawMessage avoids double-unmarshal
type InEnvelope struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d,omitempty"`
}

// CreateRoomMsg opens a new room
type CreateRoomMsg struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// JoinRoomMsg joins an existing room by code
type JoinRoomMsg struct {
	Room  string `json:"room"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// InputMsg carries a movement intent, sent at the client's input rate
type InputMsg struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SetReadyMsg toggles lobby readiness
type SetReadyMsg struct {
	Ready bool `json:"ready"`
}

// SetColorMsg changes a player's color
type SetColorMsg struct {
	Color string `json:"color"`
}

// RegisterMsg creates an account
type RegisterMsg struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginMsg authenticates an account
type LoginMsg struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthMsg resumes a session from a stored token
type AuthMsg struct {
	Token string `json:"token"`
}

// StoreBuyMsg purchases a cosmetic item
type StoreBuyMsg struct {
	ItemID string `json:"itemId"`
}

// LobbyPlayer is the room-summary view of a player
type LobbyPlayer struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Score      int     `json:"score"`
	RoundScore int     `json:"roundScore"`
	Ready      bool    `json:"ready"`
	Team       int     `json:"team"`
	Alive      bool    `json:"alive"`
	RingsLeft  int     `json:"ringsLeft"`
	Bot        bool    `json:"bot"`
}

// RoomSummary is the lobby-level view of a room
type RoomSummary struct {
	Code         string        `json:"code"`
	Status       string        `json:"status"`
	CurrentRound int           `json:"currentRound"`
	HostID       string        `json:"hostId"`
	Players      []LobbyPlayer `json:"players"`
	RoundEndsAt  float64       `json:"roundEndsAt"`
	MaxRounds    int           `json:"maxRounds"`
	RoundType    string        `json:"roundType"`
	Width        float64       `json:"width"`
	Height       float64       `json:"height"`
}

// RoomPayload wraps a summary for room_update/round_started/round_ended/game_over
type RoomPayload struct {
	Room RoomSummary `json:"room"`
}

// RoomJoinedMsg confirms a create/join to the caller
type RoomJoinedMsg struct {
	Room  RoomSummary `json:"room"`
	YouID string      `json:"youId"`
}

// WorldPlayer is the per-tick snapshot view of a player
type WorldPlayer struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Alive      bool    `json:"alive"`
	Team       int     `json:"team"`
	HasLight   bool    `json:"hasLight"`
	FX         float64 `json:"fx"`
	FY         float64 `json:"fy"`
	Moving     bool    `json:"moving"`
	Score      int     `json:"score"`
	RoundScore int     `json:"roundScore"`
	RingsLeft  int     `json:"ringsLeft"`
	Energy     float64 `json:"energy"`
	Bot        bool    `json:"bot"`
}

// RoomBrief is the room header repeated in every world snapshot
type RoomBrief struct {
	Code         string  `json:"code"`
	Status       string  `json:"status"`
	CurrentRound int     `json:"currentRound"`
	RoundType    string  `json:"roundType"`
	RoundEndsAt  float64 `json:"roundEndsAt"`
	MaxRounds    int     `json:"maxRounds"`
	HostID       string  `json:"hostId"`
}

// TrailState is one claimed grid tile
type TrailState struct {
	CX    int    `json:"cx"`
	CY    int    `json:"cy"`
	Owner string `json:"owner"`
	Color string `json:"color"`
}

// WorldData carries every entity collection for rendering
type WorldData struct {
	Width              float64               `json:"width"`
	Height             float64               `json:"height"`
	Players            []WorldPlayer         `json:"players"`
	Projectiles        []*Projectile         `json:"projectiles"`
	MonsterProjectiles []*MonsterProjectile  `json:"monsterProjectiles"`
	Monsters           []*Monster            `json:"monsters"`
	Decorations        []*Decoration         `json:"decorations"`
	Hazards            []*Hazard             `json:"hazards"`
	Gifts              []*Gift               `json:"gifts"`
	Walls              []Wall                `json:"walls"`
	Light              *Light                `json:"light,omitempty"`
	Trails             []TrailState          `json:"trails,omitempty"`
}

// WorldSnapshot is the full per-tick state broadcast (msgpack-encoded)
type WorldSnapshot struct {
	Room  RoomBrief `json:"room"`
	World WorldData `json:"world"`
	Tick  uint64    `json:"tick"`
}

// AnnouncementMsg is a transient text event (boss spawned, etc.)
type AnnouncementMsg struct {
	Message string `json:"message"`
}

// ErrorMsg reports a rejected command with a reason
type ErrorMsg struct {
	Msg string `json:"msg"`
}

// AuthOKMsg confirms register/login/token auth
type AuthOKMsg struct {
	Token     string `json:"token"`
	Username  string `json:"username"`
	AccountID int64  `json:"accountId"`
}

// ProfileDataMsg returns persistent account stats
type ProfileDataMsg struct {
	Username   string   `json:"username"`
	Games      int      `json:"games"`
	Wins       int      `json:"wins"`
	BestScore  int      `json:"bestScore"`
	TotalScore int      `json:"totalScore"`
	Playtime   float64  `json:"playtime"`
	Crowns     int      `json:"crowns"`
	Items      []string `json:"items"`
}

// PurchaseOKMsg confirms a store purchase
type PurchaseOKMsg struct {
	ItemID string `json:"itemId"`
	Crowns int    `json:"crowns"`
}

// AchievementMsg notifies a newly unlocked achievement
type AchievementMsg struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
