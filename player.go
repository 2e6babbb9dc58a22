package main

const (
	PlayerRadius   = 14.0
	PlayerSpeed    = 180.0 // pixels/s
	SurvivalSpeed  = 160.0 // survival lateral strafe
	ActionCooldown = 0.25  // seconds between snowball throws
	CollectWindow  = 0.2   // min seconds between collect taps

	MaxPlayersPerRoom = 16
	maxNameLen        = 16
)

// PlayerColors is the color palette; one color per player per room
var PlayerColors = []string{
	"red", "orange", "yellow", "lime", "green", "teal", "cyan", "blue",
	"indigo", "purple", "magenta", "pink", "brown", "gray", "black", "white",
}

// Player is one room member, human or bot. Input fields are written by the
// transport layer (or the bot controller) and consumed by the tick update.
type Player struct {
	ID    string
	Name  string
	Color string
	Bot   bool

	X, Y             float64
	InputX, InputY   float64
	FacingX, FacingY float64

	Alive      bool
	Ready      bool
	Team       int
	Score      int
	RoundScore int

	// Round-specific state
	Energy     float64 // maze: seconds of life left
	RingsLeft  int     // snowball: hits remaining
	HasLight   bool    // light: currently holding the token
	ScoreAccum float64 // fractional score carried between ticks

	LastActionAt  float64
	LastCollectAt float64
	LastHitAt     float64

	AccountID int64 // 0 = guest / unauthenticated

	// Bot decision state
	BotIdleUntil    float64
	BotWanderUntil  float64
	BotWanderX      float64
	BotWanderY      float64
	BotNextActionAt float64
}

// NewPlayer creates a player with default facing and no position yet;
// the room assigns spawn coordinates
func NewPlayer(id, name, color string) *Player {
	return &Player{
		ID:      id,
		Name:    name,
		Color:   color,
		Alive:   true,
		FacingX: 1,
	}
}

// SetInput stores a clamped movement intent and derives facing from it
func (p *Player) SetInput(x, y float64) {
	p.InputX = Clamp(x, -1, 1)
	p.InputY = Clamp(y, -1, 1)
	if p.Moving() {
		p.FacingX = p.InputX
		p.FacingY = p.InputY
	}
}

// Moving reports whether the current intent is outside the dead zone
func (p *Player) Moving() bool {
	return p.InputX > 0.1 || p.InputX < -0.1 || p.InputY > 0.1 || p.InputY < -0.1
}

// ResetForRound clears all per-round state. Rings are only stocked for
// snowball rounds; maze energy is set by the maze setup.
func (p *Player) ResetForRound(roundType RoundType) {
	p.Alive = true
	p.HasLight = false
	p.RoundScore = 0
	p.ScoreAccum = 0
	p.Energy = 0
	if roundType == RoundSnowball {
		p.RingsLeft = SnowballRings
	} else {
		p.RingsLeft = 0
	}
	p.InputX = 0
	p.InputY = 0
	p.FacingX = 1
	p.FacingY = 0
	p.LastActionAt = 0
	p.LastHitAt = 0
	p.BotIdleUntil = 0
	p.BotWanderUntil = 0
	p.BotNextActionAt = 0
}
