package main

import (
	"math"
	"math/rand"
	"time"
)

// RoundType tags the minigame rule set in play
type RoundType string

const (
	RoundLobby    RoundType = "lobby"
	RoundSurvival RoundType = "survival"
	RoundSnowball RoundType = "snowball"
	RoundIce      RoundType = "ice"
	RoundMaze     RoundType = "maze"
	RoundLight    RoundType = "light"
	RoundTrails   RoundType = "trails"
	RoundBonus    RoundType = "bonus"
)

// RoundDurations in seconds per round type
var RoundDurations = map[RoundType]float64{
	RoundSurvival: 45,
	RoundSnowball: 120,
	RoundLight:    120,
	RoundIce:      45,
	RoundMaze:     75,
	RoundTrails:   90,
	RoundBonus:    10,
}

// BonusChance is the probability that a game ends with the bonus filler round
const BonusChance = 0.4

// coreRounds are the playable types always present in a game, shuffled per game
var coreRounds = []RoundType{
	RoundSurvival, RoundSnowball, RoundLight, RoundIce, RoundMaze, RoundTrails,
}

// roundHandler is the per-round-type rule set
type roundHandler interface {
	Setup(r *Room)
	Update(r *Room, dt, now float64)
	OnAction(r *Room, p *Player, now float64)
}

var roundHandlers = map[RoundType]roundHandler{
	RoundSurvival: survivalRound{},
	RoundSnowball: snowballRound{},
	RoundIce:      iceRound{},
	RoundMaze:     mazeRound{},
	RoundLight:    lightRound{},
	RoundTrails:   trailsRound{},
	RoundBonus:    bonusRound{},
}

// newRoundOrder shuffles the core rounds and sometimes appends the bonus filler
func newRoundOrder() []RoundType {
	order := make([]RoundType, len(coreRounds))
	copy(order, coreRounds)
	rand.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	if rand.Float64() < BonusChance {
		order = append(order, RoundBonus)
	}
	return order
}

// StartGame resets scores and regenerates the round order. Host only.
// Returns a rejection reason or "".
func (r *Room) StartGame(playerID string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.HostID != playerID {
		return "Only the host can start"
	}
	if r.Status == StatusInRound || r.timerRunning {
		return "Round already running"
	}
	for _, p := range r.Players {
		p.Score = 0
		p.RoundScore = 0
		p.Ready = false
		p.Alive = true
		p.ScoreAccum = 0
		p.HasLight = false
		p.Energy = 0
	}
	r.Status = StatusBetweenRounds
	r.CurrentRound = 0
	r.RoundType = RoundLobby
	r.RoundOrder = newRoundOrder()
	r.MaxRounds = len(r.RoundOrder)
	r.Width = BaseWidth
	r.Height = BaseHeight
	r.RoundEndsAt = 0
	r.timerRunning = false
	r.gameStartedAt = nowSeconds()

	if r.analytics != nil {
		r.analytics.Track(EvtGameStart, 0, r.Code, "")
	}
	r.broadcastJSON(Envelope{T: MsgRoomUpdate, Data: RoomPayload{Room: r.summaryLocked()}})
	return ""
}

// StartRound begins the next round in the order. Host only. Returns a
// rejection reason or "".
func (r *Room) StartRound(playerID string, rm *RoomManager) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.HostID != playerID {
		return "Only the host can start rounds"
	}
	if r.Status != StatusBetweenRounds {
		return "Round cannot start now"
	}
	if r.CurrentRound >= r.MaxRounds {
		return "Game already finished"
	}
	if r.timerRunning {
		return "Round already running"
	}
	r.CurrentRound++
	if r.CurrentRound > len(r.RoundOrder) {
		return "Round cannot start now"
	}
	roundType := r.RoundOrder[r.CurrentRound-1]
	duration, ok := RoundDurations[roundType]
	if !ok {
		duration = 45
	}
	r.RoundDuration = duration
	r.setupRound(roundType)
	r.Status = StatusInRound
	r.RoundEndsAt = nowSeconds() + duration
	r.timerRunning = true

	r.broadcastJSON(Envelope{T: MsgRoundStarted, Data: RoomPayload{Room: r.summaryLocked()}})
	go runRoundTimer(rm, r.Code, r.CurrentRound)
	return ""
}

// setupRound initializes world dimensions, entities and player state for a
// round type. Caller holds the room lock.
func (r *Room) setupRound(roundType RoundType) {
	r.Projectiles = nil
	r.MonsterProjectiles = nil
	r.Monsters = nil
	r.Decorations = nil
	r.Hazards = nil
	r.Gifts = nil
	r.Walls = nil
	r.LightToken = nil
	r.TrailMap = make(map[TrailCell]*TrailTile)
	r.hazardAccum = 0
	r.giftAccum = 0
	r.nextYetiAt = 0
	r.RoundElapsed = 0
	r.bossSpawned = false
	r.iceFinishLineSpawned = false
	r.RoundType = roundType

	switch roundType {
	case RoundIce:
		r.Width = IceWidth
		r.Height = IceHeight
	case RoundSnowball, RoundMaze, RoundLight:
		r.Width = LargeWidth
		r.Height = LargeHeight
	default:
		r.Width = BaseWidth
		r.Height = BaseHeight
	}

	players := r.playerList()

	if roundType == RoundSnowball {
		split := int(math.Ceil(float64(len(players)) / 2))
		if split < 1 {
			split = 1
		}
		for i, p := range players {
			if i < split {
				p.Team = 0
			} else {
				p.Team = 1
			}
		}
	} else {
		for _, p := range players {
			p.Team = 0
		}
	}

	for i, p := range players {
		p.ResetForRound(roundType)
		switch roundType {
		case RoundSurvival:
			spacing := r.Width / float64(len(players)+1)
			p.X = spacing * float64(i+1)
			p.Y = r.Height - 50
		default:
			p.X, p.Y = r.randomSpawn(i)
		}
		if roundType == RoundIce {
			p.Y = r.icePlayerY()
		}
		if roundType == RoundMaze {
			p.Energy = MazeStartEnergy
		}
	}

	if h, ok := roundHandlers[roundType]; ok {
		h.Setup(r)
	}
}

// playerList returns players in a stable join-independent order (map order
// is fine for spawn staggering; only the count matters)
func (r *Room) playerList() []*Player {
	list := make([]*Player, 0, len(r.Players))
	for _, p := range r.Players {
		list = append(list, p)
	}
	return list
}

// roundShouldEnd checks the per-tick end conditions: everyone dead, or in
// snowball the survivors all share one team
func (r *Room) roundShouldEnd() bool {
	if len(r.Players) == 0 {
		return false
	}
	anyAlive := false
	teams := make(map[int]bool)
	for _, p := range r.Players {
		if p.Alive {
			anyAlive = true
			teams[p.Team] = true
		}
	}
	if !anyAlive {
		return true
	}
	if r.RoundType == RoundSnowball && len(r.Players) > 1 && len(teams) == 1 {
		return true
	}
	return false
}

// endRoundLocked finishes the current round exactly once: the caller must
// hold the lock and have verified Status == StatusInRound. Broadcasts the
// transition and, at game over, hands results to the persistence layer.
func (r *Room) endRoundLocked() {
	if r.RoundType == RoundLight && r.LightToken != nil {
		if holder, ok := r.Players[r.LightToken.Holder]; ok {
			holder.Score += LightEndBonus
			holder.RoundScore += LightEndBonus
		}
	}
	r.RoundEndsAt = 0
	r.timerRunning = false

	finished := r.CurrentRound >= r.MaxRounds
	if finished {
		r.Status = StatusFinished
	} else {
		r.Status = StatusBetweenRounds
	}

	if r.analytics != nil {
		r.analytics.Track(EvtRoundEnd, 0, r.Code, string(r.RoundType))
	}

	payload := RoomPayload{Room: r.summaryLocked()}
	if finished {
		r.broadcastJSON(Envelope{T: MsgGameOver, Data: payload})
		r.persistGameOverLocked()
	} else {
		r.broadcastJSON(Envelope{T: MsgRoundEnded, Data: payload})
	}
}

// runRoundTimer polls until the recorded round deadline passes, then ends
// the round. A stale timer — the round already ended or a newer one started —
// detects the identity mismatch under the lock and becomes a no-op.
func runRoundTimer(rm *RoomManager, code string, roundNumber int) {
	for {
		room := rm.Get(code)
		if room == nil {
			return
		}
		room.mu.Lock()
		if room.Status != StatusInRound || room.CurrentRound != roundNumber {
			room.timerRunning = false
			room.mu.Unlock()
			return
		}
		endAt := room.RoundEndsAt
		room.mu.Unlock()

		if nowSeconds() >= endAt {
			break
		}
		time.Sleep(200 * time.Millisecond)
	}

	room := rm.Get(code)
	if room == nil {
		return
	}
	room.mu.Lock()
	defer room.mu.Unlock()
	if room.Status != StatusInRound || room.CurrentRound != roundNumber {
		room.timerRunning = false
		return
	}
	room.endRoundLocked()
}
