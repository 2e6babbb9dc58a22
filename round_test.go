package main

import (
	"testing"
	"time"
)

func TestNewRoundOrderComposition(t *testing.T) {
	for i := 0; i < 50; i++ {
		order := newRoundOrder()
		if len(order) != len(coreRounds) && len(order) != len(coreRounds)+1 {
			t.Fatalf("order length = %d", len(order))
		}
		seen := make(map[RoundType]int)
		for _, rt := range order {
			seen[rt]++
		}
		for _, rt := range coreRounds {
			if seen[rt] != 1 {
				t.Fatalf("round %s appears %d times", rt, seen[rt])
			}
		}
		if len(order) == len(coreRounds)+1 && order[len(order)-1] != RoundBonus {
			t.Fatal("extra round must be the bonus round at the end")
		}
	}
}

func TestStartGameHostOnly(t *testing.T) {
	rm := NewRoomManager(nil, nil)
	room, _ := rm.CreateRoom("p1", "Alice", "")
	rm.JoinRoom(room.Code, "p2", "Bob", "")

	if reason := room.StartGame("p2"); reason != "Only the host can start" {
		t.Errorf("reason = %q, want host-only rejection", reason)
	}
	if reason := room.StartGame("p1"); reason != "" {
		t.Fatalf("unexpected rejection: %s", reason)
	}
	if room.Status != StatusBetweenRounds {
		t.Errorf("status = %s, want between_rounds", room.Status)
	}
	if room.MaxRounds != len(room.RoundOrder) {
		t.Error("max rounds should match the generated order")
	}
}

func TestStartGameResetsScores(t *testing.T) {
	rm := NewRoomManager(nil, nil)
	room, p := rm.CreateRoom("p1", "Alice", "")
	p.Score = 50
	p.Ready = true
	p.Alive = false

	room.StartGame("p1")
	if p.Score != 0 || p.Ready || !p.Alive {
		t.Error("start should reset score, readiness and liveness")
	}
}

func TestStartRoundLifecycle(t *testing.T) {
	rm := NewRoomManager(nil, nil)
	room, _ := rm.CreateRoom("p1", "Alice", "")
	rm.JoinRoom(room.Code, "p2", "Bob", "")

	if reason := room.StartRound("p1", rm); reason != "Round cannot start now" {
		t.Errorf("reason = %q, round should not start before the game", reason)
	}

	room.StartGame("p1")
	room.mu.Lock()
	room.RoundOrder = []RoundType{RoundSurvival, RoundTrails}
	room.MaxRounds = 2
	room.mu.Unlock()

	if reason := room.StartRound("p2", rm); reason != "Only the host can start rounds" {
		t.Errorf("reason = %q, want host-only rejection", reason)
	}
	if reason := room.StartRound("p1", rm); reason != "" {
		t.Fatalf("unexpected rejection: %s", reason)
	}
	if room.Status != StatusInRound || room.RoundType != RoundSurvival {
		t.Errorf("status = %s type = %s, want in_round survival", room.Status, room.RoundType)
	}
	if room.CurrentRound != 1 {
		t.Errorf("current round = %d, want 1", room.CurrentRound)
	}
	if room.RoundEndsAt <= nowSeconds() {
		t.Error("round deadline should be in the future")
	}

	if reason := room.StartRound("p1", rm); reason != "Round cannot start now" {
		t.Errorf("reason = %q, round already in progress", reason)
	}
}

func TestStartRoundGameFinished(t *testing.T) {
	rm := NewRoomManager(nil, nil)
	room, _ := rm.CreateRoom("p1", "Alice", "")
	room.StartGame("p1")
	room.mu.Lock()
	room.RoundOrder = []RoundType{RoundBonus}
	room.MaxRounds = 1
	room.CurrentRound = 1
	room.mu.Unlock()

	if reason := room.StartRound("p1", rm); reason != "Game already finished" {
		t.Errorf("reason = %q, want %q", reason, "Game already finished")
	}
}

func TestSetupRoundDimensions(t *testing.T) {
	tests := []struct {
		rt            RoundType
		width, height float64
	}{
		{RoundSurvival, BaseWidth, BaseHeight},
		{RoundIce, IceWidth, IceHeight},
		{RoundSnowball, LargeWidth, LargeHeight},
		{RoundMaze, LargeWidth, LargeHeight},
		{RoundLight, LargeWidth, LargeHeight},
		{RoundTrails, BaseWidth, BaseHeight},
		{RoundBonus, BaseWidth, BaseHeight},
	}
	for _, tc := range tests {
		r := newTestRoom()
		r.AddPlayer("host", "Alice", "", false)
		r.AddPlayer("p2", "Bob", "", false)
		r.setupRound(tc.rt)
		if r.Width != tc.width || r.Height != tc.height {
			t.Errorf("%s world = %vx%v, want %vx%v", tc.rt, r.Width, r.Height, tc.width, tc.height)
		}
	}
}

func TestSetupRoundSnowballTeams(t *testing.T) {
	r := newTestRoom()
	for i := 0; i < 5; i++ {
		r.AddPlayer(GenerateID(4), "P", "", false)
	}
	r.setupRound(RoundSnowball)

	counts := map[int]int{}
	for _, p := range r.Players {
		counts[p.Team]++
		if p.RingsLeft != SnowballRings {
			t.Errorf("rings = %d, want %d", p.RingsLeft, SnowballRings)
		}
	}
	if counts[0] != 3 || counts[1] != 2 {
		t.Errorf("team split = %v, want 3/2", counts)
	}
}

func TestSetupRoundClearsEntities(t *testing.T) {
	r := newTestRoom()
	r.AddPlayer("host", "Alice", "", false)
	r.Hazards = append(r.Hazards, &Hazard{ID: 1})
	r.TrailMap[TrailCell{1, 1}] = &TrailTile{Owner: "x"}
	r.setupRound(RoundBonus)
	if len(r.Hazards) != 0 || len(r.TrailMap) != 0 {
		t.Error("entities from the previous round should be cleared")
	}
}

func TestSetupRoundSurvivalRow(t *testing.T) {
	r := newTestRoom()
	r.AddPlayer("host", "Alice", "", false)
	r.AddPlayer("p2", "Bob", "", false)
	r.setupRound(RoundSurvival)
	for _, p := range r.Players {
		if p.Y != r.Height-50 {
			t.Errorf("player y = %v, want bottom row %v", p.Y, r.Height-50)
		}
	}
}

func TestRoundShouldEnd(t *testing.T) {
	r := newTestRoom()
	a, _ := r.AddPlayer("a", "A", "", false)
	b, _ := r.AddPlayer("b", "B", "", false)
	r.RoundType = RoundSurvival

	if r.roundShouldEnd() {
		t.Error("round with living players should continue")
	}
	a.Alive = false
	b.Alive = false
	if !r.roundShouldEnd() {
		t.Error("round with everyone dead should end")
	}
}

func TestRoundShouldEndSnowballLastTeam(t *testing.T) {
	r := newTestRoom()
	a, _ := r.AddPlayer("a", "A", "", false)
	b, _ := r.AddPlayer("b", "B", "", false)
	r.RoundType = RoundSnowball
	a.Team = 0
	b.Team = 1

	if r.roundShouldEnd() {
		t.Error("two living teams should continue")
	}
	b.Alive = false
	if !r.roundShouldEnd() {
		t.Error("one surviving team should end the round")
	}
}

func TestEndRoundTransitions(t *testing.T) {
	r := newTestRoom()
	r.AddPlayer("host", "Alice", "", false)
	r.Status = StatusInRound
	r.RoundType = RoundSurvival
	r.CurrentRound = 1
	r.MaxRounds = 2
	r.timerRunning = true

	r.mu.Lock()
	r.endRoundLocked()
	r.mu.Unlock()
	if r.Status != StatusBetweenRounds {
		t.Errorf("status = %s, want between_rounds", r.Status)
	}
	if r.timerRunning {
		t.Error("timer flag should clear")
	}

	r.Status = StatusInRound
	r.CurrentRound = 2
	r.mu.Lock()
	r.endRoundLocked()
	r.mu.Unlock()
	if r.Status != StatusFinished {
		t.Errorf("status = %s after last round, want finished", r.Status)
	}
}

func TestEndRoundLightHolderBonus(t *testing.T) {
	r := newTestRoom()
	p, _ := r.AddPlayer("host", "Alice", "", false)
	r.Status = StatusInRound
	r.RoundType = RoundLight
	r.CurrentRound = 1
	r.MaxRounds = 2
	r.LightToken = &Light{Holder: "host"}

	r.mu.Lock()
	r.endRoundLocked()
	r.mu.Unlock()
	if p.Score != LightEndBonus {
		t.Errorf("holder score = %d, want %d", p.Score, LightEndBonus)
	}
}

func TestRunRoundTimerEndsRound(t *testing.T) {
	rm := NewRoomManager(nil, nil)
	room, _ := rm.CreateRoom("p1", "Alice", "")
	room.mu.Lock()
	room.Status = StatusInRound
	room.RoundType = RoundSurvival
	room.CurrentRound = 1
	room.MaxRounds = 2
	room.RoundEndsAt = nowSeconds() - 1
	room.timerRunning = true
	room.mu.Unlock()

	runRoundTimer(rm, room.Code, 1)

	room.mu.Lock()
	defer room.mu.Unlock()
	if room.Status != StatusBetweenRounds {
		t.Errorf("status = %s, want between_rounds", room.Status)
	}
}

func TestRunRoundTimerStaleNoOp(t *testing.T) {
	rm := NewRoomManager(nil, nil)
	room, _ := rm.CreateRoom("p1", "Alice", "")
	room.mu.Lock()
	room.Status = StatusInRound
	room.RoundType = RoundSurvival
	room.CurrentRound = 2
	room.RoundEndsAt = nowSeconds() - 1
	room.mu.Unlock()

	// Timer for round 1 while round 2 is running: identity mismatch
	runRoundTimer(rm, room.Code, 1)

	room.mu.Lock()
	defer room.mu.Unlock()
	if room.Status != StatusInRound {
		t.Error("stale timer must not end the current round")
	}
}

func TestAdvanceClampsDelta(t *testing.T) {
	r := newTestRoom()
	p, _ := r.AddPlayer("host", "Alice", "", false)
	p.X, p.Y = 300, 300
	p.SetInput(1, 0)
	r.LastUpdate = time.Now().Add(-time.Hour)

	r.advance(nowSeconds())

	moved := p.X - 300
	if moved <= 0 || moved > PlayerSpeed*MaxTickDelta+0.001 {
		t.Errorf("moved %v px, clamp allows at most %v", moved, PlayerSpeed*MaxTickDelta)
	}
	if r.Tick != 1 {
		t.Errorf("tick = %d, want 1", r.Tick)
	}
}

func TestAdvanceBroadcastsSnapshot(t *testing.T) {
	r := newTestRoom()
	r.AddPlayer("host", "Alice", "", false)
	m := &mockBroadcaster{}
	r.SetClient("host", m)
	r.LastUpdate = time.Now().Add(-100 * time.Millisecond)

	r.advance(nowSeconds())

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.binary) != 1 {
		t.Fatalf("binary messages = %d, want 1", len(m.binary))
	}
}

func TestAdvanceEndsRoundWhenAllDead(t *testing.T) {
	r := newTestRoom()
	p, _ := r.AddPlayer("host", "Alice", "", false)
	r.Status = StatusInRound
	r.RoundType = RoundTrails
	r.CurrentRound = 1
	r.MaxRounds = 2
	p.Alive = false
	r.LastUpdate = time.Now().Add(-50 * time.Millisecond)

	r.advance(nowSeconds())
	if r.Status != StatusBetweenRounds {
		t.Errorf("status = %s, want between_rounds", r.Status)
	}
}
