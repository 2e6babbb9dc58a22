package main

import "testing"

func newSurvivalRoom(t *testing.T, ids ...string) *Room {
	t.Helper()
	r := newTestRoom()
	for _, id := range ids {
		if _, reason := r.AddPlayer(id, id, "", false); reason != "" {
			t.Fatalf("add %s: %s", id, reason)
		}
	}
	r.setupRound(RoundSurvival)
	r.Status = StatusInRound
	return r
}

func TestSurvivalSpawnsHazardsAndGifts(t *testing.T) {
	r := newSurvivalRoom(t, "a")
	survivalRound{}.Update(r, 2.0, nowSeconds())

	if len(r.Hazards) == 0 {
		t.Error("two seconds should spawn hazards")
	}
	if len(r.Gifts) == 0 {
		t.Error("two seconds should spawn a gift")
	}
}

func TestSurvivalScoreTicksPerSecond(t *testing.T) {
	r := newSurvivalRoom(t, "a")
	p := r.Players["a"]
	survivalRound{}.Update(r, 0.5, nowSeconds())
	if p.Score != 0 {
		t.Errorf("score = %d after half a second, want 0", p.Score)
	}
	survivalRound{}.Update(r, 0.5, nowSeconds())
	if p.Score != 1 {
		t.Errorf("score = %d after a full second, want 1", p.Score)
	}
}

func TestSurvivalPlayerPinnedToRow(t *testing.T) {
	r := newSurvivalRoom(t, "a")
	p := r.Players["a"]
	p.SetInput(0, -1) // trying to walk up
	survivalRound{}.Update(r, 0.1, nowSeconds())
	if p.Y != r.Height-SurvivalRowInset {
		t.Errorf("player y = %v, want pinned to %v", p.Y, r.Height-SurvivalRowInset)
	}
}

func TestSurvivalStrafe(t *testing.T) {
	r := newSurvivalRoom(t, "a")
	p := r.Players["a"]
	startX := p.X
	p.SetInput(1, 0)
	survivalRound{}.Update(r, 0.1, nowSeconds())
	want := startX + SurvivalSpeed*0.1
	if p.X != want {
		t.Errorf("player x = %v, want %v", p.X, want)
	}
}

func TestSurvivalHazardKills(t *testing.T) {
	r := newSurvivalRoom(t, "a")
	p := r.Players["a"]
	r.Hazards = append(r.Hazards, &Hazard{ID: 99, X: p.X, Y: p.Y, VY: 100})

	survivalRound{}.Update(r, 0.001, nowSeconds())
	if p.Alive {
		t.Error("hazard touch should kill the player")
	}
	if len(r.Hazards) != 0 {
		t.Error("spent hazard should be removed")
	}
}

func TestSurvivalGiftCollects(t *testing.T) {
	r := newSurvivalRoom(t, "a")
	p := r.Players["a"]
	r.Gifts = append(r.Gifts, &Gift{ID: 99, X: p.X, Y: p.Y, VY: 100, Type: "candy"})

	survivalRound{}.Update(r, 0.001, nowSeconds())
	if p.Score != GiftScore {
		t.Errorf("score = %d, want %d", p.Score, GiftScore)
	}
	if len(r.Gifts) != 0 {
		t.Error("collected gift should be removed")
	}
}

func TestSurvivalDeadPlayersIgnored(t *testing.T) {
	r := newSurvivalRoom(t, "a")
	p := r.Players["a"]
	p.Alive = false
	r.Gifts = append(r.Gifts, &Gift{ID: 99, X: p.X, Y: p.Y, Type: "candy"})

	survivalRound{}.Update(r, 0.001, nowSeconds())
	if p.Score != 0 {
		t.Error("dead players should not collect or score")
	}
	if len(r.Gifts) != 1 {
		t.Error("gift should survive a dead player")
	}
}
