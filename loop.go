package main

import (
	"context"
	"log"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	TickInterval = 50 * time.Millisecond
	MaxTickDelta = 0.2 // seconds, clamp after stalls
)

// RunLoop drives every live room at the fixed tick rate until the context
// is cancelled
func (rm *RoomManager) RunLoop(ctx context.Context) {
	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := nowSeconds()
			for _, room := range rm.Rooms() {
				room.advance(now)
			}
		}
	}
}

// advance runs one simulation step for the room and broadcasts the
// resulting world snapshot
func (r *Room) advance(now float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	last := float64(r.LastUpdate.UnixNano()) / 1e9
	dt := now - last
	r.LastUpdate = time.Now()
	if dt <= 0 {
		return
	}
	if dt > MaxTickDelta {
		dt = MaxTickDelta
	}
	r.Tick++

	r.updateBots(now)

	switch r.Status {
	case StatusInRound:
		r.RoundElapsed += dt
		if h, ok := roundHandlers[r.RoundType]; ok {
			h.Update(r, dt, now)
		}
		if r.Status == StatusInRound && r.roundShouldEnd() {
			r.endRoundLocked()
		}
	default:
		// lobby, between rounds and finished all allow free roaming
		for _, p := range r.Players {
			r.movePlayer(p, PlayerSpeed, dt)
		}
		r.UpdateProjectiles(dt)
		r.RemoveProjectilesOnPlayerHit()
	}

	data, err := msgpack.Marshal(r.snapshotLocked())
	if err != nil {
		log.Printf("room %s: snapshot encode: %v", r.Code, err)
		return
	}
	r.broadcastBinary(data)
}
