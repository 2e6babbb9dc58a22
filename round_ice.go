package main

import "math/rand"

const (
	IceScrollSpeed  = 240.0
	IceStrafeSpeed  = 180.0
	IceStrafeDead   = 0.2
	IceFlagScore    = 10
	IceFinishMargin = 6.0
)

// icePlayerY is the fixed screen row skiers ride on while the slope
// scrolls past underneath
func (r *Room) icePlayerY() float64 {
	return r.Height * 0.6
}

// iceRound: an endless downhill slope. Trees and yetis scroll up toward the
// fixed player row; steer left and right, collect flags, survive. A finish
// line of trees closes the run in the final seconds.
type iceRound struct{}

func (iceRound) Setup(r *Room) {
	r.SpawnTrees(r.scaledTreeCount(70, 40, 120), true)
	r.spawnIceFlags(r.scaledFlagCount())
	r.nextYetiAt = YetiSpawnDelay // the slope starts yeti-free
}

func (iceRound) Update(r *Room, dt, now float64) {
	rowY := r.icePlayerY()
	for _, p := range r.Players {
		if !p.Alive {
			continue
		}
		strafe := p.InputX
		if strafe > -IceStrafeDead && strafe < IceStrafeDead {
			strafe = 0
		}
		p.InputY = 1 // always skiing downhill
		p.X = Clamp(p.X+strafe*IceStrafeSpeed*dt, PlayerRadius, r.Width-PlayerRadius)
		p.Y = rowY

		p.ScoreAccum += dt
		for p.ScoreAccum >= 1 {
			p.ScoreAccum -= 1
			p.Score++
			p.RoundScore++
		}
	}

	r.scrollIceWorld(dt, now)
	r.updateYetis(dt, now)
	r.maybeSpawnFinishLine()
}

func (iceRound) OnAction(r *Room, p *Player, now float64) {}

// scrollIceWorld moves trees and flags up past the players. Anything that
// scrolls off the top respawns below the visible run.
func (r *Room) scrollIceWorld(dt, now float64) {
	scroll := IceScrollSpeed * dt

	for _, d := range r.Decorations {
		d.Y -= scroll
		if d.Y < -d.CollisionRadius() {
			d.X = 40 + rand.Float64()*(r.Width-80)
			d.Y = r.Height + 40 + rand.Float64()*200
			continue
		}
		for _, p := range r.Players {
			if p.Alive && CheckCollision(d.X, d.Y, d.CollisionRadius(), p.X, p.Y, PlayerRadius) {
				p.Alive = false
				p.LastHitAt = now
			}
		}
	}

	keep := r.Gifts[:0]
	for _, g := range r.Gifts {
		g.Y -= scroll
		if g.Y < -GiftRadius {
			g.X = 40 + rand.Float64()*(r.Width-80)
			g.Y = r.Height + 40 + rand.Float64()*300
			keep = append(keep, g)
			continue
		}
		taken := false
		for _, p := range r.Players {
			if p.Alive && CheckCollision(g.X, g.Y, GiftRadius, p.X, p.Y, PlayerRadius) {
				p.Score += IceFlagScore
				p.RoundScore += IceFlagScore
				taken = true
				break
			}
		}
		if !taken {
			keep = append(keep, g)
		}
	}
	r.Gifts = keep
}

// iceYetiCap limits concurrent yetis to one per three players, clamped 1..5
func (r *Room) iceYetiCap() int {
	n := (len(r.Players) + 2) / 3
	if n < 1 {
		n = 1
	}
	if n > 5 {
		n = 5
	}
	return n
}

// updateYetis scrolls yetis with the slope while they also chase the
// nearest skier. A touch ends the run. The first yeti arrives after an
// opening grace period, then one more every interval up to the cap.
func (r *Room) updateYetis(dt, now float64) {
	scroll := IceScrollSpeed * dt
	spawned := r.Monsters[:0]
	for _, m := range r.Monsters {
		m.Y -= scroll
		if target := r.nearestAlivePlayer(m.X, m.Y); target != nil {
			dx, dy := Normalize(target.X-m.X, target.Y-m.Y)
			m.X += dx * m.Speed * dt
			m.Y += dy * m.Speed * dt * 0.4 // lateral chase dominates, slope owns vertical
		}
		if m.Y < -m.Radius {
			continue
		}
		for _, p := range r.Players {
			if p.Alive && CheckCollision(m.X, m.Y, m.Radius, p.X, p.Y, PlayerRadius) {
				p.Alive = false
				p.LastHitAt = now
			}
		}
		spawned = append(spawned, m)
	}
	r.Monsters = spawned

	if r.iceFinishLineSpawned {
		return
	}
	if r.RoundElapsed >= r.nextYetiAt {
		r.nextYetiAt = r.RoundElapsed + YetiSpawnInterval
		if len(r.Monsters) < r.iceYetiCap() {
			r.SpawnYetis(1)
		}
	}
}

// maybeSpawnFinishLine drops a dense tree row across the slope when the
// round is nearly over, closing the run
func (r *Room) maybeSpawnFinishLine() {
	if r.iceFinishLineSpawned {
		return
	}
	if r.RoundEndsAt == 0 || nowSeconds() < r.RoundEndsAt-IceFinishMargin {
		return
	}
	r.iceFinishLineSpawned = true
	y := r.Height + 60.0
	for x := 30.0; x < r.Width; x += 52 {
		r.Decorations = append(r.Decorations, &Decoration{
			ID:   r.nextDecorationID,
			Type: "tree",
			X:    x,
			Y:    y,
			Size: "large",
		})
		r.nextDecorationID++
	}
}

// spawnIceFlags scatters slalom flags over and below the visible slope
func (r *Room) spawnIceFlags(count int) {
	for i := 0; i < count; i++ {
		r.Gifts = append(r.Gifts, &Gift{
			ID:   r.nextItemID,
			X:    40 + rand.Float64()*(r.Width-80),
			Y:    rand.Float64() * (r.Height + 400),
			Type: "flag",
		})
		r.nextItemID++
	}
}

func (r *Room) scaledFlagCount() int {
	factor := (r.Width * r.Height) / (BaseWidth * BaseHeight)
	n := int(18 * factor / 4)
	if n < 10 {
		n = 10
	}
	if n > 40 {
		n = 40
	}
	return n
}
