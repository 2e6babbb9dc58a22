package main

import (
	"math"
	"math/rand"
)

const (
	BotIdleChance     = 0.004
	BotIdleMin        = 0.4
	BotIdleMax        = 1.2
	BotWanderMin      = 0.8
	BotWanderMax      = 2.2
	BotAimNoise       = 0.22 // radians
	BotHesitateChance = 0.25
	BotActionMin      = 0.4
	BotActionMax      = 1.2
)

// updateBots drives every bot in the room for one tick. Caller holds the
// room lock.
func (r *Room) updateBots(now float64) {
	for _, p := range r.Players {
		if !p.Bot {
			continue
		}
		if now < p.BotIdleUntil {
			p.SetInput(0, 0)
			continue
		}
		if rand.Float64() < BotIdleChance {
			p.BotIdleUntil = now + BotIdleMin + rand.Float64()*(BotIdleMax-BotIdleMin)
			p.SetInput(0, 0)
			continue
		}

		if r.Status != StatusInRound {
			r.botWander(p, now)
			continue
		}
		if !p.Alive {
			p.SetInput(0, 0)
			continue
		}

		switch r.RoundType {
		case RoundSurvival:
			r.botSurvival(p)
		case RoundSnowball:
			r.botSnowball(p, now)
		case RoundIce:
			r.botIce(p)
		case RoundMaze:
			r.botMaze(p, now)
		case RoundLight:
			r.botLight(p)
		case RoundTrails:
			r.botWander(p, now)
		case RoundBonus:
			r.botMaybeAct(p, now, p.FacingX, p.FacingY)
		default:
			r.botWander(p, now)
		}
	}
}

// botWander drifts toward a periodically re-rolled point in the arena
func (r *Room) botWander(p *Player, now float64) {
	if now >= p.BotWanderUntil || Distance(p.X, p.Y, p.BotWanderX, p.BotWanderY) < 30 {
		p.BotWanderX = 60 + rand.Float64()*(r.Width-120)
		p.BotWanderY = 60 + rand.Float64()*(r.Height-120)
		p.BotWanderUntil = now + BotWanderMin + rand.Float64()*(BotWanderMax-BotWanderMin)
	}
	r.setBotIntent(p, p.BotWanderX-p.X, p.BotWanderY-p.Y)
}

// botSurvival dodges the nearest falling hazard, otherwise drifts toward
// the nearest gift
func (r *Room) botSurvival(p *Player) {
	var threat *Hazard
	threatDist := 180.0
	for _, h := range r.Hazards {
		if h.Y > p.Y {
			continue
		}
		d := math.Abs(h.X - p.X)
		if d < threatDist {
			threatDist = d
			threat = h
		}
	}
	if threat != nil {
		if threat.X < p.X {
			r.setBotIntent(p, 1, 0)
		} else {
			r.setBotIntent(p, -1, 0)
		}
		return
	}
	var gift *Gift
	giftDist := math.MaxFloat64
	for _, g := range r.Gifts {
		d := math.Abs(g.X - p.X)
		if d < giftDist {
			giftDist = d
			gift = g
		}
	}
	if gift != nil {
		r.setBotIntent(p, gift.X-p.X, 0)
	} else {
		p.SetInput(0, 0)
	}
}

// botSnowball closes on the nearest enemy or the boss and throws
func (r *Room) botSnowball(p *Player, now float64) {
	var tx, ty float64
	found := false

	for _, m := range r.Monsters {
		if m.Type == MonsterBoss {
			tx, ty = m.X, m.Y
			found = true
			break
		}
	}
	if !found {
		bestDist := math.MaxFloat64
		for _, other := range r.Players {
			if other.ID == p.ID || !other.Alive || other.Team == p.Team {
				continue
			}
			d := Distance(p.X, p.Y, other.X, other.Y)
			if d < bestDist {
				bestDist = d
				tx, ty = other.X, other.Y
				found = true
			}
		}
	}
	if !found {
		r.botWander(p, now)
		return
	}

	dist := Distance(p.X, p.Y, tx, ty)
	if dist > 220 {
		r.setBotIntent(p, tx-p.X, ty-p.Y)
	} else if dist < 120 {
		r.setBotIntent(p, p.X-tx, p.Y-ty)
	} else {
		p.SetInput(0, 0)
	}
	if dist < 360 {
		r.botMaybeAct(p, now, tx-p.X, ty-p.Y)
	}
}

// botIce steers toward the nearest flag but swerves away from trees
// approaching the skiing row
func (r *Room) botIce(p *Player) {
	for _, d := range r.Decorations {
		if d.Y < p.Y || d.Y-p.Y > 160 {
			continue
		}
		if math.Abs(d.X-p.X) < d.CollisionRadius()+PlayerRadius+26 {
			if d.X < p.X {
				r.setBotIntent(p, 1, 0)
			} else {
				r.setBotIntent(p, -1, 0)
			}
			return
		}
	}
	var flag *Gift
	bestDist := math.MaxFloat64
	for _, g := range r.Gifts {
		if g.Y < p.Y {
			continue
		}
		d := Distance(p.X, p.Y, g.X, g.Y)
		if d < bestDist {
			bestDist = d
			flag = g
		}
	}
	if flag != nil {
		r.setBotIntent(p, flag.X-p.X, 0)
	} else {
		p.SetInput(0, 0)
	}
}

// botMaze hunts gifts and snipes monsters that get close
func (r *Room) botMaze(p *Player, now float64) {
	for _, m := range r.Monsters {
		if Distance(p.X, p.Y, m.X, m.Y) < 260 {
			r.botMaybeAct(p, now, m.X-p.X, m.Y-p.Y)
			break
		}
	}
	var gift *Gift
	bestDist := math.MaxFloat64
	for _, g := range r.Gifts {
		d := Distance(p.X, p.Y, g.X, g.Y)
		if d < bestDist {
			bestDist = d
			gift = g
		}
	}
	if gift != nil {
		r.setBotIntent(p, gift.X-p.X, gift.Y-p.Y)
		return
	}
	r.botWander(p, now)
}

// botLight chases the token, or flees the pack while holding it
func (r *Room) botLight(p *Player) {
	token := r.LightToken
	if token == nil {
		p.SetInput(0, 0)
		return
	}
	if token.Holder == p.ID {
		if chaser := r.nearestOtherPlayer(p); chaser != nil {
			r.setBotIntent(p, p.X-chaser.X, p.Y-chaser.Y)
		} else {
			p.SetInput(0, 0)
		}
		return
	}
	r.setBotIntent(p, token.X-p.X, token.Y-p.Y)
}

func (r *Room) nearestOtherPlayer(p *Player) *Player {
	var best *Player
	bestDist := math.MaxFloat64
	for _, other := range r.Players {
		if other.ID == p.ID || !other.Alive {
			continue
		}
		d := Distance(p.X, p.Y, other.X, other.Y)
		if d < bestDist {
			bestDist = d
			best = other
		}
	}
	return best
}

// setBotIntent points the bot at a world-space direction, clamped to the
// unit square the input channel allows
func (r *Room) setBotIntent(p *Player, dx, dy float64) {
	nx, ny := Normalize(dx, dy)
	p.SetInput(nx, ny)
}

// botMaybeAct fires toward a target with sloppy aim. The cooldown is
// re-rolled on every attempt, so a hesitation still spends the window.
func (r *Room) botMaybeAct(p *Player, now, dx, dy float64) {
	if now < p.BotNextActionAt {
		return
	}
	p.BotNextActionAt = now + BotActionMin + rand.Float64()*(BotActionMax-BotActionMin)
	if rand.Float64() < BotHesitateChance {
		return
	}
	angle := math.Atan2(dy, dx) + (rand.Float64()*2-1)*BotAimNoise
	p.FacingX = math.Cos(angle)
	p.FacingY = math.Sin(angle)
	r.performAction(p, now)
}
