package main

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	LightPickupRadius = 16.0
	LightHoldRate     = 3 // points per second while holding
	LightTagBonus     = 5
	LightStealBonus   = 5
	LightEndBonus     = 10
	LightMaxHold      = 12.0
)

// lightRound: one glowing token, everyone wants it. Holding it pays out
// per second; touching the holder tags the token away, and a well-aimed
// snowball steals it at range. Hog it too long and it jumps away on its own.
type lightRound struct{}

func (lightRound) Setup(r *Room) {
	r.edgeSpawns(r.playerList(), 0, 2*math.Pi)
	r.SpawnTrees(r.scaledTreeCount(32, 24, 140), true)
	r.LightToken = &Light{X: r.Width / 2, Y: r.Height / 2}
}

func (lightRound) Update(r *Room, dt, now float64) {
	for _, p := range r.Players {
		if p.Alive {
			r.movePlayer(p, PlayerSpeed, dt)
		}
	}

	token := r.LightToken
	if token == nil {
		return
	}

	if token.Holder == "" {
		for _, p := range r.Players {
			if !p.Alive {
				continue
			}
			if CheckCollision(token.X, token.Y, LightPickupRadius, p.X, p.Y, PlayerRadius) {
				r.giveLight(p)
				break
			}
		}
	}

	if holder, ok := r.Players[token.Holder]; ok {
		token.X = holder.X
		token.Y = holder.Y
		token.HeldFor += dt

		holder.ScoreAccum += dt
		for holder.ScoreAccum >= 1 {
			holder.ScoreAccum -= 1
			holder.Score += LightHoldRate
			holder.RoundScore += LightHoldRate
		}

		for _, p := range r.Players {
			if !p.Alive || p.ID == holder.ID {
				continue
			}
			if CheckCollision(p.X, p.Y, PlayerRadius, holder.X, holder.Y, PlayerRadius) {
				p.Score += LightTagBonus
				p.RoundScore += LightTagBonus
				r.giveLight(p)
				break
			}
		}

		if token.HeldFor >= LightMaxHold {
			r.relocateLight()
			r.announce("The light slipped away!")
		}
	}

	r.UpdateProjectiles(dt)
	r.resolveLightShots()
}

func (lightRound) OnAction(r *Room, p *Player, now float64) {
	if !p.Alive {
		return
	}
	if now-p.LastActionAt < ActionCooldown {
		return
	}
	p.LastActionAt = now
	r.SpawnProjectile(p)
}

// giveLight hands the token to a player and restarts the hold clock
func (r *Room) giveLight(p *Player) {
	token := r.LightToken
	if prev, ok := r.Players[token.Holder]; ok {
		prev.HasLight = false
	}
	token.Holder = p.ID
	token.HeldFor = 0
	token.X = p.X
	token.Y = p.Y
	p.HasLight = true
}

// relocateLight drops the token somewhere else in the arena, unheld
func (r *Room) relocateLight() {
	token := r.LightToken
	if prev, ok := r.Players[token.Holder]; ok {
		prev.HasLight = false
	}
	token.Holder = ""
	token.HeldFor = 0
	token.X = 80 + rand.Float64()*(r.Width-160)
	token.Y = 80 + rand.Float64()*(r.Height-160)
}

// resolveLightShots lands snowballs on players. Hitting the holder steals
// the token from across the arena; hitting anyone else just splats.
func (r *Room) resolveLightShots() {
	token := r.LightToken
	keep := r.Projectiles[:0]
	for _, pr := range r.Projectiles {
		hit := false
		for _, p := range r.Players {
			if !p.Alive || p.ID == pr.Owner {
				continue
			}
			if !CheckCollision(pr.X, pr.Y, ProjectileRadius, p.X, p.Y, PlayerRadius) {
				continue
			}
			hit = true
			if token != nil && token.Holder == p.ID {
				if shooter, ok := r.Players[pr.Owner]; ok && shooter.Alive {
					shooter.Score += LightStealBonus
					shooter.RoundScore += LightStealBonus
					r.giveLight(shooter)
					r.announce(fmt.Sprintf("%s stole the light!", shooter.Name))
				}
			}
			break
		}
		if !hit {
			keep = append(keep, pr)
		}
	}
	r.Projectiles = keep
}
