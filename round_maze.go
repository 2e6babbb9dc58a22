package main

import (
	"fmt"
	"math/rand"
)

const (
	MazeStartEnergy  = 45.0
	MazeEnergyDrain  = 1.0 // per second, the clock is the real enemy
	MazeContactDrain = 5.0
	MazeContactMercy = 0.8
	MazeGiftEnergy   = 10.0
	MazeGiftScore    = 10
	MazeEscapeBonus  = 20
	MazeGoalRadius   = 60.0
	MazeChaseRange   = 320.0
	MazeFireRange    = 280.0
	MazeFireEvery    = 1.4
	MazeMinGifts     = 8
	MazeGiftRespawn  = 2.0
)

// mazeRound: escape the monster-infested maze before your energy runs out.
// Energy drains constantly and monsters drain it faster; gifts top it up.
// Reaching the centre goal escapes the maze for a bonus.
type mazeRound struct{}

func (mazeRound) Setup(r *Room) {
	r.Walls = mazeWalls(r.Width, r.Height)
	// reseat anyone whose spawn landed inside a wall
	for _, p := range r.playerList() {
		for attempt := 0; attempt < 12 && anyWallHit(r.Walls, p.X, p.Y, PlayerRadius); attempt++ {
			p.X = 60 + rand.Float64()*(r.Width-120)
			p.Y = 60 + rand.Float64()*(r.Height-120)
		}
	}
	r.SpawnTrees(r.scaledTreeCount(32, 24, 140), true)
	r.SpawnMonsters()
	for i := 0; i < 6; i++ {
		r.SpawnMazeGift()
	}
}

func (mazeRound) Update(r *Room, dt, now float64) {
	for _, p := range r.Players {
		if !p.Alive {
			continue
		}
		r.movePlayer(p, PlayerSpeed, dt)
		r.drainEnergy(p, MazeEnergyDrain*dt, now)
	}

	r.updateMazeMonsters(dt, now)
	r.UpdateProjectiles(dt)
	r.resolveProjectilesVsMonsters()
	r.updateMonsterProjectiles(dt, now)
	r.collectMazeGifts()
	r.checkMazeGoal()

	r.giftAccum += dt
	if r.giftAccum >= MazeGiftRespawn {
		r.giftAccum = 0
		if len(r.Gifts) < MazeMinGifts {
			r.SpawnMazeGift()
		}
	}
}

func (mazeRound) OnAction(r *Room, p *Player, now float64) {
	if !p.Alive {
		return
	}
	if now-p.LastActionAt < ActionCooldown {
		return
	}
	p.LastActionAt = now
	r.SpawnProjectile(p)
}

// drainEnergy removes energy and kills the player when it hits zero
func (r *Room) drainEnergy(p *Player, amount, now float64) {
	p.Energy -= amount
	if p.Energy <= 0 {
		p.Energy = 0
		p.Alive = false
		p.LastHitAt = now
	}
}

// updateMazeMonsters drives chase and fire behavior. Monsters wander until
// a player comes within chase range, shoot within fire range, and drain
// energy on contact with a short mercy window.
func (r *Room) updateMazeMonsters(dt, now float64) {
	for _, m := range r.Monsters {
		target := r.nearestAlivePlayer(m.X, m.Y)
		var dist float64
		if target != nil {
			dist = Distance(m.X, m.Y, target.X, target.Y)
		}

		if target != nil && dist < MazeChaseRange {
			dx, dy := Normalize(target.X-m.X, target.Y-m.Y)
			nx := m.X + dx*m.Speed*dt
			if !anyWallHit(r.Walls, nx, m.Y, m.Radius) {
				m.X = nx
			}
			ny := m.Y + dy*m.Speed*dt
			if !anyWallHit(r.Walls, m.X, ny, m.Radius) {
				m.Y = ny
			}
		} else {
			if now >= m.WanderUntil {
				m.DirX = rand.Float64()*2 - 1
				m.DirY = rand.Float64()*2 - 1
				m.WanderUntil = now + 1 + rand.Float64()*2
			}
			dx, dy := Normalize(m.DirX, m.DirY)
			nx := m.X + dx*m.Speed*0.5*dt
			ny := m.Y + dy*m.Speed*0.5*dt
			if !anyWallHit(r.Walls, nx, ny, m.Radius) {
				m.X, m.Y = nx, ny
			}
		}
		m.X = Clamp(m.X, m.Radius, r.Width-m.Radius)
		m.Y = Clamp(m.Y, m.Radius, r.Height-m.Radius)

		if target != nil && dist < MazeFireRange && now-m.LastShot >= MazeFireEvery {
			m.LastShot = now
			r.SpawnFireball(m, target.X, target.Y)
		}

		for _, p := range r.Players {
			if !p.Alive || now-p.LastHitAt < MazeContactMercy {
				continue
			}
			if CheckCollision(m.X, m.Y, m.Radius, p.X, p.Y, PlayerRadius) {
				p.LastHitAt = now
				r.drainEnergy(p, MazeContactDrain, now)
			}
		}
	}
}

// resolveProjectilesVsMonsters lands snowballs on monsters; a kill pays
// out the monster's point value
func (r *Room) resolveProjectilesVsMonsters() {
	keep := r.Projectiles[:0]
	for _, pr := range r.Projectiles {
		hit := false
		for _, m := range r.Monsters {
			if !CheckCollision(pr.X, pr.Y, ProjectileRadius, m.X, m.Y, m.Radius) {
				continue
			}
			hit = true
			m.HP--
			if m.HP <= 0 {
				if owner, ok := r.Players[pr.Owner]; ok {
					if stats, known := MonsterTypes[m.Type]; known {
						owner.Score += stats.Points
						owner.RoundScore += stats.Points
					}
				}
			}
			break
		}
		if !hit {
			keep = append(keep, pr)
		}
	}
	r.Projectiles = keep

	monsters := r.Monsters[:0]
	for _, m := range r.Monsters {
		if m.HP > 0 {
			monsters = append(monsters, m)
		}
	}
	r.Monsters = monsters
}

func (r *Room) collectMazeGifts() {
	keep := r.Gifts[:0]
	for _, g := range r.Gifts {
		taken := false
		for _, p := range r.Players {
			if !p.Alive || !CheckCollision(g.X, g.Y, GiftRadius, p.X, p.Y, PlayerRadius) {
				continue
			}
			p.Energy += MazeGiftEnergy
			p.Score += MazeGiftScore
			p.RoundScore += MazeGiftScore
			taken = true
			break
		}
		if !taken {
			keep = append(keep, g)
		}
	}
	r.Gifts = keep
}

// checkMazeGoal lets players escape through the centre: a bonus, an
// announcement, and they sit out the rest of the round
func (r *Room) checkMazeGoal() {
	cx, cy := r.Width/2, r.Height/2
	for _, p := range r.Players {
		if !p.Alive {
			continue
		}
		if Distance(p.X, p.Y, cx, cy) > MazeGoalRadius {
			continue
		}
		p.Score += MazeEscapeBonus
		p.RoundScore += MazeEscapeBonus
		p.Alive = false
		r.announce(fmt.Sprintf("%s escaped the maze!", p.Name))
	}
}

// mazeWalls lays out the fixed wall rectangles, scaled to the arena
func mazeWalls(width, height float64) []Wall {
	w := func(x, y, ww, hh float64) Wall {
		return Wall{X: x * width, Y: y * height, W: ww * width, H: hh * height}
	}
	return []Wall{
		w(0.10, 0.10, 0.35, 0.02),
		w(0.55, 0.10, 0.35, 0.02),
		w(0.10, 0.10, 0.02, 0.30),
		w(0.88, 0.10, 0.02, 0.30),
		w(0.25, 0.25, 0.02, 0.35),
		w(0.73, 0.25, 0.02, 0.35),
		w(0.25, 0.58, 0.20, 0.02),
		w(0.55, 0.58, 0.20, 0.02),
		w(0.10, 0.70, 0.02, 0.20),
		w(0.88, 0.70, 0.02, 0.20),
		w(0.10, 0.88, 0.35, 0.02),
		w(0.55, 0.88, 0.35, 0.02),
		w(0.40, 0.40, 0.02, 0.12),
		w(0.58, 0.48, 0.02, 0.12),
		w(0.40, 0.74, 0.20, 0.02),
	}
}
