package main

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	SnowballRings = 3
	SnowballElim  = 20

	BossMinElapsed     = 30.0
	BossSpawnRate      = 0.02
	BossHP             = 30
	BossRadius         = 26.0
	BossSpeed          = 60.0
	BossBurstCount     = 12
	BossAttackInterval = 2.5
	BossHitScore       = 2
	BossKillScore      = 20
)

// snowballRound: two teams pelt each other across a tree-strewn field.
// Rings are lives; a lone surviving team ends the round early. A boss yeti
// may crash the party after the opening half minute.
type snowballRound struct{}

func (snowballRound) Setup(r *Room) {
	var left, right []*Player
	for _, p := range r.playerList() {
		if p.Team == 0 {
			left = append(left, p)
		} else {
			right = append(right, p)
		}
	}
	r.edgeSpawns(left, math.Pi/2, 3*math.Pi/2)
	r.edgeSpawns(right, -math.Pi/2, math.Pi/2)

	r.SpawnTrees(r.scaledTreeCount(32, 24, 140), true)
}

func (snowballRound) Update(r *Room, dt, now float64) {
	for _, p := range r.Players {
		if p.Alive {
			r.movePlayer(p, PlayerSpeed, dt)
		}
	}

	r.UpdateProjectiles(dt)
	r.updateSnowballHits(now)
	r.updateBoss(dt, now)
	r.updateMonsterProjectiles(dt, now)
}

func (snowballRound) OnAction(r *Room, p *Player, now float64) {
	if !p.Alive {
		return
	}
	if now-p.LastActionAt < ActionCooldown {
		return
	}
	p.LastActionAt = now
	r.SpawnProjectile(p)
}

// updateSnowballHits resolves snowballs against players of the opposing
// team. Friendly fire passes through.
func (r *Room) updateSnowballHits(now float64) {
	keep := r.Projectiles[:0]
	for _, pr := range r.Projectiles {
		owner, hasOwner := r.Players[pr.Owner]
		hit := false
		for _, p := range r.Players {
			if !p.Alive || p.ID == pr.Owner {
				continue
			}
			if hasOwner && p.Team == owner.Team {
				continue
			}
			if !CheckCollision(pr.X, pr.Y, ProjectileRadius, p.X, p.Y, PlayerRadius) {
				continue
			}
			hit = true
			p.RingsLeft--
			p.LastHitAt = now
			if p.RingsLeft <= 0 {
				p.Alive = false
				if hasOwner {
					owner.Score += SnowballElim
					owner.RoundScore += SnowballElim
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

// updateBoss rolls the spawn dice, drives the boss toward the nearest
// target and resolves snowballs against it
func (r *Room) updateBoss(dt, now float64) {
	if !r.bossSpawned && r.RoundElapsed >= BossMinElapsed {
		if rand.Float64() < BossSpawnRate*dt {
			r.spawnBoss()
		}
	}

	var boss *Monster
	for _, m := range r.Monsters {
		if m.Type == MonsterBoss {
			boss = m
			break
		}
	}
	if boss == nil {
		return
	}

	if target := r.nearestAlivePlayer(boss.X, boss.Y); target != nil {
		dx, dy := Normalize(target.X-boss.X, target.Y-boss.Y)
		boss.X = Clamp(boss.X+dx*BossSpeed*dt, boss.Radius, r.Width-boss.Radius)
		boss.Y = Clamp(boss.Y+dy*BossSpeed*dt, boss.Radius, r.Height-boss.Radius)
	}

	if now >= boss.NextAttackAt {
		boss.NextAttackAt = now + BossAttackInterval
		for i := 0; i < BossBurstCount; i++ {
			angle := 2 * math.Pi * float64(i) / BossBurstCount
			mp := &MonsterProjectile{
				ID:     r.nextMonsterProjectileID,
				X:      boss.X,
				Y:      boss.Y,
				VX:     math.Cos(angle) * FireballSpeed,
				VY:     math.Sin(angle) * FireballSpeed,
				Life:   FireballLife,
				Damage: 1,
			}
			r.nextMonsterProjectileID++
			r.MonsterProjectiles = append(r.MonsterProjectiles, mp)
		}
	}

	keep := r.Projectiles[:0]
	for _, pr := range r.Projectiles {
		// A dead boss absorbs nothing; later snowballs this tick fly on
		if boss.HP <= 0 || !CheckCollision(pr.X, pr.Y, ProjectileRadius, boss.X, boss.Y, boss.Radius) {
			keep = append(keep, pr)
			continue
		}
		boss.HP--
		if owner, ok := r.Players[pr.Owner]; ok {
			owner.Score += BossHitScore
			owner.RoundScore += BossHitScore
			if boss.HP <= 0 {
				owner.Score += BossKillScore
				owner.RoundScore += BossKillScore
				r.announce(fmt.Sprintf("%s took down the boss!", owner.Name))
			}
		}
	}
	r.Projectiles = keep

	if boss.HP <= 0 {
		monsters := r.Monsters[:0]
		for _, m := range r.Monsters {
			if m != boss {
				monsters = append(monsters, m)
			}
		}
		r.Monsters = monsters
	}
}

func (r *Room) spawnBoss() {
	r.bossSpawned = true
	boss := &Monster{
		ID:           r.nextMonsterID,
		Type:         MonsterBoss,
		X:            r.Width / 2,
		Y:            r.Height / 2,
		HP:           BossHP,
		MaxHP:        BossHP,
		Speed:        BossSpeed,
		Radius:       BossRadius,
		NextAttackAt: nowSeconds() + BossAttackInterval,
	}
	r.nextMonsterID++
	r.Monsters = append(r.Monsters, boss)
	r.announce("A boss yeti has appeared!")
}

func (r *Room) nearestAlivePlayer(x, y float64) *Player {
	var best *Player
	bestDist := math.MaxFloat64
	for _, p := range r.Players {
		if !p.Alive {
			continue
		}
		d := Distance(x, y, p.X, p.Y)
		if d < bestDist {
			bestDist = d
			best = p
		}
	}
	return best
}

// updateMonsterProjectiles moves fireballs and boss shots. In snowball a
// hit knocks a ring off regardless of team; in maze it drains energy.
func (r *Room) updateMonsterProjectiles(dt, now float64) {
	keep := r.MonsterProjectiles[:0]
	for _, mp := range r.MonsterProjectiles {
		mp.X += mp.VX * dt
		mp.Y += mp.VY * dt
		mp.Life -= dt
		if mp.Life <= 0 ||
			mp.X < -20 || mp.X > r.Width+20 ||
			mp.Y < -20 || mp.Y > r.Height+20 {
			continue
		}
		if anyWallHit(r.Walls, mp.X, mp.Y, FireballRadius) {
			continue
		}
		hit := false
		for _, p := range r.Players {
			if !p.Alive {
				continue
			}
			if !CheckCollision(mp.X, mp.Y, FireballRadius, p.X, p.Y, PlayerRadius) {
				continue
			}
			hit = true
			p.LastHitAt = now
			if r.RoundType == RoundSnowball {
				p.RingsLeft--
				if p.RingsLeft <= 0 {
					p.Alive = false
				}
			} else {
				r.drainEnergy(p, mp.Damage*FireballDamage, now)
			}
			break
		}
		if !hit {
			keep = append(keep, mp)
		}
	}
	r.MonsterProjectiles = keep
}
