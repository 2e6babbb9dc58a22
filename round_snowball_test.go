package main

import "testing"

func newSnowballRoom(t *testing.T) (*Room, *Player, *Player) {
	t.Helper()
	r := newTestRoom()
	a, _ := r.AddPlayer("a", "A", "", false)
	b, _ := r.AddPlayer("b", "B", "", false)
	r.setupRound(RoundSnowball)
	r.Status = StatusInRound
	a.Team = 0
	b.Team = 1
	// Deterministic positions clear of trees
	r.Decorations = nil
	a.X, a.Y = 1000, 1000
	b.X, b.Y = 2000, 1000
	return r, a, b
}

func TestSnowballHitCostsRing(t *testing.T) {
	r, a, b := newSnowballRoom(t)
	r.Projectiles = append(r.Projectiles, &Projectile{ID: 1, X: b.X, Y: b.Y, Owner: a.ID})

	r.updateSnowballHits(nowSeconds())
	if b.RingsLeft != SnowballRings-1 {
		t.Errorf("rings = %d, want %d", b.RingsLeft, SnowballRings-1)
	}
	if a.Score != 0 {
		t.Errorf("shooter score = %d, only eliminations pay", a.Score)
	}
	if len(r.Projectiles) != 0 {
		t.Error("landed snowball should be removed")
	}
}

func TestSnowballEliminationAtZeroRings(t *testing.T) {
	r, a, b := newSnowballRoom(t)
	b.RingsLeft = 1
	r.Projectiles = append(r.Projectiles, &Projectile{ID: 1, X: b.X, Y: b.Y, Owner: a.ID})

	r.updateSnowballHits(nowSeconds())
	if b.Alive {
		t.Error("player with no rings left should be eliminated")
	}
	if a.Score != SnowballElim {
		t.Errorf("shooter score = %d, want %d", a.Score, SnowballElim)
	}
}

func TestSnowballFriendlyFirePassesThrough(t *testing.T) {
	r, a, b := newSnowballRoom(t)
	b.Team = a.Team
	r.Projectiles = append(r.Projectiles, &Projectile{ID: 1, X: b.X, Y: b.Y, Owner: a.ID})

	r.updateSnowballHits(nowSeconds())
	if b.RingsLeft != SnowballRings {
		t.Error("teammates should not take hits")
	}
	if len(r.Projectiles) != 1 {
		t.Error("snowball should pass through a teammate")
	}
}

func TestSnowballActionCooldown(t *testing.T) {
	r, a, _ := newSnowballRoom(t)
	now := nowSeconds()
	snowballRound{}.OnAction(r, a, now)
	snowballRound{}.OnAction(r, a, now+0.01)
	if len(r.Projectiles) != 1 {
		t.Errorf("projectiles = %d, cooldown should block the second throw", len(r.Projectiles))
	}
	snowballRound{}.OnAction(r, a, now+ActionCooldown+0.01)
	if len(r.Projectiles) != 2 {
		t.Errorf("projectiles = %d, cooldown expiry should allow another throw", len(r.Projectiles))
	}
}

func TestBossSpawn(t *testing.T) {
	r, _, _ := newSnowballRoom(t)
	r.spawnBoss()
	if !r.bossSpawned {
		t.Error("spawn flag should be set")
	}
	if len(r.Monsters) != 1 || r.Monsters[0].Type != MonsterBoss {
		t.Fatal("boss monster should exist")
	}
	if r.Monsters[0].HP != BossHP {
		t.Errorf("boss hp = %d, want %d", r.Monsters[0].HP, BossHP)
	}
}

func TestBossRadialBurst(t *testing.T) {
	r, _, _ := newSnowballRoom(t)
	r.spawnBoss()
	boss := r.Monsters[0]
	boss.NextAttackAt = 0

	r.updateBoss(0.016, nowSeconds())
	if len(r.MonsterProjectiles) != BossBurstCount {
		t.Errorf("burst = %d shots, want %d", len(r.MonsterProjectiles), BossBurstCount)
	}
	if boss.NextAttackAt <= nowSeconds() {
		t.Error("attack timer should be rescheduled")
	}
}

func TestBossTakesHitsAndDies(t *testing.T) {
	r, a, _ := newSnowballRoom(t)
	r.spawnBoss()
	boss := r.Monsters[0]
	boss.HP = 1
	boss.NextAttackAt = nowSeconds() + 100
	r.Projectiles = append(r.Projectiles, &Projectile{ID: 1, X: boss.X, Y: boss.Y, Owner: a.ID})

	r.updateBoss(0.0, nowSeconds())
	if a.Score != BossHitScore+BossKillScore {
		t.Errorf("score = %d, want %d", a.Score, BossHitScore+BossKillScore)
	}
	if len(r.Monsters) != 0 {
		t.Error("dead boss should be removed")
	}
}

func TestBossKillBonusPaidOnce(t *testing.T) {
	r, a, _ := newSnowballRoom(t)
	r.spawnBoss()
	boss := r.Monsters[0]
	boss.HP = 1
	boss.NextAttackAt = nowSeconds() + 100
	// Two snowballs land on the same tick; only the first one connects
	r.Projectiles = append(r.Projectiles,
		&Projectile{ID: 1, X: boss.X, Y: boss.Y, Owner: a.ID},
		&Projectile{ID: 2, X: boss.X, Y: boss.Y, Owner: a.ID},
	)

	r.updateBoss(0.0, nowSeconds())
	if a.Score != BossHitScore+BossKillScore {
		t.Errorf("score = %d, want %d (kill bonus paid once)", a.Score, BossHitScore+BossKillScore)
	}
	if len(r.Projectiles) != 1 {
		t.Errorf("projectiles = %d, the second snowball should fly on", len(r.Projectiles))
	}
	if len(r.Monsters) != 0 {
		t.Error("dead boss should be removed")
	}
}

func TestBossShotCostsRingRegardlessOfTeam(t *testing.T) {
	r, a, _ := newSnowballRoom(t)
	r.MonsterProjectiles = append(r.MonsterProjectiles, &MonsterProjectile{
		ID: 1, X: a.X, Y: a.Y, Life: 1, Damage: 1,
	})

	r.updateMonsterProjectiles(0.001, nowSeconds())
	if a.RingsLeft != SnowballRings-1 {
		t.Errorf("rings = %d, want %d", a.RingsLeft, SnowballRings-1)
	}
	if len(r.MonsterProjectiles) != 0 {
		t.Error("landed shot should be removed")
	}
}

func TestMonsterProjectileExpires(t *testing.T) {
	r, _, _ := newSnowballRoom(t)
	r.MonsterProjectiles = append(r.MonsterProjectiles, &MonsterProjectile{
		ID: 1, X: 50, Y: 50, Life: 0.01, Damage: 1,
	})
	r.updateMonsterProjectiles(0.1, nowSeconds())
	if len(r.MonsterProjectiles) != 0 {
		t.Error("expired shot should be removed")
	}
}
