package main

import (
	"math"
	"math/rand"
)

const (
	ProjectileSpeed    = 420.0
	ProjectileLifetime = 2.2
	ProjectileRadius   = 6.0

	FireballRadius = 7.0
	FireballSpeed  = 260.0
	FireballDamage = 5.0
	FireballLife   = 3.0

	HazardRadius = 14.0
	GiftRadius   = 12.0

	YetiSpeed         = 210.0
	YetiRadius        = 18.0
	YetiSpawnInterval = 12.0
	YetiSpawnDelay    = 6.0
)

// Projectile is a thrown snowball
type Projectile struct {
	ID    int     `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	VX    float64 `json:"vx"`
	VY    float64 `json:"vy"`
	Color string  `json:"color"`
	Owner string  `json:"owner"`
	Life  float64 `json:"life"`
}

// MonsterProjectile is a fireball fired by a maze monster or the boss.
// Damage is energy drain in the maze; snowball boss shots always cost a ring.
type MonsterProjectile struct {
	ID     int     `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VX     float64 `json:"vx"`
	VY     float64 `json:"vy"`
	Life   float64 `json:"life"`
	Damage float64 `json:"damage"`
}

// MonsterType tags the monster variants
type MonsterType string

const (
	MonsterSmall  MonsterType = "small"
	MonsterMedium MonsterType = "medium"
	MonsterBig    MonsterType = "big"
	MonsterYeti   MonsterType = "yeti"
	MonsterBoss   MonsterType = "boss"
)

// MonsterStats holds per-type tuning for the maze chasers
type MonsterStats struct {
	HP     int
	Speed  float64
	Points int
}

var MonsterTypes = map[MonsterType]MonsterStats{
	MonsterSmall:  {HP: 1, Speed: 110.0, Points: 3},
	MonsterMedium: {HP: 2, Speed: 85.0, Points: 6},
	MonsterBig:    {HP: 4, Speed: 70.0, Points: 10},
}

// Monster is any AI-controlled hostile: maze chasers, ice yetis, the boss
type Monster struct {
	ID           int         `json:"id"`
	Type         MonsterType `json:"type"`
	X            float64     `json:"x"`
	Y            float64     `json:"y"`
	HP           int         `json:"hp"`
	MaxHP        int         `json:"maxHp"`
	Speed        float64     `json:"speed"`
	Radius       float64     `json:"-"`
	DirX         float64     `json:"-"`
	DirY         float64     `json:"-"`
	WanderUntil  float64     `json:"-"`
	LastShot     float64     `json:"-"`
	NextAttackAt float64     `json:"-"`
}

// TreeSize maps a decoration size tag to its collision radius
var TreeSizes = map[string]float64{
	"small":  16,
	"medium": 22,
	"large":  28,
}

// Decoration is a static obstacle (currently only trees)
type Decoration struct {
	ID   int     `json:"id"`
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Size string  `json:"size"`
}

func (d *Decoration) CollisionRadius() float64 {
	if r, ok := TreeSizes[d.Size]; ok {
		return r
	}
	return TreeSizes["medium"]
}

// Hazard is a falling obstacle in the survival round
type Hazard struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VY float64 `json:"vy"`
}

// Gift is a collectible: falling candy/presents, maze pickups, ice flags
type Gift struct {
	ID   int     `json:"id"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	VY   float64 `json:"vy"`
	Type string  `json:"type"`
}

// Light is the tag token for the light round
type Light struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Holder  string  `json:"holder"`
	HeldFor float64 `json:"-"`
}

// SpawnProjectile creates a snowball travelling along the player's facing
func (r *Room) SpawnProjectile(p *Player) {
	dx, dy := p.FacingX, p.FacingY
	if math.Abs(dx) < 0.1 && math.Abs(dy) < 0.1 {
		dx, dy = 1, 0
	}
	dx, dy = Normalize(dx, dy)
	r.Projectiles = append(r.Projectiles, &Projectile{
		ID:    r.nextProjectileID,
		X:     p.X + dx*(PlayerRadius+6),
		Y:     p.Y + dy*(PlayerRadius+6),
		VX:    dx * ProjectileSpeed,
		VY:    dy * ProjectileSpeed,
		Color: p.Color,
		Owner: p.ID,
	})
	r.nextProjectileID++
}

// SpawnFireball aims a monster projectile from the monster at a point
func (r *Room) SpawnFireball(m *Monster, targetX, targetY float64) {
	dx := targetX - m.X
	dy := targetY - m.Y
	if dx == 0 && dy == 0 {
		return
	}
	dx, dy = Normalize(dx, dy)
	r.MonsterProjectiles = append(r.MonsterProjectiles, &MonsterProjectile{
		ID:     r.nextMonsterProjectileID,
		X:      m.X,
		Y:      m.Y,
		VX:     dx * FireballSpeed,
		VY:     dy * FireballSpeed,
		Life:   FireballLife,
		Damage: 1,
	})
	r.nextMonsterProjectileID++
}

// SpawnHazard drops a falling hazard above the top edge
func (r *Room) SpawnHazard() {
	r.Hazards = append(r.Hazards, &Hazard{
		ID: r.nextItemID,
		X:  40 + rand.Float64()*(r.Width-80),
		Y:  -20,
		VY: 140 + rand.Float64()*80,
	})
	r.nextItemID++
}

// SpawnFallingGift drops a collectible above the top edge
func (r *Room) SpawnFallingGift() {
	r.Gifts = append(r.Gifts, &Gift{
		ID:   r.nextItemID,
		X:    40 + rand.Float64()*(r.Width-80),
		Y:    -20,
		VY:   110 + rand.Float64()*70,
		Type: randomGiftType(),
	})
	r.nextItemID++
}

// SpawnMazeGift places a pickup on open floor. A placement that keeps
// landing inside a wall is skipped for this tick.
func (r *Room) SpawnMazeGift() {
	for attempt := 0; attempt < 6; attempt++ {
		x := 60 + rand.Float64()*(r.Width-120)
		y := 60 + rand.Float64()*(r.Height-120)
		if anyWallHit(r.Walls, x, y, GiftRadius) {
			continue
		}
		r.Gifts = append(r.Gifts, &Gift{
			ID:   r.nextItemID,
			X:    x,
			Y:    y,
			Type: randomGiftType(),
		})
		r.nextItemID++
		return
	}
}

func randomGiftType() string {
	if rand.Float64() < 0.5 {
		return "candy"
	}
	return "present"
}

// SpawnMonsters populates the maze with chasers, scaled by player count,
// keeping them out of walls and away from the centre goal
func (r *Room) SpawnMonsters() {
	r.Monsters = nil
	count := len(r.Players) * 2
	if count < 6 {
		count = 6
	}
	if count > 12 {
		count = 12
	}
	order := []MonsterType{MonsterSmall, MonsterMedium, MonsterBig}
	for i := 0; i < count; i++ {
		mtype := order[i%len(order)]
		stats := MonsterTypes[mtype]
		for attempt := 0; attempt < 8; attempt++ {
			x := 80 + rand.Float64()*(r.Width-160)
			y := 80 + rand.Float64()*(r.Height-160)
			if anyWallHit(r.Walls, x, y, 18) {
				continue
			}
			if math.Abs(x-r.Width/2) < 120 && math.Abs(y-r.Height/2) < 120 {
				continue
			}
			r.Monsters = append(r.Monsters, &Monster{
				ID:          r.nextMonsterID,
				Type:        mtype,
				X:           x,
				Y:           y,
				HP:          stats.HP,
				MaxHP:       stats.HP,
				Speed:       stats.Speed,
				Radius:      16,
				DirX:        rand.Float64()*2 - 1,
				DirY:        rand.Float64()*2 - 1,
				WanderUntil: nowSeconds() + 1.0 + rand.Float64()*2.0,
			})
			r.nextMonsterID++
			break
		}
	}
}

// SpawnYetis drops yetis below the pack of skiers, away from all players
func (r *Room) SpawnYetis(count int) {
	if len(r.Players) == 0 {
		return
	}
	playerY := r.icePlayerY()
	for i := 0; i < count; i++ {
		for attempt := 0; attempt < 8; attempt++ {
			x := 80 + rand.Float64()*(r.Width-160)
			y := math.Min(r.Height-YetiRadius, playerY+280+rand.Float64()*240)
			tooClose := false
			for _, p := range r.Players {
				if CheckCollision(x, y, YetiRadius, p.X, p.Y, PlayerRadius+120) {
					tooClose = true
					break
				}
			}
			if tooClose {
				continue
			}
			r.Monsters = append(r.Monsters, &Monster{
				ID:     r.nextMonsterID,
				Type:   MonsterYeti,
				X:      x,
				Y:      y,
				Speed:  YetiSpeed,
				Radius: YetiRadius,
			})
			r.nextMonsterID++
			break
		}
	}
}

// SpawnTrees scatters tree obstacles, avoiding walls, players and the centre
func (r *Room) SpawnTrees(count int, avoidPlayers bool) {
	r.Decorations = nil
	sizes := []string{"small", "medium", "large"}
	for i := 0; i < count; i++ {
		for attempt := 0; attempt < 8; attempt++ {
			x := 80 + rand.Float64()*(r.Width-160)
			y := 80 + rand.Float64()*(r.Height-160)
			size := sizes[rand.Intn(len(sizes))]
			radius := TreeSizes[size]
			if anyWallHit(r.Walls, x, y, radius) {
				continue
			}
			if avoidPlayers && r.anyPlayerNear(x, y, radius+40) {
				continue
			}
			if math.Abs(x-r.Width/2) < 120 && math.Abs(y-r.Height/2) < 120 {
				continue
			}
			r.Decorations = append(r.Decorations, &Decoration{
				ID:   r.nextDecorationID,
				Type: "tree",
				X:    x,
				Y:    y,
				Size: size,
			})
			r.nextDecorationID++
			break
		}
	}
}

func (r *Room) anyPlayerNear(x, y, radius float64) bool {
	for _, p := range r.Players {
		if CheckCollision(x, y, radius, p.X, p.Y, PlayerRadius) {
			return true
		}
	}
	return false
}

// UpdateProjectiles advances snowballs and rebuilds the list without the
// expired, out-of-bounds, wall-struck and tree-struck ones
func (r *Room) UpdateProjectiles(dt float64) {
	alive := r.Projectiles[:0]
	for _, proj := range r.Projectiles {
		proj.X += proj.VX * dt
		proj.Y += proj.VY * dt
		proj.Life += dt
		if proj.Life > ProjectileLifetime ||
			proj.X < -20 || proj.X > r.Width+20 ||
			proj.Y < -20 || proj.Y > r.Height+20 {
			continue
		}
		if anyWallHit(r.Walls, proj.X, proj.Y, ProjectileRadius) {
			continue
		}
		hitTree := false
		for _, deco := range r.Decorations {
			if deco.Type == "tree" &&
				CheckCollision(proj.X, proj.Y, ProjectileRadius, deco.X, deco.Y, deco.CollisionRadius()) {
				hitTree = true
				break
			}
		}
		if hitTree {
			continue
		}
		alive = append(alive, proj)
	}
	r.Projectiles = alive
}

// RemoveProjectilesOnPlayerHit drops any snowball overlapping a player.
// Used by rounds where snowballs have no gameplay effect on players.
func (r *Room) RemoveProjectilesOnPlayerHit() {
	if len(r.Projectiles) == 0 {
		return
	}
	remaining := r.Projectiles[:0]
	for _, proj := range r.Projectiles {
		hit := false
		for _, p := range r.Players {
			if CheckCollision(proj.X, proj.Y, ProjectileRadius, p.X, p.Y, PlayerRadius) {
				hit = true
				break
			}
		}
		if !hit {
			remaining = append(remaining, proj)
		}
	}
	r.Projectiles = remaining
}
