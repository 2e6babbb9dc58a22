package main

const (
	HazardSpawnEvery = 0.6
	GiftSpawnEvery   = 1.8
	GiftScore        = 5
	SurvivalRowInset = 50.0
)

// survivalRound: dodge falling hazards on the bottom row, grab gifts,
// score ticks up for every second alive
type survivalRound struct{}

func (survivalRound) Setup(r *Room) {}

func (survivalRound) Update(r *Room, dt, now float64) {
	r.hazardAccum += dt
	for r.hazardAccum >= HazardSpawnEvery {
		r.hazardAccum -= HazardSpawnEvery
		r.SpawnHazard()
	}
	r.giftAccum += dt
	for r.giftAccum >= GiftSpawnEvery {
		r.giftAccum -= GiftSpawnEvery
		r.SpawnFallingGift()
	}

	rowY := r.Height - SurvivalRowInset
	for _, p := range r.Players {
		if !p.Alive {
			continue
		}
		p.X = Clamp(p.X+p.InputX*SurvivalSpeed*dt, PlayerRadius, r.Width-PlayerRadius)
		p.Y = rowY

		p.ScoreAccum += dt
		for p.ScoreAccum >= 1 {
			p.ScoreAccum -= 1
			p.Score++
			p.RoundScore++
		}
	}

	keep := r.Hazards[:0]
	for _, h := range r.Hazards {
		h.Y += h.VY * dt
		if h.Y > r.Height+HazardRadius {
			continue
		}
		hit := false
		for _, p := range r.Players {
			if p.Alive && CheckCollision(h.X, h.Y, HazardRadius, p.X, p.Y, PlayerRadius) {
				p.Alive = false
				p.LastHitAt = now
				hit = true
				break
			}
		}
		if !hit {
			keep = append(keep, h)
		}
	}
	r.Hazards = keep

	giftsLeft := r.Gifts[:0]
	for _, g := range r.Gifts {
		g.Y += g.VY * dt
		if g.Y > r.Height+GiftRadius {
			continue
		}
		taken := false
		for _, p := range r.Players {
			if p.Alive && CheckCollision(g.X, g.Y, GiftRadius, p.X, p.Y, PlayerRadius) {
				p.Score += GiftScore
				p.RoundScore += GiftScore
				taken = true
				break
			}
		}
		if !taken {
			giftsLeft = append(giftsLeft, g)
		}
	}
	r.Gifts = giftsLeft
}

func (survivalRound) OnAction(r *Room, p *Player, now float64) {}
