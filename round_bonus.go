package main

const BonusTapCooldown = 0.15

// bonusRound: a ten second button-mash filler. Everyone is pinned to the
// centre; each action tap is worth a point.
type bonusRound struct{}

func (bonusRound) Setup(r *Room) {
	for _, p := range r.playerList() {
		p.X = r.Width / 2
		p.Y = r.Height / 2
	}
}

func (bonusRound) Update(r *Room, dt, now float64) {
	cx, cy := r.Width/2, r.Height/2
	for _, p := range r.Players {
		p.X = cx
		p.Y = cy
	}
}

func (bonusRound) OnAction(r *Room, p *Player, now float64) {
	if now-p.LastActionAt < BonusTapCooldown {
		return
	}
	p.LastActionAt = now
	p.Score++
	p.RoundScore++
}
