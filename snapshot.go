package main

// summaryLocked builds the lobby-level room view. Caller holds the lock.
func (r *Room) summaryLocked() RoomSummary {
	players := make([]LobbyPlayer, 0, len(r.Players))
	for _, p := range r.Players {
		players = append(players, LobbyPlayer{
			ID:         p.ID,
			Name:       p.Name,
			Color:      p.Color,
			X:          p.X,
			Y:          p.Y,
			Score:      p.Score,
			RoundScore: p.RoundScore,
			Ready:      p.Ready,
			Team:       p.Team,
			Alive:      p.Alive,
			RingsLeft:  p.RingsLeft,
			Bot:        p.Bot,
		})
	}
	return RoomSummary{
		Code:         r.Code,
		Status:       string(r.Status),
		CurrentRound: r.CurrentRound,
		HostID:       r.HostID,
		Players:      players,
		RoundEndsAt:  r.RoundEndsAt,
		MaxRounds:    r.MaxRounds,
		RoundType:    string(r.RoundType),
		Width:        r.Width,
		Height:       r.Height,
	}
}

// snapshotLocked builds the full per-tick world state. Caller holds the lock.
func (r *Room) snapshotLocked() WorldSnapshot {
	players := make([]WorldPlayer, 0, len(r.Players))
	for _, p := range r.Players {
		players = append(players, WorldPlayer{
			ID:         p.ID,
			Name:       p.Name,
			Color:      p.Color,
			X:          round1(p.X), // sub-decipixel jitter is wire noise
			Y:          round1(p.Y),
			Alive:      p.Alive,
			Team:       p.Team,
			HasLight:   p.HasLight,
			FX:         p.FacingX,
			FY:         p.FacingY,
			Moving:     p.Moving(),
			Score:      p.Score,
			RoundScore: p.RoundScore,
			RingsLeft:  p.RingsLeft,
			Energy:     round1(p.Energy),
			Bot:        p.Bot,
		})
	}

	var trails []TrailState
	if len(r.TrailMap) > 0 {
		trails = make([]TrailState, 0, len(r.TrailMap))
		for cell, tile := range r.TrailMap {
			trails = append(trails, TrailState{
				CX:    cell.CX,
				CY:    cell.CY,
				Owner: tile.Owner,
				Color: tile.Color,
			})
		}
	}

	return WorldSnapshot{
		Room: RoomBrief{
			Code:         r.Code,
			Status:       string(r.Status),
			CurrentRound: r.CurrentRound,
			RoundType:    string(r.RoundType),
			RoundEndsAt:  r.RoundEndsAt,
			MaxRounds:    r.MaxRounds,
			HostID:       r.HostID,
		},
		World: WorldData{
			Width:              r.Width,
			Height:             r.Height,
			Players:            players,
			Projectiles:        r.Projectiles,
			MonsterProjectiles: r.MonsterProjectiles,
			Monsters:           r.Monsters,
			Decorations:        r.Decorations,
			Hazards:            r.Hazards,
			Gifts:              r.Gifts,
			Walls:              r.Walls,
			Light:              r.LightToken,
			Trails:             trails,
		},
		Tick: r.Tick,
	}
}
