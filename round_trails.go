package main

const TrailTileSize = 30.0

// TrailCell addresses one tile of the paint grid
type TrailCell struct {
	CX int
	CY int
}

// TrailTile records who owns a painted tile
type TrailTile struct {
	Owner string
	Color string
}

// trailsRound: paint the arena. Every tile you walk over becomes yours and
// pays a point; fully enclosing a pocket of unpainted floor claims the whole
// pocket. Walking onto a living opponent's paint is elimination.
type trailsRound struct{}

func (trailsRound) Setup(r *Room) {
	for _, p := range r.playerList() {
		r.claimTrailCell(r.cellAt(p.X, p.Y), p)
	}
}

func (trailsRound) Update(r *Room, dt, now float64) {
	for _, p := range r.Players {
		if !p.Alive {
			continue
		}
		r.movePlayer(p, PlayerSpeed, dt)

		cell := r.cellAt(p.X, p.Y)
		tile, painted := r.TrailMap[cell]
		if painted && tile.Owner != p.ID {
			if owner, ok := r.Players[tile.Owner]; ok && owner.Alive {
				p.Alive = false
				p.LastHitAt = now
				continue
			}
			// dead players' paint is harmless and repaintable
			r.claimTrailCell(cell, p)
			continue
		}
		if !painted {
			r.claimTrailCell(cell, p)
			r.claimEnclosedPockets(cell, p)
		}
	}
}

func (trailsRound) OnAction(r *Room, p *Player, now float64) {}

func (r *Room) cellAt(x, y float64) TrailCell {
	return TrailCell{CX: int(x / TrailTileSize), CY: int(y / TrailTileSize)}
}

func (r *Room) trailGridSize() (int, int) {
	return int(r.Width / TrailTileSize), int(r.Height / TrailTileSize)
}

func (r *Room) claimTrailCell(cell TrailCell, p *Player) {
	if tile, ok := r.TrailMap[cell]; ok && tile.Owner == p.ID {
		return
	}
	r.TrailMap[cell] = &TrailTile{Owner: p.ID, Color: p.Color}
	p.Score++
	p.RoundScore++
}

// claimEnclosedPockets flood-fills the unpainted neighbors of a freshly
// painted cell. A pocket that never reaches the grid edge and borders only
// the claimer's own paint belongs to the claimer.
func (r *Room) claimEnclosedPockets(from TrailCell, p *Player) {
	cols, rows := r.trailGridSize()
	neighbors := [4]TrailCell{
		{from.CX + 1, from.CY}, {from.CX - 1, from.CY},
		{from.CX, from.CY + 1}, {from.CX, from.CY - 1},
	}
	for _, start := range neighbors {
		if _, painted := r.TrailMap[start]; painted {
			continue
		}
		if region, enclosed := r.floodRegion(start, p.ID, cols, rows); enclosed {
			for _, cell := range region {
				r.claimTrailCell(cell, p)
			}
		}
	}
}

// floodRegion walks the connected unpainted region containing start.
// It reports the region and whether it is sealed in by the owner's paint.
func (r *Room) floodRegion(start TrailCell, owner string, cols, rows int) ([]TrailCell, bool) {
	if start.CX < 0 || start.CY < 0 || start.CX >= cols || start.CY >= rows {
		return nil, false
	}
	visited := map[TrailCell]bool{start: true}
	queue := []TrailCell{start}
	region := []TrailCell{}
	enclosed := true

	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		region = append(region, cell)

		for _, next := range [4]TrailCell{
			{cell.CX + 1, cell.CY}, {cell.CX - 1, cell.CY},
			{cell.CX, cell.CY + 1}, {cell.CX, cell.CY - 1},
		} {
			if next.CX < 0 || next.CY < 0 || next.CX >= cols || next.CY >= rows {
				enclosed = false
				continue
			}
			if tile, painted := r.TrailMap[next]; painted {
				if tile.Owner != owner {
					enclosed = false
				}
				continue
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return region, enclosed
}
