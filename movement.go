package main

// treeHit reports whether a circle at (x, y) overlaps any decoration
func (r *Room) treeHit(x, y, radius float64) bool {
	for _, d := range r.Decorations {
		if CheckCollision(x, y, radius, d.X, d.Y, d.CollisionRadius()) {
			return true
		}
	}
	return false
}

// movePlayer advances a player by their raw per-axis input, sliding along
// walls and trees one axis at a time so a diagonal push against an obstacle
// keeps the free component of the motion.
func (r *Room) movePlayer(p *Player, speed, dt float64) {
	if !p.Moving() {
		return
	}
	nx, ny := MoveWithWalls(r.Width, r.Height, r.Walls, p.X, p.Y, p.InputX, p.InputY, speed, dt, PlayerRadius)
	// Trees block like walls. Re-check walls on a tree revert because the
	// Y wall test above ran at the pre-revert X.
	if r.treeHit(nx, p.Y, PlayerRadius) {
		nx = p.X
	}
	if r.treeHit(nx, ny, PlayerRadius) || anyWallHit(r.Walls, nx, ny, PlayerRadius) {
		ny = p.Y
	}
	p.X, p.Y = nx, ny
}

// scaledTreeCount grows obstacle density with world area, clamped so huge
// maps do not drown in trees
func (r *Room) scaledTreeCount(base, min, max int) int {
	factor := (r.Width * r.Height) / (BaseWidth * BaseHeight)
	n := int(float64(base) * factor)
	if n < min {
		n = min
	}
	if n > max {
		n = max
	}
	return n
}
