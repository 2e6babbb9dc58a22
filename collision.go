package main

// CheckCollision checks if two circles overlap
func CheckCollision(x1, y1, r1, x2, y2, r2 float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	dist2 := dx*dx + dy*dy
	radSum := r1 + r2
	return dist2 <= radSum*radSum
}

// Wall is an axis-aligned static rectangle
type Wall struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// RectCollidesCircle checks a circle against a rectangle using the
// radius-expanded bounds of the rectangle
func RectCollidesCircle(w Wall, cx, cy, radius float64) bool {
	return cx >= w.X-radius && cx <= w.X+w.W+radius &&
		cy >= w.Y-radius && cy <= w.Y+w.H+radius
}

func anyWallHit(walls []Wall, cx, cy, radius float64) bool {
	for _, w := range walls {
		if RectCollidesCircle(w, cx, cy, radius) {
			return true
		}
	}
	return false
}

// MoveWithWalls advances a circle by (dx, dy)*speed*dt, resolving each axis
// against the walls independently: the X move is tested first and reverted on
// conflict, then the Y move is tested at the resolved X. Keeping that axis
// order lets entities slide along a wall face instead of stopping dead.
// The result is clamped into [radius, dimension-radius].
func MoveWithWalls(width, height float64, walls []Wall, x, y, dx, dy, speed, dt, radius float64) (float64, float64) {
	newX := x + dx*speed*dt
	newY := y + dy*speed*dt

	if len(walls) > 0 {
		testX := newX
		if anyWallHit(walls, testX, y, radius) {
			testX = x
		}
		testY := newY
		if anyWallHit(walls, testX, testY, radius) {
			testY = y
		}
		newX, newY = testX, testY
	}

	newX = Clamp(newX, radius, width-radius)
	newY = Clamp(newY, radius, height-radius)
	return newX, newY
}
