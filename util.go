package main

import (
	"crypto/rand"
	"encoding/hex"
	"math"
	"strings"
	"time"
)

// GenerateID returns a random hex string of the given byte length
func GenerateID(byteLen int) string {
	b := make([]byte, byteLen)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// Clamp restricts v to [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Distance returns the distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// Normalize scales (dx, dy) to unit length; zero vectors default to +X
func Normalize(dx, dy float64) (float64, float64) {
	mag := math.Hypot(dx, dy)
	if mag == 0 {
		return 1, 0
	}
	return dx / mag, dy / mag
}

// nowSeconds returns wall-clock time as float seconds, the resolution used
// for round deadlines and action cooldowns
func nowSeconds() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func safeName(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "Player"
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen]
	}
	return name
}
