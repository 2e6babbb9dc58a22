package main

import (
	"math"
	"testing"
)

func TestGenerateIDLength(t *testing.T) {
	if got := len(GenerateID(8)); got != 16 {
		t.Errorf("GenerateID(8) length = %d, want 16", got)
	}
	if got := len(GenerateID(4)); got != 8 {
		t.Errorf("GenerateID(4) length = %d, want 8", got)
	}
}

func TestGenerateIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateID(8)
		if seen[id] {
			t.Fatalf("duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("value in range should pass through")
	}
	if Clamp(-1, 0, 10) != 0 {
		t.Error("value below min should clamp to min")
	}
	if Clamp(11, 0, 10) != 10 {
		t.Error("value above max should clamp to max")
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Errorf("Distance(0,0,3,4) = %v, want 5", d)
	}
	if d := Distance(1, 1, 1, 1); d != 0 {
		t.Errorf("Distance of same point = %v, want 0", d)
	}
}

func TestNormalize(t *testing.T) {
	dx, dy := Normalize(3, 4)
	if math.Abs(dx-0.6) > 1e-9 || math.Abs(dy-0.8) > 1e-9 {
		t.Errorf("Normalize(3,4) = (%v, %v), want (0.6, 0.8)", dx, dy)
	}

	// Zero vector defaults to +X
	dx, dy = Normalize(0, 0)
	if dx != 1 || dy != 0 {
		t.Errorf("Normalize(0,0) = (%v, %v), want (1, 0)", dx, dy)
	}
}

func TestSafeName(t *testing.T) {
	if safeName("  Alice  ") != "Alice" {
		t.Error("whitespace should be trimmed")
	}
	if safeName("") != "Player" {
		t.Error("empty name should fall back to Player")
	}
	if safeName("   ") != "Player" {
		t.Error("blank name should fall back to Player")
	}
	long := safeName("abcdefghijklmnopqrstuvwxyz")
	if len(long) != maxNameLen {
		t.Errorf("long name length = %d, want %d", len(long), maxNameLen)
	}
}
