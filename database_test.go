package main

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCreateAccountAndLookup(t *testing.T) {
	db := openTestDB(t)
	id, err := db.CreateAccount("alice", "hash123")
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	if id == 0 {
		t.Fatal("account id should be nonzero")
	}

	a, err := db.GetAccountByUsername("alice")
	if err != nil || a == nil {
		t.Fatalf("lookup by username: %v", err)
	}
	if a.ID != id || a.PassHash != "hash123" || a.IsGuest {
		t.Error("account fields mismatch")
	}

	byID, err := db.GetAccountByID(id)
	if err != nil || byID == nil || byID.Username != "alice" {
		t.Error("lookup by id should return the same account")
	}

	if missing, _ := db.GetAccountByUsername("nobody"); missing != nil {
		t.Error("unknown username should return nil, nil")
	}
}

func TestCreateGuest(t *testing.T) {
	db := openTestDB(t)
	id, err := db.CreateGuest("Guest_abc")
	if err != nil {
		t.Fatalf("create guest: %v", err)
	}
	a, _ := db.GetAccountByID(id)
	if a == nil || !a.IsGuest {
		t.Error("guest flag should be set")
	}
	stats, _ := db.GetStats(id)
	if stats == nil {
		t.Error("guest should get a stats row")
	}
}

func TestUsernameExists(t *testing.T) {
	db := openTestDB(t)
	db.CreateAccount("alice", "h")
	if ok, _ := db.UsernameExists("alice"); !ok {
		t.Error("existing username should report taken")
	}
	if ok, _ := db.UsernameExists("bob"); ok {
		t.Error("free username should not report taken")
	}
}

func TestUpdateStatsAfterGame(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.CreateAccount("alice", "h")

	if err := db.UpdateStatsAfterGame(id, 40, true, 120); err != nil {
		t.Fatalf("update stats: %v", err)
	}
	if err := db.UpdateStatsAfterGame(id, 25, false, 60); err != nil {
		t.Fatalf("update stats: %v", err)
	}

	s, _ := db.GetStats(id)
	if s.Games != 2 || s.Wins != 1 {
		t.Errorf("games=%d wins=%d, want 2/1", s.Games, s.Wins)
	}
	if s.BestScore != 40 {
		t.Errorf("best = %d, want 40 (MAX keeps the higher score)", s.BestScore)
	}
	if s.TotalScore != 65 {
		t.Errorf("total = %d, want 65", s.TotalScore)
	}
	if s.Playtime != 180 {
		t.Errorf("playtime = %v, want 180", s.Playtime)
	}
}

func TestCrowns(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.CreateAccount("alice", "h")

	db.AddCrowns(id, 100)
	ok, err := db.SpendCrowns(id, 60)
	if err != nil || !ok {
		t.Fatalf("spend within balance should succeed: %v", err)
	}
	ok, _ = db.SpendCrowns(id, 60)
	if ok {
		t.Error("overspend should be refused")
	}

	s, _ := db.GetStats(id)
	if s.Crowns != 40 {
		t.Errorf("crowns = %d, want 40", s.Crowns)
	}
}

func TestItems(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.CreateAccount("alice", "h")

	if has, _ := db.HasItem(id, "hat_cap"); has {
		t.Error("fresh account owns nothing")
	}
	db.AddItem(id, "hat_cap")
	db.AddItem(id, "hat_cap") // duplicate is a no-op
	db.AddItem(id, "trail_frost")

	if has, _ := db.HasItem(id, "hat_cap"); !has {
		t.Error("owned item should report true")
	}
	items, _ := db.GetItems(id)
	if len(items) != 2 {
		t.Errorf("items = %v, want 2 distinct", items)
	}
}

func TestAchievementsStorage(t *testing.T) {
	db := openTestDB(t)
	id, _ := db.CreateAccount("alice", "h")

	fresh, err := db.AddAchievement(id, "first_win")
	if err != nil || !fresh {
		t.Fatalf("first unlock should report new: %v", err)
	}
	again, _ := db.AddAchievement(id, "first_win")
	if again {
		t.Error("repeat unlock should report already held")
	}

	ids, _ := db.GetAchievements(id)
	if len(ids) != 1 || ids[0] != "first_win" {
		t.Errorf("achievements = %v", ids)
	}
}

func TestSettings(t *testing.T) {
	db := openTestDB(t)

	if v, err := db.GetSetting("missing"); err != nil || v != "" {
		t.Errorf("unset key = (%q, %v), want empty and nil", v, err)
	}
	db.SetSetting("k", "v1")
	db.SetSetting("k", "v2") // upsert
	if v, _ := db.GetSetting("k"); v != "v2" {
		t.Errorf("setting = %q, want v2", v)
	}
}
