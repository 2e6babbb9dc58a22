package main

// Achievement definitions
type AchievementDef struct {
	ID          string
	Name        string
	Description string
}

var Achievements = []AchievementDef{
	{"first_win", "First Win", "Win your first game"},
	{"party_animal", "Party Animal", "Play 10 games"},
	{"champion", "Champion", "Win 10 games"},
	{"unstoppable", "Unstoppable", "Win 50 games"},
	{"high_roller", "High Roller", "Score 200 points in a single game"},
	{"point_hoarder", "Point Hoarder", "Reach 2000 total points"},
	{"marathon", "Marathon", "Play for 1 hour total"},
	{"regular", "Regular", "Play 50 games"},
}

// CheckAchievements checks if any new achievements should be unlocked for
// an account. Returns the newly unlocked definitions.
func CheckAchievements(db *DB, accountID int64) []AchievementDef {
	if db == nil {
		return nil
	}

	stats, err := db.GetStats(accountID)
	if err != nil || stats == nil {
		return nil
	}

	existing, err := db.GetAchievements(accountID)
	if err != nil {
		return nil
	}
	has := make(map[string]bool, len(existing))
	for _, a := range existing {
		has[a] = true
	}

	var unlocked []AchievementDef

	check := func(id string) bool {
		if has[id] {
			return false
		}
		switch id {
		case "first_win":
			return stats.Wins >= 1
		case "party_animal":
			return stats.Games >= 10
		case "champion":
			return stats.Wins >= 10
		case "unstoppable":
			return stats.Wins >= 50
		case "high_roller":
			return stats.BestScore >= 200
		case "point_hoarder":
			return stats.TotalScore >= 2000
		case "marathon":
			return stats.Playtime >= 3600
		case "regular":
			return stats.Games >= 50
		}
		return false
	}

	for _, def := range Achievements {
		if check(def.ID) {
			if newlyUnlocked, err := db.AddAchievement(accountID, def.ID); err == nil && newlyUnlocked {
				unlocked = append(unlocked, def)
			}
		}
	}

	return unlocked
}
