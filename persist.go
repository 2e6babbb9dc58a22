package main

import "log"

// GameResult is one player's final standing, captured under the room lock
// at game over and persisted asynchronously
type GameResult struct {
	AccountID int64
	PlayerID  string
	Name      string
	Score     int
	Won       bool
	Playtime  float64
}

// persistGameOverLocked snapshots final scores and hands them to the data
// layer off the room lock. Bots and guests without accounts are skipped.
func (r *Room) persistGameOverLocked() {
	if r.db == nil {
		return
	}
	playtime := 0.0
	if r.gameStartedAt > 0 {
		playtime = nowSeconds() - r.gameStartedAt
	}

	best := 0
	for _, p := range r.Players {
		if p.Score > best {
			best = p.Score
		}
	}

	var results []GameResult
	clients := make(map[string]Broadcaster)
	for _, p := range r.Players {
		if p.Bot || p.AccountID == 0 {
			continue
		}
		results = append(results, GameResult{
			AccountID: p.AccountID,
			PlayerID:  p.ID,
			Name:      p.Name,
			Score:     p.Score,
			Won:       p.Score == best && best > 0,
			Playtime:  playtime,
		})
		if c, ok := r.clients[p.ID]; ok {
			clients[p.ID] = c
		}
	}

	if r.analytics != nil {
		r.analytics.Track(EvtGameOver, 0, r.Code, "")
	}
	if len(results) == 0 {
		return
	}

	db := r.db
	analytics := r.analytics
	go func() {
		for _, res := range results {
			if err := db.UpdateStatsAfterGame(res.AccountID, res.Score, res.Won, res.Playtime); err != nil {
				log.Printf("persist stats for account %d: %v", res.AccountID, err)
				continue
			}
			crowns := CrownsForGame(res.Score, res.Won)
			if crowns > 0 {
				if err := db.AddCrowns(res.AccountID, crowns); err != nil {
					log.Printf("award crowns for account %d: %v", res.AccountID, err)
				}
			}
			unlocked := CheckAchievements(db, res.AccountID)
			client, hasClient := clients[res.PlayerID]
			for _, a := range unlocked {
				if analytics != nil {
					analytics.Track(EvtAchievement, res.AccountID, "", a.ID)
				}
				if hasClient {
					client.SendJSON(Envelope{T: MsgAchievement, Data: AchievementMsg{ID: a.ID, Name: a.Name}})
				}
			}
		}
	}()
}
