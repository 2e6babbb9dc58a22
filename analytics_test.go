package main

import "testing"

func TestAnalyticsFlushOnStop(t *testing.T) {
	db := openTestDB(t)
	a := NewAnalytics(db)

	a.Track(EvtGameStart, 1, "ABCD", "")
	a.Track(EvtRoundEnd, 1, "ABCD", `{"round":"maze"}`)
	a.Track(EvtSessionStart, 0, "", "")
	a.Stop() // drains and flushes the batch

	counts, err := a.EventCounts(1)
	if err != nil {
		t.Fatalf("event counts: %v", err)
	}
	if counts[EvtGameStart] != 1 || counts[EvtRoundEnd] != 1 || counts[EvtSessionStart] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestAnalyticsDAUCount(t *testing.T) {
	db := openTestDB(t)
	a := NewAnalytics(db)
	a.Track(EvtSessionStart, 7, "", "")
	a.Track(EvtGameOver, 7, "", "") // same account counted once
	a.Track(EvtSessionStart, 8, "", "")
	a.Track(EvtSessionStart, 0, "", "") // anonymous, not counted
	a.Stop()

	dau, err := a.DAUCount()
	if err != nil {
		t.Fatalf("dau: %v", err)
	}
	if dau != 2 {
		t.Errorf("dau = %d, want 2", dau)
	}
}

func TestAnalyticsLiveMetrics(t *testing.T) {
	a := NewAnalytics(nil)
	defer a.Stop()
	a.SetConcurrentPeers(12)
	a.SetActiveRooms(3)
	peers, rooms := a.GetLiveMetrics()
	if peers != 12 || rooms != 3 {
		t.Errorf("metrics = (%d, %d), want (12, 3)", peers, rooms)
	}
}

func TestAnalyticsTrackNeverBlocks(t *testing.T) {
	a := NewAnalytics(nil)
	defer a.Stop()
	// Far beyond channel capacity; overflow is dropped, not blocked on
	for i := 0; i < 5000; i++ {
		a.Track(EvtSessionStart, 0, "", "")
	}
}
