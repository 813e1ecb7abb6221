// ABOUTME: Tests for the rolling history store.
// ABOUTME: Validates window pruning, graph alignment, and calendar status bands.
package history

import (
	"testing"
	"time"

	"github.com/nutrilog-app/nutrilog/internal/clock"
	"github.com/nutrilog-app/nutrilog/internal/models"
	"github.com/nutrilog-app/nutrilog/internal/store"
)

func setupHistory(t *testing.T, window int) (*History, *clock.Fixed) {
	t.Helper()
	s, err := store.OpenInMemory()
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	c := clock.NewFixed(time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local))
	return New(s, c, window), c
}

func TestRecordTodayOverwrites(t *testing.T) {
	h, _ := setupHistory(t, TrendWindow)

	h.RecordToday(models.DailySummary{Eaten: 1000, Target: 2000})
	h.RecordToday(models.DailySummary{Eaten: 1500, Target: 2000})

	got, ok := h.Day("2024-03-01")
	if !ok || got.Eaten != 1500 {
		t.Errorf("today's summary = %+v (ok=%v), want eaten 1500", got, ok)
	}
	if len(h.All()) != 1 {
		t.Errorf("same-day record must overwrite, not append")
	}
}

func TestWindowBound(t *testing.T) {
	h, c := setupHistory(t, TrendWindow)

	for i := 0; i < TrendWindow+5; i++ {
		h.RecordToday(models.DailySummary{Eaten: float64(i), Target: 2000})
		c.AdvanceDays(1)
	}

	all := h.All()
	if len(all) != TrendWindow {
		t.Fatalf("history size = %d, want %d", len(all), TrendWindow)
	}
	// Oldest retained day should be the (TrendWindow)th most recent insert.
	if _, ok := all["2024-03-05"]; !ok {
		t.Errorf("expected 2024-03-05 retained, have %v", all)
	}
	if _, ok := all["2024-03-04"]; ok {
		t.Error("2024-03-04 should have been pruned")
	}
}

func TestGraphSeriesZeroFillsAndOrders(t *testing.T) {
	h, c := setupHistory(t, TrendWindow)

	h.RecordToday(models.DailySummary{Eaten: 1800, Burned: 200, Target: 2000})
	c.AdvanceDays(2) // skip a day entirely
	h.RecordToday(models.DailySummary{Eaten: 2100, Target: 2000})

	s := h.GraphSeries(3)
	if len(s.Eaten) != 3 || len(s.Labels) != 3 || len(s.Target) != 3 {
		t.Fatalf("series lengths mismatched: %+v", s)
	}
	if s.Days[0] != "2024-03-01" || s.Days[2] != "2024-03-03" {
		t.Errorf("series must be chronological: %v", s.Days)
	}
	if s.Eaten[0] != 1800 || s.Eaten[1] != 0 || s.Eaten[2] != 2100 {
		t.Errorf("eaten series = %v", s.Eaten)
	}
	if s.Burned[0] != 200 || s.Target[1] != 0 {
		t.Errorf("absent days must be zero-filled: burned=%v target=%v", s.Burned, s.Target)
	}
	if s.Labels[0] == "" {
		t.Error("weekday labels must be populated")
	}
}

func TestCalendarStatusBand(t *testing.T) {
	h, _ := setupHistory(t, CalendarWindow)

	cases := []struct {
		net  float64
		want DayStatus
	}{
		{1950, StatusPerfect}, // |diff| = 50, boundary inclusive
		{2050, StatusPerfect},
		{1948, StatusUnder},
		{2052, StatusOver},
		{2000, StatusPerfect},
	}
	for _, tc := range cases {
		h.RecordToday(models.DailySummary{Eaten: tc.net, Target: 2000})
		if got := h.CalendarStatus("2024-03-01"); got != tc.want {
			t.Errorf("net %.0f vs target 2000: status = %s, want %s", tc.net, got, tc.want)
		}
	}

	if got := h.CalendarStatus("1999-01-01"); got != StatusNoData {
		t.Errorf("absent day status = %s, want %s", got, StatusNoData)
	}
}

func TestWeightLogReplaceAndCap(t *testing.T) {
	s, err := store.OpenInMemory()
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	c := clock.NewFixed(time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local))
	w := NewWeightLog(s, c)

	w.Record(180, "lbs")
	w.Record(179.5, "lbs") // same day: replace
	if entries := w.Entries(); len(entries) != 1 || entries[0].Weight != 179.5 {
		t.Fatalf("same-day record must replace: %+v", entries)
	}

	for i := 0; i < weightLogCap+10; i++ {
		c.AdvanceDays(1)
		w.Record(179-float64(i)*0.1, "lbs")
	}
	entries := w.Entries()
	if len(entries) != weightLogCap {
		t.Errorf("weight log size = %d, want %d", len(entries), weightLogCap)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Date >= entries[i].Date {
			t.Fatal("entries must be sorted oldest first")
		}
	}

	latest, ok := w.Latest()
	if !ok || latest.Date != clock.Today(c) {
		t.Errorf("latest = %+v (ok=%v)", latest, ok)
	}
}
