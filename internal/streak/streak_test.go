// ABOUTME: Tests for the streak tracker.
// ABOUTME: Validates same-day idempotence, consecutive growth, and gap resets.
package streak

import (
	"testing"
	"time"

	"github.com/nutrilog-app/nutrilog/internal/clock"
	"github.com/nutrilog-app/nutrilog/internal/store"
)

func setupStreak(t *testing.T) (*Tracker, *clock.Fixed) {
	t.Helper()
	s, err := store.OpenInMemory()
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	c := clock.NewFixed(time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local))
	return New(s, c, nil), c
}

func TestFirstTouchStartsAtOne(t *testing.T) {
	tr, _ := setupStreak(t)

	data := tr.Touch()
	if data.CurrentStreak != 1 || data.LongestStreak != 1 {
		t.Errorf("first touch = %+v, want streak 1/1", data)
	}
	if data.LastLogDate != "2024-03-01" {
		t.Errorf("last log date = %q", data.LastLogDate)
	}
}

func TestSameDayTouchIsIdempotent(t *testing.T) {
	tr, _ := setupStreak(t)

	first := tr.Touch()
	second := tr.Touch()
	if second.CurrentStreak != first.CurrentStreak {
		t.Errorf("same-day touch changed streak: %d -> %d", first.CurrentStreak, second.CurrentStreak)
	}
}

func TestConsecutiveDaysIncrement(t *testing.T) {
	tr, c := setupStreak(t)

	for day := 0; day < 3; day++ {
		tr.Touch()
		c.AdvanceDays(1)
	}
	c.AdvanceDays(-1) // back to the last touched day

	if got := tr.Current().CurrentStreak; got != 3 {
		t.Errorf("streak after D, D+1, D+2 = %d, want 3", got)
	}
}

func TestGapResetsToOne(t *testing.T) {
	tr, c := setupStreak(t)

	tr.Touch()
	c.AdvanceDays(5)
	data := tr.Touch()

	if data.CurrentStreak != 1 {
		t.Errorf("streak after 5-day gap = %d, want 1", data.CurrentStreak)
	}
	if data.LongestStreak != 1 {
		t.Errorf("longest = %d, want 1", data.LongestStreak)
	}
}

func TestLongestStreakPreserved(t *testing.T) {
	tr, c := setupStreak(t)

	for day := 0; day < 4; day++ {
		tr.Touch()
		c.AdvanceDays(1)
	}
	c.AdvanceDays(3) // break the run
	data := tr.Touch()

	if data.CurrentStreak != 1 {
		t.Errorf("current after break = %d, want 1", data.CurrentStreak)
	}
	if data.LongestStreak != 4 {
		t.Errorf("longest = %d, want 4", data.LongestStreak)
	}
}
