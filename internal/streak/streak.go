// ABOUTME: Consecutive-day logging streak keyed off day-rollover boundaries.
// ABOUTME: Same-day touches are idempotent; gaps reset the current streak to 1.
package streak

import (
	"github.com/nutrilog-app/nutrilog/internal/clock"
	"github.com/nutrilog-app/nutrilog/internal/models"
	"github.com/nutrilog-app/nutrilog/internal/notify"
	"github.com/nutrilog-app/nutrilog/internal/store"
)

// Tracker maintains the logging streak in the store.
type Tracker struct {
	store *store.Store
	clock clock.Clock
	hub   *notify.Hub
}

// New creates a streak tracker. The hub may be nil.
func New(s *store.Store, c clock.Clock, hub *notify.Hub) *Tracker {
	return &Tracker{store: s, clock: c, hub: hub}
}

// Current returns the stored streak without touching it.
func (t *Tracker) Current() models.StreakData {
	return store.Get(t.store, store.KeyStreakData, models.StreakData{})
}

// Touch records a qualifying log action for today. Calling it again the
// same day returns the state unchanged, so double invocation cannot inflate
// the streak. A touch the day after the last one increments; anything else
// (gap or first-ever call) resets the run to 1.
func (t *Tracker) Touch() models.StreakData {
	data := t.Current()
	today := clock.Today(t.clock)

	if data.LastLogDate == today {
		return data
	}

	if data.LastLogDate == clock.Yesterday(t.clock) {
		data.CurrentStreak++
	} else {
		data.CurrentStreak = 1
	}
	if data.CurrentStreak > data.LongestStreak {
		data.LongestStreak = data.CurrentStreak
	}
	data.LastLogDate = today

	store.Set(t.store, store.KeyStreakData, data)
	t.hub.Publish(notify.Event{Type: notify.EventStreak, Payload: data})

	return data
}
