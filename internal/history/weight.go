// ABOUTME: Weight log: one entry per day, replaced on rewrite, pruned to 90 entries.
// ABOUTME: Uses the same sorted day-key pruning as the summary history.
package history

import (
	"sort"

	"github.com/nutrilog-app/nutrilog/internal/clock"
	"github.com/nutrilog-app/nutrilog/internal/models"
	"github.com/nutrilog-app/nutrilog/internal/store"
)

// Most weight entries retained, pruned oldest-first by date.
const weightLogCap = 90

// WeightLog stores body-weight measurements keyed by day.
type WeightLog struct {
	store *store.Store
	clock clock.Clock
}

// NewWeightLog creates a weight log over the given store and clock.
func NewWeightLog(s *store.Store, c clock.Clock) *WeightLog {
	return &WeightLog{store: s, clock: c}
}

// Record writes today's weight. A second write on the same day replaces the
// existing entry rather than appending.
func (w *WeightLog) Record(weight float64, unit string) models.WeightEntry {
	entry := models.WeightEntry{
		Date:   clock.Today(w.clock),
		Weight: weight,
		Unit:   unit,
	}

	entries := w.Entries()
	replaced := false
	for i := range entries {
		if entries[i].Date == entry.Date {
			entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Date < entries[j].Date })
	if len(entries) > weightLogCap {
		entries = entries[len(entries)-weightLogCap:]
	}

	store.Set(w.store, store.KeyWeightLog, entries)
	return entry
}

// Entries returns the weight history, oldest first.
func (w *WeightLog) Entries() []models.WeightEntry {
	return store.Get(w.store, store.KeyWeightLog, []models.WeightEntry(nil))
}

// Latest returns the most recent entry, with ok=false when empty.
func (w *WeightLog) Latest() (models.WeightEntry, bool) {
	entries := w.Entries()
	if len(entries) == 0 {
		return models.WeightEntry{}, false
	}
	return entries[len(entries)-1], true
}
