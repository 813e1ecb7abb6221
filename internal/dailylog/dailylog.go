// ABOUTME: Daily log store for food, exercise, and water entries.
// ABOUTME: Owns the day-rollover transition that archives yesterday and resets today.
package dailylog

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/nutrilog-app/nutrilog/internal/clock"
	"github.com/nutrilog-app/nutrilog/internal/models"
	"github.com/nutrilog-app/nutrilog/internal/notify"
	"github.com/nutrilog-app/nutrilog/internal/store"
)

const (
	// Most archived days kept in food history.
	foodHistoryDays = 30

	// Most entries kept in the recent-foods list.
	recentFoodsCap = 30

	// Tighter caps applied when the store asks collections to shrink.
	reclaimRecentCap   = 10
	reclaimHistoryDays = 7
)

// Snapshot is the full current-day state carried on sync notifications.
type Snapshot struct {
	Date      string                 `json:"date"`
	Foods     []models.FoodEntry     `json:"foods"`
	Exercises []models.ExerciseEntry `json:"exercises"`
	Water     []models.WaterEntry    `json:"water"`
}

// Log owns the current day's food, exercise, and water logs.
type Log struct {
	store *store.Store
	clock clock.Clock
	hub   *notify.Hub
}

// New creates a daily log over the given store and clock. The hub may be
// nil when no sync listener is wired up. Registers the recent-foods list
// and food history as reclaimable collections.
func New(s *store.Store, c clock.Clock, hub *notify.Hub) *Log {
	l := &Log{store: s, clock: c, hub: hub}

	s.RegisterReclaimable(store.KeyRecentFoods, trimRecentFoods)
	s.RegisterReclaimable(store.KeyFoodHistory, trimFoodHistory)

	return l
}

// RolloverIfNeeded archives the previous day and resets today's logs when
// the stored date marker differs from the clock's today. Idempotent: calling
// it again on the same day is a no-op. Returns true if a rollover happened.
func (l *Log) RolloverIfNeeded() bool {
	today := clock.Today(l.clock)
	stored := store.Get(l.store, store.KeyCurrentDate, "")

	if stored == today {
		return false
	}

	if stored != "" {
		// Archive the outgoing day's food log under its own date,
		// skipping empty days.
		foods := store.Get(l.store, store.KeyFoodLog, []models.FoodEntry(nil))
		if len(foods) > 0 {
			history := store.Get(l.store, store.KeyFoodHistory, map[string][]models.FoodEntry{})
			history[stored] = foods
			pruneHistory(history, foodHistoryDays)
			store.Set(l.store, store.KeyFoodHistory, history)
		}

		store.Set(l.store, store.KeyFoodLog, []models.FoodEntry{})
		store.Set(l.store, store.KeyExerciseLog, []models.ExerciseEntry{})
		store.Set(l.store, store.KeyWaterLog, []models.WaterEntry{})
	}

	store.Set(l.store, store.KeyCurrentDate, today)
	return true
}

// Today returns the active day-key after rolling over if needed.
func (l *Log) Today() string {
	l.RolloverIfNeeded()
	return clock.Today(l.clock)
}

// Foods returns the current day's food log.
func (l *Log) Foods() []models.FoodEntry {
	l.RolloverIfNeeded()
	return store.Get(l.store, store.KeyFoodLog, []models.FoodEntry(nil))
}

// AddFood assigns an id, a timestamp, and, when missing, a meal type
// inferred from the current hour, then appends, persists, and returns the
// stored entry.
func (l *Log) AddFood(entry *models.FoodEntry) models.FoodEntry {
	l.RolloverIfNeeded()

	now := l.clock.Now()
	entry.Timestamp = now
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.MealType == "" {
		entry.MealType = models.MealTypeForHour(now.Hour())
	}

	foods := store.Get(l.store, store.KeyFoodLog, []models.FoodEntry(nil))
	foods = append(foods, *entry)
	store.Set(l.store, store.KeyFoodLog, foods)

	l.pushRecent(*entry)
	l.notifyDay(notify.EventFoodLog)

	return *entry
}

// DeleteFood removes an entry by id. Absent ids are a no-op, not an error,
// so a double-tapped delete in the UI cannot crash.
func (l *Log) DeleteFood(id uuid.UUID) bool {
	l.RolloverIfNeeded()

	foods := store.Get(l.store, store.KeyFoodLog, []models.FoodEntry(nil))
	for i, f := range foods {
		if f.ID == id {
			foods = append(foods[:i], foods[i+1:]...)
			store.Set(l.store, store.KeyFoodLog, foods)
			l.notifyDay(notify.EventFoodLog)
			return true
		}
	}
	return false
}

// UpdateFood merges a patch into the entry with the given id.
// Returns nil if the id is absent.
func (l *Log) UpdateFood(id uuid.UUID, patch models.FoodPatch) *models.FoodEntry {
	l.RolloverIfNeeded()

	foods := store.Get(l.store, store.KeyFoodLog, []models.FoodEntry(nil))
	for i := range foods {
		if foods[i].ID == id {
			patch.Apply(&foods[i])
			store.Set(l.store, store.KeyFoodLog, foods)
			l.notifyDay(notify.EventFoodLog)
			updated := foods[i].Clone()
			return &updated
		}
	}
	return nil
}

// Exercises returns the current day's exercise log.
func (l *Log) Exercises() []models.ExerciseEntry {
	l.RolloverIfNeeded()
	return store.Get(l.store, store.KeyExerciseLog, []models.ExerciseEntry(nil))
}

// AddExercise assigns an id and a timestamp, appends, persists, and returns
// the stored entry. No meal inference for exercise.
func (l *Log) AddExercise(entry *models.ExerciseEntry) models.ExerciseEntry {
	l.RolloverIfNeeded()

	entry.Timestamp = l.clock.Now()
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	exercises := store.Get(l.store, store.KeyExerciseLog, []models.ExerciseEntry(nil))
	exercises = append(exercises, *entry)
	store.Set(l.store, store.KeyExerciseLog, exercises)

	l.notifyDay(notify.EventExercise)

	return *entry
}

// DeleteExercise removes an entry by id; absent ids are a no-op.
func (l *Log) DeleteExercise(id uuid.UUID) bool {
	l.RolloverIfNeeded()

	exercises := store.Get(l.store, store.KeyExerciseLog, []models.ExerciseEntry(nil))
	for i, e := range exercises {
		if e.ID == id {
			exercises = append(exercises[:i], exercises[i+1:]...)
			store.Set(l.store, store.KeyExerciseLog, exercises)
			l.notifyDay(notify.EventExercise)
			return true
		}
	}
	return false
}

// UpdateExercise merges a patch into the entry with the given id.
// Returns nil if the id is absent.
func (l *Log) UpdateExercise(id uuid.UUID, patch models.ExercisePatch) *models.ExerciseEntry {
	l.RolloverIfNeeded()

	exercises := store.Get(l.store, store.KeyExerciseLog, []models.ExerciseEntry(nil))
	for i := range exercises {
		if exercises[i].ID == id {
			patch.Apply(&exercises[i])
			store.Set(l.store, store.KeyExerciseLog, exercises)
			l.notifyDay(notify.EventExercise)
			updated := exercises[i]
			return &updated
		}
	}
	return nil
}

// Water returns the current day's water log.
func (l *Log) Water() []models.WaterEntry {
	l.RolloverIfNeeded()
	return store.Get(l.store, store.KeyWaterLog, []models.WaterEntry(nil))
}

// AddWater appends a hydration event for the current day.
func (l *Log) AddWater(amountML float64) models.WaterEntry {
	l.RolloverIfNeeded()

	entry := models.WaterEntry{AmountML: amountML, Timestamp: l.clock.Now()}
	water := store.Get(l.store, store.KeyWaterLog, []models.WaterEntry(nil))
	water = append(water, entry)
	store.Set(l.store, store.KeyWaterLog, water)

	l.notifyDay(notify.EventWater)

	return entry
}

// ArchivedDay returns the archived food log for a past day-key, or nil if
// that day was never archived.
func (l *Log) ArchivedDay(dayKey string) []models.FoodEntry {
	l.RolloverIfNeeded()
	history := store.Get(l.store, store.KeyFoodHistory, map[string][]models.FoodEntry{})
	return history[dayKey]
}

// ArchivedDays returns the day-keys present in food history, oldest first.
func (l *Log) ArchivedDays() []string {
	l.RolloverIfNeeded()
	history := store.Get(l.store, store.KeyFoodHistory, map[string][]models.FoodEntry{})
	keys := make([]string, 0, len(history))
	for k := range history {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RecentFoods returns the recently-logged food templates, newest first.
func (l *Log) RecentFoods() []models.SavedFood {
	return store.Get(l.store, store.KeyRecentFoods, []models.SavedFood(nil))
}

// pushRecent records a template of the entry at the front of the recent
// list, deduplicating by name (case-insensitive) and capping the length.
func (l *Log) pushRecent(entry models.FoodEntry) {
	recents := store.Get(l.store, store.KeyRecentFoods, []models.SavedFood(nil))

	name := strings.ToLower(entry.Name)
	kept := make([]models.SavedFood, 0, len(recents)+1)
	kept = append(kept, models.SavedFromEntry(entry))
	for _, r := range recents {
		if strings.ToLower(r.Name) != name {
			kept = append(kept, r)
		}
	}
	if len(kept) > recentFoodsCap {
		kept = kept[:recentFoodsCap]
	}
	store.Set(l.store, store.KeyRecentFoods, kept)
}

// notifyDay publishes the full current-day snapshot. Fire-and-forget; a
// slow or failing listener never stalls the local write.
func (l *Log) notifyDay(t notify.EventType) {
	l.hub.Publish(notify.Event{Type: t, Payload: Snapshot{
		Date:      clock.Today(l.clock),
		Foods:     store.Get(l.store, store.KeyFoodLog, []models.FoodEntry(nil)),
		Exercises: store.Get(l.store, store.KeyExerciseLog, []models.ExerciseEntry(nil)),
		Water:     store.Get(l.store, store.KeyWaterLog, []models.WaterEntry(nil)),
	}})
}

// pruneHistory keeps only the most recent maxDays day-keys in sorted key
// order, which is chronological for YYYY-MM-DD keys.
func pruneHistory(history map[string][]models.FoodEntry, maxDays int) {
	if len(history) <= maxDays {
		return
	}
	keys := make([]string, 0, len(history))
	for k := range history {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys[:len(keys)-maxDays] {
		delete(history, k)
	}
}
