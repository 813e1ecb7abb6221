// ABOUTME: Tracker facade wiring the store, clock, daily log, history, goals, and streak.
// ABOUTME: Frontends (CLI, MCP) call this; every mutation re-records today's summary.
package tracker

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nutrilog-app/nutrilog/internal/backup"
	"github.com/nutrilog-app/nutrilog/internal/clock"
	"github.com/nutrilog-app/nutrilog/internal/dailylog"
	"github.com/nutrilog-app/nutrilog/internal/goals"
	"github.com/nutrilog-app/nutrilog/internal/history"
	"github.com/nutrilog-app/nutrilog/internal/models"
	"github.com/nutrilog-app/nutrilog/internal/notify"
	"github.com/nutrilog-app/nutrilog/internal/nutrition"
	"github.com/nutrilog-app/nutrilog/internal/streak"
	"github.com/nutrilog-app/nutrilog/internal/store"
)

// DaySummary is the aggregated view of the current day.
type DaySummary struct {
	Date      string                 `json:"date"`
	Eaten     float64                `json:"eaten"`
	Burned    float64                `json:"burned"`
	Net       float64                `json:"net"`
	Target    int                    `json:"target"`
	Remaining float64                `json:"remaining"`
	Macros    nutrition.Macros       `json:"macros"`
	Micros    models.Micronutrients  `json:"micros"`
	HasMicros bool                   `json:"has_micros"`
	WaterML   float64                `json:"water_ml"`
	Foods     []models.FoodEntry     `json:"foods"`
	Exercises []models.ExerciseEntry `json:"exercises"`
}

// Tracker is the single entry point frontends use.
type Tracker struct {
	store   *store.Store
	clock   clock.Clock
	hub     *notify.Hub
	log     *dailylog.Log
	trend   *history.History
	month   *history.History
	weights *history.WeightLog
	streak  *streak.Tracker
	backup  *backup.Codec
}

// New composes a tracker over the given store, clock, and hub. An explicit
// store is passed in rather than any process-wide singleton so tests can
// instantiate isolated trackers.
func New(s *store.Store, c clock.Clock, hub *notify.Hub) *Tracker {
	return &Tracker{
		store:   s,
		clock:   c,
		hub:     hub,
		log:     dailylog.New(s, c, hub),
		trend:   history.New(s, c, history.TrendWindow),
		month:   history.New(s, c, history.CalendarWindow),
		weights: history.NewWeightLog(s, c),
		streak:  streak.New(s, c, hub),
		backup:  backup.New(s, nil),
	}
}

// DailyLog exposes the underlying daily log for callers that need raw
// access (rollover checks, archived days).
func (t *Tracker) DailyLog() *dailylog.Log { return t.log }

// Streak exposes the streak tracker.
func (t *Tracker) Streak() *streak.Tracker { return t.streak }

// Weights exposes the weight log.
func (t *Tracker) Weights() *history.WeightLog { return t.weights }

// Backup exposes the backup codec.
func (t *Tracker) Backup() *backup.Codec { return t.backup }

// LogFood appends a food entry, refreshes today's history summary, and
// touches the streak.
func (t *Tracker) LogFood(entry *models.FoodEntry) models.FoodEntry {
	stored := t.log.AddFood(entry)
	t.recordToday()
	t.streak.Touch()
	return stored
}

// DeleteFood removes by id and refreshes the summary. Absent ids no-op.
func (t *Tracker) DeleteFood(id uuid.UUID) bool {
	ok := t.log.DeleteFood(id)
	if ok {
		t.recordToday()
	}
	return ok
}

// UpdateFood patches by id and refreshes the summary. Nil when absent.
func (t *Tracker) UpdateFood(id uuid.UUID, patch models.FoodPatch) *models.FoodEntry {
	updated := t.log.UpdateFood(id, patch)
	if updated != nil {
		t.recordToday()
	}
	return updated
}

// LogExercise appends an exercise entry, refreshes the summary, and
// touches the streak.
func (t *Tracker) LogExercise(entry *models.ExerciseEntry) models.ExerciseEntry {
	stored := t.log.AddExercise(entry)
	t.recordToday()
	t.streak.Touch()
	return stored
}

// DeleteExercise removes by id and refreshes the summary.
func (t *Tracker) DeleteExercise(id uuid.UUID) bool {
	ok := t.log.DeleteExercise(id)
	if ok {
		t.recordToday()
	}
	return ok
}

// LogWater appends a hydration event and touches the streak.
func (t *Tracker) LogWater(amountML float64) models.WaterEntry {
	entry := t.log.AddWater(amountML)
	t.streak.Touch()
	return entry
}

// LogWeight records today's body weight and touches the streak.
func (t *Tracker) LogWeight(weight float64, unit string) models.WeightEntry {
	entry := t.weights.Record(weight, unit)
	t.hub.Publish(notify.Event{Type: notify.EventWeight, Payload: entry})
	t.streak.Touch()
	return entry
}

// TodaySummary aggregates the current day across food, exercise, and water.
func (t *Tracker) TodaySummary() DaySummary {
	foods := t.log.Foods()
	exercises := t.log.Exercises()
	target := t.DailyTarget()

	return DaySummary{
		Date:      t.log.Today(),
		Eaten:     nutrition.CaloriesEaten(foods),
		Burned:    nutrition.CaloriesBurned(exercises),
		Net:       nutrition.Net(foods, exercises),
		Target:    target,
		Remaining: nutrition.Remaining(target, foods, exercises),
		Macros:    nutrition.TotalMacros(foods),
		Micros:    nutrition.TotalMicros(foods),
		HasMicros: nutrition.HasMicroData(foods),
		WaterML:   nutrition.TotalWater(t.log.Water()),
		Foods:     foods,
		Exercises: exercises,
	}
}

// Trend returns the 7-day graph series.
func (t *Tracker) Trend() history.Series {
	return t.trend.GraphSeries(history.TrendWindow)
}

// MonthStatus classifies each of the most recent 30 days.
func (t *Tracker) MonthStatus() map[string]history.DayStatus {
	out := make(map[string]history.DayStatus, history.CalendarWindow)
	for i := 0; i < history.CalendarWindow; i++ {
		key := clock.DaysAgo(t.clock, i)
		out[key] = t.month.CalendarStatus(key)
	}
	return out
}

// DayStatus classifies a single historical day.
func (t *Tracker) DayStatus(dayKey string) history.DayStatus {
	return t.month.CalendarStatus(dayKey)
}

// Profile returns the stored user profile, with ok=false before onboarding.
func (t *Tracker) Profile() (models.UserProfile, bool) {
	var zero models.UserProfile
	p := store.Get(t.store, store.KeyUserProfile, zero)
	return p, p != zero
}

// SetProfile stores the profile and recomputes the daily target, macro
// gram targets (preserving the chosen split), and micronutrient RDAs.
func (t *Tracker) SetProfile(p models.UserProfile) int {
	store.Set(t.store, store.KeyUserProfile, p)

	target := goals.TargetFromProfile(p)
	store.Set(t.store, store.KeyDailyTarget, target)

	macro := t.MacroGoals()
	split := macro.Percentages
	if split.Total() != 100 {
		split = goals.Presets["balanced"]
		macro.Preset = "balanced"
	}
	recomputed := goals.MacroGrams(target, split)
	recomputed.Preset = macro.Preset
	if recomputed.Preset == "" {
		recomputed.Preset = "balanced"
	}
	store.Set(t.store, store.KeyMacroGoals, recomputed)

	micro := goals.MicronutrientTargets(p)
	micro.Overrides = t.MicronutrientGoals().Overrides
	store.Set(t.store, store.KeyMicronutrientGoals, micro)

	t.hub.Publish(notify.Event{Type: notify.EventProfile, Payload: p})
	t.recordToday()
	return target
}

// DailyTarget returns the stored calorie target, zero before onboarding.
func (t *Tracker) DailyTarget() int {
	return store.Get(t.store, store.KeyDailyTarget, 0)
}

// SetDailyTarget overrides the stored target directly.
func (t *Tracker) SetDailyTarget(target int) {
	store.Set(t.store, store.KeyDailyTarget, target)
	t.recordToday()
}

// MacroGoals returns the stored macro gram targets.
func (t *Tracker) MacroGoals() models.MacroGoals {
	return store.Get(t.store, store.KeyMacroGoals, models.MacroGoals{})
}

// SetMacroSplit validates and applies a custom percentage split against the
// current daily target.
func (t *Tracker) SetMacroSplit(split models.MacroSplit) (models.MacroGoals, error) {
	if err := goals.ValidateSplit(split); err != nil {
		return models.MacroGoals{}, err
	}
	g := goals.MacroGrams(t.DailyTarget(), split)
	store.Set(t.store, store.KeyMacroGoals, g)
	return g, nil
}

// SetMacroPreset applies a named preset split.
func (t *Tracker) SetMacroPreset(preset string) (models.MacroGoals, error) {
	g, err := goals.MacroGramsPreset(t.DailyTarget(), preset)
	if err != nil {
		return models.MacroGoals{}, err
	}
	store.Set(t.store, store.KeyMacroGoals, g)
	return g, nil
}

// MicronutrientGoals returns the stored RDA targets and overrides.
func (t *Tracker) MicronutrientGoals() models.MicronutrientGoals {
	return store.Get(t.store, store.KeyMicronutrientGoals, models.MicronutrientGoals{})
}

// OverrideMicronutrient sets a per-key user override on top of the derived
// targets.
func (t *Tracker) OverrideMicronutrient(key string, value float64) bool {
	if !models.IsValidNutrientKey(key) {
		return false
	}
	g := t.MicronutrientGoals()
	if g.Overrides == nil {
		g.Overrides = map[string]float64{}
	}
	g.Overrides[key] = value
	return store.Set(t.store, store.KeyMicronutrientGoals, g)
}

// FavoriteFoods returns the favorites list.
func (t *Tracker) FavoriteFoods() []models.SavedFood {
	return store.Get(t.store, store.KeyFavoriteFoods, []models.SavedFood(nil))
}

// ToggleFavoriteFood adds the food to favorites, or removes it if a
// favorite with the same name (case-insensitive) already exists. Returns
// true when the food is a favorite after the call.
func (t *Tracker) ToggleFavoriteFood(food models.SavedFood) bool {
	favorites := t.FavoriteFoods()
	name := strings.ToLower(food.Name)

	for i, f := range favorites {
		if strings.ToLower(f.Name) == name {
			favorites = append(favorites[:i], favorites[i+1:]...)
			store.Set(t.store, store.KeyFavoriteFoods, favorites)
			t.hub.Publish(notify.Event{Type: notify.EventFavorites, Payload: favorites})
			return false
		}
	}

	favorites = append(favorites, food)
	store.Set(t.store, store.KeyFavoriteFoods, favorites)
	t.hub.Publish(notify.Event{Type: notify.EventFavorites, Payload: favorites})
	return true
}

// RecentFoods returns recently-logged food templates, newest first.
func (t *Tracker) RecentFoods() []models.SavedFood {
	return t.log.RecentFoods()
}

// Preferences returns the stored preferences.
func (t *Tracker) Preferences() models.Preferences {
	return store.Get(t.store, store.KeyPreferences, models.Preferences{})
}

// SetPreferences stores the preferences wholesale.
func (t *Tracker) SetPreferences(p models.Preferences) bool {
	return store.Set(t.store, store.KeyPreferences, p)
}

// OnboardingComplete reports whether onboarding has finished.
func (t *Tracker) OnboardingComplete() bool {
	return store.Get(t.store, store.KeyOnboardingComplete, false)
}

// MarkOnboardingComplete flips the onboarding flag.
func (t *Tracker) MarkOnboardingComplete() {
	store.Set(t.store, store.KeyOnboardingComplete, true)
}

// LastSyncTime returns when an external sync listener last reported
// completion, or zero time if never.
func (t *Tracker) LastSyncTime() time.Time {
	raw := store.Get(t.store, store.KeyLastSyncTime, "")
	if raw == "" {
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// SetLastSyncTime records a sync completion instant. Called by external
// sync integrations, not by the core itself.
func (t *Tracker) SetLastSyncTime(ts time.Time) {
	store.Set(t.store, store.KeyLastSyncTime, ts.Format(time.RFC3339))
}

// recordToday upserts today's summary into the rolling history. Both
// windows share the stored map; recording through the wider one keeps the
// calendar view populated while the trend view reads its own span.
func (t *Tracker) recordToday() {
	foods := t.log.Foods()
	exercises := t.log.Exercises()
	summary := models.DailySummary{
		Eaten:  nutrition.CaloriesEaten(foods),
		Burned: nutrition.CaloriesBurned(exercises),
		Target: t.DailyTarget(),
	}
	t.month.RecordToday(summary)
	t.hub.Publish(notify.Event{Type: notify.EventHistory, Payload: summary})
}
