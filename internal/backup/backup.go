// ABOUTME: Backup codec: exports the entire tracker state to one document.
// ABOUTME: Imports are validated, field-by-field, best-effort, and never abort midway.
package backup

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nutrilog-app/nutrilog/internal/models"
	"github.com/nutrilog-app/nutrilog/internal/store"
)

// Version is the current backup document version.
const Version = "1.0.0"

// Daily target sanity bounds for import validation.
const (
	minDailyTarget = 100
	maxDailyTarget = 10000
)

// Document is the full export format. Pointer and map/slice fields are nil
// when absent from an imported document, which is how per-field presence is
// detected.
type Document struct {
	ExportDate string `json:"export_date" yaml:"export_date"`
	Version    string `json:"version" yaml:"version"`

	UserProfile        *models.UserProfile             `json:"user_profile,omitempty" yaml:"user_profile,omitempty"`
	DailyTarget        *int                            `json:"daily_target,omitempty" yaml:"daily_target,omitempty"`
	MacroGoals         *models.MacroGoals              `json:"macro_goals,omitempty" yaml:"macro_goals,omitempty"`
	MicronutrientGoals *models.MicronutrientGoals      `json:"micronutrient_goals,omitempty" yaml:"micronutrient_goals,omitempty"`
	Preferences        *models.Preferences             `json:"preferences,omitempty" yaml:"preferences,omitempty"`
	FoodLog            []models.FoodEntry              `json:"food_log,omitempty" yaml:"food_log,omitempty"`
	ExerciseLog        []models.ExerciseEntry          `json:"exercise_log,omitempty" yaml:"exercise_log,omitempty"`
	WeeklyHistory      map[string]models.DailySummary  `json:"weekly_history,omitempty" yaml:"weekly_history,omitempty"`
	FoodHistory        map[string][]models.FoodEntry   `json:"food_history,omitempty" yaml:"food_history,omitempty"`
	WaterLog           []models.WaterEntry             `json:"water_log,omitempty" yaml:"water_log,omitempty"`
	RecentFoods        []models.SavedFood              `json:"recent_foods,omitempty" yaml:"recent_foods,omitempty"`
	FavoriteFoods      []models.SavedFood              `json:"favorite_foods,omitempty" yaml:"favorite_foods,omitempty"`
	WeightLog          []models.WeightEntry            `json:"weight_log,omitempty" yaml:"weight_log,omitempty"`
	StreakData         *models.StreakData              `json:"streak_data,omitempty" yaml:"streak_data,omitempty"`
}

// Result is the outcome of validating an import document.
type Result struct {
	Valid    bool     `json:"valid"`
	Message  string   `json:"message"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// ImportResult reports which fields were actually written.
type ImportResult struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Imported []string `json:"imported"`
	Skipped  []string `json:"skipped,omitempty"`
}

// Codec reads and writes the whole tracker state.
type Codec struct {
	store *store.Store
	now   func() time.Time
}

// New creates a backup codec. now is injectable for tests; nil means
// time.Now.
func New(s *store.Store, now func() time.Time) *Codec {
	if now == nil {
		now = time.Now
	}
	return &Codec{store: s, now: now}
}

// Export assembles one document containing every entity by value.
func (c *Codec) Export() Document {
	doc := Document{
		ExportDate: c.now().Format(time.RFC3339),
		Version:    Version,
	}

	if p, ok := getPresent[models.UserProfile](c.store, store.KeyUserProfile); ok {
		doc.UserProfile = &p
	}
	if t, ok := getPresent[int](c.store, store.KeyDailyTarget); ok {
		doc.DailyTarget = &t
	}
	if g, ok := getPresent[models.MacroGoals](c.store, store.KeyMacroGoals); ok {
		doc.MacroGoals = &g
	}
	if g, ok := getPresent[models.MicronutrientGoals](c.store, store.KeyMicronutrientGoals); ok {
		doc.MicronutrientGoals = &g
	}
	if p, ok := getPresent[models.Preferences](c.store, store.KeyPreferences); ok {
		doc.Preferences = &p
	}
	if s, ok := getPresent[models.StreakData](c.store, store.KeyStreakData); ok {
		doc.StreakData = &s
	}
	doc.FoodLog = store.Get(c.store, store.KeyFoodLog, []models.FoodEntry(nil))
	doc.ExerciseLog = store.Get(c.store, store.KeyExerciseLog, []models.ExerciseEntry(nil))
	doc.WeeklyHistory = store.Get(c.store, store.KeyWeeklyHistory, map[string]models.DailySummary(nil))
	doc.FoodHistory = store.Get(c.store, store.KeyFoodHistory, map[string][]models.FoodEntry(nil))
	doc.WaterLog = store.Get(c.store, store.KeyWaterLog, []models.WaterEntry(nil))
	doc.RecentFoods = store.Get(c.store, store.KeyRecentFoods, []models.SavedFood(nil))
	doc.FavoriteFoods = store.Get(c.store, store.KeyFavoriteFoods, []models.SavedFood(nil))
	doc.WeightLog = store.Get(c.store, store.KeyWeightLog, []models.WeightEntry(nil))

	return doc
}

// MarshalJSON renders the export document as indented JSON.
func MarshalJSON(doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// MarshalYAML renders the export document as YAML for human-readable
// export. JSON remains the canonical backup format.
func MarshalYAML(doc Document) ([]byte, error) {
	return yaml.Marshal(doc)
}

// Parse decodes a backup document from JSON bytes.
func Parse(raw []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse backup document: %w", err)
	}
	return &doc, nil
}

// Validate checks a document without writing anything. It never panics;
// callers get every accumulated problem at once. Per-field problems and an
// older major version are warnings, not errors, since import proceeds
// field-by-field and skips what it cannot take.
func Validate(doc *Document) Result {
	r := Result{}
	if doc == nil {
		r.Errors = append(r.Errors, "document is empty")
		r.Message = "invalid backup document"
		return r
	}

	if !hasAnyField(doc) {
		r.Errors = append(r.Errors, "no recognized backup fields present")
	}

	if doc.DailyTarget != nil {
		if *doc.DailyTarget < minDailyTarget || *doc.DailyTarget > maxDailyTarget {
			r.Warnings = append(r.Warnings, fmt.Sprintf(
				"daily target %d outside [%d, %d]; field will be skipped",
				*doc.DailyTarget, minDailyTarget, maxDailyTarget))
		}
	}

	if doc.Version != "" {
		if major, err := majorVersion(doc.Version); err != nil {
			r.Warnings = append(r.Warnings, fmt.Sprintf("unparseable version %q", doc.Version))
		} else if current, _ := majorVersion(Version); major < current {
			r.Warnings = append(r.Warnings, fmt.Sprintf(
				"backup version %s predates current %s; importing field-by-field", doc.Version, Version))
		}
	}

	r.Valid = len(r.Errors) == 0
	if r.Valid {
		r.Message = "backup document looks valid"
	} else {
		r.Message = "invalid backup document"
	}
	return r
}

// Import overwrites each recognized store entry present in the document
// wholesale. One field failing does not block the others; failures are
// collected and reported.
func (c *Codec) Import(doc *Document) ImportResult {
	res := ImportResult{}
	if doc == nil {
		res.Message = "nothing to import"
		return res
	}

	write := func(name, key string, present bool, v any) {
		if !present {
			return
		}
		if store.Set(c.store, key, v) {
			res.Imported = append(res.Imported, name)
		} else {
			res.Skipped = append(res.Skipped, name)
		}
	}

	write("user_profile", store.KeyUserProfile, doc.UserProfile != nil, doc.UserProfile)
	if doc.DailyTarget != nil {
		if *doc.DailyTarget >= minDailyTarget && *doc.DailyTarget <= maxDailyTarget {
			write("daily_target", store.KeyDailyTarget, true, *doc.DailyTarget)
		} else {
			res.Skipped = append(res.Skipped, "daily_target")
		}
	}
	write("macro_goals", store.KeyMacroGoals, doc.MacroGoals != nil, doc.MacroGoals)
	write("micronutrient_goals", store.KeyMicronutrientGoals, doc.MicronutrientGoals != nil, doc.MicronutrientGoals)
	write("preferences", store.KeyPreferences, doc.Preferences != nil, doc.Preferences)
	write("food_log", store.KeyFoodLog, doc.FoodLog != nil, doc.FoodLog)
	write("exercise_log", store.KeyExerciseLog, doc.ExerciseLog != nil, doc.ExerciseLog)
	write("weekly_history", store.KeyWeeklyHistory, doc.WeeklyHistory != nil, doc.WeeklyHistory)
	write("food_history", store.KeyFoodHistory, doc.FoodHistory != nil, doc.FoodHistory)
	write("water_log", store.KeyWaterLog, doc.WaterLog != nil, doc.WaterLog)
	write("recent_foods", store.KeyRecentFoods, doc.RecentFoods != nil, doc.RecentFoods)
	write("favorite_foods", store.KeyFavoriteFoods, doc.FavoriteFoods != nil, doc.FavoriteFoods)
	write("weight_log", store.KeyWeightLog, doc.WeightLog != nil, doc.WeightLog)
	write("streak_data", store.KeyStreakData, doc.StreakData != nil, doc.StreakData)

	res.Success = len(res.Imported) > 0
	switch {
	case res.Success && len(res.Skipped) == 0:
		res.Message = fmt.Sprintf("imported %d fields", len(res.Imported))
	case res.Success:
		res.Message = fmt.Sprintf("imported %d fields, skipped %s",
			len(res.Imported), strings.Join(res.Skipped, ", "))
	default:
		res.Message = "no fields imported"
	}
	return res
}

func hasAnyField(doc *Document) bool {
	return doc.UserProfile != nil || doc.DailyTarget != nil ||
		doc.MacroGoals != nil || doc.MicronutrientGoals != nil ||
		doc.Preferences != nil || doc.FoodLog != nil ||
		doc.ExerciseLog != nil || doc.WeeklyHistory != nil ||
		doc.FoodHistory != nil || doc.WaterLog != nil ||
		doc.RecentFoods != nil || doc.FavoriteFoods != nil ||
		doc.WeightLog != nil || doc.StreakData != nil
}

func majorVersion(v string) (int, error) {
	parts := strings.SplitN(v, ".", 2)
	return strconv.Atoi(parts[0])
}

// getPresent reads a key distinguishing absent from zero-valued.
func getPresent[T any](s *store.Store, key string) (T, bool) {
	var zero T
	raw, ok := s.GetRaw(key)
	if !ok {
		return zero, false
	}
	if err := json.Unmarshal(raw, &zero); err != nil {
		return zero, false
	}
	return zero, true
}
