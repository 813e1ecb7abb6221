// ABOUTME: Tests for the tracker facade.
// ABOUTME: Validates summary aggregation, goal recomputation, favorites, and history wiring.
package tracker

import (
	"testing"
	"time"

	"github.com/nutrilog-app/nutrilog/internal/clock"
	"github.com/nutrilog-app/nutrilog/internal/history"
	"github.com/nutrilog-app/nutrilog/internal/models"
	"github.com/nutrilog-app/nutrilog/internal/store"
)

func setupTracker(t *testing.T) (*Tracker, *clock.Fixed) {
	t.Helper()
	s, err := store.OpenInMemory()
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	c := clock.NewFixed(time.Date(2024, 3, 9, 12, 0, 0, 0, time.Local))
	return New(s, c, nil), c
}

func sampleProfile() models.UserProfile {
	return models.UserProfile{
		WeightLbs:        180,
		HeightFeet:       5,
		HeightInches:     10,
		Age:              30,
		Gender:           models.GenderMale,
		ActivityLevel:    models.ActivityModerate,
		Goal:             models.GoalLose,
		CustomAdjustment: 500,
	}
}

func TestSetProfileDerivesGoals(t *testing.T) {
	tr, _ := setupTracker(t)

	target := tr.SetProfile(sampleProfile())
	if target != 2264 {
		t.Errorf("derived target = %d, want 2264", target)
	}
	if tr.DailyTarget() != 2264 {
		t.Error("target must be persisted")
	}

	macro := tr.MacroGoals()
	if macro.Preset != "balanced" {
		t.Errorf("default preset = %q, want balanced", macro.Preset)
	}
	if macro.ProteinG == 0 {
		t.Error("macro grams must be derived from the target")
	}

	micro := tr.MicronutrientGoals()
	if len(micro.Targets) != len(models.NutrientKeys) {
		t.Errorf("micro targets cover %d keys", len(micro.Targets))
	}
}

func TestSetProfileRefreshesTodayHistory(t *testing.T) {
	tr, c := setupTracker(t)

	tr.SetDailyTarget(2000)
	tr.LogFood(models.NewFoodEntry("Big Lunch", 1500))

	tr.SetProfile(sampleProfile())

	day, ok := tr.month.Day(clock.Today(c))
	if !ok {
		t.Fatal("today must be in the history after a log")
	}
	if day.Target != 2264 {
		t.Errorf("history target after SetProfile = %d, want 2264", day.Target)
	}
	if day.Eaten != 1500 {
		t.Errorf("history eaten = %.0f, want 1500", day.Eaten)
	}
	if got := tr.DayStatus(clock.Today(c)); got != history.StatusUnder {
		t.Errorf("day status against new target = %s, want under", got)
	}
}

func TestTodaySummary(t *testing.T) {
	tr, _ := setupTracker(t)
	tr.SetProfile(sampleProfile())

	tr.LogFood(models.NewFoodEntry("Oatmeal", 320).WithMacros(12, 54, 6))
	tr.LogFood(models.NewFoodEntry("Chicken", 400).WithMacros(45, 0, 12))
	tr.LogExercise(models.NewExerciseEntry("run", 300))
	tr.LogWater(500)

	s := tr.TodaySummary()
	if s.Eaten != 720 || s.Burned != 300 || s.Net != 420 {
		t.Errorf("summary = eaten %f burned %f net %f", s.Eaten, s.Burned, s.Net)
	}
	if s.Remaining != float64(2264-420) {
		t.Errorf("remaining = %f", s.Remaining)
	}
	if s.Macros.Protein != 57 {
		t.Errorf("protein total = %f, want 57", s.Macros.Protein)
	}
	if s.WaterML != 500 {
		t.Errorf("water = %f", s.WaterML)
	}
	if s.HasMicros {
		t.Error("no micros recorded, HasMicros must be false")
	}
}

func TestMutationsRecordHistory(t *testing.T) {
	tr, _ := setupTracker(t)
	tr.SetDailyTarget(2000)

	tr.LogFood(models.NewFoodEntry("Lunch", 1960))

	if got := tr.DayStatus("2024-03-09"); got != history.StatusPerfect {
		t.Errorf("status after log = %s, want perfect", got)
	}

	tr.LogFood(models.NewFoodEntry("Cake", 600))
	if got := tr.DayStatus("2024-03-09"); got != history.StatusOver {
		t.Errorf("status after second log = %s, want over", got)
	}
}

func TestLogFoodTouchesStreak(t *testing.T) {
	tr, c := setupTracker(t)

	tr.LogFood(models.NewFoodEntry("A", 100))
	tr.LogFood(models.NewFoodEntry("B", 100))
	if got := tr.Streak().Current().CurrentStreak; got != 1 {
		t.Errorf("streak after two same-day logs = %d, want 1", got)
	}

	c.AdvanceDays(1)
	tr.LogFood(models.NewFoodEntry("C", 100))
	if got := tr.Streak().Current().CurrentStreak; got != 2 {
		t.Errorf("streak next day = %d, want 2", got)
	}
}

func TestToggleFavoriteIdempotentPerName(t *testing.T) {
	tr, _ := setupTracker(t)

	food := models.SavedFood{Name: "Greek Yogurt", Calories: 120}
	before := len(tr.FavoriteFoods())

	if !tr.ToggleFavoriteFood(food) {
		t.Error("first toggle should favorite")
	}
	// Same name, different case: removes.
	if tr.ToggleFavoriteFood(models.SavedFood{Name: "greek yogurt"}) {
		t.Error("second toggle should unfavorite")
	}

	if got := len(tr.FavoriteFoods()); got != before {
		t.Errorf("favorites length changed from %d to %d", before, got)
	}
}

func TestTrendSpansWindow(t *testing.T) {
	tr, c := setupTracker(t)
	tr.SetDailyTarget(2000)

	for i := 0; i < 3; i++ {
		tr.LogFood(models.NewFoodEntry("meal", 1800))
		c.AdvanceDays(1)
	}

	series := tr.Trend()
	if len(series.Eaten) != history.TrendWindow {
		t.Fatalf("trend length = %d, want %d", len(series.Eaten), history.TrendWindow)
	}
	// Last three recorded days sit at the end of the series except today,
	// which has no entries yet.
	if series.Eaten[history.TrendWindow-2] != 1800 {
		t.Errorf("yesterday's eaten = %f, want 1800", series.Eaten[history.TrendWindow-2])
	}
}

func TestMacroSplitValidation(t *testing.T) {
	tr, _ := setupTracker(t)
	tr.SetDailyTarget(2000)

	if _, err := tr.SetMacroSplit(models.MacroSplit{Protein: 50, Carbs: 40, Fat: 20}); err == nil {
		t.Error("split totalling 110 must be rejected")
	}

	g, err := tr.SetMacroSplit(models.MacroSplit{Protein: 30, Carbs: 40, Fat: 30})
	if err != nil {
		t.Fatalf("valid split rejected: %v", err)
	}
	if g.ProteinG != 150 || g.CarbsG != 200 || g.FatG != 67 {
		t.Errorf("grams = %+v", g)
	}
}

func TestMicronutrientOverrideValidatesKey(t *testing.T) {
	tr, _ := setupTracker(t)
	tr.SetProfile(sampleProfile())

	if tr.OverrideMicronutrient("unobtainium", 99) {
		t.Error("unknown nutrient key must be rejected")
	}
	if !tr.OverrideMicronutrient(models.NutrientSodium, 1500) {
		t.Fatal("valid override failed")
	}
	if v, _ := tr.MicronutrientGoals().Effective(models.NutrientSodium); v != 1500 {
		t.Errorf("effective sodium = %f, want 1500", v)
	}
}

func TestOnboardingAndSyncTime(t *testing.T) {
	tr, _ := setupTracker(t)

	if tr.OnboardingComplete() {
		t.Error("onboarding should start incomplete")
	}
	tr.MarkOnboardingComplete()
	if !tr.OnboardingComplete() {
		t.Error("onboarding flag not persisted")
	}

	if !tr.LastSyncTime().IsZero() {
		t.Error("last sync should start zero")
	}
	ts := time.Date(2024, 3, 9, 13, 0, 0, 0, time.UTC)
	tr.SetLastSyncTime(ts)
	if !tr.LastSyncTime().Equal(ts) {
		t.Errorf("last sync = %v, want %v", tr.LastSyncTime(), ts)
	}
}
