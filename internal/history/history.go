// ABOUTME: Rolling history of daily summaries with a parameterized retention window.
// ABOUTME: One stored map serves both the 7-day trend and the 30-day calendar views.
package history

import (
	"sort"

	"github.com/nutrilog-app/nutrilog/internal/clock"
	"github.com/nutrilog-app/nutrilog/internal/models"
	"github.com/nutrilog-app/nutrilog/internal/store"
)

// Retention windows used by the two call sites.
const (
	TrendWindow    = 7
	CalendarWindow = 30
)

// Tolerance band in calories for classifying a day against its target.
const statusBand = 50

// DayStatus classifies a historical day relative to its target.
type DayStatus string

const (
	StatusUnder   DayStatus = "under"
	StatusPerfect DayStatus = "perfect"
	StatusOver    DayStatus = "over"
	StatusNoData  DayStatus = "no_data"
)

// Series is the aligned output of GraphSeries: one value per day,
// chronological oldest to newest, absent days zero-filled.
type Series struct {
	Days   []string  `json:"days"`
	Labels []string  `json:"labels"`
	Eaten  []float64 `json:"eaten"`
	Burned []float64 `json:"burned"`
	Target []float64 `json:"target"`
}

// History maintains the last Window calendar days of daily summaries.
type History struct {
	store  *store.Store
	clock  clock.Clock
	window int
}

// New creates a history view with the given retention window. All windows
// share one stored map; the widest caller bounds what is retained.
func New(s *store.Store, c clock.Clock, window int) *History {
	return &History{store: s, clock: c, window: window}
}

// RecordToday upserts today's summary and prunes the map to the window by
// sorted key order. Callers invoke this after every mutation that could
// change today's totals.
func (h *History) RecordToday(summary models.DailySummary) {
	all := h.load()
	all[clock.Today(h.clock)] = summary
	prune(all, h.window)
	store.Set(h.store, store.KeyWeeklyHistory, all)
}

// Day returns the summary for a day-key, with ok=false when absent.
func (h *History) Day(dayKey string) (models.DailySummary, bool) {
	all := h.load()
	s, ok := all[dayKey]
	return s, ok
}

// All returns the stored summaries keyed by day.
func (h *History) All() map[string]models.DailySummary {
	return h.load()
}

// GraphSeries produces aligned eaten/burned/target sequences for the most
// recent days ending today, inclusive, plus short weekday labels.
func (h *History) GraphSeries(days int) Series {
	all := h.load()

	s := Series{
		Days:   make([]string, 0, days),
		Labels: make([]string, 0, days),
		Eaten:  make([]float64, 0, days),
		Burned: make([]float64, 0, days),
		Target: make([]float64, 0, days),
	}
	for i := days - 1; i >= 0; i-- {
		key := clock.DaysAgo(h.clock, i)
		s.Days = append(s.Days, key)
		s.Labels = append(s.Labels, clock.WeekdayLabel(key))
		summary := all[key] // zero value for absent days
		s.Eaten = append(s.Eaten, summary.Eaten)
		s.Burned = append(s.Burned, summary.Burned)
		s.Target = append(s.Target, float64(summary.Target))
	}
	return s
}

// CalendarStatus classifies a historical day as under, perfect, or over its
// target within a fixed +-50 calorie band, or no-data when absent.
func (h *History) CalendarStatus(dayKey string) DayStatus {
	summary, ok := h.Day(dayKey)
	if !ok {
		return StatusNoData
	}

	diff := summary.Net() - float64(summary.Target)
	switch {
	case diff < -statusBand:
		return StatusUnder
	case diff > statusBand:
		return StatusOver
	default:
		return StatusPerfect
	}
}

func (h *History) load() map[string]models.DailySummary {
	return store.Get(h.store, store.KeyWeeklyHistory, map[string]models.DailySummary{})
}

// prune keeps the last max day-keys in lexicographic order, which is
// chronological for YYYY-MM-DD.
func prune(all map[string]models.DailySummary, max int) {
	if len(all) <= max {
		return
	}
	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys[:len(keys)-max] {
		delete(all, k)
	}
}
