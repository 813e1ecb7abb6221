// ABOUTME: Trim functions for the daily log's reclaimable collections.
// ABOUTME: Invoked by the store when a write fails and space must be recovered.
package dailylog

import (
	"encoding/json"
	"sort"

	"github.com/nutrilog-app/nutrilog/internal/models"
)

// trimRecentFoods cuts the recent-foods list down to a tight cap,
// oldest entries first.
func trimRecentFoods(raw []byte) ([]byte, bool) {
	var recents []models.SavedFood
	if err := json.Unmarshal(raw, &recents); err != nil {
		// Corrupt cache: dropping it entirely is the cheapest reclaim.
		return []byte("[]"), true
	}
	if len(recents) <= reclaimRecentCap {
		return raw, false
	}
	trimmed, err := json.Marshal(recents[:reclaimRecentCap])
	if err != nil {
		return raw, false
	}
	return trimmed, true
}

// trimFoodHistory keeps only the most recent archived days.
func trimFoodHistory(raw []byte) ([]byte, bool) {
	var history map[string][]models.FoodEntry
	if err := json.Unmarshal(raw, &history); err != nil {
		return []byte("{}"), true
	}
	if len(history) <= reclaimHistoryDays {
		return raw, false
	}

	keys := make([]string, 0, len(history))
	for k := range history {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys[:len(keys)-reclaimHistoryDays] {
		delete(history, k)
	}

	trimmed, err := json.Marshal(history)
	if err != nil {
		return raw, false
	}
	return trimmed, true
}
