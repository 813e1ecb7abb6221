// ABOUTME: ExerciseEntry model for calories-burned events.
// ABOUTME: Symmetric to FoodEntry but without macros or meal inference.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ExerciseEntry is one recorded exercise event.
type ExerciseEntry struct {
	ID        uuid.UUID `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Calories  float64   `json:"calories" yaml:"calories"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// NewExerciseEntry creates an ExerciseEntry with a generated UUID.
// The timestamp is assigned by the daily log, which owns the clock.
func NewExerciseEntry(name string, calories float64) *ExerciseEntry {
	return &ExerciseEntry{
		ID:       uuid.New(),
		Name:     name,
		Calories: calories,
	}
}

// ExercisePatch holds optional replacement values for an update-by-id.
type ExercisePatch struct {
	Name     *string
	Calories *float64
}

// Apply merges the patch into an entry.
func (p ExercisePatch) Apply(e *ExerciseEntry) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Calories != nil {
		e.Calories = *p.Calories
	}
}
