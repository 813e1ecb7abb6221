// ABOUTME: MCP tool implementations for the nutrition tracker.
// ABOUTME: Provides logging, deletion, and query operations over the tracker facade.
package mcp

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nutrilog-app/nutrilog/internal/models"
)

func (s *Server) registerTools() {
	// log_food
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_food",
		Description: "Log a food entry with calories, macros, and optional micronutrients",
	}, s.handleLogFood)

	// log_exercise
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_exercise",
		Description: "Log an exercise entry with calories burned",
	}, s.handleLogExercise)

	// log_water
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_water",
		Description: "Log a water intake amount in milliliters",
	}, s.handleLogWater)

	// log_weight
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_weight",
		Description: "Record a body weight measurement for today",
	}, s.handleLogWeight)

	// delete_food
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_food",
		Description: "Delete a food entry from today's log by ID",
	}, s.handleDeleteFood)

	// get_today
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_today",
		Description: "Get today's nutrition summary with all logged entries",
	}, s.handleGetToday)

	// get_streak
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_streak",
		Description: "Get the current and longest logging streaks",
	}, s.handleGetStreak)

	// get_trend
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_trend",
		Description: "Get the rolling calorie trend for graphing",
	}, s.handleGetTrend)

	// toggle_favorite
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "toggle_favorite",
		Description: "Toggle a food on or off the favorites list",
	}, s.handleToggleFavorite)
}

// Tool input/output types

type logFoodInput struct {
	Name     string             `json:"name" jsonschema:"Name of the food"`
	Calories float64            `json:"calories" jsonschema:"Calories (kcal)"`
	Protein  float64            `json:"protein,omitempty" jsonschema:"Protein in grams"`
	Carbs    float64            `json:"carbs,omitempty" jsonschema:"Carbohydrates in grams"`
	Fat      float64            `json:"fat,omitempty" jsonschema:"Fat in grams"`
	Micros   map[string]float64 `json:"micros,omitempty" jsonschema:"Micronutrient amounts keyed by nutrient (fiber, sodium, iron, etc.)"`
	MealType string             `json:"meal_type,omitempty" jsonschema:"Meal type (breakfast, lunch, dinner, snack), inferred from time of day when omitted"`
}

type foodOutput struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	MealType string  `json:"meal_type"`
	Message  string  `json:"message"`
}

type logExerciseInput struct {
	Name     string  `json:"name" jsonschema:"Name of the exercise"`
	Calories float64 `json:"calories" jsonschema:"Calories burned (kcal)"`
}

type logWaterInput struct {
	AmountML float64 `json:"amount_ml" jsonschema:"Water amount in milliliters"`
}

type logWeightInput struct {
	Weight float64 `json:"weight" jsonschema:"Body weight value"`
	Unit   string  `json:"unit,omitempty" jsonschema:"Weight unit (lbs or kg), defaults to lbs"`
}

type deleteFoodInput struct {
	ID string `json:"id" jsonschema:"Food entry UUID"`
}

type toggleFavoriteInput struct {
	Name     string  `json:"name" jsonschema:"Name of the food"`
	Calories float64 `json:"calories,omitempty" jsonschema:"Calories (kcal)"`
	Protein  float64 `json:"protein,omitempty" jsonschema:"Protein in grams"`
	Carbs    float64 `json:"carbs,omitempty" jsonschema:"Carbohydrates in grams"`
	Fat      float64 `json:"fat,omitempty" jsonschema:"Fat in grams"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleLogFood(ctx context.Context, req *mcp.CallToolRequest, input logFoodInput) (*mcp.CallToolResult, foodOutput, error) {
	if input.Name == "" {
		return nil, foodOutput{}, fmt.Errorf("food name is required")
	}
	for key := range input.Micros {
		if !models.IsValidNutrientKey(key) {
			return nil, foodOutput{}, fmt.Errorf("unknown nutrient: %s", key)
		}
	}

	entry := models.NewFoodEntry(input.Name, input.Calories).
		WithMacros(input.Protein, input.Carbs, input.Fat)
	if len(input.Micros) > 0 {
		entry.WithMicros(models.Micronutrients(input.Micros))
	}
	if input.MealType != "" {
		if !models.IsValidMealType(input.MealType) {
			return nil, foodOutput{}, fmt.Errorf("unknown meal type: %s", input.MealType)
		}
		entry.WithMealType(models.MealType(input.MealType))
	}

	logged := s.tracker.LogFood(entry)

	return nil, foodOutput{
		ID:       logged.ID.String(),
		Name:     logged.Name,
		Calories: logged.Calories,
		MealType: string(logged.MealType),
		Message:  fmt.Sprintf("Logged %s: %.0f kcal (%s)", logged.Name, logged.Calories, logged.MealType),
	}, nil
}

func (s *Server) handleLogExercise(ctx context.Context, req *mcp.CallToolRequest, input logExerciseInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.Name == "" {
		return nil, simpleOutput{}, fmt.Errorf("exercise name is required")
	}

	logged := s.tracker.LogExercise(models.NewExerciseEntry(input.Name, input.Calories))

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %s: %.0f kcal burned", logged.Name, logged.Calories),
	}, nil
}

func (s *Server) handleLogWater(ctx context.Context, req *mcp.CallToolRequest, input logWaterInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.AmountML <= 0 {
		return nil, simpleOutput{}, fmt.Errorf("water amount must be positive")
	}

	s.tracker.LogWater(input.AmountML)
	summary := s.tracker.TodaySummary()

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %.0f ml water (%.0f ml today)", input.AmountML, summary.WaterML),
	}, nil
}

func (s *Server) handleLogWeight(ctx context.Context, req *mcp.CallToolRequest, input logWeightInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.Weight <= 0 {
		return nil, simpleOutput{}, fmt.Errorf("weight must be positive")
	}
	unit := input.Unit
	if unit == "" {
		unit = "lbs"
	}

	entry := s.tracker.LogWeight(input.Weight, unit)

	return nil, simpleOutput{
		Message: fmt.Sprintf("Recorded weight %.1f %s on %s", entry.Weight, entry.Unit, entry.Date),
	}, nil
}

func (s *Server) handleDeleteFood(ctx context.Context, req *mcp.CallToolRequest, input deleteFoodInput) (*mcp.CallToolResult, simpleOutput, error) {
	id, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("invalid food ID: %s", input.ID)
	}

	if !s.tracker.DeleteFood(id) {
		return nil, simpleOutput{}, fmt.Errorf("food not found: %s", input.ID)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted food: %s", input.ID),
	}, nil
}

func (s *Server) handleGetToday(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	return nil, s.tracker.TodaySummary(), nil
}

func (s *Server) handleGetStreak(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	return nil, s.tracker.Streak().Current(), nil
}

func (s *Server) handleGetTrend(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	return nil, s.tracker.Trend(), nil
}

func (s *Server) handleToggleFavorite(ctx context.Context, req *mcp.CallToolRequest, input toggleFavoriteInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.Name == "" {
		return nil, simpleOutput{}, fmt.Errorf("food name is required")
	}

	fav := s.tracker.ToggleFavoriteFood(models.SavedFood{
		Name:     input.Name,
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fat:      input.Fat,
	})

	if fav {
		return nil, simpleOutput{Message: fmt.Sprintf("Added %s to favorites", input.Name)}, nil
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Removed %s from favorites", input.Name)}, nil
}
