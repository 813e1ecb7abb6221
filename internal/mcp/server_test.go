// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers, and resource handlers.
package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nutrilog-app/nutrilog/internal/clock"
	"github.com/nutrilog-app/nutrilog/internal/models"
	"github.com/nutrilog-app/nutrilog/internal/store"
	"github.com/nutrilog-app/nutrilog/internal/tracker"
)

// setupTestServer creates an MCP server over an in-memory tracker.
func setupTestServer(t *testing.T) *Server {
	t.Helper()

	s, err := store.OpenInMemory()
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	c := clock.NewFixed(time.Date(2024, 3, 9, 12, 0, 0, 0, time.Local))
	tr := tracker.New(s, c, nil)

	server, err := NewServer(tr)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server
}

func TestNewServer(t *testing.T) {
	server := setupTestServer(t)

	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.tracker == nil {
		t.Error("Expected non-nil tracker")
	}
}

func TestHandleLogFood(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		input     logFoodInput
		wantErr   bool
		errSubstr string
		wantMeal  string
	}{
		{
			name: "calories only",
			input: logFoodInput{
				Name:     "Oatmeal",
				Calories: 320,
			},
			wantMeal: "lunch",
		},
		{
			name: "full macros and micros",
			input: logFoodInput{
				Name:     "Chicken Salad",
				Calories: 450,
				Protein:  38,
				Carbs:    12,
				Fat:      28,
				Micros:   map[string]float64{"fiber": 4, "sodium": 620},
			},
			wantMeal: "lunch",
		},
		{
			name: "explicit meal type",
			input: logFoodInput{
				Name:     "Yogurt",
				Calories: 120,
				MealType: "snack",
			},
			wantMeal: "snack",
		},
		{
			name: "missing name",
			input: logFoodInput{
				Calories: 100,
			},
			wantErr:   true,
			errSubstr: "name is required",
		},
		{
			name: "unknown nutrient key",
			input: logFoodInput{
				Name:     "Mystery",
				Calories: 100,
				Micros:   map[string]float64{"unobtainium": 5},
			},
			wantErr:   true,
			errSubstr: "unknown nutrient",
		},
		{
			name: "unknown meal type",
			input: logFoodInput{
				Name:     "Toast",
				Calories: 90,
				MealType: "brunch",
			},
			wantErr:   true,
			errSubstr: "unknown meal type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := server.handleLogFood(ctx, &mcp.CallToolRequest{}, tt.input)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				} else if tt.errSubstr != "" && !contains(err.Error(), tt.errSubstr) {
					t.Errorf("Error = %v, want substring %q", err, tt.errSubstr)
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}
			if output.ID == "" {
				t.Error("Expected non-empty ID")
			}
			if output.MealType != tt.wantMeal {
				t.Errorf("MealType = %s, want %s", output.MealType, tt.wantMeal)
			}
		})
	}
}

func TestHandleLogExercise(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, output, err := server.handleLogExercise(ctx, &mcp.CallToolRequest{}, logExerciseInput{
		Name:     "Running",
		Calories: 300,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if output.Message == "" {
		t.Error("Expected non-empty message")
	}

	summary := server.tracker.TodaySummary()
	if summary.Burned != 300 {
		t.Errorf("Burned = %.0f, want 300", summary.Burned)
	}

	_, _, err = server.handleLogExercise(ctx, &mcp.CallToolRequest{}, logExerciseInput{})
	if err == nil {
		t.Error("Expected error for missing name")
	}
}

func TestHandleLogWater(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, _, err := server.handleLogWater(ctx, &mcp.CallToolRequest{}, logWaterInput{AmountML: 500})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	_, output, err := server.handleLogWater(ctx, &mcp.CallToolRequest{}, logWaterInput{AmountML: 250})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !contains(output.Message, "750 ml today") {
		t.Errorf("Message = %q, want running total of 750 ml", output.Message)
	}

	_, _, err = server.handleLogWater(ctx, &mcp.CallToolRequest{}, logWaterInput{AmountML: -100})
	if err == nil {
		t.Error("Expected error for non-positive amount")
	}
}

func TestHandleLogWeight(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, output, err := server.handleLogWeight(ctx, &mcp.CallToolRequest{}, logWeightInput{Weight: 180.5})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !contains(output.Message, "lbs") {
		t.Errorf("Message = %q, want default lbs unit", output.Message)
	}

	latest, ok := server.tracker.Weights().Latest()
	if !ok {
		t.Fatal("Expected a recorded weight")
	}
	if latest.Weight != 180.5 {
		t.Errorf("Weight = %.1f, want 180.5", latest.Weight)
	}

	_, _, err = server.handleLogWeight(ctx, &mcp.CallToolRequest{}, logWeightInput{Weight: 0})
	if err == nil {
		t.Error("Expected error for zero weight")
	}
}

func TestHandleDeleteFood(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	logged := server.tracker.LogFood(models.NewFoodEntry("Banana", 105))

	_, output, err := server.handleDeleteFood(ctx, &mcp.CallToolRequest{}, deleteFoodInput{
		ID: logged.ID.String(),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if output.Message == "" {
		t.Error("Expected non-empty message")
	}

	// Already deleted
	_, _, err = server.handleDeleteFood(ctx, &mcp.CallToolRequest{}, deleteFoodInput{
		ID: logged.ID.String(),
	})
	if err == nil {
		t.Error("Expected error for missing entry")
	}

	// Malformed ID
	_, _, err = server.handleDeleteFood(ctx, &mcp.CallToolRequest{}, deleteFoodInput{ID: "not-a-uuid"})
	if err == nil {
		t.Error("Expected error for malformed ID")
	}
}

func TestHandleGetToday(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	server.tracker.LogFood(models.NewFoodEntry("Oatmeal", 320))
	server.tracker.LogExercise(models.NewExerciseEntry("Walk", 120))

	_, output, err := server.handleGetToday(ctx, &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	summary, ok := output.(tracker.DaySummary)
	if !ok {
		t.Fatalf("Output type = %T, want tracker.DaySummary", output)
	}
	if summary.Eaten != 320 {
		t.Errorf("Eaten = %.0f, want 320", summary.Eaten)
	}
	if summary.Net != 200 {
		t.Errorf("Net = %.0f, want 200", summary.Net)
	}
}

func TestHandleGetStreak(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	server.tracker.LogFood(models.NewFoodEntry("Oatmeal", 320))

	_, output, err := server.handleGetStreak(ctx, &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	streak, ok := output.(models.StreakData)
	if !ok {
		t.Fatalf("Output type = %T, want models.StreakData", output)
	}
	if streak.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", streak.CurrentStreak)
	}
}

func TestHandleToggleFavorite(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	input := toggleFavoriteInput{Name: "Greek Yogurt", Calories: 150, Protein: 15}

	_, output, err := server.handleToggleFavorite(ctx, &mcp.CallToolRequest{}, input)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !contains(output.Message, "Added") {
		t.Errorf("Message = %q, want Added", output.Message)
	}

	_, output, err = server.handleToggleFavorite(ctx, &mcp.CallToolRequest{}, input)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !contains(output.Message, "Removed") {
		t.Errorf("Message = %q, want Removed", output.Message)
	}

	_, _, err = server.handleToggleFavorite(ctx, &mcp.CallToolRequest{}, toggleFavoriteInput{})
	if err == nil {
		t.Error("Expected error for missing name")
	}
}

func TestHandleTodayResource(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	server.tracker.LogFood(models.NewFoodEntry("Oatmeal", 320))

	result, err := server.handleTodayResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(result.Contents) == 0 {
		t.Fatal("Expected non-empty contents")
	}
	if result.Contents[0].URI != "nutrilog://today" {
		t.Errorf("URI = %s, want nutrilog://today", result.Contents[0].URI)
	}
	if result.Contents[0].MIMEType != "application/json" {
		t.Errorf("MIMEType = %s, want application/json", result.Contents[0].MIMEType)
	}
	if !contains(result.Contents[0].Text, "Oatmeal") {
		t.Error("Expected logged food in resource text")
	}
}

func TestHandleProfileResource(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	server.tracker.SetProfile(models.UserProfile{
		WeightLbs:     180,
		HeightFeet:    5,
		HeightInches:  10,
		Age:           30,
		Gender:        models.GenderMale,
		ActivityLevel: models.ActivityModerate,
		Goal:          models.GoalLose,
	})

	result, err := server.handleProfileResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Contents[0].URI != "nutrilog://profile" {
		t.Errorf("URI = %s, want nutrilog://profile", result.Contents[0].URI)
	}
	if !contains(result.Contents[0].Text, "2264") {
		t.Error("Expected derived daily target in resource text")
	}
}

func TestHandleTrendResource(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	server.tracker.LogFood(models.NewFoodEntry("Oatmeal", 320))

	result, err := server.handleTrendResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Contents[0].URI != "nutrilog://trend" {
		t.Errorf("URI = %s, want nutrilog://trend", result.Contents[0].URI)
	}
	if result.Contents[0].Text == "" {
		t.Error("Expected non-empty Text")
	}
}

// Helper function.
func contains(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(s) > 0 && containsImpl(s, substr))
}

func containsImpl(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
