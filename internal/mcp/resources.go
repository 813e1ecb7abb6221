// ABOUTME: MCP resource implementations for the nutrition tracker.
// ABOUTME: Provides nutrilog://today, nutrilog://profile, and nutrilog://trend resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// nutrilog://today - Full summary of the current day
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "nutrilog://today",
		Name:        "Today's Nutrition",
		Description: "Aggregated calories, macros, water, and all entries logged today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// nutrilog://profile - Profile and derived goals
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "nutrilog://profile",
		Name:        "Profile and Goals",
		Description: "User profile with derived calorie target, macro split, and micronutrient goals",
		MIMEType:    "application/json",
	}, s.handleProfileResource)

	// nutrilog://trend - Rolling calorie history
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "nutrilog://trend",
		Name:        "Calorie Trend",
		Description: "Rolling calorie history with streak data",
		MIMEType:    "application/json",
	}, s.handleTrendResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	summary := s.tracker.TodaySummary()

	result := map[string]interface{}{
		"summary": summary,
		"counts": map[string]int{
			"foods":     len(summary.Foods),
			"exercises": len(summary.Exercises),
		},
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "nutrilog://today",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleProfileResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	result := map[string]interface{}{
		"daily_target": s.tracker.DailyTarget(),
		"macro_goals":  s.tracker.MacroGoals(),
		"micro_goals":  s.tracker.MicronutrientGoals().EffectiveAll(),
		"preferences":  s.tracker.Preferences(),
	}

	if profile, ok := s.tracker.Profile(); ok {
		result["profile"] = profile
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "nutrilog://profile",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleTrendResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	result := map[string]interface{}{
		"trend":  s.tracker.Trend(),
		"streak": s.tracker.Streak().Current(),
	}

	if latest, ok := s.tracker.Weights().Latest(); ok {
		result["latest_weight"] = latest
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "nutrilog://trend",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
