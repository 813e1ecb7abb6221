// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Tests parseMicros, truncate, padRight, and end-to-end commands.
package main

import (
	"testing"

	"github.com/nutrilog-app/nutrilog/internal/models"
)

func TestParseMicros(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		wantErr bool
		want    models.Micronutrients
	}{
		{
			name:  "single pair",
			input: []string{"fiber=4"},
			want:  models.Micronutrients{"fiber": 4},
		},
		{
			name:  "multiple pairs",
			input: []string{"iron=2.7", "sodium=620"},
			want:  models.Micronutrients{"iron": 2.7, "sodium": 620},
		},
		{
			name:    "missing equals",
			input:   []string{"fiber"},
			wantErr: true,
		},
		{
			name:    "unknown nutrient",
			input:   []string{"unobtainium=5"},
			wantErr: true,
		},
		{
			name:    "non-numeric amount",
			input:   []string{"fiber=lots"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseMicros(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseMicros(%v) expected error, got nil", tt.input)
				}
				return
			}

			if err != nil {
				t.Fatalf("parseMicros(%v) unexpected error: %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseMicros(%v) = %v, want %v", tt.input, got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("parseMicros(%v)[%s] = %v, want %v", tt.input, k, got[k], v)
				}
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{
			name:   "short string no truncation",
			input:  "hello",
			maxLen: 10,
			want:   "hello",
		},
		{
			name:   "exact length",
			input:  "hello",
			maxLen: 5,
			want:   "hello",
		},
		{
			name:   "needs truncation",
			input:  "overnight oats with berries",
			maxLen: 10,
			want:   "overnig...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Errorf("padRight = %q, want %q", got, "ab   ")
	}
	if got := padRight("abcdef", 5); got != "abcdef" {
		t.Errorf("padRight should not shorten, got %q", got)
	}
}

func TestGoalSign(t *testing.T) {
	tests := []struct {
		name string
		p    models.UserProfile
		want int
	}{
		{
			name: "lose default",
			p:    models.UserProfile{Goal: models.GoalLose},
			want: -models.DefaultLoseAdjustment,
		},
		{
			name: "gain custom",
			p:    models.UserProfile{Goal: models.GoalGain, CustomAdjustment: 250},
			want: 250,
		},
		{
			name: "maintain",
			p:    models.UserProfile{Goal: models.GoalMaintain, CustomAdjustment: 400},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := goalSign(tt.p); got != tt.want {
				t.Errorf("goalSign = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFoodAddAndList(t *testing.T) {
	dataDir := t.TempDir()

	rootCmd.SetArgs([]string{"--data-dir", dataDir, "food", "add", "Oatmeal", "320",
		"--protein", "12", "--carbs", "54", "--fat", "6"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("food add failed: %v", err)
	}

	rootCmd.SetArgs([]string{"--data-dir", dataDir, "food", "list"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("food list failed: %v", err)
	}
}

func TestFoodAddInvalidCalories(t *testing.T) {
	dataDir := t.TempDir()

	rootCmd.SetArgs([]string{"--data-dir", dataDir, "food", "add", "Oatmeal", "lots"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected error for non-numeric calories")
	}
}

func TestGoalTargetRoundTrip(t *testing.T) {
	dataDir := t.TempDir()

	rootCmd.SetArgs([]string{"--data-dir", dataDir, "goal", "target", "2200"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("goal target failed: %v", err)
	}

	rootCmd.SetArgs([]string{"--data-dir", dataDir, "goal", "target"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("goal target show failed: %v", err)
	}
}
