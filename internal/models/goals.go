// ABOUTME: MacroGoals and MicronutrientGoals models.
// ABOUTME: Derived from the daily target and profile; micros are per-key overridable.
package models

// MacroSplit is a percentage split across the three macros.
// User-supplied splits must total 100.
type MacroSplit struct {
	Protein int `json:"protein" yaml:"protein"`
	Carbs   int `json:"carbs" yaml:"carbs"`
	Fat     int `json:"fat" yaml:"fat"`
}

// Total returns the percentage sum.
func (s MacroSplit) Total() int { return s.Protein + s.Carbs + s.Fat }

// MacroGoals holds derived gram targets alongside the split that produced
// them. Preset is the split name, or "custom".
type MacroGoals struct {
	ProteinG    int        `json:"protein_g" yaml:"protein_g"`
	CarbsG      int        `json:"carbs_g" yaml:"carbs_g"`
	FatG        int        `json:"fat_g" yaml:"fat_g"`
	Preset      string     `json:"preset" yaml:"preset"`
	Percentages MacroSplit `json:"percentages" yaml:"percentages"`
}

// MicronutrientGoals maps nutrient keys to RDA targets. Overrides are the
// user's per-key replacements, applied on top of the derived targets.
type MicronutrientGoals struct {
	Targets   map[string]float64 `json:"targets" yaml:"targets"`
	Overrides map[string]float64 `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// Effective returns the target for a key with any user override applied.
func (g MicronutrientGoals) Effective(key string) (float64, bool) {
	if v, ok := g.Overrides[key]; ok {
		return v, true
	}
	v, ok := g.Targets[key]
	return v, ok
}

// EffectiveAll returns the full target map with overrides applied.
func (g MicronutrientGoals) EffectiveAll() map[string]float64 {
	out := make(map[string]float64, len(g.Targets))
	for k, v := range g.Targets {
		out[k] = v
	}
	for k, v := range g.Overrides {
		out[k] = v
	}
	return out
}
