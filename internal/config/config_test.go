package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/svanduffel/reach-planner/internal/plan"
	"github.com/svanduffel/reach-planner/pkg/reach"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  format: console
output:
  format: csv
scenarios:
  - name: Q4 burst
    active: true
    currency: "€"
    budget: 10000
    costType: CPM
    cpm: 8.95
    ctr: 0.5
    vtr: 70
    viewability: 80
    avgFreq: 3
    audienceSize: 3000000
    startDate: 2025-10-01
    endDate: 2025-10-07
    pacingMode: Even
    reachModel: Poisson
  - name: Idle draft
    active: false
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("unexpected logging config: %+v", conf.Logging)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("output format = %q, expected csv", conf.Output.Format)
	}
	if len(conf.Scenarios) != 2 {
		t.Fatalf("expected 2 scenarios, got %d", len(conf.Scenarios))
	}

	scenario := conf.Scenarios[0]
	if scenario.Name != "Q4 burst" || !scenario.Active {
		t.Errorf("unexpected first scenario: %+v", scenario)
	}
	// Unquoted YAML numbers must land in the string fields.
	if scenario.Budget != "10000" {
		t.Errorf("budget = %q, expected \"10000\"", scenario.Budget)
	}
	if scenario.Cpm != "8.95" {
		t.Errorf("cpm = %q, expected \"8.95\"", scenario.Cpm)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestScenarioCampaignInputs(t *testing.T) {
	scenario := Scenario{
		Currency:     "€",
		Budget:       "10000",
		CostType:     "CPC",
		Cpc:          "0.70",
		Ctr:          "0.5",
		StartDate:    "2025-10-01",
		EndDate:      "2025-10-07",
		PacingMode:   "Custom",
		ReachModel:   "Simple",
		AudienceSize: "1234",
	}

	inputs := scenario.CampaignInputs()
	if inputs.CostType != plan.CostTypeCPC {
		t.Errorf("CostType = %q, expected CPC", inputs.CostType)
	}
	if inputs.PacingMode != plan.PacingCustom {
		t.Errorf("PacingMode = %q, expected Custom", inputs.PacingMode)
	}
	if inputs.ReachModel != reach.ModelSimple {
		t.Errorf("ReachModel = %q, expected Simple", inputs.ReachModel)
	}
	if inputs.AudienceSize != "1234" {
		t.Errorf("AudienceSize = %q, expected explicit size to win", inputs.AudienceSize)
	}
}

func TestScenarioCampaignInputsPresetResolution(t *testing.T) {
	scenario := Scenario{
		AudiencePresets: []string{"BE_18_54_FR", "BE_18_54_NL"},
	}
	inputs := scenario.CampaignInputs()
	if inputs.AudienceSize != "5500000" {
		t.Errorf("AudienceSize = %q, expected \"5500000\" from the summed presets", inputs.AudienceSize)
	}

	// An explicit size wins over presets.
	scenario.AudienceSize = "42"
	inputs = scenario.CampaignInputs()
	if inputs.AudienceSize != "42" {
		t.Errorf("AudienceSize = %q, expected the explicit \"42\"", inputs.AudienceSize)
	}

	// The Custom preset leaves the size to the scenario.
	scenario = Scenario{AudiencePresets: []string{"Custom"}}
	inputs = scenario.CampaignInputs()
	if inputs.AudienceSize != "" {
		t.Errorf("AudienceSize = %q, expected empty for the Custom preset", inputs.AudienceSize)
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name         string
		conf         Configuration
		wantFragment string
	}{
		{
			name:         "No active scenarios",
			conf:         Configuration{Scenarios: []Scenario{{Name: "draft", Active: false}}},
			wantFragment: "No active scenarios",
		},
		{
			name: "Missing dates",
			conf: Configuration{Scenarios: []Scenario{{
				Name:   "undated",
				Active: true,
			}}},
			wantFragment: "no campaign dates",
		},
		{
			name: "Unknown preset",
			conf: Configuration{Scenarios: []Scenario{{
				Name:            "presets",
				Active:          true,
				StartDate:       "2025-10-01",
				EndDate:         "2025-10-07",
				AudiencePresets: []string{"MARS_18P"},
			}}},
			wantFragment: "unknown audience preset",
		},
		{
			name: "Custom pacing without shares",
			conf: Configuration{Scenarios: []Scenario{{
				Name:       "custom",
				Active:     true,
				StartDate:  "2025-10-01",
				EndDate:    "2025-10-07",
				PacingMode: "Custom",
			}}},
			wantFragment: "defines no shares",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.conf.ValidateConfiguration()
			for _, w := range warnings {
				if strings.Contains(w, tt.wantFragment) {
					return
				}
			}
			t.Errorf("expected a warning containing %q, got %v", tt.wantFragment, warnings)
		})
	}
}

func TestValidateConfigurationClean(t *testing.T) {
	conf := Configuration{Scenarios: []Scenario{{
		Name:      "ok",
		Active:    true,
		StartDate: "2025-10-01",
		EndDate:   "2025-10-07",
	}}}
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}
