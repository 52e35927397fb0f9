// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/svanduffel/reach-planner/internal/plan"
	"github.com/svanduffel/reach-planner/pkg/audience"
	"github.com/svanduffel/reach-planner/pkg/reach"
	"github.com/svanduffel/reach-planner/pkg/validation"
)

// Configuration holds all configuration for reach-planner.
type Configuration struct {
	Scenarios []Scenario
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Scenario holds the buy parameters for one campaign what-if. All numeric
// fields are free text; validation happens inside the snapshot builder so a
// half-filled scenario still evaluates to partial results.
type Scenario struct {
	Name            string
	Active          bool
	Currency        string
	Budget          string
	CostType        string
	Cpm             string
	Cpc             string
	Ctr             string
	Vtr             string
	Viewability     string
	AvgFreq         string
	AudienceSize    string
	AudiencePresets []string
	StartDate       string
	EndDate         string
	PacingMode      string
	ReachModel      string
	TargetImpr      string
	CustomShares    []string
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	// Numeric-looking YAML scalars decode into the string fields.
	err := viper.Unmarshal(&configuration, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = true
	})
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// CampaignInputs maps a scenario onto the snapshot builder's input set,
// resolving audience presets into a universe size when the scenario does not
// set one explicitly.
func (s *Scenario) CampaignInputs() plan.CampaignInputs {
	audienceSize := s.AudienceSize
	if audienceSize == "" {
		if total, ok := audience.Resolve(s.AudiencePresets); ok {
			audienceSize = strconv.FormatFloat(total, 'f', -1, 64)
		}
	}

	return plan.CampaignInputs{
		Currency:     s.Currency,
		Budget:       s.Budget,
		CostType:     plan.CostType(s.CostType),
		CPM:          s.Cpm,
		CPC:          s.Cpc,
		CTR:          s.Ctr,
		VTR:          s.Vtr,
		Viewability:  s.Viewability,
		AvgFreq:      s.AvgFreq,
		AudienceSize: audienceSize,
		StartDate:    s.StartDate,
		EndDate:      s.EndDate,
		PacingMode:   plan.PacingMode(s.PacingMode),
		ReachModel:   reach.Model(s.ReachModel),
		TargetImpr:   s.TargetImpr,
	}
}

// ValidateConfiguration checks for conditions worth warning about without
// failing the run; hard input validation belongs to the snapshot builder.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	active := 0
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			continue
		}
		active++

		if scenario.StartDate == "" || scenario.EndDate == "" {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' has no campaign dates; the daily table will be empty", scenario.Name))
		}
		for _, key := range scenario.AudiencePresets {
			if _, ok := audience.Lookup(key); !ok {
				warnings = append(warnings, fmt.Sprintf("Scenario '%s' references unknown audience preset '%s'", scenario.Name, key))
			}
		}
		if scenario.PacingMode == string(plan.PacingCustom) && len(scenario.CustomShares) == 0 {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' uses custom pacing but defines no shares; even defaults will be used", scenario.Name))
		}
		warnings = append(warnings, validation.ScenarioFieldWarnings(scenario.Name, scenario.CostType, scenario.PacingMode, scenario.ReachModel)...)
	}

	if active == 0 {
		warnings = append(warnings, "No active scenarios are configured")
	}

	return warnings
}
