// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/svanduffel/reach-planner/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// Discriminator literals accepted in scenario configs. Unknown values do not
// fail a run; the engine falls back to the default (CPM, Even, Poisson), so
// these checks only produce warnings.
var (
	knownCostTypes   = []string{"CPM", "CPC"}
	knownPacingModes = []string{"Even", "Custom"}
	knownReachModels = []string{"Poisson", "Simple"}
)

// ScenarioFieldWarnings reports unknown discriminator values for one
// scenario. Empty strings are accepted as "use the default".
func ScenarioFieldWarnings(name, costType, pacingMode, reachModel string) []string {
	var warnings []string

	if costType != "" && !contains(knownCostTypes, costType) {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s' has unknown costType '%s'; CPM will be assumed", name, costType))
	}
	if pacingMode != "" && !contains(knownPacingModes, pacingMode) {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s' has unknown pacingMode '%s'; Even will be assumed", name, pacingMode))
	}
	if reachModel != "" && !contains(knownReachModels, reachModel) {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s' has unknown reachModel '%s'; Poisson will be assumed", name, reachModel))
	}

	return warnings
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
