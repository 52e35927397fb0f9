// Package constants provides shared constants for the reach-planner application.
package constants

// DateLayout is the format expected for campaign dates in config files and is
// also the output date format.
const DateLayout = "2006-01-02"

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CentStep is the smallest budget increment distributed during pacing
	CentStep = 0.01

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// ImpressionsPerCPMUnit is the impression count a single CPM unit buys
	ImpressionsPerCPMUnit = 1000.0
)

// Pacing constants
const (
	// CustomShareTolerance is how far (in percentage points) a custom pacing
	// share total may deviate from 100 and still be accepted. Product choice
	// carried over for compatibility; tune here, not at call sites.
	CustomShareTolerance = 0.5

	// CustomShareTarget is the required sum of custom pacing shares.
	CustomShareTarget = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// CSVExportFileName is the suggested file name for the pacing export
	CSVExportFileName = "pacing_reach.csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)
