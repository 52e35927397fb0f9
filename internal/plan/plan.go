// Package plan defines the data structures for a campaign buy and includes
// the snapshot builder that derives delivery KPIs and the daily pacing table.
package plan

import (
	"github.com/svanduffel/reach-planner/pkg/numeric"
	"github.com/svanduffel/reach-planner/pkg/reach"
)

// CostType selects how the buy is priced.
type CostType string

const (
	// CostTypeCPM prices the buy per thousand impressions.
	CostTypeCPM CostType = "CPM"

	// CostTypeCPC prices the buy per click.
	CostTypeCPC CostType = "CPC"
)

// PacingMode selects how the budget is spread across campaign days.
type PacingMode string

const (
	// PacingEven spreads the budget uniformly across the campaign.
	PacingEven PacingMode = "Even"

	// PacingCustom spreads the budget by user-supplied per-day shares.
	PacingCustom PacingMode = "Custom"
)

// CampaignInputs is the raw buy parameter set. Numeric fields are kept as
// text so partially typed values survive until parsing; parsing happens on
// every snapshot build, never earlier.
type CampaignInputs struct {
	Currency     string
	Budget       string
	CostType     CostType
	CPM          string
	CPC          string
	CTR          string
	VTR          string
	Viewability  string
	AvgFreq      string
	AudienceSize string
	StartDate    string
	EndDate      string
	PacingMode   PacingMode
	ReachModel   reach.Model
	TargetImpr   string
}

// ParsedInputs holds the per-field validation results for one build.
type ParsedInputs struct {
	Budget       numeric.Parsed
	CPM          numeric.Parsed
	CPC          numeric.Parsed
	CTR          numeric.Parsed
	VTR          numeric.Parsed
	Viewability  numeric.Parsed
	AvgFreq      numeric.Parsed
	AudienceSize numeric.Parsed
	TargetImpr   numeric.Parsed
}

// Values holds the numeric working set after validation. Rates are ratios
// (0-1), not percentages. CPM is the effective CPM: the parsed CPM in CPM
// mode, or the CPC-derived equivalent in CPC mode.
type Values struct {
	Budget       float64
	CostType     CostType
	CPM          float64
	CPC          float64
	CTR          float64
	VTR          float64
	Viewability  float64
	AvgFreq      float64
	AudienceSize float64
	TargetImpr   float64
}

// DailyRow is one line of the pacing table, in calendar order.
type DailyRow struct {
	Date        string
	Budget      float64
	Impressions float64
	IncrReach   float64
	CumReach    float64
}

// Metrics holds the aggregate campaign KPIs.
type Metrics struct {
	Impressions   float64
	Clicks        float64
	CompleteViews float64
	ViewableImpr  float64
	Reach         float64
	ReachPct      float64
	AvgFreqObs    float64
	GRPs          float64
	ECPC          float64
	ECPCV         float64
	VCPM          float64
}

// Validation error kinds. Stable identifiers: config files, UIs and tests key
// messages off these.
const (
	ErrBudgetPositive   = "budgetPositive"
	ErrCPMPositive      = "cpmPositive"
	ErrCPCPositive      = "cpcPositive"
	ErrCPCCTRRequired   = "cpcCtrRequired"
	ErrCTRRange         = "ctrRange"
	ErrVTRRange         = "vtrRange"
	ErrViewabilityRange = "viewabilityRange"
	ErrAvgFreqPositive  = "avgFreqPositive"
	ErrAudiencePositive = "audiencePositive"
	ErrDateOrder        = "dateOrder"
	ErrTargetImprValid  = "targetImprValid"
	ErrCustomShares     = "customShares"
)

// Validation error field keys.
const (
	FieldBudget       = "budget"
	FieldCPM          = "cpm"
	FieldCPC          = "cpc"
	FieldCTR          = "ctr"
	FieldVTR          = "vtr"
	FieldViewability  = "viewability"
	FieldAvgFreq      = "avgFreq"
	FieldAudienceSize = "audienceSize"
	FieldDateRange    = "dateRange"
	FieldTargetImpr   = "targetImpr"
	FieldCustomShares = "customShares"
)

// FieldError describes one failed input constraint. Params carries values to
// interpolate into the user-facing message, such as the current share sum.
type FieldError struct {
	Kind   string
	Params map[string]string
}

// Snapshot is the full derived state for one set of campaign inputs. It is a
// transient value rebuilt from scratch on every evaluation.
type Snapshot struct {
	CampaignDays      int
	Values            Values
	Parsed            ParsedInputs
	CostInputValid    bool
	CustomShareValues []float64
	CustomShareSum    float64
	CustomSharesValid bool
	Errors            map[string]FieldError
	HasBlockingErrors bool
	DailyBudgets      []float64
	DailyRows         []DailyRow
	Metrics           Metrics
	NeededBudget      float64
}

// Result pairs a named scenario with its snapshot for output rendering.
type Result struct {
	Name     string
	Currency string
	Snapshot Snapshot
}
