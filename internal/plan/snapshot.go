package plan

import (
	"math"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/svanduffel/reach-planner/pkg/constants"
	"github.com/svanduffel/reach-planner/pkg/datetime"
	"github.com/svanduffel/reach-planner/pkg/mathutil"
	"github.com/svanduffel/reach-planner/pkg/numeric"
	"github.com/svanduffel/reach-planner/pkg/pacing"
	"github.com/svanduffel/reach-planner/pkg/reach"
)

// BuildSnapshot evaluates one set of campaign inputs into the full derived
// snapshot: validation errors, daily pacing table, aggregate KPIs, and the
// inverse budget for a target impression count.
//
// The function is pure and never fails: malformed input degrades to zeroes
// and empty sequences while the corresponding field error is recorded, so the
// caller always has something to render. If logger is nil a no-op logger is
// used.
func BuildSnapshot(logger *zap.Logger, inputs CampaignInputs, customShares []string) Snapshot {
	if logger == nil {
		logger = zap.NewNop()
	}

	rawDiff, rawDiffOK := datetime.DiffDaysInclusive(inputs.StartDate, inputs.EndDate)
	campaignDays := datetime.DaysBetweenInclusive(inputs.StartDate, inputs.EndDate)

	parsed := ParsedInputs{
		Budget:       numeric.ParsePositive(inputs.Budget),
		CPM:          numeric.ParsePositive(inputs.CPM),
		CPC:          numeric.ParsePositive(inputs.CPC),
		CTR:          numeric.ParsePercentage(inputs.CTR, 0, 100),
		VTR:          numeric.ParsePercentage(inputs.VTR, 0, 100),
		Viewability:  numeric.ParsePercentage(inputs.Viewability, 0, 100),
		AvgFreq:      numeric.ParsePositive(inputs.AvgFreq),
		AudienceSize: numeric.ParsePositive(inputs.AudienceSize),
		TargetImpr:   numeric.ParseNonNegative(inputs.TargetImpr),
	}

	costType := CostTypeCPM
	if inputs.CostType == CostTypeCPC {
		costType = CostTypeCPC
	}

	ctrRatio := 0.0
	if parsed.CTR.Valid {
		ctrRatio = parsed.CTR.Value / constants.PercentageMultiplier
	}

	values := Values{
		Budget:       valueOrZero(parsed.Budget),
		CostType:     costType,
		CPC:          valueOrZero(parsed.CPC),
		CTR:          ctrRatio,
		VTR:          ratioOrZero(parsed.VTR),
		Viewability:  ratioOrZero(parsed.Viewability),
		AvgFreq:      valueOrZero(parsed.AvgFreq),
		AudienceSize: valueOrZero(parsed.AudienceSize),
		TargetImpr:   math.Max(0, valueOrZero(parsed.TargetImpr)),
	}

	costInputValid := false
	switch costType {
	case CostTypeCPM:
		if parsed.CPM.Valid {
			values.CPM = parsed.CPM.Value
			costInputValid = true
		}
	case CostTypeCPC:
		if parsed.CPC.Valid && ctrRatio > 0 {
			values.CPM = parsed.CPC.Value * ctrRatio * constants.ImpressionsPerCPMUnit
			costInputValid = true
		}
	}

	shareValues := make([]float64, len(customShares))
	for i, share := range customShares {
		if p := numeric.ParseNumber(share); p.Valid {
			shareValues[i] = math.Max(0, p.Value)
		}
	}
	shareSum := mathutil.RoundCurrency(mathutil.Sum(shareValues))
	sharesValid := inputs.PacingMode != PacingCustom ||
		campaignDays == 0 ||
		mathutil.WithinTolerance(shareSum, constants.CustomShareTarget, constants.CustomShareTolerance)

	errors := collectErrors(inputs, parsed, costType, ctrRatio, rawDiff, rawDiffOK, campaignDays, sharesValid, shareSum)

	_, blockingCustom := errors[FieldCustomShares]
	hasBlocking := hasAny(errors, FieldBudget, FieldCPM, FieldCPC, FieldAvgFreq, FieldAudienceSize, FieldDateRange) ||
		(inputs.PacingMode == PacingCustom && blockingCustom)

	var dailyBudgets []float64
	if campaignDays > 0 && parsed.Budget.Valid {
		if inputs.PacingMode == PacingCustom && sharesValid {
			dailyBudgets = pacing.DistributeByWeights(parsed.Budget.Value, shareValues)
		} else {
			dailyBudgets = pacing.DistributeEven(parsed.Budget.Value, campaignDays)
		}
	}

	dailyImpressions := make([]float64, len(dailyBudgets))
	if costInputValid && values.CPM > 0 {
		for i, budget := range dailyBudgets {
			dailyImpressions[i] = budget / values.CPM * constants.ImpressionsPerCPMUnit
		}
	}

	// No budget split means no pacing table: the timeline only renders once
	// there is spend to place on it.
	var dates []time.Time
	if len(dailyBudgets) > 0 {
		dates = datetime.SequenceDates(inputs.StartDate, campaignDays)
	}
	rows := make([]DailyRow, 0, len(dates))
	cumulativeImpressions := 0.0
	previousReach := 0.0
	for i, date := range dates {
		impressionsForDay := 0.0
		if i < len(dailyImpressions) {
			impressionsForDay = dailyImpressions[i]
		}
		cumulativeImpressions += impressionsForDay
		cumulativeReach := reach.FromImpressions(cumulativeImpressions, values.AudienceSize, values.AvgFreq, inputs.ReachModel)
		incrementalReach := math.Max(0, cumulativeReach-previousReach)
		previousReach = cumulativeReach
		budgetForDay := 0.0
		if i < len(dailyBudgets) {
			budgetForDay = dailyBudgets[i]
		}
		rows = append(rows, DailyRow{
			Date:        datetime.FormatISO(date),
			Budget:      budgetForDay,
			Impressions: impressionsForDay,
			IncrReach:   incrementalReach,
			CumReach:    cumulativeReach,
		})
	}

	totalImpressions := mathutil.Sum(dailyImpressions)
	clicks := totalImpressions * values.CTR
	completeViews := totalImpressions * values.VTR
	viewableImpr := totalImpressions * values.Viewability
	totalReach := reach.FromImpressions(totalImpressions, values.AudienceSize, values.AvgFreq, inputs.ReachModel)
	reachPct := mathutil.SafeDivide(totalReach, values.AudienceSize, 0)
	avgFreqObs := mathutil.SafeDivide(totalImpressions, totalReach, 0)

	metrics := Metrics{
		Impressions:   totalImpressions,
		Clicks:        clicks,
		CompleteViews: completeViews,
		ViewableImpr:  viewableImpr,
		Reach:         totalReach,
		ReachPct:      reachPct,
		AvgFreqObs:    avgFreqObs,
		GRPs:          reachPct * constants.PercentageMultiplier * avgFreqObs,
		ECPC:          mathutil.SafeDivide(values.Budget, clicks, 0),
		ECPCV:         mathutil.SafeDivide(values.Budget, completeViews, 0),
		VCPM:          mathutil.SafeDivide(values.Budget*constants.ImpressionsPerCPMUnit, viewableImpr, 0),
	}

	neededBudget := requiredBudget(costType, costInputValid, parsed.TargetImpr, values)

	logger.Debug("built campaign snapshot",
		zap.String("op", "plan.BuildSnapshot"),
		zap.Int("campaignDays", campaignDays),
		zap.Float64("totalImpressions", totalImpressions),
		zap.Int("errors", len(errors)),
		zap.Bool("blocking", hasBlocking),
	)

	return Snapshot{
		CampaignDays:      campaignDays,
		Values:            values,
		Parsed:            parsed,
		CostInputValid:    costInputValid,
		CustomShareValues: shareValues,
		CustomShareSum:    shareSum,
		CustomSharesValid: sharesValid,
		Errors:            errors,
		HasBlockingErrors: hasBlocking,
		DailyBudgets:      dailyBudgets,
		DailyRows:         rows,
		Metrics:           metrics,
		NeededBudget:      neededBudget,
	}
}

// collectErrors builds the field-keyed error map. Every failed constraint is
// recorded; none of them stops the rest of the computation.
func collectErrors(inputs CampaignInputs, parsed ParsedInputs, costType CostType, ctrRatio float64,
	rawDiff int, rawDiffOK bool, campaignDays int, sharesValid bool, shareSum float64) map[string]FieldError {

	errors := make(map[string]FieldError)

	if !parsed.Budget.Valid {
		errors[FieldBudget] = FieldError{Kind: ErrBudgetPositive}
	}
	if costType == CostTypeCPM {
		if !parsed.CPM.Valid {
			errors[FieldCPM] = FieldError{Kind: ErrCPMPositive}
		}
	} else if !parsed.CPC.Valid {
		errors[FieldCPC] = FieldError{Kind: ErrCPCPositive}
	} else if ctrRatio <= 0 {
		errors[FieldCPC] = FieldError{Kind: ErrCPCCTRRequired}
	}
	if !parsed.CTR.Valid {
		errors[FieldCTR] = FieldError{Kind: ErrCTRRange}
	}
	if !parsed.VTR.Valid {
		errors[FieldVTR] = FieldError{Kind: ErrVTRRange}
	}
	if !parsed.Viewability.Valid {
		errors[FieldViewability] = FieldError{Kind: ErrViewabilityRange}
	}
	if !parsed.AvgFreq.Valid {
		errors[FieldAvgFreq] = FieldError{Kind: ErrAvgFreqPositive}
	}
	if !parsed.AudienceSize.Valid {
		errors[FieldAudienceSize] = FieldError{Kind: ErrAudiencePositive}
	}
	if rawDiffOK && rawDiff < 0 {
		errors[FieldDateRange] = FieldError{Kind: ErrDateOrder}
	}
	if inputs.TargetImpr != "" && !parsed.TargetImpr.Valid {
		errors[FieldTargetImpr] = FieldError{Kind: ErrTargetImprValid}
	}
	if inputs.PacingMode == PacingCustom && campaignDays > 0 && !sharesValid {
		errors[FieldCustomShares] = FieldError{
			Kind:   ErrCustomShares,
			Params: map[string]string{"sum": strconv.FormatFloat(shareSum, 'f', 2, 64)},
		}
	}

	return errors
}

// requiredBudget is the inverse calculation: the spend needed to buy the
// target impression count under the current cost inputs. Zero when either the
// cost input or the target is invalid.
func requiredBudget(costType CostType, costInputValid bool, targetImpr numeric.Parsed, values Values) float64 {
	if !costInputValid || !targetImpr.Valid {
		return 0
	}
	target := math.Max(0, targetImpr.Value)
	if costType == CostTypeCPM {
		return target * values.CPM / constants.ImpressionsPerCPMUnit
	}
	return target * values.CTR * values.CPC
}

func valueOrZero(p numeric.Parsed) float64 {
	if p.Valid {
		return p.Value
	}
	return 0
}

func ratioOrZero(p numeric.Parsed) float64 {
	if p.Valid {
		return p.Value / constants.PercentageMultiplier
	}
	return 0
}

func hasAny(errors map[string]FieldError, fields ...string) bool {
	for _, field := range fields {
		if _, ok := errors[field]; ok {
			return true
		}
	}
	return false
}
