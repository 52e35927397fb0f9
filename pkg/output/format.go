// Package output provides utilities for formatting and displaying plan results.
package output

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/svanduffel/reach-planner/internal/plan"
)

// csvHeader is the fixed pacing-export header. Spreadsheet tooling depends on
// this exact shape: no quoting, comma separation, one row per campaign day.
const csvHeader = "date,budget,impressions,incrReach,cumReach"

// PacingCSV renders the daily pacing table in the interchange CSV format.
// Budget keeps 2 decimals; the impression and reach columns are rounded to
// whole people. Rows follow the table's calendar order.
func PacingCSV(rows []plan.DailyRow) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, csvHeader)
	for _, row := range rows {
		lines = append(lines, strings.Join([]string{
			row.Date,
			strconv.FormatFloat(row.Budget, 'f', 2, 64),
			strconv.FormatInt(int64(math.Round(row.Impressions)), 10),
			strconv.FormatInt(int64(math.Round(row.IncrReach)), 10),
			strconv.FormatInt(int64(math.Round(row.CumReach)), 10),
		}, ","))
	}
	return strings.Join(lines, "\n")
}

// PrettyFormat outputs a human-readable rather than machine-readable report.
// Numbers are grouped for reading (the product's home market reads French
// formatting); the CSV export stays culture-invariant.
func PrettyFormat(w io.Writer, results []plan.Result) {
	p := message.NewPrinter(language.French)
	for i, result := range results {
		snapshot := result.Snapshot
		currency := result.Currency
		if currency == "" {
			currency = "€"
		}

		fmt.Fprintf(w, "--- Results for scenario %s ---\n", result.Name)

		if len(snapshot.Errors) > 0 {
			fields := make([]string, 0, len(snapshot.Errors))
			for field := range snapshot.Errors {
				fields = append(fields, field)
			}
			sort.Strings(fields)
			for _, field := range fields {
				fieldErr := snapshot.Errors[field]
				line := fmt.Sprintf("! %s: %s", field, fieldErr.Kind)
				if sum, ok := fieldErr.Params["sum"]; ok {
					line += fmt.Sprintf(" (current sum %s)", sum)
				}
				fmt.Fprintln(w, line)
			}
		}

		fmt.Fprintf(w, "Date       | Budget       | Impressions  | Incr. reach  | Cum. reach\n")
		fmt.Fprintf(w, "____       | ______       | ___________  | ___________  | __________\n")
		for _, row := range snapshot.DailyRows {
			_, _ = p.Fprintf(w, "%s | %s%.2f | %d | %d | %d\n",
				row.Date, currency, row.Budget,
				int64(math.Round(row.Impressions)),
				int64(math.Round(row.IncrReach)),
				int64(math.Round(row.CumReach)),
			)
		}

		metrics := snapshot.Metrics
		_, _ = p.Fprintf(w, "Impressions: %d\n", int64(math.Round(metrics.Impressions)))
		_, _ = p.Fprintf(w, "Clicks: %d\n", int64(math.Round(metrics.Clicks)))
		_, _ = p.Fprintf(w, "Completed views: %d\n", int64(math.Round(metrics.CompleteViews)))
		_, _ = p.Fprintf(w, "Viewable impressions: %d\n", int64(math.Round(metrics.ViewableImpr)))
		_, _ = p.Fprintf(w, "Reach: %d (%.2f%%)\n", int64(math.Round(metrics.Reach)), metrics.ReachPct*100)
		_, _ = p.Fprintf(w, "Observed frequency: %.2f\n", metrics.AvgFreqObs)
		_, _ = p.Fprintf(w, "GRPs: %.2f\n", metrics.GRPs)
		_, _ = p.Fprintf(w, "eCPC: %s%.2f | eCPCV: %s%.2f | vCPM: %s%.2f\n",
			currency, metrics.ECPC, currency, metrics.ECPCV, currency, metrics.VCPM)
		if snapshot.NeededBudget > 0 {
			_, _ = p.Fprintf(w, "Budget for target impressions: %s%.2f\n", currency, snapshot.NeededBudget)
		}

		if i < len(results)-1 {
			fmt.Fprintf(w, "\n")
		}
	}
}
