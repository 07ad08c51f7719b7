// Package output provides utilities for formatting and displaying reschedule results.
package output

import (
	"fmt"
	"strings"

	"github.com/iwvelando/prepay-planner/internal/engine"
	"github.com/iwvelando/prepay-planner/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable summary.
func PrettyFormat(result *engine.Result) {
	fmt.Print(PrettyString(result))
}

// PrettyString renders the reschedule result as a human-readable summary.
func PrettyString(result *engine.Result) string {
	p := message.NewPrinter(language.English)
	var builder strings.Builder

	builder.WriteString("--- Reschedule summary ---\n")
	builder.WriteString(fmt.Sprintf("Outstanding after prepayments: %s\n", format.Currency(result.Outstanding)))

	if len(result.Events) > 0 {
		builder.WriteString("\nSimulation log:\n")
		for _, event := range result.Events {
			switch event.Type {
			case engine.EventEMI:
				_, _ = p.Fprintf(&builder, "  %3d | %-29s | month %3d | %.0f -> %.0f (interest %.0f, principal %.0f)\n",
					event.Seq, event.Type, event.Month, event.Before, event.After, event.Interest, event.Principal)
			default:
				_, _ = p.Fprintf(&builder, "  %3d | %-29s | month %3d | %.0f -> %.0f (amount %.0f)\n",
					event.Seq, event.Type, event.Month, event.Before, event.After, event.Amount)
			}
		}
	}

	builder.WriteString("\nScenario A (keep EMI, reduce tenure): ")
	switch {
	case result.KeepEMI.Err != "":
		builder.WriteString(fmt.Sprintf("failed: %s\n", result.KeepEMI.Err))
	case result.KeepEMI.Unbounded:
		builder.WriteString("never finishes; the EMI does not cover monthly interest\n")
	default:
		_, _ = p.Fprintf(&builder, "finishes in %d months, total interest %s\n",
			result.KeepEMI.MonthsToFinish, format.Currency(result.KeepEMI.TotalInterest))
	}

	builder.WriteString("Scenario B (keep tenure, reduce EMI): ")
	switch {
	case result.ReduceEMI.Err != "":
		builder.WriteString(fmt.Sprintf("failed: %s\n", result.ReduceEMI.Err))
	case result.ReduceEMI.NewEMI == 0:
		builder.WriteString("loan already past its tenure; nothing left to reschedule\n")
	default:
		_, _ = p.Fprintf(&builder, "new EMI %s, total interest %s\n",
			format.Currency(result.ReduceEMI.NewEMI), format.Currency(result.ReduceEMI.TotalInterest))
	}

	if result.Baseline != nil {
		builder.WriteString(fmt.Sprintf("\nUnchanged plan: %d more months, remaining interest %s\n",
			result.Baseline.OriginalMonths, format.Currency(result.Baseline.OriginalRemainingInterest)))
		builder.WriteString(fmt.Sprintf("Interest saved: %s (keep EMI, %d months sooner) / %s (reduce EMI)\n",
			format.Currency(result.Baseline.KeepEMIInterestSaved), result.Baseline.KeepEMIMonthsSaved,
			format.Currency(result.Baseline.ReduceEMIInterestSaved)))
	}

	writeScheduleTable(&builder, p, "keep EMI", result.KeepEMI.Schedule)
	writeScheduleTable(&builder, p, "reduce EMI", result.ReduceEMI.Schedule)

	return builder.String()
}

func writeScheduleTable(builder *strings.Builder, p *message.Printer, name string, schedule []engine.ScheduleRow) {
	if len(schedule) == 0 {
		return
	}
	builder.WriteString(fmt.Sprintf("\n--- Schedule (%s) ---\n", name))
	builder.WriteString("Month | Payment       | Principal     | Interest      | Remaining\n")
	builder.WriteString("_____ | _____________ | _____________ | _____________ | _____________\n")
	for _, row := range schedule {
		_, _ = p.Fprintf(builder, "%5d | %13.0f | %13.0f | %13.0f | %13.0f\n",
			row.Month, row.Payment, row.Principal, row.Interest, row.Remaining)
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(result *engine.Result) {
	fmt.Print(CsvString(result))
}

// CsvString renders both scenario schedules in comma-separated value format.
func CsvString(result *engine.Result) string {
	var builder strings.Builder

	builder.WriteString(`"scenario","month","payment","principal","interest","remaining"`)
	builder.WriteString("\n")
	writeScheduleCsv(&builder, "keepEmi", result.KeepEMI.Schedule)
	writeScheduleCsv(&builder, "reduceEmi", result.ReduceEMI.Schedule)

	return builder.String()
}

func writeScheduleCsv(builder *strings.Builder, name string, schedule []engine.ScheduleRow) {
	for _, row := range schedule {
		builder.WriteString(fmt.Sprintf(`"%s","%d","%.0f","%.0f","%.0f","%.0f"`,
			name, row.Month, row.Payment, row.Principal, row.Interest, row.Remaining))
		builder.WriteString("\n")
	}
}
