package engine

import (
	"math"

	"github.com/iwvelando/prepay-planner/pkg/constants"
)

// keepEMI computes the shorten-tenure scenario. The month count comes from the
// closed form n = ceil(ln(EMI / (EMI - B*r)) / ln(1+r)); the schedule itself is
// simulated with a few months of padding since per-month rounding can drift
// past the analytic estimate.
func (e *Engine) keepEMI(balance, monthlyRate, emi float64, firstMonth int) KeepEMIPlan {
	var plan KeepEMIPlan
	if balance <= 0 {
		return plan
	}
	if emi <= 0 {
		plan.Err = ErrEMITooSmall.Error()
		return plan
	}

	var months int
	if monthlyRate == 0 {
		months = int(math.Ceil(balance / emi))
	} else {
		headroom := emi - balance*monthlyRate
		if headroom <= 0 {
			plan.Unbounded = true
			return plan
		}
		months = int(math.Ceil(math.Log(emi/headroom) / math.Log(1+monthlyRate)))
	}
	plan.MonthsToFinish = months

	schedule, err := AmortizeUntilPaid(balance, monthlyRate, emi, firstMonth, months+constants.SchedulePadMonths)
	if err != nil {
		plan.Err = err.Error()
	}
	plan.Schedule = schedule
	plan.TotalInterest = sumInterest(schedule)
	return plan
}

// reduceEMI computes the keep-tenure scenario: the balance amortizes over
// exactly remainingMonths at a freshly computed EMI. The simulated schedule is
// truncated back to remainingMonths rows; the padding only absorbs rounding
// drift.
func (e *Engine) reduceEMI(balance, monthlyRate float64, remainingMonths, firstMonth int) ReduceEMIPlan {
	var plan ReduceEMIPlan
	if remainingMonths <= 0 || balance <= 0 {
		return plan
	}

	plan.NewEMI = ComputeEMI(balance, monthlyRate, remainingMonths)
	schedule, err := AmortizeUntilPaid(balance, monthlyRate, plan.NewEMI, firstMonth, remainingMonths+constants.SchedulePadMonths)
	if err != nil {
		plan.Err = err.Error()
	}
	if len(schedule) > remainingMonths {
		schedule = schedule[:remainingMonths]
	}
	plan.Schedule = schedule
	plan.TotalInterest = sumInterest(schedule)
	return plan
}

// baseline amortizes the pre-prepayment outstanding at the unchanged EMI and
// reports what each scenario saves against it. simulatedBeyondPaid is how many
// months the forward simulation consumed past the already-paid EMIs; the
// keep-EMI scenario's payoff point is that far into the baseline timeline.
// Returns nil when the baseline itself does not terminate.
func (e *Engine) baseline(result *Result, start, monthlyRate, emi float64, firstMonth, remainingTenure, simulatedBeyondPaid int) *BaselineComparison {
	rows, err := AmortizeUntilPaid(start, monthlyRate, emi, firstMonth, remainingTenure+constants.SchedulePadMonths)
	if err != nil || len(rows) == 0 || rows[len(rows)-1].Remaining > 0 {
		return nil
	}

	comparison := &BaselineComparison{
		OriginalRemainingInterest: sumInterest(rows),
		OriginalMonths:            len(rows),
	}
	// Interest already paid during the forward simulation is part of the
	// modified plan's cost and counts against the savings.
	simulatedInterest := 0.00
	for _, event := range result.Events {
		simulatedInterest += event.Interest
	}

	if !result.KeepEMI.Unbounded && result.KeepEMI.Err == "" {
		comparison.KeepEMIInterestSaved = comparison.OriginalRemainingInterest - result.KeepEMI.TotalInterest - simulatedInterest
		comparison.KeepEMIMonthsSaved = comparison.OriginalMonths - simulatedBeyondPaid - result.KeepEMI.MonthsToFinish
	}
	if result.ReduceEMI.Err == "" {
		comparison.ReduceEMIInterestSaved = comparison.OriginalRemainingInterest - result.ReduceEMI.TotalInterest - simulatedInterest
	}
	return comparison
}
