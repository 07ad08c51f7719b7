package engine

import (
	"fmt"
	"math"

	"github.com/iwvelando/prepay-planner/pkg/constants"
	"github.com/iwvelando/prepay-planner/pkg/mathutil"
)

// MonthlyRate converts an annual percentage rate (e.g. 8.35) into a monthly
// decimal rate.
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// emiStep applies one EMI to the balance and returns the resulting schedule
// row. Interest is rounded first, principal is the EMI remainder, and the
// final month's principal is clipped to the balance so that the closing
// payment is interest plus whatever principal remains rather than the nominal
// EMI.
func emiStep(balance, monthlyRate, emi float64, month int) (ScheduleRow, error) {
	interest := mathutil.Round(balance * monthlyRate)
	principal := emi - interest
	if principal <= 0 {
		return ScheduleRow{}, fmt.Errorf("month %d: %w", month, ErrEMITooSmall)
	}
	payment := emi
	if principal > balance {
		principal = balance
		payment = interest + principal
	}
	return ScheduleRow{
		Month:     month,
		Payment:   payment,
		Principal: principal,
		Interest:  interest,
		Remaining: mathutil.Round(balance - principal),
	}, nil
}

// AmortizeUntilPaid simulates fixed-EMI payments month by month until the
// balance reaches zero or maxMonths rows have been produced. Rows are labeled
// starting at firstMonth. Each call is a fresh simulation; partial rows are
// returned alongside an ErrEMITooSmall failure so callers can report how far
// the schedule got.
func AmortizeUntilPaid(balance, monthlyRate, emi float64, firstMonth, maxMonths int) ([]ScheduleRow, error) {
	if balance <= 0 || maxMonths <= 0 {
		return nil, nil
	}
	if maxMonths > constants.MaxScheduleMonths {
		maxMonths = constants.MaxScheduleMonths
	}

	rows := make([]ScheduleRow, 0, maxMonths)
	for i := 0; i < maxMonths && balance > 0; i++ {
		row, err := emiStep(balance, monthlyRate, emi, firstMonth+i)
		if err != nil {
			return rows, err
		}
		balance = row.Remaining
		rows = append(rows, row)
	}
	return rows, nil
}

// ComputeEMI returns the fixed installment that amortizes the balance over the
// given number of months using the standard annuity formula. A non-positive
// month count is degenerate and yields zero.
func ComputeEMI(balance, monthlyRate float64, months int) float64 {
	if months <= 0 || balance <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		return mathutil.Round(balance / float64(months))
	}

	power := math.Pow(1.00+monthlyRate, float64(months))
	discountFactor := (power - 1.00) / power
	return mathutil.Round(balance * monthlyRate / discountFactor)
}

// sumInterest totals the interest component across schedule rows.
func sumInterest(rows []ScheduleRow) float64 {
	total := 0.00
	for _, row := range rows {
		total += row.Interest
	}
	return total
}
