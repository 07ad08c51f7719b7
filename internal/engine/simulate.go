package engine

import (
	"fmt"

	"github.com/iwvelando/prepay-planner/pkg/mathutil"
	"go.uber.org/zap"
)

// MergePrepayments collapses the raw prepayment list into a month -> total
// amount mapping. Amounts at the same month sum; entries with a non-positive
// amount or a negative month are dropped silently.
func MergePrepayments(list []Prepayment) map[int]float64 {
	merged := make(map[int]float64)
	for _, prepayment := range list {
		if prepayment.Amount <= 0 || prepayment.Month < 0 {
			continue
		}
		merged[prepayment.Month] += prepayment.Amount
	}
	return merged
}

// simulation is the outcome of the forward pass: the ordered event log, the
// post-prepayment outstanding, and the month the simulation advanced to.
type simulation struct {
	events   []SimulationEvent
	balance  float64
	endMonth int
}

// startingOutstanding derives the balance implied by PaidEMIs installments
// having been paid. An official schedule row takes precedence; otherwise the
// paid EMIs are forward-simulated from the stated principal.
func (e *Engine) startingOutstanding(req Request) (float64, error) {
	if req.PaidEMIs == 0 {
		if req.Principal > 0 {
			return mathutil.Round(req.Principal), nil
		}
		return 0, &ValidationError{Field: "principal", Reason: "required when no EMIs have been paid"}
	}

	if len(req.OfficialSchedule) >= req.PaidEMIs {
		return mathutil.Round(req.OfficialSchedule[req.PaidEMIs-1].Outstanding), nil
	}

	if req.Principal <= 0 {
		return 0, &ValidationError{Field: "principal", Reason: "required when the official schedule does not cover the paid EMIs"}
	}

	rows, err := AmortizeUntilPaid(req.Principal, MonthlyRate(req.AnnualRate), req.EMI, 1, req.PaidEMIs)
	if err != nil {
		return 0, fmt.Errorf("replaying %d paid EMIs: %w", req.PaidEMIs, err)
	}
	if len(rows) == 0 {
		return mathutil.Round(req.Principal), nil
	}
	return rows[len(rows)-1].Remaining, nil
}

// simulate advances month by month from PaidEMIs to the latest prepayment
// month, applying one EMI per month and any prepayment scheduled for that
// month strictly after the EMI. A prepayment landing exactly on PaidEMIs
// applies to the starting balance before any simulated month and takes the
// lowest sequence number.
func (e *Engine) simulate(req Request, start float64, prepayments map[int]float64) (simulation, error) {
	monthlyRate := MonthlyRate(req.AnnualRate)
	sim := simulation{balance: start, endMonth: req.PaidEMIs}
	seq := 0

	if amount, ok := prepayments[req.PaidEMIs]; ok {
		before := sim.balance
		sim.balance = mathutil.Round(mathutil.Max(0, sim.balance-amount))
		sim.events = append(sim.events, SimulationEvent{
			Seq:    seq,
			Type:   EventPrepayRetro,
			Month:  req.PaidEMIs,
			Before: before,
			After:  sim.balance,
			Amount: amount,
		})
		seq++
		e.logger.Debug("applied retroactive prepayment",
			zap.String("op", "engine.simulate"),
			zap.Int("month", req.PaidEMIs),
			zap.Float64("amount", amount),
			zap.Float64("outstanding", sim.balance),
		)
	}

	lastMonth := req.PaidEMIs
	for month := range prepayments {
		if month > lastMonth {
			lastMonth = month
		}
	}
	sim.endMonth = lastMonth

	for month := req.PaidEMIs + 1; month <= lastMonth && sim.balance > 0; month++ {
		row, err := emiStep(sim.balance, monthlyRate, req.EMI, month)
		if err != nil {
			return sim, err
		}
		sim.events = append(sim.events, SimulationEvent{
			Seq:       seq,
			Type:      EventEMI,
			Month:     month,
			Before:    sim.balance,
			After:     row.Remaining,
			Interest:  row.Interest,
			Principal: row.Principal,
		})
		seq++
		sim.balance = row.Remaining

		if amount, ok := prepayments[month]; ok {
			before := sim.balance
			sim.balance = mathutil.Round(mathutil.Max(0, sim.balance-amount))
			sim.events = append(sim.events, SimulationEvent{
				Seq:    seq,
				Type:   EventPrepay,
				Month:  month,
				Before: before,
				After:  sim.balance,
				Amount: amount,
			})
			seq++
			e.logger.Debug("applied prepayment",
				zap.String("op", "engine.simulate"),
				zap.Int("month", month),
				zap.Float64("amount", amount),
				zap.Float64("outstanding", sim.balance),
			)
		}
	}

	return sim, nil
}
