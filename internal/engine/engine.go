// Package engine computes loan-prepayment amortization scenarios. Given a
// loan's principal, rate, EMI, tenure, and a plan of lump-sum prepayments, it
// simulates month-by-month balance reduction and produces two rescheduling
// outcomes: keep the EMI and shorten the tenure, or keep the tenure and reduce
// the EMI. All currency values are rounded to the nearest whole unit at every
// step so that schedules line up with bank statements.
//
// The engine performs no I/O and holds no state between calls; identical
// inputs produce identical outputs.
package engine

import (
	"fmt"

	"github.com/iwvelando/prepay-planner/pkg/constants"
	"go.uber.org/zap"
)

// Engine runs reschedule calculations.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates an Engine. A nil logger is replaced with a no-op logger.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Validate rejects requests the engine cannot compute from. Either a positive
// principal or an official schedule must supply the outstanding balance.
func (req Request) Validate() error {
	if req.EMI <= 0 {
		return &ValidationError{Field: "emi", Reason: "must be positive"}
	}
	if req.AnnualRate < 0 {
		return &ValidationError{Field: "annualRate", Reason: "must not be negative"}
	}
	if req.TotalTenure <= 0 {
		return &ValidationError{Field: "totalTenure", Reason: "must be positive"}
	}
	if req.TotalTenure > constants.MaxScheduleMonths {
		return &ValidationError{Field: "totalTenure", Reason: fmt.Sprintf("must not exceed %d months", constants.MaxScheduleMonths)}
	}
	if req.PaidEMIs < 0 || req.PaidEMIs > req.TotalTenure {
		return &ValidationError{Field: "paidEmis", Reason: "must be between 0 and totalTenure"}
	}
	if req.Principal <= 0 && len(req.OfficialSchedule) == 0 {
		return &ValidationError{Field: "principal", Reason: "either a principal or an official schedule is required"}
	}
	return nil
}

// Reschedule derives the starting outstanding, applies the prepayment plan,
// and runs both rescheduling scenarios from the same post-prepayment balance.
// Scenario-local failures (an EMI that cannot amortize the balance) are
// reported inside the affected scenario; one scenario may fail while the other
// succeeds.
func (e *Engine) Reschedule(req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, err := e.startingOutstanding(req)
	if err != nil {
		return nil, err
	}

	monthlyRate := MonthlyRate(req.AnnualRate)
	sim, err := e.simulate(req, start, MergePrepayments(req.Prepayments))
	if err != nil {
		return nil, fmt.Errorf("forward simulation: %w", err)
	}

	result := &Result{
		Outstanding:     sim.balance,
		SimulatedMonths: sim.endMonth,
		Events:          sim.events,
	}

	firstMonth := sim.endMonth + 1
	result.KeepEMI = e.keepEMI(sim.balance, monthlyRate, req.EMI, firstMonth)
	result.ReduceEMI = e.reduceEMI(sim.balance, monthlyRate, req.TotalTenure-sim.endMonth, firstMonth)
	result.Baseline = e.baseline(result, start, monthlyRate, req.EMI,
		req.PaidEMIs+1, req.TotalTenure-req.PaidEMIs, sim.endMonth-req.PaidEMIs)

	e.logger.Debug("reschedule computed",
		zap.String("op", "engine.Reschedule"),
		zap.Float64("outstanding", result.Outstanding),
		zap.Int("simulatedMonths", result.SimulatedMonths),
		zap.Int("keepEmiMonths", result.KeepEMI.MonthsToFinish),
		zap.Bool("keepEmiUnbounded", result.KeepEMI.Unbounded),
		zap.Float64("reduceEmiNewEmi", result.ReduceEMI.NewEMI),
	)

	return result, nil
}
