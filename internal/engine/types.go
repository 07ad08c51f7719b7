package engine

// Request carries the loan parameters and prepayment plan for one reschedule
// calculation. Principal may be omitted when an official schedule supplies the
// outstanding balance.
type Request struct {
	Principal        float64               `json:"principal,omitempty"`
	AnnualRate       float64               `json:"annualRate"`
	EMI              float64               `json:"emi"`
	TotalTenure      int                   `json:"totalTenure"`
	PaidEMIs         int                   `json:"paidEmis"`
	Prepayments      []Prepayment          `json:"prepayments,omitempty"`
	OfficialSchedule []OfficialScheduleRow `json:"officialSchedule,omitempty"`
}

// Prepayment is a planned lump-sum payment applied after the EMI of the given
// month. Multiple prepayments at the same month are summed during the merge.
type Prepayment struct {
	Month  int     `json:"month"`
	Amount float64 `json:"amount"`
}

// OfficialScheduleRow is one row of an externally-sourced amortization
// schedule. When present, the outstanding at index PaidEMIs-1 is trusted over
// a balance derived from Principal.
type OfficialScheduleRow struct {
	Month       int     `json:"month"`
	Outstanding float64 `json:"outstanding"`
}

// EventType tags a simulation event.
type EventType string

const (
	// EventEMI is a regular EMI applied during forward simulation.
	EventEMI EventType = "EMI"

	// EventPrepay is a prepayment applied strictly after that month's EMI.
	EventPrepay EventType = "PREPAY"

	// EventPrepayRetro is a prepayment scheduled exactly at the last
	// already-paid EMI; it applies to the starting balance before any simulated
	// month and leads the event log.
	EventPrepayRetro EventType = "PREPAY_AFTER_ALREADY_PAID_EMI"
)

// SimulationEvent is one entry of the forward-simulation log. Seq is the
// logical order of application; the log is sorted by Seq.
type SimulationEvent struct {
	Seq       int       `json:"seq"`
	Type      EventType `json:"type"`
	Month     int       `json:"month"`
	Before    float64   `json:"before"`
	After     float64   `json:"after"`
	Interest  float64   `json:"interest,omitempty"`
	Principal float64   `json:"principal,omitempty"`
	Amount    float64   `json:"amount,omitempty"`
}

// ScheduleRow holds the values for one simulated payment.
type ScheduleRow struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Remaining float64 `json:"remaining"`
}

// KeepEMIPlan is the shorten-tenure scenario: the EMI stays unchanged and the
// post-prepayment balance pays off sooner. Unbounded reports the case where the
// EMI cannot cover interest on the reduced balance; it is a terminal result,
// not an error.
type KeepEMIPlan struct {
	MonthsToFinish int           `json:"monthsToFinish"`
	Unbounded      bool          `json:"unbounded,omitempty"`
	Schedule       []ScheduleRow `json:"schedule,omitempty"`
	TotalInterest  float64       `json:"totalInterest"`
	Err            string        `json:"error,omitempty"`
}

// ReduceEMIPlan is the keep-tenure scenario: the remaining months stay fixed
// and a lower EMI amortizes the post-prepayment balance.
type ReduceEMIPlan struct {
	NewEMI        float64       `json:"newEmi"`
	Schedule      []ScheduleRow `json:"schedule,omitempty"`
	TotalInterest float64       `json:"totalInterest"`
	Err           string        `json:"error,omitempty"`
}

// BaselineComparison reports the unmodified repayment plan (same EMI, no
// prepayments) and the savings each scenario achieves against it.
type BaselineComparison struct {
	OriginalRemainingInterest float64 `json:"originalRemainingInterest"`
	OriginalMonths            int     `json:"originalMonths"`
	KeepEMIInterestSaved      float64 `json:"keepEmiInterestSaved"`
	KeepEMIMonthsSaved        int     `json:"keepEmiMonthsSaved"`
	ReduceEMIInterestSaved    float64 `json:"reduceEmiInterestSaved"`
}

// Result is the outcome of one reschedule calculation.
type Result struct {
	Outstanding     float64             `json:"outstandingAfterPrepayments"`
	SimulatedMonths int                 `json:"simulatedMonths"`
	Events          []SimulationEvent   `json:"simLog"`
	KeepEMI         KeepEMIPlan         `json:"keepEmi"`
	ReduceEMI       ReduceEMIPlan       `json:"reduceEmi"`
	Baseline        *BaselineComparison `json:"baseline,omitempty"`
}
