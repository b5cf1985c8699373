package engine

import (
	"math"
	"time"
)

// InterestType selects the accrual convention for a debt.
type InterestType string

const (
	// InterestDaily accrues per elapsed day, in fixed or percentage mode.
	InterestDaily InterestType = "daily"

	// InterestWeekly is a recognised type with no incremental accrual;
	// kept for debts whose schedule is weekly but whose interest is
	// settled out of band.
	InterestWeekly InterestType = "weekly"

	// InterestMonthly applies InterestRate per 30.44-day month-equivalent.
	InterestMonthly InterestType = "monthly"

	// InterestYearly applies InterestRate/365 per elapsed day.
	InterestYearly InterestType = "yearly"

	// InterestOneTime is a flat fee added once on top of the principal.
	InterestOneTime InterestType = "oneTime"

	// InterestFriendly is an interest-free loan.
	InterestFriendly InterestType = "friendly"
)

// InterestMode refines daily accrual: a fixed currency amount per day, or a
// percentage of the balance per day. Meaningless for other interest types.
type InterestMode string

const (
	ModeNone       InterestMode = ""
	ModeFixed      InterestMode = "fixed"
	ModePercentage InterestMode = "percentage"
)

// Plan is the repayment style assumed by the payoff simulator.
type Plan string

const (
	PlanCustom       Plan = "custom"
	PlanEMIWeekly    Plan = "emiWeekly"
	PlanEMIMonthly   Plan = "emiMonthly"
	PlanEMIDaily     Plan = "emiDaily"
	PlanInterestOnly Plan = "interestOnly"
	PlanOneTime      Plan = "oneTime"
)

// daysPerMonth converts elapsed days into month-equivalents for the
// monthly accrual convention and for periodic payment intervals.
const daysPerMonth = 30.44

// AccrualPolicy holds the interest parameters of a debt and computes
// interest amounts. It is pure: no policy method touches ledger state.
//
// Value is a currency amount per day (ModeFixed), a percent per day
// (ModePercentage), or a flat fee (InterestOneTime). Rate is a decimal
// fraction (0.02 for 2%) used by the monthly and yearly types.
type AccrualPolicy struct {
	Type  InterestType
	Mode  InterestMode
	Value float64
	Rate  float64
}

// Validate rejects unknown interest types and modes. A daily policy needs
// an explicit mode; for every other type the mode must be empty.
func (p AccrualPolicy) Validate() error {
	switch p.Type {
	case InterestDaily:
		if p.Mode != ModeFixed && p.Mode != ModePercentage {
			return ErrInvalidInterestMode
		}
	case InterestWeekly, InterestMonthly, InterestYearly, InterestOneTime, InterestFriendly:
		if p.Mode != ModeNone {
			return ErrInvalidInterestMode
		}
	default:
		return ErrInvalidInterestType
	}
	return nil
}

// RepaymentAtEnd is the closed-form total owed at maturity assuming nothing
// is paid in between: the initial principal plus interest projected from the
// start date. It works on the initial principal, not the current balance;
// the incremental path in InterestForPeriod tracks the shrinking balance
// instead. Without a maturity date the repayment equals the
// principal. The result is rounded to a whole currency unit and negative
// interest is clamped to zero.
func (p AccrualPolicy) RepaymentAtEnd(initialPrincipal float64, start time.Time, end *time.Time) float64 {
	if p.Type == InterestOneTime {
		return math.Round(initialPrincipal + math.Max(0, p.Value))
	}
	if p.Type == InterestFriendly {
		return math.Round(initialPrincipal)
	}
	if end == nil || !end.After(start) {
		return math.Round(initialPrincipal)
	}

	days := float64(daysInclusive(start, *end))

	var interest float64
	switch p.Type {
	case InterestDaily:
		switch p.Mode {
		case ModeFixed:
			interest = p.Value * days
		case ModePercentage:
			interest = initialPrincipal * p.Value * days / 100
		}
	case InterestMonthly:
		interest = initialPrincipal * p.Rate * (days / daysPerMonth)
	case InterestYearly:
		interest = initialPrincipal * (p.Rate / 365) * days
	}

	return math.Round(initialPrincipal + math.Max(0, interest))
}

// InterestForPeriod is the incremental accrual against an outstanding
// balance for the given number of elapsed periods. Periods are days for
// daily and yearly types and month-equivalents for monthly. Weekly,
// one-time and friendly debts accrue nothing incrementally; the one-time
// fee is resolved only through RepaymentAtEnd.
func (p AccrualPolicy) InterestForPeriod(principal, periods float64) float64 {
	switch p.Type {
	case InterestDaily:
		switch p.Mode {
		case ModePercentage:
			return principal * p.Value * periods / 100
		case ModeFixed:
			return p.Value * periods
		}
	case InterestMonthly:
		return principal * p.Rate * periods
	case InterestYearly:
		return principal * (p.Rate / 365) * periods
	}
	return 0
}

// validatePlan rejects unknown repayment plans.
func validatePlan(plan Plan) error {
	switch plan {
	case PlanCustom, PlanEMIWeekly, PlanEMIMonthly, PlanEMIDaily, PlanInterestOnly, PlanOneTime:
		return nil
	}
	return ErrInvalidPlan
}

// sanitizeAmount coerces invalid numeric inputs (NaN, infinities, negative
// amounts) to zero rather than propagating them into the ledger.
func sanitizeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
