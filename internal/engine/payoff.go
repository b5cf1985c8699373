package engine

import (
	"math"
	"time"
)

// maxProjectionSteps bounds the payoff simulation. It is a non-convergence
// detector for pathological inputs, not a performance limit: a projection
// that has not extinguished the balance after this many periods is reported
// as having no payoff date.
const maxProjectionSteps = 1200

// payoffTolerance is the residual balance below which a simulated debt
// counts as extinguished.
const payoffTolerance = 0.01

// PayoffProjection is the outcome of a payoff simulation. PayoffDate is nil
// when the debt never reaches zero within the projection bound. NeverCloses
// is set when the periodic payment cannot even cover the accruing interest.
type PayoffProjection struct {
	PayoffDate   *time.Time
	NeverCloses  bool
	InterestPaid float64
}

// projectionIntervalDays is the assumed gap between future payments.
func (d *Debt) projectionIntervalDays() int {
	if d.policy.Type == InterestDaily || d.plan == PlanEMIDaily {
		return 1
	}
	if d.plan == PlanEMIWeekly {
		return 7
	}
	return 30
}

// PredictPayoff advances a hypothetical schedule from the current balance,
// assuming a payment of the debt's EMI amount every interval. Interest is
// accrued against the simulated balance each step. A oneTime plan has no
// periodic payment, so its balance compounds until settlement; every other
// plan reduces the balance by whatever the EMI leaves after interest.
func (d *Debt) PredictPayoff(from time.Time) PayoffProjection {
	principal := d.principal
	date := from
	totalInterest := d.interestPaid
	interval := d.projectionIntervalDays()

	for steps := 0; principal > payoffTolerance && steps < maxProjectionSteps; steps++ {
		// The interval is passed in days regardless of the accrual
		// convention, so a monthly-rate debt accrues rate*30 per step.
		interest := d.policy.InterestForPeriod(principal, float64(interval))

		if d.emiAmount <= interest && d.plan != PlanOneTime {
			return PayoffProjection{NeverCloses: true, InterestPaid: totalInterest}
		}

		totalInterest += interest

		if d.plan == PlanOneTime {
			principal += interest
		} else {
			principal -= math.Max(0, d.emiAmount-interest)
		}

		date = date.AddDate(0, 0, interval)
	}

	proj := PayoffProjection{InterestPaid: totalInterest}
	if principal <= payoffTolerance {
		payoff := date
		proj.PayoffDate = &payoff
	}
	return proj
}
