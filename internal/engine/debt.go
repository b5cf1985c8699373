package engine

import (
	"math"
	"sort"
	"time"
)

// Payment is one event in a debt's payment log.
type Payment struct {
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}

// DebtConfig describes a new debt. Unknown enum values are rejected at
// construction; nothing is silently defaulted.
type DebtConfig struct {
	Name          string
	Principal     float64
	InterestType  InterestType
	InterestMode  InterestMode
	InterestValue float64
	InterestRate  float64
	Plan          Plan
	EMIAmount     float64
	StartDate     time.Time
	EndDate       *time.Time
}

// Debt is a single liability ledger. Its principal and interestPaid are
// running totals derived from the payment log: any edit to history is
// followed by a full replay, so the current state depends only on the set
// of recorded payments.
//
// Debt is not safe for concurrent use; callers serialize mutations per
// portfolio.
type Debt struct {
	id   int64
	name string

	policy    AccrualPolicy
	plan      Plan
	emiAmount float64

	initialPrincipal float64
	principal        float64
	interestPaid     float64

	startDate       time.Time
	endDate         *time.Time
	lastPaymentDate time.Time

	payments []Payment
}

// NewDebt builds a debt with an empty payment history. The id is normally
// assigned by the owning portfolio.
func NewDebt(id int64, cfg DebtConfig) (*Debt, error) {
	policy := AccrualPolicy{
		Type:  cfg.InterestType,
		Mode:  cfg.InterestMode,
		Value: sanitizeAmount(cfg.InterestValue),
		Rate:  sanitizeAmount(cfg.InterestRate),
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if err := validatePlan(cfg.Plan); err != nil {
		return nil, err
	}

	start := cfg.StartDate
	if start.IsZero() {
		start = time.Now()
	}
	var end *time.Time
	if cfg.EndDate != nil {
		if cfg.EndDate.Before(start) {
			return nil, ErrEndBeforeStart
		}
		e := *cfg.EndDate
		end = &e
	}

	principal := sanitizeAmount(cfg.Principal)
	return &Debt{
		id:               id,
		name:             cfg.Name,
		policy:           policy,
		plan:             cfg.Plan,
		emiAmount:        sanitizeAmount(cfg.EMIAmount),
		initialPrincipal: principal,
		principal:        principal,
		startDate:        start,
		endDate:          end,
		lastPaymentDate:  start,
	}, nil
}

func (d *Debt) ID() int64                  { return d.id }
func (d *Debt) Name() string               { return d.name }
func (d *Debt) Policy() AccrualPolicy      { return d.policy }
func (d *Debt) Plan() Plan                 { return d.plan }
func (d *Debt) EMIAmount() float64         { return d.emiAmount }
func (d *Debt) InitialPrincipal() float64  { return d.initialPrincipal }
func (d *Debt) Principal() float64         { return d.principal }
func (d *Debt) InterestPaid() float64      { return d.interestPaid }
func (d *Debt) StartDate() time.Time       { return d.startDate }
func (d *Debt) LastPaymentDate() time.Time { return d.lastPaymentDate }

// EndDate returns the maturity date, or nil for open-ended debts.
func (d *Debt) EndDate() *time.Time {
	if d.endDate == nil {
		return nil
	}
	e := *d.endDate
	return &e
}

// Payments returns a copy of the payment log in insertion order.
func (d *Debt) Payments() []Payment {
	out := make([]Payment, len(d.payments))
	copy(out, d.payments)
	return out
}

// RepaymentAtEnd is the closed-form total owed at maturity.
func (d *Debt) RepaymentAtEnd() float64 {
	return d.policy.RepaymentAtEnd(d.initialPrincipal, d.startDate, d.endDate)
}

// ApplyPayment assesses interest for the time elapsed since the last
// payment and applies the amount interest-first: whatever exceeds the
// accrued interest reduces the principal (floored at zero), and if the
// payment does not cover the interest the shortfall capitalizes into the
// principal. Non-positive amounts are ignored.
//
// Daily debts are charged per whole elapsed day. Every other type is
// charged at least one full accrual period, so a same-day payment is never
// interest-free on a periodic debt.
func (d *Debt) ApplyPayment(amount float64, date time.Time) {
	amount = sanitizeAmount(amount)
	if amount <= 0 {
		return
	}

	var periods float64
	if d.policy.Type == InterestDaily {
		periods = float64(daysBetween(d.lastPaymentDate, date))
	} else {
		periods = math.Max(1, float64(daysBetween(d.lastPaymentDate, date))/daysPerMonth)
	}

	interest := d.policy.InterestForPeriod(d.principal, periods)
	d.interestPaid += interest

	if amount >= interest {
		d.principal = math.Max(0, d.principal-(amount-interest))
	} else {
		d.principal += interest - amount
	}

	d.lastPaymentDate = date
	d.payments = append(d.payments, Payment{Amount: amount, Date: date})
}

// RecalculateFromPayments rebuilds the derived state by replaying the
// payment log from the initial snapshot. The log is first sorted
// chronologically (insertion order breaks ties), so the outcome is
// independent of the order in which payments were recorded or edited.
func (d *Debt) RecalculateFromPayments() {
	events := d.payments
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})

	d.principal = d.initialPrincipal
	d.interestPaid = 0
	d.lastPaymentDate = d.startDate
	d.payments = nil

	for _, ev := range events {
		d.ApplyPayment(ev.Amount, ev.Date)
	}
}

// DeletePayment removes one event from the log and replays.
func (d *Debt) DeletePayment(index int) error {
	if index < 0 || index >= len(d.payments) {
		return ErrPaymentNotFound
	}
	d.payments = append(d.payments[:index], d.payments[index+1:]...)
	d.RecalculateFromPayments()
	return nil
}

// UpdatePayment overwrites one event in the log and replays.
func (d *Debt) UpdatePayment(index int, amount float64, date time.Time) error {
	if index < 0 || index >= len(d.payments) {
		return ErrPaymentNotFound
	}
	d.payments[index] = Payment{Amount: sanitizeAmount(amount), Date: date}
	d.RecalculateFromPayments()
	return nil
}

// IsOverdue reports whether the debt has an unpaid balance past its
// maturity date. The end date covers its entire calendar day: the debt
// becomes overdue at the first moment of the following day.
func (d *Debt) IsOverdue(now time.Time) bool {
	if d.endDate == nil || d.principal <= 0 {
		return false
	}
	return midnight(now).After(midnight(*d.endDate))
}

// DebtSummary is the externally consumed query surface of a debt. Currency
// figures are rounded to whole units; the ledger keeps full precision.
type DebtSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`

	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`

	InitialPrincipal float64 `json:"initialPrincipal"`
	PendingPrincipal float64 `json:"pendingPrincipal"`

	RepaymentAtEnd  float64 `json:"repaymentAtEnd"`
	InterestPayable float64 `json:"interestPayable"`

	InterestType  InterestType `json:"interestType"`
	InterestMode  InterestMode `json:"interestMode"`
	InterestValue float64      `json:"interestValue"`

	PayoffDate  *time.Time `json:"payoffDate"`
	NeverCloses bool       `json:"neverCloses"`
	Overdue     bool       `json:"overdue"`
}

// Summary projects the debt's state as of now.
func (d *Debt) Summary(now time.Time) DebtSummary {
	payoff := d.PredictPayoff(now)
	repaymentAtEnd := d.RepaymentAtEnd()

	return DebtSummary{
		ID:               d.id,
		Name:             d.name,
		StartDate:        d.startDate,
		EndDate:          d.EndDate(),
		InitialPrincipal: d.initialPrincipal,
		PendingPrincipal: math.Round(d.principal),
		RepaymentAtEnd:   repaymentAtEnd,
		InterestPayable:  math.Max(0, repaymentAtEnd-d.initialPrincipal),
		InterestType:     d.policy.Type,
		InterestMode:     d.policy.Mode,
		InterestValue:    d.policy.Value,
		PayoffDate:       payoff.PayoffDate,
		NeverCloses:      payoff.NeverCloses,
		Overdue:          d.IsOverdue(now),
	}
}
