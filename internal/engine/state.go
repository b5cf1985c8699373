package engine

import "time"

// DebtState is the canonical persisted representation of a debt. All dates
// marshal as RFC3339 timestamps; EndDate is null for open-ended debts.
type DebtState struct {
	ID               int64        `json:"id"`
	Name             string       `json:"name"`
	Principal        float64      `json:"principal"`
	InitialPrincipal float64      `json:"initialPrincipal"`
	InterestType     InterestType `json:"interestType"`
	InterestMode     InterestMode `json:"interestMode"`
	InterestValue    float64      `json:"interestValue"`
	InterestRate     float64      `json:"interestRate"`
	Plan             Plan         `json:"plan"`
	EMIAmount        float64      `json:"emiAmount"`
	StartDate        time.Time    `json:"startDate"`
	EndDate          *time.Time   `json:"endDate"`
	LastPaymentDate  time.Time    `json:"lastPaymentDate"`
	InterestPaid     float64      `json:"interestPaid"`
	Payments         []Payment    `json:"payments"`
}

// PortfolioState is the canonical persisted representation of a portfolio.
type PortfolioState struct {
	IDSeq    int64       `json:"idSeq"`
	Debts    []DebtState `json:"debts"`
	Incomes  []Income    `json:"incomes"`
	Expenses []Expense   `json:"expenses"`
}

// State snapshots the debt for persistence.
func (d *Debt) State() DebtState {
	return DebtState{
		ID:               d.id,
		Name:             d.name,
		Principal:        d.principal,
		InitialPrincipal: d.initialPrincipal,
		InterestType:     d.policy.Type,
		InterestMode:     d.policy.Mode,
		InterestValue:    d.policy.Value,
		InterestRate:     d.policy.Rate,
		Plan:             d.plan,
		EMIAmount:        d.emiAmount,
		StartDate:        d.startDate,
		EndDate:          d.EndDate(),
		LastPaymentDate:  d.lastPaymentDate,
		InterestPaid:     d.interestPaid,
		Payments:         d.Payments(),
	}
}

// RestoreDebt rebuilds a debt from its persisted state. The derived fields
// are taken as recorded rather than replayed, so a restored debt is
// byte-for-byte the one that was saved. Enum values are validated; a
// malformed state is rejected and the caller decides whether to discard the
// whole snapshot.
func RestoreDebt(s DebtState) (*Debt, error) {
	policy := AccrualPolicy{
		Type:  s.InterestType,
		Mode:  s.InterestMode,
		Value: sanitizeAmount(s.InterestValue),
		Rate:  sanitizeAmount(s.InterestRate),
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if err := validatePlan(s.Plan); err != nil {
		return nil, err
	}

	var end *time.Time
	if s.EndDate != nil {
		e := *s.EndDate
		end = &e
	}
	last := s.LastPaymentDate
	if last.IsZero() {
		last = s.StartDate
	}

	payments := make([]Payment, len(s.Payments))
	copy(payments, s.Payments)

	return &Debt{
		id:               s.ID,
		name:             s.Name,
		policy:           policy,
		plan:             s.Plan,
		emiAmount:        sanitizeAmount(s.EMIAmount),
		initialPrincipal: sanitizeAmount(s.InitialPrincipal),
		principal:        sanitizeAmount(s.Principal),
		interestPaid:     sanitizeAmount(s.InterestPaid),
		startDate:        s.StartDate,
		endDate:          end,
		lastPaymentDate:  last,
		payments:         payments,
	}, nil
}

// State snapshots the portfolio for persistence.
func (p *Portfolio) State() PortfolioState {
	debts := make([]DebtState, 0, len(p.debts))
	for _, d := range p.debts {
		debts = append(debts, d.State())
	}
	return PortfolioState{
		IDSeq:    p.idSeq,
		Debts:    debts,
		Incomes:  p.Incomes(),
		Expenses: p.Expenses(),
	}
}

// RestorePortfolio rebuilds a portfolio from its persisted state.
func RestorePortfolio(s PortfolioState) (*Portfolio, error) {
	p := NewPortfolio()
	if s.IDSeq > 0 {
		p.idSeq = s.IDSeq
	}
	for _, ds := range s.Debts {
		d, err := RestoreDebt(ds)
		if err != nil {
			return nil, err
		}
		p.debts = append(p.debts, d)
	}
	for _, inc := range s.Incomes {
		if err := inc.Frequency.Validate(); err != nil {
			return nil, err
		}
		p.incomes = append(p.incomes, inc)
	}
	for _, exp := range s.Expenses {
		if err := exp.Frequency.Validate(); err != nil {
			return nil, err
		}
		p.expenses = append(p.expenses, exp)
	}
	return p, nil
}
