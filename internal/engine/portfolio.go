package engine

import (
	"math"
	"time"
)

// Portfolio aggregates debts, incomes and expenses. It owns the id sequence
// for debts and delegates all financial logic to the entities themselves.
// Not safe for concurrent use.
type Portfolio struct {
	idSeq    int64
	debts    []*Debt
	incomes  []Income
	expenses []Expense
}

func NewPortfolio() *Portfolio {
	return &Portfolio{idSeq: 1}
}

// AddDebt creates a debt from the config, assigns it the next id and adds
// it to the portfolio.
func (p *Portfolio) AddDebt(cfg DebtConfig) (*Debt, error) {
	d, err := NewDebt(p.idSeq, cfg)
	if err != nil {
		return nil, err
	}
	p.idSeq++
	p.debts = append(p.debts, d)
	return d, nil
}

// Debt looks up a debt by id.
func (p *Portfolio) Debt(id int64) (*Debt, error) {
	for _, d := range p.debts {
		if d.id == id {
			return d, nil
		}
	}
	return nil, ErrDebtNotFound
}

// Debts returns the debts in creation order.
func (p *Portfolio) Debts() []*Debt {
	out := make([]*Debt, len(p.debts))
	copy(out, p.debts)
	return out
}

// RemoveDebt deletes a debt. Removal has no effect beyond the debt's
// disappearance from aggregates.
func (p *Portfolio) RemoveDebt(id int64) error {
	for i, d := range p.debts {
		if d.id == id {
			p.debts = append(p.debts[:i], p.debts[i+1:]...)
			return nil
		}
	}
	return ErrDebtNotFound
}

func (p *Portfolio) AddIncome(inc Income)   { p.incomes = append(p.incomes, inc) }
func (p *Portfolio) AddExpense(exp Expense) { p.expenses = append(p.expenses, exp) }

func (p *Portfolio) Incomes() []Income {
	out := make([]Income, len(p.incomes))
	copy(out, p.incomes)
	return out
}

func (p *Portfolio) Expenses() []Expense {
	out := make([]Expense, len(p.expenses))
	copy(out, p.expenses)
	return out
}

func (p *Portfolio) MonthlyIncome() float64 {
	var total float64
	for _, inc := range p.incomes {
		total += inc.MonthlyValue()
	}
	return total
}

func (p *Portfolio) MonthlyExpense() float64 {
	var total float64
	for _, exp := range p.expenses {
		total += exp.MonthlyValue()
	}
	return total
}

// MonthlyDebtPayment sums the monthly payment obligation across debts. A
// oneTime plan has no meaningful monthly installment, so it contributes its
// projected closed-form repayment instead.
func (p *Portfolio) MonthlyDebtPayment() float64 {
	var total float64
	for _, d := range p.debts {
		if d.plan == PlanOneTime {
			total += d.RepaymentAtEnd()
			continue
		}
		total += d.emiAmount
	}
	return total
}

// TotalDebt is the outstanding principal across all debts.
func (p *Portfolio) TotalDebt() float64 {
	var total float64
	for _, d := range p.debts {
		total += d.principal
	}
	return total
}

func (p *Portfolio) Surplus() float64 {
	return p.MonthlyIncome() - p.MonthlyExpense() - p.MonthlyDebtPayment()
}

// DebtFreeDate is the latest projected payoff date across the portfolio.
// Debts with no projected payoff are excluded; nil when none project one.
func (p *Portfolio) DebtFreeDate(now time.Time) *time.Time {
	var latest *time.Time
	for _, d := range p.debts {
		payoff := d.PredictPayoff(now)
		if payoff.PayoffDate == nil {
			continue
		}
		if latest == nil || payoff.PayoffDate.After(*latest) {
			latest = payoff.PayoffDate
		}
	}
	return latest
}

// Dashboard is the portfolio-level aggregate consumed by the presentation
// layer. Currency figures are rounded to whole units.
type Dashboard struct {
	TotalDebt          float64       `json:"totalDebt"`
	MonthlyIncome      float64       `json:"monthlyIncome"`
	MonthlyExpense     float64       `json:"monthlyExpense"`
	MonthlyDebtPayment float64       `json:"monthlyDebtPayment"`
	Surplus            float64       `json:"surplus"`
	DebtFreeDate       *time.Time    `json:"debtFreeDate"`
	DebtBreakdown      []DebtSummary `json:"debtBreakdown"`
}

func (p *Portfolio) Dashboard(now time.Time) Dashboard {
	breakdown := make([]DebtSummary, 0, len(p.debts))
	for _, d := range p.debts {
		breakdown = append(breakdown, d.Summary(now))
	}
	return Dashboard{
		TotalDebt:          math.Round(p.TotalDebt()),
		MonthlyIncome:      math.Round(p.MonthlyIncome()),
		MonthlyExpense:     math.Round(p.MonthlyExpense()),
		MonthlyDebtPayment: math.Round(p.MonthlyDebtPayment()),
		Surplus:            math.Round(p.Surplus()),
		DebtFreeDate:       p.DebtFreeDate(now),
		DebtBreakdown:      breakdown,
	}
}

// PayoffPriorities recommends one debt per strategy: avalanche targets the
// highest interest rate to minimize total interest, snowball the smallest
// balance for the quickest full payoff. Ties go to the lower id.
type PayoffPriorities struct {
	Avalanche DebtSummary `json:"avalanche"`
	Snowball  DebtSummary `json:"snowball"`
}

// PayoffPriorities returns nil when no debt has an outstanding balance.
func (p *Portfolio) PayoffPriorities(now time.Time) *PayoffPriorities {
	var avalanche, snowball *Debt
	for _, d := range p.debts {
		if d.principal <= 0 {
			continue
		}
		if avalanche == nil || d.policy.Rate > avalanche.policy.Rate {
			avalanche = d
		}
		if snowball == nil || d.principal < snowball.principal {
			snowball = d
		}
	}
	if avalanche == nil {
		return nil
	}
	return &PayoffPriorities{
		Avalanche: avalanche.Summary(now),
		Snowball:  snowball.Summary(now),
	}
}
