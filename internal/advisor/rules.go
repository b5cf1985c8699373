// Package advisor evaluates a portfolio against a fixed rule set and turns
// the resulting report into advice, either through an AI backend or through
// templated text when none is configured.
package advisor

import (
	"math"
	"sort"
	"time"

	"debtwise/internal/engine"
)

// RiskLevel grades the portfolio's overall position.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// ReportSummary is the headline numbers of a rule evaluation. All figures
// are monthly equivalents.
type ReportSummary struct {
	TotalIncome   float64   `json:"totalIncome"`
	TotalExpenses float64   `json:"totalExpenses"`
	TotalEMI      float64   `json:"totalEmi"`
	TotalDebt     float64   `json:"totalDebt"`
	Surplus       float64   `json:"surplus"`
	RiskLevel     RiskLevel `json:"riskLevel"`
}

// OverdueAlert flags a debt past its maturity date with a balance left.
type OverdueAlert struct {
	Name    string     `json:"name"`
	Amount  float64    `json:"amount"`
	EndDate *time.Time `json:"endDate"`
}

// Recommendations are the actionable outputs of the rule evaluation.
type Recommendations struct {
	// PriorityDebt names the debt whose projected interest most exceeds
	// 30% of its initial principal; empty when none qualifies.
	PriorityDebt string `json:"priorityDebt"`

	// CanTakeNewEMI is whether the monthly surplus leaves room for a new
	// installment.
	CanTakeNewEMI bool `json:"canTakeNewEmi"`

	// SafeEMIAmount is 60% of the surplus, the rule-of-thumb ceiling for a
	// new installment.
	SafeEMIAmount float64 `json:"safeEmiAmount"`
}

// Report is the deterministic snapshot an advisor grounds its advice on.
type Report struct {
	Summary         ReportSummary   `json:"summary"`
	OverdueDebts    []OverdueAlert  `json:"overdueDebts"`
	Recommendations Recommendations `json:"recommendations"`
}

// interestBurdenThreshold marks a debt as high-interest when its projected
// interest exceeds this share of the initial principal.
const interestBurdenThreshold = 0.3

// safeEMIShare is the share of the surplus considered safe to commit to a
// new installment.
const safeEMIShare = 0.6

// BuildReport runs the rule set over the portfolio as of now.
func BuildReport(p *engine.Portfolio, now time.Time) Report {
	summaries := make([]engine.DebtSummary, 0, len(p.Debts()))
	var totalEMI, totalDebt float64
	for _, d := range p.Debts() {
		summaries = append(summaries, d.Summary(now))
		totalEMI += d.EMIAmount()
		totalDebt += math.Max(0, d.Principal())
	}

	totalIncome := p.MonthlyIncome()
	totalExpenses := p.MonthlyExpense()
	surplus := totalIncome - totalExpenses - totalEMI

	var overdue []OverdueAlert
	for _, s := range summaries {
		if !s.Overdue {
			continue
		}
		overdue = append(overdue, OverdueAlert{
			Name:    s.Name,
			Amount:  s.PendingPrincipal,
			EndDate: s.EndDate,
		})
	}

	highInterest := make([]engine.DebtSummary, 0, len(summaries))
	for _, s := range summaries {
		if s.InterestPayable > s.InitialPrincipal*interestBurdenThreshold {
			highInterest = append(highInterest, s)
		}
	}
	sort.SliceStable(highInterest, func(i, j int) bool {
		return highInterest[i].InterestPayable > highInterest[j].InterestPayable
	})

	risk := RiskLow
	switch {
	case len(overdue) > 0:
		risk = RiskHigh
	case surplus < 0:
		risk = RiskMedium
	}

	rec := Recommendations{
		CanTakeNewEMI: surplus > 0,
		SafeEMIAmount: math.Max(0, surplus*safeEMIShare),
	}
	if len(highInterest) > 0 {
		rec.PriorityDebt = highInterest[0].Name
	}

	return Report{
		Summary: ReportSummary{
			TotalIncome:   totalIncome,
			TotalExpenses: totalExpenses,
			TotalEMI:      totalEMI,
			TotalDebt:     totalDebt,
			Surplus:       surplus,
			RiskLevel:     risk,
		},
		OverdueDebts:    overdue,
		Recommendations: rec,
	}
}
