package engine

import (
	"errors"
	"testing"
)

func TestPortfolioDebtLifecycle(t *testing.T) {
	p := NewPortfolio()

	first, err := p.AddDebt(DebtConfig{
		Name: "a", Principal: 100,
		InterestType: InterestFriendly, Plan: PlanCustom,
		StartDate: date(2024, 1, 1),
	})
	if err != nil {
		t.Fatalf("AddDebt: %v", err)
	}
	if first.ID() != 1 {
		t.Errorf("first id: got %d, want 1", first.ID())
	}

	// A rejected config must not consume an id.
	if _, err := p.AddDebt(DebtConfig{Name: "bad", InterestType: "hourly", Plan: PlanCustom}); err == nil {
		t.Fatal("expected error for invalid config")
	}
	second, err := p.AddDebt(DebtConfig{
		Name: "b", Principal: 200,
		InterestType: InterestFriendly, Plan: PlanCustom,
		StartDate: date(2024, 1, 1),
	})
	if err != nil {
		t.Fatalf("AddDebt: %v", err)
	}
	if second.ID() != 2 {
		t.Errorf("second id: got %d, want 2", second.ID())
	}

	if got, err := p.Debt(1); err != nil || got != first {
		t.Errorf("Debt(1): got %v, %v", got, err)
	}
	if _, err := p.Debt(99); !errors.Is(err, ErrDebtNotFound) {
		t.Errorf("Debt(99): got %v, want ErrDebtNotFound", err)
	}

	if err := p.RemoveDebt(1); err != nil {
		t.Fatalf("RemoveDebt: %v", err)
	}
	if err := p.RemoveDebt(1); !errors.Is(err, ErrDebtNotFound) {
		t.Errorf("double remove: got %v, want ErrDebtNotFound", err)
	}
	if got := len(p.Debts()); got != 1 {
		t.Errorf("debts after removal: got %d, want 1", got)
	}
	if got := p.TotalDebt(); got != 200 {
		t.Errorf("totalDebt after removal: got %v, want 200", got)
	}
}

func TestCashflowMonthlyValues(t *testing.T) {
	tests := []struct {
		freq   Frequency
		amount float64
		want   float64
	}{
		{FreqDaily, 10, 300},
		{FreqWeekly, 25, 100},
		{FreqMonthly, 1000, 1000},
		{FreqOneTime, 5000, 0},
	}
	for _, tt := range tests {
		inc, err := NewIncome("x", tt.amount, tt.freq)
		if err != nil {
			t.Fatalf("NewIncome(%s): %v", tt.freq, err)
		}
		if got := inc.MonthlyValue(); got != tt.want {
			t.Errorf("%s monthly value: got %v, want %v", tt.freq, got, tt.want)
		}
	}

	if _, err := NewIncome("x", 1, "fortnightly"); !errors.Is(err, ErrInvalidFrequency) {
		t.Errorf("unknown frequency: got %v, want ErrInvalidFrequency", err)
	}
	if _, err := NewExpense("x", 1, "fortnightly"); !errors.Is(err, ErrInvalidFrequency) {
		t.Errorf("unknown frequency: got %v, want ErrInvalidFrequency", err)
	}
}

func TestDashboardAggregation(t *testing.T) {
	p := NewPortfolio()
	now := date(2024, 1, 1)

	salary, _ := NewIncome("salary", 1000, FreqMonthly)
	gig, _ := NewIncome("gig", 10, FreqDaily)
	p.AddIncome(salary)
	p.AddIncome(gig)

	rent, _ := NewExpense("rent", 200, FreqMonthly)
	coffee, _ := NewExpense("coffee", 25, FreqWeekly)
	p.AddExpense(rent)
	p.AddExpense(coffee)

	// Interest-free EMI debt: contributes its EMI, pays off in 5 periods.
	if _, err := p.AddDebt(DebtConfig{
		Name: "family loan", Principal: 500,
		InterestType: InterestFriendly, Plan: PlanCustom,
		EMIAmount: 100, StartDate: now,
	}); err != nil {
		t.Fatalf("AddDebt: %v", err)
	}

	// Lump-sum debt: contributes its closed-form repayment instead of an
	// EMI, and never projects a payoff date.
	if _, err := p.AddDebt(DebtConfig{
		Name: "settlement", Principal: 200,
		InterestType: InterestOneTime, InterestValue: 50,
		Plan: PlanOneTime, StartDate: now, EndDate: datePtr(2024, 6, 1),
	}); err != nil {
		t.Fatalf("AddDebt: %v", err)
	}

	dash := p.Dashboard(now)

	if dash.MonthlyIncome != 1300 {
		t.Errorf("monthlyIncome: got %v, want 1300", dash.MonthlyIncome)
	}
	if dash.MonthlyExpense != 300 {
		t.Errorf("monthlyExpense: got %v, want 300", dash.MonthlyExpense)
	}
	if dash.MonthlyDebtPayment != 350 { // 100 EMI + 250 closed-form
		t.Errorf("monthlyDebtPayment: got %v, want 350", dash.MonthlyDebtPayment)
	}
	if dash.Surplus != 650 {
		t.Errorf("surplus: got %v, want 650", dash.Surplus)
	}
	if dash.TotalDebt != 700 {
		t.Errorf("totalDebt: got %v, want 700", dash.TotalDebt)
	}
	if len(dash.DebtBreakdown) != 2 {
		t.Fatalf("debtBreakdown: got %d entries, want 2", len(dash.DebtBreakdown))
	}

	// Debt-free date comes from the EMI debt alone: the lump-sum debt has
	// no projected payoff and is excluded.
	if dash.DebtFreeDate == nil {
		t.Fatal("expected a debt-free date")
	}
	if want := now.AddDate(0, 0, 150); !dash.DebtFreeDate.Equal(want) {
		t.Errorf("debtFreeDate: got %v, want %v", dash.DebtFreeDate, want)
	}
}

func TestDebtFreeDateUndefinedWhenNothingProjects(t *testing.T) {
	p := NewPortfolio()
	if _, err := p.AddDebt(DebtConfig{
		Name: "lump", Principal: 100,
		InterestType: InterestOneTime, InterestValue: 10,
		Plan: PlanOneTime, StartDate: date(2024, 1, 1),
	}); err != nil {
		t.Fatalf("AddDebt: %v", err)
	}
	if got := p.DebtFreeDate(date(2024, 2, 1)); got != nil {
		t.Errorf("debtFreeDate: got %v, want nil", got)
	}
}

func TestPayoffPriorities(t *testing.T) {
	now := date(2024, 6, 1)

	t.Run("avalanche by rate, snowball by balance", func(t *testing.T) {
		p := NewPortfolio()
		p.AddDebt(DebtConfig{
			Name: "cheap big", Principal: 9000,
			InterestType: InterestMonthly, InterestRate: 0.01,
			Plan: PlanEMIMonthly, StartDate: date(2024, 1, 1),
		})
		p.AddDebt(DebtConfig{
			Name: "expensive", Principal: 5000,
			InterestType: InterestYearly, InterestRate: 0.4,
			Plan: PlanEMIMonthly, StartDate: date(2024, 1, 1),
		})
		p.AddDebt(DebtConfig{
			Name: "small", Principal: 300,
			InterestType: InterestMonthly, InterestRate: 0.02,
			Plan: PlanEMIMonthly, StartDate: date(2024, 1, 1),
		})

		pr := p.PayoffPriorities(now)
		if pr == nil {
			t.Fatal("expected priorities")
		}
		if pr.Avalanche.Name != "expensive" {
			t.Errorf("avalanche: got %q, want %q", pr.Avalanche.Name, "expensive")
		}
		if pr.Snowball.Name != "small" {
			t.Errorf("snowball: got %q, want %q", pr.Snowball.Name, "small")
		}
	})

	t.Run("settled debts are skipped", func(t *testing.T) {
		p := NewPortfolio()
		paid, _ := p.AddDebt(DebtConfig{
			Name: "paid", Principal: 100,
			InterestType: InterestFriendly, Plan: PlanCustom,
			StartDate: date(2024, 1, 1),
		})
		paid.ApplyPayment(100, date(2024, 1, 2))
		p.AddDebt(DebtConfig{
			Name: "open", Principal: 50,
			InterestType: InterestFriendly, Plan: PlanCustom,
			StartDate: date(2024, 1, 1),
		})

		pr := p.PayoffPriorities(now)
		if pr == nil {
			t.Fatal("expected priorities")
		}
		if pr.Snowball.Name != "open" || pr.Avalanche.Name != "open" {
			t.Errorf("got avalanche %q snowball %q, want both %q",
				pr.Avalanche.Name, pr.Snowball.Name, "open")
		}
	})

	t.Run("ties resolve to the lower id", func(t *testing.T) {
		p := NewPortfolio()
		p.AddDebt(DebtConfig{
			Name: "first", Principal: 100,
			InterestType: InterestMonthly, InterestRate: 0.02,
			Plan: PlanEMIMonthly, StartDate: date(2024, 1, 1),
		})
		p.AddDebt(DebtConfig{
			Name: "second", Principal: 100,
			InterestType: InterestMonthly, InterestRate: 0.02,
			Plan: PlanEMIMonthly, StartDate: date(2024, 1, 1),
		})

		pr := p.PayoffPriorities(now)
		if pr.Avalanche.ID != 1 || pr.Snowball.ID != 1 {
			t.Errorf("tie-break: got avalanche #%d snowball #%d, want #1 #1",
				pr.Avalanche.ID, pr.Snowball.ID)
		}
	})

	t.Run("nothing outstanding yields nil", func(t *testing.T) {
		p := NewPortfolio()
		if pr := p.PayoffPriorities(now); pr != nil {
			t.Errorf("got %v, want nil", pr)
		}
	})
}
