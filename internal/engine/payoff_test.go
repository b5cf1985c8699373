package engine

import (
	"testing"
)

func TestPredictPayoff(t *testing.T) {
	from := date(2024, 1, 1)

	t.Run("daily debt amortizes day by day", func(t *testing.T) {
		// 10/day interest, 110 EMI: 100 off the principal per day.
		d := mustDebt(t, DebtConfig{
			Name:          "hand loan",
			Principal:     1000,
			InterestType:  InterestDaily,
			InterestMode:  ModeFixed,
			InterestValue: 10,
			Plan:          PlanCustom,
			EMIAmount:     110,
			StartDate:     from,
		})

		proj := d.PredictPayoff(from)
		if proj.NeverCloses {
			t.Fatal("unexpected neverCloses")
		}
		if proj.PayoffDate == nil {
			t.Fatal("expected a payoff date")
		}
		if want := from.AddDate(0, 0, 10); !proj.PayoffDate.Equal(want) {
			t.Errorf("payoffDate: got %v, want %v", proj.PayoffDate, want)
		}
		if proj.InterestPaid != 100 {
			t.Errorf("interestPaid: got %v, want 100", proj.InterestPaid)
		}
	})

	t.Run("EMI below accruing interest never closes", func(t *testing.T) {
		d := mustDebt(t, DebtConfig{
			Name:          "spiral",
			Principal:     1000,
			InterestType:  InterestDaily,
			InterestMode:  ModeFixed,
			InterestValue: 10,
			Plan:          PlanCustom,
			EMIAmount:     5,
			StartDate:     from,
		})

		proj := d.PredictPayoff(from)
		if !proj.NeverCloses {
			t.Error("expected neverCloses")
		}
		if proj.PayoffDate != nil {
			t.Errorf("payoffDate: got %v, want nil", proj.PayoffDate)
		}
	})

	t.Run("EMI exactly covering interest never closes", func(t *testing.T) {
		d := mustDebt(t, DebtConfig{
			Name:          "treadmill",
			Principal:     1000,
			InterestType:  InterestDaily,
			InterestMode:  ModeFixed,
			InterestValue: 10,
			Plan:          PlanCustom,
			EMIAmount:     10,
			StartDate:     from,
		})
		if proj := d.PredictPayoff(from); !proj.NeverCloses {
			t.Error("expected neverCloses when EMI equals interest")
		}
	})

	t.Run("one-time plan compounds until the step bound", func(t *testing.T) {
		// No periodic payment exists to reduce the balance, so the
		// projection stops at the step bound with no payoff date, and the
		// divergence check does not apply.
		d := mustDebt(t, DebtConfig{
			Name:          "lump sum",
			Principal:     100,
			InterestType:  InterestDaily,
			InterestMode:  ModeFixed,
			InterestValue: 1,
			Plan:          PlanOneTime,
			EMIAmount:     0,
			StartDate:     from,
		})

		proj := d.PredictPayoff(from)
		if proj.NeverCloses {
			t.Error("oneTime plans must not trip the divergence check")
		}
		if proj.PayoffDate != nil {
			t.Errorf("payoffDate: got %v, want nil", proj.PayoffDate)
		}
		// 1/day fixed over exactly maxProjectionSteps days.
		if want := float64(maxProjectionSteps); proj.InterestPaid != want {
			t.Errorf("interestPaid: got %v, want %v", proj.InterestPaid, want)
		}
	})

	t.Run("interest-free debt pays off by EMI alone", func(t *testing.T) {
		d := mustDebt(t, DebtConfig{
			Name:         "family loan",
			Principal:    1000,
			InterestType: InterestFriendly,
			Plan:         PlanCustom,
			EMIAmount:    100,
			StartDate:    from,
		})

		proj := d.PredictPayoff(from)
		if proj.PayoffDate == nil {
			t.Fatal("expected a payoff date")
		}
		// Non-daily, non-weekly plans project on 30-day intervals.
		if want := from.AddDate(0, 0, 300); !proj.PayoffDate.Equal(want) {
			t.Errorf("payoffDate: got %v, want %v", proj.PayoffDate, want)
		}
	})

	t.Run("weekly plan uses 7-day intervals", func(t *testing.T) {
		d := mustDebt(t, DebtConfig{
			Name:         "weekly loan",
			Principal:    700,
			InterestType: InterestFriendly,
			Plan:         PlanEMIWeekly,
			EMIAmount:    100,
			StartDate:    from,
		})

		proj := d.PredictPayoff(from)
		if proj.PayoffDate == nil {
			t.Fatal("expected a payoff date")
		}
		if want := from.AddDate(0, 0, 49); !proj.PayoffDate.Equal(want) {
			t.Errorf("payoffDate: got %v, want %v", proj.PayoffDate, want)
		}
	})

	t.Run("settled debt pays off immediately", func(t *testing.T) {
		d := mustDebt(t, DebtConfig{
			Name:         "done",
			Principal:    0,
			InterestType: InterestFriendly,
			Plan:         PlanCustom,
			EMIAmount:    100,
			StartDate:    from,
		})

		proj := d.PredictPayoff(from)
		if proj.PayoffDate == nil || !proj.PayoffDate.Equal(from) {
			t.Errorf("payoffDate: got %v, want %v", proj.PayoffDate, from)
		}
	})

	t.Run("projection starts from accumulated interest", func(t *testing.T) {
		d := dailyFixedDebt(t, 1000, 10)
		d.ApplyPayment(130, date(2024, 1, 4)) // 30 interest, 100 principal
		proj := d.PredictPayoff(date(2024, 1, 4))
		if proj.InterestPaid <= 30 {
			t.Errorf("interestPaid should include ledger interest, got %v", proj.InterestPaid)
		}
	})
}
