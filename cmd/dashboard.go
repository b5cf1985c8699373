package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the portfolio dashboard",
	Long: `Show portfolio totals, the monthly cashflow picture, the projected
debt-free date and a per-debt breakdown, plus the avalanche and snowball
payoff recommendations.`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().Bool("json", false, "Emit the dashboard as JSON")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	store := openStore(cmd)
	p, err := store.Load(cmd.Context())
	if err != nil {
		return err
	}

	now := time.Now()
	dash := p.Dashboard(now)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		raw, err := json.MarshalIndent(dash, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(raw))
		return nil
	}

	fmt.Printf("Total debt:            %10.0f\n", dash.TotalDebt)
	fmt.Printf("Monthly income:        %10.0f\n", dash.MonthlyIncome)
	fmt.Printf("Monthly expenses:      %10.0f\n", dash.MonthlyExpense)
	fmt.Printf("Monthly debt payment:  %10.0f\n", dash.MonthlyDebtPayment)
	fmt.Printf("Surplus:               %10.0f\n", dash.Surplus)
	fmt.Printf("Debt-free date:        %10s\n", formatDate(dash.DebtFreeDate))

	if len(dash.DebtBreakdown) > 0 {
		fmt.Println("\nDebts:")
		for _, s := range dash.DebtBreakdown {
			status := ""
			if s.Overdue {
				status = "  OVERDUE"
			}
			if s.NeverCloses {
				status += "  never closes at current EMI"
			}
			fmt.Printf("  #%-3d %-20s pending %.0f, at maturity %.0f, payoff %s%s\n",
				s.ID, s.Name, s.PendingPrincipal, s.RepaymentAtEnd, formatDate(s.PayoffDate), status)
		}
	}

	if pr := p.PayoffPriorities(now); pr != nil {
		fmt.Println("\nPayoff priority:")
		fmt.Printf("  Avalanche (highest rate):   %q\n", pr.Avalanche.Name)
		fmt.Printf("  Snowball (smallest balance): %q\n", pr.Snowball.Name)
	}

	return nil
}
