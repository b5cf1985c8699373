package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"debtwise/internal/engine"
)

var incomeCmd = &cobra.Command{
	Use:   "income [name] [amount]",
	Short: "Record an income source",
	Long: `Record an income source. Frequencies convert to monthly equivalents
for the dashboard: daily x30, weekly x4, monthly x1; oneTime items are kept
but do not count toward the monthly picture.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCashflow(cmd, args, false)
	},
}

var expenseCmd = &cobra.Command{
	Use:   "expense [name] [amount]",
	Short: "Record a recurring expense",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCashflow(cmd, args, true)
	},
}

func init() {
	rootCmd.AddCommand(incomeCmd, expenseCmd)
	incomeCmd.Flags().String("frequency", "monthly", "daily|weekly|monthly|oneTime")
	expenseCmd.Flags().String("frequency", "monthly", "daily|weekly|monthly|oneTime")
}

func runCashflow(cmd *cobra.Command, args []string, isExpense bool) error {
	ctx := cmd.Context()

	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[1], err)
	}
	freqFlag, _ := cmd.Flags().GetString("frequency")
	freq := engine.Frequency(freqFlag)

	store := openStore(cmd)
	p, err := store.Load(ctx)
	if err != nil {
		return err
	}

	if isExpense {
		exp, err := engine.NewExpense(args[0], amount, freq)
		if err != nil {
			return err
		}
		p.AddExpense(exp)
		fmt.Printf("Recorded expense %q: %.2f %s (%.2f/month)\n",
			exp.Name, exp.Amount, exp.Frequency, exp.MonthlyValue())
	} else {
		inc, err := engine.NewIncome(args[0], amount, freq)
		if err != nil {
			return err
		}
		p.AddIncome(inc)
		fmt.Printf("Recorded income %q: %.2f %s (%.2f/month)\n",
			inc.Name, inc.Amount, inc.Frequency, inc.MonthlyValue())
	}

	return store.Save(ctx, p)
}
