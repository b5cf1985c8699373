package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"debtwise/internal/engine"
	"debtwise/internal/logger"
)

var debtCmd = &cobra.Command{
	Use:   "debt",
	Short: "Manage debts in the portfolio",
}

var debtAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a debt to the portfolio",
	Long: `Add a debt with its interest policy and repayment plan.

Interest types:
  daily     per-day accrual; requires --interest-mode fixed|percentage
            and --interest-value (currency/day or percent/day)
  monthly   --interest-rate as a decimal fraction per month (0.02 = 2%)
  yearly    --interest-rate as a decimal fraction per year
  oneTime   --interest-value as a flat fee added once
  friendly  interest-free
  weekly    no incremental accrual

Plans: custom, emiDaily, emiWeekly, emiMonthly, interestOnly, oneTime.
The --emi amount is what the payoff projection assumes you pay each period.`,
	Example: `  # 2%/month loan of 10000 due 2026-12-31, paying 1500/month
  debtwise debt add --name "Car loan" --principal 10000 \
    --interest-type monthly --interest-rate 0.02 \
    --plan emiMonthly --emi 1500 --start 2026-01-01 --end 2026-12-31

  # 50/day fixed-interest hand loan
  debtwise debt add --name "Hand loan" --principal 5000 \
    --interest-type daily --interest-mode fixed --interest-value 50 \
    --plan custom --emi 500`,
	RunE: runDebtAdd,
}

var debtListCmd = &cobra.Command{
	Use:   "list",
	Short: "List debts with their projected state",
	RunE:  runDebtList,
}

var debtRemoveCmd = &cobra.Command{
	Use:   "remove [debt-id]",
	Short: "Remove a debt from the portfolio",
	Args:  cobra.ExactArgs(1),
	RunE:  runDebtRemove,
}

func init() {
	rootCmd.AddCommand(debtCmd)
	debtCmd.AddCommand(debtAddCmd, debtListCmd, debtRemoveCmd)

	debtAddCmd.Flags().String("name", "", "Display name [REQUIRED]")
	debtAddCmd.Flags().Float64("principal", 0, "Amount borrowed [REQUIRED]")
	debtAddCmd.Flags().String("interest-type", "monthly", "daily|weekly|monthly|yearly|oneTime|friendly")
	debtAddCmd.Flags().String("interest-mode", "", "fixed|percentage (daily type only)")
	debtAddCmd.Flags().Float64("interest-value", 0, "Currency/day, percent/day, or one-time fee")
	debtAddCmd.Flags().Float64("interest-rate", 0, "Decimal fraction for monthly/yearly types")
	debtAddCmd.Flags().String("plan", "custom", "custom|emiDaily|emiWeekly|emiMonthly|interestOnly|oneTime")
	debtAddCmd.Flags().Float64("emi", 0, "Assumed periodic payment for projections")
	debtAddCmd.Flags().String("start", "", "Start date YYYY-MM-DD (default today)")
	debtAddCmd.Flags().String("end", "", "Maturity date YYYY-MM-DD (optional)")
	debtAddCmd.MarkFlagRequired("name")
	debtAddCmd.MarkFlagRequired("principal")
}

func runDebtAdd(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("debt-add")
	ctx := cmd.Context()

	name, _ := cmd.Flags().GetString("name")
	principal, _ := cmd.Flags().GetFloat64("principal")
	interestType, _ := cmd.Flags().GetString("interest-type")
	interestMode, _ := cmd.Flags().GetString("interest-mode")
	interestValue, _ := cmd.Flags().GetFloat64("interest-value")
	interestRate, _ := cmd.Flags().GetFloat64("interest-rate")
	plan, _ := cmd.Flags().GetString("plan")
	emi, _ := cmd.Flags().GetFloat64("emi")
	startFlag, _ := cmd.Flags().GetString("start")
	endFlag, _ := cmd.Flags().GetString("end")

	start, err := parseDate(startFlag)
	if err != nil {
		return err
	}
	var end *time.Time
	if endFlag != "" {
		e, err := parseDate(endFlag)
		if err != nil {
			return err
		}
		end = &e
	}

	store := openStore(cmd)
	p, err := store.Load(ctx)
	if err != nil {
		return err
	}

	d, err := p.AddDebt(engine.DebtConfig{
		Name:          name,
		Principal:     principal,
		InterestType:  engine.InterestType(interestType),
		InterestMode:  engine.InterestMode(interestMode),
		InterestValue: interestValue,
		InterestRate:  interestRate,
		Plan:          engine.Plan(plan),
		EMIAmount:     emi,
		StartDate:     start,
		EndDate:       end,
	})
	if err != nil {
		return err
	}

	if err := store.Save(ctx, p); err != nil {
		return err
	}

	log.Info().
		Int64("id", d.ID()).
		Str("name", d.Name()).
		Float64("principal", d.Principal()).
		Msg("Debt added")
	fmt.Printf("Added debt #%d %q (principal %.2f)\n", d.ID(), d.Name(), d.Principal())
	return nil
}

func runDebtList(cmd *cobra.Command, args []string) error {
	store := openStore(cmd)
	p, err := store.Load(cmd.Context())
	if err != nil {
		return err
	}

	debts := p.Debts()
	if len(debts) == 0 {
		fmt.Println("No debts recorded.")
		return nil
	}

	now := time.Now()
	fmt.Printf("%-4s %-20s %12s %12s %12s %-11s %s\n",
		"ID", "NAME", "PENDING", "AT MATURITY", "INTEREST", "PAYOFF", "FLAGS")
	for _, d := range debts {
		s := d.Summary(now)
		flags := ""
		if s.Overdue {
			flags += "overdue "
		}
		if s.NeverCloses {
			flags += "never-closes"
		}
		fmt.Printf("%-4d %-20s %12.0f %12.0f %12.0f %-11s %s\n",
			s.ID, s.Name, s.PendingPrincipal, s.RepaymentAtEnd, s.InterestPayable,
			formatDate(s.PayoffDate), flags)
	}
	return nil
}

func runDebtRemove(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid debt id %q: %w", args[0], err)
	}

	ctx := cmd.Context()
	store := openStore(cmd)
	p, err := store.Load(ctx)
	if err != nil {
		return err
	}
	if err := p.RemoveDebt(id); err != nil {
		return err
	}
	if err := store.Save(ctx, p); err != nil {
		return err
	}
	fmt.Printf("Removed debt #%d\n", id)
	return nil
}
