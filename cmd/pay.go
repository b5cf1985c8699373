package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"debtwise/internal/engine"
	"debtwise/internal/logger"
)

var payCmd = &cobra.Command{
	Use:   "pay",
	Short: "Record, edit or delete payments against a debt",
	Long: `Payments are applied interest-first: the interest accrued since the
previous payment is covered before anything reduces the principal, and a
payment smaller than the accrued interest grows the principal by the
shortfall.

Editing or deleting a historical payment replays the whole payment log in
chronological order, so the resulting balance depends only on the set of
payments, not on when you corrected them.`,
}

var payRecordCmd = &cobra.Command{
	Use:   "record [debt-id] [amount]",
	Short: "Apply a payment",
	Args:  cobra.ExactArgs(2),
	RunE:  runPayRecord,
}

var payListCmd = &cobra.Command{
	Use:   "list [debt-id]",
	Short: "List a debt's payment history",
	Args:  cobra.ExactArgs(1),
	RunE:  runPayList,
}

var payEditCmd = &cobra.Command{
	Use:   "edit [debt-id] [index] [amount]",
	Short: "Overwrite a recorded payment and replay the ledger",
	Args:  cobra.ExactArgs(3),
	RunE:  runPayEdit,
}

var payDeleteCmd = &cobra.Command{
	Use:   "delete [debt-id] [index]",
	Short: "Delete a recorded payment and replay the ledger",
	Args:  cobra.ExactArgs(2),
	RunE:  runPayDelete,
}

func init() {
	rootCmd.AddCommand(payCmd)
	payCmd.AddCommand(payRecordCmd, payListCmd, payEditCmd, payDeleteCmd)

	payRecordCmd.Flags().String("date", "", "Payment date YYYY-MM-DD (default today)")
	payEditCmd.Flags().String("date", "", "New payment date YYYY-MM-DD (default today)")
}

func lookupDebt(p *engine.Portfolio, arg string) (*engine.Debt, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid debt id %q: %w", arg, err)
	}
	return p.Debt(id)
}

func runPayRecord(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("pay")
	ctx := cmd.Context()

	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[1], err)
	}
	dateFlag, _ := cmd.Flags().GetString("date")
	date, err := parseDate(dateFlag)
	if err != nil {
		return err
	}

	store := openStore(cmd)
	p, err := store.Load(ctx)
	if err != nil {
		return err
	}
	d, err := lookupDebt(p, args[0])
	if err != nil {
		return err
	}

	d.ApplyPayment(amount, date)
	if err := store.Save(ctx, p); err != nil {
		return err
	}

	log.Info().
		Int64("debt", d.ID()).
		Float64("amount", amount).
		Time("date", date).
		Msg("Payment recorded")
	fmt.Printf("Paid %.2f on %q; pending principal %.2f, interest assessed so far %.2f\n",
		amount, d.Name(), d.Principal(), d.InterestPaid())
	return nil
}

func runPayList(cmd *cobra.Command, args []string) error {
	store := openStore(cmd)
	p, err := store.Load(cmd.Context())
	if err != nil {
		return err
	}
	d, err := lookupDebt(p, args[0])
	if err != nil {
		return err
	}

	payments := d.Payments()
	if len(payments) == 0 {
		fmt.Printf("No payments recorded against %q.\n", d.Name())
		return nil
	}
	fmt.Printf("Payments against %q:\n", d.Name())
	for i, pay := range payments {
		fmt.Printf("  [%d] %s  %.2f\n", i, pay.Date.Format("2006-01-02"), pay.Amount)
	}
	fmt.Printf("Pending principal: %.2f\n", d.Principal())
	return nil
}

func runPayEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid payment index %q: %w", args[1], err)
	}
	amount, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[2], err)
	}
	dateFlag, _ := cmd.Flags().GetString("date")
	date, err := parseDate(dateFlag)
	if err != nil {
		return err
	}

	store := openStore(cmd)
	p, err := store.Load(ctx)
	if err != nil {
		return err
	}
	d, err := lookupDebt(p, args[0])
	if err != nil {
		return err
	}
	if err := d.UpdatePayment(index, amount, date); err != nil {
		return err
	}
	if err := store.Save(ctx, p); err != nil {
		return err
	}
	fmt.Printf("Updated payment [%d] on %q; pending principal %.2f\n", index, d.Name(), d.Principal())
	return nil
}

func runPayDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid payment index %q: %w", args[1], err)
	}

	store := openStore(cmd)
	p, err := store.Load(ctx)
	if err != nil {
		return err
	}
	d, err := lookupDebt(p, args[0])
	if err != nil {
		return err
	}
	if err := d.DeletePayment(index); err != nil {
		return err
	}
	if err := store.Save(ctx, p); err != nil {
		return err
	}
	fmt.Printf("Deleted payment [%d] on %q; pending principal %.2f\n", index, d.Name(), d.Principal())
	return nil
}
