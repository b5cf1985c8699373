package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"debtwise/internal/config"
	"debtwise/internal/logger"
	"debtwise/internal/snapshot"
)

var version = "1.0.0"

// cfg is the loaded application configuration, set by Execute.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "debtwise",
	Short: "debtwise - track debts, project payoffs, plan repayments",
	Long: `debtwise is a personal debt ledger. It tracks liabilities under
several interest conventions (daily fixed or percentage, monthly, yearly,
one-time fee, interest-free), applies payments interest-first with
capitalization of shortfalls, and projects when each debt reaches zero.

State lives in a local JSON snapshot (or redis when REDIS_ADDR is set).
Set OPENAI_API_KEY to get AI-backed answers from 'debtwise advise';
without it the advisor falls back to rule-based text.`,
	Version: version,
}

func Execute(c *config.Config) {
	if c == nil {
		c, _ = config.Load()
	}
	cfg = c

	if err := rootCmd.Execute(); err != nil {
		log := logger.WithComponent("cmd")
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("snapshot", "", "Path to the portfolio snapshot file (overrides DEBTWISE_SNAPSHOT)")
}

// openStore picks the snapshot backend: redis when configured, the local
// file otherwise.
func openStore(cmd *cobra.Command) snapshot.Store {
	if cfg.RedisAddr != "" {
		return snapshot.NewRedisStore(cfg.RedisAddr)
	}
	path := cfg.SnapshotPath
	if flag, _ := cmd.Flags().GetString("snapshot"); flag != "" {
		path = flag
	}
	return snapshot.NewFileStore(path)
}

// parseDate reads a YYYY-MM-DD flag value; empty means now.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", value, err)
	}
	return t, nil
}

// formatDate renders an optional date for display.
func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}
