package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"debtwise/internal/advisor"
	"debtwise/internal/logger"
)

var adviseCmd = &cobra.Command{
	Use:   "advise [question...]",
	Short: "Ask for advice grounded in your portfolio",
	Long: `Evaluate the portfolio against the built-in rule set and answer a
free-form question. With OPENAI_API_KEY configured the answer comes from an
OpenAI chat model grounded in the computed snapshot; otherwise, or whenever
the backend fails, the answer is templated from the rules alone.`,
	Example: `  debtwise advise "when will I be debt free?"
  debtwise advise "what is my surplus over 6 months?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdvise,
}

func init() {
	rootCmd.AddCommand(adviseCmd)
}

func runAdvise(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("advise")
	ctx := cmd.Context()
	question := strings.Join(args, " ")

	store := openStore(cmd)
	p, err := store.Load(ctx)
	if err != nil {
		return err
	}

	report := advisor.BuildReport(p, time.Now())
	adv := advisor.NewAdvisor(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	if !adv.Enabled() {
		log.Debug().Msg("No OpenAI key configured, answering from rules only")
	}

	fmt.Println(adv.Ask(ctx, question, report))
	return nil
}
