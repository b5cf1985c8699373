package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	"debtwise/internal/logger"
)

const systemPrompt = `You are a personal finance assistant.
You MUST base all advice strictly on the provided financial snapshot.
Answer in plain text suitable for a terminal.
Do NOT invent numbers.`

// Advisor answers free-form questions about a portfolio. With an API key it
// asks an OpenAI chat model, grounding the request in a rule report; without
// one, or whenever the backend fails, it falls back to templated advice
// built from the same report. Ask never fails from the caller's view.
type Advisor struct {
	client *openai.Client
	model  string
	log    zerolog.Logger
}

// NewAdvisor builds an advisor. An empty apiKey leaves the AI backend
// disabled and every answer comes from the rule templates.
func NewAdvisor(apiKey, model string) *Advisor {
	a := &Advisor{
		model: model,
		log:   logger.WithComponent("advisor"),
	}
	if apiKey != "" {
		a.client = openai.NewClient(apiKey)
	}
	return a
}

// Enabled reports whether the AI backend is configured.
func (a *Advisor) Enabled() bool { return a.client != nil }

// Ask answers the question against the report.
func (a *Advisor) Ask(ctx context.Context, question string, report Report) string {
	if a.client == nil {
		return a.templatedAdvice(question, report)
	}

	snapshot, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		a.log.Warn().Err(err).Msg("Failed to encode report, using templated advice")
		return a.templatedAdvice(question, report)
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Temperature: 0.7,
		MaxTokens:   300,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("USER QUESTION: %s\nSNAPSHOT: %s", question, snapshot),
			},
		},
	})
	if err != nil {
		a.log.Warn().Err(err).Msg("AI request failed, using templated advice")
		return a.templatedAdvice(question, report)
	}
	if len(resp.Choices) == 0 {
		a.log.Warn().Msg("AI returned no choices, using templated advice")
		return a.templatedAdvice(question, report)
	}
	return resp.Choices[0].Message.Content
}

var monthsPattern = regexp.MustCompile(`(\d+)\s*months?`)

// templatedAdvice builds rule-only advice: a surplus projection when the
// question names a horizon, a debt timeline when it asks about one, and a
// snapshot overview always.
func (a *Advisor) templatedAdvice(question string, report Report) string {
	q := strings.ToLower(question)
	sum := report.Summary

	var b strings.Builder

	if m := monthsPattern.FindStringSubmatch(q); m != nil && strings.Contains(q, "surplus") {
		months, _ := strconv.Atoi(m[1])
		fmt.Fprintf(&b, "Surplus projection: over %d months your accumulated surplus will be about %.0f.\n\n",
			months, sum.Surplus*float64(months))
	}

	if strings.Contains(q, "debt") && (strings.Contains(q, "when") || strings.Contains(q, "how long")) {
		if sum.Surplus > 0 {
			months := int(sum.TotalDebt/sum.Surplus) + 1
			fmt.Fprintf(&b, "Debt timeline: total debt is %.0f; at the current surplus you could be debt-free in roughly %d months.\n\n",
				sum.TotalDebt, months)
		} else {
			fmt.Fprintf(&b, "Debt timeline: total debt is %.0f, but with no monthly surplus there is no projected debt-free date.\n\n",
				sum.TotalDebt)
		}
	}

	fmt.Fprintf(&b, "Financial snapshot:\n")
	fmt.Fprintf(&b, "  Risk level:      %s\n", sum.RiskLevel)
	fmt.Fprintf(&b, "  Monthly surplus: %.0f\n", sum.Surplus)
	fmt.Fprintf(&b, "  Total debt:      %.0f\n", sum.TotalDebt)

	if len(report.OverdueDebts) > 0 {
		fmt.Fprintf(&b, "\nOverdue debts:\n")
		for _, od := range report.OverdueDebts {
			fmt.Fprintf(&b, "  %s: %.0f outstanding\n", od.Name, od.Amount)
		}
	}

	if report.Recommendations.PriorityDebt != "" {
		fmt.Fprintf(&b, "\nPay down %q first: its projected interest is the heaviest relative to what you borrowed.\n",
			report.Recommendations.PriorityDebt)
	}
	if report.Recommendations.CanTakeNewEMI {
		fmt.Fprintf(&b, "A new installment up to %.0f/month would fit your surplus.\n",
			report.Recommendations.SafeEMIAmount)
	}

	return strings.TrimRight(b.String(), "\n")
}
