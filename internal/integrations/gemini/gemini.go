// Package gemini relays chat questions to the Google Gemini API together
// with a flattened view of the user's financial snapshot.
package gemini

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

const requestTimeout = 15 * time.Second

// FallbackReply is the deterministic local answer used whenever the remote
// call fails. The chat surface never exposes an error to the user.
const FallbackReply = "I couldn't reach the advisory service just now. " +
	"In the meantime: keep your savings rate above 20%, hold 3-6 months of " +
	"expenses as an emergency fund, and clear high-interest debt first."

// ContentGenerator defines the interface for generating content via Gemini.
// This abstraction enables testing without making actual API calls.
type ContentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// modelsAdapter wraps *genai.Models to implement ContentGenerator.
type modelsAdapter struct {
	models *genai.Models
}

func (m *modelsAdapter) GenerateContent(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	resp, err := m.models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("genai.GenerateContent: %w", err)
	}
	return resp, nil
}

// FinancialContext is the flattened snapshot subset passed alongside the
// user's question.
type FinancialContext struct {
	MonthlyIncome    int
	TotalExpenses    int
	TotalInvestments int
	Debts            map[string]int
}

// Advisor answers free-text questions with the user's finances as context.
type Advisor struct {
	generator ContentGenerator
	model     string
	log       *logrus.Logger
}

// NewAdvisor creates an advisor backed by the Gemini API.
func NewAdvisor(ctx context.Context, apiKey, model string, log *logrus.Logger) (*Advisor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Advisor{
		generator: &modelsAdapter{models: client.Models},
		model:     model,
		log:       log,
	}, nil
}

// NewAdvisorWithGenerator creates an advisor over a custom ContentGenerator.
// This is primarily used for testing with mock generators.
func NewAdvisorWithGenerator(generator ContentGenerator, model string, log *logrus.Logger) *Advisor {
	return &Advisor{generator: generator, model: model, log: log}
}

// Advise sends the question and financial context to Gemini and returns the
// reply text verbatim.
func (a *Advisor) Advise(ctx context.Context, fc FinancialContext, message string) (string, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: buildPrompt(fc, message)},
			},
		},
	}

	resp, err := a.generator.GenerateContent(timeoutCtx, a.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("empty response from Gemini")
	}
	reply := strings.TrimSpace(resp.Text())
	if reply == "" {
		return "", fmt.Errorf("empty reply text from Gemini")
	}

	a.log.Debugf("Gemini reply generated (%d chars)", len(reply))
	return reply, nil
}

func buildPrompt(fc FinancialContext, message string) string {
	var b strings.Builder
	b.WriteString("You are FinCoach, a friendly AI financial assistant for Indian users.\n")
	b.WriteString("You analyze financial profiles and provide personalized insights.\n\n")
	b.WriteString("Financial snapshot:\n")
	fmt.Fprintf(&b, "  Monthly income: ₹%d\n", fc.MonthlyIncome)
	fmt.Fprintf(&b, "  Monthly expenses: ₹%d\n", fc.TotalExpenses)
	fmt.Fprintf(&b, "  Total investments: ₹%d\n", fc.TotalInvestments)
	if len(fc.Debts) > 0 {
		b.WriteString("  Outstanding debts:\n")
		types := make([]string, 0, len(fc.Debts))
		for loanType := range fc.Debts {
			types = append(types, loanType)
		}
		sort.Strings(types)
		for _, loanType := range types {
			fmt.Fprintf(&b, "    %s: ₹%d\n", loanType, fc.Debts[loanType])
		}
	}
	fmt.Fprintf(&b, "\nUser says: %q\n\n", message)
	b.WriteString("Respond helpfully with actionable insights and next steps. ")
	b.WriteString("If information is missing, give practical general suggestions.")
	return b.String()
}
