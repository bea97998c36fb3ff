// Package agent writes the club's reports and reminder messages in Bahasa
// Melayu using Gemini.
//
// Every generator degrades gracefully: when the model is unreachable or
// returns nothing, a fixed fallback text comes back instead of an error, so
// the reporting commands keep working offline.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-3-flash-preview"

// Summary is the aggregated financial picture a report is written from.
// Amounts are preformatted ("RM150.00") so the prompt shows them exactly as
// the books do.
type Summary struct {
	Members int
	Income  string
	Expense string
	Balance string
}

// Generator produces the club's written output.
type Generator interface {
	// FinancialReport writes a strategic analysis of the overall finances.
	FinancialReport(ctx context.Context, s Summary) (string, error)
	// AnnualReport writes the brief annual report for one calendar year.
	AnnualReport(ctx context.Context, year int, s Summary) (string, error)
	// CashFlow writes a formal cash flow statement from raw ledger lines.
	CashFlow(ctx context.Context, entries []string) (string, error)
	// Reminder writes a friendly dues reminder for one member and month.
	Reminder(ctx context.Context, memberName, month string) (string, error)
}

// Gemini implements Generator on the Gemini API.
type Gemini struct {
	client *genai.Client

	generate func(ctx context.Context, prompt string) (string, error) // injected for tests
}

// NewGemini creates a Gemini-backed generator. The API key comes from the
// environment (GEMINI_API_KEY), picked up by the genai client itself.
func NewGemini(ctx context.Context) (*Gemini, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create Gemini client: %w", err)
	}
	g := &Gemini{client: client}
	g.generate = g.generateContent
	return g, nil
}

func (g *Gemini) generateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// ask runs one prompt and falls back to 'fallback' when generation fails.
func (g *Gemini) ask(ctx context.Context, prompt, fallback string) (string, error) {
	text, err := g.generate(ctx, prompt)
	if err != nil {
		slog.Warn("report generation failed, using fallback text", "error", err)
		return fallback, nil
	}
	if strings.TrimSpace(text) == "" {
		return fallback, nil
	}
	return text, nil
}

func (g *Gemini) FinancialReport(ctx context.Context, s Summary) (string, error) {
	return g.ask(ctx, financialReportPrompt(s), financialReportFallback)
}

func (g *Gemini) AnnualReport(ctx context.Context, year int, s Summary) (string, error) {
	return g.ask(ctx, annualReportPrompt(year, s), annualReportFallback)
}

func (g *Gemini) CashFlow(ctx context.Context, entries []string) (string, error) {
	return g.ask(ctx, cashFlowPrompt(entries), cashFlowFallback)
}

func (g *Gemini) Reminder(ctx context.Context, memberName, month string) (string, error) {
	return g.ask(ctx, reminderPrompt(memberName, month), ReminderFallback(memberName, month))
}

var _ Generator = (*Gemini)(nil)
