package agent

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func stubGemini(text string, err error) (*Gemini, *string) {
	var prompt string
	g := &Gemini{}
	g.generate = func(_ context.Context, p string) (string, error) {
		prompt = p
		return text, err
	}
	return g, &prompt
}

func TestFinancialReport_PromptCarriesTheNumbers(t *testing.T) {
	g, prompt := stubGemini("Laporan penuh.", nil)
	s := Summary{Members: 3, Income: "RM290.00", Expense: "RM45.00", Balance: "RM245.00"}

	got, err := g.FinancialReport(context.Background(), s)
	if err != nil {
		t.Fatalf("FinancialReport: %v", err)
	}
	if got != "Laporan penuh." {
		t.Errorf("report = %q", got)
	}
	for _, want := range []string{"Jumlah Ahli: 3", "RM290.00", "RM45.00", "RM245.00", "Bahasa Melayu"} {
		if !strings.Contains(*prompt, want) {
			t.Errorf("prompt misses %q:\n%s", want, *prompt)
		}
	}
}

func TestAnnualReport_PromptCarriesTheYear(t *testing.T) {
	g, prompt := stubGemini("Laporan tahunan.", nil)
	if _, err := g.AnnualReport(context.Background(), 2024, Summary{Income: "RM360.00"}); err != nil {
		t.Fatalf("AnnualReport: %v", err)
	}
	if !strings.Contains(*prompt, "(2024)") {
		t.Errorf("prompt misses the year:\n%s", *prompt)
	}
}

func TestCashFlow_PromptCarriesTheLedger(t *testing.T) {
	g, prompt := stubGemini("Penyata.", nil)
	entries := []string{
		"2024-01-10: [IN] Yuran Bulanan - RM30.00 (Yuran Januari - Ahmad)",
		"2024-03-05: [OUT] Sewa - RM45.00 (Sewa dewan Mac)",
	}
	if _, err := g.CashFlow(context.Background(), entries); err != nil {
		t.Fatalf("CashFlow: %v", err)
	}
	for _, line := range entries {
		if !strings.Contains(*prompt, line) {
			t.Errorf("prompt misses %q:\n%s", line, *prompt)
		}
	}
}

func TestGenerationFailureFallsBack(t *testing.T) {
	boom := errors.New("api key missing")

	g, _ := stubGemini("", boom)
	got, err := g.FinancialReport(context.Background(), Summary{})
	if err != nil {
		t.Fatalf("FinancialReport: %v", err)
	}
	if got != financialReportFallback {
		t.Errorf("fallback = %q", got)
	}

	got, err = g.Reminder(context.Background(), "Ahmad", "Januari")
	if err != nil {
		t.Fatalf("Reminder: %v", err)
	}
	if want := ReminderFallback("Ahmad", "Januari"); got != want {
		t.Errorf("fallback = %q, want %q", got, want)
	}
}

func TestEmptyResponseFallsBack(t *testing.T) {
	g, _ := stubGemini("  \n", nil)
	got, err := g.AnnualReport(context.Background(), 2024, Summary{})
	if err != nil {
		t.Fatalf("AnnualReport: %v", err)
	}
	if got != annualReportFallback {
		t.Errorf("fallback = %q", got)
	}
}

func TestReminderFallbackNamesTheMember(t *testing.T) {
	got := ReminderFallback("Siti Norhaliza", "Mei")
	if !strings.Contains(got, "Siti Norhaliza") || !strings.Contains(got, "Mei") {
		t.Errorf("fallback = %q", got)
	}
}
