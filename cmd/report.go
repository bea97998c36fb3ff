package cmd

import (
	"context"
	"flag"
	"fmt"
	"sort"

	"github.com/google/subcommands"
	"github.com/kelabsilat/kirabuku"
	"github.com/kelabsilat/kirabuku/agent"
)

type reportCmd struct {
	year int
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "write a financial report with Gemini" }
func (*reportCmd) Usage() string {
	return `kira report <financial|annual|cashflow> [-year <year>]

  Writes the chosen report in Bahasa Melayu from the current books. The
  API key comes from GEMINI_API_KEY; without one a fixed fallback text is
  shown instead.

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", currentYear(), "Year of the annual report.")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Println(c.Usage())
		return subcommands.ExitUsageError
	}
	kind := f.Arg(0)

	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	store, err := openStore(cfg)
	if err != nil {
		return fail(err)
	}
	gen, err := agent.NewGemini(ctx)
	if err != nil {
		return fail(err)
	}

	var report string
	switch kind {
	case "financial":
		report, err = gen.FinancialReport(ctx, summarize(store, store.Totals()))
	case "annual":
		report, err = gen.AnnualReport(ctx, c.year, annualSummary(store, c.year))
	case "cashflow":
		report, err = gen.CashFlow(ctx, ledgerLines(store))
	default:
		return fail(fmt.Errorf("unknown report %q, want financial, annual or cashflow", kind))
	}
	if err != nil {
		return fail(err)
	}

	printMarkdown(report)
	return subcommands.ExitSuccess
}

func summarize(s *kirabuku.Store, t kirabuku.Totals) agent.Summary {
	return agent.Summary{
		Members: len(s.Members()),
		Income:  t.Income.String(),
		Expense: t.Expense.String(),
		Balance: t.Balance.String(),
	}
}

// annualSummary totals only the entries dated in the given year.
func annualSummary(s *kirabuku.Store, year int) agent.Summary {
	var in, out kirabuku.Money
	for _, b := range s.MonthlyCashflow(year) {
		in = in.Add(b.Income)
		out = out.Add(b.Expense)
	}
	return agent.Summary{
		Members: len(s.Members()),
		Income:  in.String(),
		Expense: out.String(),
		Balance: in.Sub(out).String(),
	}
}

// ledgerLines renders the raw ledger for the cash flow prompt, oldest
// first.
func ledgerLines(s *kirabuku.Store) []string {
	entries := s.Transactions()
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date.Before(entries[j].Date) })
	var lines []string
	for _, t := range entries {
		lines = append(lines, fmt.Sprintf("%s: [%s] %s - %s (%s)", t.Date, t.Type, t.Category, t.Amount, t.Description))
	}
	return lines
}
