package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/kelabsilat/kirabuku"
	"github.com/kelabsilat/kirabuku/date"
	"github.com/kelabsilat/kirabuku/renderer"
)

type txCmd struct {
	from     string
	to       string
	txType   string
	category string
	member   string
	query    string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list ledger entries" }
func (*txCmd) Usage() string {
	return `kira tx [-from <date>] [-to <date>] [-type <IN|OUT>] [-category <category>] [-member <member>] [-q <text>]

  Lists ledger entries matching every given filter, with totals over the
  listing. Without filters the whole ledger is shown.

Usage Examples:
$ kira tx -from 2024-01-01 -to 2024-12-31 -type OUT
$ kira tx -q dewan

`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Earliest entry date (2006-01-02).")
	f.StringVar(&c.to, "to", "", "Latest entry date (2006-01-02).")
	f.StringVar(&c.txType, "type", "", "Direction: IN or OUT.")
	f.StringVar(&c.category, "category", "", "Category.")
	f.StringVar(&c.member, "member", "", "Entries relating to this member.")
	f.StringVar(&c.query, "q", "", "Free-text match on description and category.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	store, err := openStore(cfg)
	if err != nil {
		return fail(err)
	}

	filter := kirabuku.TransactionFilter{
		Type:     kirabuku.TransactionType(c.txType),
		Category: c.category,
		Query:    c.query,
	}
	if c.from != "" {
		from, err := date.Parse(c.from)
		if err != nil {
			return fail(err)
		}
		filter.From = from
	}
	if c.to != "" {
		to, err := date.Parse(c.to)
		if err != nil {
			return fail(err)
		}
		filter.To = to
	}
	if c.member != "" {
		m, err := findMember(store, c.member)
		if err != nil {
			return fail(err)
		}
		filter.MemberID = m.ID
	}

	l := renderer.NewLedger(store.FilterTransactions(filter))
	printMarkdown(renderer.RenderLedger(l))
	return subcommands.ExitSuccess
}
