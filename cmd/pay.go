package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/kelabsilat/kirabuku"
)

type payCmd struct {
	member string
	month  string
	year   int
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "toggle a member's dues for one month" }
func (*payCmd) Usage() string {
	return `kira pay -member <member> -month <month> [-year <year>]

  Toggles the dues status of one month. Marking a month paid books exactly
  one fee income entry in the ledger; toggling it back removes the entry
  again. Months before the member's join date are not payable.

Usage Examples:
$ kira pay -member 12 -month jan
$ kira pay -member 12 -month 3 -year 2023

`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.member, "member", "", "Member to toggle (required).")
	f.StringVar(&c.month, "month", "", "Month, 1-12 or a Malay name (required).")
	f.IntVar(&c.year, "year", currentYear(), "Year of the month.")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := requireLogin(); err != nil {
		return fail(err)
	}
	month, err := parseMonth(c.month)
	if err != nil {
		return fail(err)
	}
	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	store, err := openStore(cfg)
	if err != nil {
		return fail(err)
	}
	m, err := findMember(store, c.member)
	if err != nil {
		return fail(err)
	}

	rec, err := newEngine(cfg, store).TogglePayment(m.ID, month, c.year)
	if err != nil {
		return fail(err)
	}
	if err := saveStore(cfg, store); err != nil {
		return fail(err)
	}

	if rec.Status == kirabuku.Paid {
		fmt.Printf("%s %d for %s: paid (%s)\n", kirabuku.MonthName(month), c.year, m.Name, rec.Amount)
	} else {
		fmt.Printf("%s %d for %s: unpaid\n", kirabuku.MonthName(month), c.year, m.Name)
	}
	return subcommands.ExitSuccess
}
