package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/kelabsilat/kirabuku/renderer"
)

type dashboardCmd struct {
	year int
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show the financial overview" }
func (*dashboardCmd) Usage() string {
	return `kira dashboard [-year <year>]

  Shows the all-time totals and the monthly cashflow of the year.

`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", currentYear(), "Year for the cashflow breakdown.")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	store, err := openStore(cfg)
	if err != nil {
		return fail(err)
	}

	d := renderer.NewDashboard(store, cfg.ClubName, c.year)
	printMarkdown(renderer.RenderDashboard(d))
	return subcommands.ExitSuccess
}
