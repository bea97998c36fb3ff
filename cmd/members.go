package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/kelabsilat/kirabuku/renderer"
)

type membersCmd struct {
	year int
}

func (*membersCmd) Name() string     { return "members" }
func (*membersCmd) Synopsis() string { return "list the member roster" }
func (*membersCmd) Usage() string {
	return `kira members [-year <year>]

  Lists the roster in member-number order, with each member's dues standing
  for the year.

`
}

func (c *membersCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", currentYear(), "Year to compute the dues standing for.")
}

func (c *membersCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	store, err := openStore(cfg)
	if err != nil {
		return fail(err)
	}

	ml := renderer.NewMemberList(store, c.year, fee(cfg), target(cfg))
	printMarkdown(renderer.RenderMembers(ml))
	return subcommands.ExitSuccess
}
