package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/kelabsilat/kirabuku/renderer"
)

type matrixCmd struct {
	year int
}

func (*matrixCmd) Name() string     { return "matrix" }
func (*matrixCmd) Synopsis() string { return "show the member-by-month dues matrix" }
func (*matrixCmd) Usage() string {
	return `kira matrix [-year <year>]

  Shows who has paid which month of the year, with each member's paid total
  and the amount still outstanding against the session target.

`
}

func (c *matrixCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", currentYear(), "Year to show.")
}

func (c *matrixCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	store, err := openStore(cfg)
	if err != nil {
		return fail(err)
	}

	m := renderer.NewMatrix(store, c.year, fee(cfg), target(cfg))
	printMarkdown(renderer.RenderMatrix(m))
	return subcommands.ExitSuccess
}
