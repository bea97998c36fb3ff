package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kelabsilat/kirabuku/renderer"
)

type exportCmd struct {
	output string
	matrix bool
	year   int
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the books as CSV" }
func (*exportCmd) Usage() string {
	return `kira export [-o <file>] [-matrix] [-year <year>]

  Writes the ledger as CSV, expenses negated so a column sum gives the
  balance. With -matrix, writes the dues matrix of the year instead.

Usage Examples:
$ kira export -o lejar.csv
$ kira export -matrix -year 2024

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
	f.BoolVar(&c.matrix, "matrix", false, "Export the dues matrix instead of the ledger.")
	f.IntVar(&c.year, "year", currentYear(), "Year of the matrix export.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}
	store, err := openStore(cfg)
	if err != nil {
		return fail(err)
	}

	out := os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			return fail(err)
		}
		defer file.Close()
		out = file
	}

	if c.matrix {
		m := renderer.NewMatrix(store, c.year, fee(cfg), target(cfg))
		err = renderer.ExportMatrixCSV(out, m)
	} else {
		err = renderer.ExportLedgerCSV(out, store.Transactions())
	}
	if err != nil {
		return fail(err)
	}
	if c.output != "" {
		fmt.Fprintf(os.Stderr, "Wrote %s\n", c.output)
	}
	return subcommands.ExitSuccess
}
