package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct {
	check bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validate the books and rewrite them in canonical form"
}
func (*fmtCmd) Usage() string {
	return `kira fmt [-check]

  Audits the books against the consistency rules (one payment record per
  member and month, paid months carrying exactly one linked fee entry, no
  dangling member references) and rewrites the data file in its canonical
  indented form. With -check, only audits.

`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.check, "check", false, "Audit only, do not rewrite the file.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := requireLogin(); err != nil {
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

	if err := newEngine(cfg, store).CheckInvariants(); err != nil {
		fmt.Fprintf(os.Stderr, "The books are inconsistent:\n%v\n", err)
		return subcommands.ExitFailure
	}
	if c.check {
		fmt.Println("The books are consistent.")
		return subcommands.ExitSuccess
	}

	if err := saveStore(cfg, store); err != nil {
		return fail(err)
	}
	fmt.Printf("Formatted %s\n", cfg.DataFile)
	return subcommands.ExitSuccess
}
