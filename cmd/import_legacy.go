package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/subcommands"
	"github.com/kelabsilat/kirabuku"
)

type importLegacyCmd struct {
	force bool
}

func (*importLegacyCmd) Name() string     { return "import-legacy" }
func (*importLegacyCmd) Synopsis() string { return "import the legacy web application's data" }
func (*importLegacyCmd) Usage() string {
	return `kira import-legacy [-f] <export.json>

  Rebuilds the books from an export of the legacy browser application's
  storage. The export may be the raw storage value or wrapped in an
  envelope; the collections are located either way. Refuses to overwrite
  existing books unless -f is given.

`
}

func (c *importLegacyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Overwrite existing books.")
}

func (c *importLegacyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := requireLogin(); err != nil {
		return fail(err)
	}
	if f.NArg() != 1 {
		fmt.Println(c.Usage())
		return subcommands.ExitUsageError
	}
	cfg, err := loadConfig()
	if err != nil {
		return fail(err)
	}

	if _, err := os.Stat(cfg.DataFile); err == nil && !c.force {
		return fail(fmt.Errorf("%s already exists; use -f to overwrite it", cfg.DataFile))
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		return fail(err)
	}
	defer file.Close()

	store, err := kirabuku.ImportLegacy(file)
	if err != nil {
		return fail(err)
	}
	if err := newEngine(cfg, store).CheckInvariants(); err != nil {
		slog.Warn("imported books are inconsistent, run 'kira fmt -check' for details", "error", err)
	}

	if err := saveStore(cfg, store); err != nil {
		return fail(err)
	}
	members := len(store.Members())
	fmt.Printf("Imported %d members into %s\n", members, cfg.DataFile)
	return subcommands.ExitSuccess
}
