package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type deleteTxCmd struct {
	id string
}

func (*deleteTxCmd) Name() string     { return "delete-tx" }
func (*deleteTxCmd) Synopsis() string { return "remove a manual ledger entry" }
func (*deleteTxCmd) Usage() string {
	return `kira delete-tx -id <tx>

  Removes a manual entry. Entries derived from the payment matrix refuse
  deletion; they disappear when their month is toggled back to unpaid.

`
}

func (c *deleteTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction to remove (required).")
}

func (c *deleteTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := newEngine(cfg, store).DeleteTransaction(c.id); err != nil {
		return fail(err)
	}
	if err := saveStore(cfg, store); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted transaction %s\n", c.id)
	return subcommands.ExitSuccess
}
