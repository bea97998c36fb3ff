package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type deleteMemberCmd struct {
	id    string
	force bool
}

func (*deleteMemberCmd) Name() string { return "delete-member" }
func (*deleteMemberCmd) Synopsis() string {
	return "remove a member and everything referencing it"
}
func (*deleteMemberCmd) Usage() string {
	return `kira delete-member -id <member> [-f]

  Removes the member together with all payment records and all ledger
  entries referencing the member, including the derived fee entries. This
  cannot be undone, so -f is required when the member has ledger entries.

`
}

func (c *deleteMemberCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Member to delete (required).")
	f.BoolVar(&c.force, "f", false, "Delete even when ledger entries reference the member.")
}

func (c *deleteMemberCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	m, err := findMember(store, c.id)
	if err != nil {
		return fail(err)
	}

	if linked := store.TransactionsReferencing(m.ID); len(linked) > 0 && !c.force {
		return fail(fmt.Errorf("%d ledger entries reference %s; use -f to delete them too", len(linked), m.Name))
	}

	if err := newEngine(cfg, store).DeleteMember(m.ID); err != nil {
		return fail(err)
	}
	if err := saveStore(cfg, store); err != nil {
		return fail(err)
	}
	fmt.Printf("Deleted member %s\n", m.Name)
	return subcommands.ExitSuccess
}
