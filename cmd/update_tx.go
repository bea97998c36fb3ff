package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/kelabsilat/kirabuku"
	"github.com/kelabsilat/kirabuku/date"
)

type updateTxCmd struct {
	id       string
	txType   string
	category string
	amount   float64
	desc     string
	when     string
}

func (*updateTxCmd) Name() string     { return "update-tx" }
func (*updateTxCmd) Synopsis() string { return "edit a manual ledger entry" }
func (*updateTxCmd) Usage() string {
	return `kira update-tx -id <tx> [-type <IN|OUT>] [-category <category>] [-amount <ringgit>] [-desc <text>] [-date <date>]

  Edits the given fields of a manual entry; unset flags keep the stored
  value. Entries derived from the payment matrix refuse edits: toggle the
  month instead.

`
}

func (c *updateTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction to edit (required).")
	f.StringVar(&c.txType, "type", "", "New direction: IN or OUT.")
	f.StringVar(&c.category, "category", "", "New category.")
	f.Float64Var(&c.amount, "amount", -1, "New amount in ringgit.")
	f.StringVar(&c.desc, "desc", "", "New description.")
	f.StringVar(&c.when, "date", "", "New entry date (2006-01-02).")
}

func (c *updateTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	stored := store.Transaction(c.id)
	if stored == nil {
		return fail(fmt.Errorf("no transaction with id %q", c.id))
	}

	t, err := c.merge(*stored)
	if err != nil {
		return fail(err)
	}

	if err := newEngine(cfg, store).UpdateTransaction(t); err != nil {
		return fail(err)
	}
	if err := saveStore(cfg, store); err != nil {
		return fail(err)
	}
	fmt.Printf("Updated transaction %s\n", t.ID)
	return subcommands.ExitSuccess
}

// merge applies the set flags on top of the stored entry. The amount flag
// defaults to -1 so that an explicit '-amount 0' still reaches the engine
// and gets rejected there.
func (c *updateTxCmd) merge(stored kirabuku.Transaction) (kirabuku.Transaction, error) {
	t := stored
	if c.txType != "" {
		t.Type = kirabuku.TransactionType(c.txType)
	}
	if c.category != "" {
		t.Category = c.category
	}
	if c.amount >= 0 {
		t.Amount = kirabuku.RM(c.amount)
	}
	if c.desc != "" {
		t.Description = c.desc
	}
	if c.when != "" {
		when, err := date.Parse(c.when)
		if err != nil {
			return t, err
		}
		t.Date = when
	}
	return t, nil
}
