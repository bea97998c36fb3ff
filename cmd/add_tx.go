package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/kelabsilat/kirabuku"
	"github.com/kelabsilat/kirabuku/date"
)

type addTxCmd struct {
	txType   string
	category string
	amount   float64
	desc     string
	member   string
	when     string
}

func (*addTxCmd) Name() string     { return "add-tx" }
func (*addTxCmd) Synopsis() string { return "add a manual ledger entry" }
func (*addTxCmd) Usage() string {
	return `kira add-tx -type <IN|OUT> -category <category> -amount <ringgit> [-desc <text>] [-member <member>] [-date <date>]

  Books a manual income or expense entry. Amounts are positive ringgit; the
  type decides the direction. Fee entries are derived from the payment
  matrix and cannot be added here.

Usage Examples:
$ kira add-tx -type OUT -category Sewa -amount 45 -desc "Sewa dewan Mac"
$ kira add-tx -type IN -category Derma -amount 200 -desc "Derma tahunan"

`
}

func (c *addTxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.txType, "type", "", "Entry direction: IN or OUT (required).")
	f.StringVar(&c.category, "category", "", "Category (required).")
	f.Float64Var(&c.amount, "amount", 0, "Amount in ringgit, positive (required).")
	f.StringVar(&c.desc, "desc", "", "Description.")
	f.StringVar(&c.member, "member", "", "Member the entry relates to.")
	f.StringVar(&c.when, "date", "", "Entry date (2006-01-02). Defaults to today.")
}

func (c *addTxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	t := kirabuku.Transaction{
		Type:        kirabuku.TransactionType(c.txType),
		Category:    c.category,
		Amount:      kirabuku.RM(c.amount),
		Description: c.desc,
	}
	if c.member != "" {
		m, err := findMember(store, c.member)
		if err != nil {
			return fail(err)
		}
		t.MemberID = m.ID
	}
	if c.when != "" {
		when, err := date.Parse(c.when)
		if err != nil {
			return fail(err)
		}
		t.Date = when
	}

	t, err = newEngine(cfg, store).AddTransaction(t)
	if err != nil {
		return fail(err)
	}
	if err := saveStore(cfg, store); err != nil {
		return fail(err)
	}
	fmt.Printf("Booked %s %s %s (id %s)\n", t.Type, t.Category, t.Amount, t.ID)
	return subcommands.ExitSuccess
}
