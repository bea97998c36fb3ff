package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/kelabsilat/kirabuku"
	"github.com/kelabsilat/kirabuku/agent"
)

type remindCmd struct {
	member  string
	month   string
	year    int
	offline bool
}

func (*remindCmd) Name() string     { return "remind" }
func (*remindCmd) Synopsis() string { return "write a dues reminder message" }
func (*remindCmd) Usage() string {
	return `kira remind -member <member> -month <month> [-year <year>] [-offline]

  Writes a WhatsApp-ready reminder in Bahasa Melayu for an unpaid month.
  With -offline the fixed reminder text is used without calling Gemini.

Usage Examples:
$ kira remind -member 12 -month jan

`
}

func (c *remindCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.member, "member", "", "Member to remind (required).")
	f.StringVar(&c.month, "month", "", "Month, 1-12 or a Malay name (required).")
	f.IntVar(&c.year, "year", currentYear(), "Year of the month.")
	f.BoolVar(&c.offline, "offline", false, "Use the fixed reminder text, no API call.")
}

func (c *remindCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	month, err := parseMonth(c.month)
	if err != nil {
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
	m, err := findMember(store, c.member)
	if err != nil {
		return fail(err)
	}

	if store.PaymentStatus(m.ID, month, c.year) == kirabuku.Paid {
		fmt.Printf("%s has already paid %s %d, no reminder needed.\n", m.Name, kirabuku.MonthName(month), c.year)
		return subcommands.ExitSuccess
	}

	monthName := kirabuku.MonthName(month)
	if c.offline {
		fmt.Println(agent.ReminderFallback(m.Name, monthName))
		return subcommands.ExitSuccess
	}

	gen, err := agent.NewGemini(ctx)
	if err != nil {
		return fail(err)
	}
	msg, err := gen.Reminder(ctx, m.Name, monthName)
	if err != nil {
		return fail(err)
	}
	fmt.Println(msg)
	return subcommands.ExitSuccess
}
