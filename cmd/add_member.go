package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/kelabsilat/kirabuku"
	"github.com/kelabsilat/kirabuku/date"
)

type addMemberCmd struct {
	name   string
	number string
	ic     string
	phone  string
	joined string
}

func (*addMemberCmd) Name() string     { return "add-member" }
func (*addMemberCmd) Synopsis() string { return "add a member to the roster" }
func (*addMemberCmd) Usage() string {
	return `kira add-member -name <name> [-number <n>] [-ic <ic>] [-phone <phone>] [-joined <date>]

  Adds a member. The join date defaults to today; dues are only payable
  from the join month onwards.

Usage Examples:
$ kira add-member -name "Ahmad bin Zulkifli" -number 12 -ic 900101-14-5543 -joined 2023-01-15

`
}

func (c *addMemberCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Member's full name (required).")
	f.StringVar(&c.number, "number", "", "Member number, orders the matrix.")
	f.StringVar(&c.ic, "ic", "", "IC number.")
	f.StringVar(&c.phone, "phone", "", "Phone number.")
	f.StringVar(&c.joined, "joined", "", "Join date (2006-01-02). Defaults to today.")
}

func (c *addMemberCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	m := kirabuku.Member{
		Name:         c.name,
		MemberNumber: c.number,
		ICNumber:     c.ic,
		Phone:        c.phone,
	}
	if c.joined != "" {
		joined, err := date.Parse(c.joined)
		if err != nil {
			return fail(err)
		}
		m.JoinDate = joined
	}

	m, err = newEngine(cfg, store).AddMember(m)
	if err != nil {
		return fail(err)
	}
	if err := saveStore(cfg, store); err != nil {
		return fail(err)
	}
	fmt.Printf("Added member %s (id %s)\n", m.Name, m.ID)
	return subcommands.ExitSuccess
}
