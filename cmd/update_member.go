package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/kelabsilat/kirabuku/date"
)

type updateMemberCmd struct {
	id     string
	name   string
	number string
	ic     string
	phone  string
	joined string
}

func (*updateMemberCmd) Name() string     { return "update-member" }
func (*updateMemberCmd) Synopsis() string { return "update a member's details" }
func (*updateMemberCmd) Usage() string {
	return `kira update-member -id <member> [-name <name>] [-number <n>] [-ic <ic>] [-phone <phone>] [-joined <date>]

  Updates the given fields of a member; unset flags keep the stored value.
  The member may be referenced by id, member number or exact name.

`
}

func (c *updateMemberCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Member to update (required).")
	f.StringVar(&c.name, "name", "", "New name.")
	f.StringVar(&c.number, "number", "", "New member number.")
	f.StringVar(&c.ic, "ic", "", "New IC number.")
	f.StringVar(&c.phone, "phone", "", "New phone number.")
	f.StringVar(&c.joined, "joined", "", "New join date (2006-01-02).")
}

func (c *updateMemberCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if c.name != "" {
		m.Name = c.name
	}
	if c.number != "" {
		m.MemberNumber = c.number
	}
	if c.ic != "" {
		m.ICNumber = c.ic
	}
	if c.phone != "" {
		m.Phone = c.phone
	}
	if c.joined != "" {
		joined, err := date.Parse(c.joined)
		if err != nil {
			return fail(err)
		}
		m.JoinDate = joined
	}

	if err := newEngine(cfg, store).UpdateMember(m); err != nil {
		return fail(err)
	}
	if err := saveStore(cfg, store); err != nil {
		return fail(err)
	}
	fmt.Printf("Updated member %s\n", m.Name)
	return subcommands.ExitSuccess
}
