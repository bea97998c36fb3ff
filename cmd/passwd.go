package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/kelabsilat/kirabuku/auth"
)

type passwdCmd struct {
	user string
}

func (*passwdCmd) Name() string     { return "passwd" }
func (*passwdCmd) Synopsis() string { return "set the login credential" }
func (*passwdCmd) Usage() string {
	return `kira passwd [-user <name>]

  Writes the password file next to the books, replacing the built-in
  admin/admin123 credential. Requires a login.

`
}

func (c *passwdCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "admin", "Username the new password is for.")
}

func (c *passwdCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := requireLogin(); err != nil {
		return fail(err)
	}

	in := bufio.NewReader(os.Stdin)
	fmt.Printf("New password for %s: ", c.user)
	first, err := in.ReadString('\n')
	if err != nil {
		return fail(err)
	}
	fmt.Print("Repeat: ")
	second, err := in.ReadString('\n')
	if err != nil {
		return fail(err)
	}
	if first != second {
		return fail(fmt.Errorf("passwords do not match"))
	}

	password := strings.TrimRight(first, "\r\n")
	if err := auth.SetPassword(passwdFile(), c.user, password); err != nil {
		return fail(err)
	}
	fmt.Printf("Password set for %s.\n", c.user)
	return subcommands.ExitSuccess
}
