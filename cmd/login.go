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

type loginCmd struct {
	user string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "open a session for the mutating commands" }
func (*loginCmd) Usage() string {
	return `kira login [-user <name>]

  Verifies the credential and opens a 24 hour session. Out of the box the
  credential is admin/admin123; change it with 'kira passwd'.

`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "admin", "Username to log in as.")
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Printf("Password for %s: ", c.user)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return fail(err)
	}
	password := strings.TrimRight(line, "\r\n")

	if err := auth.VerifyPassword(passwdFile(), c.user, password); err != nil {
		return fail(err)
	}
	s, err := sessions()
	if err != nil {
		return fail(err)
	}
	if err := s.Login(c.user); err != nil {
		return fail(err)
	}
	fmt.Printf("Logged in as %s.\n", c.user)
	return subcommands.ExitSuccess
}
