package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "close the current session" }
func (*logoutCmd) Usage() string {
	return `kira logout

Closes the session. Logging out twice is fine.
`
}

func (*logoutCmd) SetFlags(f *flag.FlagSet) {}

func (*logoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := sessions()
	if err != nil {
		return fail(err)
	}
	if err := s.Logout(); err != nil {
		return fail(err)
	}
	fmt.Println("Logged out.")
	return subcommands.ExitSuccess
}
