// Package cmd implements the CLI application to keep a silat club's books.
package cmd

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/kelabsilat/kirabuku"
	"github.com/kelabsilat/kirabuku/auth"
	"github.com/kelabsilat/kirabuku/config"
)

// Commands lists every subcommand. A main package registers them on a
// commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&addMemberCmd{},
	&updateMemberCmd{},
	&deleteMemberCmd{},
	&membersCmd{},

	&payCmd{},
	&matrixCmd{},

	&addTxCmd{},
	&updateTxCmd{},
	&deleteTxCmd{},
	&txCmd{},

	&dashboardCmd{},
	&exportCmd{},
	&reportCmd{},
	&remindCmd{},

	&loginCmd{},
	&logoutCmd{},
	&passwdCmd{},

	&fmtCmd{},
	&importLegacyCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data-dir", "", "directory holding the books (default $KIRABUKU_DIR or the current directory)")
var configFile = flag.String("config", "", "path to the config file (default kirabuku.yaml in the data directory)")

func appDir() string {
	if *dataDir != "" {
		return *dataDir
	}
	return config.DataDir()
}

// loadConfig reads the effective configuration.
func loadConfig() (config.Config, error) {
	dir := appDir()
	path := *configFile
	if path == "" {
		path = filepath.Join(dir, config.DefaultFileName)
	}
	return config.Load(dir, path)
}

func persister(cfg config.Config) kirabuku.FilePersister {
	return kirabuku.FilePersister{Path: cfg.DataFile}
}

// openStore loads the books, seeding them on first use.
func openStore(cfg config.Config) (*kirabuku.Store, error) {
	return persister(cfg).Load()
}

// newEngine returns an engine on the store, charging the configured fee
// under the configured category.
func newEngine(cfg config.Config, s *kirabuku.Store) *kirabuku.Engine {
	e := kirabuku.NewEngine(s)
	e.SetFee(kirabuku.RM(cfg.MonthlyFee))
	e.SetFeeCategory(cfg.FeeCategory)
	return e
}

func saveStore(cfg config.Config, s *kirabuku.Store) error {
	if err := persister(cfg).Save(s); err != nil {
		slog.Warn("could not save the books, the change is lost", "file", cfg.DataFile, "error", err)
		return err
	}
	return nil
}

func sessions() (*auth.Sessions, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return auth.NewSessions(cfg.SessionFile), nil
}

func passwdFile() string {
	return filepath.Join(appDir(), ".passwd")
}

// requireLogin guards the mutating commands.
func requireLogin() error {
	s, err := sessions()
	if err != nil {
		return err
	}
	_, err = s.Current()
	return err
}

// fail reports the error and maps it to an exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

// findMember resolves a member reference: the id first, then the member
// number, then the exact name.
func findMember(s *kirabuku.Store, ref string) (kirabuku.Member, error) {
	if m := s.Member(ref); m != nil {
		return *m, nil
	}
	for _, m := range s.Members() {
		if m.MemberNumber == ref {
			return m, nil
		}
	}
	for _, m := range s.Members() {
		if strings.EqualFold(m.Name, ref) {
			return m, nil
		}
	}
	return kirabuku.Member{}, fmt.Errorf("no member matches %q", ref)
}

// parseMonth resolves a month flag, or -1 when it cannot.
func parseMonth(s string) (int, error) {
	month := kirabuku.ParseMonth(s)
	if month < 0 {
		return -1, fmt.Errorf("unknown month %q (use 1-12 or a Malay name)", s)
	}
	return month, nil
}

func currentYear() int { return time.Now().Year() }

func fee(cfg config.Config) kirabuku.Money    { return kirabuku.RM(cfg.MonthlyFee) }
func target(cfg config.Config) kirabuku.Money { return kirabuku.RM(cfg.SessionTarget) }
