package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/posener/complete/v2"

	"github.com/kelabsilat/kirabuku/cmd"
)

func main() {
	// An .env next to the books carries GEMINI_API_KEY and friends.
	godotenv.Load()

	setupLogging()
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func setupLogging() {
	level := slog.LevelWarn
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))
}

// completion answers shell completion requests and exits; a no-op in a
// normal run.
func completion() {
	root := &complete.Command{Sub: map[string]*complete.Command{}}
	for _, c := range cmd.Commands {
		root.Sub[c.Name()] = &complete.Command{}
	}
	root.Complete("kira")
}
