package config

import (
	"flag"
	"os"

	"moodflow/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend server (default from Config)
//	-p string   path of the local preference database
//	-r string   payment redirect URL to consume at startup
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-p", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the backend server")
	fs.StringVar(&cfg.PrefsPath, "p", cfg.PrefsPath, "path of the local preference database")
	fs.StringVar(&cfg.ReturnURL, "r", cfg.ReturnURL, "payment redirect URL to consume at startup")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
