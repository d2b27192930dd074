package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/zamm-dev/zamm/internal/commands"
	"github.com/zamm-dev/zamm/internal/config"
	"github.com/zamm-dev/zamm/internal/preferences"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit status
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	ctrl := &commands.Controller{
		Flags:  &commands.Flags{},
		Stdout: stdout,
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: stderr})

	app := newApp(ctrl, stderr)
	app.Writer = stdout
	app.ErrWriter = stderr

	if err := app.Run(ctx, args); err != nil {
		if !errors.Is(err, commands.ErrMissingArgs) {
			log.Error().Err(err).Msg("failed to run zamm")
		}
		return 1
	}

	return 0
}

func newApp(ctrl *commands.Controller, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "zamm",
		Usage:     "Call the zamm API with JSON arguments",
		ArgsUsage: "<json-args>",
		Version:   build(),

		// "help" would shadow the JSON argument; -h/--help stay available
		HideHelpCommand: true,

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("ZAMM_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "log format (console, json)",
				Sources: cli.EnvVars("ZAMM_LOG_FORMAT"),
			},
			&cli.StringFlag{
				Name:    "preferences-dir",
				Usage:   "directory holding " + preferences.FileName,
				Sources: cli.EnvVars("ZAMM_PREFERENCES_DIR"),
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			cfg, _, err := config.LoadConfig()
			if err != nil {
				return ctx, fmt.Errorf("failed to load configuration: %w", err)
			}

			ctrl.Flags.LogLevel = cfg.Log.Level
			if c.IsSet("log-level") {
				ctrl.Flags.LogLevel = c.String("log-level")
			}
			ctrl.Flags.LogFormat = cfg.Log.Format
			if c.IsSet("log-format") {
				ctrl.Flags.LogFormat = c.String("log-format")
			}

			ctrl.Flags.PreferencesDir = cfg.Preferences.Dir
			if c.IsSet("preferences-dir") {
				ctrl.Flags.PreferencesDir = c.String("preferences-dir")
			}
			if ctrl.Flags.PreferencesDir == "" {
				ctrl.Flags.PreferencesDir = preferences.DefaultDir()
			}

			if err := setupLogger(ctrl.Flags, stderr); err != nil {
				return ctx, err
			}

			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return ctrl.Greet(ctx, c.Args().Slice())
		},
		Commands: []*cli.Command{
			{
				Name:  "methods",
				Usage: "Describe the methods that sample calls can replay",
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Methods(ctx)
				},
			},
			{
				Name:      "verify",
				Usage:     "Replay a recorded sample call and compare the response",
				ArgsUsage: "<sample-call.yaml>",
				Action: func(ctx context.Context, c *cli.Command) error {
					if c.Args().Len() < 1 {
						return errors.New("missing sample call file argument")
					}
					return ctrl.Verify(ctx, c.Args().First())
				},
			},
		},
	}
}

func setupLogger(flags *commands.Flags, stderr io.Writer) error {
	level, err := zerolog.ParseLevel(flags.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	switch flags.LogFormat {
	case config.FormatJSON:
		log.Logger = zerolog.New(stderr).With().Timestamp().Logger().Level(level)
	case config.FormatConsole, "":
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: stderr}).Level(level)
	default:
		return fmt.Errorf("unsupported log format: %s", flags.LogFormat)
	}

	return nil
}
