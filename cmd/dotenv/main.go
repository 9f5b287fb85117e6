package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/dotenv/internal/application"
	"github.com/eugenenazirov/dotenv/internal/config"
	"github.com/eugenenazirov/dotenv/internal/logging"
)

var notifyContext = signal.NotifyContext

type cli struct {
	app *kingpin.Application

	configFile    *string
	envFile       *string
	failOnMissing *bool
	failOnInvalid *bool
	logLevel      *string

	failOnMissingSet bool
	failOnInvalidSet bool

	show       *kingpin.CmdClause
	showFormat *string

	exec     *kingpin.CmdClause
	execName *string
	execArgs *[]string
}

func newCLI() *cli {
	app := kingpin.New("dotenv", "Load settings from a JSON .env file into the environment")
	c := &cli{
		app:           app,
		configFile:    app.Flag("config", "Path to YAML configuration file").String(),
		envFile:       app.Flag("file", "Settings file to read (default .env)").Short('f').String(),
		logLevel:      app.Flag("log-level", "Log level (debug, info, warn, error)").String(),
	}
	c.failOnMissing = app.Flag("fail-on-missing", "Fail when the settings file does not exist").
		IsSetByUser(&c.failOnMissingSet).Bool()
	c.failOnInvalid = app.Flag("fail-on-invalid", "Fail when the settings file is not a flat JSON object").
		IsSetByUser(&c.failOnInvalidSet).Bool()

	c.show = app.Command("show", "Print the settings read from the file")
	c.showFormat = c.show.Flag("format", "Output format").Default(application.FormatEnv).Enum(application.Formats()...)

	c.exec = app.Command("exec", "Run a command with the settings applied to its environment")
	c.execName = c.exec.Arg("command", "Command to run").Required().String()
	c.execArgs = c.exec.Arg("args", "Command arguments").Strings()

	return c
}

// overrides only includes flags present on the command line so that
// environment and YAML values are kept otherwise.
func (c *cli) overrides() *config.CLIOverrides {
	o := &config.CLIOverrides{ConfigFile: *c.configFile}
	if *c.envFile != "" {
		o.EnvFile = c.envFile
	}
	if *c.logLevel != "" {
		o.LogLevel = c.logLevel
	}
	if c.failOnMissingSet {
		o.FailOnMissingFile = c.failOnMissing
	}
	if c.failOnInvalidSet {
		o.FailOnInvalidFile = c.failOnInvalid
	}
	return o
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := newCLI()
	c.app.Writer(stderr)
	c.app.ErrorWriter(stderr)

	command, err := c.app.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "dotenv: %v\n", err)
		return 2
	}

	cfg, err := config.Load(c.overrides())
	if err != nil {
		fmt.Fprintf(stderr, "dotenv: failed to load configuration: %v\n", err)
		return 2
	}

	logger, err := logging.New(cfg.LogLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "dotenv: failed to initialize logger: %v\n", err)
		return 2
	}
	defer func() {
		_ = logger.Sync()
	}()

	app := application.New(cfg, logger)

	switch command {
	case c.show.FullCommand():
		settings, err := app.Settings()
		if err != nil {
			logger.Error("failed to read settings", zap.String("file", cfg.EnvFile), zap.Error(err))
			return 1
		}
		if err := application.Render(stdout, settings, *c.showFormat); err != nil {
			logger.Error("failed to render settings", zap.Error(err))
			return 1
		}
		return 0

	case c.exec.FullCommand():
		ctx, stop := notifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		code, err := app.Exec(ctx, *c.execName, *c.execArgs, stdin, stdout, stderr)
		if err != nil {
			logger.Error("exec failed", zap.String("command", *c.execName), zap.Error(err))
			return 1
		}
		return code
	}

	return 2
}
