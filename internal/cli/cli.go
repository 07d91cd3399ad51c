/*********************************************************************
 * Copyright (c) Intel Corporation 2021
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/combahton/cbcli/internal/api"
	"github.com/combahton/cbcli/internal/commands"
	"github.com/combahton/cbcli/internal/commands/antiddos"
	"github.com/combahton/cbcli/internal/commands/cloud"
	"github.com/combahton/cbcli/internal/commands/customer"
	"github.com/combahton/cbcli/internal/config"
	"github.com/combahton/cbcli/internal/presenter"
	"github.com/combahton/cbcli/pkg/utils"
	log "github.com/sirupsen/logrus"
)

// Global flags that apply to all commands
type Globals struct {
	Config   string        `help:"Path to the configuration file" name:"config" type:"path" default:"${config_path}"`
	Endpoint string        `help:"API endpoint" default:"${endpoint}"`
	Timeout  time.Duration `help:"Request timeout" default:"${timeout}"`

	LogLevel      string `help:"Set log level (trace, debug, info, warning, error, critical)" name:"log-level" default:"info"`
	JsonOutput    bool   `help:"Output logs in JSON format" name:"json" short:"j"`
	Verbose       bool   `help:"Enable verbose logging, shows the data sent to the API" name:"verbose" short:"v"`
	SkipCertCheck bool   `help:"Skip certificate verification (insecure)" name:"skip-cert-check" short:"n"`
}

// CLI represents the complete command line interface
type CLI struct {
	Globals

	Login    commands.LoginCmd    `cmd:"" help:"Store the account email and API key"`
	Settings commands.ConfigCmd   `cmd:"" name:"config" help:"Inspect and edit the local configuration"`
	AntiDDoS antiddos.AntiDDoSCmd `cmd:"" name:"antiddos" help:"antiddos management module"`
	Cloud    cloud.CloudCmd       `cmd:"" help:"cloud server management module"`
	Customer customer.CustomerCmd `cmd:"" help:"customer management module"`
	Version  commands.VersionCmd  `cmd:"" help:"Display the current version of cbcli"`
}

// AfterApply sets up logging after flags are parsed
func (g *Globals) AfterApply(ctx *kong.Context) error {
	ConfigureLogging(g.Verbose, g.LogLevel, g.JsonOutput)

	return nil
}

// ConfigureLogging sets the global logrus level and formatter.
// Diagnostics go to stderr so command output stays machine readable.
func ConfigureLogging(verbose bool, level string, jsonOutput bool) {
	log.SetOutput(os.Stderr)

	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		lvl, err := ParseLevel(level)
		if err != nil {
			log.Warn(err)
			log.SetLevel(log.InfoLevel)
		} else {
			log.SetLevel(lvl)
		}
	}

	if jsonOutput {
		log.SetFormatter(&log.JSONFormatter{
			DisableHTMLEscape: true,
		})
	} else {
		log.SetFormatter(&log.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	}
}

// ParseLevel accepts logrus level names plus the aliases found in older
// configuration files: CRITICAL, and true/false for core.verbose.
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "false":
		return log.InfoLevel, nil
	case "true", "verbose":
		return log.DebugLevel, nil
	case "critical":
		return log.FatalLevel, nil
	default:
		return log.ParseLevel(level)
	}
}

// Parse creates a new Kong parser and parses the command line. args[0] is
// the program name. An incomplete command prints its help and returns
// HelpRequested.
func Parse(args []string, settings config.Settings) (*kong.Context, *CLI, *config.Store, error) {
	var cli CLI

	// Preliminary scan for --config, the file feeds the resolver
	configFile := settings.ConfigPath

	for i, arg := range args {
		if arg == "--config" && i+1 < len(args) {
			configFile = args[i+1]

			break
		} else if strings.HasPrefix(arg, "--config=") {
			configFile = strings.TrimPrefix(arg, "--config=")

			break
		}
	}

	store, err := config.Open(configFile)
	if err != nil {
		return nil, nil, nil, err
	}

	helpOpts := kong.HelpOptions{Compact: true}

	parser, err := kong.New(&cli,
		kong.Name(utils.ProjectName),
		kong.Description(strings.TrimSpace(utils.HelpHeader)),
		kong.UsageOnError(),
		kong.ConfigureHelp(helpOpts),
		kong.Resolvers(ConfigResolver(store)),
		kong.Vars{
			"config_path": configFile,
			"endpoint":    settings.Endpoint,
			"timeout":     settings.Timeout.String(),
		},
	)
	if err != nil {
		return nil, nil, nil, err
	}

	// Slice off program name if present
	var parseArgs []string
	if len(args) > 1 {
		parseArgs = args[1:]
	} else {
		parseArgs = []string{}
	}

	ctx, perr := parser.Parse(parseArgs)
	if perr == nil {
		log.Debugf("Using configuration file: %s", store.Path())

		return ctx, &cli, store, nil
	}

	// Root invocation (no args) or errors unrelated to missing subcommand -> return error unchanged
	if len(parseArgs) == 0 || strings.Contains(perr.Error(), "unexpected argument") || strings.Contains(perr.Error(), "unknown flag") {
		return nil, nil, nil, perr
	}

	// Only intercept classic missing subcommand scenario
	if strings.Contains(perr.Error(), "expected one of") {
		if err := PrintHelp(parser, helpOpts, parseArgs); err != nil {
			log.Debug(err)
		}

		return nil, &cli, store, utils.HelpRequested
	}

	return nil, nil, nil, perr
}

// PrintHelp prints contextual help without invoking the help flag exit path.
func PrintHelp(parser *kong.Kong, opts kong.HelpOptions, args []string) error {
	ctx, err := kong.Trace(parser, args)
	if err != nil {
		return err
	}

	return kong.DefaultHelpPrinter(opts, ctx)
}

// Execute runs the command line against the live API.
func Execute(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return ExecuteWith(ctx, args, nil, os.Stdout)
}

// ExecuteWith runs the command line with a provided transport and output
// writer (useful for testing). A nil transport posts to the configured endpoint.
func ExecuteWith(ctx context.Context, args []string, transport api.Transport, out io.Writer) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	kctx, cli, store, err := Parse(args, settings)
	if err != nil {
		return err
	}

	if transport == nil {
		transport = api.NewHTTPTransport(cli.Endpoint, cli.Timeout, cli.SkipCertCheck)
	}

	appCtx := &commands.Context{
		Ctx:        ctx,
		Store:      store,
		Client:     api.NewClient(api.NewBuilder(store), transport),
		Presenter:  presenter.New(out),
		Out:        out,
		JsonOutput: cli.JsonOutput,
		Keyring:    settings.Keyring,
	}

	if err := kctx.Run(appCtx); err != nil {
		return err
	}

	log.Tracef("%s finished", kctx.Command())

	return nil
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return int(utils.Success)
	}

	var customErr utils.CustomError
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return utils.GenericFailure.Code
}
