// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-kns/internal/client"
	"github.com/MKhiriev/go-kns/internal/config"
	"github.com/MKhiriev/go-kns/internal/logger"
	"github.com/MKhiriev/go-kns/models"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "text" | "json" | "yaml"
	Username string
	Password string

	BuildInfo models.AppBuildInfo

	// config receives the values of the configuration flags.
	config *config.StructuredConfig
	// openClient builds the application behind every gated command.
	openClient func(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (client.Client, error)
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{FormatText, FormatJSON, FormatYAML}

// NewRootCommand creates the root command for the kns CLI.
func NewRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	opts := &RootOptions{
		BuildInfo: buildInfo,
		openClient: func(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (client.Client, error) {
			return client.NewApp(ctx, cfg, buildInfo, log)
		},
	}

	cmd := &cobra.Command{
		Use:   "kns",
		Short: "KNS - identity record keeper",
		Long: `Keep a local table of identity records (name, Aadhaar, PAN, date of birth,
mobile, bank account, CIF, address, remark and an optional photo).

Records can be added, edited, deleted, searched, imported from CSV and
exported to CSV. Every command except version requires the login pair.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	// Global flags
	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&opts.Format, "format", FormatText, "output format (text|json|yaml)")
	flags.StringVarP(&opts.Username, "username", "u", "", "login username")
	flags.StringVarP(&opts.Password, "password", "p", "", "login password")
	opts.config = config.BindFlags(flags)

	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewEditCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewPasswdCommand(opts))
	cmd.AddCommand(NewWatchCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

// Execute runs the command tree with args and returns the process exit
// code. Errors that were not already reported are written to stderr.
func Execute(ctx context.Context, cmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	var reported reportedError
	if !errors.As(err, &reported) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		// cobra reports unknown commands and bad arguments as plain errors
		return ExitCommandError
	}
	return exitErr.Code
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting json/yaml
		Verbose:   o.Verbose,
	}
}

// sessionFunc is the body of a command behind the login gate.
type sessionFunc func(ctx context.Context, c client.Client, session models.Session, f *OutputFormatter) error

// withSession loads the configuration, opens the application, checks the
// login pair and only then runs fn. The application is closed afterwards.
func (o *RootOptions) withSession(cmd *cobra.Command, fn sessionFunc) error {
	f := o.formatter(cmd)

	cfg, err := config.GetClientConfig(o.config)
	if err != nil {
		return f.failWith(ErrCodeConfig, ExitCommandError, "invalid configuration", err)
	}

	level := cfg.App.LogLevel
	if o.Verbose {
		level = "debug"
	}
	log, logCloser := logger.NewClientLogger("kns-cli", cfg.App.LogDir, level)
	defer logCloser.Close()

	ctx := log.WithContext(cmd.Context())

	c, err := o.openClient(ctx, cfg, log)
	if err != nil {
		log.Err(err).Str("func", "RootOptions.withSession").Msg("failed to open application")
		return f.fail(err)
	}
	defer func() {
		if closeErr := c.Close(); closeErr != nil {
			log.Err(closeErr).Str("func", "RootOptions.withSession").Msg("failed to close application")
		}
	}()

	session, err := c.Login(ctx, o.Username, o.Password)
	if err != nil {
		log.Warn().Err(err).Str("username", o.Username).Msg("login rejected")
		return f.fail(err)
	}
	f.VerboseLog("logged in as %s", session.Username)
	if session.DefaultCredentials {
		f.VerboseLog("using the default login pair; run passwd to set your own")
	}

	return fn(ctx, c, session, f)
}
