package root

import (
	"io"

	"github.com/MakeNowJust/heredoc"
	"github.com/airplanedev/greet/pkg/cli"
	"github.com/airplanedev/greet/pkg/greeter"
	"github.com/airplanedev/greet/pkg/logger"
	"github.com/airplanedev/greet/pkg/version"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// New returns a new root cobra command.
func New(cfg *cli.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "greet [flags]",
		Short: "Greet a user.",
		Long: heredoc.Doc(`
		Greet a user.

		The name is taken from --name, then from $USER ($USERNAME on Windows),
		and defaults to "World".
		`),
		Example: heredoc.Doc(`
		greet
		greet --name Alice
		USER=bob greet
		`),
		Version: version.String(),
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cfg)
		},
	}

	// Silence usage and errors.
	//
	// Allows us to control how the output looks like.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	// Set usage, help functions.
	cmd.SetUsageFunc(usage)
	cmd.SetHelpFunc(help)
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{err: err}
	})

	addFlags(cmd.Flags(), cfg)

	return cmd
}

func addFlags(flags *pflag.FlagSet, cfg *cli.Config) {
	flags.StringVarP(&cfg.Name, "name", "n", "", "The `NAME` to greet.")
	flags.BoolVar(&cfg.DebugMode, "debug", false, "Print debug output to stderr.")
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return &UsageError{err: err}
	}
	return nil
}

func run(w io.Writer, cfg *cli.Config) error {
	logger.EnableDebug = cfg.DebugMode

	user, err := greeter.User(cfg.Environ)
	if err != nil {
		return err
	}

	name, source := greeter.ResolveSource(cfg.Name, user)
	logger.Debug("Resolved name %q from %s.", name, source)

	return errors.Wrap(greeter.Greet(w, name), "write greeting")
}
