// Package cmd provides the CLI commands for logargs.
package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/logargs/internal/config"
	apperrors "github.com/Aman-CERP/logargs/internal/errors"
	"github.com/Aman-CERP/logargs/internal/logging"
	"github.com/Aman-CERP/logargs/pkg/version"
)

// programDir locates the directory relative log paths and .logargs.yaml are
// resolved against. Tests replace it.
var programDir = logging.ProgramDir

// NewRootCmd creates the root command for logargs CLI.
func NewRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "logargs",
		Short: "Configure console and file logging from command-line flags",
		Long: `logargs sets up logging from its flags and then logs one message at
each level: DEBUG, INFO, WARNING, ERROR and CRITICAL.

With no flags it prints INFO and above to stdout and appends DEBUG and above
to out.log in the program directory.`,
		Version:       version.Short(),
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoot(cmd, &flags)
		},
	}

	cmd.SetVersionTemplate("logargs version {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperrors.InvalidArgument(err.Error()).
			WithSuggestion("run 'logargs --help' for usage")
	})

	flags.register(cmd.Flags())

	cmd.AddCommand(newVersionCmd())

	return cmd
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return apperrors.InvalidArgument(err.Error())
	}
	return nil
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	return execute(NewRootCmd())
}

func execute(root *cobra.Command) error {
	if err := root.Execute(); err != nil {
		fmt.Fprint(root.ErrOrStderr(), apperrors.FormatForCLI(err))
		return err
	}
	return nil
}

func runRoot(cmd *cobra.Command, flags *rootFlags) error {
	dir, err := programDir()
	if err != nil {
		return err
	}

	cfg, err := config.Load(dir, flags.configPath)
	if err != nil {
		return err
	}
	flags.applyTo(cmd.Flags(), cfg)

	resolved, err := logging.Resolve(cfg.Options(dir))
	if err != nil {
		return err
	}

	logger, cleanup, err := logging.Setup(resolved, logging.Streams{
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
		NoColor: cfg.NoColor,
	})
	if err != nil {
		return err
	}
	defer cleanup()

	runDemo(cmd.Context(), logger)
	return nil
}

// runDemo logs one message per severity.
func runDemo(ctx context.Context, logger *slog.Logger) {
	logger.DebugContext(ctx, "Debug logging test...")
	logger.InfoContext(ctx, "Program is working as expected")
	logger.WarnContext(ctx, "Warning, the program may not function properly")
	logger.ErrorContext(ctx, "The program encountered an error")
	logging.Critical(ctx, logger, "The program crashed")
}
