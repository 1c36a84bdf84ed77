package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/pnmedit/internal/config"
	"github.com/ironsheep/pnmedit/internal/editor"
	"github.com/ironsheep/pnmedit/internal/logging"
	"github.com/ironsheep/pnmedit/internal/server"
)

// BuildInfo carries the ldflags-stamped version details.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

func NewRoot(ctx context.Context, info BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pnmedit",
		Short: "interactive editor for PGM/PPM images",
		Long: "pnmedit reads one command per line from stdin (or --script) and prints\n" +
			"the result of each to stdout.\n\nCommands:\n" + server.Usage() +
			"\nEnvironment variables:\n" +
			"  PNMEDIT_LOG_LEVEL    override log.level\n" +
			"  PNMEDIT_LOG_FILE     override log.file\n" +
			"  PNMEDIT_LOG_FORMAT   override log.format\n",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			level, err := logging.ParseLevel(cfg.Log.Level)
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			logOut := logging.Output(cmd.ErrOrStderr(), cfg.FileOptions())
			defer logOut.Close()

			logger := logging.Logger(logOut, cfg.Log.Format == "json", level)
			slog.SetDefault(logger)

			var in io.Reader = cmd.InOrStdin()
			if script, _ := cmd.Flags().GetString("script"); script != "" {
				f, err := os.Open(script)
				if err != nil {
					return fmt.Errorf("failed to open script: %w", err)
				}
				defer f.Close()
				in = f
			}

			session := editor.New(editor.WithLogger(logger))
			srv := server.New(session,
				server.WithLogger(logger),
				server.WithPrompt(cfg.Editor.Prompt),
				server.WithDefaultVariant(cfg.SaveVariant()),
			)

			logger.InfoContext(ctx, "editor started", "session", session.ID())
			if err := srv.Run(ctx, in, cmd.OutOrStdout()); err != nil {
				logger.ErrorContext(ctx, "editor stopped", "error", err)
				return err
			}
			logger.DebugContext(ctx, "editor finished", "session", session.ID())
			return nil
		},
	}
	cmd.AddCommand(
		NewVersionCmd(info),
	)
	pf := cmd.PersistentFlags()
	pf.String("config", "", "path to a TOML config file")
	pf.String("log-level", "", "Log level (DEBUG, INFO, WARN, ERROR); overrides config")
	cmd.Flags().String("script", "", "read commands from this file instead of stdin")
	return cmd
}

// loadConfig reads --config, then applies --log-level over file and environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if logLevel, _ := cmd.Flags().GetString("log-level"); logLevel != "" {
		cfg.Log.Level = logLevel
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid --log-level: %w", err)
		}
	}
	return cfg, nil
}

func NewVersionCmd(info BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "pnmedit %s\n", info.Version)
			fmt.Fprintf(out, "  Build time: %s\n", info.BuildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", info.GitCommit)
		},
	}
	return cmd
}
