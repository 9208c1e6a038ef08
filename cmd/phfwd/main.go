package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	phfwd "github.com/camelinx/phone_forward"
)

var version = "dev"

var (
	configPath string
	cfg        *Config

	rootCmd = &cobra.Command{
		Use:   "phfwd",
		Short: "Phone number forwarding and reverse lookups",
		Long: `phfwd rewrites phone numbers by their longest forwarded prefix
and answers which numbers are forwarded to a given one.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			cfg = loaded

			logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log.Level)
			if err != nil {
				return err
			}
			cmd.SetContext(logger.WithContext(cmd.Context()))

			return nil
		},
	}

	runCmd = &cobra.Command{
		Use:   "run [script]",
		Short: "Executes an operation script, read from stdin when no file is given",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScript,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Prints the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (yaml)")
	rootCmd.AddCommand(runCmd, versionCmd)
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().
		Timestamp().
		Logger(), nil
}

// newPhoneForward builds the phone forward described by the configuration
func newPhoneForward(ctx context.Context, cfg *Config) (*phfwd.PhoneForward, error) {
	pf := phfwd.New(cfg.Limits.Options()...)

	for _, fw := range cfg.Forwardings {
		if _, err := pf.Add(ctx, fw.From, fw.To); err != nil {
			return nil, fmt.Errorf("forwarding %s -> %s: %w", fw.From, fw.To, err)
		}
	}

	zerolog.Ctx(ctx).Info().
		Int("forwardings", len(cfg.Forwardings)).
		Uint64("nodes", pf.GetNodesCount()).
		Msg("phone forward ready")

	return pf, nil
}

func runScript(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	pf, err := newPhoneForward(ctx, cfg)
	if err != nil {
		return err
	}
	defer pf.Clear(ctx)

	in := cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	return newRunner(pf, cmd.OutOrStdout()).run(ctx, in)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
