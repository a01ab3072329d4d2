package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/denismitr/vpic"
	"github.com/denismitr/vpic/options"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const usage = "Usage: vpic [FILTER]"

var ErrUsage = errors.New("too many arguments")

// parseArgs reads the optional filter needle. More than one argument is ErrUsage.
func parseArgs(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", nil
	case 1:
		return args[0], nil
	default:
		return "", errors.Wrapf(ErrUsage, "got %d", len(args))
	}
}

func isCompletionRequest(args []string) bool {
	return len(args) > 0 && (args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd)
}

func newRootCmd(f vpic.Fetcher, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:                "vpic [FILTER]",
		Short:              "List vehicle manufacturers registered with NHTSA vPIC",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Args: func(cmd *cobra.Command, args []string) error {
			_, err := parseArgs(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			needle, err := parseArgs(args)
			if err != nil {
				return err
			}

			ms, err := vpic.Lookup(cmd.Context(), f, options.Filter().Contains(needle))
			if err != nil {
				return err
			}

			return vpic.Print(stdout, ms)
		},
	}

	cmd.SetOut(stdout)
	cmd.CompletionOptions.DisableDefaultCmd = true

	return cmd
}

// executeRoot runs the root command without cobra's subcommand routing.
func executeRoot(ctx context.Context, cmd *cobra.Command, args []string) error {
	cmd.SetContext(ctx)
	if err := cmd.ValidateArgs(args); err != nil {
		return err
	}

	return cmd.RunE(cmd, args)
}

func run(ctx context.Context, args []string, stdout io.Writer, f vpic.Fetcher) error {
	if args == nil {
		args = []string{}
	}

	if _, err := parseArgs(args); err != nil {
		fmt.Fprintln(stdout, usage)
		return err
	}

	cmd := newRootCmd(f, stdout)

	// cobra always routes these names to its hidden completion command
	if isCompletionRequest(args) {
		return executeRoot(ctx, cmd, args)
	}

	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	client := vpic.NewClient(vpic.Config{Logger: logger})

	if err := run(ctx, os.Args[1:], os.Stdout, client); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
