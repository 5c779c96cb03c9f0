// truqu-mcp: read-only MCP server over a personal goals dataset.
//
// It loads one user's goals, feedback and reflections from a JSON file and
// exposes them to AI tools as MCP query tools over stdio.
//
// Usage:
//
//	truqu-mcp <data-file>              # Start MCP server (stdio transport)
//	TRUQU_DATA_PATH=<file> truqu-mcp   # Same, path from the environment
//	truqu-mcp version                  # Print the version
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"github.com/truqu/truqu-mcp/internal/config"
	"github.com/truqu/truqu-mcp/internal/dataset"
	"github.com/truqu/truqu-mcp/internal/logging"
	truquserver "github.com/truqu/truqu-mcp/internal/server"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:   "truqu-mcp [data-file]",
		Short: "Read-only MCP server over a personal goals dataset",
		Long: fmt.Sprintf(`truqu-mcp v%s — goals, feedback and reflections over MCP

The dataset path is the first argument, or %s when no argument
is given. A .env file in the working directory is read first.

Configuration:
  Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "truqu": {
        "command": "truqu-mcp",
        "args": ["/path/to/data.json"]
      }
    }
  }
`, truquserver.Version, config.EnvDataPath),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args, debug, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	root.Flags().BoolVar(&debug, "debug", false, "log at debug level (also "+config.EnvDebug+"=true)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "truqu-mcp v%s\n", truquserver.Version)
		},
	})

	return root
}

// run loads the dataset and serves MCP on in/out until EOF or a signal.
// Any load failure returns before the server exists.
func run(ctx context.Context, args []string, debug bool, in io.Reader, out io.Writer) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Debug || debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	data, err := dataset.Load(cfg.DataPath)
	if err != nil {
		logger.Error("failed to load dataset", zap.String("path", cfg.DataPath), zap.Error(err))
		return fmt.Errorf("loading dataset: %w", err)
	}
	logger.Info("dataset loaded",
		zap.String("path", cfg.DataPath),
		zap.String("user", data.UserID()),
		zap.Int("goals", len(data.Goals)),
		zap.Int("reviews", len(data.Reviews)),
		zap.Int("reflections", len(data.Reflections)),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	stdio := server.NewStdioServer(truquserver.New(data, logger))
	stdio.SetErrorLogger(zap.NewStdLog(logger))

	logger.Info("serving on stdio", zap.String("version", truquserver.Version))
	if err := stdio.Listen(ctx, in, out); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("serving: %w", err)
	}
	logger.Info("shutting down")
	return nil
}
