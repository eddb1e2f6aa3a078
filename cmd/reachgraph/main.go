// Command reachgraph runs the inter-procedural reachability analyzer over
// a configured project and reports which source predicate reaches which
// target predicate (spec.md §6).
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/viant/reachgraph/internal/config"
	"github.com/viant/reachgraph/internal/engine"
	"github.com/viant/reachgraph/internal/query"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run reachability analysis over a configured project",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalysis(cmd.Context(), configPath, cmd.OutOrStdout())
		},
	}
	runCmd.Flags().StringVar(&configPath, "path", "", "path to the analysis configuration file")
	_ = runCmd.MarkFlagRequired("path")

	root := &cobra.Command{
		Use:   "reachgraph",
		Short: "Inter-procedural reachability analysis over Java-like sources",
	}
	root.AddCommand(runCmd)
	return root
}

func runAnalysis(ctx context.Context, configPath string, out io.Writer) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	conf, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	e := engine.New(engine.WithLogger(logger))
	hits, err := e.Run(ctx, conf)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	if err := query.FormatAll(out, hits); err != nil {
		return err
	}
	return nil
}
