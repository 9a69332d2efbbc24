// Command patterns lists, describes and runs the design pattern demos.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/gopatterns/catalog"
)

var (
	// Global flags
	verbose bool

	logger *zap.Logger
)

func newRootCmd(reg *catalog.Registry) *cobra.Command {
	root := &cobra.Command{
		Use:   "patterns",
		Short: "Runnable catalog of the classic design patterns",
		Long: `patterns runs small, self-contained demonstrations of the Gang of Four
creational, structural and behavioral patterns. Demo output goes to stdout,
logs go to stderr.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logger != nil {
				return nil
			}
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newListCmd(reg), newRunCmd(reg), newDescribeCmd(reg))
	return root
}

func newListCmd(reg *catalog.Registry) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cat catalog.Category
			if category != "" {
				var err error
				if cat, err = catalog.ParseCategory(category); err != nil {
					return err
				}
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, e := range reg.List(cat) {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Category, e.Summary)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only list creational, structural or behavioral patterns")
	return cmd
}

func newRunCmd(reg *catalog.Registry) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "run [pattern...]",
		Short: "Run one or more pattern demos",
		Example: `  patterns run builder proxy
  patterns run --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if all {
				if len(args) > 0 {
					return fmt.Errorf("--all takes no pattern names")
				}
				return reg.RunAll(out, logger)
			}
			if len(args) == 0 {
				return fmt.Errorf("name at least one pattern or pass --all")
			}
			for i, name := range args {
				if i > 0 {
					fmt.Fprintln(out)
				}
				logger.Debug("running demo", zap.String("pattern", name))
				if err := reg.Run(out, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "run every demo")
	return cmd
}

func newDescribeCmd(reg *catalog.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "describe [pattern]",
		Short: "Show the category and summary of a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := reg.Lookup(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n%s\n", e.Name, e.Category, e.Summary)
			return nil
		},
	}
}

func main() {
	if err := newRootCmd(catalog.Default()).Execute(); err != nil {
		os.Exit(1)
	}
}
