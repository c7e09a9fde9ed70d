package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/packbench/packbench/internal/report"
	"github.com/packbench/packbench/internal/result"
)

var (
	flagFormat string
	flagAll    bool
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [file]",
		Short: "Render a stored benchmark report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			path := cfg.Output
			if len(args) > 0 {
				path = args[0]
			}
			rep, err := result.ReadReport(path)
			if err != nil {
				return err
			}
			if flagAll {
				return report.WriteTrials(rep, os.Stdout)
			}
			return report.Generate(rep, flagFormat, os.Stdout)
		},
	}
	cmd.Flags().StringVar(&flagFormat, "format", "table", "output format (table, markdown, json)")
	cmd.Flags().BoolVar(&flagAll, "all", false, "list every trial instead of the per-method summary")
	return cmd
}
