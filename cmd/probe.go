package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/packbench/packbench/internal/codec"
	"github.com/packbench/packbench/internal/sysinfo"
)

func newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Print environment metadata without running any trial",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Platform: %s\n", sysinfo.Platform())
			fmt.Printf("CPU:      %s\n", sysinfo.CPUModel())

			fmt.Println("\nTools:")
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, d := range codec.Known() {
				if d.InProcess() {
					fmt.Fprintf(tw, "  %s\t%s\n", d.Name, d.Library)
					continue
				}
				fmt.Fprintf(tw, "  %s\t%s\n", d.Name, sysinfo.ToolVersion(d.Binary, d.VersionFlag))
			}
			return tw.Flush()
		},
	}
}
