package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/packbench/packbench/internal/codec"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known codecs and their availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODEC\tSTRATEGY\tLEVELS\tSTATUS")
			for _, d := range codec.Known() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					d.Name, strategyLabel(d), levelLabel(d), statusLabel(d))
			}
			return tw.Flush()
		},
	}
}

func strategyLabel(d *codec.Descriptor) string {
	if d.InProcess() {
		return "in-process"
	}
	return "pipe (" + d.Binary + ")"
}

func levelLabel(d *codec.Descriptor) string {
	if len(d.Ranges) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(d.Ranges))
	for _, r := range d.Ranges {
		part := fmt.Sprintf("%d-%d", r.Min, r.Max)
		if len(r.Flags) > 0 {
			part += " [" + strings.Join(r.Flags, " ") + "]"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ", ")
}

func statusLabel(d *codec.Descriptor) string {
	if d.InProcess() {
		return "built-in"
	}
	if _, err := exec.LookPath(d.Binary); err != nil {
		return "missing"
	}
	return "available"
}
