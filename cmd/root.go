package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/packbench/packbench/internal/config"
)

const defaultConfigFile = "packbench.yaml"

var cfgFile string

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "packbench",
		Short: "Benchmark harness for general-purpose compression codecs",
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", defaultConfigFile, "config file path")
	root.AddCommand(newRunCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newReportCmd())
	root.AddCommand(newProbeCmd())
	return root
}

// loadConfig reads the config file, falling back to built-in defaults when
// the default file is simply absent. Flags can still override everything the
// defaults supply.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && cfgFile == defaultConfigFile {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}
