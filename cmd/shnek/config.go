package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagConfigOut string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a run would use, after the config file search
and the difficulty preset, as YAML. Use it as a starting point for a custom file.

Search order:
  --config path
  ~/.shnek/configs/shnek.yaml
  ./configs/shnek.yaml
  built-in defaults

Examples:
  shnek config
  shnek config --difficulty hard
  shnek config --out ~/.shnek/configs/shnek.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigOut, "out", "", "Write the YAML to this file instead of stdout")
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagConfigOut != "" {
		if err := cfg.WriteYAML(flagConfigOut); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", flagConfigOut)
		return
	}

	data, err := cfg.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
