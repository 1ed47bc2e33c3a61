package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a config file",
	Long: `Validate a statusd configuration file without connecting anywhere.

Exit codes:
  0 - Config is valid
  1 - Config is invalid (error details printed to stderr)

Example:
  statusd validate -c statusd.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	bindings := 0
	for _, s := range cfg.Sources {
		for _, r := range s.Reads {
			bindings += len(r.Bind)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config is valid!\n")
	fmt.Fprintf(out, "  Banks:      %d per class\n", cfg.Status.Banks)
	fmt.Fprintf(out, "  Conditions: %d\n", len(cfg.Conditions))
	fmt.Fprintf(out, "  Sources:    %d (%d bindings)\n", len(cfg.Sources), bindings)
	if p := cfg.Publish; p != nil {
		fmt.Fprintf(out, "  Publish:    %s via %s at %d\n", p.Endpoint, p.Transport, p.BaseAddress)
	} else {
		fmt.Fprintf(out, "  Publish:    disabled\n")
	}
	return nil
}
