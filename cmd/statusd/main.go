// Package main is the entry point for the statusd CLI.
//
// statusd hosts one status register store, drives it from Modbus sources
// and publishes the fault, warning and info blocks to a status endpoint.
//
// Usage:
//
//	statusd serve -c statusd.yaml     # Run pollers and publisher
//	statusd validate -c statusd.yaml  # Validate configuration
//	statusd ids [-c statusd.yaml]     # Print the status ID table
//	statusd version                   # Show version info
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tamzrod/statusreg/internal/config"
)

// Version information, set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const envPrefix = "STATUSD"

var rootCmd = &cobra.Command{
	Use:   "statusd",
	Short: "Status register daemon",
	Long: `statusd keeps fault, warning and info status banks of 16-bit words.

Sources are polled over Modbus TCP and their bits are bound to named
conditions. The banks are published as holding registers, one block per
class: bank words first, then the last-set ID.

Flags may also be given as environment variables:
  STATUSD_CONFIG     same as --config
  STATUSD_LOG_LEVEL  same as --log-level`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("statusd %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "path to config file")
	rootCmd.PersistentFlags().String("log-level", "", "override log.level (debug, info, warn, error)")

	cobra.CheckErr(viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config")))
	cobra.CheckErr(viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")))

	rootCmd.AddCommand(versionCmd)
}

// initConfig binds environment variables: log-level reads STATUSD_LOG_LEVEL.
func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// loadConfig reads, validates and normalizes the configured file.
func loadConfig() (*config.Config, error) {
	path := viper.GetString("config")
	if path == "" {
		return nil, fmt.Errorf("no config file: use --config or %s_CONFIG", envPrefix)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if lvl := viper.GetString("log-level"); lvl != "" {
		cfg.Log.Level = strings.ToLower(lvl)
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	config.Normalize(cfg)
	return cfg, nil
}
