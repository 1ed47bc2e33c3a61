package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tamzrod/statusreg/internal/status"
	"github.com/tamzrod/statusreg/internal/statusids"
)

var (
	headerColor = color.New(color.Bold)
	idColor     = color.New(color.FgYellow)

	classColors = map[status.Class]*color.Color{
		status.Fault:   color.New(color.FgRed, color.Bold),
		status.Warning: color.New(color.FgHiYellow),
		status.Info:    color.New(color.FgCyan),
	}
)

var idsCmd = &cobra.Command{
	Use:   "ids",
	Short: "Print the status ID table",
	Long: `Print every named status ID with its class, bank, bit and encoded value.

With --config the conditions of that file are listed, otherwise the
built-in example table.

Example:
  statusd ids
  statusd ids -c statusd.yaml`,
	RunE: runIDs,
}

func init() {
	rootCmd.AddCommand(idsCmd)
}

func runIDs(cmd *cobra.Command, args []string) error {
	entries := statusids.Table()

	if viper.GetString("config") != "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		index, err := cfg.ConditionIndex()
		if err != nil {
			return err
		}

		entries = entries[:0:0]
		for _, c := range index {
			entries = append(entries, statusids.Entry{Name: c.Name, Class: c.Class, ID: c.ID})
		}
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Class != entries[j].Class {
				return entries[i].Class < entries[j].Class
			}
			return entries[i].ID < entries[j].ID
		})
	}

	printIDs(cmd.OutOrStdout(), entries)
	return nil
}

func printIDs(w io.Writer, entries []statusids.Entry) {
	headerColor.Fprintf(w, "%-8s %-4s %-3s %-6s %s\n", "CLASS", "BANK", "BIT", "ID", "NAME")

	for _, e := range entries {
		c, ok := classColors[e.Class]
		if !ok {
			c = color.New(color.Reset)
		}
		fmt.Fprintf(w, "%s %-4d %-3d %s %s\n",
			c.Sprintf("%-8s", e.Class),
			e.ID.Bank(),
			e.ID.Bit(),
			idColor.Sprintf("0x%04X", uint16(e.ID)),
			e.Name,
		)
	}
}
