package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/joshuapare/bsxkit/pkg/bsx"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <script.dat>",
		Short: "Show an opcode histogram of the code block",
		Long: `The stats command sweeps the code block and counts how often each opcode
occurs and how many bytes its instructions occupy.

Example:
  bsxctl stats bs01.dat
  bsxctl stats bs01.dat --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
	return cmd
}

func runStats(args []string) error {
	scriptPath := args[0]

	opts, err := options("")
	if err != nil {
		return err
	}
	st, err := bsx.Stats(scriptPath, opts)
	if err != nil {
		return fmt.Errorf("failed to collect stats: %w", err)
	}

	if jsonOut {
		return printJSON(st)
	}

	printInfo("\nCode block: %s, %s instructions\n",
		humanize.Bytes(uint64(st.CodeSize)), humanize.Comma(int64(st.Instructions)))
	if quiet {
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Opcode", "Mnemonic", "Count", "Bytes"})
	for _, row := range st.Opcodes {
		table.Append([]string{
			fmt.Sprintf("0x%02X", row.Opcode),
			row.Mnemonic,
			humanize.Comma(int64(row.Count)),
			humanize.Comma(int64(row.Bytes)),
		})
	}
	table.Render()

	if st.Unresolved {
		printWarning("code sweep ended at 0x%X, code block is 0x%X bytes\n", st.ScanEnd, st.CodeSize)
	}
	return nil
}
