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
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <script.dat>",
		Short: "Validate a script header and report its layout",
		Long: `The info command loads a BSXScript container, validates its header and
string tables, sweeps the code block, and prints the layout.

Example:
  bsxctl info bs01.dat
  bsxctl info bs01.dat --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	scriptPath := args[0]

	printVerbose("Opening script: %s\n", scriptPath)

	opts, err := options("")
	if err != nil {
		return err
	}
	info, err := bsx.Info(scriptPath, opts)
	if err != nil {
		return fmt.Errorf("failed to get script info: %w", err)
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("\nScript Information:\n")
	printInfo("  File: %s\n", info.Path)
	printInfo("  Size: %s (%d bytes)\n", humanize.Bytes(uint64(info.Size)), info.Size)
	printInfo("  Signature: %s\n", info.Signature)
	printInfo("  Code: 0x%X, %s\n", info.CodeOffset, humanize.Bytes(uint64(info.CodeSize)))
	printInfo("  Strings referenced: %s\n", humanize.Comma(int64(info.Export.Records)))

	if quiet {
		return nil
	}

	printInfo("\nSections:\n")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "List", "Raw count", "Count", "Block"})
	for _, s := range info.Sections {
		table.Append([]string{
			fmt.Sprint(s.Index),
			fmt.Sprintf("0x%X", s.ListOffset),
			fmt.Sprintf("0x%08X", s.RawCount),
			fmt.Sprint(s.Count),
			fmt.Sprintf("0x%X", s.BlockOffset),
		})
	}
	table.Render()

	printInfo("\nString tables:\n")
	table = tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Table", "Entries", "Empty", "List", "Block"})
	for _, t := range info.Tables {
		table.Append([]string{
			t.Kind,
			humanize.Comma(int64(t.Entries)),
			humanize.Comma(int64(t.Empty)),
			fmt.Sprintf("0x%X", t.ListOffset),
			fmt.Sprintf("0x%X", t.BlockOffset),
		})
	}
	table.Render()

	printInfo("\nValidation:\n")
	printSuccess("  ✓ Header valid\n")
	printSuccess("  ✓ String tables in bounds\n")
	if info.Export.Unresolved {
		printWarning("code sweep ended at 0x%X, code block is 0x%X bytes\n", info.Export.ScanEnd, info.Export.CodeSize)
	} else {
		printSuccess("  ✓ Code sweep ends at block boundary\n")
	}
	return nil
}
