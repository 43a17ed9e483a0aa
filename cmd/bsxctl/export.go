package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bsxkit/pkg/bsx"
)

var (
	exportOut        string
	exportLineEnding string
	exportStdout     bool
)

func init() {
	cmd := newExportCmd()
	cmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output text file (default <script>.txt)")
	cmd.Flags().StringVar(&exportLineEnding, "line-ending", "", "Line ending: lf or crlf (default from config, else lf)")
	cmd.Flags().BoolVar(&exportStdout, "stdout", false, "Write to stdout instead of a file")
	rootCmd.AddCommand(cmd)
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <script.dat>",
		Short: "Export character names and messages to a text file",
		Long: `The export command sweeps the script's code block and writes every
character name and message it displays, in order, to a text file.

Edit the lines starting with ◆ and run import to rebuild the script.

Example:
  bsxctl export bs01.dat
  bsxctl export bs01.dat -o bs01.txt --line-ending crlf
  bsxctl export bs01.dat --stdout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args)
		},
	}
	return cmd
}

func runExport(args []string) error {
	scriptPath := args[0]

	if exportStdout && exportOut != "" {
		return fmt.Errorf("cannot specify both --out and --stdout")
	}

	opts, err := options(exportLineEnding)
	if err != nil {
		return err
	}

	printVerbose("Exporting script: %s\n", scriptPath)

	if exportStdout {
		text, res, err := bsx.ExportString(scriptPath, opts)
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}
		reportUnresolved(res)
		fmt.Print(text)
		return nil
	}

	textPath := exportOut
	if textPath == "" {
		textPath = bsx.TextPath(scriptPath, cfg.TextSuffix)
	}
	res, err := bsx.Export(scriptPath, textPath, opts)
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}
	reportUnresolved(res)

	if jsonOut {
		return printJSON(struct {
			Script string `json:"script"`
			Text   string `json:"text"`
			*bsx.ExportResult
		}{scriptPath, textPath, res})
	}
	printSuccess("✓ Exported %d strings to %s\n", res.Records, textPath)
	printVerbose("  Instructions: %d (%d display-message)\n", res.Instructions, res.Messages)
	return nil
}

func reportUnresolved(res *bsx.ExportResult) {
	if res.Unresolved {
		printWarning("code sweep ended at 0x%X, code block is 0x%X bytes\n", res.ScanEnd, res.CodeSize)
	}
}
