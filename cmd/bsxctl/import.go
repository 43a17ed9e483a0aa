package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/joshuapare/bsxkit/pkg/bsx"
)

var (
	importText string
	importOut  string
)

func init() {
	cmd := newImportCmd()
	cmd.Flags().StringVarP(&importText, "text", "t", "", "Translation text file (default <script>.txt)")
	cmd.Flags().StringVarP(&importOut, "out", "o", "", "Rebuilt script (default <script>.new.dat)")
	rootCmd.AddCommand(cmd)
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <script.dat>",
		Short: "Rebuild a script from an edited text file",
		Long: `The import command reads the ◆ lines of a text file produced by export
and writes a new script with those strings replaced. Strings without a ◆ line
keep their original text. The input script is never modified.

Example:
  bsxctl import bs01.dat
  bsxctl import bs01.dat --text bs01.fr.txt --out patched/bs01.dat`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(args)
		},
	}
	return cmd
}

func runImport(args []string) error {
	scriptPath := args[0]
	textPath := importText
	if textPath == "" {
		textPath = bsx.TextPath(scriptPath, cfg.TextSuffix)
	}
	outPath := importOut
	if outPath == "" {
		outPath = bsx.RebuiltPath(scriptPath, cfg.RebuiltExt)
	}

	opts, err := options("")
	if err != nil {
		return err
	}

	printVerbose("Importing %s into %s\n", textPath, scriptPath)

	res, err := bsx.Import(scriptPath, textPath, outPath, opts)
	if err != nil {
		return fmt.Errorf("failed to import: %w", err)
	}

	if jsonOut {
		return printJSON(struct {
			Script string `json:"script"`
			Text   string `json:"text"`
			Output string `json:"output"`
			*bsx.ImportResult
		}{scriptPath, textPath, outPath, res})
	}
	printSuccess("✓ Wrote %s\n", outPath)
	printInfo("  Names: %d, messages: %d\n", res.NameOverrides, res.MessageOverrides)
	printVerbose("  Size: %s -> %s\n",
		humanize.Bytes(uint64(res.InputSize)), humanize.Bytes(uint64(res.OutputSize)))
	return nil
}
