package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/bsxkit/internal/testutil"
	"github.com/joshuapare/bsxkit/internal/writer"
	"github.com/joshuapare/bsxkit/script/textfile"
)

func TestExportCommand(t *testing.T) {
	resetFlags(t)
	path := sampleScript(t)

	output, err := captureOutput(t, func() error { return runExport([]string{path}) })
	if err != nil {
		t.Fatalf("runExport() error = %v", err)
	}
	assertContains(t, output, []string{"Exported 2 strings", path + ".txt"})

	got := string(testutil.ReadFile(t, path+".txt"))
	want := "◇A0000000◇Alice\n◆A0000000◆Alice\n\n◇B0000000◇Hello\n◆B0000000◆Hello\n\n"
	if got != want {
		t.Errorf("text file = %q, want %q", got, want)
	}
}

func TestExportStdoutCRLF(t *testing.T) {
	resetFlags(t)
	exportStdout = true
	exportLineEnding = "crlf"
	path := sampleScript(t)

	output, err := captureOutput(t, func() error { return runExport([]string{path}) })
	if err != nil {
		t.Fatalf("runExport() error = %v", err)
	}
	if !strings.HasPrefix(output, "◇A0000000◇Alice\r\n") {
		t.Errorf("unexpected output: %q", output)
	}
	if _, err := os.Stat(path + ".txt"); !os.IsNotExist(err) {
		t.Errorf("--stdout must not create a text file")
	}
}

func TestExportFlagConflicts(t *testing.T) {
	resetFlags(t)
	exportStdout = true
	exportOut = "x.txt"
	if err := runExport([]string{sampleScript(t)}); err == nil {
		t.Fatal("expected error for --out with --stdout")
	}

	resetFlags(t)
	exportLineEnding = "cr"
	if err := runExport([]string{sampleScript(t)}); !errors.Is(err, textfile.ErrBadLineEnding) {
		t.Fatalf("err = %v, want ErrBadLineEnding", err)
	}
}

func TestImportCommand(t *testing.T) {
	resetFlags(t)
	path := sampleScript(t)
	text := "◆A0000000◆Alicia\n◆B0000000◆Bonjour\n"
	if err := os.WriteFile(path+".txt", []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}

	output, err := captureOutput(t, func() error { return runImport([]string{path}) })
	if err != nil {
		t.Fatalf("runImport() error = %v", err)
	}
	outPath := filepath.Join(filepath.Dir(path), "bs01.new.dat")
	assertContains(t, output, []string{"Wrote " + outPath, "Names: 1, messages: 1"})

	resetFlags(t)
	exportStdout = true
	exported, err := captureOutput(t, func() error { return runExport([]string{outPath}) })
	if err != nil {
		t.Fatalf("runExport() error = %v", err)
	}
	assertContains(t, exported, []string{"◆A0000000◆Alicia", "◆B0000000◆Bonjour"})
}

func TestImportCommandErrors(t *testing.T) {
	resetFlags(t)
	path := sampleScript(t)

	if err := runImport([]string{path}); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing text file: err = %v", err)
	}

	importText = filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(importText, []byte("\n◆X0000000◆x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := runImport([]string{path})
	var le *textfile.LineError
	if !errors.As(err, &le) || le.Line != 2 || !errors.Is(err, textfile.ErrUnknownTextType) {
		t.Fatalf("err = %v, want unknown text type on line 2", err)
	}
}

func TestImportNoOverwrite(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "bsx.yaml")
	if err := os.WriteFile(cfgPath, []byte("overwrite: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := loadConfig(cfgPath)
	if err != nil {
		t.Fatal(err)
	}
	cfg = c

	path := sampleScript(t)
	if err := os.WriteFile(path+".txt", []byte("◆B0000000◆x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	importOut = filepath.Join(filepath.Dir(path), "existing.dat")
	if err := os.WriteFile(importOut, []byte("keep"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runImport([]string{path}); !errors.Is(err, writer.ErrExists) {
		t.Fatalf("err = %v, want ErrExists", err)
	}
}

func TestInfoCommand(t *testing.T) {
	resetFlags(t)
	path := sampleScript(t)

	output, err := captureOutput(t, func() error { return runInfo([]string{path}) })
	if err != nil {
		t.Fatalf("runInfo() error = %v", err)
	}
	assertContains(t, output, []string{"BSXScript 3.0", "Strings referenced: 2", "character name", "Header valid"})

	jsonOut = true
	output, err = captureOutput(t, func() error { return runInfo([]string{path}) })
	if err != nil {
		t.Fatalf("runInfo() error = %v", err)
	}
	var info struct {
		Signature string `json:"signature"`
		Tables    []struct {
			Entries int `json:"entries"`
		} `json:"tables"`
	}
	assertJSON(t, output, &info)
	if info.Signature != "BSXScript 3.0" || len(info.Tables) != 2 || info.Tables[0].Entries != 1 {
		t.Errorf("unexpected info: %+v", info)
	}
}

func TestInfoCommandInvalid(t *testing.T) {
	resetFlags(t)
	path := testutil.WriteScriptFile(t, "bad.dat", []byte("not a script at all"))
	if err := runInfo([]string{path}); err == nil {
		t.Fatal("expected error for invalid signature")
	}
}

func TestStatsCommand(t *testing.T) {
	resetFlags(t)
	path := sampleScript(t)

	output, err := captureOutput(t, func() error { return runStats([]string{path}) })
	if err != nil {
		t.Fatalf("runStats() error = %v", err)
	}
	assertContains(t, output, []string{"3 instructions", "0x1D"})

	jsonOut = true
	output, err = captureOutput(t, func() error { return runStats([]string{path}) })
	if err != nil {
		t.Fatalf("runStats() error = %v", err)
	}
	var st struct {
		Instructions int `json:"instructions"`
		Opcodes      []struct {
			Opcode int `json:"opcode"`
			Count  int `json:"count"`
		} `json:"opcodes"`
	}
	assertJSON(t, output, &st)
	if st.Instructions != 3 || len(st.Opcodes) != 3 {
		t.Errorf("unexpected stats: %+v", st)
	}
}
