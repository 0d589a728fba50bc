package maincmd_test

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/mna/lox/internal/filetest"
	"github.com/mna/lox/internal/maincmd"
	"github.com/mna/mainer"
)

var testUpdateTokenizeTests = flag.Bool("test.update-tokenize-tests", false, "If set, replace expected tokenize test results with actual results.")
var testUpdateRunTests = flag.Bool("test.update-run-tests", false, "If set, replace expected run test results with actual results.")

// TestTokenize exercises Cmd.Tokenize against golden files the same way the
// teacher's scanner_test.go drives maincmd.TokenizeFiles, through
// internal/filetest's SourceFiles/DiffOutput/DiffErrors helpers instead of
// ad hoc string comparisons.
func TestTokenize(t *testing.T) {
	ctx := context.Background()
	srcDir, resultDir := filepath.Join("testdata", "tokenize", "in"), filepath.Join("testdata", "tokenize", "out")

	for _, fi := range filetest.SourceFiles(t, srcDir, ".lox") {
		t.Run(fi.Name(), func(t *testing.T) {
			var buf, ebuf bytes.Buffer
			stdio := mainer.Stdio{Stdout: &buf, Stderr: &ebuf}

			var c maincmd.Cmd
			// error is ignored, we just want it printed to ebuf
			_ = c.Tokenize(ctx, stdio, []string{filepath.Join(srcDir, fi.Name())})
			filetest.DiffOutput(t, fi, buf.String(), resultDir, testUpdateTokenizeTests)
			filetest.DiffErrors(t, fi, ebuf.String(), resultDir, testUpdateTokenizeTests)
		})
	}
}

// TestRun exercises Cmd.Run end to end (scan, parse, resolve, interpret)
// against golden files, covering both a clean run and each exit-code phase
// (runtime and resolve errors).
func TestRun(t *testing.T) {
	ctx := context.Background()
	srcDir, resultDir := filepath.Join("testdata", "run", "in"), filepath.Join("testdata", "run", "out")

	for _, fi := range filetest.SourceFiles(t, srcDir, ".lox") {
		t.Run(fi.Name(), func(t *testing.T) {
			var buf, ebuf bytes.Buffer
			stdio := mainer.Stdio{Stdout: &buf, Stderr: &ebuf}

			var c maincmd.Cmd
			_ = c.Run(ctx, stdio, []string{filepath.Join(srcDir, fi.Name())})
			filetest.DiffOutput(t, fi, buf.String(), resultDir, testUpdateRunTests)
			filetest.DiffErrors(t, fi, ebuf.String(), resultDir, testUpdateRunTests)
		})
	}
}
