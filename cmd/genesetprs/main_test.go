package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/momole/riskmap/gwasparser"
)

func assertNoOutput(t *testing.T, outputDir string) {
	t.Helper()

	if _, err := os.Stat(outputDir); !os.IsNotExist(err) {
		t.Errorf("output directory %s exists after a failed run", outputDir)
	}
}

func TestRunMissingInputWritesNothing(t *testing.T) {
	dir := t.TempDir()
	outputDir := filepath.Join(dir, "output")

	err := run(filepath.Join(dir, "input"), outputDir, false)
	if err == nil {
		t.Fatal("expected an error with no input directory")
	}
	if !strings.Contains(err.Error(), "missing GWAS file") {
		t.Errorf("error %q should name the missing GWAS file", err)
	}

	assertNoOutput(t, outputDir)
}

func TestRunSchemaErrorWritesNothing(t *testing.T) {
	dir := t.TempDir()
	inputDir := filepath.Join(dir, "input")
	if err := os.MkdirAll(inputDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(inputDir, "gwas.tsv"), []byte("Pathway\tP_Value\nA\t0.01\n"), 0644); err != nil {
		t.Fatal(err)
	}
	outputDir := filepath.Join(dir, "output")

	err := run(inputDir, outputDir, false)

	var schemaErr *gwasparser.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("got %v, expected a SchemaError", err)
	}

	assertNoOutput(t, outputDir)
}

func TestRunWritesBothArtifacts(t *testing.T) {
	dir := t.TempDir()
	inputDir := filepath.Join(dir, "input")
	if err := os.MkdirAll(inputDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(inputDir, "gwas.csv"), []byte("Pathway,Effect_Size\nA,0.2\nA,0.3\nB,-0.1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	outputDir := filepath.Join(dir, "output")

	if err := run(inputDir, outputDir, false); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(outputDir, "gene_prs_results.csv"))
	if err != nil {
		t.Fatal(err)
	}
	expected := "Gene_Set,PRS_Score\nA,0.5\nB,-0.1\n"
	if string(data) != expected {
		t.Errorf("got %q, expected %q", data, expected)
	}

	data, err = os.ReadFile(filepath.Join(outputDir, "gene_prs_results.json"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `[{"Gene_Set":"A","PRS_Score":0.5},{"Gene_Set":"B","PRS_Score":-0.1}]` {
		t.Errorf("unexpected JSON artifact: %q", data)
	}
}
