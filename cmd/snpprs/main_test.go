package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/momole/riskmap/gwasparser"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

func assertNoOutput(t *testing.T, outputDir string) {
	t.Helper()

	if _, err := os.Stat(outputDir); !os.IsNotExist(err) {
		t.Errorf("output directory %s exists after a failed run", outputDir)
	}
}

func TestRunNoOverlapWritesNothing(t *testing.T) {
	dir := t.TempDir()

	gwasPath := writeFixture(t, dir, "gwas.tsv", "SNP\tEffect_Allele\tBeta\nrs1\tT\t0.4\n")
	genotypePath := writeFixture(t, dir, "genotypes.tsv", "SNP\tIndividual_ID\tGenotype\nrs9\tind1\t2\n")
	outputDir := filepath.Join(dir, "output")

	err := run(dir, outputDir, gwasPath, genotypePath, false)
	if !errors.Is(err, gwasparser.ErrNoOverlap) {
		t.Fatalf("got %v, expected ErrNoOverlap", err)
	}

	assertNoOutput(t, outputDir)
}

func TestRunMissingInputWritesNothing(t *testing.T) {
	dir := t.TempDir()
	outputDir := filepath.Join(dir, "output")

	err := run(filepath.Join(dir, "input"), outputDir, "", "", false)
	if err == nil {
		t.Fatal("expected an error with no input files")
	}
	if !strings.Contains(err.Error(), "missing GWAS file") {
		t.Errorf("error %q should name the missing GWAS file", err)
	}

	assertNoOutput(t, outputDir)
}

func TestRunWritesBothArtifacts(t *testing.T) {
	dir := t.TempDir()

	gwasPath := writeFixture(t, dir, "gwas.tsv", "SNP\tEffect_Allele\tBeta\nrs1\tT\t0.4\nrs2\tC\t-0.2\n")
	genotypePath := writeFixture(t, dir, "genotypes.tsv", "SNP\tIndividual_ID\tGenotype\nrs1\tind1\t2\nrs1\tind2\t0\nrs3\tind1\t1\n")
	outputDir := filepath.Join(dir, "output")

	if err := run(dir, outputDir, gwasPath, genotypePath, false); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(outputDir, "prs_results.csv"))
	if err != nil {
		t.Fatal(err)
	}
	expected := "Individual_ID,PRS_Score\nind1,0.8\nind2,0\n"
	if string(data) != expected {
		t.Errorf("got %q, expected %q", data, expected)
	}

	if _, err := os.Stat(filepath.Join(outputDir, "prs_results.json")); err != nil {
		t.Errorf("JSON artifact missing: %v", err)
	}
}
