// snpprs computes a genotype-weighted polygenic risk score per individual:
// each individual's dosage at every SNP shared between a GWAS summary file
// and a genotype file is multiplied by that SNP's effect size and summed.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/momole/riskmap"
	"github.com/momole/riskmap/gwasparser"
	"github.com/momole/riskmap/prscore"
	"github.com/momole/riskmap/prsplot"
)

func main() {
	var inputDir, outputDir, gwasPath, genotypePath string
	var plot bool

	flag.StringVar(&gwasPath, "gwas", "", "Path to the GWAS summary file; when empty, the most recent .tsv in -input is used")
	flag.StringVar(&genotypePath, "genotypes", "", "Path to the genotype file; when empty, the most recent .tsv in -input is used")
	flag.StringVar(&inputDir, "input", "input", "Directory searched when -gwas or -genotypes is not given")
	flag.StringVar(&outputDir, "output", "output", "Directory where result files are written (created if absent)")
	flag.BoolVar(&plot, "plot", false, "Also render prs_distribution.png")
	flag.Parse()

	if err := run(inputDir, outputDir, gwasPath, genotypePath, plot); err != nil {
		log.Fatalln("Error:", err)
	}
}

func run(inputDir, outputDir, gwasPath, genotypePath string, plot bool) error {
	var err error

	if gwasPath == "" {
		if gwasPath, err = riskmap.LatestInDir(inputDir, []string{".tsv"}); errors.Is(err, riskmap.ErrNoInput) {
			return fmt.Errorf("missing GWAS file in %q", inputDir)
		} else if err != nil {
			return err
		}
	}

	if genotypePath == "" {
		if genotypePath, err = riskmap.LatestInDir(inputDir, []string{".tsv"}); errors.Is(err, riskmap.ErrNoInput) {
			return fmt.Errorf("missing genotype file in %q", inputDir)
		} else if err != nil {
			return err
		}
	}

	log.Println("Loading GWAS file:", gwasPath)
	gwas, err := gwasparser.LoadGWASFile(gwasPath)
	if err != nil {
		return err
	}

	log.Println("Loading genotype file:", genotypePath)
	genotypes, err := gwasparser.LoadGenotypeFile(genotypePath)
	if err != nil {
		return err
	}

	if err := gwasparser.CheckOverlap(gwas, genotypes); err != nil {
		return err
	}

	results := prscore.SNPScores(gwas, genotypes)

	if summary, err := prscore.Summarize(results); err == nil {
		log.Printf("Scored %d individuals (min %.4g, mean %.4g, max %.4g)\n", summary.N, summary.Min, summary.Mean, summary.Max)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	csvPath := filepath.Join(outputDir, "prs_results.csv")
	jsonPath := filepath.Join(outputDir, "prs_results.json")

	csvErr, jsonErr := prscore.WriteResults(csvPath, jsonPath, "Individual_ID", results)
	if csvErr != nil {
		log.Println("CSV output failed:", csvErr)
	}
	if jsonErr != nil {
		log.Println("JSON output failed:", jsonErr)
	}
	if csvErr != nil || jsonErr != nil {
		return fmt.Errorf("failed writing results")
	}

	fmt.Printf("PRS calculation complete! Results saved in:\n%s\n%s\n", csvPath, jsonPath)

	if plot {
		chartPath := filepath.Join(outputDir, "prs_distribution.png")
		if err := prsplot.BarChart(chartPath, "Individual_ID", results); err != nil {
			log.Println("Skipping bar chart:", err)
		} else {
			fmt.Println(chartPath)
		}
	}

	return nil
}
