// genesetprs computes a gene-set polygenic risk score table from the most
// recently modified GWAS summary file in an input directory. Scores are
// the per-set sums of effect sizes; no individual-level genotypes are
// involved.
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
	var inputDir, outputDir string
	var plot bool

	flag.StringVar(&inputDir, "input", "input", "Directory holding GWAS summary files (.csv or .tsv; most recent one is used)")
	flag.StringVar(&outputDir, "output", "output", "Directory where result files are written (created if absent)")
	flag.BoolVar(&plot, "plot", false, "Also render prs_distribution.png and prs_risk_map.png")
	flag.Parse()

	if err := run(inputDir, outputDir, plot); err != nil {
		log.Fatalln("Error:", err)
	}
}

func run(inputDir, outputDir string, plot bool) error {
	gwasFile, err := riskmap.LatestInDir(inputDir, []string{".tsv", ".csv"})
	if errors.Is(err, riskmap.ErrNoInput) {
		return fmt.Errorf("missing GWAS file in %q", inputDir)
	} else if err != nil {
		return err
	}

	log.Println("Loading GWAS file:", gwasFile)
	records, err := gwasparser.LoadGeneSetFile(gwasFile)
	if err != nil {
		return err
	}

	results := prscore.GeneSetScores(records)

	if summary, err := prscore.Summarize(results); err == nil {
		log.Printf("Scored %d gene sets (min %.4g, mean %.4g, max %.4g)\n", summary.N, summary.Min, summary.Mean, summary.Max)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	csvPath := filepath.Join(outputDir, "gene_prs_results.csv")
	jsonPath := filepath.Join(outputDir, "gene_prs_results.json")

	csvErr, jsonErr := prscore.WriteResults(csvPath, jsonPath, "Gene_Set", results)
	if csvErr != nil {
		log.Println("CSV output failed:", csvErr)
	}
	if jsonErr != nil {
		log.Println("JSON output failed:", jsonErr)
	}
	if csvErr != nil || jsonErr != nil {
		return fmt.Errorf("failed writing results")
	}

	fmt.Printf("Gene-based PRS calculation complete! Results saved in:\n%s\n%s\n", csvPath, jsonPath)

	if plot {
		chartPath := filepath.Join(outputDir, "prs_distribution.png")
		if err := prsplot.BarChart(chartPath, "Gene_Set", results); err != nil {
			log.Println("Skipping bar chart:", err)
		} else {
			fmt.Println(chartPath)
		}

		mapPath := filepath.Join(outputDir, "prs_risk_map.png")
		if err := prsplot.RiskMap(mapPath, results); err != nil {
			log.Println("Skipping risk map:", err)
		} else {
			fmt.Println(mapPath)
		}
	}

	return nil
}
