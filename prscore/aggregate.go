// Package prscore turns parsed GWAS and genotype records into a polygenic
// risk score table and serializes that table for downstream consumers.
package prscore

import (
	"sort"

	"github.com/momole/riskmap/gwasparser"
)

// Result is one row of the score table: an aggregation key (a gene set or
// an individual) and its summed score.
type Result struct {
	Key   string
	Score float64
}

// GeneSetScores sums Beta per gene set. Rows are returned sorted by key so
// repeated runs produce identical artifacts; consumers must not otherwise
// depend on row order.
func GeneSetScores(records []gwasparser.GeneSetRecord) []Result {
	totals := make(map[string]float64)
	for _, record := range records {
		totals[record.GeneSet] += record.Beta
	}

	return sortedResults(totals)
}

// SNPScores computes one weighted score per individual: each genotype row
// whose SNP also appears in the GWAS table contributes dosage times beta to
// that individual's total. Genotype rows with no matching SNP are dropped,
// and an individual with zero matching rows is absent from the result
// rather than scored zero. When the GWAS table carries a SNP more than
// once, the last row wins.
func SNPScores(gwas []gwasparser.SNPRecord, genotypes []gwasparser.GenotypeRecord) []Result {
	betaBySNP := make(map[string]float64, len(gwas))
	for _, record := range gwas {
		betaBySNP[record.SNP] = record.Beta
	}

	totals := make(map[string]float64)
	for _, record := range genotypes {
		beta, exists := betaBySNP[record.SNP]
		if !exists {
			continue
		}

		totals[record.IndividualID] += record.Genotype * beta
	}

	return sortedResults(totals)
}

func sortedResults(totals map[string]float64) []Result {
	results := make([]Result, 0, len(totals))
	for key, score := range totals {
		results = append(results, Result{Key: key, Score: score})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Key < results[j].Key
	})

	return results
}
