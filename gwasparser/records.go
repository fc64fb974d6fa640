package gwasparser

// GeneSetRecord is one row of a gene-set GWAS summary table.
type GeneSetRecord struct {
	GeneSet string  `csv:"Gene_Set"`
	Beta    float64 `csv:"Beta"`
}

// SNPRecord is one row of a per-variant GWAS summary table.
type SNPRecord struct {
	SNP          string  `csv:"SNP"`
	EffectAllele string  `csv:"Effect_Allele"`
	Beta         float64 `csv:"Beta"`
}

// GenotypeRecord is one observed dosage for one individual at one variant.
// Dosage is usually 0, 1, or 2 copies of the effect allele, but any numeric
// encoding is accepted.
type GenotypeRecord struct {
	SNP          string  `csv:"SNP"`
	IndividualID string  `csv:"Individual_ID"`
	Genotype     float64 `csv:"Genotype"`
}
