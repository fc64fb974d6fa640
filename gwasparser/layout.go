// Package gwasparser loads GWAS summary and genotype tables from delimited
// text files, rewriting the many header spellings seen in the wild to one
// canonical vocabulary before anything downstream touches a column by name.
package gwasparser

// ColumnMapping pairs a canonical column name with the synonyms accepted
// for it in raw input headers. The canonical name leads its own synonym
// list so that normalizing an already-canonical header is a no-op.
type ColumnMapping struct {
	Canonical string
	Synonyms  []string
}

// DefaultMappings is consulted once per load, in declared order. For each
// canonical name the synonym list is scanned in order and the first synonym
// present in the header is renamed; no header cell is ever renamed twice.
var DefaultMappings = []ColumnMapping{
	{Canonical: "Gene_Set", Synonyms: []string{"Gene_Set", "Gene Set", "Geneset", "Pathway", "Curated Set"}},
	{Canonical: "SNP", Synonyms: []string{"SNP", "rsID", "Marker", "Variant_ID"}},
	{Canonical: "Effect_Allele", Synonyms: []string{"Effect_Allele", "Effect Allele", "A1", "Risk_Allele"}},
	{Canonical: "Beta", Synonyms: []string{"Beta", "Effect_Size", "Effect Size", "Weight"}},
	{Canonical: "Individual_ID", Synonyms: []string{"Individual_ID", "Individual ID", "IID", "Sample_ID"}},
	{Canonical: "Genotype", Synonyms: []string{"Genotype", "Dosage", "Allele_Count"}},
}

// NormalizeHeader returns a copy of header with synonymous column names
// rewritten to their canonical form. The input slice is left untouched.
func NormalizeHeader(header []string) []string {
	out := make([]string, len(header))
	copy(out, header)

	claimed := make([]bool, len(out))

Mappings:
	for _, mapping := range DefaultMappings {
		for _, synonym := range mapping.Synonyms {
			for i, cell := range out {
				if claimed[i] || cell != synonym {
					continue
				}

				out[i] = mapping.Canonical
				claimed[i] = true
				continue Mappings
			}
		}
	}

	return out
}
