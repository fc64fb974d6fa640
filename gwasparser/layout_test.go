package gwasparser

import (
	"reflect"
	"testing"
)

func TestNormalizeHeader(t *testing.T) {
	for _, v := range []struct {
		name     string
		header   []string
		expected []string
	}{
		{
			name:     "gene set synonyms",
			header:   []string{"Pathway", "Effect_Size"},
			expected: []string{"Gene_Set", "Beta"},
		},
		{
			name:     "snp synonyms",
			header:   []string{"rsID", "A1", "Weight"},
			expected: []string{"SNP", "Effect_Allele", "Beta"},
		},
		{
			name:     "already canonical is a no-op",
			header:   []string{"Gene_Set", "Beta"},
			expected: []string{"Gene_Set", "Beta"},
		},
		{
			name:     "unknown headers pass through",
			header:   []string{"Geneset", "Beta", "P_Value"},
			expected: []string{"Gene_Set", "Beta", "P_Value"},
		},
		{
			name: "only the first synonym match is renamed",
			// "Gene Set" is an earlier synonym than "Pathway", so it wins
			// the canonical name and "Pathway" is left alone.
			header:   []string{"Pathway", "Gene Set", "Beta"},
			expected: []string{"Pathway", "Gene_Set", "Beta"},
		},
	} {
		got := NormalizeHeader(v.header)
		if !reflect.DeepEqual(got, v.expected) {
			t.Errorf("%s: got %v, expected %v", v.name, got, v.expected)
		}
	}
}

func TestNormalizeHeaderIdempotent(t *testing.T) {
	header := []string{"Curated Set", "Effect_Size", "Extra"}

	once := NormalizeHeader(header)
	twice := NormalizeHeader(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second pass changed the header: %v vs %v", once, twice)
	}
}

func TestNormalizeHeaderDoesNotMutateInput(t *testing.T) {
	header := []string{"Pathway", "Effect_Size"}

	NormalizeHeader(header)

	if !reflect.DeepEqual(header, []string{"Pathway", "Effect_Size"}) {
		t.Errorf("input header was mutated: %v", header)
	}
}
