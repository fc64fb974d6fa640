package riskmap

import (
	"strings"
	"testing"
)

func TestDetectSeparator(t *testing.T) {
	for _, v := range []struct {
		input    string
		expected rune
	}{
		{"Gene_Set,Beta\nA,0.5\n", ','},
		{"Gene_Set\tBeta\nA\t0.5\n", '\t'},
		// Extension never matters; only the first line does.
		{"SNP\tIndividual_ID\tGenotype\n", '\t'},
		// A tab-delimited header whose second line contains commas is
		// still tab-delimited.
		{"Gene_Set\tBeta\nA,B\t0.5\n", '\t'},
		// Known limitation: a quoted comma on the first line selects comma.
		{"\"Gene, Set\"\tBeta\n", ','},
		{"single_column\n", '\t'},
		{"", '\t'},
	} {
		got, err := DetectSeparator(strings.NewReader(v.input))
		if err != nil {
			t.Fatal(err)
		}
		if got != v.expected {
			t.Errorf("input %q: got %q, expected %q", v.input, got, v.expected)
		}
	}
}
