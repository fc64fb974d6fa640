package gwasparser

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoOverlap indicates that the GWAS and genotype tables share no SNP
// identifiers, so a weighted score cannot be computed.
var ErrNoOverlap = errors.New("no matching SNPs between GWAS and genotype data")

// SchemaError reports the required canonical columns that are still absent
// from a table after header normalization.
type SchemaError struct {
	File    string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns in %s after renaming: %s", e.File, strings.Join(e.Missing, ", "))
}
