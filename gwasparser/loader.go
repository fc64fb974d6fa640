package gwasparser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"

	"github.com/momole/riskmap"
)

var (
	geneSetColumns  = []string{"Gene_Set", "Beta"}
	gwasColumns     = []string{"SNP", "Effect_Allele", "Beta"}
	genotypeColumns = []string{"SNP", "Individual_ID", "Genotype"}
)

// LoadGeneSetFile loads and normalizes a gene-set GWAS summary table.
func LoadGeneSetFile(path string) ([]GeneSetRecord, error) {
	var records []GeneSetRecord
	if err := loadTable(path, geneSetColumns, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// LoadGWASFile loads and normalizes a per-variant GWAS summary table.
func LoadGWASFile(path string) ([]SNPRecord, error) {
	var records []SNPRecord
	if err := loadTable(path, gwasColumns, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// LoadGenotypeFile loads and normalizes a genotype table.
func LoadGenotypeFile(path string) ([]GenotypeRecord, error) {
	var records []GenotypeRecord
	if err := loadTable(path, genotypeColumns, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// CheckOverlap confirms that at least one SNP identifier appears in both
// the GWAS and genotype tables, returning ErrNoOverlap otherwise.
func CheckOverlap(gwas []SNPRecord, genotypes []GenotypeRecord) error {
	seen := make(map[string]struct{}, len(gwas))
	for _, record := range gwas {
		seen[record.SNP] = struct{}{}
	}

	for _, record := range genotypes {
		if _, exists := seen[record.SNP]; exists {
			return nil
		}
	}

	return ErrNoOverlap
}

// loadTable reads the whole delimited file at path, normalizes its header,
// confirms the required canonical columns are present, and decodes the body
// into out, which must be a pointer to a slice of one of the record types.
//
// A row with an empty or non-numeric value under a required column fails
// the load with row context. Silently carrying such rows into a sum would
// poison the whole group, so the run stops instead.
func loadTable(path string, required []string, out interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	fd, err := riskmap.MaybeDecompress(f)
	if err != nil {
		return pfx.Err(err)
	}
	defer fd.Close()

	data, err := io.ReadAll(fd)
	if err != nil {
		return pfx.Err(err)
	}

	separator, err := riskmap.DetectSeparator(bytes.NewReader(data))
	if err != nil {
		return err
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = separator
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	if len(rows) == 0 {
		return &SchemaError{File: path, Missing: required}
	}

	rows[0] = NormalizeHeader(rows[0])

	if missing := missingColumns(rows[0], required); len(missing) > 0 {
		return &SchemaError{File: path, Missing: missing}
	}

	if err := rejectBlankCells(path, rows, required); err != nil {
		return err
	}

	if err := gocsv.UnmarshalCSV(&rowReader{rows: rows}, out); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

func missingColumns(header []string, required []string) []string {
	present := make(map[string]struct{}, len(header))
	for _, cell := range header {
		present[cell] = struct{}{}
	}

	missing := make([]string, 0)
	for _, col := range required {
		if _, exists := present[col]; !exists {
			missing = append(missing, col)
		}
	}

	return missing
}

func rejectBlankCells(path string, rows [][]string, required []string) error {
	indexes := make(map[int]string, len(required))
	for i, cell := range rows[0] {
		for _, col := range required {
			if cell == col {
				indexes[i] = col
			}
		}
	}

	for rowNum, row := range rows[1:] {
		for i, col := range indexes {
			if strings.TrimSpace(row[i]) == "" {
				// Line numbering counts the header as line 1.
				return fmt.Errorf("%s line %d: empty %s value", path, rowNum+2, col)
			}
		}
	}

	return nil
}

// rowReader feeds already-normalized rows to gocsv.
type rowReader struct {
	rows [][]string
	next int
}

func (r *rowReader) Read() ([]string, error) {
	if r.next >= len(r.rows) {
		return nil, io.EOF
	}

	row := r.rows[r.next]
	r.next++

	return row, nil
}

func (r *rowReader) ReadAll() ([][]string, error) {
	rest := r.rows[r.next:]
	r.next = len(r.rows)

	return rest, nil
}
