package prscore

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"

	"github.com/carbocation/pfx"
)

// ScoreColumn is the fixed name of the derived score column in both output
// formats.
const ScoreColumn = "PRS_Score"

// WriteResults writes the result table to both sinks. Both writes are
// always attempted, and each outcome is reported independently so that a
// failure on one format never hides what happened to the other.
func WriteResults(csvPath, jsonPath, keyColumn string, results []Result) (csvErr, jsonErr error) {
	csvErr = WriteCSV(csvPath, keyColumn, results)
	jsonErr = WriteJSON(jsonPath, keyColumn, results)

	return csvErr, jsonErr
}

// WriteCSV writes the result table as comma-delimited text: a header row
// naming the key column and PRS_Score, then one row per key.
func WriteCSV(path, keyColumn string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{keyColumn, ScoreColumn}); err != nil {
		f.Close()
		return pfx.Err(err)
	}

	for _, r := range results {
		if err := w.Write([]string{r.Key, strconv.FormatFloat(r.Score, 'g', -1, 64)}); err != nil {
			f.Close()
			return pfx.Err(err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return pfx.Err(err)
	}

	return pfx.Err(f.Close())
}

// WriteJSON writes the result table as an ordered array of flat objects,
// one per key, with field names matching the CSV column names and no
// enclosing metadata.
func WriteJSON(path, keyColumn string, results []Result) error {
	rows := make([]jsonRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, jsonRow{keyColumn: keyColumn, key: r.Key, score: r.Score})
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return pfx.Err(err)
	}

	return pfx.Err(os.WriteFile(path, data, 0644))
}

// jsonRow preserves the key-column-first field order that a struct with
// static json tags cannot express for a runtime-chosen column name.
type jsonRow struct {
	keyColumn string
	key       string
	score     float64
}

func (r jsonRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	name, err := json.Marshal(r.keyColumn)
	if err != nil {
		return nil, err
	}

	key, err := json.Marshal(r.key)
	if err != nil {
		return nil, err
	}

	score, err := json.Marshal(r.score)
	if err != nil {
		return nil, err
	}

	buf.WriteByte('{')
	buf.Write(name)
	buf.WriteByte(':')
	buf.Write(key)
	buf.WriteString(`,"` + ScoreColumn + `":`)
	buf.Write(score)
	buf.WriteByte('}')

	return buf.Bytes(), nil
}
