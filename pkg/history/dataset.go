// Package history serves the fixed engine sensor dataset the model was
// trained on, verbatim and in file order.
package history

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Record is one dataset row keyed by the CSV's column names. Numeric
// cells are decoded as float64; anything else stays a string.
type Record map[string]any

// Dataset is an immutable, ordered sequence of records loaded once at
// startup and shared read-only across requests.
type Dataset struct {
	records []Record
}

// Load parses a CSV file with a header row.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset %s has no header row", path)
	}

	header := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(header))
		for i, col := range header {
			if i >= len(row) {
				break
			}
			if n, err := strconv.ParseFloat(row[i], 64); err == nil {
				rec[col] = n
			} else {
				rec[col] = row[i]
			}
		}
		records = append(records, rec)
	}
	return &Dataset{records: records}, nil
}

// Records returns all rows in file order.
func (d *Dataset) Records() []Record { return d.records }

// Len reports the number of data rows.
func (d *Dataset) Len() int { return len(d.records) }
