package fogis

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/bytedance/sonic"
)

// ReadJSON loads a FOGIS export file as raw bytes for Classify.
func ReadJSON(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// ReadCSV loads a CSV export and re-encodes it as the JSON list shape
// Classify expects. The header row supplies the field names, including
// the __type column. Empty cells are omitted; other cells are coerced
// to int, float, or bool when they parse as one, since the typed
// records expect JSON numbers and booleans.
func ReadCSV(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("read %s: missing header row", path)
	}

	header := rows[0]
	records := make([]map[string]any, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(map[string]any, len(header))
		for i, name := range header {
			if i >= len(row) || row[i] == "" {
				continue
			}
			rec[name] = coerceCell(name, row[i])
		}
		records = append(records, rec)
	}

	data, err := sonic.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", path, err)
	}
	return data, nil
}

func coerceCell(name, value string) any {
	if name == "__type" {
		return value
	}
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return value
}
