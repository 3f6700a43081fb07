package products

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrCatalogNotFound signals a missing catalog file. Callers degrade to an
// empty catalog instead of failing the run.
var ErrCatalogNotFound = errors.New("product catalog file not found")

// ColumnMasterSKU is the join key column of the catalog table.
const ColumnMasterSKU = "mastersku"

// Catalog maps a 14-character master sku to the remaining columns of its
// catalog row. Loaded once at startup, read-only afterwards.
type Catalog map[string]map[string]string

// LoadCatalog reads a delimited catalog table with a header row. Rows whose
// key column is empty are skipped.
func LoadCatalog(path string) (Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, path)
		}
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return Catalog{}, nil
		}
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}

	keyIdx := -1
	for i, name := range header {
		if name == ColumnMasterSKU {
			keyIdx = i
			break
		}
	}
	if keyIdx < 0 {
		return nil, fmt.Errorf("catalog %s has no %q column", path, ColumnMasterSKU)
	}

	catalog := make(Catalog)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog row: %w", err)
		}
		if keyIdx >= len(record) || record[keyIdx] == "" {
			continue
		}

		row := make(map[string]string, len(header)-1)
		for i, name := range header {
			if i == keyIdx || i >= len(record) {
				continue
			}
			row[name] = record[i]
		}
		catalog[record[keyIdx]] = row
	}

	return catalog, nil
}
