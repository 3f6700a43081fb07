package products

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog_ReadsRowsKeyedByMasterSKU(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "product_data.csv")
	csvData := "mastersku,Artikelcode,attributes\n" +
		"MASTER00000001,EL123456,\"{bereich-electronics}\"\n" +
		"MASTER00000002,HO987654,\"{bereich-home}\"\n" +
		",XX000000,\"{bereich-orphan}\"\n"
	require.NoError(t, os.WriteFile(path, []byte(csvData), 0644))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)

	require.Len(t, catalog, 2, "row without a key must be skipped")
	assert.Equal(t, "EL123456", catalog["MASTER00000001"]["Artikelcode"])
	assert.Equal(t, "{bereich-home}", catalog["MASTER00000002"]["attributes"])
	_, hasKeyColumn := catalog["MASTER00000001"]["mastersku"]
	assert.False(t, hasKeyColumn, "key column must not appear in the row map")
}

func TestLoadCatalog_MissingKeyColumn(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "product_data.csv")
	require.NoError(t, os.WriteFile(path, []byte("sku,name\nA,B\n"), 0644))

	_, err := LoadCatalog(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mastersku")
}
