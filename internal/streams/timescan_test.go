package streams_test

import (
	"os"
	"path/filepath"
	"testing"

	"event-insights/internal/streams"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRaw(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestScanTimespan_ContentFile(t *testing.T) {
	t.Parallel()

	path := writeRaw(t, t.TempDir(), "content.json",
		"[\n{\"time\":1000,\"type\":\"viewSet\"},\n{\"time\":2000,\"type\":\"loadSet\"},\n{\"time\":3000,\"type\":\"viewSet\"}\n]")

	span, err := streams.ScanTimespan(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), span.First)
	assert.Equal(t, int64(3000), span.Last)
}

func TestScanTimespan_PurchaseFileUsesTimestampField(t *testing.T) {
	t.Parallel()

	// Purchase lines carry both a referral "time" and the event "timestamp";
	// only the latter may be used.
	path := writeRaw(t, t.TempDir(), "purchase.json",
		"[\n{\"timestamp\":5000,\"processedPurchase\":{}},\n{\"timestamp\":9000,\"processedPurchase\":{}}\n]")

	span, err := streams.ScanTimespan(path)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), span.First)
	assert.Equal(t, int64(9000), span.Last)
}

func TestScanTimespan_CompactSingleLineArray(t *testing.T) {
	t.Parallel()

	path := writeRaw(t, t.TempDir(), "compact.json",
		`[{"time":100},{"time":250},{"time":400}]`)

	span, err := streams.ScanTimespan(path)
	require.NoError(t, err)
	assert.Equal(t, int64(100), span.First)
	assert.Equal(t, int64(400), span.Last)
}

func TestScanTimespan_NoTimestamps(t *testing.T) {
	t.Parallel()

	path := writeRaw(t, t.TempDir(), "empty.json", "[]")

	_, err := streams.ScanTimespan(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no event timestamps")
}

func TestScanTimespans_SortsByFirstTimestamp(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	late := writeRaw(t, dir, "late.json", `[{"time":9000}]`)
	early := writeRaw(t, dir, "early.json", `[{"time":1000},{"time":2000}]`)

	spans, err := streams.ScanTimespans([]string{late, early})
	require.NoError(t, err)
	require.Len(t, spans, 2)
	assert.Equal(t, early, spans[0].Path)
	assert.Equal(t, late, spans[1].Path)
	assert.Equal(t, []string{early, late}, streams.Paths(spans))
}

func TestTimeframe_UnionOfSpans(t *testing.T) {
	t.Parallel()

	spans := []streams.Timespan{
		{First: 2000, Last: 8000},
		{First: 1000, Last: 5000},
		{First: 3000, Last: 9000},
	}

	first, last := streams.Timeframe(spans)
	assert.Equal(t, int64(1000), first)
	assert.Equal(t, int64(9000), last)
}
