package streams

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	timePattern      = regexp.MustCompile(`"time":(\d+)`)
	timestampPattern = regexp.MustCompile(`"timestamp":(\d+)`)
)

// maxScanLine bounds a single raw line during the timestamp scan. Compact
// exports put many events on one line.
const maxScanLine = 64 * 1024 * 1024

// Timespan is the raw (first, last) event timestamp pair of one file.
type Timespan struct {
	Path  string
	First int64
	Last  int64
}

// ScanTimespan extracts the first and last event timestamp of a file by
// matching the raw timestamp field, without parsing the JSON. Purchase
// exports carry "timestamp", all other events carry "time".
func ScanTimespan(path string) (Timespan, error) {
	file, err := os.Open(path)
	if err != nil {
		return Timespan{}, err
	}
	defer file.Close()

	span := Timespan{Path: path, First: -1, Last: -1}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxScanLine)
	for scanner.Scan() {
		line := scanner.Text()

		pattern := timePattern
		if strings.Contains(line, "processedPurchase") {
			pattern = timestampPattern
		}

		matches := pattern.FindAllStringSubmatch(line, -1)
		for _, match := range matches {
			ts, err := strconv.ParseInt(match[1], 10, 64)
			if err != nil {
				continue
			}
			if span.First < 0 {
				span.First = ts
			}
			span.Last = ts
		}
	}
	if err := scanner.Err(); err != nil {
		return Timespan{}, fmt.Errorf("failed to scan %s: %w", path, err)
	}

	if span.First < 0 {
		return Timespan{}, fmt.Errorf("no event timestamps found in %s", path)
	}
	return span, nil
}

// ScanTimespans scans every file and returns the spans sorted by first
// timestamp, the order the cursor requires.
func ScanTimespans(paths []string) ([]Timespan, error) {
	spans := make([]Timespan, 0, len(paths))
	for _, path := range paths {
		span, err := ScanTimespan(path)
		if err != nil {
			return nil, err
		}
		spans = append(spans, span)
	}

	sort.Slice(spans, func(i, j int) bool {
		return spans[i].First < spans[j].First
	})
	return spans, nil
}

// Timeframe returns the union of all spans: the earliest first timestamp
// and the latest last timestamp.
func Timeframe(spans []Timespan) (int64, int64) {
	if len(spans) == 0 {
		return 0, 0
	}
	first, last := spans[0].First, spans[0].Last
	for _, span := range spans[1:] {
		if span.First < first {
			first = span.First
		}
		if span.Last > last {
			last = span.Last
		}
	}
	return first, last
}

// Paths returns the file paths of the spans in span order.
func Paths(spans []Timespan) []string {
	paths := make([]string, len(spans))
	for i, span := range spans {
		paths[i] = span.Path
	}
	return paths
}
