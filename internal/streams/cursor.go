package streams

import (
	"encoding/json"
	"fmt"
	"os"

	"event-insights/internal/models"
)

// Event is any record the cursor can order by time.
type Event interface {
	EventTime() int64
}

// Cursor is a lazy, finite, forward-only merge of one or more JSON array
// files. Files must be given pre-sorted by their first event timestamp.
//
// A running high-water mark suppresses cross-file overlap: any event whose
// timestamp is strictly below the mark is dropped as already seen. This is
// an approximation that only catches trailing overlap between consecutive
// timestamp-ordered files.
//
// The cursor is stateful and non-restartable: window consumers Peek at the
// next event and only consume it once it belongs to their window, so the
// cursor naturally resumes at the first event of the following window.
type Cursor[T Event] struct {
	paths    []string
	category models.EventCategory

	fileIdx   int
	file      *os.File
	dec       *json.Decoder
	highWater int64
	peeked    *T
	done      bool
}

func NewCursor[T Event](paths []string, category models.EventCategory) *Cursor[T] {
	return &Cursor[T]{paths: paths, category: category}
}

// Peek returns the next event without consuming it. The second return value
// is false once the stream is exhausted.
func (c *Cursor[T]) Peek() (T, bool, error) {
	var zero T
	if c.peeked != nil {
		return *c.peeked, true, nil
	}
	if c.done {
		return zero, false, nil
	}

	event, ok, err := c.fetch()
	if err != nil {
		return zero, false, err
	}
	if !ok {
		c.done = true
		return zero, false, nil
	}

	c.peeked = &event
	return event, true, nil
}

// Next consumes and returns the next event.
func (c *Cursor[T]) Next() (T, bool, error) {
	event, ok, err := c.Peek()
	if err != nil || !ok {
		return event, ok, err
	}
	c.peeked = nil
	return event, true, nil
}

// Close releases the currently open file, if any.
func (c *Cursor[T]) Close() error {
	c.done = true
	if c.file == nil {
		return nil
	}
	file := c.file
	c.file = nil
	c.dec = nil
	return file.Close()
}

// fetch advances through the files until it finds the next non-duplicate
// event or runs out of input.
func (c *Cursor[T]) fetch() (T, bool, error) {
	var zero T
	for {
		if c.dec == nil {
			if c.fileIdx >= len(c.paths) {
				return zero, false, nil
			}
			if err := c.openNext(); err != nil {
				return zero, false, err
			}
		}

		if !c.dec.More() {
			// Consume the closing bracket and move on.
			if _, err := c.dec.Token(); err != nil {
				return zero, false, fmt.Errorf("malformed event array %s: %w", c.currentPath(), err)
			}
			if err := c.file.Close(); err != nil {
				return zero, false, err
			}
			c.file = nil
			c.dec = nil
			c.fileIdx++
			continue
		}

		var event T
		if err := c.dec.Decode(&event); err != nil {
			return zero, false, fmt.Errorf("failed to decode event in %s: %w", c.currentPath(), err)
		}
		metricEventsReadTotal.WithLabelValues(string(c.category)).Inc()

		// avoid counting events twice in case of file overlap
		ts := event.EventTime()
		if ts < c.highWater {
			metricEventsDeduplicatedTotal.WithLabelValues(string(c.category)).Inc()
			continue
		}
		c.highWater = ts

		return event, true, nil
	}
}

func (c *Cursor[T]) openNext() error {
	file, err := os.Open(c.paths[c.fileIdx])
	if err != nil {
		return err
	}

	dec := json.NewDecoder(file)
	token, err := dec.Token()
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to read event array %s: %w", c.paths[c.fileIdx], err)
	}
	if delim, ok := token.(json.Delim); !ok || delim != '[' {
		_ = file.Close()
		return fmt.Errorf("event file %s is not a JSON array", c.paths[c.fileIdx])
	}

	c.file = file
	c.dec = dec
	return nil
}

func (c *Cursor[T]) currentPath() string {
	if c.fileIdx < len(c.paths) {
		return c.paths[c.fileIdx]
	}
	return ""
}
