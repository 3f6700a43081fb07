package sinks

import (
	"context"
	"time"
)

// Point is one timestamped measurement bound for the time-series store:
// categorical labels become string tags, measures become numeric fields.
type Point struct {
	Measurement string
	Tags        map[string]string
	Fields      map[string]float64
	Time        time.Time
}

// PointWriter writes batches of points to a time-series store.
//
//go:generate mockgen -source=point_writer.go -destination=./mocks/point_writer_mock.go -package=mocks
type PointWriter interface {
	WritePoints(ctx context.Context, points []Point) error
	Close()
}
