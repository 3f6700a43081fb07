package sinks

import (
	"context"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

type influxWriter struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
}

// NewInfluxWriter creates a PointWriter backed by an InfluxDB v2 bucket,
// writing synchronously at millisecond precision.
func NewInfluxWriter(url, token, org, bucket string) PointWriter {
	options := influxdb2.DefaultOptions().SetPrecision(time.Millisecond)
	client := influxdb2.NewClientWithOptions(url, token, options)

	return &influxWriter{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
	}
}

func (w *influxWriter) WritePoints(ctx context.Context, points []Point) error {
	converted := make([]*write.Point, 0, len(points))
	for _, p := range points {
		fields := make(map[string]interface{}, len(p.Fields))
		for name, value := range p.Fields {
			fields[name] = value
		}
		converted = append(converted, write.NewPoint(p.Measurement, p.Tags, fields, p.Time))
	}

	return w.writeAPI.WritePoint(ctx, converted...)
}

func (w *influxWriter) Close() {
	w.client.Close()
}
