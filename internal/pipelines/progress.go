package pipelines

import (
	"fmt"
	"time"

	"event-insights/internal/shared/loggers"
)

// progress reports per-window elapsed and estimated remaining time. Purely
// an observability aid, never a correctness concern.
type progress struct {
	startedAt time.Time
	total     int
	done      int
	logger    loggers.Logger
}

func newProgress(total int, logger loggers.Logger) *progress {
	return &progress{startedAt: time.Now(), total: total, logger: logger}
}

func (p *progress) Step() {
	p.done++
	elapsed := time.Since(p.startedAt)

	event := p.logger.Info().
		Str(loggers.FieldDuration, formatDuration(elapsed))

	if p.done < p.total {
		remaining := time.Duration(float64(elapsed) / float64(p.done) * float64(p.total-p.done))
		event = event.Str("estimated_remaining", formatDuration(remaining))
	}

	event.Msgf("Window %d/%d", p.done, p.total)
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	hours := d / time.Hour
	minutes := (d % time.Hour) / time.Minute
	seconds := (d % time.Minute) / time.Second

	switch {
	case hours >= 1:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	case minutes >= 1:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
