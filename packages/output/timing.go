package output

import (
	"fmt"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// maxTrackable is the longest case duration the histogram resolves.
const maxTrackable = time.Minute

// Timings records case durations and reports latency percentiles.
type Timings struct {
	hist *hdrhistogram.Histogram
}

func NewTimings() *Timings {
	return &Timings{
		hist: hdrhistogram.New(1, maxTrackable.Microseconds(), 3),
	}
}

// Record adds one case duration. Durations beyond maxTrackable are clamped.
func (t *Timings) Record(d time.Duration) {
	us := d.Microseconds()
	if us < 1 {
		us = 1
	}
	if us > maxTrackable.Microseconds() {
		us = maxTrackable.Microseconds()
	}
	_ = t.hist.RecordValue(us)
}

func (t *Timings) Count() int64 {
	return t.hist.TotalCount()
}

// Percentile returns the duration at quantile q (0-100).
func (t *Timings) Percentile(q float64) time.Duration {
	return time.Duration(t.hist.ValueAtQuantile(q)) * time.Microsecond
}

func (t *Timings) Max() time.Duration {
	return time.Duration(t.hist.Max()) * time.Microsecond
}

// Summary renders p50, p90, p99 and max, or "" when nothing was recorded.
func (t *Timings) Summary() string {
	if t.Count() == 0 {
		return ""
	}
	return fmt.Sprintf("p50=%s p90=%s p99=%s max=%s",
		t.Percentile(50), t.Percentile(90), t.Percentile(99), t.Max())
}
