// Package progress reports sampling progress at fixed base intervals.
package progress

import (
	"fmt"
	"io"
	"math"
	"time"
)

// DefaultIntervalBases is the default spacing between progress reports.
const DefaultIntervalBases = 100_000

// Reporter emits progress lines while the sampling loop runs. It keeps the
// last-report time and total so each line carries an instantaneous rate.
// Reporter state is touched by a single goroutine only.
type Reporter struct {
	out      io.Writer
	interval int64
	now      func() time.Time

	lastTime  time.Time
	lastTotal int64
}

// NewReporter creates a Reporter writing to out. interval <= 0 falls back to
// DefaultIntervalBases.
func NewReporter(out io.Writer, interval int64) *Reporter {
	return newReporter(out, interval, time.Now)
}

// newReporter allows tests to inject a clock.
func newReporter(out io.Writer, interval int64, now func() time.Time) *Reporter {
	if interval <= 0 {
		interval = DefaultIntervalBases
	}
	return &Reporter{
		out:      out,
		interval: interval,
		now:      now,
		lastTime: now(),
	}
}

// Report is called once per accepted record with the updated running total.
// A line is emitted only when total is an exact multiple of the reporting
// interval, or when total has reached the target (the final report). A record
// that jumps the counter across an interval boundary produces no line; the
// next exact multiple or the final report breaks the silence.
func (r *Reporter) Report(total, target int64) {
	if total%r.interval != 0 && total < target {
		return
	}

	now := r.now()
	rate := r.throughput(total, now)

	fmt.Fprintf(r.out, "Progress: %d%% (%s/%s bases) at %d bases/sec\n",
		percentage(total, target), Abbreviate(total), Abbreviate(target), rate)

	r.lastTime = now
	r.lastTotal = total
}

// throughput computes bases/sec since the last emitted report, rounded to an
// integer. Reports 0 when the elapsed time rounds to zero seconds.
func (r *Reporter) throughput(total int64, now time.Time) int64 {
	elapsed := now.Sub(r.lastTime).Seconds()
	if int64(math.Round(elapsed)) == 0 {
		return 0
	}
	return int64(math.Round(float64(total-r.lastTotal) / elapsed))
}

// percentage returns total/target as a truncated integer percentage,
// clamped to 100.
func percentage(total, target int64) int64 {
	if target <= 0 {
		return 100
	}
	pct := total * 100 / target
	if pct > 100 {
		return 100
	}
	return pct
}

// Abbreviate renders a base count in short form: 3000000000 -> "3G",
// 2500000 -> "2M", 1500 -> "1K", 999 -> "999". Integer division, so values
// truncate rather than round.
func Abbreviate(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%dG", n/1_000_000_000)
	case n >= 1_000_000:
		return fmt.Sprintf("%dM", n/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%dK", n/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}
