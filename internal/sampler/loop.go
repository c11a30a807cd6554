// Package sampler drives the bounded read-accumulate-write cycle over
// sequence records.
package sampler

import (
	"errors"
	"fmt"
	"io"

	"github.com/biogo/hts/sam"

	"github.com/medgenlab/seqsample/internal/progress"
)

// Source yields records in input order. Read returns io.EOF when the source
// is exhausted.
type Source interface {
	Read() (*sam.Record, error)
}

// Sink receives every accepted record.
type Sink interface {
	Write(*sam.Record) error
}

// Loop copies records from a source to a sink until the cumulative base
// count reaches a target. Records are atomic: a pulled record is always
// written whole, so the final total may overshoot the target by up to one
// record's length. That overshoot is expected behavior.
type Loop struct {
	target   int64
	reporter *progress.Reporter
}

// NewLoop creates a Loop for the given target base count. reporter may be
// nil to disable progress output.
func NewLoop(target int64, reporter *progress.Reporter) *Loop {
	return &Loop{target: target, reporter: reporter}
}

// Run processes records until the source is exhausted or the running total
// reaches the target. The target check happens before each pull, so a
// target of 0 reads nothing. The returned total is valid even when an error
// is returned: bases already written to the sink are never discarded.
func (l *Loop) Run(src Source, sink Sink) (int64, error) {
	var total int64
	for total < l.target {
		rec, err := src.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return total, fmt.Errorf("failed to read record: %w", err)
		}

		if err := sink.Write(rec); err != nil {
			return total, fmt.Errorf("failed to write record: %w", err)
		}

		total += int64(rec.Seq.Length)
		if l.reporter != nil {
			l.reporter.Report(total, l.target)
		}
	}
	return total, nil
}
