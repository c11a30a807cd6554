package seqio

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
)

// RecordWriter encodes records to a local file. The container format is
// selected by the output path extension: ".bam" writes the binary BGZF
// container, anything else writes SAM text.
type RecordWriter struct {
	file *os.File
	buf  *bufio.Writer
	bam  *bam.Writer
	sam  *sam.Writer
}

// NewRecordWriter creates the output file and writes the header h to it.
func NewRecordWriter(path string, h *sam.Header) (*RecordWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	if strings.HasSuffix(strings.ToLower(path), ".bam") {
		bw, err := bam.NewWriter(f, h, 1)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to open BAM writer: %w", err)
		}
		return &RecordWriter{file: f, bam: bw}, nil
	}

	buf := bufio.NewWriter(f)
	sw, err := sam.NewWriter(buf, h, sam.FlagDecimal)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to open SAM writer: %w", err)
	}
	return &RecordWriter{file: f, buf: buf, sam: sw}, nil
}

// Write encodes one record. Records are written whole and in arrival order.
func (w *RecordWriter) Write(rec *sam.Record) error {
	if w.bam != nil {
		return w.bam.Write(rec)
	}
	return w.sam.Write(rec)
}

// Close flushes the encoder and closes the output file. Every accepted
// record handed to Write before Close is durable afterwards.
func (w *RecordWriter) Close() error {
	var err error
	if w.bam != nil {
		err = w.bam.Close()
	} else if w.buf != nil {
		err = w.buf.Flush()
	}
	if cerr := w.file.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
