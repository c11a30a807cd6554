package seqio

import (
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
)

// Format identifies the container encoding of a record stream.
type Format int

const (
	// FormatBAM is the binary BGZF-compressed container. Unaligned BAM
	// (uBAM) is the same encoding with unmapped records.
	FormatBAM Format = iota
	// FormatSAM is the plain-text container.
	FormatSAM
	// FormatSAMGzip is gzip-wrapped SAM text.
	FormatSAMGzip
)

// DetectFormat picks the container format from a path or URL extension.
// Anything that is not recognizably SAM is decoded as BAM.
func DetectFormat(rawurl string) Format {
	name := strings.ToLower(rawurl)
	if i := strings.IndexByte(name, '?'); i >= 0 {
		name = name[:i]
	}
	switch {
	case strings.HasSuffix(name, ".sam.gz"):
		return FormatSAMGzip
	case strings.HasSuffix(name, ".sam"):
		return FormatSAM
	default:
		return FormatBAM
	}
}

// RecordReader decodes sequence records from a byte stream. The decoder is
// lenient in the sense the underlying codec is: structurally recoverable
// records are yielded rather than rejected, and auxiliary data is retained.
type RecordReader struct {
	header  *sam.Header
	bam     *bam.Reader
	sam     *sam.Reader
	closers []io.Closer
}

// NewRecordReader wraps src with the decoder for format. workers is the BGZF
// decompression worker count for BAM input (1 keeps the run sequential).
// The reader does not take ownership of src; closing src stays with the caller.
func NewRecordReader(src io.Reader, format Format, workers int) (*RecordReader, error) {
	if workers < 1 {
		workers = 1
	}

	switch format {
	case FormatSAM:
		sr, err := sam.NewReader(src)
		if err != nil {
			return nil, fmt.Errorf("failed to open SAM reader: %w", err)
		}
		return &RecordReader{header: sr.Header(), sam: sr}, nil

	case FormatSAMGzip:
		gz, err := gzip.NewReader(src)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream: %w", err)
		}
		sr, err := sam.NewReader(gz)
		if err != nil {
			_ = gz.Close()
			return nil, fmt.Errorf("failed to open SAM reader: %w", err)
		}
		return &RecordReader{header: sr.Header(), sam: sr, closers: []io.Closer{gz}}, nil

	default:
		br, err := bam.NewReader(src, workers)
		if err != nil {
			return nil, fmt.Errorf("failed to open BAM reader: %w", err)
		}
		return &RecordReader{header: br.Header(), bam: br, closers: []io.Closer{br}}, nil
	}
}

// Header returns the container header, propagated unchanged to writers.
func (r *RecordReader) Header() *sam.Header {
	return r.header
}

// Read returns the next record, or io.EOF when the stream is exhausted.
func (r *RecordReader) Read() (*sam.Record, error) {
	if r.bam != nil {
		return r.bam.Read()
	}
	return r.sam.Read()
}

// Close releases the decoder resources. The underlying byte stream is owned
// and closed by the caller.
func (r *RecordReader) Close() error {
	var err error
	for _, c := range r.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
