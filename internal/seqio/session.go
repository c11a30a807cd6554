package seqio

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Options configures stream and decoder acquisition.
type Options struct {
	// HTTPTimeout bounds the whole HTTP download. 0 disables the timeout.
	HTTPTimeout time.Duration
	// DecompressWorkers is the BGZF worker count for BAM input.
	DecompressWorkers int
}

// Session bundles the three resources of a sampling run: the input byte
// stream, the record reader on top of it, and the record writer. Resources
// are acquired stream -> reader -> writer and released in reverse order.
type Session struct {
	stream io.ReadCloser
	Reader *RecordReader
	Writer *RecordWriter
}

// Open acquires all three resources. On any acquisition failure the
// resources obtained so far are released before the error is returned, so a
// failed Open never leaks a descriptor or socket.
func Open(ctx context.Context, inputURL, outputPath string, opts Options) (*Session, error) {
	stream, err := OpenURL(ctx, inputURL, opts.HTTPTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to open input stream: %w", err)
	}

	reader, err := NewRecordReader(stream, DetectFormat(inputURL), opts.DecompressWorkers)
	if err != nil {
		_ = stream.Close()
		return nil, fmt.Errorf("failed to open record reader: %w", err)
	}

	writer, err := NewRecordWriter(outputPath, reader.Header())
	if err != nil {
		_ = reader.Close()
		_ = stream.Close()
		return nil, fmt.Errorf("failed to open record writer: %w", err)
	}

	return &Session{stream: stream, Reader: reader, Writer: writer}, nil
}

// Close releases writer, reader and stream in that order. All three are
// always attempted; the first error wins.
func (s *Session) Close() error {
	var err error
	if cerr := s.Writer.Close(); cerr != nil {
		err = cerr
	}
	if cerr := s.Reader.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if cerr := s.stream.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
