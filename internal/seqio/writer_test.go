package seqio

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/biogo/hts/sam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseSAMText returns the header and records of a SAM literal.
func parseSAMText(t *testing.T, text string) (*sam.Header, []*sam.Record) {
	t.Helper()
	r, err := sam.NewReader(strings.NewReader(text))
	require.NoError(t, err)

	var recs []*sam.Record
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		recs = append(recs, rec)
	}
	return r.Header(), recs
}

func TestRecordWriterSAMRoundTrip(t *testing.T) {
	header, recs := parseSAMText(t, samText)
	out := filepath.Join(t.TempDir(), "sampled.sam")

	w, err := NewRecordWriter(out, header)
	require.NoError(t, err)
	for _, rec := range recs {
		require.NoError(t, w.Write(rec))
	}
	require.NoError(t, w.Close())

	f, err := os.Open(out)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rr, err := NewRecordReader(f, FormatSAM, 1)
	require.NoError(t, err)
	defer func() { _ = rr.Close() }()

	require.Len(t, rr.Header().Refs(), 1)
	assert.Equal(t, "chr1", rr.Header().Refs()[0].Name())

	var names []string
	var totalBases int
	for {
		rec, err := rr.Read()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		names = append(names, rec.Name)
		totalBases += rec.Seq.Length
	}
	assert.Equal(t, []string{"r001", "r002"}, names)
	assert.Equal(t, 10, totalBases)
}

func TestRecordWriterBAMRoundTrip(t *testing.T) {
	header, recs := parseSAMText(t, samText)
	out := filepath.Join(t.TempDir(), "sampled.bam")

	w, err := NewRecordWriter(out, header)
	require.NoError(t, err)
	for _, rec := range recs {
		require.NoError(t, w.Write(rec))
	}
	require.NoError(t, w.Close())

	f, err := os.Open(out)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rr, err := NewRecordReader(f, DetectFormat(out), 1)
	require.NoError(t, err)
	defer func() { _ = rr.Close() }()

	var names []string
	for {
		rec, err := rr.Read()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		names = append(names, rec.Name)
	}
	assert.Equal(t, []string{"r001", "r002"}, names)
}

func TestRecordWriterCreateFailure(t *testing.T) {
	header, _ := parseSAMText(t, samText)

	_, err := NewRecordWriter(filepath.Join(t.TempDir(), "no", "such", "dir", "out.sam"), header)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}
