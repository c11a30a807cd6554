package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medgenlab/seqsample/internal/quantity"
)

const testSAM = "@HD\tVN:1.6\tSO:unsorted\n" +
	"@SQ\tSN:chr1\tLN:10000\n" +
	"r001\t0\tchr1\t100\t60\t4M\t*\t0\t0\tACGT\tIIII\n" +
	"r002\t4\t*\t0\t0\t*\t*\t0\t0\tACGTAC\tIIIIII\n"

func captureOutput(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	stdout = &bytes.Buffer{}
	stderr = &bytes.Buffer{}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	return stdout, stderr
}

func TestRootCommandStructure(t *testing.T) {
	assert.Contains(t, rootCmd.Use, "seqsample")
	assert.Contains(t, rootCmd.Use, "<input_url>")
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotNil(t, rootCmd.RunE)
	assert.NotNil(t, rootCmd.Args)
}

func TestRootCommandRequiresThreeArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"no args", []string{}, true},
		{"two args", []string{"in.bam", "out.bam"}, true},
		{"three args", []string{"in.bam", "out.bam", "10Mb"}, false},
		{"four args", []string{"in.bam", "out.bam", "10Mb", "extra"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rootCmd.Args(rootCmd, tt.args)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRootCommandFlags(t *testing.T) {
	for _, name := range []string{"config", "log-level", "log-format", "report-interval", "http-timeout"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "missing flag %s", name)
	}
}

func TestRunSampleInvalidTarget(t *testing.T) {
	captureOutput(t)

	err := runSample(rootCmd, []string{"in.sam", "out.sam", "ten"})

	require.Error(t, err)
	assert.ErrorIs(t, err, quantity.ErrInvalidFormat)
	assert.Contains(t, err.Error(), "invalid target base count")
}

func TestRunSampleEndToEnd(t *testing.T) {
	in := filepath.Join(t.TempDir(), "reads.sam")
	require.NoError(t, os.WriteFile(in, []byte(testSAM), 0o644))
	out := filepath.Join(t.TempDir(), "sampled.sam")
	stdout, stderr := captureOutput(t)

	err := runSample(rootCmd, []string{in, out, "6"})

	require.NoError(t, err)
	assert.Empty(t, stderr.String())
	// 4 bases still leave the total below 6, so the second record is pulled
	// and written whole.
	assert.Contains(t, stdout.String(), "Sampling complete. Total sampled bases: 10.")
	assert.FileExists(t, out)
}

func TestRunSampleFailureStillPrintsSummary(t *testing.T) {
	stdout, stderr := captureOutput(t)

	err := runSample(rootCmd, []string{
		filepath.Join(t.TempDir(), "absent.sam"),
		filepath.Join(t.TempDir(), "sampled.sam"),
		"100",
	})

	// The I/O failure is caught at this boundary: error text on stderr,
	// summary with the partial total on stdout, no error escapes.
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "Error:")
	assert.Contains(t, stdout.String(), "Sampling complete. Total sampled bases: 0.")
}

func TestRunSampleBadConfigFile(t *testing.T) {
	captureOutput(t)
	originalCfgFile := cfgFile
	defer func() { cfgFile = originalCfgFile }()
	cfgFile = filepath.Join(t.TempDir(), "absent.yaml")

	err := runSample(rootCmd, []string{"in.sam", "out.sam", "100"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}
