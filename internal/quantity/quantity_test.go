package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBaseCount(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"0", 0},
		{"7", 7},
		{"2500000", 2_500_000},
		{"10Mb", 10_000_000},
		{"1Gb", 1_000_000_000},
		{"3Gb", 3_000_000_000},
		// Suffixes are case-insensitive.
		{"1gb", 1_000_000_000},
		{"1GB", 1_000_000_000},
		{"5mB", 5_000_000},
		{"0Mb", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBaseCount(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBaseCountInvalid(t *testing.T) {
	inputs := []string{
		"",
		"abc",
		"-5",
		"-5Mb",
		"+5",
		"1.5Mb",
		"10Kb", // only Mb and Gb are supported
		"10Tb",
		"Mb",
		"10 Mb",
		"10Mbb",
		"99999999999999999999", // overflows int64
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseBaseCount(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFormat)
			if input != "" {
				assert.Contains(t, err.Error(), input)
			}
		})
	}
}
