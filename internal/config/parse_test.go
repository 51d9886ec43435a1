package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseCount(t *testing.T) {
	tcs := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{"plain", "100", 100, false},
		{"with spaces", " 250 ", 250, false},
		{"thousands", "1k", 1000, false},
		{"upper k", "10K", 10000, false},
		{"fractional thousands", "2.5k", 2500, false},
		{"millions", "1M", 1_000_000, false},
		{"empty", "", 0, true},
		{"zero", "0", 0, true},
		{"negative", "-5", 0, true},
		{"fraction", "1.5", 0, true},
		{"not whole", "1.0005k", 0, true},
		{"too large", "1000M", 0, true},
		{"garbage", "lots", 0, true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			n, err := ParseCount(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, n)
		})
	}
}

func TestParseCounts(t *testing.T) {
	counts, err := ParseCounts([]string{"100", "1k", "10k"})
	assert.NoError(t, err)
	assert.Equal(t, []int{100, 1000, 10000}, counts)

	_, err = ParseCounts([]string{"100", "nope"})
	assert.Error(t, err)
}

func TestParseFloatFn(t *testing.T) {
	parse := parseFloatFn(checkFinite)

	f, err := parse(int64(3))
	assert.NoError(t, err)
	assert.Equal(t, 3.0, f)

	f, err = parse(2.5)
	assert.NoError(t, err)
	assert.Equal(t, 2.5, f)

	_, err = parse("3")
	assert.Error(t, err)
}

func TestParseUint64Fn(t *testing.T) {
	parse := parseUint64Fn()

	n, err := parse(int64(42))
	assert.NoError(t, err)
	assert.Equal(t, uint64(42), n)

	_, err = parse(int64(-1))
	assert.Error(t, err)

	_, err = parse(1.5)
	assert.Error(t, err)
}

func TestMustParseLogLevel(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, MustParseLogLevel("warn"))
	assert.Panics(t, func() { MustParseLogLevel("loud") })
}
