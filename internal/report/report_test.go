package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/treebench/treebench/internal/bench"
)

func TestMain(m *testing.M) {
	pterm.DisableColor()
	m.Run()
}

func TestFormatCount(t *testing.T) {
	tcs := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{100, "100"},
		{999, "999"},
		{1000, "1k"},
		{2500, "2.5k"},
		{10000, "10k"},
		{1_000_000, "1M"},
		{1_500_000, "1.5M"},
	}

	for _, tc := range tcs {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatCount(tc.input))
		})
	}
}

func TestRender(t *testing.T) {
	results := []bench.Result{
		{
			Elements: 100,
			Stats:    bench.Stats{Size: 99, Depth: 13},
			Timings: bench.Timings{
				Insert: 1200 * time.Nanosecond,
				Size:   3 * time.Microsecond,
				Depth:  4 * time.Microsecond,
				Search: 800 * time.Nanosecond,
			},
		},
		{
			Elements: 10000,
			Stats:    bench.Stats{Size: 9999, Depth: 31},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "Unsorted Trees", results))
	out := buf.String()

	for _, want := range []string{
		"Unsorted Trees",
		"100 Elements",
		"10k Elements",
		"Insert Time",
		"Size Time",
		"Size of Tree",
		"Depth Time",
		"Depth of Tree",
		"Search Time",
		"9999",
		"31",
		"1.2µs",
		"800ns",
	} {
		assert.Contains(t, out, want)
	}
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	err := PrintBanner(&buf, BannerInfo{
		Sizes: []int{100, 1000},
		Min:   0,
		Max:   1000,
		Seed:  0,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "100, 1k")
	assert.Contains(t, out, "[0, 1000)")
	assert.Contains(t, out, "random")
	assert.Contains(t, out, "false")
}
