package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/treebench/treebench/internal/bench"
)

// Render writes results as a boxed table, one column per tree.
func Render(w io.Writer, title string, results []bench.Result) error {
	header := []string{""}
	for _, res := range results {
		header = append(header, FormatCount(res.Elements)+" Elements")
	}

	rows := []struct {
		label string
		cell  func(res bench.Result) string
	}{
		{"Insert Time", func(res bench.Result) string { return formatDuration(res.Timings.Insert) }},
		{"Size Time", func(res bench.Result) string { return formatDuration(res.Timings.Size) }},
		{"Size of Tree", func(res bench.Result) string { return strconv.Itoa(res.Stats.Size) }},
		{"Depth Time", func(res bench.Result) string { return formatDuration(res.Timings.Depth) }},
		{"Depth of Tree", func(res bench.Result) string { return strconv.Itoa(res.Stats.Depth) }},
		{"Search Time", func(res bench.Result) string { return formatDuration(res.Timings.Search) }},
	}

	data := pterm.TableData{header}
	for _, row := range rows {
		line := []string{row.label}
		for _, res := range results {
			line = append(line, row.cell(res))
		}
		data = append(data, line)
	}

	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(data).
		Srender()
	if err != nil {
		return fmt.Errorf("error rendering table: %w", err)
	}

	out := pterm.DefaultBox.
		WithTitle(title).
		WithTitleTopCenter().
		Sprint(table)

	_, err = fmt.Fprintln(w, out)
	return err
}

// FormatCount shortens an element count: 100, 1k, 2.5k, 10k, 1M.
func FormatCount(n int) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(float64(n)/1_000_000, 'f', -1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(float64(n)/1_000, 'f', -1, 64) + "k"
	default:
		return strconv.Itoa(n)
	}
}

func formatDuration(d time.Duration) string {
	return d.String()
}
