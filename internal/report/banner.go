package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

// BannerInfo is what the start-up banner lists.
type BannerInfo struct {
	Sizes    []int
	Min, Max float64
	Seed     uint64
	Sync     bool
}

// PrintBanner writes the program name and the run settings to w.
func PrintBanner(w io.Writer, info BannerInfo) error {
	tree := putils.LettersFromStringWithStyle("Tree", pterm.NewStyle(pterm.FgGreen))
	bench := putils.LettersFromStringWithStyle("Bench", pterm.NewStyle(pterm.FgLightMagenta))

	big, err := pterm.DefaultBigText.WithLetters(tree, bench).Srender()
	if err != nil {
		return err
	}

	sizes := make([]string, 0, len(info.Sizes))
	for _, n := range info.Sizes {
		sizes = append(sizes, FormatCount(n))
	}

	seed := "random"
	if info.Seed != 0 {
		seed = strconv.FormatUint(info.Seed, 10)
	}

	list, err := pterm.DefaultBulletList.WithItems([]pterm.BulletListItem{
		{Level: 0, Text: "SIZES  : " + strings.Join(sizes, ", ")},
		{Level: 0, Text: "RANGE  : [" + formatFloat(info.Min) + ", " + formatFloat(info.Max) + ")"},
		{Level: 0, Text: "SEED   : " + seed},
		{Level: 0, Text: "SYNC   : " + strconv.FormatBool(info.Sync)},
	}).Srender()
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, big+list+"\n")
	return err
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
