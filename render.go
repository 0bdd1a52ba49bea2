package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// createProgressBar draws barLength cells, filling round_down of the
// percentage. Out-of-range percentages are clamped to an empty or full bar.
func createProgressBar(barLength, fillPercentage int) string {
	filled := barLength * fillPercentage / 100
	if filled < 0 {
		filled = 0
	}
	if filled > barLength {
		filled = barLength
	}
	var b strings.Builder
	b.Grow(barLength + len(BarStart) + len(BarEnd))
	b.WriteString(BarStart)
	b.WriteString(strings.Repeat(BarFull, filled))
	b.WriteString(strings.Repeat(BarEmpty, barLength-filled))
	b.WriteString(BarEnd)
	return b.String()
}

// barPercent is the whole percentage the bar is drawn from, truncated
// and clamped to [0, 100] so NaN and overflow never reach the integer maths.
func barPercent(c Capacity) int {
	pct := c.Percent()
	switch {
	case math.IsNaN(pct) || pct <= 0:
		return 0
	case pct >= 100:
		return 100
	}
	return int(pct)
}

func (p *Program) buildCapacityInfo(c Capacity) string {
	percent := barPercent(c)
	bar := createProgressBar(p.Config.BarLength, percent)
	p.DebugEcho("progress bar", "fillPercentage", percent, "filledBars", strings.Count(bar, BarFull))

	return fmt.Sprintf("Cargo: %dm³ / %dm³", int(c.Current), int(c.Max)) + "\n" +
		bar + "\n" +
		fmt.Sprintf("%d m³ free", int(c.Free()))
}

func buildTopItemsInfo(items []StackedItem) string {
	noun := "items"
	if len(items) == 1 {
		noun = "item"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Top %d %s in cargo:", len(items), noun)
	for _, it := range items {
		fmt.Fprintf(&b, "\n%s – %s", it.Type.SubtypeID, humanize.Comma(it.Quantity))
	}
	return b.String()
}

func loadStateFor(percent float64) LoadState {
	switch {
	case percent > HighLoadPercent:
		return LoadHigh
	case percent > MediumLoadPercent:
		return LoadMedium
	default:
		return LoadLow
	}
}

func displayInCockpit(s TextSurface, text string, state LoadState) {
	s.SetContentType(ContentTextAndImage)
	s.WriteText(text)
	s.SetFontColor(state.Color())
}
