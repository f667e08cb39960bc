package style

import (
	"strconv"

	"github.com/fatih/color"
)

var (
	UpColor   = color.New(color.FgGreen)
	DownColor = color.New(color.FgRed)
	FlatColor = color.New(color.Reset)
)

// TrendColor picks the color of a value that moved by delta.
func TrendColor(delta float64) *color.Color {
	switch {
	case delta > 0:
		return UpColor
	case delta < 0:
		return DownColor
	}
	return FlatColor
}

// TrendSignString formats delta with an explicit sign.
func TrendSignString(delta float64, prec int) string {
	s := strconv.FormatFloat(delta, 'f', prec, 64)
	if delta > 0 {
		return "+" + s
	}
	return s
}
