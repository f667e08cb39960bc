package style

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func NewDefaultTableStyle() *table.Style {
	style := table.Style{
		Name:    "StyleRounded",
		Box:     table.StyleBoxRounded,
		Format:  table.FormatOptionsDefault,
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsDefault,
		Title:   table.TitleOptionsDefault,
		Color:   table.ColorOptionsDefault,
	}
	style.Color.Header = text.Colors{text.FgHiCyan}
	return &style
}

// NewPlainTableStyle renders without colors, for redirected output.
func NewPlainTableStyle() *table.Style {
	style := *NewDefaultTableStyle()
	style.Color = table.ColorOptionsDefault
	return &style
}

// NewKeyValueTable creates a two-column table writing to w.
func NewKeyValueTable(w io.Writer, title string, colored bool) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	if colored {
		t.SetStyle(*NewDefaultTableStyle())
	} else {
		t.SetStyle(*NewPlainTableStyle())
	}
	t.AppendHeader(table.Row{"Field", "Value"})
	return t
}
