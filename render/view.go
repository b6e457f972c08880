package render

import (
	"fmt"
	"strings"

	"github.com/dotree-sh/dotree/common"
	"github.com/dotree-sh/dotree/engine"
	"github.com/dotree-sh/dotree/pretty"
)

// Terminal renders menus to stdout and wipes them again after each
// keypress, keeping count of the lines it wrote.
type Terminal struct {
	styles *Styles
	lines  int
}

func NewTerminal() *Terminal {
	return &Terminal{styles: NewStyles()}
}

func (it *Terminal) ShowMenu(title string, entries []engine.VisibleEntry, buffer string) {
	listing := MenuView(it.styles, title, entries, buffer)
	it.lines = strings.Count(listing, "\n")
	common.Stdout("%s", listing)
}

func (it *Terminal) Clear() {
	pretty.ClearLinesAbove(it.lines)
	it.lines = 0
}

// MenuView lays out one menu listing: title, one row per entry with
// the key right-aligned in its column, and the pending key buffer.
func MenuView(styles *Styles, title string, entries []engine.VisibleEntry, buffer string) string {
	result := strings.Builder{}
	result.WriteString(styles.Title.Render(title))
	result.WriteString("\n")
	width := 0
	for _, entry := range entries {
		if len(entry.Key) > width {
			width = len(entry.Key)
		}
	}
	for _, entry := range entries {
		padding := strings.Repeat(" ", width-len(entry.Key))
		result.WriteString(fmt.Sprintf("  %s%s  %s\n", padding, styles.Key.Render(entry.Key), styles.Label.Render(entry.Label)))
	}
	if buffer != "" {
		result.WriteString(styles.Buffer.Render(fmt.Sprintf("> %s", buffer)))
		result.WriteString("\n")
	}
	return result.String()
}
