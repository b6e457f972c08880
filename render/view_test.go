package render_test

import (
	"strings"
	"testing"

	"github.com/dotree-sh/dotree/engine"
	"github.com/dotree-sh/dotree/hamlet"
	"github.com/dotree-sh/dotree/render"
)

func TestMenuViewListsEntriesInOrder(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	entries := []engine.VisibleEntry{
		{Key: "g", Label: "git things"},
		{Key: "am", Label: `"git commit --amend"`},
	}
	sut := render.MenuView(render.NewStyles(), "root", entries, "a")
	lines := strings.Split(strings.TrimRight(sut, "\n"), "\n")
	must_be.Equal(4, len(lines))
	must_be.Contain("root", lines[0])
	must_be.Contain("g", lines[1])
	must_be.Contain("git things", lines[1])
	must_be.Contain("am", lines[2])
	must_be.Contain("> a", lines[3])
}

func TestMenuViewWithoutBufferSkipsPrompt(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	entries := []engine.VisibleEntry{{Key: "q", Label: `"clear"`}}
	sut := render.MenuView(render.NewStyles(), "root", entries, "")
	wont_be.Contain(">", sut)
	must_be.Equal(2, strings.Count(sut, "\n"))
}
