package pretty

import (
	"github.com/dotree-sh/dotree/common"
)

// Cursor control using CSI escape sequences. Every function checks the
// Interactive flag before emitting anything, so piped output stays clean.

func MoveUp(n int) {
	if !Interactive || n <= 0 {
		return
	}
	common.Stdout("%s", csif("%dA", n))
}

func ClearLine() {
	if !Interactive {
		return
	}
	common.Stdout("%s", csif("2K"))
}

// ClearLinesAbove wipes the n lines above the cursor, leaving the
// cursor at the start of the first wiped line.
func ClearLinesAbove(n int) {
	for i := 0; i < n; i++ {
		MoveUp(1)
		ClearLine()
	}
	if Interactive && n > 0 {
		common.Stdout("\r")
	}
}

func HideCursor() {
	if !Interactive {
		return
	}
	common.Stdout("%s", csif("?25l"))
}

func ShowCursor() {
	if !Interactive {
		return
	}
	common.Stdout("%s", csif("?25h"))
}
