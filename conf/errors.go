package conf

import (
	"fmt"
	"strings"
)

// SyntaxError reports the furthest position the parser reached before
// giving up, with a description of what it expected there.
type SyntaxError struct {
	Source   string
	Pos      Position
	Expected string
}

func (it *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: expected %s", it.Pos.Line, it.Pos.Column, it.Expected)
}

// Snippet renders the offending source line with a caret under the
// error column, for terminal display.
func (it *SyntaxError) Snippet() string {
	lines := strings.Split(it.Source, "\n")
	if it.Pos.Line < 1 || it.Pos.Line > len(lines) {
		return ""
	}
	line := strings.ReplaceAll(lines[it.Pos.Line-1], "\t", " ")
	caret := strings.Repeat(" ", it.Pos.Column-1) + "^"
	return fmt.Sprintf("%s\n%s", line, caret)
}
