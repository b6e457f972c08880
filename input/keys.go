package input

import (
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/term"
)

// TerminalKeys reads single keypresses from stdin in raw mode, one
// call per key, restoring the terminal state in between. Control
// characters come through as their raw rune values for the engine to
// interpret.
type TerminalKeys struct{}

func Keys() *TerminalKeys {
	return &TerminalKeys{}
}

func (it *TerminalKeys) ReadKey() (rune, error) {
	descriptor := int(os.Stdin.Fd())
	state, err := term.MakeRaw(descriptor)
	if err != nil {
		return 0, fmt.Errorf("cannot enter raw mode: %w", err)
	}
	defer term.Restore(descriptor, state)

	buffer := make([]byte, 0, utf8.UTFMax)
	single := make([]byte, 1)
	for {
		_, err := os.Stdin.Read(single)
		if err != nil {
			return 0, err
		}
		buffer = append(buffer, single[0])
		if utf8.FullRune(buffer) {
			key, _ := utf8.DecodeRune(buffer)
			return key, nil
		}
		if len(buffer) >= utf8.UTFMax {
			return utf8.RuneError, nil
		}
	}
}
