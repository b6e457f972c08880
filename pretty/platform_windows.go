//go:build windows

package pretty

import (
	"os"

	"golang.org/x/sys/windows"
)

func localSetup(interactive bool) {
	if Colorless {
		Disabled = true
		return
	}
	stdout := windows.Handle(os.Stdout.Fd())
	var mode uint32
	err := windows.GetConsoleMode(stdout, &mode)
	if err != nil {
		Disabled = true
		return
	}
	mode |= windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
	err = windows.SetConsoleMode(stdout, mode)
	if err != nil {
		Disabled = true
	}
}
