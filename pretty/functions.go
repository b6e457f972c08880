package pretty

import (
	"fmt"

	"github.com/dotree-sh/dotree/common"
)

func csi(value string) string {
	return fmt.Sprintf("\033[%s", value)
}

func csif(form string, details ...interface{}) string {
	return csi(fmt.Sprintf(form, details...))
}

// Guard watches that the condition holds. If it does not, the full
// process unwinds with given exit code and message, thru the
// ExitCode panic protocol that main recovers.
func Guard(condition bool, code int, format string, rest ...interface{}) {
	if !condition {
		Exit(code, format, rest...)
	}
}

func Exit(code int, format string, rest ...interface{}) {
	message := fmt.Sprintf(format, rest...)
	if code == 0 {
		message = fmt.Sprintf("%s%s%s", Green, message, Reset)
	} else {
		message = fmt.Sprintf("%s%s%s", Red, message, Reset)
	}
	panic(common.ExitCode{Code: code, Message: message})
}

func Warning(format string, rest ...interface{}) {
	common.Log("%sWarning: %s%s", Yellow, fmt.Sprintf(format, rest...), Reset)
}

func Highlight(format string, rest ...interface{}) {
	common.Stdout("%s%s%s\n", Cyan, fmt.Sprintf(format, rest...), Reset)
}
