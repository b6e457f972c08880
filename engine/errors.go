package engine

import "fmt"

// NoSuchKeyError is navigation input that matches no entry of the
// current menu, even as a prefix.
type NoSuchKeyError struct {
	Menu       string
	Input      string
	Suggestion string
}

func (it *NoSuchKeyError) Error() string {
	message := fmt.Sprintf("no entry matching %q in menu %q", it.Input, it.Menu)
	if it.Suggestion != "" {
		message = fmt.Sprintf("%s, did you mean %q?", message, it.Suggestion)
	}
	return message
}

// CommandFailure is a spawned command exiting non-zero without the
// ignore_result setting. The session's own exit status mirrors Code.
type CommandFailure struct {
	Command string
	Code    int
}

func (it *CommandFailure) Error() string {
	return fmt.Sprintf("command exited with status %d", it.Code)
}
