package shell

import (
	"fmt"

	"github.com/dotree-sh/dotree/dtree"
	"github.com/google/shlex"
)

// Effective resolves which shell runs a command. Precedence: the
// command's own "shell" directive, then the file level one, then the
// DT_DEFAULT_SHELL override, then the platform default.
func Effective(command, file *dtree.ShellDef, override string) (*dtree.ShellDef, error) {
	if command != nil {
		return command, nil
	}
	if file != nil {
		return file, nil
	}
	if override != "" {
		return Parse(override)
	}
	return platformDefault(), nil
}

// Parse tokenizes one shell invocation string, quoting honored.
func Parse(invocation string) (*dtree.ShellDef, error) {
	words, err := shlex.Split(invocation)
	if err != nil {
		return nil, fmt.Errorf("invalid shell invocation %q: %w", invocation, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("empty shell invocation %q", invocation)
	}
	return &dtree.ShellDef{Name: words[0], Args: words[1:]}, nil
}

// Split tokenizes leftover command line text into positional variable
// values, shell quoting honored.
func Split(text string) ([]string, error) {
	return shlex.Split(text)
}
