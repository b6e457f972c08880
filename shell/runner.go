package shell

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/dotree-sh/dotree/common"
)

// Runner spawns one external process with inherited stdio and reports
// its exit status. The child owns its own signal semantics; a running
// command is never intercepted or retried here.
type Runner interface {
	Run(argv []string, directory string, environment map[string]string) (int, error)
}

func New() Runner {
	return processRunner{}
}

type processRunner struct{}

func (processRunner) Run(argv []string, directory string, environment map[string]string) (int, error) {
	common.Debug("Running %v in %q with %d extra variables.", argv, directory, len(environment))
	command := exec.Command(argv[0], argv[1:]...)
	command.Dir = directory
	env := os.Environ()
	for name, value := range environment {
		env = append(env, fmt.Sprintf("%s=%s", name, value))
	}
	command.Env = env
	command.Stdin = os.Stdin
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr
	err := command.Run()
	if err == nil {
		return 0, nil
	}
	exit := &exec.ExitError{}
	if errors.As(err, &exit) {
		return exit.ExitCode(), nil
	}
	return -1, err
}
