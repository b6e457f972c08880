package engine

import (
	"fmt"

	"github.com/dotree-sh/dotree/common"
	"github.com/dotree-sh/dotree/dtree"
	"github.com/dotree-sh/dotree/pretty"
	"github.com/dotree-sh/dotree/shell"
)

// execute resolves variables, expands the command expression and runs
// it through the effective shell. Returns whether the session should
// return to the containing menu (the repeat setting).
func (it *Session) execute(entry dtree.Entry, positional []string) (bool, error) {
	var (
		expr     dtree.StringExpr
		vars     []dtree.VarDef
		override *dtree.ShellDef
		settings dtree.CommandSettings
		toggle   bool
	)
	switch entry := entry.(type) {
	case *dtree.QuickCommand:
		expr = entry.Expr
		toggle = entry.ToggleEcho
	case *dtree.Command:
		expr = entry.Expr
		vars = entry.Vars
		override = entry.Shell
		settings = entry.Settings
		toggle = entry.ToggleEcho
	default:
		return false, fmt.Errorf("cannot execute entry of type %T", entry)
	}

	environment, err := it.resolveVariables(vars, positional)
	if err != nil {
		return false, err
	}

	flat, err := expr.Resolve(it.Config.Snippets)
	if err != nil {
		return false, err
	}

	effective, err := shell.Effective(override, it.Config.Settings.Shell, it.ShellOverride)
	if err != nil {
		return false, err
	}

	if it.Config.Settings.EchoByDefault != toggle {
		it.echo(flat)
	}

	code, err := it.Runner.Run(effective.Argv(flat), it.Dir, environment)
	if err != nil {
		return false, err
	}
	common.Debug("Command exited with status %d.", code)
	if code != 0 && !settings.IgnoreResult {
		return false, &CommandFailure{Command: flat, Code: code}
	}
	return settings.Repeat, nil
}

func (it *Session) echo(command string) {
	if it.Echo != nil {
		it.Echo(command)
		return
	}
	pretty.Highlight("%s", command)
}

// resolveVariables binds declared variables in declaration order:
// positional values first, one each, then interactive prompts. An
// empty interactive reply falls back to the declared default; an
// explicitly positional empty string never does.
func (it *Session) resolveVariables(vars []dtree.VarDef, positional []string) (map[string]string, error) {
	environment := map[string]string{}
	for _, variable := range vars {
		if len(positional) > 0 {
			environment[variable.Name] = positional[0]
			positional = positional[1:]
			continue
		}
		if it.Lines == nil {
			return nil, fmt.Errorf("missing value for variable %q and no way to ask for one", variable.Name)
		}
		fallback := ""
		if variable.Default != nil {
			fallback = *variable.Default
		}
		reply, err := it.Lines.ReadLine(variable.Name, fallback)
		if err != nil {
			return nil, err
		}
		if reply == "" && variable.Default != nil {
			reply = *variable.Default
		}
		environment[variable.Name] = reply
	}
	return environment, nil
}
