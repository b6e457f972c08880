package engine

import (
	"errors"

	"github.com/dotree-sh/dotree/common"
	"github.com/dotree-sh/dotree/dtree"
	"github.com/dotree-sh/dotree/pretty"
	"github.com/dotree-sh/dotree/shell"
)

// KeyReader delivers one typed key at a time, raw, without waiting
// for a newline.
type KeyReader interface {
	ReadKey() (rune, error)
}

// LineReader asks the user for a variable value. The default is shown
// in the prompt only; applying it on empty input is the engine's job.
type LineReader interface {
	ReadLine(name, defaultValue string) (string, error)
}

// Display renders the current menu before each interactive key read
// and wipes it again afterwards.
type Display interface {
	ShowMenu(title string, entries []VisibleEntry, buffer string)
	Clear()
}

// Invalid key policies for interactive sessions.
const (
	OnInvalidReset = "reset"
	OnInvalidExit  = "exit"
)

const (
	keyCtrlC     = rune(3)
	keyCtrlD     = rune(4)
	keyBackspace = rune(127)
)

// Session drives one navigation run over an immutable Config. All
// collaborators are injected; Keys being nil means there is no
// interactive fallback and scripted input must reach a command on its
// own, and Echo being nil means commands are announced with a plain
// highlighted line. Single threaded: key reads, prompts and command
// runs all block the session.
type Session struct {
	Config        *dtree.Config
	Dir           string
	Runner        shell.Runner
	Keys          KeyReader
	Lines         LineReader
	Display       Display
	Echo          func(command string)
	ShellOverride string
	OnInvalidKey  string
}

// Run replays the scripted key sequence, then keeps reading keys
// interactively when a key reader is available. Leftover scripted
// characters and the extra values feed command variables positionally.
func (it *Session) Run(keys string, values []string) error {
	menu := it.Config.Menus[dtree.RootMenuName]
	buffer := ""
	scripted := []rune(keys)
	interactive := it.Keys != nil

	for {
		state, entry := match(menu, buffer)
		switch state {
		case descend:
			menu = it.Config.Menus[entry.(*dtree.SubMenu).Target]
			buffer = ""

		case fire:
			positional, err := it.positionalValues(string(scripted), values)
			if err != nil {
				return err
			}
			scripted, values = nil, nil
			repeat, err := it.execute(entry, positional)
			if err != nil {
				return err
			}
			if repeat && interactive {
				common.Debug("Repeat is set, returning to menu %q.", menu.Name)
				buffer = ""
				continue
			}
			return nil

		case invalid:
			if interactive && it.OnInvalidKey != OnInvalidExit {
				pretty.Warning("No entry matching %q in menu %q.", buffer, menu.Name)
				scripted = nil
				buffer = ""
				menu = it.Config.Menus[dtree.RootMenuName]
				continue
			}
			return &NoSuchKeyError{Menu: menu.Name, Input: buffer, Suggestion: suggestion(menu, buffer)}

		case pending:
			if len(scripted) > 0 {
				buffer += string(scripted[0])
				scripted = scripted[1:]
				continue
			}
			if !interactive {
				return &NoSuchKeyError{Menu: menu.Name, Input: buffer, Suggestion: suggestion(menu, buffer)}
			}
			key, err := it.readKey(menu, buffer)
			if err != nil {
				return err
			}
			switch key {
			case keyCtrlC, keyCtrlD:
				return errors.New("session interrupted")
			case keyBackspace, '\b':
				if size := len([]rune(buffer)); size > 0 {
					buffer = string([]rune(buffer)[:size-1])
				}
			default:
				buffer += string(key)
			}
		}
	}
}

func (it *Session) readKey(menu *dtree.Menu, buffer string) (rune, error) {
	it.Display.ShowMenu(menu.Title, it.Visible(menu), buffer)
	key, err := it.Keys.ReadKey()
	it.Display.Clear()
	if err != nil {
		return 0, err
	}
	common.Trace("Read key %q.", key)
	return key, nil
}

// positionalValues merges the two positional sources: the leftover of
// the single scripted argument, shell-token split, followed by the
// separately passed CLI values, one variable each.
func (it *Session) positionalValues(leftover string, values []string) ([]string, error) {
	positional, err := shell.Split(leftover)
	if err != nil {
		return nil, err
	}
	return append(positional, values...), nil
}
