package dtree

import (
	"fmt"
	"strings"
)

// Config is the immutable semantic model built from a syntax tree:
// file settings, the menu table and the snippet table. Menus form a
// graph, not a tree — submenu entries reference other menus by name,
// so one menu may be reachable from several parents.
type Config struct {
	Settings Settings
	Menus    map[string]*Menu
	Snippets SnippetTable
}

// RootMenuName is the menu every session starts from.
const RootMenuName = "root"

type Settings struct {
	Shell         *ShellDef
	EchoByDefault bool
}

// ShellDef is a shell invocation split into the executable name and
// its leading arguments; the command string goes last.
type ShellDef struct {
	Name string
	Args []string
}

func (it *ShellDef) Argv(command string) []string {
	argv := make([]string, 0, len(it.Args)+2)
	argv = append(argv, it.Name)
	argv = append(argv, it.Args...)
	return append(argv, command)
}

func (it *ShellDef) String() string {
	return strings.Join(append([]string{it.Name}, it.Args...), " ")
}

type Menu struct {
	Name    string
	Title   string
	Keys    []string
	Entries map[string]Entry
}

// Entry is the tagged variant behind every menu key: a submenu
// reference, a quick command or a full command definition.
type Entry interface {
	isEntry()
}

type SubMenu struct {
	Target string
}

type QuickCommand struct {
	Name       string
	ToggleEcho bool
	Expr       StringExpr
}

type Command struct {
	Name       string
	ToggleEcho bool
	Expr       StringExpr
	Vars       []VarDef
	Shell      *ShellDef
	Settings   CommandSettings
}

func (*SubMenu) isEntry()      {}
func (*QuickCommand) isEntry() {}
func (*Command) isEntry()      {}

type CommandSettings struct {
	Repeat       bool
	IgnoreResult bool
}

type VarDef struct {
	Name    string
	Default *string
}

// Label renders the listing text for an entry: the submenu title, the
// command display name, or the command expression itself.
func (it *Config) Label(entry Entry) string {
	switch entry := entry.(type) {
	case *SubMenu:
		if menu, ok := it.Menus[entry.Target]; ok {
			return menu.Title
		}
		return entry.Target
	case *QuickCommand:
		if entry.Name != "" {
			return entry.Name
		}
		return entry.Expr.String()
	case *Command:
		if entry.Name != "" {
			return entry.Name
		}
		return entry.Expr.String()
	}
	return ""
}

type SnippetTable map[string]StringExpr

// StringExpr is an ordered concatenation of literal strings and
// snippet references.
type StringExpr []Element

type Element struct {
	Ref  bool
	Text string
}

func (it StringExpr) String() string {
	parts := make([]string, 0, len(it))
	for _, elem := range it {
		if elem.Ref {
			parts = append(parts, "$"+elem.Text)
		} else {
			parts = append(parts, fmt.Sprintf("%q", elem.Text))
		}
	}
	return strings.Join(parts, " + ")
}
