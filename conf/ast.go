package conf

// Syntax tree for the ".dt" configuration language. The tree is a
// faithful shape of the source text; name resolution and validation
// happen later, in the dtree package.

type Position struct {
	Line   int
	Column int
	Offset int
}

type Tree struct {
	Shell    *ShellNode
	Echo     *bool
	Menus    []*MenuNode
	Snippets []*SnippetNode
}

// ShellNode is a "shell" directive, either file level or inside a
// command body: the bare words and strings after the keyword.
type ShellNode struct {
	Words []string
	Pos   Position
}

type MenuNode struct {
	Title    string
	HasTitle bool
	Name     string
	Entries  []*EntryNode
	Pos      Position
}

// EntryNode is one keyed line in a menu. Exactly one of Submenu or
// Command is set.
type EntryNode struct {
	Key     string
	Submenu string
	Command *CommandNode
	Pos     Position
}

// CommandNode covers both quick commands and full "cmd { ... }"
// definitions; for quick commands the Settings, Vars and Shell parts
// stay empty and Full is false.
type CommandNode struct {
	Full       bool
	Name       string
	HasName    bool
	ToggleEcho bool
	Settings   []SettingNode
	Vars       []VarNode
	Shell      *ShellNode
	Expr       ExprNode
}

type SettingNode struct {
	Name string
	Pos  Position
}

type VarNode struct {
	Name    string
	Default *string
}

// ExprNode is a string expression: literal and snippet-reference
// elements joined by "+" in the source.
type ExprNode []ExprElem

type ExprElem struct {
	Ref  bool
	Text string
	Pos  Position
}

type SnippetNode struct {
	Name string
	Expr ExprNode
	Pos  Position
}
