package dtree

import (
	"strings"

	"github.com/dotree-sh/dotree/conf"
)

// Build transforms a syntax tree into the semantic Config. Pure: the
// tree stays untouched and the result owns all of its data. Every
// symbol reference is validated here, so navigation never meets a
// dangling name, and snippet cycles are caught before any resolution
// could recurse forever.
func Build(tree *conf.Tree) (*Config, error) {
	config := &Config{
		Settings: Settings{EchoByDefault: true},
		Menus:    map[string]*Menu{},
		Snippets: SnippetTable{},
	}
	if tree.Shell != nil {
		config.Settings.Shell = shellDef(tree.Shell)
	}
	if tree.Echo != nil {
		config.Settings.EchoByDefault = *tree.Echo
	}

	for _, snippet := range tree.Snippets {
		if _, ok := config.Snippets[snippet.Name]; ok {
			return nil, modelError("", snippet.Name, "duplicate snippet: %s", snippet.Name)
		}
		config.Snippets[snippet.Name] = expression(snippet.Expr)
	}

	for _, node := range tree.Menus {
		if _, ok := config.Menus[node.Name]; ok {
			return nil, modelError("", node.Name, "duplicate menu: %s", node.Name)
		}
		menu, err := buildMenu(node)
		if err != nil {
			return nil, err
		}
		config.Menus[node.Name] = menu
	}

	if err := validate(config); err != nil {
		return nil, err
	}
	return config, nil
}

func buildMenu(node *conf.MenuNode) (*Menu, error) {
	menu := &Menu{
		Name:    node.Name,
		Title:   node.Name,
		Entries: map[string]Entry{},
	}
	if node.HasTitle {
		menu.Title = node.Title
	}
	for _, entry := range node.Entries {
		if _, ok := menu.Entries[entry.Key]; ok {
			return nil, modelError(node.Name, entry.Key, "duplicate key %q", entry.Key)
		}
		for _, previous := range menu.Keys {
			if strings.HasPrefix(entry.Key, previous) || strings.HasPrefix(previous, entry.Key) {
				return nil, modelError(node.Name, entry.Key, "keys %q and %q are ambiguous, one is a prefix of the other", previous, entry.Key)
			}
		}
		built, err := buildEntry(node.Name, entry)
		if err != nil {
			return nil, err
		}
		menu.Keys = append(menu.Keys, entry.Key)
		menu.Entries[entry.Key] = built
	}
	return menu, nil
}

func buildEntry(menuName string, entry *conf.EntryNode) (Entry, error) {
	if entry.Submenu != "" {
		return &SubMenu{Target: entry.Submenu}, nil
	}
	node := entry.Command
	if !node.Full {
		return &QuickCommand{
			Name:       node.Name,
			ToggleEcho: node.ToggleEcho,
			Expr:       expression(node.Expr),
		}, nil
	}
	command := &Command{
		Name:       node.Name,
		ToggleEcho: node.ToggleEcho,
		Expr:       expression(node.Expr),
		Shell:      shellDef(node.Shell),
	}
	for _, setting := range node.Settings {
		switch setting.Name {
		case "repeat":
			command.Settings.Repeat = true
		case "ignore_result":
			command.Settings.IgnoreResult = true
		default:
			return nil, modelError(menuName, setting.Name, "invalid command setting: %s", setting.Name)
		}
	}
	for _, variable := range node.Vars {
		command.Vars = append(command.Vars, VarDef{Name: variable.Name, Default: variable.Default})
	}
	return command, nil
}

func shellDef(node *conf.ShellNode) *ShellDef {
	if node == nil {
		return nil
	}
	return &ShellDef{Name: node.Words[0], Args: node.Words[1:]}
}

func expression(node conf.ExprNode) StringExpr {
	expr := make(StringExpr, 0, len(node))
	for _, elem := range node {
		expr = append(expr, Element{Ref: elem.Ref, Text: elem.Text})
	}
	return expr
}

func validate(config *Config) error {
	if _, ok := config.Menus[RootMenuName]; !ok {
		return modelError("", RootMenuName, "undefined menu: %s", RootMenuName)
	}
	for name, snippet := range config.Snippets {
		if _, err := snippet.Resolve(config.Snippets); err != nil {
			return modelError("", name, "in snippet %q: %v", name, err)
		}
	}
	for name, menu := range config.Menus {
		for _, key := range menu.Keys {
			switch entry := menu.Entries[key].(type) {
			case *SubMenu:
				if _, ok := config.Menus[entry.Target]; !ok {
					return modelError(name, entry.Target, "undefined menu: %s (referenced by key %q)", entry.Target, key)
				}
			case *QuickCommand:
				if _, err := entry.Expr.Resolve(config.Snippets); err != nil {
					return modelError(name, key, "in command at key %q: %v", key, err)
				}
			case *Command:
				if _, err := entry.Expr.Resolve(config.Snippets); err != nil {
					return modelError(name, key, "in command at key %q: %v", key, err)
				}
			}
		}
	}
	return nil
}
