package conf

import (
	"fmt"
	"strings"
)

// Parse turns configuration source text into a syntax tree, or fails
// with a *SyntaxError at the first malformed construct. The parser is
// a scannerless recursive descent over the grammar: optional file
// settings, then one or more menu and snippet declarations.
func Parse(src string) (*Tree, error) {
	p := &parser{src: src}
	tree := &Tree{}

	for {
		p.skipAll()
		if p.keyword("shell") {
			p.pos += len("shell")
			node, err := p.parseShellWords()
			if err != nil {
				return nil, err
			}
			tree.Shell = node
			continue
		}
		if p.keyword("echo") {
			p.pos += len("echo")
			value, err := p.parseEchoValue()
			if err != nil {
				return nil, err
			}
			tree.Echo = &value
			continue
		}
		break
	}

	for {
		p.skipAll()
		if p.eof() {
			break
		}
		start := p.position(p.pos)
		switch {
		case p.keyword("menu"):
			p.pos += len("menu")
			menu, err := p.parseMenu(start)
			if err != nil {
				return nil, err
			}
			tree.Menus = append(tree.Menus, menu)
		case p.keyword("snippet"):
			p.pos += len("snippet")
			snippet, err := p.parseSnippet(start)
			if err != nil {
				return nil, err
			}
			tree.Snippets = append(tree.Snippets, snippet)
		default:
			return nil, p.fail(`"menu" or "snippet"`)
		}
	}

	if len(tree.Menus)+len(tree.Snippets) == 0 {
		return nil, p.fail(`"menu" or "snippet"`)
	}
	return tree, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) position(offset int) Position {
	line, column := 1, 1
	for i := 0; i < offset && i < len(p.src); i++ {
		if p.src[i] == '\n' {
			line += 1
			column = 1
		} else {
			column += 1
		}
	}
	return Position{Line: line, Column: column, Offset: offset}
}

func (p *parser) fail(expected string) error {
	return &SyntaxError{Source: p.src, Pos: p.position(p.pos), Expected: expected}
}

func (p *parser) skipComment() {
	for !p.eof() && p.peek() != '\n' {
		p.pos += 1
	}
}

// skipSpace passes over spaces, tabs and comments, stopping at
// newlines. Newlines terminate shell directives, settings lists and
// string expressions.
func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.peek() {
		case ' ', '\t', '\r':
			p.pos += 1
		case '#':
			p.skipComment()
		default:
			return
		}
	}
}

// skipAll passes over all whitespace including newlines.
func (p *parser) skipAll() {
	for !p.eof() {
		switch p.peek() {
		case ' ', '\t', '\r', '\n':
			p.pos += 1
		case '#':
			p.skipComment()
		default:
			return
		}
	}
}

func isSymbolChar(c byte) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func (p *parser) readSymbol() (string, bool) {
	start := p.pos
	for !p.eof() && isSymbolChar(p.peek()) {
		p.pos += 1
	}
	return p.src[start:p.pos], p.pos > start
}

// keyword reports whether the given word starts at the current
// position as a full symbol, without consuming it.
func (p *parser) keyword(word string) bool {
	end := p.pos + len(word)
	if end > len(p.src) || p.src[p.pos:end] != word {
		return false
	}
	return end == len(p.src) || !isSymbolChar(p.src[end])
}

// keywordThenBrace reports whether the given keyword is followed by
// "{", used to tell "cmd { ... }" apart from a submenu reference to a
// menu that happens to be named "cmd".
func (p *parser) keywordThenBrace(word string) bool {
	if !p.keyword(word) {
		return false
	}
	for i := p.pos + len(word); i < len(p.src); i++ {
		switch p.src[i] {
		case ' ', '\t', '\r', '\n':
			continue
		default:
			return p.src[i] == '{'
		}
	}
	return false
}

func (p *parser) atString() bool {
	c := p.peek()
	return c == '"' || c == '!'
}

func (p *parser) parseString() (string, error) {
	switch p.peek() {
	case '"':
		return p.parseQuoted()
	case '!':
		return p.parseProtected()
	}
	return "", p.fail("a string")
}

func (p *parser) parseQuoted() (string, error) {
	p.pos += 1
	result := strings.Builder{}
	for !p.eof() {
		c := p.peek()
		if c == '\\' && p.pos+1 < len(p.src) {
			next := p.src[p.pos+1]
			if next == '"' || next == '\\' {
				result.WriteByte(next)
				p.pos += 2
				continue
			}
		}
		if c == '"' {
			p.pos += 1
			return result.String(), nil
		}
		result.WriteByte(c)
		p.pos += 1
	}
	return "", p.fail(`closing '"'`)
}

// parseProtected reads a marker-delimited string: the marker is
// whatever stands between the opening "!" and the first '"', and the
// content then runs verbatim until the exact sequence '"<marker>!'.
func (p *parser) parseProtected() (string, error) {
	p.pos += 1
	markStart := p.pos
	for !p.eof() && p.peek() != '"' && p.peek() != '\n' {
		p.pos += 1
	}
	if p.eof() || p.peek() != '"' {
		return "", p.fail(`'"' opening a protected string`)
	}
	marker := p.src[markStart:p.pos]
	p.pos += 1
	closing := `"` + marker + `!`
	end := strings.Index(p.src[p.pos:], closing)
	if end < 0 {
		return "", p.fail(fmt.Sprintf("closing %q", closing))
	}
	content := p.src[p.pos : p.pos+end]
	p.pos += end + len(closing)
	return content, nil
}

func (p *parser) parseShellWords() (*ShellNode, error) {
	node := &ShellNode{Pos: p.position(p.pos)}
	for {
		p.skipSpace()
		if p.eof() || p.peek() == '\n' || p.peek() == '}' {
			break
		}
		if p.atString() {
			word, err := p.parseString()
			if err != nil {
				return nil, err
			}
			node.Words = append(node.Words, word)
			continue
		}
		word := p.readWord()
		if word == "" {
			return nil, p.fail("a shell word")
		}
		node.Words = append(node.Words, word)
	}
	if len(node.Words) == 0 {
		return nil, p.fail("a shell word")
	}
	return node, nil
}

func (p *parser) readWord() string {
	start := p.pos
	for !p.eof() {
		switch p.peek() {
		case ' ', '\t', '\r', '\n', '#', '}':
			return p.src[start:p.pos]
		}
		p.pos += 1
	}
	return p.src[start:p.pos]
}

func (p *parser) parseEchoValue() (bool, error) {
	p.skipSpace()
	value, ok := p.readSymbol()
	if !ok || (value != "on" && value != "off") {
		return false, p.fail(`"on" or "off"`)
	}
	return value == "on", nil
}

func (p *parser) parseMenu(pos Position) (*MenuNode, error) {
	menu := &MenuNode{Pos: pos}
	p.skipSpace()
	if p.atString() {
		title, err := p.parseString()
		if err != nil {
			return nil, err
		}
		menu.Title = title
		menu.HasTitle = true
		p.skipSpace()
	}
	name, ok := p.readSymbol()
	if !ok {
		return nil, p.fail("a menu name")
	}
	menu.Name = name
	p.skipAll()
	if p.peek() != '{' {
		return nil, p.fail(`"{"`)
	}
	p.pos += 1
	for {
		p.skipAll()
		if p.eof() {
			return nil, p.fail(`"}"`)
		}
		if p.peek() == '}' {
			p.pos += 1
			break
		}
		entry, err := p.parseEntry()
		if err != nil {
			return nil, err
		}
		menu.Entries = append(menu.Entries, entry)
	}
	if len(menu.Entries) == 0 {
		return nil, p.fail("at least one menu entry")
	}
	return menu, nil
}

func (p *parser) readKeydef() string {
	start := p.pos
	for !p.eof() {
		switch p.peek() {
		case ':', ' ', '\t', '\r', '\n':
			return p.src[start:p.pos]
		}
		p.pos += 1
	}
	return p.src[start:p.pos]
}

func (p *parser) parseEntry() (*EntryNode, error) {
	entry := &EntryNode{Pos: p.position(p.pos)}
	key := p.readKeydef()
	if key == "" {
		return nil, p.fail("a key definition")
	}
	entry.Key = key
	p.skipSpace()
	if p.peek() != ':' {
		return nil, p.fail(`":"`)
	}
	p.pos += 1
	p.skipSpace()
	switch {
	case p.keywordThenBrace("cmd"):
		command, err := p.parseAnonCommand()
		if err != nil {
			return nil, err
		}
		entry.Command = command
	case p.atString() || p.peek() == '@' || p.peek() == '$':
		command, err := p.parseQuickCommand()
		if err != nil {
			return nil, err
		}
		entry.Command = command
	default:
		name, ok := p.readSymbol()
		if !ok {
			return nil, p.fail("a command or a submenu reference")
		}
		entry.Submenu = name
	}
	return entry, nil
}

func (p *parser) parseAnonCommand() (*CommandNode, error) {
	p.pos += len("cmd")
	p.skipAll()
	if p.peek() != '{' {
		return nil, p.fail(`"{"`)
	}
	p.pos += 1
	command := &CommandNode{Full: true}
	for {
		p.skipAll()
		switch {
		case p.keyword("set"):
			p.pos += len("set")
			settings, err := p.parseSettingList()
			if err != nil {
				return nil, err
			}
			command.Settings = append(command.Settings, settings...)
		case p.keyword("vars"):
			p.pos += len("vars")
			vars, err := p.parseVarList()
			if err != nil {
				return nil, err
			}
			command.Vars = append(command.Vars, vars...)
		case p.keyword("shell"):
			p.pos += len("shell")
			node, err := p.parseShellWords()
			if err != nil {
				return nil, err
			}
			command.Shell = node
		default:
			quick, err := p.parseQuickCommand()
			if err != nil {
				return nil, err
			}
			command.Name = quick.Name
			command.HasName = quick.HasName
			command.ToggleEcho = quick.ToggleEcho
			command.Expr = quick.Expr
			p.skipAll()
			if p.peek() != '}' {
				return nil, p.fail(`"}"`)
			}
			p.pos += 1
			return command, nil
		}
	}
}

func (p *parser) parseSettingList() ([]SettingNode, error) {
	result := []SettingNode{}
	for {
		p.skipSpace()
		pos := p.position(p.pos)
		name, ok := p.readSymbol()
		if !ok {
			return nil, p.fail("a setting name")
		}
		result = append(result, SettingNode{Name: name, Pos: pos})
		p.skipSpace()
		if p.eof() || p.peek() != ',' {
			return result, nil
		}
		p.pos += 1
		p.skipAll()
	}
}

func (p *parser) parseVarList() ([]VarNode, error) {
	result := []VarNode{}
	for {
		p.skipSpace()
		name, ok := p.readSymbol()
		if !ok {
			return nil, p.fail("a variable name")
		}
		variable := VarNode{Name: name}
		p.skipSpace()
		if p.peek() == '=' {
			p.pos += 1
			p.skipSpace()
			value, err := p.parseString()
			if err != nil {
				return nil, err
			}
			variable.Default = &value
		}
		result = append(result, variable)
		p.skipSpace()
		if p.eof() || p.peek() != ',' {
			return result, nil
		}
		p.pos += 1
		p.skipAll()
	}
}

func (p *parser) parseQuickCommand() (*CommandNode, error) {
	command := &CommandNode{}
	p.skipSpace()
	if p.peek() == '@' {
		command.ToggleEcho = true
		p.pos += 1
		p.skipSpace()
		expr, err := p.parseStringExpr()
		command.Expr = expr
		return command, err
	}
	if p.peek() == '$' {
		expr, err := p.parseStringExpr()
		command.Expr = expr
		return command, err
	}
	pos := p.position(p.pos)
	first, err := p.parseString()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() && p.peek() == '-' {
		p.pos += 1
		command.Name = first
		command.HasName = true
		p.skipAll()
		if p.peek() == '@' {
			command.ToggleEcho = true
			p.pos += 1
			p.skipSpace()
		}
		expr, err := p.parseStringExpr()
		command.Expr = expr
		return command, err
	}
	expr, err := p.parseExprTail(ExprNode{{Text: first, Pos: pos}})
	command.Expr = expr
	return command, err
}

func (p *parser) parseStringExpr() (ExprNode, error) {
	elem, err := p.parseExprElem()
	if err != nil {
		return nil, err
	}
	return p.parseExprTail(ExprNode{elem})
}

// parseExprTail consumes "+ elem" continuations. The "+" must stay on
// the same line as the previous element, since "+" is also a valid
// key definition; newlines after it are fine.
func (p *parser) parseExprTail(elems ExprNode) (ExprNode, error) {
	for {
		p.skipSpace()
		if p.eof() || p.peek() != '+' {
			return elems, nil
		}
		p.pos += 1
		p.skipAll()
		elem, err := p.parseExprElem()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
}

func (p *parser) parseExprElem() (ExprElem, error) {
	pos := p.position(p.pos)
	if p.peek() == '$' {
		p.pos += 1
		name, ok := p.readSymbol()
		if !ok {
			return ExprElem{}, p.fail("a snippet name")
		}
		return ExprElem{Ref: true, Text: name, Pos: pos}, nil
	}
	value, err := p.parseString()
	if err != nil {
		return ExprElem{}, err
	}
	return ExprElem{Text: value, Pos: pos}, nil
}

func (p *parser) parseSnippet(pos Position) (*SnippetNode, error) {
	p.skipSpace()
	name, ok := p.readSymbol()
	if !ok {
		return nil, p.fail("a snippet name")
	}
	p.skipSpace()
	if p.peek() != '=' {
		return nil, p.fail(`"="`)
	}
	p.pos += 1
	p.skipAll()
	expr, err := p.parseStringExpr()
	if err != nil {
		return nil, err
	}
	return &SnippetNode{Name: name, Expr: expr, Pos: pos}, nil
}
