package input

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dotree-sh/dotree/common"
	"github.com/dotree-sh/dotree/pretty"
)

// TerminalLines prompts for variable values: a textinput program on a
// terminal, a plain buffered line read otherwise. The returned reply
// is raw; defaults on empty input are the caller's business.
type TerminalLines struct{}

func Lines() *TerminalLines {
	return &TerminalLines{}
}

func (it *TerminalLines) ReadLine(name, defaultValue string) (string, error) {
	if !pretty.Interactive {
		return plainLine(name, defaultValue)
	}
	program := tea.NewProgram(newPrompt(name, defaultValue))
	outcome, err := program.Run()
	if err != nil {
		return "", err
	}
	final := outcome.(prompt)
	if final.aborted {
		return "", errors.New("prompt interrupted")
	}
	return final.field.Value(), nil
}

func promptText(name, defaultValue string) string {
	if defaultValue != "" {
		return fmt.Sprintf("Value for %s [%s]: ", name, defaultValue)
	}
	return fmt.Sprintf("Value for %s: ", name)
}

func plainLine(name, defaultValue string) (string, error) {
	common.Stdout("%s", promptText(name, defaultValue))
	reply, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(reply, "\r\n"), nil
}

type prompt struct {
	field   textinput.Model
	done    bool
	aborted bool
}

func newPrompt(name, defaultValue string) prompt {
	field := textinput.New()
	field.Prompt = promptText(name, defaultValue)
	field.Placeholder = defaultValue
	field.Focus()
	return prompt{field: field}
}

func (it prompt) Init() tea.Cmd {
	return textinput.Blink
}

func (it prompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			it.done = true
			return it, tea.Quit
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			it.aborted = true
			return it, tea.Quit
		}
	}
	var command tea.Cmd
	it.field, command = it.field.Update(msg)
	return it, command
}

func (it prompt) View() string {
	if it.done || it.aborted {
		return ""
	}
	return it.field.View() + "\n"
}
