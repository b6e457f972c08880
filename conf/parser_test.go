package conf_test

import (
	"testing"

	"github.com/dotree-sh/dotree/conf"
	"github.com/dotree-sh/dotree/hamlet"
)

const sample = `
	menu root {
		c: custom_commands
		f: !xa"echo "!"xa!
	}

	menu custom_commands {
		h: "print hi" - !"echo hi"!
		c: @"echo ciao"
	}
`

func TestCanParseMenusAndCommands(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	sut, err := conf.Parse(sample)
	must_be.Nil(err)
	wont_be.Nil(sut)
	must_be.Equal(2, len(sut.Menus))

	root := sut.Menus[0]
	must_be.Equal("root", root.Name)
	must_be.True(!root.HasTitle)
	must_be.Equal(2, len(root.Entries))
	must_be.Equal("c", root.Entries[0].Key)
	must_be.Equal("custom_commands", root.Entries[0].Submenu)
	must_be.Equal("f", root.Entries[1].Key)
	must_be.Equal(`echo "!`, root.Entries[1].Command.Expr[0].Text)

	custom := sut.Menus[1]
	named := custom.Entries[0].Command
	must_be.True(named.HasName)
	must_be.Equal("print hi", named.Name)
	must_be.Equal("echo hi", named.Expr[0].Text)
	must_be.True(!named.ToggleEcho)

	muted := custom.Entries[1].Command
	must_be.True(muted.ToggleEcho)
	must_be.Equal("echo ciao", muted.Expr[0].Text)
}

func TestCanParseAnonymousCommands(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	sut, err := conf.Parse(`
		menu root {
			a: cmd {
				set repeat, ignore_result
				vars foo,
					bar = "default"
				shell zsh -c
				"name" - @"echo $foo $bar"
			}
		}
	`)
	must_be.Nil(err)
	wont_be.Nil(sut)

	command := sut.Menus[0].Entries[0].Command
	wont_be.Nil(command)
	must_be.Equal(2, len(command.Settings))
	must_be.Equal("repeat", command.Settings[0].Name)
	must_be.Equal("ignore_result", command.Settings[1].Name)
	must_be.Equal(2, len(command.Vars))
	must_be.Equal("foo", command.Vars[0].Name)
	must_be.Nil(command.Vars[0].Default)
	must_be.Equal("bar", command.Vars[1].Name)
	must_be.Equal("default", *command.Vars[1].Default)
	wont_be.Nil(command.Shell)
	must_be.Equal([]string{"zsh", "-c"}, command.Shell.Words)
	must_be.True(command.HasName)
	must_be.Equal("name", command.Name)
	must_be.True(command.ToggleEcho)
	must_be.Equal("echo $foo $bar", command.Expr[0].Text)
}

func TestCanParseFileSettings(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	sut, err := conf.Parse(`
		shell bash -euo pipefail -c
		echo off

		menu root {
			a: "echo a"
		}
	`)
	must_be.Nil(err)
	wont_be.Nil(sut.Shell)
	must_be.Equal([]string{"bash", "-euo", "pipefail", "-c"}, sut.Shell.Words)
	wont_be.Nil(sut.Echo)
	must_be.True(!*sut.Echo)
}

func TestCanParseSnippetsAndExpressions(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	sut, err := conf.Parse(`
		menu root {
			x: $a + "b" +
				$c + "d"
		}

		snippet a = "A"
		snippet c = "C" + $a
	`)
	must_be.Nil(err)
	wont_be.Nil(sut)
	must_be.Equal(2, len(sut.Snippets))
	must_be.Equal("a", sut.Snippets[0].Name)
	must_be.Equal("c", sut.Snippets[1].Name)
	must_be.Equal(2, len(sut.Snippets[1].Expr))
	must_be.True(sut.Snippets[1].Expr[1].Ref)

	expr := sut.Menus[0].Entries[0].Command.Expr
	must_be.Equal(4, len(expr))
	must_be.True(expr[0].Ref)
	must_be.Equal("a", expr[0].Text)
	must_be.True(!expr[1].Ref)
	must_be.Equal("b", expr[1].Text)
	must_be.True(expr[2].Ref)
	must_be.Equal("d", expr[3].Text)
}

func TestProtectedStringClosesOnlyAtMarker(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	sut, err := conf.Parse(`
		menu root {
			a: !ab"quote " and bang !" stay literal"ab!
		}
	`)
	must_be.Nil(err)
	wont_be.Nil(sut)
	must_be.Equal(`quote " and bang !" stay literal`, sut.Menus[0].Entries[0].Command.Expr[0].Text)
}

func TestCanParseMultiCharacterKeysAndComments(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sut, err := conf.Parse(`
		# commands for git
		menu root {
			am: "git commit --amend --no-edit" # amend
			aa: "git add -A ."
		}
	`)
	must_be.Nil(err)
	must_be.Equal("am", sut.Menus[0].Entries[0].Key)
	must_be.Equal("aa", sut.Menus[0].Entries[1].Key)
	must_be.Equal("git commit --amend --no-edit", sut.Menus[0].Entries[0].Command.Expr[0].Text)
}

func TestSyntaxErrorsCarryPositionAndExpectation(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	broken := []struct {
		source   string
		expected string
	}{
		{`echo maybe`, `"on" or "off"`},
		{`menu root { a: "echo a"`, `"}"`},
		{`menu root { a }`, `":"`},
		{`menu root { a: "unclosed }`, `closing '"'`},
		{`what now`, `"menu" or "snippet"`},
		{`snippet x "echo"`, `"="`},
	}
	for _, form := range broken {
		sut, err := conf.Parse(form.source)
		must_be.Nil(sut)
		wont_be.Nil(err)
		syntax, ok := err.(*conf.SyntaxError)
		must_be.True(ok)
		must_be.Equal(form.expected, syntax.Expected)
		must_be.True(syntax.Pos.Line >= 1)
		must_be.True(syntax.Pos.Column >= 1)
		wont_be.Equal("", syntax.Snippet())
	}
}
