package dtree_test

import (
	"testing"

	"github.com/dotree-sh/dotree/conf"
	"github.com/dotree-sh/dotree/dtree"
	"github.com/dotree-sh/dotree/hamlet"
)

func parsed(t *testing.T, source string) *conf.Tree {
	t.Helper()
	tree, err := conf.Parse(source)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return tree
}

func TestCanBuildSemanticModel(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	sut, err := dtree.Build(parsed(t, `
		shell zsh -c
		echo off

		menu root {
			g: git
			x: cmd {
				set repeat
				vars file = "notes.md"
				"open" - "xdg-open $file"
			}
		}

		menu "git things" git {
			am: "git commit --amend --no-edit"
		}
	`))
	must_be.Nil(err)
	wont_be.Nil(sut)

	must_be.Equal("zsh", sut.Settings.Shell.Name)
	must_be.Equal([]string{"-c"}, sut.Settings.Shell.Args)
	must_be.True(!sut.Settings.EchoByDefault)

	root := sut.Menus["root"]
	wont_be.Nil(root)
	must_be.Equal([]string{"g", "x"}, root.Keys)

	submenu, ok := root.Entries["g"].(*dtree.SubMenu)
	must_be.True(ok)
	must_be.Equal("git", submenu.Target)
	must_be.Equal("git things", sut.Label(submenu))

	command, ok := root.Entries["x"].(*dtree.Command)
	must_be.True(ok)
	must_be.True(command.Settings.Repeat)
	must_be.True(!command.Settings.IgnoreResult)
	must_be.Equal(1, len(command.Vars))
	must_be.Equal("notes.md", *command.Vars[0].Default)
	must_be.Equal("open", sut.Label(command))

	quick, ok := sut.Menus["git"].Entries["am"].(*dtree.QuickCommand)
	must_be.True(ok)
	must_be.Equal(`"git commit --amend --no-edit"`, sut.Label(quick))
}

func TestBuildingTwiceYieldsIdenticalModel(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	source := `
		menu root {
			g: git
			q: @"clear"
		}
		menu git {
			s: "git status"
		}
		snippet greet = "echo hi"
	`
	first, err := dtree.Build(parsed(t, source))
	must_be.Nil(err)
	second, err := dtree.Build(parsed(t, source))
	must_be.Nil(err)
	must_be.Equal(first, second)
}

func TestPrefixAmbiguityIsLoadTimeError(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	sut, err := dtree.Build(parsed(t, `
		menu root {
			g: "echo g"
			gb: "echo gb"
		}
	`))
	must_be.Nil(sut)
	wont_be.Nil(err)
	model, ok := err.(*dtree.ModelError)
	must_be.True(ok)
	must_be.Equal("root", model.Menu)
	must_be.Contain("prefix", err.Error())
}

func TestDuplicateAndDanglingNamesFail(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	broken := []struct {
		source   string
		fragment string
	}{
		{`menu root { a: "x" } menu root { b: "y" }`, "duplicate menu: root"},
		{`menu root { a: "x" a: "y" }`, `duplicate key "a"`},
		{`menu other { a: "x" }`, "undefined menu: root"},
		{`menu root { s: missing }`, "undefined menu: missing"},
		{`snippet s = "x" snippet s = "y" menu root { a: "z" }`, "duplicate snippet: s"},
		{`menu root { a: cmd { set rerun "x" } }`, "invalid command setting: rerun"},
		{`menu root { a: $nope }`, "undefined snippet: nope"},
	}
	for _, form := range broken {
		sut, err := dtree.Build(parsed(t, form.source))
		must_be.Nil(sut)
		wont_be.Nil(err)
		must_be.Contain(form.fragment, err.Error())
	}
}

func TestSnippetCyclesAreDetectedAtBuildTime(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	sut, err := dtree.Build(parsed(t, `
		menu root {
			a: $one
		}
		snippet one = "1" + $two
		snippet two = $one + "2"
	`))
	must_be.Nil(sut)
	wont_be.Nil(err)
	must_be.Contain("snippet cycle detected", err.Error())
}
