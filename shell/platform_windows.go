//go:build windows

package shell

import "github.com/dotree-sh/dotree/dtree"

func platformDefault() *dtree.ShellDef {
	return &dtree.ShellDef{
		Name: "cmd",
		Args: []string{"/c"},
	}
}
