package main

import (
	"os"

	"github.com/dotree-sh/dotree/cmd"
	"github.com/dotree-sh/dotree/common"
	"github.com/dotree-sh/dotree/pretty"
)

func ExitProtection() {
	status := recover()
	if status != nil {
		exit, ok := status.(common.ExitCode)
		if ok {
			exit.ShowMessage()
			common.WaitLogs()
			os.Exit(exit.Code)
		}
		common.WaitLogs()
		panic(status)
	}
	common.WaitLogs()
}

func main() {
	defer ExitProtection()
	pretty.Setup()
	cmd.Execute()
}
