package main

import (
	"github.com/betz-engineering/uiboard.go/pkg/cli/cmds"
)

func main() {
	cmds.Execute()
}
