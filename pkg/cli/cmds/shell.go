package cmds

import (
	"github.com/spf13/cobra"

	"github.com/betz-engineering/uiboard.go/pkg/cli/sh"
	"github.com/betz-engineering/uiboard.go/pkg/host"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive board shell",
	Args:  cobra.NoArgs,
	RunE: withBoard(func(b *host.Board) error {
		sh.New(b).Run()
		return nil
	}),
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
