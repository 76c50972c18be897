// Package cmds implements the uiboardctl command tree.
package cmds

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/betz-engineering/uiboard.go/pkg/host"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "uiboardctl",
	Short: "Control a ui_to_usb board over USB",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log USB transfers")
}

// Execute runs the command tree.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// withBoard opens the first board on the bus for the duration of fn.
func withBoard(fn func(*host.Board) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		b, err := host.Open()
		if err != nil {
			return err
		}
		defer b.Close()
		return fn(b)
	}
}
