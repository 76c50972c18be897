package cmds

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/betz-engineering/uiboard.go/pkg/board/frame"
	"github.com/betz-engineering/uiboard.go/pkg/host"
)

var imageCmd = &cobra.Command{
	Use:   "image FILE",
	Short: "Display an image file (scaled to 256x64 grayscale)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		if err != nil {
			return fmt.Errorf("decode %s: %w", args[0], err)
		}
		return withBoard(func(b *host.Board) error {
			return b.SendImage(img)
		})(cmd, args)
	},
}

var fillCmd = &cobra.Command{
	Use:   "fill SHADE",
	Short: "Fill the display with a 4-bit shade, 0-15",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		shade, err := parseLevel(args[0], 15)
		if err != nil {
			return err
		}
		fb := make([]byte, frame.FrameSize)
		for i := range fb {
			fb[i] = shade<<4 | shade
		}
		return withBoard(func(b *host.Board) error {
			return b.SendFrame(fb)
		})(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(imageCmd, fillCmd)
}
