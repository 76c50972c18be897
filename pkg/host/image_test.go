package host

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/betz-engineering/uiboard.go/pkg/board/frame"
)

func TestPackImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, frame.Width, frame.Height))
	img.SetGray(0, 0, color.Gray{Y: 0xff})
	img.SetGray(1, 0, color.Gray{Y: 0x10})
	img.SetGray(2, 0, color.Gray{Y: 0x80})

	fb := PackImage(img)
	require.Len(t, fb, frame.FrameSize)
	// Even pixel in the high nibble, odd pixel in the low nibble.
	require.Equal(t, byte(0xf1), fb[0])
	require.Equal(t, byte(0x80), fb[1])
	require.Equal(t, byte(0x00), fb[2])
}

func TestPackImageScales(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 512, 128))
	for y := 0; y < 128; y++ {
		for x := 0; x < 512; x++ {
			img.SetGray(x, y, color.Gray{Y: 0xff})
		}
	}
	fb := PackImage(img)
	require.Len(t, fb, frame.FrameSize)
	for i, b := range fb {
		require.Equalf(t, byte(0xff), b, "fb[%d]", i)
	}
}
