package host

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/betz-engineering/uiboard.go/pkg/board/frame"
)

// PackImage converts an image into the device-native framebuffer layout:
// 4-bit grayscale, two pixels per byte, the even-column pixel in the high
// nibble. Images not already 256x64 are scaled to fit.
func PackImage(img image.Image) []byte {
	gray := toGray(img)
	fb := make([]byte, frame.FrameSize)
	for y := 0; y < frame.Height; y++ {
		row := gray.Pix[y*gray.Stride:]
		for x := 0; x < frame.Width; x += 2 {
			fb[(y*frame.Width+x)/2] = row[x]&0xf0 | row[x+1]>>4
		}
	}
	return fb
}

// SendImage packs img and pushes it to the display.
func (b *Board) SendImage(img image.Image) error {
	return b.SendFrame(PackImage(img))
}

func toGray(img image.Image) *image.Gray {
	bounds := image.Rect(0, 0, frame.Width, frame.Height)
	gray := image.NewGray(bounds)
	if img.Bounds().Dx() == frame.Width && img.Bounds().Dy() == frame.Height {
		xdraw.Draw(gray, bounds, img, img.Bounds().Min, xdraw.Src)
	} else {
		xdraw.CatmullRom.Scale(gray, bounds, img, img.Bounds(), xdraw.Src, nil)
	}
	return gray
}
