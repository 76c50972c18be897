// Package sim provides an in-memory ui board for tests and demos.
package sim

import (
	"sync"
	"sync/atomic"

	"github.com/betz-engineering/uiboard.go/pkg/board/control"
	"github.com/betz-engineering/uiboard.go/pkg/board/frame"
	"github.com/betz-engineering/uiboard.go/pkg/board/hw"
)

// Board simulates the board hardware: the display framebuffer sink, LEDs,
// panel settings, buttons and the encoder. All hardware setters are driven
// from the dispatcher; the encoder accumulator is additionally fed from an
// arbitrary sampling goroutine, so it is the one atomic field.
type Board struct {
	Version string

	lock       sync.Mutex
	fb         [frame.FrameSize]byte
	cursor     int
	frames     int
	ledMask    uint16
	brightness byte
	inverted   bool
	resets     int
	buttons    byte

	encoder atomic.Int32
}

// NewBoard creates a Board with default panel settings.
func NewBoard(version string) *Board {
	return &Board{Version: version, brightness: control.MaxBrightness}
}

// Bank returns the hardware bank exposing this board to the dispatcher.
func (b *Board) Bank() *hw.Bank {
	return &hw.Bank{LEDs: b, Display: b, Inputs: b, Device: b}
}

// WriteChunk implements frame.Sink.
func (b *Board) WriteChunk(first bool, p []byte) {
	b.lock.Lock()
	defer b.lock.Unlock()
	if first {
		b.cursor = 0
		b.frames++
	}
	n := copy(b.fb[b.cursor:], p)
	b.cursor += n
}

// Set implements hw.LEDs.
func (b *Board) Set(mask uint16) {
	b.lock.Lock()
	b.ledMask = mask
	b.lock.Unlock()
}

// SetBrightness implements hw.Display.
func (b *Board) SetBrightness(level byte) {
	b.lock.Lock()
	b.brightness = level
	b.lock.Unlock()
}

// SetInverted implements hw.Display.
func (b *Board) SetInverted(on bool) {
	b.lock.Lock()
	b.inverted = on
	b.lock.Unlock()
}

// Reset implements hw.Device. It restores panel defaults like the real
// board's init does, leaving the framebuffer content alone.
func (b *Board) Reset() {
	b.lock.Lock()
	b.resets++
	b.ledMask = 0
	b.brightness = control.MaxBrightness
	b.inverted = false
	b.lock.Unlock()
}

// FirmwareVersion implements hw.Device.
func (b *Board) FirmwareVersion() string {
	return b.Version
}

// ButtonFlags implements hw.Inputs.
func (b *Board) ButtonFlags() byte {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.buttons
}

// TakeEncoderDelta implements hw.Inputs. Swap-to-zero keeps the consume
// atomic with concurrent Turn calls.
func (b *Board) TakeEncoderDelta() int8 {
	return int8(b.encoder.Swap(0))
}

// Turn accumulates encoder ticks, as the sampling context would.
func (b *Board) Turn(ticks int8) {
	b.encoder.Add(int32(ticks))
}

// SetButtons sets the reported button flags.
func (b *Board) SetButtons(flags byte) {
	b.lock.Lock()
	b.buttons = flags
	b.lock.Unlock()
}

// Framebuffer returns a copy of the display framebuffer.
func (b *Board) Framebuffer() []byte {
	b.lock.Lock()
	defer b.lock.Unlock()
	fb := make([]byte, frame.FrameSize)
	copy(fb, b.fb[:])
	return fb
}

// Frames returns how many frame starts the display has seen.
func (b *Board) Frames() int {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.frames
}

// LEDMask returns the current LED mask.
func (b *Board) LEDMask() uint16 {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.ledMask
}

// Brightness returns the current brightness level.
func (b *Board) Brightness() byte {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.brightness
}

// Inverted returns whether the display is inverted.
func (b *Board) Inverted() bool {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.inverted
}

// Resets returns how many reset commands the board served.
func (b *Board) Resets() int {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.resets
}
