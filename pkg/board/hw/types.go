// Package hw defines the hardware collaborators the protocol core drives.
package hw

// Button flag bits reported by Inputs.ButtonFlags. State bits reflect the
// current level, short/long bits latch press events since the last read.
const (
	Btn0State byte = 1 << 0
	Btn1State byte = 1 << 1
	Btn0Short byte = 1 << 2
	Btn1Short byte = 1 << 3
	Btn0Long  byte = 1 << 4
	Btn1Long  byte = 1 << 5
)

// LED mask layout: LED A occupies bits 0-2 (r, g, b), LED B bits 4-6.
const (
	LEDAShift = 0
	LEDBShift = 4
	LEDBits   = 7
)

// LEDMask packs per-LED 3-bit rgb values into a wire mask.
func LEDMask(a, b byte) uint16 {
	return uint16(a&LEDBits)<<LEDAShift | uint16(b&LEDBits)<<LEDBShift
}

// LEDs drives the status LEDs.
type LEDs interface {
	Set(mask uint16)
}

// Display controls panel-level display settings. Brightness is 0 (off)
// to 16, callers are expected to clamp.
type Display interface {
	SetBrightness(level byte)
	SetInverted(on bool)
}

// Inputs samples the buttons and the rotary encoder.
type Inputs interface {
	ButtonFlags() byte
	// TakeEncoderDelta returns the accumulated encoder movement since the
	// previous call and clears it. The consume must be atomic with respect
	// to the sampling context so ticks are never double counted or lost.
	TakeEncoderDelta() int8
}

// Device covers whole-device operations.
type Device interface {
	Reset()
	FirmwareVersion() string
}

// Bank groups the collaborators handed to the command dispatcher. It is the
// single owner handle for mutable hardware state; nothing in the core keeps
// package-level device state.
type Bank struct {
	LEDs    LEDs
	Display Display
	Inputs  Inputs
	Device  Device
}
