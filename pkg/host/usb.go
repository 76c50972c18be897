// Package host accesses a ui_to_usb board from the host side of the link.
package host

import (
	"errors"
	"fmt"

	"github.com/google/gousb"
	log "github.com/sirupsen/logrus"

	"github.com/betz-engineering/uiboard.go/pkg/board/control"
	"github.com/betz-engineering/uiboard.go/pkg/board/frame"
	"github.com/betz-engineering/uiboard.go/pkg/board/hw"
	fx "github.com/betz-engineering/uiboard.go/pkg/framework"
)

var (
	// ErrNoBoard indicates no ui board was found on USB.
	ErrNoBoard = errors.New("no ui board found")
	// ErrBadFrameSize indicates a framebuffer of the wrong length.
	ErrBadFrameSize = fmt.Errorf("framebuffer must be %d bytes", frame.FrameSize)
)

// USB identity of the board. The shared V-USB style VID/PID pair is
// disambiguated by the descriptor strings.
const (
	VendorID     gousb.ID = 0x16c0
	ProductID    gousb.ID = 0x05dc
	Manufacturer          = "betz-engineering.ch"
	Product               = "ui_to_usb"
)

// bmRequestType values for vendor control transfers.
const (
	reqHostToDevice uint8 = 0x40
	reqDeviceToHost uint8 = 0xc0
)

// bulkOutEndpoint carries the framebuffer stream.
const bulkOutEndpoint = 1

// versionMaxLen bounds the version string reply.
const versionMaxLen = 64

// InputState is one buttons/encoder report.
type InputState struct {
	Flags        byte
	EncoderDelta int8
}

// Pressed reports whether flag bits (hw.Btn* constants) are set.
func (s InputState) Pressed(flags byte) bool {
	return s.Flags&flags != 0
}

// Board is an open ui board.
type Board struct {
	ctx  *gousb.Context
	dev  *gousb.Device
	cfg  *gousb.Config
	intf *gousb.Interface
	out  *gousb.OutEndpoint

	ledState uint16
}

// Open finds the first ui board on the bus and claims it.
func Open() (*Board, error) {
	b := &Board{ctx: gousb.NewContext()}
	if err := b.open(); err != nil {
		b.Close()
		return nil, err
	}
	return b, nil
}

func (b *Board) open() error {
	devs, err := b.ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return desc.Vendor == VendorID && desc.Product == ProductID
	})
	for _, dev := range devs {
		if b.dev != nil {
			dev.Close()
			continue
		}
		manufacturer, _ := dev.Manufacturer()
		product, _ := dev.Product()
		if manufacturer == Manufacturer && product == Product {
			b.dev = dev
		} else {
			dev.Close()
		}
	}
	if b.dev == nil {
		if err != nil {
			return err
		}
		return ErrNoBoard
	}

	b.dev.SetAutoDetach(true)
	if b.cfg, err = b.dev.Config(1); err != nil {
		return fmt.Errorf("claim config: %w", err)
	}
	if b.intf, err = b.cfg.Interface(0, 0); err != nil {
		return fmt.Errorf("claim interface: %w", err)
	}
	if b.out, err = b.intf.OutEndpoint(bulkOutEndpoint); err != nil {
		return fmt.Errorf("open bulk endpoint: %w", err)
	}
	log.Infof("ui board opened (bus %d addr %d)", b.dev.Desc.Bus, b.dev.Desc.Address)
	return nil
}

// Close releases the USB handles.
func (b *Board) Close() error {
	var errs fx.AggregatedError
	if b.intf != nil {
		b.intf.Close()
		b.intf = nil
	}
	if b.cfg != nil {
		errs.Add(b.cfg.Close())
		b.cfg = nil
	}
	if b.dev != nil {
		errs.Add(b.dev.Close())
		b.dev = nil
	}
	if b.ctx != nil {
		errs.Add(b.ctx.Close())
		b.ctx = nil
	}
	return errs.Aggregate()
}

func (b *Board) controlOut(cmd byte, value uint16) error {
	log.Debugf("ctrl out %#02x value %#04x", cmd, value)
	_, err := b.dev.Control(reqHostToDevice, cmd, value, 0, nil)
	return err
}

func (b *Board) controlIn(cmd byte, maxLen int) ([]byte, error) {
	buf := make([]byte, maxLen)
	n, err := b.dev.Control(reqDeviceToHost, cmd, 0, 0, buf)
	if err != nil {
		return nil, err
	}
	log.Debugf("ctrl in %#02x %d bytes", cmd, n)
	return buf[:n], nil
}

// Reset reinitializes the board.
func (b *Board) Reset() error {
	return b.controlOut(control.CmdReset, 0)
}

// FirmwareVersion returns the firmware version string.
func (b *Board) FirmwareVersion() (string, error) {
	data, err := b.controlIn(control.CmdVersion, versionMaxLen)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Inputs reads the buttons and consumes the encoder delta accumulated
// since the previous call. Call once per GUI frame.
func (b *Board) Inputs() (InputState, error) {
	data, err := b.controlIn(control.CmdButtonsEnc, 2)
	if err != nil {
		return InputState{}, err
	}
	if len(data) < 2 {
		return InputState{}, fmt.Errorf("short input report: %d bytes", len(data))
	}
	return InputState{Flags: data[0], EncoderDelta: int8(data[1])}, nil
}

// SetLEDs writes the raw LED mask.
func (b *Board) SetLEDs(mask uint16) error {
	if err := b.controlOut(control.CmdLEDs, mask); err != nil {
		return err
	}
	b.ledState = mask
	return nil
}

// SetLED updates one LED (0 or 1) to a 3-bit rgb value, leaving the other
// LED as last set.
func (b *Board) SetLED(index int, rgb byte) error {
	shift := hw.LEDAShift
	if index != 0 {
		shift = hw.LEDBShift
	}
	mask := b.ledState &^ (uint16(hw.LEDBits) << shift)
	mask |= uint16(rgb&hw.LEDBits) << shift
	return b.SetLEDs(mask)
}

// SetBrightness sets display brightness, 0 (off) to 16.
func (b *Board) SetBrightness(level byte) error {
	return b.controlOut(control.CmdBrightness, uint16(level))
}

// SetInverted inverts the display. Inverting periodically prevents burn-in.
func (b *Board) SetInverted(on bool) error {
	var value uint16
	if on {
		value = 1
	}
	return b.controlOut(control.CmdInverted, value)
}

// SendFrame pushes one full framebuffer over the bulk endpoint. The device
// relies on bus silence between frames for alignment, so frames should be
// sent back to back only at GUI frame rate, never fragmented with delays.
func (b *Board) SendFrame(fb []byte) error {
	if len(fb) != frame.FrameSize {
		return ErrBadFrameSize
	}
	_, err := b.out.Write(fb)
	return err
}
