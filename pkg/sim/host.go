package sim

import (
	"errors"

	"github.com/betz-engineering/uiboard.go/pkg/board"
	"github.com/betz-engineering/uiboard.go/pkg/board/control"
	"github.com/betz-engineering/uiboard.go/pkg/board/frame"
)

// ErrRejected is returned when the device stalls a control request.
var ErrRejected = errors.New("control request rejected")

// Host plays the host side of the link against a simulated device: it
// owns the bulk endpoint writer and issues synchronous control requests
// the way the USB stack would, from its own execution context.
type Host struct {
	Core     *board.Core
	Endpoint *Endpoint
}

// NewHost builds a simulated device around b and returns the host handle.
func NewHost(b *Board) *Host {
	endpoint := &Endpoint{}
	return &Host{
		Core:     board.NewCore(endpoint, b, b.Bank()),
		Endpoint: endpoint,
	}
}

// SendFrame queues one full frame on the bulk endpoint.
func (h *Host) SendFrame(fb []byte) error {
	if len(fb) != frame.FrameSize {
		return errors.New("wrong framebuffer size")
	}
	_, err := h.Endpoint.Write(fb)
	return err
}

// Do issues one control request and returns the reply payload, nil for a
// plain acknowledgment, or ErrRejected.
func (h *Host) Do(req control.Request) ([]byte, error) {
	r := &captureResponder{}
	h.Core.HandleControl(req, r)
	if r.rejected {
		return nil, ErrRejected
	}
	return r.data, nil
}

type captureResponder struct {
	data     []byte
	rejected bool
}

func (r *captureResponder) Ack() {}

func (r *captureResponder) Reply(p []byte) {
	r.data = append([]byte(nil), p...)
}

func (r *captureResponder) Reject() {
	r.rejected = true
}
