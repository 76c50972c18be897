package control

import "github.com/betz-engineering/uiboard.go/pkg/board/hw"

// Dispatcher routes requests to handlers over a hardware Bank. Each
// invocation is independent: the only state a command leaves behind lives
// in the hardware it touched.
type Dispatcher struct {
	hw *hw.Bank
}

// handlerFunc performs one command and completes r exactly once.
type handlerFunc func(d *Dispatcher, req Request, r Responder)

// handlers is the closed command set. Codes outside it are rejected.
var handlers = map[byte]handlerFunc{
	CmdReset:      (*Dispatcher).reset,
	CmdVersion:    (*Dispatcher).version,
	CmdButtonsEnc: (*Dispatcher).buttonsEnc,
	CmdLEDs:       (*Dispatcher).setLEDs,
	CmdBrightness: (*Dispatcher).setBrightness,
	CmdInverted:   (*Dispatcher).setInverted,
}

// NewDispatcher creates a Dispatcher over bank.
func NewDispatcher(bank *hw.Bank) *Dispatcher {
	return &Dispatcher{hw: bank}
}

// Dispatch decodes req and runs its handler synchronously. Unknown codes
// are rejected; everything else completes with Ack or Reply before return.
func (d *Dispatcher) Dispatch(req Request, r Responder) {
	h := handlers[req.ID]
	if h == nil {
		r.Reject()
		return
	}
	h(d, req, r)
}

func (d *Dispatcher) reset(req Request, r Responder) {
	d.hw.Device.Reset()
	r.Ack()
}

func (d *Dispatcher) version(req Request, r Responder) {
	r.Reply([]byte(d.hw.Device.FirmwareVersion()))
}

func (d *Dispatcher) buttonsEnc(req Request, r Responder) {
	// The encoder delta is consumed here, once per request.
	flags := d.hw.Inputs.ButtonFlags()
	delta := d.hw.Inputs.TakeEncoderDelta()
	r.Reply([]byte{flags, byte(delta)})
}

func (d *Dispatcher) setLEDs(req Request, r Responder) {
	d.hw.LEDs.Set(req.Value)
	r.Ack()
}

func (d *Dispatcher) setBrightness(req Request, r Responder) {
	level := req.Value
	if level > MaxBrightness {
		level = MaxBrightness
	}
	d.hw.Display.SetBrightness(byte(level))
	r.Ack()
}

func (d *Dispatcher) setInverted(req Request, r Responder) {
	d.hw.Display.SetInverted(req.Value != 0)
	r.Ack()
}
