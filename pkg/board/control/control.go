// Package control dispatches host control requests to the hardware.
package control

// Command codes. Values are fixed by the host protocol and must not change.
const (
	CmdReset      byte = 0x10
	CmdVersion    byte = 0x11
	CmdButtonsEnc byte = 0x20
	CmdLEDs       byte = 0x21
	CmdBrightness byte = 0x31
	CmdInverted   byte = 0x32
)

// MaxBrightness is the highest display brightness level the panel accepts.
// Larger requested values clamp here instead of failing the request.
const MaxBrightness = 16

// Request is one decoded host control request.
type Request struct {
	ID    byte
	Value uint16
}

// Responder delivers the outcome of a request back to the transport.
// The dispatcher calls exactly one of the three methods per request.
type Responder interface {
	// Ack completes the request with no data.
	Ack()
	// Reply completes the request with a payload.
	Reply(p []byte)
	// Reject fails the request so the transport can surface a protocol
	// error to the host (a STALL on USB).
	Reject()
}
