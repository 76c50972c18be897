package frame

import "time"

// Display geometry. Pixels are 4-bit grayscale packed two per byte,
// so a full frame is Width*Height/2 bytes.
const (
	Width  = 256
	Height = 64
)

// FrameSize is the exact number of bytes in one display frame.
const FrameSize = Width * Height / 2

// ChunkSize is the most bytes consumed from the endpoint per poll.
const ChunkSize = 64

// SyncTimeout is the bus silence that separates two frames.
// Values fixed by the host protocol.
const SyncTimeout = 4 * time.Millisecond

// Endpoint is the receive side of the bulk data channel.
type Endpoint interface {
	// Available reports whether any bytes are buffered.
	Available() bool
	// Read copies up to len(p) buffered bytes into p without blocking
	// and returns the count, 0 if nothing is buffered.
	Read(p []byte) int
}

// Sink accepts reassembled frame data.
type Sink interface {
	// WriteChunk appends p to the frame being displayed. first marks the
	// initial chunk of a new frame and tells the sink to restart at the
	// frame origin.
	WriteChunk(first bool, p []byte)
}
