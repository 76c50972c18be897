package frame

import "time"

// Assembler converts the boundary-less chunk stream from an Endpoint into
// aligned writes on a Sink. It holds a single in-progress frame cursor and
// no frame data of its own.
type Assembler struct {
	endpoint Endpoint
	sink     Sink

	offset       int
	lastActivity time.Time
	buf          [ChunkSize]byte
}

// NewAssembler creates an Assembler reading from endpoint into sink.
func NewAssembler(endpoint Endpoint, sink Sink) *Assembler {
	return &Assembler{endpoint: endpoint, sink: sink}
}

// Offset returns the write cursor within the current frame, in [0, FrameSize].
func (a *Assembler) Offset() int {
	return a.offset
}

// Poll drains at most one chunk from the endpoint. It never blocks and is
// meant to be invoked once per loop iteration with the iteration timestamp.
//
// Silence longer than SyncTimeout before new data is the only frame
// boundary signal: the cursor rewinds to 0 and the next write is tagged as
// the first chunk of a new frame. Once a frame is complete, further bytes
// are dropped until the host goes quiet again, so a host that keeps
// streaming past FrameSize cannot disturb the displayed frame.
func (a *Assembler) Poll(now time.Time) {
	if !a.endpoint.Available() {
		return
	}
	if now.Sub(a.lastActivity) > SyncTimeout {
		a.offset = 0
	}
	// Stamp activity before reading so scheduler jitter between the
	// timestamp and the read cannot trigger a spurious resync.
	a.lastActivity = now

	n := a.endpoint.Read(a.buf[:])
	if n <= 0 {
		return
	}
	if a.offset >= FrameSize {
		// Frame already complete, excess bytes are dropped until the
		// next timeout rewinds the cursor.
		return
	}
	if remain := FrameSize - a.offset; n > remain {
		n = remain
	}
	a.sink.WriteChunk(a.offset == 0, a.buf[:n])
	a.offset += n
}
