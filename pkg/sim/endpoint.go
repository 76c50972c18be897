package sim

import "sync"

// Endpoint is an in-memory bulk data channel. The host side writes from
// any goroutine; the device side polls it from the control loop. It keeps
// no chunk boundaries, matching the real endpoint buffer.
type Endpoint struct {
	lock sync.Mutex
	buf  []byte
}

// Available implements frame.Endpoint.
func (e *Endpoint) Available() bool {
	e.lock.Lock()
	defer e.lock.Unlock()
	return len(e.buf) > 0
}

// Read implements frame.Endpoint.
func (e *Endpoint) Read(p []byte) int {
	e.lock.Lock()
	defer e.lock.Unlock()
	n := copy(p, e.buf)
	e.buf = e.buf[n:]
	return n
}

// Write implements io.Writer for the host side.
func (e *Endpoint) Write(p []byte) (int, error) {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.buf = append(e.buf, p...)
	return len(p), nil
}

// Buffered returns how many bytes wait to be polled.
func (e *Endpoint) Buffered() int {
	e.lock.Lock()
	defer e.lock.Unlock()
	return len(e.buf)
}
