// Package frame reassembles the display framebuffer stream.
package frame

// The host pushes full display frames over a bulk channel that carries no
// frame boundaries: the device only ever sees variable-length chunks of
// bytes. The assembler recovers frame alignment from bus silence alone.
// A gap longer than SyncTimeout between chunks means the previous frame is
// over and the next byte starts a new one.
//
// The timeout sits between the two timing populations on the wire: it must
// stay longer than the worst-case jitter between chunks of one frame, and
// shorter than the idle gap the host leaves between frames. Violating
// either side merges frames or splits one frame in two.
//
// Producer: host framebuffer writer
// Consumer: display sink
