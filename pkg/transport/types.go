// Package transport provides the datagram send primitive for MSP frames.
package transport

import "io"

// Sender performs a single best-effort send of one encoded frame.
// A failed send is reported to the caller, never retried; a datagram
// dropped by the network is silently lost.
type Sender interface {
	Send(b []byte) error
	io.Closer
}
