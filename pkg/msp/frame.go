package msp

import (
	"fmt"
	"io"
)

// Direction is the single-character frame direction tag.
type Direction byte

const (
	// DirRequest tags a frame sent to the flight controller.
	DirRequest Direction = '<'
	// DirResponse tags a frame framed as a response echo.
	DirResponse Direction = '>'
)

// IsValid checks if it's a known direction tag.
func (d Direction) IsValid() bool {
	return d == DirRequest || d == DirResponse
}

// Command IDs used by the remote control sender.
const (
	// CmdStatus is the one-shot status command sent once after arming.
	CmdStatus byte = 101
	// CmdRC carries a 16-channel RC control vector.
	// The active RC command ID may vary by target firmware; see remote.Config.
	CmdRC byte = 105
	// CmdDisplayPort carries a 1-byte DisplayPort subcommand.
	CmdDisplayPort byte = 182
)

// DisplayPort subcommands bracketing a control burst.
const (
	DisplayPortRelease byte = 0
	DisplayPortClear   byte = 2
	DisplayPortDraw    byte = 4
)

// MaxPayload is the largest payload a frame can carry (1-byte size field).
const MaxPayload = 255

const headerLen = 5 // '$' 'M' dir size cmd

var header = [2]byte{'$', 'M'}

// Frame contains the information of one MSP message.
// A Frame is never mutated after construction; it is encoded and discarded.
type Frame struct {
	Dir     Direction
	Cmd     byte
	Payload []byte
}

// NewFrame creates a Frame and validates the payload length.
func NewFrame(dir Direction, cmd byte, payload []byte) (*Frame, error) {
	if len(payload) > MaxPayload {
		return nil, fmt.Errorf("payload too large: %d bytes", len(payload))
	}
	return &Frame{Dir: dir, Cmd: cmd, Payload: payload}, nil
}

// EncodedLen returns the encoded size of the frame including the checksum.
func (f *Frame) EncodedLen() int {
	return headerLen + len(f.Payload) + 1
}

// Checksum computes the XOR fold over size, command and payload bytes.
func (f *Frame) Checksum() byte {
	ck := byte(len(f.Payload)) ^ f.Cmd
	for _, b := range f.Payload {
		ck ^= b
	}
	return ck
}

// Bytes returns encoded bytes for sending.
func (f *Frame) Bytes() []byte {
	b := make([]byte, f.EncodedLen())
	b[0], b[1] = header[0], header[1]
	b[2] = byte(f.Dir)
	b[3] = byte(len(f.Payload))
	b[4] = f.Cmd
	copy(b[headerLen:], f.Payload)
	b[len(b)-1] = f.Checksum()
	return b
}

// WriteTo writes encoded bytes.
func (f *Frame) WriteTo(w io.Writer) (n int, err error) {
	return w.Write(f.Bytes())
}
