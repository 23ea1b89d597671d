package msp

import (
	"encoding/binary"
	"fmt"
)

// Channel value conventions of the RC protocol.
const (
	ChannelMin     uint16 = 1000
	ChannelNeutral uint16 = 1500
	ChannelMax     uint16 = 2000
)

// ChannelCount is the fixed channel count of an RC frame payload.
const ChannelCount = 16

// ChannelsLen is the encoded payload size of an RC frame.
const ChannelsLen = ChannelCount * 2

// Channels is the full 16-channel control vector.
// All slots are always populated so the receiver never reads
// stale or undefined channels.
type Channels [ChannelCount]uint16

// NeutralChannels creates a control vector with every channel at neutral.
func NeutralChannels() Channels {
	var ch Channels
	for i := range ch {
		ch[i] = ChannelNeutral
	}
	return ch
}

// WithSticks creates a control vector with the first 4 channels set
// to the stick values and the remaining channels at neutral.
func WithSticks(sticks [4]uint16) Channels {
	ch := NeutralChannels()
	copy(ch[:4], sticks[:])
	return ch
}

// Bytes encodes the vector as 16 little-endian uint16 values.
func (ch Channels) Bytes() []byte {
	b := make([]byte, ChannelsLen)
	for i, v := range ch {
		binary.LittleEndian.PutUint16(b[i*2:], v)
	}
	return b
}

// ChannelsFromBytes decodes a 32-byte RC frame payload.
func ChannelsFromBytes(b []byte) (Channels, error) {
	var ch Channels
	if len(b) != ChannelsLen {
		return ch, fmt.Errorf("channel payload must be %d bytes, got %d", ChannelsLen, len(b))
	}
	for i := range ch {
		ch[i] = binary.LittleEndian.Uint16(b[i*2:])
	}
	return ch, nil
}
