package msp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrameBytes(t *testing.T) {
	testCases := []struct {
		name   string
		frame  Frame
		expect []byte
	}{
		{"no payload", Frame{Dir: DirRequest, Cmd: 101}, []byte{'$', 'M', '<', 0, 101, 101}},
		{"displayport clear", Frame{Dir: DirResponse, Cmd: 182, Payload: []byte{2}},
			[]byte{'$', 'M', '>', 1, 182, 2, 1 ^ 182 ^ 2}},
		{"displayport draw", Frame{Dir: DirResponse, Cmd: 182, Payload: []byte{4}},
			[]byte{'$', 'M', '>', 1, 182, 4, 1 ^ 182 ^ 4}},
		{"multi byte", Frame{Dir: DirRequest, Cmd: 3, Payload: []byte{0x10, 0x20, 0x30}},
			[]byte{'$', 'M', '<', 3, 3, 0x10, 0x20, 0x30, 3 ^ 3 ^ 0x10 ^ 0x20 ^ 0x30}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, tc.frame.Bytes())
			require.Equal(t, len(tc.expect), tc.frame.EncodedLen())
			var buf bytes.Buffer
			n, err := tc.frame.WriteTo(&buf)
			require.NoError(t, err)
			require.Equal(t, tc.expect, buf.Bytes())
			require.Equal(t, len(tc.expect), n)
		})
	}
}

func TestFrameChecksumAllSizes(t *testing.T) {
	for size := 0; size <= MaxPayload; size++ {
		payload := make([]byte, size)
		for i := range payload {
			payload[i] = byte(i * 7)
		}
		f, err := NewFrame(DirRequest, byte(size), payload)
		require.NoError(t, err)
		b := f.Bytes()
		require.Len(t, b, 5+size+1)
		require.Equal(t, byte(size), b[3])
		ck := b[3] ^ b[4]
		for _, pb := range b[5 : 5+size] {
			ck ^= pb
		}
		require.Equal(t, ck, b[len(b)-1])
	}
	_, err := NewFrame(DirRequest, 1, make([]byte, MaxPayload+1))
	require.Error(t, err)
}

func TestParserRoundTrip(t *testing.T) {
	frames := []Frame{
		{Dir: DirResponse, Cmd: CmdDisplayPort, Payload: []byte{DisplayPortClear}},
		{Dir: DirRequest, Cmd: CmdRC, Payload: NeutralChannels().Bytes()},
		{Dir: DirRequest, Cmd: CmdStatus, Payload: []byte{0}},
		{Dir: DirResponse, Cmd: 0xff, Payload: nil},
	}
	var stream []byte
	for i := range frames {
		stream = append(stream, frames[i].Bytes()...)
	}

	var p Parser
	parsed := p.Parse(stream)
	require.Len(t, parsed, len(frames))
	for i, f := range parsed {
		require.Equal(t, frames[i].Dir, f.Dir)
		require.Equal(t, frames[i].Cmd, f.Cmd)
		require.Equal(t, len(frames[i].Payload), len(f.Payload))
		if len(frames[i].Payload) > 0 {
			require.Equal(t, frames[i].Payload, f.Payload)
		}
	}
}

func TestParserResync(t *testing.T) {
	good := Frame{Dir: DirRequest, Cmd: 1, Payload: []byte{9}}
	bad := good.Bytes()
	bad[len(bad)-1] ^= 0xa5 // corrupt checksum

	var stream []byte
	stream = append(stream, 0x00, '$', 'x') // garbage, false header start
	stream = append(stream, bad...)
	stream = append(stream, good.Bytes()...)

	var p Parser
	parsed := p.Parse(stream)
	require.Len(t, parsed, 1)
	require.Equal(t, good.Cmd, parsed[0].Cmd)
	require.Equal(t, good.Payload, parsed[0].Payload)
}
