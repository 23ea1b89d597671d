package transport

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/henkwiedig/msposd-remote/pkg/msp"
)

func TestUDPSenderOneDatagramPerFrame(t *testing.T) {
	recv, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	defer recv.Close()

	sender, err := DialUDP(recv.LocalAddr().String())
	require.NoError(t, err)
	defer sender.Close()

	frame := msp.Frame{Dir: msp.DirResponse, Cmd: msp.CmdDisplayPort, Payload: []byte{msp.DisplayPortClear}}
	require.NoError(t, sender.Send(frame.Bytes()))

	buf := make([]byte, 64)
	recv.SetReadDeadline(time.Now().Add(time.Second))
	n, _, err := recv.ReadFromUDP(buf)
	require.NoError(t, err)
	require.Equal(t, frame.Bytes(), buf[:n])

	var p msp.Parser
	parsed := p.Parse(buf[:n])
	require.Len(t, parsed, 1)
	require.Equal(t, msp.CmdDisplayPort, parsed[0].Cmd)
}

func TestDialUDPBadTarget(t *testing.T) {
	_, err := DialUDP("not-an-address")
	require.Error(t, err)
}
