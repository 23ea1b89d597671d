package transport

import (
	"fmt"
	"net"

	"github.com/golang/glog"
)

// UDPSender sends each frame as one UDP datagram to a fixed target.
type UDPSender struct {
	conn *net.UDPConn
	addr *net.UDPAddr
}

// DialUDP resolves the target address and connects a UDP socket to it.
// The target is fixed for the lifetime of the sender.
func DialUDP(target string) (*UDPSender, error) {
	addr, err := net.ResolveUDPAddr("udp4", target)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %v", target, err)
	}
	conn, err := net.DialUDP("udp4", nil, addr)
	if err != nil {
		return nil, err
	}
	return &UDPSender{conn: conn, addr: addr}, nil
}

// Addr returns the resolved target address.
func (s *UDPSender) Addr() *net.UDPAddr {
	return s.addr
}

// Send implements Sender.
func (s *UDPSender) Send(b []byte) error {
	if _, err := s.conn.Write(b); err != nil {
		return err
	}
	if glog.V(2) {
		glog.Infof("sent %d bytes to %s: %x", len(b), s.addr, b)
	}
	return nil
}

// Close implements io.Closer.
func (s *UDPSender) Close() error {
	return s.conn.Close()
}
