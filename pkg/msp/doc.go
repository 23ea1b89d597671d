// Package msp implements the MultiWii Serial Protocol (MSP v1) wire format.
package msp

// An MSP frame is a length-prefixed, XOR-checksummed binary message:
//
//	'$' 'M' direction size command payload... checksum
//
// The protocol has no acknowledgment, retransmission or recovery;
// when carried over UDP a frame is one datagram and a lost datagram
// is silently lost.
//
// Producer: remote control sender
// Consumer: msposd / flight controller
