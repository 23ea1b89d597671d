package main

import (
	"flag"
	"log"
	"net"

	"github.com/henkwiedig/msposd-remote/pkg/msp"
)

// msplisten binds the receiver port and decodes every MSP frame it
// gets, for checking a sender without a flight controller attached.

var listenAddr = ":14551"

func init() {
	flag.StringVar(&listenAddr, "listen", listenAddr, "UDP address to listen on.")
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	addr, err := net.ResolveUDPAddr("udp4", listenAddr)
	if err != nil {
		log.Fatalln(err)
	}
	conn, err := net.ListenUDP("udp4", addr)
	if err != nil {
		log.Fatalln(err)
	}
	defer conn.Close()
	log.Printf("listening on %s", conn.LocalAddr())

	buf := make([]byte, 2048)
	for {
		n, peer, err := conn.ReadFromUDP(buf)
		if err != nil {
			log.Fatalln(err)
		}
		// one frame per datagram; a fresh parser per datagram keeps
		// a truncated frame from poisoning the next one
		var p msp.Parser
		frames := p.Parse(buf[:n])
		if len(frames) == 0 {
			log.Printf("%s: %d bytes, no valid frame: %x", peer, n, buf[:n])
			continue
		}
		for _, f := range frames {
			switch f.Cmd {
			case msp.CmdRC:
				ch, err := msp.ChannelsFromBytes(f.Payload)
				if err != nil {
					log.Printf("%s: cmd %d bad channel payload: %v", peer, f.Cmd, err)
					continue
				}
				log.Printf("%s: '%c' cmd %d channels %v", peer, f.Dir, f.Cmd, ch)
			default:
				log.Printf("%s: '%c' cmd %d payload %x", peer, f.Dir, f.Cmd, f.Payload)
			}
		}
	}
}
