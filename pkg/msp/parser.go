package msp

// Parser is an incremental decoder of the MSP wire format.
// It resynchronizes on the '$' 'M' header after any framing or
// checksum error, so it can pick up a byte stream mid-frame.
type Parser struct {
	state   parseState
	frame   Frame
	recvLen byte
}

type parseState int

const (
	stateMagic0 parseState = iota // waiting for '$'
	stateMagic1                   // waiting for 'M'
	stateDir                      // waiting for direction tag
	stateSize                     // waiting for payload size
	stateCmd                      // waiting for command id
	statePayload                  // waiting for payload bytes
	stateChecksum                 // waiting for checksum
)

// ParseByte feeds one byte into the parser. It returns a complete
// frame when the byte closes one with a valid checksum, else nil.
func (p *Parser) ParseByte(b byte) *Frame {
	switch p.state {
	case stateMagic0:
		if b == header[0] {
			p.state = stateMagic1
		}
	case stateMagic1:
		if b == header[1] {
			p.state = stateDir
		} else {
			p.state = stateMagic0
		}
	case stateDir:
		if Direction(b).IsValid() {
			p.frame = Frame{Dir: Direction(b)}
			p.state = stateSize
		} else {
			p.state = stateMagic0
		}
	case stateSize:
		p.recvLen = b
		p.frame.Payload = make([]byte, 0, b)
		p.state = stateCmd
	case stateCmd:
		p.frame.Cmd = b
		if p.recvLen == 0 {
			p.state = stateChecksum
		} else {
			p.state = statePayload
		}
	case statePayload:
		p.frame.Payload = append(p.frame.Payload, b)
		if byte(len(p.frame.Payload)) == p.recvLen {
			p.state = stateChecksum
		}
	case stateChecksum:
		p.state = stateMagic0
		if b == p.frame.Checksum() {
			f := p.frame
			p.frame = Frame{}
			return &f
		}
	}
	return nil
}

// Parse feeds a buffer and returns all frames completed by it.
func (p *Parser) Parse(buf []byte) []*Frame {
	var frames []*Frame
	for _, b := range buf {
		if f := p.ParseByte(b); f != nil {
			frames = append(frames, f)
		}
	}
	return frames
}
