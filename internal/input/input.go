// Package input turns raw terminal bytes into discrete key presses.
package input

import (
	"bufio"
)

// Key is a recognized key press.
type Key int

const (
	KeyNone Key = iota
	KeySpace
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeySpace:
		return "space"
	case KeyW:
		return "W"
	case KeyA:
		return "A"
	case KeyS:
		return "S"
	case KeyD:
		return "D"
	case KeyQuit:
		return "quit"
	default:
		return "none"
	}
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch     chan byte
	closed bool
	// pending holds an escape sequence cut off at the end of the last drain.
	pending []byte
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadKeys drains all available bytes from the stream without blocking and
// returns the recognized key presses in arrival order. An escape sequence
// split across drains is completed on the next call.
func ReadKeys(s *Stream) []Key {
	buf := s.pending
	s.pending = nil

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	keys, rest := parseKeys(buf)
	if !s.closed && len(rest) > 0 {
		s.pending = append([]byte(nil), rest...)
	}
	return keys
}

// ParseKeys maps raw bytes to key presses. Escape sequences (arrow keys and
// other CSI or SS3 codes) are skipped whole so their final byte is not read as
// a letter. An unterminated sequence at the end of buf is dropped.
func ParseKeys(buf []byte) []Key {
	keys, _ := parseKeys(buf)
	return keys
}

// parseKeys is ParseKeys that also returns an unterminated trailing escape
// sequence.
func parseKeys(buf []byte) (keys []Key, rest []byte) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			if i+1 == len(buf) {
				return keys, buf[i:]
			}
			switch buf[i+1] {
			case '[':
				// CSI: ESC [ params... final byte in 0x40..0x7e
				j := i + 2
				for j < len(buf) && (buf[j] < 0x40 || buf[j] > 0x7e) {
					j++
				}
				if j == len(buf) {
					return keys, buf[i:]
				}
				i = j
				continue
			case 'O':
				// SS3: ESC O final, sent for arrows in application cursor mode
				if i+2 == len(buf) {
					return keys, buf[i:]
				}
				i += 2
				continue
			}
		}

		if k := keyForByte(b); k != KeyNone {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func keyForByte(b byte) Key {
	switch b {
	case ' ':
		return KeySpace
	case 'w', 'W':
		return KeyW
	case 'a', 'A':
		return KeyA
	case 's', 'S':
		return KeyS
	case 'd', 'D':
		return KeyD
	case 'q', 'Q', '\x03':
		return KeyQuit
	default:
		return KeyNone
	}
}
