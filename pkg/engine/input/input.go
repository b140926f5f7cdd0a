// Package input turns device key events into high-level game intents.
//
// Input flows through four layers: a backend emits RawInput, which is
// debounced, mapped through the bindings table and finally handed to the game
// as an Intent.
package input

const esc = 0x1b

// TerminalDecoder splits bytes read from a raw-mode terminal into key codes.
// Arrow keys arrive as CSI (ESC [) or SS3 (ESC O) sequences and may be split
// across reads, so an unfinished sequence at the end of a chunk is held back
// until the next Decode or an explicit Flush.
type TerminalDecoder struct {
	pending []byte
}

// Decode returns the keys completed by buf. Unknown escape sequences and
// non-printable bytes are dropped.
func (d *TerminalDecoder) Decode(buf []byte) []string {
	data := append(d.pending, buf...)
	d.pending = nil

	var codes []string
	for i := 0; i < len(data); i++ {
		b := data[i]

		if b == esc {
			rest := len(data) - i - 1
			if rest == 0 || (rest == 1 && isIntroducer(data[i+1])) {
				d.pending = append([]byte(nil), data[i:]...)
				break
			}
			if isIntroducer(data[i+1]) {
				if code := arrowCode(data[i+2]); code != "" {
					codes = append(codes, code)
				}
				i += 2
				continue
			}
			codes = append(codes, "escape")
			continue
		}

		// Handle Ctrl+C
		if b == 3 {
			codes = append(codes, "ctrl_c")
			continue
		}

		// Only keep printable characters
		if b >= 32 && b < 127 {
			c := b
			if c >= 'A' && c <= 'Z' {
				c += 'a' - 'A'
			}
			codes = append(codes, string(rune(c)))
		}
	}

	return codes
}

// Pending reports whether an unfinished escape sequence is held back
func (d *TerminalDecoder) Pending() bool {
	return len(d.pending) > 0
}

// Flush gives up waiting for the rest of a held-back sequence: the ESC that
// started it was the escape key itself.
func (d *TerminalDecoder) Flush() []string {
	if len(d.pending) == 0 {
		return nil
	}
	d.pending = nil
	return []string{"escape"}
}

// DecodeTerminal decodes one self-contained chunk; a trailing ESC is the escape key.
func DecodeTerminal(buf []byte) []string {
	var d TerminalDecoder
	return append(d.Decode(buf), d.Flush()...)
}

func isIntroducer(b byte) bool {
	return b == '[' || b == 'O'
}

func arrowCode(b byte) string {
	switch b {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}
