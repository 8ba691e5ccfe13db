package sawyer

import (
	"github.com/pkg/errors"
)

var (
	ErrBadBackReference = errors.New("back-reference outside decoded output")
	ErrTruncatedEscape  = errors.New("literal escape at end of input")
)

// DecodeRepeat expands the second pass applied to chunks with encoding
// RLECompressed. 0xFF escapes the next byte as a literal. Any other control
// byte x copies (x&7)+1 bytes starting (x>>3)-32 bytes back from the end of
// the output.
func DecodeRepeat(src []byte) ([]byte, error) {
	out := make([]byte, 0, len(src))
	for i := 0; i < len(src); {
		x := src[i]
		if x == 0xFF {
			if i+1 >= len(src) {
				return nil, errors.Wrapf(ErrTruncatedEscape, "offset %d", i)
			}
			out = append(out, src[i+1])
			i += 2
			continue
		}
		length := int(x&7) + 1
		start := len(out) + int(x>>3) - 32
		if start < 0 || start >= len(out) {
			return nil, errors.Wrapf(ErrBadBackReference, "offset %d: start %d, have %d bytes", i, start, len(out))
		}
		// byte by byte: the copy may read what it has just written
		for j := start; j < start+length; j++ {
			out = append(out, out[j])
		}
		i++
	}
	return out, nil
}
