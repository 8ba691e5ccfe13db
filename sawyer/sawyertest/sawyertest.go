// Package sawyertest builds encoded chunks and files for tests.
package sawyertest

import (
	"math/bits"
	"slices"

	"rctdump/sawyer"
)

func Pad(b []byte, l int) []byte {
	return append(b, slices.Repeat([]byte{0}, l-len(b))...)
}

func W(i uint16) []byte {
	return []byte{byte(i & 0xff), byte((i >> 8) & 0xff)}
}

func L(i uint32) []byte {
	return []byte{byte(i & 0xff), byte((i >> 8) & 0xff), byte((i >> 16) & 0xff), byte((i >> 24) & 0xff)}
}

// Put copies v into b at offset at.
func Put(b []byte, at int, v []byte) {
	copy(b[at:], v)
}

// EncodeRLE produces the canonical run-length encoding of data: runs of
// three or more equal bytes become repeat runs, everything else literal runs.
func EncodeRLE(data []byte) []byte {
	const maxRun = 128
	var out, lit []byte
	flush := func() {
		for len(lit) > 0 {
			c := min(len(lit), maxRun)
			out = append(out, byte(c-1))
			out = append(out, lit[:c]...)
			lit = lit[c:]
		}
	}
	for i := 0; i < len(data); {
		j := i + 1
		for j < len(data) && data[j] == data[i] && j-i < maxRun {
			j++
		}
		if n := j - i; n >= 3 {
			flush()
			out = append(out, byte(int8(1-n)), data[i])
		} else {
			lit = append(lit, data[i:j]...)
		}
		i = j
	}
	flush()
	return out
}

// EncodeRepeat produces input for sawyer.DecodeRepeat. Repeated bytes become
// back-references to the previous byte, everything else literal escapes.
func EncodeRepeat(data []byte) []byte {
	const maxRef = 7 // a length of 8 at offset -1 would collide with the 0xFF escape
	var out []byte
	for i := 0; i < len(data); {
		if i > 0 && data[i] == data[i-1] {
			n := 1
			for n < maxRef && i+n < len(data) && data[i+n] == data[i-1] {
				n++
			}
			out = append(out, BackRef(-1, n))
			i += n
			continue
		}
		out = append(out, 0xFF, data[i])
		i++
	}
	return out
}

// BackRef builds a repeat control byte. offset is in [-32, -1], length in [1, 8].
func BackRef(offset, length int) byte {
	return byte((offset+32)<<3 | (length - 1))
}

// Unrotate masks b in place, the inverse of sawyer.Rotate.
func Unrotate(b []byte) {
	k := 1
	for i, x := range b {
		b[i] = bits.RotateLeft8(x, k)
		k += 2
		if k > 7 {
			k = 1
		}
	}
}

// Encode encodes raw data with e.
func Encode(e sawyer.Encoding, raw []byte) []byte {
	switch e {
	case sawyer.RLE:
		return EncodeRLE(raw)
	case sawyer.RLECompressed:
		return EncodeRLE(EncodeRepeat(raw))
	case sawyer.Rotated:
		b := slices.Clone(raw)
		Unrotate(b)
		return b
	}
	return slices.Clone(raw)
}

// Chunk frames raw data as an on-disk chunk with encoding e.
func Chunk(e sawyer.Encoding, raw []byte) []byte {
	payload := Encode(e, raw)
	return slices.Concat([]byte{byte(e)}, L(uint32(len(payload))), payload)
}

// SaveFile concatenates chunks and appends the sv6 checksum.
func SaveFile(chunks ...[]byte) []byte {
	body := slices.Concat(chunks...)
	return append(body, L(sawyer.SaveChecksum(body))...)
}

// TrackFile run-length encodes a decoded track design and appends the td6
// checksum.
func TrackFile(raw []byte) []byte {
	body := EncodeRLE(raw)
	return append(body, L(sawyer.TrackChecksum(body))...)
}
