package sawyer

import (
	"encoding/binary"
	"math/bits"
)

// trackChecksumBias is subtracted from the running checksum of a td6 file.
const trackChecksumBias = 0x1D4C1

// SaveChecksum sums every byte into a wrapping 32-bit word.
func SaveChecksum(b []byte) uint32 {
	var sum uint32
	for _, x := range b {
		sum += uint32(x)
	}
	return sum
}

// TrackChecksum adds each byte into the low 8 bits only, then rotates the
// word 3 bits to the left.
func TrackChecksum(b []byte) uint32 {
	var sum uint32
	for _, x := range b {
		low := uint8(sum) + x
		sum = sum&0xFFFFFF00 | uint32(low)
		sum = bits.RotateLeft32(sum, 3)
	}
	return sum - trackChecksumBias
}

func trailer(file []byte) ([]byte, uint32, bool) {
	if len(file) < 8 {
		return nil, 0, false
	}
	body := file[:len(file)-4]
	return body, binary.LittleEndian.Uint32(file[len(file)-4:]), true
}

// ValidateSaveChecksum reports whether the trailing 4 bytes of an sv6 file
// match the sum of the rest.
func ValidateSaveChecksum(file []byte) bool {
	body, want, ok := trailer(file)
	return ok && SaveChecksum(body) == want
}

// ValidateTrackChecksum reports whether the trailing 4 bytes of a td6 file
// match the checksum of the encoded data before them.
func ValidateTrackChecksum(file []byte) bool {
	body, want, ok := trailer(file)
	return ok && TrackChecksum(body) == want
}
