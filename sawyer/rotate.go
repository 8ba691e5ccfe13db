package sawyer

import "math/bits"

// Rotate unmasks b in place. Byte i is rotated right by 1, 3, 5, 7, 1, ...
func Rotate(b []byte) {
	k := 1
	for i, x := range b {
		b[i] = bits.RotateLeft8(x, -k)
		k += 2
		if k > 7 {
			k = 1
		}
	}
}
