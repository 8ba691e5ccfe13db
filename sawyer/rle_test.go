package sawyer_test

import (
	"bytes"
	"io"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"rctdump/sawyer"
	"rctdump/sawyer/sawyertest"
)

func TestReadCompressed(t *testing.T) {
	in := []byte{0xFD, 42, 1, 3, 4}
	want := []byte{42, 42, 42, 42, 3, 4}
	got, err := sawyer.DecodeRLE(in)
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(want, got) {
		t.Errorf("Got %v, wanted %v", got, want)
	}
}

func TestReadControlExtremes(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"zero copies one", []byte{0x00, 7}, []byte{7}},
		{"max literal", append([]byte{0x7F}, slices.Repeat([]byte{9}, 128)...), slices.Repeat([]byte{9}, 128)},
		{"minus one repeats twice", []byte{0xFF, 5}, []byte{5, 5}},
		{"minus 128 repeats 129 times", []byte{0x80, 6}, slices.Repeat([]byte{6}, 129)},
		{"empty", nil, []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sawyer.DecodeRLE(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if !cmp.Equal(tt.want, got) {
				t.Errorf("Got %v, wanted %v", got, tt.want)
			}
		})
	}
}

func TestReadTruncated(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"copy cut short", []byte{0x04, 1, 2}, []byte{1, 2}},
		{"repeat without byte", []byte{0x00, 1, 0xFE}, []byte{1}},
		{"control only", []byte{0x03}, []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sawyer.DecodeRLE(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if !cmp.Equal(tt.want, got) {
				t.Errorf("Got %v, wanted %v", got, tt.want)
			}
		})
	}
}

func randomRuns(r *rand.Rand, n int) []byte {
	var b []byte
	for len(b) < n {
		c := byte(r.Intn(4))
		if r.Intn(2) == 0 {
			b = append(b, slices.Repeat([]byte{c}, 1+r.Intn(300))...)
		} else {
			for range 1 + r.Intn(200) {
				b = append(b, byte(r.Intn(256)))
			}
		}
	}
	return b
}

func TestRLERoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for i := range 50 {
		want := randomRuns(r, 1+r.Intn(5000))
		got, err := sawyer.DecodeRLE(sawyertest.EncodeRLE(want))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(want, got) {
			t.Fatalf("case %d: round trip differs: %v", i, cmp.Diff(want, got))
		}
	}
}

func TestReadOneByteAtATime(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	enc := sawyertest.EncodeRLE(randomRuns(r, 4000))

	whole, err := io.ReadAll(sawyer.NewReader(bytes.NewReader(enc)))
	if err != nil {
		t.Fatal(err)
	}

	// no io.ByteReader, so NewReader wraps it in bufio
	d := sawyer.NewReader(struct{ io.Reader }{bytes.NewReader(enc)})
	var single []byte
	one := make([]byte, 1)
	for {
		n, err := d.Read(one)
		single = append(single, one[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
	}
	if !bytes.Equal(whole, single) {
		t.Errorf("Diff: %v", cmp.Diff(whole, single))
	}
}
