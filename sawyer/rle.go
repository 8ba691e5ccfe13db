// Package sawyer decodes the chunk encodings used by Chris Sawyer's park
// files: run-length encoding, the repeat (back-reference) pass and the
// rotate mask.
package sawyer

import (
	"bufio"
	"bytes"
	"io"
)

type runKind uint8

const (
	runIdle runKind = iota
	runCopy
	runRepeat
)

// run is the decoder state: idle, copying n literal bytes, or repeating c n times.
type run struct {
	kind runKind
	n    int
	c    byte
}

// Reader decodes a run-length encoded stream.
//
// A control byte z >= 0 is followed by z+1 literal bytes. A control byte
// z < 0 is followed by one byte that is repeated -z+1 times. The stream ends
// at end of input; a run cut short by the end of input ends the stream
// without an error.
type Reader struct {
	r   io.ByteReader
	run run
	err error
}

func NewReader(r io.Reader) *Reader {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Reader{r: br}
}

// next moves an idle decoder to the next run. It reports false when the
// input is exhausted.
func (d *Reader) next() bool {
	cb, err := d.r.ReadByte()
	if err != nil {
		d.err = err
		return false
	}
	z := int8(cb)
	if z >= 0 {
		d.run = run{kind: runCopy, n: int(z) + 1}
		return true
	}
	c, err := d.r.ReadByte()
	if err != nil {
		d.err = err
		return false
	}
	d.run = run{kind: runRepeat, n: -int(z) + 1, c: c}
	return true
}

func (d *Reader) Read(b []byte) (int, error) {
	n := 0
	for n < len(b) && d.err == nil {
		switch d.run.kind {
		case runIdle:
			d.next()
			continue
		case runCopy:
			c, err := d.r.ReadByte()
			if err != nil {
				d.err = err
				continue
			}
			b[n] = c
		case runRepeat:
			b[n] = d.run.c
		}
		n++
		d.run.n--
		if d.run.n == 0 {
			d.run = run{}
		}
	}
	if n > 0 {
		return n, nil
	}
	if d.err == io.EOF || d.err == io.ErrUnexpectedEOF {
		return 0, io.EOF
	}
	return 0, d.err
}

// DecodeRLE decodes a whole run-length encoded buffer.
func DecodeRLE(src []byte) ([]byte, error) {
	return io.ReadAll(NewReader(bytes.NewReader(src)))
}
