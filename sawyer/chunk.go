package sawyer

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

type Encoding uint8

const (
	None          Encoding = 0
	RLE           Encoding = 1
	RLECompressed Encoding = 2
	Rotated       Encoding = 3
)

func (e Encoding) String() string {
	switch e {
	case None:
		return "none"
	case RLE:
		return "rle"
	case RLECompressed:
		return "rle+repeat"
	case Rotated:
		return "rotate"
	}
	return fmt.Sprintf("unknown(%d)", uint8(e))
}

const ChunkHeaderSize = 5

type ChunkHeader struct {
	Encoding Encoding
	Length   uint32 // payload bytes on disk
}

// Chunk is a decoded chunk. Length is the on-disk payload size; len(Data)
// depends on the content.
type Chunk struct {
	Encoding Encoding
	Length   uint32
	Data     []byte
}

type ChunkReader struct {
	r io.Reader
}

func NewChunkReader(r io.Reader) *ChunkReader {
	return &ChunkReader{r: r}
}

func (cr *ChunkReader) ReadHeader() (ChunkHeader, error) {
	var b [ChunkHeaderSize]byte
	if _, err := io.ReadFull(cr.r, b[:]); err != nil {
		return ChunkHeader{}, err
	}
	return ChunkHeader{
		Encoding: Encoding(b[0]),
		Length:   binary.LittleEndian.Uint32(b[1:]),
	}, nil
}

// ReadChunk reads the next header and its payload and decodes it. A chunk
// with an unknown encoding decodes to an empty buffer.
func (cr *ChunkReader) ReadChunk() (*Chunk, error) {
	h, err := cr.ReadHeader()
	if err != nil {
		return nil, errors.Wrap(err, "chunk header")
	}
	payload := make([]byte, h.Length)
	n, err := io.ReadFull(cr.r, payload)
	if err != nil {
		return nil, errors.Wrapf(err, "chunk payload: read %d bytes, expected %d", n, h.Length)
	}
	data, err := Decode(h.Encoding, payload)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %v chunk", h.Encoding)
	}
	return &Chunk{Encoding: h.Encoding, Length: h.Length, Data: data}, nil
}

// Decode applies encoding e to payload. The payload may be modified.
func Decode(e Encoding, payload []byte) ([]byte, error) {
	switch e {
	case None:
		return payload, nil
	case RLE:
		return DecodeRLE(payload)
	case RLECompressed:
		b, err := DecodeRLE(payload)
		if err != nil {
			return nil, err
		}
		return DecodeRepeat(b)
	case Rotated:
		Rotate(payload)
		return payload, nil
	}
	return []byte{}, nil
}
