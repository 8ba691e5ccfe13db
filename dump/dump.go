// Package dump stores decoded chunk buffers as zstd files for offline
// inspection.
package dump

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// FileName is <base>.<index>.<name>.zst, base being the input file name.
func FileName(base string, index int, name string) string {
	return fmt.Sprintf("%s.%d.%s.zst", filepath.Base(base), index, name)
}

// Write compresses data into dir and returns the path written.
func Write(dir, base string, index int, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrap(err, "dump")
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return "", errors.Wrap(err, "dump")
	}
	defer enc.Close()

	path := filepath.Join(dir, FileName(base, index, name))
	if err := os.WriteFile(path, enc.EncodeAll(data, nil), 0644); err != nil {
		return "", errors.Wrap(err, "dump")
	}
	return path, nil
}

// Read returns the decoded buffer stored at path.
func Read(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "dump")
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, errors.Wrap(err, "dump")
	}
	defer dec.Close()
	out, err := dec.DecodeAll(b, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "dump %s", path)
	}
	return out, nil
}
