package main

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"rctdump/dump"
	"rctdump/rct"
	"rctdump/sawyer"
	st "rctdump/sawyer/sawyertest"
)

func trackFile() []byte {
	v := make([]byte, 0xA3)
	v[0x00] = 51
	v[0x4A] = 3
	v[0x4C] = 1
	v[0x4D] = 4
	v[0x50] = 12
	v[0x5B] = 65
	v[0x5C] = 48
	v[0x5D] = 22
	v = append(v, 0x02, 0x00, 0x28, 0x81, 0xFF)
	return st.TrackFile(v)
}

func saveFile(customObjects uint16) []byte {
	game := make([]byte, 0x2A_22E0)
	st.Put(game, 0x27_1024, st.L(10000))
	st.Put(game, 0x27_1028, st.L(5000))
	st.Put(game, 0x27_1030, st.L(100))
	st.Put(game, 0x27_148C, st.W(321))
	st.Put(game, 0x27_18F8, st.W(999))
	st.Put(game, 0x27_2440, st.L(rct.EncryptMoney(4242)))
	ride := game[0x27_C540:]
	ride[0] = 0x17
	st.Put(ride, 0x138, st.W(95))
	st.Put(ride, 0x140, st.W(600))
	st.Put(ride, 0x142, st.W(500))
	st.Put(ride, 0x144, st.W(400))
	st.Put(ride, 0x180, st.W(1033-50))
	ride[rct.RideSize] = 0xFF

	return st.SaveFile(
		st.Chunk(sawyer.None, st.Pad(slices.Concat(st.W(2), st.W(customObjects)), 32)),
		st.Chunk(sawyer.RLE, make([]byte, 100)),
		st.Chunk(sawyer.None, st.Pad(slices.Concat(st.W(1033), st.W(0)), 16)),
		st.Chunk(sawyer.RLECompressed, make([]byte, 1000)),
		st.Chunk(sawyer.RLE, game),
	)
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runLines(t *testing.T, args ...string) []string {
	t.Helper()
	var out bytes.Buffer
	args = append([]string{"-config", filepath.Join(t.TempDir(), "none.ini")}, args...)
	if err := run(args, &out); err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
}

func TestNoFile(t *testing.T) {
	got := runLines(t)
	if want := []string{"No file provided"}; !cmp.Equal(want, got) {
		t.Errorf("Diff: %v", cmp.Diff(want, got))
	}
}

func TestUnsupportedExtension(t *testing.T) {
	got := runLines(t, writeFile(t, "park.sc6", []byte{1, 2, 3}))
	if want := []string{"Unsupported extension"}; !cmp.Equal(want, got) {
		t.Errorf("Diff: %v", cmp.Diff(want, got))
	}
}

func TestMissingFile(t *testing.T) {
	err := run([]string{"-config", "", filepath.Join(t.TempDir(), "gone.sv6")}, &bytes.Buffer{})
	if err == nil {
		t.Error("missing file did not fail")
	}
}

func TestTrackDesign(t *testing.T) {
	got := runLines(t, writeFile(t, "coaster.TD6", trackFile()))
	want := []string{
		"Track type: 51",
		"Air time: 12",
		"Number of trains: 1",
		"Cars per train: 4",
		"Speed: 12",
		"Excitement: 6.5; Intensity: 4.8; Nausea: 2.2",
		"Track [Station begin; q: 00000000]",
		"Track [L vertical loop; q: 10000001]",
		"Number of segments: 2",
	}
	if !strings.HasSuffix(got[0], "(ok)") {
		t.Errorf("Got %q, wanted a valid checksum", got[0])
	}
	if !cmp.Equal(want, got[1:]) {
		t.Errorf("Diff: %v", cmp.Diff(want, got[1:]))
	}
}

func TestPark(t *testing.T) {
	got := runLines(t, writeFile(t, "park.sv6", saveFile(0)))
	want := []string{
		"Day: 1; Month: 1; Year: 129",
		"Initial cash: 10000",
		"Loan: 5000",
		"Entrance fee: 100",
		"Guests in park: 321",
		"Park rating: 999",
		"Real cash: 4242",
		"+-= RIDE 0x17 =-",
		"| Excitement: 600; Intensity: 500; Nausea: 400",
		"| Age (months): 50",
		"| Ticket price: 9.5 (suggested 9.6)",
		"| Calculated: 9.5",
		".",
		"Number of rides: 1",
	}
	if !strings.HasSuffix(got[0], "(ok)") {
		t.Errorf("Got %q, wanted a valid checksum", got[0])
	}
	if !cmp.Equal(want, got[1:]) {
		t.Errorf("Diff: %v", cmp.Diff(want, got[1:]))
	}
}

func TestParkVerboseAndDump(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, "park.sv6", saveFile(0))
	got := runLines(t, "-v", "-dump", dir, path)

	var chunks, dumped []string
	for _, line := range got {
		if strings.HasPrefix(line, "Chunk ") {
			chunks = append(chunks, line)
		}
		if strings.HasPrefix(line, "Dumped ") {
			dumped = append(dumped, strings.TrimPrefix(line, "Dumped "))
		}
	}
	if len(chunks) != 5 || len(dumped) != 5 {
		t.Fatalf("Got %d chunk lines and %d dumps, wanted 5 each", len(chunks), len(dumped))
	}
	if !strings.Contains(chunks[3], "rle+repeat") || !strings.Contains(chunks[3], "1000 bytes") {
		t.Errorf("Got %q", chunks[3])
	}

	data, err := dump.Read(dumped[2])
	if err != nil {
		t.Fatal(err)
	}
	if want := st.Pad(slices.Concat(st.W(1033), st.W(0)), 16); !cmp.Equal(want, data) {
		t.Errorf("Diff: %v", cmp.Diff(want, data))
	}
}

func TestCustomObjects(t *testing.T) {
	got := runLines(t, writeFile(t, "custom.sv6", saveFile(3)))
	want := []string{
		"Custom objects: 3",
		"Can't read Custom Objects yet... Sorry.",
	}
	if !cmp.Equal(want, got[1:]) {
		t.Errorf("Diff: %v", cmp.Diff(want, got[1:]))
	}
}

func TestCorruptSave(t *testing.T) {
	data := saveFile(0)
	path := writeFile(t, "broken.sv6", data[:len(data)/3])
	err := run([]string{"-config", "", path}, &bytes.Buffer{})
	if err == nil {
		t.Error("truncated save did not fail")
	}
}
