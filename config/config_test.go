package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeIni(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeIni(t, `dir = /games/rct2
verbose = true

[dump]
dir = /tmp/chunks

[watch]
dir = /games/rct2/saves
settle = 500ms
`)
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		Dir:         "/games/rct2",
		Verbose:     true,
		DumpDir:     "/tmp/chunks",
		WatchDir:    "/games/rct2/saves",
		WatchSettle: 500 * time.Millisecond,
	}
	if !cmp.Equal(want, got) {
		t.Errorf("Diff: %v", cmp.Diff(want, got))
	}
}

func TestLoadMissingFile(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "nope.ini"))
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(Default(), got) {
		t.Errorf("Diff: %v", cmp.Diff(Default(), got))
	}
}

func TestLoadPartial(t *testing.T) {
	got, err := Load(writeIni(t, "[watch]\nsettle = bogus\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got.WatchSettle != 2*time.Second || got.Verbose {
		t.Errorf("Got %+v, wanted defaults", got)
	}
}

func TestLoadNegativeSettle(t *testing.T) {
	if _, err := Load(writeIni(t, "[watch]\nsettle = -1s\n")); err == nil {
		t.Error("negative settle time accepted")
	}
}
