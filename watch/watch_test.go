package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestChanged(t *testing.T) {
	w, err := New(t.TempDir(), 0, func(string, []byte) {})
	if err != nil {
		t.Fatal(err)
	}
	steps := []struct {
		path string
		data string
		want bool
	}{
		{"a.sv6", "one", true},
		{"a.sv6", "one", false},
		{"b.sv6", "one", true},
		{"a.sv6", "two", true},
		{"a.sv6", "two", false},
		{"a.sv6", "one", true},
	}
	for i, s := range steps {
		if got := w.changed(s.path, []byte(s.data)); got != s.want {
			t.Errorf("step %d: changed(%q, %q) = %v, wanted %v", i, s.path, s.data, got, s.want)
		}
	}
}

func TestWanted(t *testing.T) {
	for name, want := range map[string]bool{
		"park.sv6":     true,
		"PARK.SV6":     true,
		"coaster.td6":  true,
		"notes.txt":    false,
		"park.sv6.zst": false,
		"sv6":          false,
	} {
		if got := wanted(name); got != want {
			t.Errorf("wanted(%q) = %v", name, got)
		}
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	type event struct {
		path string
		data string
	}
	events := make(chan event, 16)
	w, err := New(dir, 0, func(path string, data []byte) {
		events <- event{filepath.Base(path), string(data)}
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "park.sv6"), []byte("park"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-events:
		if want := (event{"park.sv6", "park"}); got != want {
			t.Errorf("Got %+v, wanted %+v", got, want)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no event for park.sv6")
	}
}
