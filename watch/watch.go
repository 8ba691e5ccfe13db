// Package watch re-reads park files as the game writes them.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

// Handler gets the path and contents of a changed file.
type Handler func(path string, data []byte)

var Extensions = []string{".sv6", ".td6"}

const rememberedFiles = 128

type Watcher struct {
	dir     string
	settle  time.Duration
	handle  Handler
	seen    *lru.Cache[string, uint64]
	watcher *fsnotify.Watcher
	wg      sync.WaitGroup
}

// New watches dir. Each write to a park file is handled settle after the
// write, unless the contents are the same as last time.
func New(dir string, settle time.Duration, handle Handler) (*Watcher, error) {
	seen, err := lru.New[string, uint64](rememberedFiles)
	if err != nil {
		return nil, err
	}
	return &Watcher{dir: dir, settle: settle, handle: handle, seen: seen}, nil
}

func wanted(name string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(name)))
}

func (w *Watcher) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "watch")
	}
	w.watcher = watcher

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) && wanted(event.Name) {
					w.handleFile(event.Name)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Println("watch:", err)
			}
		}
	}()

	if err := watcher.Add(w.dir); err != nil {
		w.Stop()
		return errors.Wrapf(err, "watch %s", w.dir)
	}
	return nil
}

func (w *Watcher) Stop() {
	if w.watcher != nil {
		w.watcher.Close()
		w.wg.Wait()
	}
}

func (w *Watcher) handleFile(path string) {
	// let the game finish writing
	time.Sleep(w.settle)

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Println("watch:", err)
		return
	}
	if !w.changed(path, data) {
		return
	}
	w.handle(path, data)
}

// changed records the digest of data and reports whether it differs from
// the one last recorded for path.
func (w *Watcher) changed(path string, data []byte) bool {
	sum := xxhash.Sum64(data)
	if last, ok := w.seen.Get(path); ok && last == sum {
		return false
	}
	w.seen.Add(path, sum)
	return true
}
