// Package config reads rctdump.ini.
//
//	dir = /path/to/Saved Games   ; base for relative file names
//	verbose = true               ; list chunks
//
//	[dump]
//	dir = /tmp/chunks
//
//	[watch]
//	dir = /path/to/Saved Games
//	settle = 2s
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

const DefaultFile = "rctdump.ini"

type Config struct {
	Dir         string
	Verbose     bool
	DumpDir     string
	WatchDir    string
	WatchSettle time.Duration
}

func Default() Config {
	return Config{WatchSettle: 2 * time.Second}
}

// Load reads path. A missing file gives the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return c, nil
	}
	f, err := ini.Load(path)
	if err != nil {
		return c, errors.Wrapf(err, "config %s", path)
	}
	// the default section can be represented as empty string
	top := f.Section("")
	c.Dir = top.Key("dir").String()
	c.Verbose = top.Key("verbose").MustBool(false)
	c.DumpDir = f.Section("dump").Key("dir").String()
	c.WatchDir = f.Section("watch").Key("dir").String()
	c.WatchSettle = f.Section("watch").Key("settle").MustDuration(c.WatchSettle)
	if c.WatchSettle < 0 {
		return c, errors.Errorf("config %s: negative watch settle time %v", path, c.WatchSettle)
	}
	return c, nil
}
