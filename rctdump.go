package main

// rctdump prints what is inside RollerCoaster Tycoon 2 track designs (.td6)
// and saved games (.sv6).
// usage: rctdump [-v] [-dump DIR] FILE
//        rctdump -watch [DIR]
//
// Relative file names are resolved against "dir" in rctdump.ini.

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"rctdump/config"
	"rctdump/dump"
	"rctdump/rct"
	"rctdump/watch"
)

type options struct {
	verbose bool
	dumpDir string
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("rctdump", flag.ExitOnError)
	configFile := fs.String("config", config.DefaultFile, "configuration file")
	verbose := fs.Bool("v", false, "list the chunks of saved games")
	dumpDir := fs.String("dump", "", "write decoded chunks, zstd compressed, to this directory")
	watchMode := fs.Bool("watch", false, "summarize park files in a directory as the game writes them")
	fs.Parse(args)

	cfg, err := config.Load(*configFile)
	if err != nil {
		return err
	}
	opts := options{verbose: cfg.Verbose || *verbose, dumpDir: cfg.DumpDir}
	if *dumpDir != "" {
		opts.dumpDir = *dumpDir
	}

	if *watchMode {
		dir := fs.Arg(0)
		for _, d := range []string{cfg.WatchDir, cfg.Dir, "."} {
			if dir == "" {
				dir = d
			}
		}
		return watchDir(stdout, dir, cfg, opts)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(stdout, "No file provided")
		return nil
	}
	path := fs.Arg(0)
	if !filepath.IsAbs(path) && cfg.Dir != "" {
		path = filepath.Join(cfg.Dir, path)
	}
	return dumpFile(stdout, path, opts)
}

func fileKind(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

func dumpFile(w io.Writer, path string, opts options) error {
	switch fileKind(path) {
	case "td6", "sv6":
	default:
		fmt.Fprintln(w, "Unsupported extension")
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return summarize(w, path, data, opts)
}

func summarize(w io.Writer, path string, data []byte, opts options) error {
	var lines []string
	switch fileKind(path) {
	case "td6":
		t, err := rct.LoadTrackDesign(data)
		if err != nil {
			return errors.Wrap(err, path)
		}
		lines = describeTrack(t)
		if opts.dumpDir != "" {
			out, err := dump.Write(opts.dumpDir, path, 0, "design", t.Decoded)
			if err != nil {
				return err
			}
			lines = append(lines, "Dumped "+out)
		}

	case "sv6":
		p, err := rct.LoadPark(data)
		if errors.Is(err, rct.ErrCustomObjects) {
			lines = append(describeChecksum(p.Checksum, p.ChecksumValid), fmt.Sprintf("Custom objects: %d", p.CustomObjects))
			lines = append(lines, "Can't read Custom Objects yet... Sorry.")
			break
		}
		if err != nil {
			return errors.Wrap(err, path)
		}
		lines = describePark(p, opts.verbose)
		if opts.dumpDir != "" {
			for i, c := range p.Chunks {
				out, err := dump.Write(opts.dumpDir, path, i, rct.ChunkNames[i], c.Data)
				if err != nil {
					return err
				}
				lines = append(lines, "Dumped "+out)
			}
		}

	default:
		lines = []string{"Unsupported extension"}
	}

	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return nil
}

func watchDir(stdout io.Writer, dir string, cfg config.Config, opts options) error {
	w, err := watch.New(dir, cfg.WatchSettle, func(path string, data []byte) {
		fmt.Fprintf(stdout, "== %s\n", path)
		if err := summarize(stdout, path, data, opts); err != nil {
			fmt.Fprintln(stdout, err)
		}
	})
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()
	fmt.Fprintln(stdout, "Watching", dir)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	<-interrupt
	return nil
}
