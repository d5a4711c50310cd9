// Command shapedemo renders a YAML scene of shapekit widgets to PNG and SVG.
//
// Usage:
//
//	shapedemo -config scene.yaml -output shapes.png -svg shapes.svg [-watch] [-v]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/shapekit"
	"github.com/gogpu/shapekit/internal/scene"
	"github.com/gogpu/shapekit/render"
)

// Editors often write a file in several steps; events closer together than
// this are coalesced into one render.
const debounceDelay = 100 * time.Millisecond

func main() {
	var (
		config  = flag.String("config", "scene.yaml", "scene file")
		output  = flag.String("output", "shapes.png", "PNG output file")
		svgOut  = flag.String("svg", "", "SVG output file (optional)")
		watch   = flag.Bool("watch", false, "re-render when the scene file changes")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	shapekit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := renderScene(*config, *output, *svgOut); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if !*watch {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	log.Printf("Watching %s", *config)
	err := watchScene(ctx, *config, func() {
		if err := renderScene(*config, *output, *svgOut); err != nil {
			// keep watching; the next save may fix the file
			log.Printf("Failed to render: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to watch: %v", err)
	}
}

// renderScene loads config and writes the PNG and, when svgPath is set,
// the SVG concurrently.
func renderScene(config, pngPath, svgPath string) error {
	d, err := scene.Load(config)
	if err != nil {
		return err
	}
	s, err := d.Build()
	if err != nil {
		return fmt.Errorf("%s: %w", config, err)
	}

	title := filepath.Base(config)
	var g errgroup.Group
	g.Go(func() error {
		return render.SavePNG(pngPath, s, render.WithTitle(title))
	})
	if svgPath != "" {
		g.Go(func() error {
			return writeSVG(svgPath, s, title)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.Printf("Scene saved to %s (%dx%d, %d commands)", pngPath, s.Width(), s.Height(), s.CommandCount())
	return nil
}

func writeSVG(path string, s *render.Scene, title string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return render.NewSVGRenderer(f, render.WithTitle(title)).Render(s)
}

// watchScene calls onChange after path is written or recreated, until ctx
// is done. The parent directory is watched so editors that save by rename
// keep triggering events.
func watchScene(ctx context.Context, path string, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				shapekit.Logger().Debug("watch: event", "op", ev.Op.String(), "file", ev.Name)
				pending = time.After(debounceDelay)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			shapekit.Logger().Warn("watch: error", "err", err)
		case <-pending:
			pending = nil
			onChange()
		}
	}
}
