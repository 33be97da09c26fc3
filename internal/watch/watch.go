// Package watch recompiles model documents when they change on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"model-generator/internal/compiler"
	"model-generator/internal/discover"
	"model-generator/internal/gen"
)

// DefaultDebounce is the quiet period before pending changes are compiled.
const DefaultDebounce = 100 * time.Millisecond

// fingerprintSpace namespaces document fingerprints.
var fingerprintSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("model-generator/watch"))

// Options configures a Watcher.
type Options struct {
	// Root is the directory searched for documents.
	Root string
	// Pattern selects documents below Root.
	Pattern string
	// OutputDir is the root generated files are written to.
	OutputDir string
	// Workers bounds the initial full build.
	Workers int
	// CacheSize bounds the number of remembered documents.
	CacheSize int
	// Debounce is the quiet period after the last change. Zero means
	// DefaultDebounce.
	Debounce time.Duration
	// Logger receives progress. Nil means slog.Default().
	Logger *slog.Logger
	// OnResult is called with every compiled unit.
	OnResult func(compiler.Result)
}

// Watcher keeps generated files in sync with model documents.
type Watcher struct {
	opts     Options
	compiler *compiler.Compiler
	logger   *slog.Logger
	// seen maps a unit ID to the fingerprint of its last compiled text.
	seen *lru.Cache[string, uuid.UUID]
}

// New creates a Watcher.
func New(c *compiler.Compiler, opts Options) (*Watcher, error) {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	seen, err := lru.New[string, uuid.UUID](opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating cache: %w", err)
	}

	return &Watcher{
		opts:     opts,
		compiler: c,
		logger:   opts.Logger,
		seen:     seen,
	}, nil
}

// fingerprint identifies a document text.
func fingerprint(text string) uuid.UUID {
	return uuid.NewSHA1(fingerprintSpace, []byte(text))
}

// Build compiles every matching document and writes the results.
func (w *Watcher) Build(ctx context.Context) error {
	paths, err := discover.Find(w.opts.Root, w.opts.Pattern)
	if err != nil {
		return err
	}

	units, err := discover.Load(ctx, w.opts.Root, paths)
	if err != nil {
		return err
	}

	for _, r := range w.compiler.CompileAll(ctx, units, w.opts.Workers) {
		if err := w.publish(r); err != nil {
			return err
		}
	}

	for _, u := range units {
		w.seen.Add(u.ID, fingerprint(u.Text))
	}

	return ctx.Err()
}

// Rebuild compiles one document, given relative to Root. It reports false when
// the text is unchanged since its last compilation.
func (w *Watcher) Rebuild(rel string) (bool, error) {
	data, err := os.ReadFile(filepath.Join(w.opts.Root, filepath.FromSlash(rel)))
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", rel, err)
	}

	text := string(data)
	sum := fingerprint(text)

	if prev, ok := w.seen.Get(rel); ok && prev == sum {
		return false, nil
	}

	if err := w.publish(w.compiler.Compile(compiler.Unit{ID: rel, Text: text})); err != nil {
		return false, err
	}

	w.seen.Add(rel, sum)

	return true, nil
}

// Forget drops a document from the cache so its next appearance compiles.
func (w *Watcher) Forget(rel string) {
	w.seen.Remove(rel)
}

func (w *Watcher) publish(r compiler.Result) error {
	if !r.Skipped() {
		written, err := gen.WriteFiles(r.Files, w.opts.OutputDir)
		if err != nil {
			return fmt.Errorf("writing %s: %w", r.UnitID, err)
		}

		for _, path := range written {
			w.logger.Debug("wrote file", "unit", r.UnitID, "path", path)
		}
	}

	if w.opts.OnResult != nil {
		w.opts.OnResult(r)
	}

	return nil
}

// Run watches Root until ctx is done. Matching documents that are created or
// written are recompiled once no change arrived for the debounce period.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := w.addTree(fw, w.opts.Root); err != nil {
		return err
	}

	w.logger.Info("watching", "root", w.opts.Root, "pattern", w.opts.Pattern)

	pending := make(map[string]struct{})

	timer := time.NewTimer(w.opts.Debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}

			if w.handle(fw, ev, pending) {
				timer.Reset(w.opts.Debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}

			w.logger.Warn("watch error", "error", err)

		case <-timer.C:
			w.flush(pending)
			clear(pending)
		}
	}
}

// handle records an event and reports whether a rebuild is now pending.
func (w *Watcher) handle(fw *fsnotify.Watcher, ev fsnotify.Event, pending map[string]struct{}) bool {
	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := w.addTree(fw, ev.Name); err != nil {
				w.logger.Warn("watching new directory", "path", ev.Name, "error", err)
			}

			return false
		}
	}

	rel, err := filepath.Rel(w.opts.Root, ev.Name)
	if err != nil {
		return false
	}

	rel = filepath.ToSlash(rel)
	if !discover.Match(w.opts.Pattern, rel) {
		return false
	}

	if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
		w.Forget(rel)
		delete(pending, rel)

		return false
	}

	if ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) {
		pending[rel] = struct{}{}

		return true
	}

	return false
}

func (w *Watcher) flush(pending map[string]struct{}) {
	for rel := range pending {
		changed, err := w.Rebuild(rel)

		switch {
		case errors.Is(err, fs.ErrNotExist):
			w.Forget(rel)
		case err != nil:
			w.logger.Error("rebuild failed", "unit", rel, "error", err)
		case !changed:
			w.logger.Debug("unchanged", "unit", rel)
		}
	}
}

// addTree watches dir and every directory below it.
func (w *Watcher) addTree(fw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if err := fw.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}

		return nil
	})
}
