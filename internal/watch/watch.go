// SPDX-License-Identifier: MIT

// Package watch re-validates a parameter file every time it changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/tokapit/pit"
	"github.com/katalvlaran/tokapit/validate"
)

// DefaultDebounce coalesces the burst of events editors emit per save.
const DefaultDebounce = 100 * time.Millisecond

// Report is the outcome of one validation pass. Err is set when the file
// could not be read or decoded, for example mid-save or after removal.
type Report struct {
	Path     string
	Params   pit.Params
	Findings []validate.Finding
	Err      error
}

// Watcher validates one file on start and again after each change.
type Watcher struct {
	Path     string
	Debounce time.Duration
	Log      *slog.Logger
}

// New returns a Watcher for path with the default debounce.
func New(path string, log *slog.Logger) *Watcher {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Watcher{Path: path, Debounce: DefaultDebounce, Log: log}
}

// Run calls onReport with the initial validation and then once per settled
// change until ctx is cancelled. The parent directory is watched so that
// editors replacing the file by rename are followed. Run returns nil on
// cancellation and an error if the watch cannot be established.
func (w *Watcher) Run(ctx context.Context, onReport func(Report)) error {
	abs, err := filepath.Abs(w.Path)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer fw.Close()
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch: %s: %w", filepath.Dir(abs), err)
	}

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	onReport(w.check())

	// The timer only runs while a change is pending.
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				w.Log.Debug("change", "file", w.Path, "op", event.Op.String())
				timer.Reset(debounce)
			}

		case <-timer.C:
			onReport(w.check())

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.Log.Warn("watch error", "file", w.Path, "err", err)
		}
	}
}

func (w *Watcher) check() Report {
	p, err := pit.ReadFile(w.Path)
	if err != nil {
		w.Log.Warn("read failed", "file", w.Path, "err", err)
		return Report{Path: w.Path, Err: err}
	}
	fs := validate.Validate(p)
	s := validate.Summarize(fs)
	w.Log.Info("validated", "file", w.Path, "errors", s.Errors, "warnings", s.Warnings)

	return Report{Path: w.Path, Params: p, Findings: fs}
}
