// SPDX-License-Identifier: MIT

// Package batch validates many parameter files concurrently.
//
// Expand turns CLI arguments (plain paths or doublestar globs such as
// "sites/**/*.toml") into an ordered, de-duplicated file list; Run
// validates the list on a bounded worker pool and returns one Result per
// file in input order.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/katalvlaran/tokapit/pit"
	"github.com/katalvlaran/tokapit/validate"
)

// ErrNoMatch reports a glob that matched no parameter file.
var ErrNoMatch = errors.New("batch: pattern matched no files")

// Result is the outcome for one file. Err is set when the file could not
// be read or decoded; Findings is nil in that case.
type Result struct {
	Path     string             `json:"path"`
	Findings []validate.Finding `json:"findings,omitempty"`
	Err      error              `json:"-"`
}

// Failed reports whether the file could not be validated or has at least
// one blocking finding.
func (r Result) Failed() bool {
	return r.Err != nil || validate.HasErrors(r.Findings)
}

// Expand resolves args into file paths. Plain paths are kept as given even
// when they do not exist, so the read error surfaces in Run. Glob matches
// are sorted and filtered to .json and .toml files. A path reached through
// several arguments is listed once, at its first position.
func Expand(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, arg := range args {
		if !isGlob(arg) {
			add(arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("batch: %q: %w", arg, err)
		}
		sort.Strings(matches)
		n := 0
		for _, m := range matches {
			if _, err := pit.FormatFromPath(m); err != nil {
				continue
			}
			add(m)
			n++
		}
		if n == 0 {
			return nil, fmt.Errorf("%w: %q", ErrNoMatch, arg)
		}
	}

	return out, nil
}

func isGlob(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// Run reads and validates every path with at most workers goroutines.
// Results are index-aligned with paths. Files not started before ctx is
// cancelled get ctx.Err().
func Run(ctx context.Context, paths []string, workers int, log *slog.Logger) []Result {
	if workers < 1 {
		workers = 1
	}
	if workers > len(paths) {
		workers = len(paths)
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	results := make([]Result, len(paths))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = validateFile(paths[i], log)
			}
		}()
	}

	next := 0
feed:
	for ; next < len(paths) && ctx.Err() == nil; next++ {
		select {
		case jobs <- next:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	for i := next; i < len(paths); i++ {
		results[i] = Result{Path: paths[i], Err: ctx.Err()}
	}

	return results
}

func validateFile(path string, log *slog.Logger) Result {
	p, err := pit.ReadFile(path)
	if err != nil {
		log.Warn("read failed", "file", path, "err", err)
		return Result{Path: path, Err: err}
	}

	fs := validate.Validate(p)
	s := validate.Summarize(fs)
	log.Debug("validated", "file", path, "errors", s.Errors, "warnings", s.Warnings)

	return Result{Path: path, Findings: fs}
}
