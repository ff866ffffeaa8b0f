// Package aggregate concatenates a tree of Markdown documentation into a
// single text file meant to be pasted into a language model's context.
package aggregate

import (
	"context"
	"log/slog"
	"time"
)

// Options configures an Aggregator.
type Options struct {
	DocsDir     string
	OutputPath  string
	Title       string
	ExcludeDirs []string
	Priorities  PriorityTable

	// OnDiscovered, if set, receives the ordered entries before rendering.
	OnDiscovered func([]FileEntry)
	// Now overrides the clock used for the banner timestamp.
	Now func() time.Time
}

// Result describes a completed run.
type Result struct {
	Entries    []FileEntry
	OutputPath string
	Bytes      int64
	Tokens     int
}

// Aggregator runs discover, order, render and write once per Run.
type Aggregator struct {
	opts Options
	log  *slog.Logger
}

// New returns an Aggregator. Unset exclusions and priorities fall back to
// DefaultExcludeDirs and DefaultPriorities.
func New(opts Options, log *slog.Logger) *Aggregator {
	if opts.ExcludeDirs == nil {
		opts.ExcludeDirs = DefaultExcludeDirs
	}
	if opts.Priorities == nil {
		opts.Priorities = DefaultPriorities
	}
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Aggregator{opts: opts, log: log}
}

// Run executes the pipeline. Any error aborts the run; the output file is
// only replaced after every input has been read.
func (a *Aggregator) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	a.log.Info("aggregating documentation", "docs_dir", a.opts.DocsDir, "output", a.opts.OutputPath)

	entries, err := Discover(a.opts.DocsDir, a.opts.ExcludeDirs, a.log)
	if err != nil {
		return nil, err
	}
	entries = Order(entries, a.opts.Priorities)

	if len(entries) == 0 {
		return nil, &EmptyInputError{Root: a.opts.DocsDir}
	}
	if a.opts.OnDiscovered != nil {
		a.opts.OnDiscovered(entries)
	}

	doc, err := Render(ctx, entries, RenderOptions{
		Title:       a.opts.Title,
		GeneratedAt: a.opts.Now(),
	})
	if err != nil {
		return nil, err
	}

	n, err := Write(doc, a.opts.OutputPath)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Entries:    entries,
		OutputPath: a.opts.OutputPath,
		Bytes:      n,
		Tokens:     EstimateTokens(doc.String()),
	}
	a.log.Info("aggregate written",
		"output", res.OutputPath,
		"files", len(entries),
		"bytes", res.Bytes,
		"tokens", res.Tokens,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}
