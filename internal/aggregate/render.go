package aggregate

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// DefaultTitle heads the banner when no title is configured.
const DefaultTitle = "Project Documentation - Complete Documentation for LLM Context"

// rule separates the banner, the table of contents and each file section.
var rule = "# " + strings.Repeat("=", 78) + "\n"

// Document is the rendered aggregate, ready to be written.
type Document struct {
	Entries []FileEntry
	text    string
}

// String returns the full serialized document.
func (d *Document) String() string { return d.text }

// Bytes returns the serialized document as bytes.
func (d *Document) Bytes() []byte { return []byte(d.text) }

// RenderOptions controls the banner.
type RenderOptions struct {
	Title       string
	GeneratedAt time.Time
}

// Render builds the aggregate document from entries in the order given.
// Each file is read in full and must be valid UTF-8.
func Render(ctx context.Context, entries []FileEntry, opts RenderOptions) (*Document, error) {
	if len(entries) == 0 {
		return nil, &EmptyInputError{}
	}
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.GeneratedAt.IsZero() {
		opts.GeneratedAt = time.Now()
	}

	var b strings.Builder

	// Banner.
	b.WriteString("# " + opts.Title + "\n")
	b.WriteString(rule)
	fmt.Fprintf(&b, "# Generated: %s\n", opts.GeneratedAt.Format(time.RFC3339Nano))
	fmt.Fprintf(&b, "# Total Files: %d\n", len(entries))
	b.WriteString(rule)
	b.WriteString("\n")

	// Table of contents.
	b.WriteString("## TABLE OF CONTENTS\n\n")
	for i, e := range entries {
		fmt.Fprintf(&b, "%d. %s\n", i+1, e.RelPath)
	}
	b.WriteString("\n")

	b.WriteString(rule)
	b.WriteString("# DOCUMENTATION CONTENT\n")
	b.WriteString(rule)
	b.WriteString("\n")

	for i, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		content, err := readUTF8(e.Path)
		if err != nil {
			return nil, &ReadError{Path: e.Path, Err: err}
		}

		fmt.Fprintf(&b, "# FILE %d: %s\n", i+1, e.RelPath)
		b.WriteString(rule)
		b.WriteString(content)
		b.WriteString("\n\n")
		b.WriteString(rule)
		b.WriteString("\n")
	}

	return &Document{
		Entries: append([]FileEntry(nil), entries...),
		text:    b.String(),
	}, nil
}

func readUTF8(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	valid, _, err := transform.Bytes(encoding.UTF8Validator, raw)
	if err != nil {
		return "", err
	}
	return string(valid), nil
}
