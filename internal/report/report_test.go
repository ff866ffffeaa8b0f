package report

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/dgallion1/llmsfull/internal/aggregate"
	"github.com/stretchr/testify/assert"
)

func TestReporter_DiscoveredAndSuccess(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Start()
	r.Discovered([]aggregate.FileEntry{
		{RelPath: "README.md"},
		{RelPath: "01-overview/intro.md"},
	})
	r.Success(&aggregate.Result{
		OutputPath: "/tmp/site/llms-full.txt",
		Bytes:      2621440,
		Tokens:     12345,
	})

	out := buf.String()
	assert.Contains(t, out, "Generating LLM context file...")
	assert.Contains(t, out, "Found 2 markdown files:")
	assert.Contains(t, out, "README.md\n")
	assert.Contains(t, out, "01-overview/intro.md\n")
	assert.Contains(t, out, "Successfully generated /tmp/site/llms-full.txt")
	assert.Contains(t, out, "File size: 2.50 MB (2,621,440 bytes)")
	assert.Contains(t, out, "Estimated tokens: ~12,345")
	assert.Contains(t, out, "attach llms-full.txt as LLM context")
}

func TestReporter_FailureEmptyInput(t *testing.T) {
	var buf bytes.Buffer
	err := fmt.Errorf("run: %w", &aggregate.EmptyInputError{Root: "/srv/docs"})

	New(&buf).Failure(err, "/srv/docs")

	assert.Contains(t, buf.String(), "No markdown files found in /srv/docs")
	assert.NotContains(t, buf.String(), "Error generating")
}

func TestReporter_FailureGeneric(t *testing.T) {
	var buf bytes.Buffer
	err := &aggregate.ReadError{Path: "/srv/docs/a.md", Err: errors.New("permission denied")}

	New(&buf).Failure(err, "/srv/docs")

	assert.Contains(t, buf.String(), "Error generating LLM context file: read /srv/docs/a.md: permission denied")
}
