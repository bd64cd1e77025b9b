// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pdiddy/question-bank/internal/container"
)

// runFunc executes a command with piped stdin and stdout. Tests replace it.
type runFunc func(ctx context.Context, name string, args []string, stdin io.Reader, stdout io.Writer) error

func runCommand(ctx context.Context, name string, args []string, stdin io.Reader, stdout io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	return cmd.Run()
}

// PdftotextConverter runs the poppler pdftotext binary found on PATH.
type PdftotextConverter struct {
	bin string
	run runFunc
}

// NewPdftotextConverter returns a converter invoking bin ("pdftotext" when empty).
func NewPdftotextConverter(bin string) *PdftotextConverter {
	if bin == "" {
		bin = "pdftotext"
	}
	return &PdftotextConverter{bin: bin, run: runCommand}
}

// Convert runs pdftotext on path and returns its UTF-8 output.
func (p *PdftotextConverter) Convert(ctx context.Context, path string) (string, error) {
	var out bytes.Buffer
	args := []string{"-enc", "UTF-8", path, "-"}
	if err := p.run(ctx, p.bin, args, nil, &out); err != nil {
		return "", fmt.Errorf("running %s on %s: %w", p.bin, path, err)
	}
	return joinPages(path, splitFormFeeds(out.String()))
}

// ContainerConverter pipes PDFs through a pdftotext container image. It
// depends on a container.Runtime (docker or podman) injected at construction.
type ContainerConverter struct {
	runtime container.Runtime
	image   string
}

// NewContainerConverter verifies that image exists in rt before returning.
func NewContainerConverter(rt container.Runtime, image string) (*ContainerConverter, error) {
	if err := rt.ImageExists(image); err != nil {
		return nil, fmt.Errorf("pdftotext image not available in %s: %w", rt.Name(), err)
	}
	return &ContainerConverter{runtime: rt, image: image}, nil
}

// Convert streams the PDF at path into the container and returns its text.
func (c *ContainerConverter) Convert(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	var out bytes.Buffer
	args := []string{"-enc", "UTF-8", "-", "-"}
	if err := c.runtime.Run(ctx, c.image, args, f, &out); err != nil {
		return "", fmt.Errorf("converting %s with %s: %w", path, c.image, err)
	}
	return joinPages(path, splitFormFeeds(out.String()))
}

// splitFormFeeds splits pdftotext output into pages. pdftotext terminates
// every page with a form feed.
func splitFormFeeds(s string) []string {
	pages := strings.Split(s, "\f")
	for i, p := range pages {
		pages[i] = strings.TrimRight(p, "\n")
	}
	return pages
}
