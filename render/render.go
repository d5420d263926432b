package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

var (
	// ErrEmptyName indicates an artefact name was empty or contained a path separator.
	ErrEmptyName = errors.New("render: invalid artefact name")
	// ErrRenderFailed wraps a failing external renderer.
	ErrRenderFailed = errors.New("render: renderer failed")
)

// Default Graphviz settings.
const (
	DefaultBinary = "dot"
	DefaultFormat = "png"
)

// Renderer converts DOT source into an image file at outPath.
type Renderer interface {
	Render(ctx context.Context, dot []byte, outPath string) error
	// Ext is the file extension (without dot) of the produced images.
	Ext() string
}

// Graphviz renders by running `<Binary> -T<Format> -o <out>` with DOT on stdin.
type Graphviz struct {
	Binary string
	Format string
}

// NewGraphviz returns a Graphviz renderer, filling empty fields with defaults.
func NewGraphviz(binary, format string) *Graphviz {
	if binary == "" {
		binary = DefaultBinary
	}
	if format == "" {
		format = DefaultFormat
	}

	return &Graphviz{Binary: binary, Format: format}
}

// Ext returns the image format.
func (g *Graphviz) Ext() string { return g.Format }

// Render runs Graphviz; stderr is included in the error on failure.
func (g *Graphviz) Render(ctx context.Context, dot []byte, outPath string) error {
	cmd := exec.CommandContext(ctx, g.Binary, "-T"+g.Format, "-o", outPath)
	cmd.Stdin = bytes.NewReader(dot)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("%w: %s: %v: %s", ErrRenderFailed, g.Binary, err, msg)
		}

		return fmt.Errorf("%w: %s: %v", ErrRenderFailed, g.Binary, err)
	}

	return nil
}

// Artifacts writes named DOT files under Dir and renders them when Renderer is set.
type Artifacts struct {
	Dir      string
	Renderer Renderer
}

// Write stores dot as <Dir>/<name>.dot and, with a Renderer, produces
// <Dir>/<name>.<ext>. It returns the paths written, DOT first.
// Dir is created if missing.
func (a Artifacts) Write(ctx context.Context, name string, dot []byte) ([]string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("%w: %q", ErrEmptyName, name)
	}
	dir := a.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: create %s: %w", dir, err)
	}

	dotPath := filepath.Join(dir, name+".dot")
	if err := os.WriteFile(dotPath, dot, 0o644); err != nil {
		return nil, fmt.Errorf("render: write %s: %w", dotPath, err)
	}
	paths := []string{dotPath}
	if a.Renderer == nil {
		return paths, nil
	}

	imgPath := filepath.Join(dir, name+"."+a.Renderer.Ext())
	if err := a.Renderer.Render(ctx, dot, imgPath); err != nil {
		return paths, err
	}

	return append(paths, imgPath), nil
}
