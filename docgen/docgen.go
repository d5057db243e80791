// Package docgen generates Markdown documentation for a source file or a
// whole directory tree, mirroring the input layout under an output root.
package docgen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/roveo/pydocmd/exclude"
	"github.com/roveo/pydocmd/languages"
	"github.com/roveo/pydocmd/render"
)

// DefaultOutputDir is used when no output directory is given.
const DefaultOutputDir = "doc"

// DefaultMaxDepth bounds directory recursion.
const DefaultMaxDepth = 64

// ErrMaxDepth is returned when the input tree is nested deeper than
// Config.MaxDepth.
var ErrMaxDepth = errors.New("maximum directory depth exceeded")

// Config holds the generator configuration
type Config struct {
	OutputDir string             // Output root (default DefaultOutputDir)
	Language  languages.Language // Parser used for every source file
	Exclude   *exclude.Matcher   // Entries to skip (default exclude.Default())
	MaxDepth  int                // Recursion limit (0 = DefaultMaxDepth)
	Logger    log.FieldLogger    // Defaults to the logrus standard logger
}

// Generator writes Markdown files for source files.
type Generator struct {
	cfg Config
}

// New returns a Generator with defaults filled in for unset fields.
func New(cfg Config) (*Generator, error) {
	if cfg.Language == nil {
		return nil, errors.New("docgen: no language configured")
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.Exclude == nil {
		cfg.Exclude = exclude.Default()
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	if cfg.Logger == nil {
		cfg.Logger = log.StandardLogger()
	}
	return &Generator{cfg: cfg}, nil
}

// Run documents input, which may be a single file or a directory. The
// output root is created if it does not exist.
func (g *Generator) Run(input string) error {
	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("failed to stat input: %w", err)
	}

	if err := os.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if info.IsDir() {
		return g.GenerateDir(input, g.cfg.OutputDir)
	}
	return g.GenerateFile(input, filepath.Join(g.cfg.OutputDir, filepath.Base(input)))
}

// GenerateFile parses inPath and writes its documentation next to outPath
// with the extension replaced by .md.
func (g *Generator) GenerateFile(inPath, outPath string) error {
	content, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	mod, err := g.cfg.Language.Parse(content)
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}
	mod.Name = filepath.Base(inPath)

	target := MarkdownPath(outPath)
	if err := writeMarkdown(target, mod); err != nil {
		return err
	}

	logger := g.cfg.Logger.WithField("source", inPath)
	for _, fn := range mod.Functions {
		logger.WithFields(log.Fields{"function": fn.Name, "line": fn.Location.Start.Line + 1}).Debug("documented function")
	}
	for _, cls := range mod.Classes {
		logger.WithFields(log.Fields{
			"class":   cls.Name,
			"line":    cls.Location.Start.Line + 1,
			"methods": len(cls.Methods),
		}).Debug("documented class")
	}
	logger.WithFields(log.Fields{
		"output":    target,
		"functions": len(mod.Functions),
		"classes":   len(mod.Classes),
	}).Info("generated documentation")
	return nil
}

func writeMarkdown(target string, mod *languages.Module) error {
	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("failed to create documentation file: %w", err)
	}
	if err := render.Module(f, mod); err != nil {
		f.Close()
		return fmt.Errorf("failed to write documentation: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write documentation: %w", err)
	}
	return nil
}

// GenerateDir documents the source files directly inside inDir into outDir,
// then recurses into each subdirectory with a matching output subdirectory.
// Entries are visited in file name order.
func (g *Generator) GenerateDir(inDir, outDir string) error {
	return g.generateDir(inDir, outDir, 0)
}

func (g *Generator) generateDir(inDir, outDir string, depth int) error {
	if depth > g.cfg.MaxDepth {
		return fmt.Errorf("%s: %w (%d)", inDir, ErrMaxDepth, g.cfg.MaxDepth)
	}

	entries, err := os.ReadDir(inDir)
	if err != nil {
		return fmt.Errorf("failed to read directory: %w", err)
	}

	var subdirs []string
	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(inDir, name)

		if entry.IsDir() {
			subdirs = append(subdirs, name)
			continue
		}
		if !languages.Handles(g.cfg.Language, name) {
			continue
		}
		if g.cfg.Exclude.Match(name) {
			g.cfg.Logger.WithField("path", path).Debug("skipping excluded file")
			continue
		}
		if entry.Type()&os.ModeSymlink != 0 {
			// follow links to files, never to directories
			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("failed to resolve symlink: %w", err)
			}
			if info.IsDir() {
				g.cfg.Logger.WithField("path", path).Debug("skipping symlinked directory")
				continue
			}
		}
		if err := g.GenerateFile(path, filepath.Join(outDir, name)); err != nil {
			return err
		}
	}

	for _, name := range subdirs {
		path := filepath.Join(inDir, name)
		if g.cfg.Exclude.Match(name) {
			g.cfg.Logger.WithField("path", path).Debug("skipping excluded directory")
			continue
		}

		target := filepath.Join(outDir, name)
		if err := ensureDir(target); err != nil {
			return err
		}
		g.cfg.Logger.WithFields(log.Fields{"source": path, "output": target}).Debug("entering directory")

		if err := g.generateDir(path, target, depth+1); err != nil {
			return err
		}
	}

	return nil
}

func ensureDir(path string) error {
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("output path %s exists and is not a directory", path)
		}
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat output directory: %w", err)
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// MarkdownPath replaces the extension of path with .md.
func MarkdownPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".md"
}
