// Package analyzer finds reactive custom elements in a source tree and
// extracts their property declarations.
//
// Files are discovered with pkg/filesystem, parsed with pkg/tsast and run
// through pkg/property for every class member. Per-file failures are
// logged and recorded in Project.Skipped; only discovery failures and
// cancellation abort an analysis.
package analyzer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/simonhull/firebird-suite/wren/pkg/config"
	"github.com/simonhull/firebird-suite/wren/pkg/conventions"
	"github.com/simonhull/firebird-suite/wren/pkg/filesystem"
	"github.com/simonhull/firebird-suite/wren/pkg/logger"
	"github.com/simonhull/firebird-suite/wren/pkg/property"
	"github.com/simonhull/firebird-suite/wren/pkg/tsast"
)

// Analyzer analyzes component sources
type Analyzer struct {
	name      string
	parser    *tsast.Parser
	detector  *conventions.Detector
	decorator string
	sources   filesystem.SourceOptions
	cache     *Cache
	logger    logger.Logger
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithProjectName sets Project.Name. The default is the root directory name.
func WithProjectName(name string) Option {
	return func(a *Analyzer) { a.name = name }
}

// WithDetector replaces the default convention detector
func WithDetector(d *conventions.Detector) Option {
	return func(a *Analyzer) { a.detector = d }
}

// WithDecoratorName matches a property decorator other than `property`
func WithDecoratorName(name string) Option {
	return func(a *Analyzer) {
		if name != "" {
			a.decorator = name
		}
	}
}

// WithSources sets the extensions and ignore rules for discovery
func WithSources(opts filesystem.SourceOptions) Option {
	return func(a *Analyzer) { a.sources = opts }
}

// WithCache enables result caching
func WithCache(c *Cache) Option {
	return func(a *Analyzer) { a.cache = c }
}

// NewAnalyzer creates a new Analyzer
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		parser:    tsast.NewParser(),
		detector:  conventions.NewDetector(),
		decorator: property.DecoratorName,
		sources:   filesystem.SourceOptions{Extensions: tsast.Extensions},
		logger:    logger.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// FromConfig creates an Analyzer for the settings in cfg
func FromConfig(cfg *config.Config) (*Analyzer, error) {
	opts := []Option{
		WithProjectName(cfg.Project.Name),
		WithDecoratorName(cfg.Analysis.Decorator),
		WithDetector(conventions.NewDetector(cfg.Analysis.BaseClasses...)),
		WithSources(filesystem.SourceOptions{
			Extensions: cfg.Source.Extensions,
			IgnoreDirs: cfg.Source.IgnoreDirs,
		}),
	}
	if cfg.Analysis.CacheSize > 0 {
		cache, err := NewCache(cfg.Analysis.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating cache: %w", err)
		}
		opts = append(opts, WithCache(cache))
	}
	return NewAnalyzer(opts...), nil
}

// WithLogger returns a new Analyzer with the specified logger
func (a *Analyzer) WithLogger(log logger.Logger) *Analyzer {
	c := *a
	c.logger = log
	return &c
}

// Cache returns the analyzer's cache, or nil
func (a *Analyzer) Cache() *Cache {
	return a.cache
}

// Analyze analyzes the project at rootPath
func (a *Analyzer) Analyze(rootPath string) (*Project, error) {
	return a.AnalyzeWithContext(context.Background(), rootPath)
}

// AnalyzeWithContext analyzes the project at rootPath one file at a time
func (a *Analyzer) AnalyzeWithContext(ctx context.Context, rootPath string) (*Project, error) {
	a.logger.Info("Starting project analysis", logger.F("path", rootPath))

	files, err := filesystem.DiscoverSources(ctx, rootPath, a.sources)
	if err != nil {
		return nil, fmt.Errorf("analyzing project: %w", err)
	}

	proj := a.newProject(rootPath, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m, err := a.AnalyzeFile(ctx, path)
		proj.record(a.logger, path, m, err)
	}
	proj.sort()

	a.logger.Info("Project analysis complete",
		logger.F("files", proj.Files),
		logger.F("components", len(proj.Components())))

	return proj, nil
}

// AnalyzeFile analyzes a single file, consulting the cache first
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) (*Module, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	hash := ContentHash(src)
	if m, ok := a.cache.Get(path, hash); ok {
		a.logger.Debug("Cache hit", logger.F("file", path))
		return m, nil
	}

	m, err := a.analyzeSource(ctx, path, src, hash)
	if err != nil {
		return nil, err
	}
	a.cache.Add(m)
	return m, nil
}

// AnalyzeSource analyzes src as the contents of path. The cache is not
// consulted.
func (a *Analyzer) AnalyzeSource(ctx context.Context, path string, src []byte) (*Module, error) {
	return a.analyzeSource(ctx, path, src, ContentHash(src))
}

func (a *Analyzer) analyzeSource(ctx context.Context, path string, src []byte, hash string) (*Module, error) {
	file, err := a.parser.ParseFile(ctx, path, src)
	if err != nil {
		return nil, err
	}

	log := a.logger.WithFields(logger.F("file", path))
	if file.HasErrors {
		log.Warn("Source has syntax errors; results may be partial")
	}

	m := a.buildModule(file, log)
	m.Hash = hash
	return m, nil
}

func (a *Analyzer) newProject(rootPath string, files int) *Project {
	name := a.name
	if name == "" {
		if abs, err := filepath.Abs(rootPath); err == nil {
			name = filepath.Base(abs)
		}
	}
	return &Project{Name: name, RootPath: rootPath, Files: files}
}

func (p *Project) record(log logger.Logger, path string, m *Module, err error) {
	if err != nil {
		log.Warn("Skipping file", logger.F("file", path), logger.F("error", err))
		p.Skipped = append(p.Skipped, &SkippedFile{Path: path, Err: err})
		return
	}
	if len(m.Components) > 0 {
		p.Modules = append(p.Modules, m)
	}
}

func (p *Project) sort() {
	sort.Slice(p.Modules, func(i, j int) bool { return p.Modules[i].Path < p.Modules[j].Path })
	sort.Slice(p.Skipped, func(i, j int) bool { return p.Skipped[i].Path < p.Skipped[j].Path })
}
