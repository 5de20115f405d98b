package analyzer

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/simonhull/firebird-suite/wren/pkg/filesystem"
	"github.com/simonhull/firebird-suite/wren/pkg/logger"
)

// fileResult holds the result of analyzing one file
type fileResult struct {
	path   string
	module *Module
	err    error
}

// AnalyzeParallel analyzes the project with a pool of numWorkers parsers.
// numWorkers <= 0 means one worker per CPU. The result is identical to
// AnalyzeWithContext.
func (a *Analyzer) AnalyzeParallel(ctx context.Context, rootPath string, numWorkers int) (*Project, error) {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	a.logger.Info("Starting parallel project analysis",
		logger.F("path", rootPath),
		logger.F("workers", numWorkers))

	files, err := filesystem.DiscoverSources(ctx, rootPath, a.sources)
	if err != nil {
		return nil, fmt.Errorf("analyzing project: %w", err)
	}
	a.logger.Debug("Collected files", logger.F("count", len(files)))

	jobs := make(chan string)
	results := make(chan fileResult, len(files))
	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go a.analyzeWorker(ctx, jobs, results, &wg)
	}

	go func() {
		defer close(jobs)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case jobs <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	proj := a.newProject(rootPath, len(files))
	for r := range results {
		proj.record(a.logger, r.path, r.module, r.err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	proj.sort()

	a.logger.Info("Parallel project analysis complete",
		logger.F("files", proj.Files),
		logger.F("components", len(proj.Components())),
		logger.F("workers", numWorkers))

	return proj, nil
}

func (a *Analyzer) analyzeWorker(ctx context.Context, jobs <-chan string, results chan<- fileResult, wg *sync.WaitGroup) {
	defer wg.Done()

	for path := range jobs {
		if ctx.Err() != nil {
			return
		}
		m, err := a.AnalyzeFile(ctx, path)
		results <- fileResult{path: path, module: m, err: err}
	}
}
