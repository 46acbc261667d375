// Package runner is the batch driver: it walks a pages tree, transforms
// each file through pkg/migrate, and writes the results. The transformer
// itself performs no I/O; everything filesystem-shaped lives here.
package runner

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/docshift-labs/docshift/pkg/migrate"
)

// Options configures a migration run.
type Options struct {
	PagesDir string
	OutDir   string   // empty = rewrite in place
	Include  []string // filename globs (match against the base name)
	Exclude  []string // globs matched against the path relative to PagesDir
	Workers  int      // max concurrent files; <= 0 means 1
	DryRun   bool     // compute results without writing
	Verify   bool     // parse migrated output with esbuild
	FailFast bool     // abort the run on the first failure
}

// Status classifies the outcome for one file.
type Status string

// File outcomes.
const (
	StatusMigrated  Status = "migrated"  // rewritten and (unless dry-run) written
	StatusUnchanged Status = "unchanged" // no legacy usage found
	StatusFailed    Status = "failed"    // parse, verify, or write error
)

// FileResult is the outcome for one file.
type FileResult struct {
	Path     string `json:"path"`
	Status   Status `json:"status"`
	Rewrites int    `json:"rewrites,omitempty"`
	Exports  int    `json:"exports,omitempty"`
	Err      error  `json:"-"`
	ErrText  string `json:"error,omitempty"`
}

// Report aggregates a migration run. Skipped counts walked files the
// include/exclude filters ruled out; they carry no FileResult.
type Report struct {
	Total     int           `json:"total"`
	Migrated  int           `json:"migrated"`
	Unchanged int           `json:"unchanged"`
	Failed    int           `json:"failed"`
	Skipped   int           `json:"skipped"`
	Results   []FileResult  `json:"results"`
	Duration  time.Duration `json:"duration"`
}

// HasFailures returns true if any file failed.
func (r *Report) HasFailures() bool {
	return r.Failed > 0
}

// HasChanges returns true if any file was migrated.
func (r *Report) HasChanges() bool {
	return r.Migrated > 0
}

// Summary returns a human-readable summary.
func (r *Report) Summary() string {
	return fmt.Sprintf(
		"Pages: %d total (%d migrated, %d unchanged, %d failed), %d skipped | Duration: %s",
		r.Total, r.Migrated, r.Unchanged, r.Failed, r.Skipped,
		r.Duration.Round(time.Millisecond),
	)
}

// Runner executes migration runs.
type Runner struct {
	opts   Options
	logger *slog.Logger
}

// New creates a runner. A nil logger falls back to slog.Default().
func New(opts Options, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if len(opts.Include) == 0 {
		opts.Include = []string{"*.js", "*.jsx"}
	}
	return &Runner{opts: opts, logger: logger}
}

// Run walks the pages tree and transforms every selected file. Files are
// processed concurrently; each gets its own independent tree. Per-file
// failures are collected in the report unless FailFast is set, in which
// case the first failure aborts the run.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	start := time.Now()

	files, skipped, err := r.listFiles()
	if err != nil {
		return nil, fmt.Errorf("listing pages in %s: %w", r.opts.PagesDir, err)
	}

	r.logger.Info("starting migration",
		"pages_dir", r.opts.PagesDir,
		"files", len(files),
		"skipped", skipped,
		"workers", r.opts.Workers,
		"dry_run", r.opts.DryRun)

	results := make([]FileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Workers)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := r.processFile(path)
			results[i] = res
			if res.Err != nil && r.opts.FailFast {
				return fmt.Errorf("%s: %w", res.Path, res.Err)
			}
			return nil
		})
	}
	waitErr := g.Wait()

	report := &Report{Skipped: skipped, Results: results, Duration: time.Since(start)}
	for _, res := range results {
		if res.Path == "" {
			continue // slot never filled after a fail-fast abort
		}
		report.Total++
		switch res.Status {
		case StatusMigrated:
			report.Migrated++
		case StatusUnchanged:
			report.Unchanged++
		case StatusFailed:
			report.Failed++
		}
	}

	r.logger.Info("migration completed",
		"total", report.Total,
		"migrated", report.Migrated,
		"unchanged", report.Unchanged,
		"failed", report.Failed,
		"skipped", report.Skipped,
		"duration_ms", report.Duration.Milliseconds())

	if waitErr != nil {
		return report, waitErr
	}
	return report, nil
}

// processFile transforms one file and writes the result.
func (r *Runner) processFile(path string) FileResult {
	result := FileResult{Path: path}

	fail := func(err error) FileResult {
		r.logger.Warn("migration failed", "path", path, "error", err)
		result.Status = StatusFailed
		result.Err = err
		result.ErrText = err.Error()
		return result
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return fail(err)
	}

	res, err := migrate.Apply(string(src))
	if err != nil {
		return fail(err)
	}

	if !res.Changed() {
		r.logger.Debug("no legacy usage", "path", path)
		result.Status = StatusUnchanged
		return result
	}

	if r.opts.Verify {
		if err := verifyPage(path, res.Output); err != nil {
			return fail(err)
		}
	}

	if !r.opts.DryRun {
		if err := r.writeOutput(path, res.Output); err != nil {
			return fail(err)
		}
	}

	r.logger.Debug("migrated",
		"path", path,
		"rewrites", res.Rewrites,
		"exports", res.Exports)
	result.Status = StatusMigrated
	result.Rewrites = res.Rewrites
	result.Exports = res.Exports
	return result
}

// writeOutput writes the migrated text, either in place or mirrored under
// OutDir.
func (r *Runner) writeOutput(path, output string) error {
	dest := path
	if r.opts.OutDir != "" {
		rel, err := filepath.Rel(r.opts.PagesDir, path)
		if err != nil {
			return err
		}
		dest = filepath.Join(r.opts.OutDir, rel)
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(dest, []byte(output), 0o644)
}

// listFiles collects the candidate page files in deterministic walk order,
// along with the count of files the filters ruled out.
func (r *Runner) listFiles() ([]string, int, error) {
	var files []string
	skipped := 0
	err := filepath.WalkDir(r.opts.PagesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(r.opts.PagesDir, path)
		if err != nil {
			return err
		}
		if !r.included(d.Name()) || r.excluded(rel) {
			skipped++
			return nil
		}
		files = append(files, path)
		return nil
	})
	return files, skipped, err
}

func (r *Runner) included(name string) bool {
	for _, pattern := range r.opts.Include {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

func (r *Runner) excluded(rel string) bool {
	for _, pattern := range r.opts.Exclude {
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, filepath.Base(rel)); ok {
			return true
		}
	}
	return false
}
