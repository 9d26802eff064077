// Package batch walks prompt tables and generates the images that are still missing.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dskvich/location-images/pkg/console"
	"github.com/dskvich/location-images/pkg/domain"
	"github.com/dskvich/location-images/pkg/fsutil"
	"github.com/dskvich/location-images/pkg/generator"
	"github.com/dskvich/location-images/pkg/logger"
	"github.com/hashicorp/go-multierror"
)

const DefaultPacingDelay = 15 * time.Second

type executor interface {
	Generate(ctx context.Context, prompt string, path string) (domain.Generation, error)
}

type historyRecorder interface {
	Save(ctx context.Context, gen *domain.Generation) error
}

type Config struct {
	OutputDir   string
	PacingDelay time.Duration
}

type Driver struct {
	exec    executor
	history historyRecorder
	cfg     Config
	out     *console.Printer
	sleep   generator.SleepFunc
}

type Option func(*Driver)

func WithHistory(h historyRecorder) Option {
	return func(d *Driver) { d.history = h }
}

func WithSleep(fn generator.SleepFunc) Option {
	return func(d *Driver) { d.sleep = fn }
}

func NewDriver(exec executor, cfg Config, out *console.Printer, opts ...Option) *Driver {
	d := &Driver{
		exec:  exec,
		cfg:   cfg,
		out:   out,
		sleep: generator.Sleep,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Exists is the skip precondition: an existing output file marks the entry as done.
func Exists(path string) bool {
	return fsutil.Exists(path)
}

// Prepare creates the output directory of every category.
func (d *Driver) Prepare(categories ...domain.Category) error {
	var result *multierror.Error
	for _, c := range categories {
		dir := filepath.Join(d.cfg.OutputDir, c.Dir)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			result = multierror.Append(result, fmt.Errorf("creating %s: %w", dir, err))
		}
	}
	return result.ErrorOrNil()
}

// Run generates every missing image of table in order. Skipped entries count as
// successes and are not followed by the pacing delay.
func (d *Driver) Run(ctx context.Context, category domain.Category, table domain.PromptTable) domain.Report {
	d.out.Header(fmt.Sprintf("GENERATING %s IMAGES", strings.ToUpper(category.Name)))

	report := domain.Report{Category: category.Name, Total: len(table)}

	for i, p := range table {
		if ctx.Err() != nil {
			slog.WarnContext(ctx, "Batch interrupted", "category", category.Name, "processed", i, logger.Err(ctx.Err()))
			break
		}

		path := category.OutputPath(d.cfg.OutputDir, p.Slug)

		if Exists(path) {
			d.out.Printf("[%d/%d] Skipping %s (already exists)", i+1, report.Total, p.Slug)
			report.Success++
			d.record(ctx, category, p.Slug, domain.Generation{Path: path, Status: domain.GenerationStatusSkipped})
			continue
		}

		d.out.Printf("[%d/%d] Generating %s...", i+1, report.Total, p.Slug)

		gen, err := d.exec.Generate(ctx, p.Text, path)
		if err == nil {
			report.Success++
		} else {
			slog.WarnContext(ctx, "Image not generated", "category", category.Name, "slug", p.Slug, logger.Err(err))
		}
		d.record(ctx, category, p.Slug, gen)

		if err := d.sleep(ctx, d.cfg.PacingDelay); err != nil {
			slog.WarnContext(ctx, "Pacing delay interrupted", logger.Err(err))
			break
		}
	}

	d.out.Printf("\n%s images: %d/%d successful", category.Name, report.Success, report.Total)

	return report
}

// Single generates p into filename under the category directory, overwriting any
// existing file.
func (d *Driver) Single(ctx context.Context, category domain.Category, p domain.Prompt, filename string) (domain.Generation, error) {
	path := filepath.Join(d.cfg.OutputDir, category.Dir, filename)

	gen, err := d.exec.Generate(ctx, p.Text, path)
	d.record(ctx, category, p.Slug, gen)

	return gen, err
}

func (d *Driver) record(ctx context.Context, category domain.Category, slug string, gen domain.Generation) {
	if d.history == nil {
		return
	}

	gen.Category = category.Name
	gen.Slug = slug
	if gen.CreatedAt.IsZero() {
		gen.CreatedAt = time.Now()
	}

	if err := d.history.Save(ctx, &gen); err != nil {
		slog.ErrorContext(ctx, "Failed to record generation", "category", category.Name, "slug", slug, logger.Err(err))
	}
}
