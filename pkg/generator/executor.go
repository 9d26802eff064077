// Package generator turns a single prompt into an image file on disk.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/dskvich/location-images/pkg/console"
	"github.com/dskvich/location-images/pkg/domain"
	"github.com/dskvich/location-images/pkg/fsutil"
	"github.com/dskvich/location-images/pkg/imaging"
	"github.com/dskvich/location-images/pkg/logger"
	"github.com/dskvich/location-images/pkg/prompts"
	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"
)

const (
	DefaultMaxRetries       = 3
	DefaultRateLimitBackoff = 60 * time.Second
	DefaultErrorBackoff     = 5 * time.Second

	maxErrorMessageLength = 100
)

type imageProvider interface {
	GenerateImage(ctx context.Context, prompt string, model string) (*domain.Image, error)
}

type Config struct {
	Model            string
	MaxRetries       int
	RateLimitBackoff time.Duration
	ErrorBackoff     time.Duration
	Transcode        bool
}

type Executor struct {
	provider imageProvider
	cfg      Config
	out      *console.Printer
	sleep    SleepFunc
}

type Option func(*Executor)

func WithSleep(fn SleepFunc) Option {
	return func(e *Executor) { e.sleep = fn }
}

func NewExecutor(provider imageProvider, cfg Config, out *console.Printer, opts ...Option) *Executor {
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = DefaultMaxRetries
	}

	e := &Executor{
		provider: provider,
		cfg:      cfg,
		out:      out,
		sleep:    Sleep,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Generate requests an image for prompt and writes it to path. Rate-limited attempts back
// off for RateLimitBackoff*attempt, other failures for ErrorBackoff*attempt. A response
// without an image fails at once. Nothing is written unless an attempt succeeds.
func (e *Executor) Generate(ctx context.Context, prompt string, path string) (domain.Generation, error) {
	name := filepath.Base(path)
	gen := domain.Generation{
		Path:  path,
		Model: e.cfg.Model,
	}
	fullPrompt := prompts.Full(prompt)

	var attemptErrs *multierror.Error

	for attempt := 1; attempt <= e.cfg.MaxRetries; attempt++ {
		gen.Attempts = attempt

		img, err := e.provider.GenerateImage(ctx, fullPrompt, e.cfg.Model)
		if err == nil && (img == nil || len(img.Data) == 0) {
			err = domain.ErrNoImage
		}

		if err == nil {
			if err := e.save(ctx, img, &gen); err != nil {
				e.out.Error("Saving %s: %s", name, err)
				return failed(gen, err)
			}

			e.out.OK("Generated: %s (%d bytes)", name, gen.Size)
			gen.Status = domain.GenerationStatusGenerated
			return gen, nil
		}

		if ctx.Err() != nil {
			return failed(gen, ctx.Err())
		}

		if errors.Is(err, domain.ErrNoImage) {
			e.out.Warn("No image returned for %s", name)
			slog.WarnContext(ctx, "Empty image response", "path", path, "attempt", attempt, logger.Err(err))
			return failed(gen, err)
		}

		attemptErrs = multierror.Append(attemptErrs, fmt.Errorf("attempt %d: %w", attempt, err))

		if errors.Is(err, domain.ErrRateLimited) {
			wait := e.cfg.RateLimitBackoff * time.Duration(attempt)
			e.out.Rate("Rate limited, waiting %s...", wait)
			slog.WarnContext(ctx, "Rate limited", "path", path, "attempt", attempt, "wait", wait)

			if err := e.sleep(ctx, wait); err != nil {
				return failed(gen, err)
			}
			continue
		}

		e.out.Error("Attempt %d/%d: %s", attempt, e.cfg.MaxRetries, lo.Substring(err.Error(), 0, maxErrorMessageLength))
		slog.ErrorContext(ctx, "Image request failed", "path", path, "attempt", attempt, logger.Err(err))

		if attempt < e.cfg.MaxRetries {
			if err := e.sleep(ctx, e.cfg.ErrorBackoff*time.Duration(attempt)); err != nil {
				return failed(gen, err)
			}
		}
	}

	return failed(gen, fmt.Errorf("generating %s: %w", name, attemptErrs.ErrorOrNil()))
}

func (e *Executor) save(ctx context.Context, img *domain.Image, gen *domain.Generation) error {
	data := img.Data
	gen.MIMEType = img.MIMEType

	if !isJPEG(img.MIMEType) {
		if e.cfg.Transcode {
			converted, err := imaging.ToJPEG(data, imaging.DefaultOptions)
			if err != nil {
				return fmt.Errorf("transcoding %s payload: %w", img.MIMEType, err)
			}
			data = converted
			gen.MIMEType = domain.MIMETypeJPEG
		} else {
			slog.WarnContext(ctx, "Payload is not JPEG, writing it verbatim", "path", gen.Path, "mimeType", img.MIMEType)
		}
	}

	if err := fsutil.WriteFileAtomic(gen.Path, data); err != nil {
		return err
	}
	gen.Size = len(data)

	return nil
}

func failed(gen domain.Generation, err error) (domain.Generation, error) {
	gen.Status = domain.GenerationStatusFailed
	gen.Error = err.Error()
	return gen, err
}

func isJPEG(mimeType string) bool {
	mediaType, _, _ := strings.Cut(mimeType, ";")
	return strings.EqualFold(strings.TrimSpace(mediaType), domain.MIMETypeJPEG)
}
