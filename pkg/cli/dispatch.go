// Package cli selects which batches run for the single optional mode argument.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dskvich/location-images/pkg/console"
	"github.com/dskvich/location-images/pkg/domain"
	"github.com/dskvich/location-images/pkg/prompts"
	"github.com/samber/lo"
)

const (
	ModeAll       = ""
	ModeSubareas  = "subareas"
	ModeLandmarks = "landmarks"
	ModeTest      = "test"
)

const Usage = "Usage: imagegen [subareas|landmarks|test]"

var ErrUnknownMode = errors.New("unknown argument")

type Runner interface {
	Run(ctx context.Context, category domain.Category, table domain.PromptTable) domain.Report
	Single(ctx context.Context, category domain.Category, p domain.Prompt, filename string) (domain.Generation, error)
}

type Summary struct {
	Mode    string
	Reports []domain.Report
}

func (s Summary) Success() int {
	return lo.SumBy(s.Reports, func(r domain.Report) int { return r.Success })
}

func (s Summary) Total() int {
	return lo.SumBy(s.Reports, func(r domain.Report) int { return r.Total })
}

// Markdown renders the summary for notifications.
func (s Summary) Markdown() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "## Image generation: %s\n\n", lo.Ternary(s.Mode == ModeAll, "all", s.Mode))
	for _, r := range s.Reports {
		fmt.Fprintf(&sb, "- **%s**: %d/%d\n", r.Category, r.Success, r.Total)
	}
	if len(s.Reports) > 1 {
		fmt.Fprintf(&sb, "- **Total**: %d/%d\n", s.Success(), s.Total())
	}

	return sb.String()
}

// Dispatch runs the batches selected by the first element of args. Per-image failures
// only show up in the returned counts; the error is reserved for an unknown mode.
func Dispatch(ctx context.Context, args []string, r Runner, out *console.Printer) (Summary, error) {
	mode := ModeAll
	if len(args) > 0 {
		mode = args[0]
	}

	summary := Summary{Mode: mode}

	switch mode {
	case ModeSubareas:
		summary.Reports = append(summary.Reports, r.Run(ctx, domain.CategorySubareas, prompts.Subareas))

	case ModeLandmarks:
		summary.Reports = append(summary.Reports, r.Run(ctx, domain.CategoryLandmarks, prompts.Landmarks))

	case ModeTest:
		p, err := prompts.Subareas.Get(prompts.TestSlug)
		if err != nil {
			return summary, err
		}

		out.Printf("\nGenerating test image...")
		_, err = r.Single(ctx, domain.CategorySubareas, p, prompts.TestFilename)
		summary.Reports = append(summary.Reports, domain.Report{
			Category: ModeTest,
			Success:  lo.Ternary(err == nil, 1, 0),
			Total:    1,
		})

	case ModeAll:
		sub := r.Run(ctx, domain.CategorySubareas, prompts.Subareas)
		land := r.Run(ctx, domain.CategoryLandmarks, prompts.Landmarks)
		summary.Reports = append(summary.Reports, sub, land)

		out.Header("GENERATION COMPLETE")
		out.Printf("Subareas: %d/%d", sub.Success, sub.Total)
		out.Printf("Landmarks: %d/%d", land.Success, land.Total)
		out.Printf("Total: %d/%d", summary.Success(), summary.Total())

	default:
		out.Printf("Unknown argument: %s", mode)
		out.Printf(Usage)
		return summary, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}

	return summary, nil
}
