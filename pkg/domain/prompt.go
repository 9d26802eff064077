package domain

import (
	"fmt"

	"github.com/samber/lo"
)

type Prompt struct {
	Slug string
	Text string
}

// PromptTable keeps prompts in declaration order; requests are issued in that order.
type PromptTable []Prompt

func (t PromptTable) Slugs() []string {
	return lo.Map(t, func(p Prompt, _ int) string { return p.Slug })
}

func (t PromptTable) Get(slug string) (Prompt, error) {
	p, ok := lo.Find(t, func(p Prompt) bool { return p.Slug == slug })
	if !ok {
		return Prompt{}, fmt.Errorf("prompt %q: %w", slug, ErrNotFound)
	}
	return p, nil
}
