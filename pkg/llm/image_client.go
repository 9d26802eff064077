package llm

import (
	"context"
	"fmt"

	"github.com/dskvich/location-images/pkg/domain"
)

type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string, model string) (*domain.Image, error)
}

type MultiProviderImageClient struct {
	providers map[string]ImageGenerator
}

func NewMultiProviderImageClient(providers map[string]ImageGenerator) *MultiProviderImageClient {
	return &MultiProviderImageClient{
		providers: providers,
	}
}

func (c *MultiProviderImageClient) Supports(model string) bool {
	_, ok := c.providers[model]
	return ok
}

func (c *MultiProviderImageClient) GenerateImage(ctx context.Context, prompt string, model string) (*domain.Image, error) {
	provider, ok := c.providers[model]
	if !ok {
		return nil, fmt.Errorf("no provider found for model: %s", model)
	}

	return provider.GenerateImage(ctx, prompt, model)
}
