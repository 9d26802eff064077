package llm

import (
	"context"
	"testing"

	"github.com/dskvich/location-images/pkg/domain"
)

type stubGenerator struct {
	name      string
	gotModel  string
	gotPrompt string
}

func (s *stubGenerator) GenerateImage(_ context.Context, prompt string, model string) (*domain.Image, error) {
	s.gotPrompt = prompt
	s.gotModel = model
	return &domain.Image{Data: []byte(s.name), MIMEType: domain.MIMETypeJPEG}, nil
}

func TestMultiProviderImageClient(t *testing.T) {
	gemini := &stubGenerator{name: "gemini"}
	openai := &stubGenerator{name: "openai"}

	c := NewMultiProviderImageClient(map[string]ImageGenerator{
		domain.Gemini25FlashImage: gemini,
		domain.DallE3Model:        openai,
	})

	img, err := c.GenerateImage(context.Background(), "pier", domain.DallE3Model)
	if err != nil {
		t.Fatalf("GenerateImage: %v", err)
	}
	if string(img.Data) != "openai" {
		t.Errorf("routed to %q, want openai", img.Data)
	}
	if openai.gotModel != domain.DallE3Model || openai.gotPrompt != "pier" {
		t.Errorf("provider got (%q, %q)", openai.gotPrompt, openai.gotModel)
	}
	if gemini.gotPrompt != "" {
		t.Error("gemini provider should not be called")
	}

	if !c.Supports(domain.Gemini25FlashImage) {
		t.Error("Supports(gemini) = false")
	}
	if c.Supports(domain.FluxProUltra11) {
		t.Error("Supports(flux) = true without provider")
	}

	if _, err := c.GenerateImage(context.Background(), "pier", "unknown"); err == nil {
		t.Error("expected error for unknown model")
	}
}

func TestNewHTTPClient(t *testing.T) {
	hc, err := NewHTTPClient(0, "127.0.0.1:1080")
	if err != nil {
		t.Fatalf("NewHTTPClient: %v", err)
	}
	if hc.Timeout != 0 {
		t.Errorf("timeout = %s, want 0", hc.Timeout)
	}
}
