package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dskvich/location-images/pkg/domain"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

type client struct {
	apiKey  string
	baseURL string
	hc      *http.Client
}

type Option func(*client)

func WithBaseURL(url string) Option {
	return func(c *client) { c.baseURL = url }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) { c.hc = hc }
}

func NewClient(apiKey string, opts ...Option) (*client, error) {
	if apiKey == "" {
		return nil, errors.New("api key cannot be empty")
	}

	c := &client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		hc:      &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *client) GenerateImage(ctx context.Context, prompt string, model string) (*domain.Image, error) {
	if model == "" {
		model = domain.Gemini25FlashImage
	}

	reqBody, err := json.Marshal(generateContentRequest{
		Contents: []content{{
			Parts: []part{{Text: prompt}},
		}},
		GenerationConfig: generationConfig{
			ResponseModalities: []string{modalityImage, modalityText},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	respBody, err := c.doRequest(req)
	if err != nil {
		return nil, err
	}

	var resp generateContentResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return extractImage(resp)
}

func (c *client) doRequest(req *http.Request) ([]byte, error) {
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr errorResponse
		_ = json.Unmarshal(respBody, &apiErr)

		if resp.StatusCode == http.StatusTooManyRequests || apiErr.Error.Status == statusResourceExhausted {
			return nil, fmt.Errorf("%w: %d %s", domain.ErrRateLimited, resp.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("unexpected status code: %d, response: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// extractImage returns the first inline payload of the first candidate.
func extractImage(resp generateContentResponse) (*domain.Image, error) {
	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidates", domain.ErrNoImage)
	}

	first := resp.Candidates[0]
	for _, p := range first.Content.Parts {
		if p.InlineData == nil || p.InlineData.Data == "" {
			continue
		}

		data, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode inline data: %w", err)
		}

		return &domain.Image{Data: data, MIMEType: p.InlineData.MIMEType}, nil
	}

	return nil, fmt.Errorf("%w: finish reason %q", domain.ErrNoImage, first.FinishReason)
}
