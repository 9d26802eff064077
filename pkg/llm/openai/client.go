package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/dskvich/location-images/pkg/domain"
)

const defaultBaseURL = "https://api.openai.com/v1"

type client struct {
	token   string
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

func NewClient(token string, opts ...Option) (*client, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	c := &client{
		token:   token,
		baseURL: defaultBaseURL,
		hc:      &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *client) GenerateImage(ctx context.Context, prompt string, model string) (*domain.Image, error) {
	opts, ok := modelImageOptions[model]
	if !ok {
		return nil, fmt.Errorf("unsupported model: %s", model)
	}

	reqBody, err := json.Marshal(imageGenerationRequest{
		Model:          model,
		Prompt:         prompt,
		N:              1,
		Size:           opts.Size,
		Quality:        opts.Quality,
		ResponseFormat: responseFormatB64JSON,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/images/generations", bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	respBody, err := c.doRequest(req)
	if err != nil {
		return nil, err
	}

	var resp imageGenerationResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, domain.ErrNoImage
	}

	if rp := resp.Data[0].RevisedPrompt; rp != "" {
		slog.DebugContext(ctx, "Prompt revised by provider", "model", model, "revisedPrompt", rp)
	}

	data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return &domain.Image{
		Data:     data,
		MIMEType: http.DetectContentType(data),
	}, nil
}

func (c *client) doRequest(req *http.Request) ([]byte, error) {
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		var apiErr errorResponse
		_ = json.Unmarshal(respBody, &apiErr)
		return nil, fmt.Errorf("%w: %s", domain.ErrRateLimited, apiErr.Error.Message)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code: %d, response: %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}
