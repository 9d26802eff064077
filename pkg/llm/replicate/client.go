package replicate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dskvich/location-images/pkg/domain"
)

const (
	defaultBaseURL         = "https://api.replicate.com/v1"
	defaultPollingTimeout  = 60 * time.Second
	defaultPollingInterval = 1 * time.Second
)

type client struct {
	token           string
	baseURL         string
	pollingInterval time.Duration
	hc              *http.Client
}

type Option func(*client)

func WithBaseURL(url string) Option {
	return func(c *client) { c.baseURL = url }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) { c.hc = hc }
}

func WithPollingInterval(d time.Duration) Option {
	return func(c *client) { c.pollingInterval = d }
}

func NewClient(token string, opts ...Option) (*client, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	c := &client{
		token:           token,
		baseURL:         defaultBaseURL,
		pollingInterval: defaultPollingInterval,
		hc:              &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *client) GenerateImage(ctx context.Context, prompt string, model string) (*domain.Image, error) {
	// Map domain model to Replicate model
	replicateModel, ok := ModelToReplicateModel[model]
	if !ok {
		return nil, fmt.Errorf("unsupported model: %s", model)
	}

	predictionURL := fmt.Sprintf("%s/models/%s/predictions", c.baseURL, replicateModel)

	reqBody, err := json.Marshal(CreatePredictionRequest{
		Input: FluxInput{
			Prompt:       prompt,
			AspectRatio:  DefaultAspectRatio,
			OutputFormat: DefaultOutputFormat,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, predictionURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "wait") // Wait for the prediction to complete

	respBody, err := c.doRequest(req)
	if err != nil {
		return nil, fmt.Errorf("failed to create prediction: %w", err)
	}

	var prediction ReplicatePrediction
	if err := json.Unmarshal(respBody, &prediction); err != nil {
		return nil, fmt.Errorf("failed to parse prediction response: %w", err)
	}

	// If the prediction is not completed, poll for the result
	if prediction.Status != PredictionStatusSucceeded {
		prediction, err = c.pollPrediction(ctx, prediction.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to poll prediction: %w", err)
		}
	}

	if prediction.Status != PredictionStatusSucceeded {
		return nil, fmt.Errorf("prediction failed with status %s: %s", prediction.Status, prediction.Error)
	}

	if len(prediction.Output) == 0 {
		return nil, domain.ErrNoImage
	}

	img, err := c.downloadImage(ctx, prediction.Output)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}

	return img, nil
}

func (c *client) doRequest(req *http.Request) ([]byte, error) {
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("%w: status %d", domain.ErrRateLimited, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code: %d, response: %s", resp.StatusCode, string(respBody))
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return respBody, nil
}

func (c *client) pollPrediction(ctx context.Context, predictionID string) (ReplicatePrediction, error) {
	var prediction ReplicatePrediction

	timeoutCtx, cancel := context.WithTimeout(ctx, defaultPollingTimeout)
	defer cancel()

	ticker := time.NewTicker(c.pollingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-timeoutCtx.Done():
			return prediction, errors.New("polling timed out")
		case <-ticker.C:
			predictionURL := fmt.Sprintf("%s/predictions/%s", c.baseURL, predictionID)
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, predictionURL, nil)
			if err != nil {
				return prediction, fmt.Errorf("failed to create HTTP request: %w", err)
			}

			respBody, err := c.doRequest(req)
			if err != nil {
				return prediction, fmt.Errorf("failed to get prediction: %w", err)
			}

			if err := json.Unmarshal(respBody, &prediction); err != nil {
				return prediction, fmt.Errorf("failed to parse prediction response: %w", err)
			}

			if prediction.Status == PredictionStatusSucceeded ||
				prediction.Status == PredictionStatusFailed ||
				prediction.Status == PredictionStatusCanceled {
				return prediction, nil
			}
		}
	}
}

// downloadImage downloads an image from a URL
func (c *client) downloadImage(ctx context.Context, imageURL string) (*domain.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	return &domain.Image{
		Data:     imageData,
		MIMEType: http.DetectContentType(imageData),
	}, nil
}
