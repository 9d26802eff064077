package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dskvich/location-images/pkg/domain"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient("test-key", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestNewClient_EmptyKey(t *testing.T) {
	if _, err := NewClient(""); err == nil {
		t.Fatal("expected error for empty api key")
	}
}

func TestGenerateImage(t *testing.T) {
	payload := []byte{0xff, 0xd8, 0xff, 0xe0}

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if r.URL.Path != "/v1beta/models/gemini-2.5-flash-image:generateContent" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "test-key" {
			t.Errorf("api key header = %q", got)
		}

		body, _ := io.ReadAll(r.Body)
		var req generateContentRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Errorf("decoding request: %v", err)
			return
		}
		if req.Contents[0].Parts[0].Text != "a pier" {
			t.Errorf("prompt = %q", req.Contents[0].Parts[0].Text)
		}
		if len(req.GenerationConfig.ResponseModalities) != 2 {
			t.Errorf("modalities = %v", req.GenerationConfig.ResponseModalities)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []any{map[string]any{
				"content": map[string]any{"parts": []any{
					map[string]any{"text": "Here is your image"},
					map[string]any{"inlineData": map[string]any{
						"mimeType": "image/jpeg",
						"data":     base64.StdEncoding.EncodeToString(payload),
					}},
				}},
			}},
		})
	})

	img, err := c.GenerateImage(context.Background(), "a pier", "")
	if err != nil {
		t.Fatalf("GenerateImage: %v", err)
	}
	if string(img.Data) != string(payload) {
		t.Errorf("data = %v, want %v", img.Data, payload)
	}
	if img.MIMEType != "image/jpeg" {
		t.Errorf("mime = %q", img.MIMEType)
	}
}

func TestGenerateImage_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "too many requests",
			status:  http.StatusTooManyRequests,
			body:    `{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`,
			wantErr: domain.ErrRateLimited,
		},
		{
			name:    "resource exhausted status",
			status:  http.StatusServiceUnavailable,
			body:    `{"error":{"code":503,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`,
			wantErr: domain.ErrRateLimited,
		},
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   `{"error":{"code":500,"message":"internal","status":"INTERNAL"}}`,
		},
		{
			name:    "no candidates",
			status:  http.StatusOK,
			body:    `{"candidates":[]}`,
			wantErr: domain.ErrNoImage,
		},
		{
			name:    "text only",
			status:  http.StatusOK,
			body:    `{"candidates":[{"content":{"parts":[{"text":"sorry"}]},"finishReason":"STOP"}]}`,
			wantErr: domain.ErrNoImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			_, err := c.GenerateImage(context.Background(), "a pier", domain.Gemini25FlashImage)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && (errors.Is(err, domain.ErrRateLimited) || errors.Is(err, domain.ErrNoImage)) {
				t.Errorf("err = %v, want plain error", err)
			}
		})
	}
}
