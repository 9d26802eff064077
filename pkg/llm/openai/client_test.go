package openai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dskvich/location-images/pkg/domain"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestGenerateImage(t *testing.T) {
	tests := []struct {
		model       string
		wantSize    imageSize
		wantQuality imageQuality
	}{
		{domain.DallE2Model, size1024x1024, ""},
		{domain.DallE3Model, size1792x1024, qualityHD},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/images/generations" {
					t.Errorf("path = %s", r.URL.Path)
				}

				var req imageGenerationRequest
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					t.Errorf("decoding request: %v", err)
				}
				if req.Model != tt.model || req.Size != tt.wantSize || req.Quality != tt.wantQuality {
					t.Errorf("request = %+v", req)
				}
				if req.ResponseFormat != responseFormatB64JSON {
					t.Errorf("response_format = %q", req.ResponseFormat)
				}

				fmt.Fprintf(w, `{"data":[{"b64_json":%q}]}`, base64.StdEncoding.EncodeToString(pngBytes))
			}))
			defer srv.Close()

			c, err := NewClient("token", WithBaseURL(srv.URL))
			if err != nil {
				t.Fatalf("NewClient: %v", err)
			}

			img, err := c.GenerateImage(context.Background(), "a pier", tt.model)
			if err != nil {
				t.Fatalf("GenerateImage: %v", err)
			}
			if img.MIMEType != "image/png" {
				t.Errorf("mime = %q, want image/png", img.MIMEType)
			}
		})
	}
}

func TestGenerateImage_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"rate limited", http.StatusTooManyRequests, `{"error":{"message":"slow down"}}`, domain.ErrRateLimited},
		{"empty data", http.StatusOK, `{"data":[]}`, domain.ErrNoImage},
		{"bad request", http.StatusBadRequest, `{"error":{"message":"policy"}}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			c, _ := NewClient("token", WithBaseURL(srv.URL))

			_, err := c.GenerateImage(context.Background(), "a pier", domain.DallE2Model)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
