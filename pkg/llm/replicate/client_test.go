package replicate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dskvich/location-images/pkg/domain"
)

var jpegBytes = []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}

func TestGenerateImage(t *testing.T) {
	var polls atomic.Int32

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/models/black-forest-labs/flux-1.1-pro-ultra/predictions", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token" {
			t.Errorf("authorization = %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("Prefer") != "wait" {
			t.Errorf("prefer = %q", r.Header.Get("Prefer"))
		}

		var req CreatePredictionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req.Input.Prompt != "a pier" {
			t.Errorf("prompt = %q", req.Input.Prompt)
		}

		json.NewEncoder(w).Encode(ReplicatePrediction{ID: "p1", Status: PredictionStatusProcessing})
	})
	mux.HandleFunc("/predictions/p1", func(w http.ResponseWriter, r *http.Request) {
		status := PredictionStatusProcessing
		if polls.Add(1) >= 2 {
			status = PredictionStatusSucceeded
		}
		json.NewEncoder(w).Encode(ReplicatePrediction{
			ID:     "p1",
			Status: status,
			Output: srv.URL + "/files/p1.jpg",
		})
	})
	mux.HandleFunc("/files/p1.jpg", func(w http.ResponseWriter, r *http.Request) {
		w.Write(jpegBytes)
	})

	c, err := NewClient("token", WithBaseURL(srv.URL), WithPollingInterval(time.Millisecond))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	img, err := c.GenerateImage(context.Background(), "a pier", domain.FluxProUltra11)
	if err != nil {
		t.Fatalf("GenerateImage: %v", err)
	}
	if string(img.Data) != string(jpegBytes) {
		t.Errorf("data = %v", img.Data)
	}
	if img.MIMEType != domain.MIMETypeJPEG {
		t.Errorf("mime = %q", img.MIMEType)
	}
	if polls.Load() != 2 {
		t.Errorf("polls = %d, want 2", polls.Load())
	}
}

func TestGenerateImage_Errors(t *testing.T) {
	tests := []struct {
		name    string
		model   string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name:  "rate limited",
			model: domain.FluxProUltra11,
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			wantErr: domain.ErrRateLimited,
		},
		{
			name:  "failed prediction",
			model: domain.FluxProUltra11,
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"id":"p1","status":"failed","error":"nsfw"}`)
			},
		},
		{
			name:  "empty output",
			model: domain.FluxProUltra11,
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"id":"p1","status":"succeeded","output":""}`)
			},
			wantErr: domain.ErrNoImage,
		},
		{
			name:  "unsupported model",
			model: domain.DallE3Model,
			handler: func(w http.ResponseWriter, r *http.Request) {
				t.Error("unexpected request")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c, err := NewClient("token", WithBaseURL(srv.URL), WithPollingInterval(time.Millisecond))
			if err != nil {
				t.Fatalf("NewClient: %v", err)
			}

			_, err = c.GenerateImage(context.Background(), "a pier", tt.model)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
