package replicate

import "time"

type ReplicatePrediction struct {
	ID          string    `json:"id"`
	Error       string    `json:"error"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	CompletedAt time.Time `json:"completed_at,omitempty"`
	Output      string    `json:"output"`
}

type CreatePredictionRequest struct {
	Input FluxInput `json:"input"`
}

type FluxInput struct {
	Prompt       string `json:"prompt"`
	AspectRatio  string `json:"aspect_ratio"`
	OutputFormat string `json:"output_format"`
}

const (
	PredictionStatusStarting   = "starting"
	PredictionStatusProcessing = "processing"
	PredictionStatusSucceeded  = "succeeded"
	PredictionStatusFailed     = "failed"
	PredictionStatusCanceled   = "canceled"
)
