package openai

import "github.com/dskvich/location-images/pkg/domain"

type imageSize string

const (
	size256x256   imageSize = "256x256"
	size512x512   imageSize = "512x512"
	size1024x1024 imageSize = "1024x1024"
	size1024x1792 imageSize = "1024x1792"
	size1792x1024 imageSize = "1792x1024"
)

type imageQuality string

const (
	qualityStandard imageQuality = "standard"
	qualityHD       imageQuality = "hd"
)

const responseFormatB64JSON = "b64_json"

type imageOptions struct {
	Size    imageSize
	Quality imageQuality
}

// Landscape output for hero images; dall-e-2 only supports square sizes.
var modelImageOptions = map[string]imageOptions{
	domain.DallE2Model: {Size: size1024x1024},
	domain.DallE3Model: {Size: size1792x1024, Quality: qualityHD},
}

type imageGenerationRequest struct {
	Model          string       `json:"model"`
	Prompt         string       `json:"prompt"`
	N              int          `json:"n"`
	Size           imageSize    `json:"size,omitempty"`
	Quality        imageQuality `json:"quality,omitempty"`
	ResponseFormat string       `json:"response_format"`
}

type imageGenerationResponse struct {
	Data []struct {
		B64JSON       string `json:"b64_json"`
		RevisedPrompt string `json:"revised_prompt"`
	} `json:"data"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}
