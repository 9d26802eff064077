package domain

const (
	Gemini25FlashImage = "gemini-2.5-flash-image"
	FluxProUltra11     = "flux-1.1-pro-ultra"
	DallE2Model        = "dall-e-2"
	DallE3Model        = "dall-e-3"
)

const MIMETypeJPEG = "image/jpeg"

type Image struct {
	Data     []byte
	MIMEType string
}
