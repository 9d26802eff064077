// Package prompts holds the static prompt tables for every image category.
package prompts

import "strings"

const (
	TestSlug     = "downtown-san-diego"
	TestFilename = "test-downtown.jpg"
)

// StyleSuffix is the camera and grading brief appended to every prompt.
const StyleSuffix = `Shot on Sony FX9 with G Master 85mm f/1.4 at f/2.0, ISO 640, 1/250s, 8K resolution.
Natural light, shallow depth of field, subject sharp, background in soft creamy bokeh.
Graded in S-Log3 to warm trustworthy tones.
Style: authentic documentary photography, candid moments, emphasis on trust and care.
Photorealistic, cannot look AI-generated.`

func Full(text string) string {
	var sb strings.Builder
	sb.WriteString("Generate an image: ")
	sb.WriteString(text)
	sb.WriteString("\n\n")
	sb.WriteString(StyleSuffix)
	return sb.String()
}
