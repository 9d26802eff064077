// Package imaging re-encodes provider payloads into JPEG files of a fixed frame.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	DefaultWidth   = 1920
	DefaultHeight  = 1080
	DefaultQuality = 85
)

type Options struct {
	Width   int
	Height  int
	Quality int
}

var DefaultOptions = Options{
	Width:   DefaultWidth,
	Height:  DefaultHeight,
	Quality: DefaultQuality,
}

// ToJPEG decodes data, scales it to cover opts.Width x opts.Height (centre crop)
// and encodes the result as JPEG.
func ToJPEG(data []byte, opts Options) ([]byte, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, coverRect(src.Bounds(), opts.Width, opts.Height), draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: opts.Quality}); err != nil {
		return nil, fmt.Errorf("encoding %s as jpeg: %w", format, err)
	}

	return buf.Bytes(), nil
}

// coverRect is the largest centred region of b with the aspect ratio w:h.
func coverRect(b image.Rectangle, w, h int) image.Rectangle {
	sw, sh := b.Dx(), b.Dy()

	if sw*h > sh*w {
		cw := sh * w / h
		x0 := b.Min.X + (sw-cw)/2
		return image.Rect(x0, b.Min.Y, x0+cw, b.Max.Y)
	}

	ch := sw * h / w
	y0 := b.Min.Y + (sh-ch)/2
	return image.Rect(b.Min.X, y0, b.Max.X, y0+ch)
}
