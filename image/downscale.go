package image

import (
	"bytes"
	"image"

	"github.com/chai2010/webp"
	"github.com/nfnt/resize"
)

// WriteOption ...
type WriteOption struct {
	MaxWidth uint
	Quality  int
}

// Downscale decodes data, caps its width at wopt.MaxWidth keeping the
// aspect ratio, and re-encodes at wopt.Quality. Images at or under the
// cap are re-encoded only; resized reports whether the cap applied.
func Downscale(data []byte, wopt WriteOption) (out []byte, resized bool, err error) {
	var m image.Image
	m, err = webp.Decode(bytes.NewReader(data))
	if err != nil {
		return
	}

	ow := uint(m.Bounds().Dx())
	if ow > wopt.MaxWidth {
		m = resize.Resize(wopt.MaxWidth, 0, m, resize.Bicubic)
		resized = true
	}

	var buf bytes.Buffer
	err = webp.Encode(&buf, m, &webp.Options{Quality: float32(wopt.Quality)})
	if err != nil {
		return nil, false, err
	}
	return buf.Bytes(), resized, nil
}
