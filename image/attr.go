package image

import (
	"mime"

	"github.com/chai2010/webp"
)

type Dimension uint32
type Size uint32

// Attr ...
type Attr struct {
	Width  Dimension `json:"width"`
	Height Dimension `json:"height"`
	Size   Size      `json:"size"`
	Ext    string    `json:"ext,omitempty"`
	Mime   string    `json:"mime,omitempty"`
}

// ReadAttr probes the webp header of data without a full decode.
func ReadAttr(data []byte) (*Attr, error) {
	t := GuessType(data)
	if t == TypeNone {
		return nil, ErrorFormat
	}

	w, h, _, err := webp.GetInfo(data)
	if err != nil {
		return nil, err
	}

	ext := ExtByType(t)
	return &Attr{
		Width:  Dimension(w),
		Height: Dimension(h),
		Size:   Size(len(data)),
		Ext:    ext,
		Mime:   mime.TypeByExtension(ext),
	}, nil
}
