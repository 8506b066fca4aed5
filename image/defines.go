package image

import (
	"bytes"
	"errors"
)

// TypeID ...
type TypeID uint8

const (
	TypeNone TypeID = iota
	TypeWebp
)

const (
	sigRIFF = "RIFF"
	sigWEBP = "WEBP"

	headSize = 12
)

var (
	ErrorFormat = errors.New("invalid or unsupported image format")
)

// GuessType sniffs the container signature of data.
func GuessType(data []byte) TypeID {
	if len(data) < headSize {
		return TypeNone
	}
	if bytes.HasPrefix(data, []byte(sigRIFF)) && bytes.Equal(data[8:headSize], []byte(sigWEBP)) {
		return TypeWebp
	}
	return TypeNone
}

// ExtByType ...
func ExtByType(t TypeID) string {
	if t == TypeWebp {
		return ".webp"
	}
	return ""
}
