package render

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

var ErrFontSize = errors.New("render: font size must be positive")

// LoadScoreFace returns Go Mono at the given pixel size.
func LoadScoreFace(size float64) (text.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrFontSize, size)
	}
	s, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("render: load score font: %w", err)
	}
	return &text.GoTextFace{Source: s, Size: size}, nil
}
