package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"eventease/internal/domain"
)

const defaultImageSize = 256

type renderer struct {
	size int
}

// NewRenderer returns a QRRenderer producing PNG images of the given pixel
// size. A size of 0 or less falls back to 256.
func NewRenderer(size int) domain.QRRenderer {
	if size <= 0 {
		size = defaultImageSize
	}
	return &renderer{size: size}
}

func (r *renderer) Render(code string) ([]byte, error) {
	png, err := qrcode.Encode(code, qrcode.Medium, r.size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}
