package qrgen

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"io"

	"github.com/nfnt/resize"
	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"
)

// Encoder turns arbitrary text into a scannable PNG image. Handlers and the
// pre-generator receive it at construction time, so the encoding capability
// is an explicit dependency rather than ambient state.
type Encoder interface {
	Encode(text string) ([]byte, error)
}

// PNGEncoder renders black-on-white QR codes with Low error correction and a
// quiet zone sized for reliable phone-camera scans.
type PNGEncoder struct {
	moduleWidth uint8 // pixels per QR module
	borderWidth int   // quiet zone in pixels
	minSize     int   // minimum output edge in pixels
}

// NewPNGEncoder returns an encoder with the default output geometry.
func NewPNGEncoder() *PNGEncoder {
	return &PNGEncoder{
		moduleWidth: 6,
		borderWidth: 24, // four modules of quiet zone
		minSize:     290,
	}
}

// Encode renders text as a PNG QR code.
func (e *PNGEncoder) Encode(text string) ([]byte, error) {
	if text == "" {
		return nil, errors.New("empty text")
	}

	qrc, err := qrcode.NewWith(text, qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionLow))
	if err != nil {
		return nil, fmt.Errorf("build QR matrix: %w", err)
	}

	var buf bytes.Buffer
	w := standard.NewWithWriter(nopCloser{&buf},
		standard.WithQRWidth(e.moduleWidth),
		standard.WithBorderWidth(e.borderWidth),
		standard.WithFgColor(color.RGBA{0, 0, 0, 255}),
		standard.WithBgColor(color.RGBA{255, 255, 255, 255}),
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
	)
	if err := qrc.Save(w); err != nil {
		return nil, fmt.Errorf("render QR image: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("flush QR image: %w", err)
	}

	return e.upscale(buf.Bytes())
}

// upscale grows small codes to minSize using nearest-neighbor interpolation,
// which keeps module edges sharp.
func (e *PNGEncoder) upscale(data []byte) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode QR image: %w", err)
	}
	if img.Bounds().Dx() >= e.minSize {
		return data, nil
	}

	scaled := resize.Resize(uint(e.minSize), uint(e.minSize), img, resize.NearestNeighbor)
	var out bytes.Buffer
	if err := png.Encode(&out, scaled); err != nil {
		return nil, fmt.Errorf("encode scaled QR image: %w", err)
	}
	return out.Bytes(), nil
}

// nopCloser adapts a bytes.Buffer to the io.WriteCloser the standard writer
// expects when streaming instead of writing a file.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
