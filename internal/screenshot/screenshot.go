// Package screenshot encodes the interpreter framebuffer as PNG image.
package screenshot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/interpreter"
	"golang.org/x/image/draw"
)

// ErrInvalidScale is returned for scale factors below 1.
var ErrInvalidScale = errors.New("invalid scale")

// Image converts the framebuffer to a grayscale image that is scaled by the
// given factor using nearest neighbour sampling.
func Image(fb *interpreter.Framebuffer, scale int) (*image.Gray, error) {
	if scale < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScale, scale)
	}

	src := image.NewGray(image.Rect(0, 0, interpreter.DisplayWidth, interpreter.DisplayHeight))
	for y := range interpreter.DisplayHeight {
		for x := range interpreter.DisplayWidth {
			if fb.Pixel(x, y) {
				src.SetGray(x, y, color.Gray{Y: 0xff})
			}
		}
	}
	if scale == 1 {
		return src, nil
	}

	dst := image.NewGray(image.Rect(0, 0, interpreter.DisplayWidth*scale, interpreter.DisplayHeight*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// Encode writes the scaled framebuffer as PNG to the writer.
func Encode(w io.Writer, fb *interpreter.Framebuffer, scale int) error {
	img, err := Image(fb, scale)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// WriteFile writes the scaled framebuffer as PNG file.
func WriteFile(path string, fb *interpreter.Framebuffer, scale int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}

	if err := Encode(file, fb, scale); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing file %s: %w", path, err)
	}
	return nil
}
