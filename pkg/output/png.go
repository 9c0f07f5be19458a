// Package output encodes a renderer.Buffer to PNG.
package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/lumenray/raygo/pkg/renderer"
)

// WriteFile encodes buf as an 8-bit RGB PNG at path. The core produces
// rows bottom-up (row 0 is the bottom of the image); this flips rows so
// the file is stored top-to-bottom as PNG expects.
func WriteFile(path string, buf *renderer.Buffer) error {
	img := ToImage(buf)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %q: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("output: encode %q: %w", path, err)
	}

	return nil
}

// ToImage converts buf into a standard library image.RGBA, flipping rows
// from the renderer's bottom-up order to the top-down order images use.
func ToImage(buf *renderer.Buffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, buf.Width, buf.Height))

	for row := 0; row < buf.Height; row++ {
		dstY := buf.Height - 1 - row
		for col := 0; col < buf.Width; col++ {
			i := (row*buf.Width + col) * 3
			img.SetRGBA(col, dstY, color.RGBA{
				R: buf.Pixels[i+0],
				G: buf.Pixels[i+1],
				B: buf.Pixels[i+2],
				A: 255,
			})
		}
	}

	return img
}
