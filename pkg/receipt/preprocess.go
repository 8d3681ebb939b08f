package receipt

import (
	"image"
	"image/color"
	"os"

	"github.com/disintegration/imaging"
)

// preprocessVariants writes OCR-friendly renditions of the source image to
// temp files and returns their paths (the original path included) plus a
// cleanup func for the temporaries.
func preprocessVariants(path string) ([]string, func(), error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, nil, err
	}

	gray := imaging.Grayscale(img)
	gray = imaging.AdjustContrast(gray, 20)
	gray = imaging.Sharpen(gray, 0.6)
	if gray.Bounds().Dy() < 900 {
		gray = imaging.Resize(gray, 0, 1200, imaging.Lanczos)
	}
	bw := threshold(gray, 200)

	var temps []string
	variants := []string{path}
	for _, v := range []image.Image{gray, bw} {
		f, err := os.CreateTemp("", "receipt-*.png")
		if err != nil {
			continue
		}
		name := f.Name()
		_ = f.Close()
		if err := imaging.Save(v, name); err != nil {
			_ = os.Remove(name)
			continue
		}
		temps = append(temps, name)
		variants = append(variants, name)
	}
	return variants, func() { removeTemp(temps) }, nil
}

// threshold applies a global binary threshold to a grayscale image.
func threshold(img image.Image, cut uint8) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			v := uint8(255)
			if uint8((r+g+bl)/3>>8) <= cut {
				v = 0
			}
			out.Set(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return out
}
