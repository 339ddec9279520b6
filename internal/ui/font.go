// internal/ui/font.go
package ui

import (
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// NewFontFace создает шрифт нужного размера из встроенного Go Regular.
// Ошибка здесь возможна только при порче встроенных данных шрифта.
func NewFontFace(size float64) font.Face {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("failed to parse embedded font: %v", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Fatalf("failed to create font face: %v", err)
	}
	return face
}
