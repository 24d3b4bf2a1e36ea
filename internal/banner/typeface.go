package banner

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Typeface produces faces of the configured font.
// The zero value is usable and always produces the built-in bitmap face.
type Typeface struct {
	font *opentype.Font
}

func LoadTypeface(path string) (*Typeface, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return &Typeface{}, fmt.Errorf("unable to read font file: %w", err)
	}

	return ParseTypeface(content)
}

func ParseTypeface(content []byte) (*Typeface, error) {
	parsed, err := opentype.Parse(content)
	if err != nil {
		return &Typeface{}, fmt.Errorf("unable to parse font: %w", err)
	}

	return &Typeface{font: parsed}, nil
}

func (t *Typeface) IsFallback() bool {
	return t.font == nil
}

// Face returns a new face of the requested size. Faces aren't safe for concurrent use,
// so each composition must take its own and close it afterwards.
func (t *Typeface) Face(size float64) font.Face {
	if t.font == nil {
		return basicfont.Face7x13
	}

	face, err := opentype.NewFace(t.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}

	return face
}
