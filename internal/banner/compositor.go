package banner

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	Width  = 1024
	Height = 512

	avatarSize = 200
	pinSize    = 64

	nameFontSize = 48
	infoFontSize = 30
)

var (
	backgroundColor = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	fallbackColor   = color.NRGBA{R: 0xff, A: 0xff}
	nameColor       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	infoColor       = color.NRGBA{R: 200, G: 200, B: 200, A: 255}

	avatarPosition = image.Pt(50, 50)
	pinPosition    = image.Pt(900, 40)
	namePosition   = image.Pt(300, 60)
	levelPosition  = image.Pt(300, 130)
	guildPosition  = image.Pt(300, 180)
)

type Compositor struct {
	typeface *Typeface
	fallback []byte
}

func NewCompositor(typeface *Typeface) (*Compositor, error) {
	if typeface == nil {
		typeface = &Typeface{}
	}

	fallback, err := encode(imaging.New(Width, Height, fallbackColor))
	if err != nil {
		return nil, fmt.Errorf("unable to prepare fallback image: %w", err)
	}

	return &Compositor{
		typeface: typeface,
		fallback: fallback,
	}, nil
}

// Compose always returns a PNG. When the banner can't be drawn, the solid red image is returned
// along with the error that caused it. The returned slice must not be modified.
func (c *Compositor) Compose(data *Data) (result []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during composition: %v", r)
		}

		if err != nil {
			result = c.fallback
		}
	}()

	canvas, err := c.draw(data)
	if err != nil {
		return nil, err
	}

	return encode(canvas)
}

func (c *Compositor) draw(data *Data) (*image.NRGBA, error) {
	var canvas *image.NRGBA
	if len(data.Banner) > 0 {
		img, err := decode(data.Banner)
		if err != nil {
			return nil, fmt.Errorf("unable to decode banner: %w", err)
		}

		canvas = imaging.Resize(img, Width, Height, imaging.Lanczos)
	} else {
		canvas = imaging.New(Width, Height, backgroundColor)
	}

	if len(data.Avatar) > 0 {
		img, err := decode(data.Avatar)
		if err != nil {
			return nil, fmt.Errorf("unable to decode avatar: %w", err)
		}

		canvas = imaging.Overlay(canvas, imaging.Resize(img, avatarSize, avatarSize, imaging.Lanczos), avatarPosition, 1)
	}

	nameFace := c.typeface.Face(nameFontSize)
	defer nameFace.Close()
	infoFace := c.typeface.Face(infoFontSize)
	defer infoFace.Close()

	drawText(canvas, nameFace, nameColor, namePosition, data.nameLine())
	drawText(canvas, infoFace, infoColor, levelPosition, data.levelLine())
	drawText(canvas, infoFace, infoColor, guildPosition, data.guildLine())

	if len(data.Pin) > 0 {
		img, err := decode(data.Pin)
		if err != nil {
			return nil, fmt.Errorf("unable to decode pin: %w", err)
		}

		canvas = imaging.Overlay(canvas, imaging.Resize(img, pinSize, pinSize, imaging.Lanczos), pinPosition, 1)
	}

	return canvas, nil
}

// drawText treats the position as the top-left corner of the text box
func drawText(dst draw.Image, face font.Face, c color.Color, position image.Point, text string) {
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(position.X, position.Y+face.Metrics().Ascent.Ceil()),
	}
	drawer.DrawString(text)
}

func decode(content []byte) (image.Image, error) {
	return imaging.Decode(bytes.NewReader(content))
}

func encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
