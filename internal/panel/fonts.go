package panel

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type fonts struct {
	title    font.Face
	subtitle font.Face
	label    font.Face
	value    font.Face
	caption  font.Face
}

func loadFonts() (*fonts, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}

	face := func(f *opentype.Font, size float64) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	var fs fonts
	for _, fc := range []struct {
		dst  *font.Face
		font *opentype.Font
		size float64
	}{
		{&fs.title, bold, 24},
		{&fs.subtitle, regular, 11},
		{&fs.label, regular, 13},
		{&fs.value, bold, 12},
		{&fs.caption, bold, 10},
	} {
		f, err := face(fc.font, fc.size)
		if err != nil {
			return nil, fmt.Errorf("font face: %w", err)
		}
		*fc.dst = f
	}
	return &fs, nil
}
