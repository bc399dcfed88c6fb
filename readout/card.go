// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package readout

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"periph.io/x/conn/v3/physic"
)

var parseFont = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(goregular.TTF)
})

// Card is a rendered reading.
type Card struct {
	dc *gg.Context
}

// NewCard draws title, the temperature and the humidity of e on a w×h white
// card. The top band is filled with TempColor(e.Temperature).
func NewCard(e physic.Env, title string, w, h int) (*Card, error) {
	if w < 16 || h < 16 {
		return nil, errors.New("readout: card too small")
	}
	f, err := parseFont()
	if err != nil {
		return nil, fmt.Errorf("readout: parsing font %w", err)
	}
	var face font.Face = truetype.NewFace(f, &truetype.Options{Size: float64(h) / 6})
	defer face.Close()

	fw, fh := float64(w), float64(h)
	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()

	band := fh / 8
	dc.SetColor(TempColor(e.Temperature))
	dc.DrawRectangle(0, 0, fw, band)
	dc.Fill()

	dc.SetFontFace(face)
	dc.SetColor(color.Black)
	dc.DrawStringAnchored(title, fw/2, band+fh*0.15, 0.5, 0.5)
	dc.DrawStringAnchored(e.Temperature.String(), fw/2, band+fh*0.4, 0.5, 0.5)
	dc.DrawStringAnchored(e.Humidity.String(), fw/2, band+fh*0.65, 0.5, 0.5)
	return &Card{dc: dc}, nil
}

// Image returns the rendered card.
func (c *Card) Image() image.Image {
	return c.dc.Image()
}

// WritePNG encodes the card as PNG.
func (c *Card) WritePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}
