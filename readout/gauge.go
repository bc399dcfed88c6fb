// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package readout presents temperature and humidity readings, either as a
// colored bar on a terminal using ANSI color codes or as a rendered image
// suitable for a small display.
package readout

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/physic"
)

// Operating range of the sensor. Colors and bars are scaled over it.
const (
	MinTemperature = -40*physic.Kelvin + physic.ZeroCelsius
	MaxTemperature = 125*physic.Kelvin + physic.ZeroCelsius
)

// TempColor maps t onto a blue (cold) to red (hot) ramp. Values outside of
// the operating range are clamped.
func TempColor(t physic.Temperature) color.NRGBA {
	f := fraction(t)
	return color.NRGBA{R: uint8(255*f + 0.5), G: 0, B: uint8(255*(1-f) + 0.5), A: 255}
}

func fraction(t physic.Temperature) float64 {
	f := float64(t-MinTemperature) / float64(MaxTemperature-MinTemperature)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Gauge prints one line per reading on a terminal.
type Gauge struct {
	// Width is the number of cells of the bar.
	Width int

	w       io.Writer
	palette ansi256.Palette
	buf     bytes.Buffer
}

// NewGauge returns a Gauge writing to w. If w is nil, the console is used. If
// palette is nil, ansi256.Default is used.
func NewGauge(w io.Writer, palette *ansi256.Palette) *Gauge {
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	if palette == nil {
		palette = ansi256.Default
	}
	return &Gauge{Width: 20, w: w, palette: *palette}
}

// Write prints e as a bar filled in proportion to the temperature, followed
// by the temperature and humidity.
func (g *Gauge) Write(e physic.Env) error {
	if g.Width <= 0 {
		return errors.New("readout: invalid gauge width")
	}
	// This code is designed to minimize the amount of memory allocated per call.
	g.buf.Reset()
	_, _ = g.buf.WriteString("\r\033[0m")
	filled := int(fraction(e.Temperature)*float64(g.Width) + 0.5)
	for i := 0; i < g.Width; i++ {
		if i < filled {
			cell := MinTemperature + physic.Temperature(float64(MaxTemperature-MinTemperature)*(float64(i)+0.5)/float64(g.Width))
			_, _ = io.WriteString(&g.buf, g.palette.Block(TempColor(cell)))
		} else {
			_, _ = g.buf.WriteString("\033[0m ")
		}
	}
	_, _ = fmt.Fprintf(&g.buf, "\033[0m %s %s\n", e.Temperature, e.Humidity)
	_, err := g.buf.WriteTo(g.w)
	return err
}

func (g *Gauge) String() string {
	return "Gauge"
}

var _ fmt.Stringer = &Gauge{}
