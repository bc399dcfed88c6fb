// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sht4x

import (
	"errors"
	"fmt"

	"github.com/GermanBionicSystems/sht4x/common"
	"periph.io/x/conn/v3/physic"
)

// Conversion selects how ticks are turned into physical units.
type Conversion int

const (
	// FloatingPoint applies the datasheet formulas in float64.
	FloatingPoint Conversion = iota
	// FixedPoint uses integer only arithmetic and milli-unit results.
	FixedPoint
)

func (c Conversion) String() string {
	switch c {
	case FloatingPoint:
		return "FloatingPoint"
	case FixedPoint:
		return "FixedPoint"
	default:
		return fmt.Sprintf("Conversion(%d)", int(c))
	}
}

// All calls that return bytes return the same format. 2 bytes of data, a
// CRC, 2 bytes of data, and a CRC.
const responseSize = 6

const countDivisor = float64(65535)

// ErrChecksumMismatch is matched by every *ChecksumError.
var ErrChecksumMismatch = errors.New("sht4x: read crc error")

// ChecksumError is returned when one of the two response groups fails its
// CRC check. The whole response is discarded.
type ChecksumError struct {
	// Group is 1 for bytes [0:3] and 2 for bytes [3:6].
	Group int
	Got   byte
	Want  byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("sht4x: group %d read crc error: got 0x%02x, want 0x%02x", e.Group, e.Got, e.Want)
}

// Is makes errors.Is(err, ErrChecksumMismatch) succeed.
func (e *ChecksumError) Is(target error) bool {
	return target == ErrChecksumMismatch
}

// Ticks is the raw reading returned by the sensor, before conversion.
type Ticks struct {
	Temperature uint16
	Humidity    uint16
}

// decode validates a response and returns the two 16 bit words.
func decode(r []byte) (Ticks, error) {
	if len(r) != responseSize {
		return Ticks{}, fmt.Errorf("sht4x: invalid response length %d", len(r))
	}
	for g := 0; g < 2; g++ {
		grp := r[3*g : 3*g+3]
		if !common.CheckCRC8(grp) {
			return Ticks{}, &ChecksumError{Group: g + 1, Got: grp[2], Want: common.CRC8(grp[:2])}
		}
	}
	return Ticks{
		Temperature: uint16(r[0])<<8 | uint16(r[1]),
		Humidity:    uint16(r[3])<<8 | uint16(r[4]),
	}, nil
}

// decodeSerial validates a serial number response. The first group holds
// the upper 16 bits.
func decodeSerial(r []byte) (uint32, error) {
	t, err := decode(r)
	if err != nil {
		return 0, err
	}
	return uint32(t.Temperature)<<16 | uint32(t.Humidity), nil
}

// Celsius returns the temperature in °C.
//
//	T = -45 + 175 * ticks / 65535
func (t Ticks) Celsius() float64 {
	return -45.0 + 175.0*(float64(t.Temperature)/countDivisor)
}

// PercentRH returns the relative humidity in %RH. The result is not clamped
// and may fall outside of 0..100.
//
//	RH = -6 + 125 * ticks / 65535
func (t Ticks) PercentRH() float64 {
	return -6.0 + 125.0*(float64(t.Humidity)/countDivisor)
}

// MilliCelsius returns the temperature in m°C using integer arithmetic
// only. 21875/8192 approximates 175000/65535.
func (t Ticks) MilliCelsius() int32 {
	return ((21875 * int32(t.Temperature)) >> 13) - 45000
}

// MilliPercentRH returns the relative humidity in m%RH using integer
// arithmetic only. 15625/8192 approximates 125000/65535.
func (t Ticks) MilliPercentRH() int32 {
	return ((15625 * int32(t.Humidity)) >> 13) - 6000
}

// Env converts the ticks with the selected law. Pressure is always 0.
func (t Ticks) Env(c Conversion) physic.Env {
	if c == FixedPoint {
		return physic.Env{
			Temperature: physic.Temperature(t.MilliCelsius())*physic.MilliKelvin + physic.ZeroCelsius,
			Humidity:    physic.RelativeHumidity(t.MilliPercentRH()) * (physic.PercentRH / 1000),
		}
	}
	return physic.Env{
		Temperature: physic.Temperature(t.Celsius()*float64(physic.Kelvin)) + physic.ZeroCelsius,
		Humidity:    physic.RelativeHumidity(t.PercentRH() * float64(physic.PercentRH)),
	}
}
