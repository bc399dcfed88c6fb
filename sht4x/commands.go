// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sht4x

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Operation is a single command understood by the sensor.
type Operation int

const (
	// Single shot measurements. Higher repeatability takes longer.
	MeasureHighPrecision Operation = iota
	MeasureMediumPrecision
	MeasureLowestPrecision

	// Heater activations. The sensor turns the heater off by itself and
	// returns a high precision measurement taken just before it does.
	Heater200mW1s
	Heater200mW100ms
	Heater110mW1s
	Heater110mW100ms
	Heater20mW1s
	Heater20mW100ms

	ReadSerialNumber
	SoftReset

	numOperations
)

// HeaterPower represents a type for the heater power setting.
type HeaterPower int

// HeaterDuration represents a duration for turning the heater on.
type HeaterDuration time.Duration

const (
	// Power settings for the heater element.
	Power20mW HeaterPower = iota
	Power110mW
	Power200mW

	// Durations that you can turn the heater on for.
	Duration100ms HeaterDuration = HeaterDuration(100 * time.Millisecond)
	Duration1s    HeaterDuration = HeaterDuration(time.Second)
)

type command struct {
	code byte
	// wait is measured from the end of the command write to the earliest
	// read that returns valid data.
	wait time.Duration
	name string
}

// commands is indexed by Operation.
var commands = [numOperations]command{
	MeasureHighPrecision:   {0xfd, 10 * time.Millisecond, "MeasureHighPrecision"},
	MeasureMediumPrecision: {0xf6, 5 * time.Millisecond, "MeasureMediumPrecision"},
	MeasureLowestPrecision: {0xe0, 2 * time.Millisecond, "MeasureLowestPrecision"},
	Heater200mW1s:          {0x39, 1100 * time.Millisecond, "Heater200mW1s"},
	Heater200mW100ms:       {0x32, 110 * time.Millisecond, "Heater200mW100ms"},
	Heater110mW1s:          {0x2f, 1100 * time.Millisecond, "Heater110mW1s"},
	Heater110mW100ms:       {0x24, 110 * time.Millisecond, "Heater110mW100ms"},
	Heater20mW1s:           {0x1e, 1100 * time.Millisecond, "Heater20mW1s"},
	Heater20mW100ms:        {0x15, 110 * time.Millisecond, "Heater20mW100ms"},
	ReadSerialNumber:       {0x89, 10 * time.Millisecond, "ReadSerialNumber"},
	SoftReset:              {0x94, 10 * time.Millisecond, "SoftReset"},
}

// heaters is indexed by [duration][power].
var heaters = [2][3]Operation{
	{Heater20mW100ms, Heater110mW100ms, Heater200mW100ms},
	{Heater20mW1s, Heater110mW1s, Heater200mW1s},
}

func lookup(op Operation) command {
	return commands[op]
}

// Valid returns true if op is one of the defined operations.
func (op Operation) Valid() bool {
	return op >= 0 && op < numOperations
}

// Command returns the command byte sent to the device and the minimum time
// to wait before the response can be read.
func (op Operation) Command() (byte, time.Duration) {
	if !op.Valid() {
		return 0, 0
	}
	c := lookup(op)
	return c.code, c.wait
}

// IsMeasurement returns true if op returns a temperature and humidity
// reading.
func (op Operation) IsMeasurement() bool {
	return op >= MeasureHighPrecision && op <= Heater20mW100ms
}

func (op Operation) String() string {
	if !op.Valid() {
		return fmt.Sprintf("Operation(%d)", int(op))
	}
	return lookup(op).name
}

// HeaterOperation returns the Operation that enables the heater at
// powerLevel for duration.
func HeaterOperation(powerLevel HeaterPower, duration HeaterDuration) (Operation, error) {
	var row int
	switch duration {
	case Duration100ms:
		row = 0
	case Duration1s:
		row = 1
	default:
		return 0, errors.New("sht4x: invalid heater duration")
	}
	if powerLevel < Power20mW || powerLevel > Power200mW {
		return 0, errors.New("sht4x: invalid heater power")
	}
	return heaters[row][powerLevel], nil
}

// ParseOperation returns the Operation with the given name. The match is
// case insensitive.
func ParseOperation(s string) (Operation, error) {
	for op := Operation(0); op < numOperations; op++ {
		if strings.EqualFold(lookup(op).name, s) {
			return op, nil
		}
	}
	return 0, fmt.Errorf("sht4x: unknown operation %q", s)
}
