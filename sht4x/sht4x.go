// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sht4x

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

const (
	// Default I2C Address, SHT4x-A parts.
	DefaultAddress i2c.Addr = 0x44
	// Alternate I2C Address, SHT4x-B parts.
	AlternateAddress i2c.Addr = 0x45
)

// ErrInvalidOperation is returned when an Operation is out of range or
// can't be used with the called method.
var ErrInvalidOperation = errors.New("sht4x: invalid operation")

// TransportError wraps a bus failure. The operation is not retried.
type TransportError struct {
	// Op is "write" or "read".
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("sht4x: error %s %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Opts holds the configuration options for the device.
type Opts struct {
	// Conversion selects floating or fixed point conversion of readings.
	Conversion Conversion
	// Precision is the measurement Operation used by Sense.
	Precision Operation
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Conversion: FloatingPoint,
	Precision:  MeasureHighPrecision,
}

// Dev represents a SHT-4X series temperature/humidity sensor.
//
// Dev holds no lock. Each method is one complete bus transaction and the
// caller must not use the same Dev from several goroutines at once.
type Dev struct {
	c     conn.Conn
	opts  Opts
	sleep func(time.Duration)
}

// New returns a Dev talking to the sensor at addr on bus. If opts is nil,
// DefaultOpts is used.
func New(bus i2c.Bus, addr i2c.Addr, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if !opts.Precision.IsMeasurement() {
		return nil, fmt.Errorf("sht4x: %s can't be used for Sense", opts.Precision)
	}
	if opts.Conversion != FloatingPoint && opts.Conversion != FixedPoint {
		return nil, fmt.Errorf("sht4x: invalid conversion %s", opts.Conversion)
	}
	return &Dev{c: &i2c.Dev{Bus: bus, Addr: uint16(addr)}, opts: *opts, sleep: time.Sleep}, nil
}

// If you try to read before the command has finished, the device NACKs or
// returns stale data with no error. execute writes the command, always waits
// the time listed for op, and then reads len(r) bytes if r is not empty.
func (dev *Dev) execute(op Operation, r []byte) error {
	if !op.Valid() {
		return ErrInvalidOperation
	}
	cmd := lookup(op)
	if err := dev.c.Tx([]byte{cmd.code}, nil); err != nil {
		return &TransportError{Op: "write", Err: err}
	}
	dev.sleep(cmd.wait)
	if len(r) == 0 {
		return nil
	}
	if err := dev.c.Tx(nil, r); err != nil {
		return &TransportError{Op: "read", Err: err}
	}
	return nil
}

// MeasureTicks runs a measurement or heater operation and returns the raw
// ticks without conversion.
func (dev *Dev) MeasureTicks(op Operation) (Ticks, error) {
	if !op.IsMeasurement() {
		return Ticks{}, ErrInvalidOperation
	}
	r := make([]byte, responseSize)
	if err := dev.execute(op, r); err != nil {
		return Ticks{}, err
	}
	return decode(r)
}

// Measure runs a measurement or heater operation and returns the converted
// reading. Pressure is always 0.
func (dev *Dev) Measure(op Operation) (physic.Env, error) {
	t, err := dev.MeasureTicks(op)
	if err != nil {
		return physic.Env{}, err
	}
	return t.Env(dev.opts.Conversion), nil
}

// Precision returns the smallest change in readings the device can produce.
// Implements physic.SenseEnv.
func (dev *Dev) Precision(e *physic.Env) {
	e.Temperature = physic.Kelvin / 100
	e.Humidity = physic.PercentRH / 100
	e.Pressure = 0
}

// Halt implements conn.Resource. There is nothing running in the background
// so it is a no-op.
func (dev *Dev) Halt() error {
	return nil
}

// Reset issues a soft-reset to the device
func (dev *Dev) Reset() error {
	if err := dev.execute(SoftReset, nil); err != nil {
		return fmt.Errorf("sht4x: error resetting %w", err)
	}
	return nil
}

// Sense reads temperature and humidity from the device using the configured
// precision. On error, e is left untouched.
func (dev *Dev) Sense(e *physic.Env) error {
	env, err := dev.Measure(dev.opts.Precision)
	if err != nil {
		return fmt.Errorf("sht4x: error reading device %w", err)
	}
	*e = env
	return nil
}

// SenseContinuous is not supported. Call Sense from your own loop.
// Implements physic.SenseEnv.
func (dev *Dev) SenseContinuous(time.Duration) (<-chan physic.Env, error) {
	return nil, errors.New("sht4x: SenseContinuous is not supported")
}

// SerialNumber returns the device serial number set at the factory.
func (dev *Dev) SerialNumber() (uint32, error) {
	r := make([]byte, responseSize)
	if err := dev.execute(ReadSerialNumber, r); err != nil {
		return 0, fmt.Errorf("sht4x: error reading serial number %w", err)
	}
	return decodeSerial(r)
}

// SetHeater enables the sensor's heater. You can specify the power level, and
// the duration. After duration has passed, the heater will be turned off
// automatically. Enabling the heater can allow operation in condensing
// environments.
//
// powerLevel is one of the HeaterPower constants, and duration is one of the
// HeaterDuration constants, either 100ms, or 1000ms.
//
// Returns the temperature and humidity after the period has completed. Refer to
// section 4.9 of the datasheet.
func (dev *Dev) SetHeater(powerLevel HeaterPower, duration HeaterDuration) (physic.Env, error) {
	op, err := HeaterOperation(powerLevel, duration)
	if err != nil {
		return physic.Env{}, err
	}
	env, err := dev.Measure(op)
	if err != nil {
		return env, fmt.Errorf("sht4x: error setting heater %w", err)
	}
	return env, nil
}

// String returns a string representation of the device.
func (dev *Dev) String() string {
	return "sht4x"
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
