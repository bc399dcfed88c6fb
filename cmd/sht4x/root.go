// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/GermanBionicSystems/sht4x/sht4x"
	"github.com/spf13/cobra"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// openBus is replaced in tests.
var openBus = func(name string) (i2c.BusCloser, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	return i2creg.Open(name)
}

type globalFlags struct {
	bus        string
	addr       uint16
	fixedPoint bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "sht4x",
		Short: "Read a Sensirion SHT-4X temperature/humidity sensor",
		Long: `sht4x talks to a Sensirion SHT-40, SHT-41 or SHT-45 sensor over I²C.

Every subcommand writes one command byte, waits for the conversion time the
sensor requires, and reads and validates the response. Bus errors and CRC
errors are reported as-is and are not retried.

Addresses:
  0x44  SHT4x-A parts (default)
  0x45  SHT4x-B parts`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.bus, "bus", "", "I²C bus name, empty for the first available")
	root.PersistentFlags().Uint16Var(&g.addr, "addr", uint16(sht4x.DefaultAddress), "I²C device address")
	root.PersistentFlags().BoolVar(&g.fixedPoint, "fixed-point", false, "Convert readings with integer only arithmetic")

	root.AddCommand(newMeasureCmd(g), newHeaterCmd(g), newSerialCmd(g), newResetCmd(g))
	return root
}

// withDev opens the bus, runs fn and closes the bus.
func withDev(g *globalFlags, precision sht4x.Operation, fn func(*sht4x.Dev) error) error {
	bus, err := openBus(g.bus)
	if err != nil {
		return fmt.Errorf("opening bus %q: %w", g.bus, err)
	}
	defer bus.Close()

	opts := sht4x.DefaultOpts
	opts.Precision = precision
	if g.fixedPoint {
		opts.Conversion = sht4x.FixedPoint
	}
	dev, err := sht4x.New(bus, i2c.Addr(g.addr), &opts)
	if err != nil {
		return err
	}
	return fn(dev)
}
