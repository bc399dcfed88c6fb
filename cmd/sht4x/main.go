// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// sht4x reads a Sensirion SHT-4X sensor on an I²C bus.
//
// Each invocation runs exactly one bus transaction:
//
//	sht4x measure --precision high
//	sht4x measure --ticks
//	sht4x measure --png reading.png
//	sht4x heater --power 200 --duration 100ms
//	sht4x serial
//	sht4x reset
package main

import (
	"log"

	"github.com/mattn/go-colorable"
)

func main() {
	log.SetFlags(0)
	root := newRootCmd()
	root.SetOut(colorable.NewColorableStdout())
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
