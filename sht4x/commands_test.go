// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sht4x

import (
	"testing"
	"time"
)

func TestCommand(t *testing.T) {
	var tests = []struct {
		op   Operation
		code byte
		wait time.Duration
	}{
		{MeasureHighPrecision, 0xfd, 10 * time.Millisecond},
		{MeasureMediumPrecision, 0xf6, 5 * time.Millisecond},
		{MeasureLowestPrecision, 0xe0, 2 * time.Millisecond},
		{Heater200mW1s, 0x39, 1100 * time.Millisecond},
		{Heater200mW100ms, 0x32, 110 * time.Millisecond},
		{Heater110mW1s, 0x2f, 1100 * time.Millisecond},
		{Heater110mW100ms, 0x24, 110 * time.Millisecond},
		{Heater20mW1s, 0x1e, 1100 * time.Millisecond},
		{Heater20mW100ms, 0x15, 110 * time.Millisecond},
		{ReadSerialNumber, 0x89, 10 * time.Millisecond},
		{SoftReset, 0x94, 10 * time.Millisecond},
	}
	if len(tests) != int(numOperations) {
		t.Fatalf("table covers %d operations, expected %d", len(tests), numOperations)
	}
	seen := map[byte]Operation{}
	for _, test := range tests {
		code, wait := test.op.Command()
		if code != test.code || wait != test.wait {
			t.Errorf("%s.Command()=(0x%02x, %s) expected (0x%02x, %s)", test.op, code, wait, test.code, test.wait)
		}
		if prev, ok := seen[code]; ok {
			t.Errorf("%s and %s share command 0x%02x", prev, test.op, code)
		}
		seen[code] = test.op
	}
}

func TestOperationInvalid(t *testing.T) {
	for _, op := range []Operation{-1, numOperations, 100} {
		if op.Valid() {
			t.Errorf("%d reported valid", op)
		}
		if code, wait := op.Command(); code != 0 || wait != 0 {
			t.Errorf("%s.Command()=(0x%02x, %s) expected zero values", op, code, wait)
		}
		if op.IsMeasurement() {
			t.Errorf("%s reported as a measurement", op)
		}
	}
	if s := Operation(42).String(); s != "Operation(42)" {
		t.Errorf("unexpected String() %q", s)
	}
}

func TestIsMeasurement(t *testing.T) {
	for op := Operation(0); op < numOperations; op++ {
		want := op != ReadSerialNumber && op != SoftReset
		if op.IsMeasurement() != want {
			t.Errorf("%s.IsMeasurement()=%t expected %t", op, op.IsMeasurement(), want)
		}
	}
}

func TestHeaterOperation(t *testing.T) {
	var tests = []struct {
		power    HeaterPower
		duration HeaterDuration
		op       Operation
	}{
		{Power200mW, Duration1s, Heater200mW1s},
		{Power200mW, Duration100ms, Heater200mW100ms},
		{Power110mW, Duration1s, Heater110mW1s},
		{Power110mW, Duration100ms, Heater110mW100ms},
		{Power20mW, Duration1s, Heater20mW1s},
		{Power20mW, Duration100ms, Heater20mW100ms},
	}
	for _, test := range tests {
		op, err := HeaterOperation(test.power, test.duration)
		if err != nil {
			t.Error(err)
			continue
		}
		if op != test.op {
			t.Errorf("HeaterOperation(%d, %v)=%s expected %s", test.power, time.Duration(test.duration), op, test.op)
		}
	}
	if _, err := HeaterOperation(Power20mW, HeaterDuration(10*time.Second)); err == nil {
		t.Error("HeaterOperation() invalid duration did not generate error.")
	}
	if _, err := HeaterOperation(HeaterPower(500), Duration100ms); err == nil {
		t.Error("HeaterOperation() invalid power level did not generate error.")
	}
	if _, err := HeaterOperation(HeaterPower(-1), Duration1s); err == nil {
		t.Error("HeaterOperation() negative power level did not generate error.")
	}
}

func TestParseOperation(t *testing.T) {
	for op := Operation(0); op < numOperations; op++ {
		got, err := ParseOperation(op.String())
		if err != nil {
			t.Error(err)
		} else if got != op {
			t.Errorf("ParseOperation(%q)=%s", op.String(), got)
		}
	}
	if op, err := ParseOperation("heater20mw100MS"); err != nil || op != Heater20mW100ms {
		t.Errorf("case insensitive parse failed: %s %v", op, err)
	}
	if _, err := ParseOperation("measure"); err == nil {
		t.Error("expected error for unknown operation")
	}
}
