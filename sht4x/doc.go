// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// sht4x is a package for interfacing with the Sensirion SHT-40, SHT-41, and
// SHT-45 sensors.
//
// # Datasheet
//
// https://sensirion.com/media/documents/33FD6951/67EB9032/HT_DS_Datasheet_SHT4x_5.pdf
//
// # Temperature Accuracy
//
// SHT-40 & SHT-41
//
//	Typical accuracy: ±0.2 °C
//
//	Response time τ₆₃% ≈ 2 s
//
// SHT-45
//
//	Typical accuracy: ±0.1 °C
//
//	Response time τ₆₃% ≈ 2 s
//
// # Humidity Accuracy
//
// SHT-40 (Base‑class)
//
//	Typical accuracy at 25 °C: ±1.8 % RH
//
//	Maximum accuracy (at 25 °C): up to ±3.5 % RH
//
// SHT-41 (Intermediate‑class)
//
//	Typical accuracy at 25 °C: ±1.8 % RH
//
//	Maximum accuracy (at 25 °C): up to ±2.5 % RH
//
// SHT-45 (High‑accuracy‑class)
//
//	Typical accuracy at 25 °C: ±1.0 % RH
//
//	Maximum accuracy (at 25 °C): up to ≈±1.75 % RH
//
// All three share a resolution of 0.01 % RH, a response time τ₆₃% ≈ 4 s, and long‑term drift < 0.2 % RH/year .
//
// All devices have a resolution of 0.01 °C and specified range –40…+125 °C .
//
// # Protocol
//
// Every Operation is a single command byte with no payload. After the write,
// the device needs a fixed conversion time before the response can be read,
// and Dev always sleeps for it. Responses are 6 bytes: two big endian words,
// each followed by a CRC-8 (see common.CRC8). A response with a bad CRC is
// rejected as a whole.
//
// Readings can be converted with either the floating point datasheet formulas
// or an integer only fixed point law. See Conversion.
package sht4x
