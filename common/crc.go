// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains functions used across multiple packages. For
// example, a CRC8 calculation
package common

// CRC8 calculates the 8-bit CRC of the byte slice parameter and returns the
// calculated value. CRC bytes are used in sensors from TI and Sensirion.
//
// Polynomial 0x31 (x⁸+x⁵+x⁴+1), initial value 0xff, no reflection and no
// final XOR.
func CRC8(bytes []byte) byte {
	var crc byte = 0xff
	for _, val := range bytes {
		crc ^= val
		for i := 0; i < 8; i++ {
			if (crc & 0x80) == 0 {
				crc <<= 1
			} else {
				crc = (byte)((crc << 1) ^ 0x31)
			}
		}
	}
	return crc
}

// CheckCRC8 reports whether group, laid out as data bytes followed by a
// single CRC byte, is intact. Groups shorter than 2 bytes are never valid.
func CheckCRC8(group []byte) bool {
	if len(group) < 2 {
		return false
	}
	n := len(group) - 1
	return CRC8(group[:n]) == group[n]
}
