// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ads1100 controls a Texas Instruments ADS1100 analog to digital
// converter over I²C.
//
// The ADS1100 is a 16-bit delta-sigma ADC with a single differential input,
// a programmable gain amplifier (1x, 2x, 4x, 8x) and four data rates
// (8, 16, 32 and 128 samples per second). The effective resolution of the
// conversion word depends on the data rate: 16 bits at 8 SPS down to 12 bits
// at 128 SPS. All of the device's behavior is controlled through a single
// 8-bit configuration register.
//
// The chip is sold in eight factory-programmed address variants, ADS1100A0
// through ADS1100A7, occupying I²C addresses 0x48 through 0x4F. The address
// cannot be changed at runtime; order the variant you need.
//
// The driver is fully synchronous and performs no internal locking. If the
// bus is shared between goroutines, serialization is the caller's
// responsibility.
//
// # Datasheet
//
// https://www.ti.com/lit/ds/symlink/ads1100.pdf
package ads1100
