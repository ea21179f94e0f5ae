// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ads1100

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Mode selects how the device performs conversions.
type Mode byte

const (
	// Continuous makes the device convert permanently at the configured
	// data rate. This is the power-on default.
	Continuous Mode = 0
	// SingleShot makes the device idle until a conversion is requested
	// with StartConversion.
	SingleShot Mode = 1
)

const (
	// DefaultAddress is the I²C address of the ADS1100A0 variant. The
	// other factory variants follow at 0x49 through 0x4F.
	DefaultAddress i2c.Addr = 0x48

	// Configuration register layout.
	startBusyBit   byte = 0x80 // write: trigger single-shot; read: conversion busy
	singleModeBit  byte = 0x10
	rateMask       byte = 0x0C
	gainMask       byte = 0x03
	rateShift           = 2
	transientMask       = startBusyBit
)

// Indexed by the 2-bit DR field of the configuration register.
var (
	rateValues = [4]int{128, 32, 16, 8}
	// Positive full-scale output code for each data rate. Slower rates
	// yield more bits of resolution.
	fullScaleCodes = [4]int{2048, 8192, 16384, 32768}
	gainValues     = [4]int{1, 2, 4, 8}
)

var (
	errInvalidMode      = errors.New("ads1100: invalid conversion mode")
	errInvalidRate      = errors.New("ads1100: rate must be 8, 16, 32 or 128 samples/sec")
	errInvalidGain      = errors.New("ads1100: gain must be 1, 2, 4 or 8")
	errInvalidRatio     = errors.New("ads1100: pressure ratio must be positive")
	errInvalidReference = errors.New("ads1100: reference voltage must be positive")
	errBusy             = errors.New("ads1100: conversion not finished")
	errNotSingleShot    = errors.New("ads1100: device is in continuous mode")
)

// Opts holds the configuration options for the device.
type Opts struct {
	// ReferenceVoltage is the voltage applied to the VDD pin. The ADS1100
	// uses its supply as the conversion reference. Leave 0 to use the
	// default of 3.3V.
	ReferenceVoltage physic.ElectricPotential
	// PressureRatio is an application-level divisor applied to every
	// voltage result, for inputs fed through a resistor divider or a
	// pressure sender with a known transfer ratio. It does not affect the
	// raw conversion word. Leave 0 for no scaling.
	PressureRatio int
	// Mode selects continuous or single-shot conversion.
	Mode Mode
	// Rate is the data rate in samples per second, one of 8, 16, 32 or
	// 128. Leave 0 to use the default of 8 SPS (full 16-bit resolution).
	Rate int
	// Gain is the programmable amplifier gain, one of 1, 2, 4 or 8.
	// Leave 0 to use the default of 1.
	Gain int
}

// DefaultOpts holds the default configuration options: continuous
// conversion at 8 samples/sec with gain 1 and a 3.3V reference.
var DefaultOpts = Opts{
	ReferenceVoltage: 3300 * physic.MilliVolt,
	PressureRatio:    1,
	Mode:             Continuous,
	Rate:             8,
	Gain:             1,
}

// Dev represents an ADS1100 A/D converter.
type Dev struct {
	d    *i2c.Dev
	opts Opts
	// Last configuration byte successfully written to the device. The
	// transient start bit is never cached.
	config byte
}

// New returns an object that communicates over I²C with an ADS1100
// converter at the given address. The Opts can be nil, in which case
// DefaultOpts is used. The configuration register is written once during
// initialization.
func New(b i2c.Bus, addr i2c.Addr, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	o := *opts
	if o.ReferenceVoltage == 0 {
		o.ReferenceVoltage = DefaultOpts.ReferenceVoltage
	}
	if o.ReferenceVoltage < 0 {
		return nil, errInvalidReference
	}
	if o.PressureRatio == 0 {
		o.PressureRatio = 1
	}
	if o.PressureRatio < 0 {
		return nil, errInvalidRatio
	}
	if o.Rate == 0 {
		o.Rate = DefaultOpts.Rate
	}
	if o.Gain == 0 {
		o.Gain = DefaultOpts.Gain
	}

	var config byte
	switch o.Mode {
	case Continuous:
	case SingleShot:
		config |= singleModeBit
	default:
		return nil, errInvalidMode
	}
	rc, ok := rateCode(o.Rate)
	if !ok {
		return nil, errInvalidRate
	}
	gc, ok := gainCode(o.Gain)
	if !ok {
		return nil, errInvalidGain
	}
	config |= rc<<rateShift | gc

	d := &Dev{d: &i2c.Dev{Bus: b, Addr: uint16(addr)}, opts: o}
	if err := d.writeConfig(config); err != nil {
		return nil, err
	}
	return d, nil
}

// Mode returns the currently configured conversion mode.
func (d *Dev) Mode() Mode {
	if d.config&singleModeBit != 0 {
		return SingleShot
	}
	return Continuous
}

// SetMode switches the device between continuous and single-shot
// conversion. One bus write.
func (d *Dev) SetMode(m Mode) error {
	switch m {
	case Continuous:
		return d.writeConfig(d.config &^ singleModeBit)
	case SingleShot:
		return d.writeConfig(d.config | singleModeBit)
	}
	return errInvalidMode
}

// Rate returns the currently configured data rate in samples per second.
func (d *Dev) Rate() int {
	return rateValues[(d.config&rateMask)>>rateShift]
}

// SetRate sets the data rate. rate must be one of 8, 16, 32 or 128
// samples per second. One bus write.
func (d *Dev) SetRate(rate int) error {
	rc, ok := rateCode(rate)
	if !ok {
		return errInvalidRate
	}
	return d.writeConfig(d.config&^rateMask | rc<<rateShift)
}

// Gain returns the currently configured amplifier gain.
func (d *Dev) Gain() int {
	return gainValues[d.config&gainMask]
}

// SetGain sets the programmable amplifier gain. gain must be one of 1, 2,
// 4 or 8. One bus write.
func (d *Dev) SetGain(gain int) error {
	gc, ok := gainCode(gain)
	if !ok {
		return errInvalidGain
	}
	return d.writeConfig(d.config&^gainMask | gc)
}

// FullScale returns the positive full-scale output code at the current
// data rate: 2048 at 128 SPS up to 32768 at 8 SPS.
func (d *Dev) FullScale() int {
	return fullScaleCodes[(d.config&rateMask)>>rateShift]
}

// StartConversion triggers a single conversion. The device must be in
// single-shot mode. The conversion takes one period of the configured data
// rate; the caller is responsible for waiting before calling ReadValue,
// which reports errBusy until the result is ready.
func (d *Dev) StartConversion() error {
	if d.config&singleModeBit == 0 {
		return errNotSingleShot
	}
	if err := d.d.Tx([]byte{d.config | startBusyBit}, nil); err != nil {
		return fmt.Errorf("ads1100: %w", err)
	}
	return nil
}

// ReadValue reads the output register and returns the conversion word as a
// signed 16-bit value. The usable range depends on the configured rate; see
// FullScale. In single-shot mode an error is returned while a conversion
// started with StartConversion is still in progress.
func (d *Dev) ReadValue() (int16, error) {
	r := make([]byte, 3)
	if err := d.d.Tx(nil, r); err != nil {
		return 0, fmt.Errorf("ads1100: %w", err)
	}
	if d.config&singleModeBit != 0 && r[2]&startBusyBit != 0 {
		return 0, errBusy
	}
	return int16(uint16(r[0])<<8 | uint16(r[1])), nil
}

// ReadVoltage reads a conversion and returns the input voltage, scaled by
// the configured reference voltage, gain, full-scale code and pressure
// ratio.
func (d *Dev) ReadVoltage() (physic.ElectricPotential, error) {
	raw, err := d.ReadValue()
	if err != nil {
		return 0, err
	}
	div := int64(d.FullScale()) * int64(d.Gain()) * int64(d.opts.PressureRatio)
	return physic.ElectricPotential(int64(d.opts.ReferenceVoltage) * int64(raw) / div), nil
}

// ReadConfig reads the configuration register back from the device. Bit 7
// is the busy flag, not a configuration bit.
func (d *Dev) ReadConfig() (byte, error) {
	r := make([]byte, 3)
	if err := d.d.Tx(nil, r); err != nil {
		return 0, fmt.Errorf("ads1100: %w", err)
	}
	return r[2], nil
}

// Halt leaves the device in single-shot mode so it idles between
// conversions; the ADS1100 has no explicit power-down. Implements
// conn.Resource.
func (d *Dev) Halt() error {
	if d.config&singleModeBit != 0 {
		return nil
	}
	return d.writeConfig(d.config | singleModeBit)
}

func (d *Dev) String() string {
	return fmt.Sprintf("ads1100: %s", d.d.String())
}

// writeConfig writes b to the configuration register and caches it. The
// cache is only updated after a successful write, so it always matches the
// device.
func (d *Dev) writeConfig(b byte) error {
	if err := d.d.Tx([]byte{b &^ transientMask}, nil); err != nil {
		return fmt.Errorf("ads1100: %w", err)
	}
	d.config = b &^ transientMask
	return nil
}

func rateCode(rate int) (byte, bool) {
	for code, v := range rateValues {
		if v == rate {
			return byte(code), true
		}
	}
	return 0, false
}

func gainCode(gain int) (byte, bool) {
	for code, v := range gainValues {
		if v == gain {
			return byte(code), true
		}
	}
	return 0, false
}

var _ conn.Resource = &Dev{}
