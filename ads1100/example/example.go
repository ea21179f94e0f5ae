// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Command example reads an ADS1100 and prints the conversion word and
// voltage at a fixed interval.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/GermanBionicSystems/ads1100/ads1100"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

func main() {
	busName := flag.String("bus", "", "I²C bus name, empty for the first available")
	addr := flag.Uint("addr", uint(ads1100.DefaultAddress), "device address (0x48-0x4F)")
	rate := flag.Int("rate", 8, "data rate in samples/sec (8, 16, 32 or 128)")
	gain := flag.Int("gain", 1, "amplifier gain (1, 2, 4 or 8)")
	ref := flag.Int("ref", 3300, "reference (supply) voltage in millivolts")
	ratio := flag.Int("ratio", 1, "application scale divisor applied to voltage")
	single := flag.Bool("single", false, "use single-shot mode instead of continuous")
	interval := flag.Duration("interval", time.Second, "time between readings")
	count := flag.Int("n", 0, "number of readings, 0 for no limit")
	flag.Parse()

	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	b, err := i2creg.Open(*busName)
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	opts := ads1100.Opts{
		ReferenceVoltage: physic.ElectricPotential(*ref) * physic.MilliVolt,
		PressureRatio:    *ratio,
		Rate:             *rate,
		Gain:             *gain,
	}
	if *single {
		opts.Mode = ads1100.SingleShot
	}
	d, err := ads1100.New(b, i2c.Addr(*addr), &opts)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(d.String())

	// One conversion period, with some slack for the chip's internal
	// oscillator tolerance.
	conversion := time.Second / time.Duration(*rate)
	conversion += conversion / 10

	for n := 0; *count == 0 || n < *count; n++ {
		if *single {
			if err := d.StartConversion(); err != nil {
				log.Fatal(err)
			}
			time.Sleep(conversion)
		}
		raw, err := d.ReadValue()
		if err != nil {
			log.Fatal(err)
		}
		v, err := d.ReadVoltage()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%6d  %s\n", raw, v)
		if !*single {
			time.Sleep(*interval)
		}
	}
}
