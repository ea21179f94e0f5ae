// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ads1100_test

import (
	"fmt"
	"log"

	"github.com/GermanBionicSystems/ads1100/ads1100"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use i2creg I²C bus registry to find the first available I²C bus.
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer b.Close()

	// Create an ADS1100 with the default configuration: continuous
	// conversion at 8 samples/sec, gain 1, 3.3V reference.
	d, err := ads1100.New(b, ads1100.DefaultAddress, nil)
	if err != nil {
		log.Fatalf("failed to initialize ADS1100: %v", err)
	}

	v, err := d.ReadVoltage()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s\n", v)
}
