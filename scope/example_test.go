// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package scope_test

import (
	"log"

	"github.com/GermanBionicSystems/inkjet/nozzle"
	"github.com/GermanBionicSystems/inkjet/scope"
	"github.com/GermanBionicSystems/inkjet/sequence"
)

func Example() {
	l, err := sequence.Simple{}.Build(sequence.NewRequest(nozzle.Selection{Black: []int{1, 61}}))
	if err != nil {
		log.Fatal(err)
	}
	// Show the first selection phase, 4 samples per column.
	d := scope.New(&scope.Opts{Start: 0, Count: 258, Width: 65})
	defer d.Halt()
	if _, err := d.Show(l); err != nil {
		log.Fatal(err)
	}
}
