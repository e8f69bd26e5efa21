// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package inkjet is a container for the piezo print-head control packages.
//
// The nozzle and quality packages build the selection buffers, sequence
// turns them into the six timed control lines and packs those into words,
// and plot and scope visualize a cycle.
package inkjet
