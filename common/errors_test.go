// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorsIs(t *testing.T) {
	cfg := Configf("sequence.Pack", "line %s has %d samples", "CK", 3)
	if !errors.Is(cfg, ErrConfiguration) {
		t.Error("ConfigurationError should match ErrConfiguration")
	}
	if errors.Is(cfg, ErrValidation) {
		t.Error("ConfigurationError should not match ErrValidation")
	}
	if s := cfg.Error(); s != "sequence.Pack: line CK has 3 samples" {
		t.Errorf("unexpected message %q", s)
	}

	var val error = &ValidationError{Op: "nozzle.Slot", Channel: "black", Value: 91, Min: 1, Max: 90}
	wrapped := fmt.Errorf("building: %w", val)
	if !errors.Is(wrapped, ErrValidation) {
		t.Error("wrapped ValidationError should match ErrValidation")
	}
	var ve *ValidationError
	if !errors.As(wrapped, &ve) || ve.Value != 91 {
		t.Errorf("errors.As failed: %v", ve)
	}
	if s := val.Error(); s != "nozzle.Slot: black value 91 out of range [1, 90]" {
		t.Errorf("unexpected message %q", s)
	}
}
