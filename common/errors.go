// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package common

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is matched by every *ConfigurationError.
	ErrConfiguration = errors.New("configuration error")
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation error")
)

// ConfigurationError reports a static setup problem: an unknown quality
// profile, an invalid pinout or signal vectors of unequal length.
type ConfigurationError struct {
	// Op is the package qualified operation, e.g. "sequence.Pack".
	Op  string
	Msg string
}

func (e *ConfigurationError) Error() string {
	return e.Op + ": " + e.Msg
}

// Is makes errors.Is(err, ErrConfiguration) work.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// Configf returns a *ConfigurationError with a formatted message.
func Configf(op, format string, args ...interface{}) error {
	return &ConfigurationError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// ValidationError reports an input value outside its valid range, e.g. a
// nozzle number that does not exist on the channel.
type ValidationError struct {
	Op      string
	Channel string
	Value   int
	Min     int
	Max     int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s value %d out of range [%d, %d]", e.Op, e.Channel, e.Value, e.Min, e.Max)
}

// Is makes errors.Is(err, ErrValidation) work.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
