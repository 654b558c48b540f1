package domain

import "errors"

// Sentinel errors for the adapter boundary - use with errors.Is().
// The core engine operations (assemble, minify, render) never return
// errors; only normalization of platform payloads can fail, and only on
// adapter-contract violations.
var (
	ErrValidation      = errors.New("validation failed")
	ErrUnknownPlatform = errors.New("unknown platform")
)
