package jtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("jtree: invalid configuration")
	// ErrInvariant signals a violated structural tree invariant.
	ErrInvariant = errors.New("jtree: invariant violated")
)
