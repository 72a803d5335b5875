package xyz

import "errors"

var (
	// ErrNotLoaded reports a conversion attempted before a CMF table was set.
	ErrNotLoaded = errors.New("xyz: color-matching functions not loaded")
	// ErrAlreadyLoaded reports a second attempt to set the CMF table.
	ErrAlreadyLoaded = errors.New("xyz: color-matching functions already loaded")
	// ErrEmptySamples reports an empty sampled point set.
	ErrEmptySamples = errors.New("xyz: sampled point set is empty")
	// ErrMismatchedSamples reports wavelengths and values of different length.
	ErrMismatchedSamples = errors.New("xyz: sampled wavelengths and values must have same length")
)
