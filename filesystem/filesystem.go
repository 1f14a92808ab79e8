// Package filesystem routes every disk access through a single afero
// backend, so tests can trade the real filesystem for an in-memory one
// without touching call sites.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API exposes the backend currently in use.
func API() afero.Afero {
	return backend
}

// SetOsFs points the backend back at the real disk.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs swaps in a throwaway in-memory backend for tests.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}
