// Package filesystem provides filesystem implementations for idot.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem and an adapter over any afero.Fs, which is what
// tests use to run the reconciler against a base-path sandbox.
package filesystem
