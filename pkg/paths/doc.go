// Package paths resolves the paths idot works with.
//
// It covers three concerns:
//
//   - Normalization: expanding a leading ~ or ~user and making a path
//     absolute and lexically clean without touching the filesystem.
//   - Diffing: computing the relative path between two absolute paths, used
//     for links stored in relative form.
//   - Queries: existence and symbolic-link checks that see a dangling link as
//     present, plus canonicalization that resolves symlinks only in the part
//     of a path that exists.
//
// Filesystem queries take a types.FS so the reconciler and its tests can swap
// the backend.
package paths
