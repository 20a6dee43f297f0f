// Package testutil provides utilities for testing idot components.
//
// Key components:
//   - Environment: an isolated workspace and home directory on the real
//     filesystem, with HOME and XDG_STATE_HOME pointed at it
//   - Snapshot: a flat description of a directory tree, used to prove that
//     simulated runs leave the filesystem untouched
package testutil
