// Package linker reconciles the links declared in a GroupConfig with the
// filesystem.
//
// Three operations share one classification of each link:
//
//   - Status reports every link as active or inactive and never writes.
//   - Create establishes missing or incorrect links, replacing what is in
//     the way only when the link's force flag allows it.
//   - Delete removes active links whose target lies inside the workspace.
//
// Links are processed one at a time in sorted order. A failure on one link
// is recorded on its outcome and logged; the remaining links still run.
// With Options.Simulate set, every decision is computed and logged, and no
// mutating call reaches the filesystem.
//
// The Linker does not use the global logger: callers inject a zerolog.Logger
// (use logging.Discard() for silence).
package linker
