// Package types holds the data shared between the reconciler, the command
// layer and the renderers: the filesystem interface and the per-link
// report and outcome values.
package types
