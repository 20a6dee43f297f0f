// Package style renders link reports and run outcomes as lines of text.
// Colors come from lipgloss styles bound to the output's renderer; Plain
// yields the same lines without escape sequences.
package style
