// Package geometry provides the axis-aligned rectangle primitives the rest
// of the diagnostics engine is built on: intersection area, inflation, and
// signed interval overlap on a single axis. Every function here is total
// over finite numeric input — no error returns, no partial results.
package geometry
