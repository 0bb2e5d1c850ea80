// Package diagconsts holds the diagnostics engine's tunable constants:
// slide size, safe padding, detector thresholds, and the font-per-priority
// tier table. All fields are read-only configuration, loaded once at
// startup and optionally overlaid from a YAML file.
package diagconsts
