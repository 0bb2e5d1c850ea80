// Package detectors implements one pure function per defect family: given
// a DOM document and an IR document, each detector returns zero or more
// Defects. Detectors never read global state and never mutate their
// inputs; the engine (pkg/diagnostics) runs them in the fixed order
// listed in Engine.Diagnose.
package detectors
