// Package hints validates and budget-annotates the repair hints attached
// to defects by the detectors: it normalises each hint (rounding numeric
// suggestions, rejecting a missing action) and, for high-priority
// elements, attaches an advisory position/size budget the external
// planner is expected to respect.
package hints
