// Package export serializes a DiagDocument to JSON and renders a debug SVG
// view of the slide: every element's bbox/safeBox, defect highlight
// colors, and conflict-component outlines. Warnings appear only as a count
// in the legend.
package export
