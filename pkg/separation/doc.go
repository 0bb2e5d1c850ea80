// Package separation computes, for a pair of overlapping boxes, the four
// directional separation options (move up/down/left/right) that would
// clear the overlap, each with its pixel cost. The solve is closed-form:
// instead of iteratively nudging positions, it computes the minimal
// single-axis move directly from the two boxes' geometry.
package separation
