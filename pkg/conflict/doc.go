// Package conflict builds the overlap conflict graph from a diagnostics
// run's overlap defects: an undirected graph whose nodes are element eids
// and whose edges are overlapping pairs, decomposed into connected
// components by breadth-first traversal. For each component it also
// computes per-edge separation options and per-node free-space envelopes.
package conflict
