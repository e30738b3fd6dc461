// Package skim implements the per-event candidate-selection and
// output-table production pipeline for femtoscopic correlation analysis.
//
// # Reading Guide
//
// Start with these three files to understand the core:
//   - selection.go / container.go: the bit-packed multi-variant cut encoding
//   - producer.go: the per-event pipeline (event gate, track scan, V0 scan,
//     pair build, table assembly)
//   - table.go: the heterogeneous output table and its cross-reference rules
//
// # Architecture
//
// A Producer is configured once from a Bundle (bundle.go) and then fed one
// collision at a time. Every selection criterion carries an ordered list of
// alternative thresholds; instead of a pass/fail bool, candidates receive a
// packed bitmask with one bit per configured variant, so downstream analysis
// evaluates all systematic cut variations from a single pass over the data.
//
// Selections are pure: a candidate's containers are a function of its
// measured quantities and the configuration, never of processing order. The
// only cross-event state is the run-keyed magnetic-field cache (bfield.go)
// and the QA histogram registry (qa.go), both single-writer.
package skim
