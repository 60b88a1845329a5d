// ABOUTME: Batch asset generation package
// ABOUTME: Runs independent generation steps and reports each outcome by name
// Package batch runs a set of independent asset-generation steps.
//
// Each step runs in its own goroutine, bounded by a worker limit. A failing
// step never stops the others: its error is recorded in the report and the
// run continues until every step has been attempted. The output root is
// created up front and locked for the duration of the run so two batches
// cannot interleave writes.
package batch
