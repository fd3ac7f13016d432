// Package calc implements the calcpipe compute pipeline: the Transform and
// Filter stages, the Calculator accumulator, and the DataProcessor that wires
// them together over pkg/pipe.
//
// Highlights:
// - Transform: double the input
// - Filter: pass values strictly greater than 10, zero out the rest
// - Calculator: running total with a stored, deferred-apply multiplier
// - DataProcessor: per-value pipeline feeding one exclusively owned Calculator
//
// Multiply's deferred semantics are contractual: the factor handed to Multiply
// only takes effect on the next Multiply call, never the current one.
package calc
