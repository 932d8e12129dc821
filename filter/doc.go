// Package filter selects dataset rows matching a list of conditions.
//
// A Condition names a column, a comparison operator and a value. Applying a
// list of conditions keeps the rows satisfying every condition, in their
// original order, and never modifies the source dataset. Missing cells never
// satisfy a condition.
//
// Conditions can be built directly or parsed from compact strings like
// "age > 30" or "name equals alice", which is how the command line passes
// them in.
package filter
