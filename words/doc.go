// Package words provides the small set of string utilities shared by the
// gold and lstar observation tables: prefix/suffix enumeration, closure
// predicates, the (length, lexicographic) ordering used everywhere
// access strings and experiment suffixes need a deterministic order, and
// the plain lexicographic minimum (MinLex) used by Gold's default
// blue/red choice functions.
package words
