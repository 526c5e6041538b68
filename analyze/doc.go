// Package analyze provides content analysis over already-extracted slide
// text: list detection, emphasis and title-case signals, role refinement by
// position, and canonical list formatting.
//
// # Relationship to package segment
//
// This package is a second, independent structural recognizer, not a wrapper
// around segment. Its list detection scans the whole block with multi-line
// patterns and requires at least two marker matches, whereas
// segment.ExtractList triggers on a single marker line. The divergence is
// load-bearing: call sites depend on each threshold independently, so the
// two recognizers must not be unified. Tests in both packages pin the
// one-item case on each side.
//
// # Role refinement
//
// [RefineRoles] re-infers component roles for a slide's elements using
// vertical position and content signals. It is a pure transform: the input
// slice is never mutated and a new slice is returned.
package analyze
