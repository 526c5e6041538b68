// Package segment provides structural segmentation of raw slide text.
//
// Slide text arrives as a flat block of lines with no structural metadata.
// This package reconstructs the latent structure in a single deterministic
// pass, producing an ordered sequence of role-tagged components:
//
//	components := segment.SplitSlideText(text, slideIndex)
//
// # Segmentation rules
//
// The first line becomes a TITLE when it has at most six words and is
// neither colon-terminated nor a list item; a seven-word first line is
// treated as ordinary content. On the deck's first slide only, a short
// second line following a title becomes the SUBTITLE.
//
// Remaining lines are segmented by fixed rule priority:
//
//   - A line ending with ":" is a bold HEADING; the lines that follow it,
//     up to the next colon heading, are collected into a bulleted list with
//     any source markers stripped.
//   - A run of list-marker lines becomes a numbered or bulleted list,
//     extracted by [ExtractList].
//   - A short, capitalized, or colon-terminated line is a HEADING.
//   - Anything else starts a paragraph that absorbs following lines until
//     the next heading or list.
//
// # Line predicates
//
// [IsListItem], [IsHeading], and [CountWords] are the stateless predicates
// the segmenter is built from. They are exported because the analyze package
// and callers composing their own passes rely on the same definitions.
//
// Two deliberate quirks are part of the contract and pinned by tests: the
// colon-heading path renders collected items with bullet markers even when
// the source lines are numbered, and [ExtractList] locks the list type from
// the first line, so a mid-list marker change can drop item text.
package segment
