// Package model provides the intermediate representation (IR) for slide
// content structure.
//
// This package defines the user-facing data structures produced by structural
// inference and consumed by design application. All segmentation and analysis
// operations ultimately produce these types, making them the primary API for
// consuming inferred structure.
//
// # Components
//
// The [Component] type is the atomic structural unit: a role-tagged span of
// slide text. Components are produced by the segment package in source order
// and carry list metadata when the span is a numbered or bulleted list.
//
// # Elements
//
// An [Element] is a component enriched with content analysis and an optional
// position, ready for design application. A [StyledElement] is the final
// output: an element with resolved typography, color, and layout position.
//
// # Roles and content types
//
// [Role] classifies a component structurally (TITLE, SUBTITLE, HEADING, BODY,
// FOOTER). [ContentType] distinguishes plain text from numbered and bulleted
// lists.
//
// # Templates
//
// The [Template] type describes a design template: typography and colors keyed
// by role name, and layout rectangles keyed by slide layout type and role
// position. Templates are validated by the template package before use.
package model
