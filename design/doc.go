// Package design applies a validated template to inferred slide structure,
// resolving typography, color, and layout position per element.
//
// The [Applicator] styles elements by role, with deterministic fallbacks:
// unknown roles get body typography and the text color, and a layout without
// a role-specific rectangle falls back to the body position, then to the
// element's own source position. List elements are re-rendered with
// canonical markers and get a slightly smaller font with wider line spacing.
//
// Layout resolution itself is a pure lookup, exposed as [ApplyLayout]; it
// performs no inference and never fails.
package design
