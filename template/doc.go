// Package template loads, validates, and caches design templates.
//
// Templates live as JSON or YAML files in a "designs" subdirectory of the
// store's root. A [Store] caches validated templates by name and is owned by
// the caller; there is no global state, and the cache can be invalidated
// explicitly:
//
//	store, err := template.NewStore("templates")
//	tmpl, err := store.Load("corporate")
//	store.Invalidate("corporate")
//
// # Validation
//
// Every template must carry a metadata name, typography for at least the
// title, heading, and body roles, the primary, secondary, background, and
// text colors, and a layouts section. Validation failures surface eagerly at
// load time as a [*ValidationError] naming the missing key; a template is
// never silently patched. Downstream design application assumes a validated
// template and performs no per-element checks.
package template
