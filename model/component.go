package model

// Component is the atomic structural unit produced by segmentation: a
// role-tagged span of slide text
type Component struct {
	// Role is the structural classification of this component
	Role Role

	// Content is the textual payload. For list components this is the
	// reformatted text with canonical markers, not the raw input.
	Content string

	// ContentType distinguishes plain text from list variants
	ContentType ContentType

	// Items holds the extracted item texts when ContentType is a list
	// variant; empty otherwise
	Items []string

	// IsList is true iff ContentType is a list variant
	IsList bool

	// Bold indicates the component should be rendered bold (set for
	// colon-terminated headings)
	Bold bool

	// LineIndex is the offset of the component's first source line within
	// the slide. Used only for ordering and debugging.
	LineIndex int
}

// String returns a debug rendering of the component as "[ROLE] content"
func (c Component) String() string {
	return "[" + c.Role.String() + "] " + c.Content
}
