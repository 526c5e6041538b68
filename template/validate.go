package template

import (
	"fmt"

	"github.com/tsawler/folium/model"
)

// Required template contents. Roles beyond these (subtitle, footer) are
// optional; design application falls back to body typography and the text
// color for anything a template does not define.
var (
	requiredRoles  = []string{"title", "heading", "body"}
	requiredColors = []string{"primary", "secondary", "background", "text"}
)

// ValidationError reports a missing required section, role, or color in a
// design template
type ValidationError struct {
	// Section is the template section the failure belongs to
	Section string

	// Key is the missing key within the section, empty when the whole
	// section is absent
	Key string
}

func (e *ValidationError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("template: missing required section: %s", e.Section)
	}
	return fmt.Sprintf("template: missing %s: %s", e.Section, e.Key)
}

// Validate checks that a template carries every required section, typography
// role, and color. It returns a *ValidationError naming the first missing
// key, or nil when the template is complete.
func Validate(t *model.Template) error {
	if t.Metadata.Name == "" {
		return &ValidationError{Section: "metadata"}
	}
	if t.Typography == nil {
		return &ValidationError{Section: "typography"}
	}
	if t.Colors == nil {
		return &ValidationError{Section: "colors"}
	}
	if t.Layouts == nil {
		return &ValidationError{Section: "layouts"}
	}

	for _, role := range requiredRoles {
		if _, ok := t.Typography[role]; !ok {
			return &ValidationError{Section: "typography", Key: role}
		}
	}

	for _, color := range requiredColors {
		if _, ok := t.Colors[color]; !ok {
			return &ValidationError{Section: "color", Key: color}
		}
	}

	return nil
}
