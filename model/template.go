package model

// Metadata describes a design template
type Metadata struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Typography holds the font settings for one role
type Typography struct {
	FontFamily string  `json:"font_family" yaml:"font_family"`
	FontSize   float64 `json:"font_size" yaml:"font_size"`
	FontWeight string  `json:"font_weight" yaml:"font_weight"`
	LineHeight float64 `json:"line_height" yaml:"line_height"`
}

// Layout maps position keys (e.g. "title_position") to rectangles for one
// slide layout type
type Layout map[string]Rect

// Template is a design template: typography and colors keyed by role name,
// and layout geometry keyed by slide layout type. Templates are read-only
// once loaded; validation happens in the template package.
type Template struct {
	Metadata   Metadata              `json:"metadata" yaml:"metadata"`
	Typography map[string]Typography `json:"typography" yaml:"typography"`
	Colors     map[string]string     `json:"colors" yaml:"colors"`
	Layouts    map[string]Layout     `json:"layouts" yaml:"layouts"`
}
