package design

import (
	"github.com/tsawler/folium/model"
)

// bodyPositionKey is the layout fallback for roles without their own
// rectangle.
const bodyPositionKey = "body_position"

// ApplyLayout resolves the element's slide rectangle from the template
// layout for the given slide layout type and stores it in StyledPosition.
//
// The lookup key is "<role>_position" within the title or content layout.
// A missing role key falls back to the body position; when the template
// provides nothing at all, the element keeps its original position. The
// lookup never fails.
func ApplyLayout(el *model.StyledElement, tmpl *model.Template, slideLayout model.LayoutType) {
	layout := tmpl.Layouts[slideLayout.TemplateKey()]

	positionKey := el.Role.Key() + "_position"
	if _, ok := layout[positionKey]; !ok {
		positionKey = bodyPositionKey
	}

	if rect, ok := layout[positionKey]; ok {
		el.StyledPosition = rect
		return
	}
	el.StyledPosition = el.OriginalPosition
}
