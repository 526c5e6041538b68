package design

import (
	"strings"

	"github.com/tsawler/folium/analyze"
	"github.com/tsawler/folium/model"
)

const (
	// listFontShrink is how much list text drops below the role's font
	// size, floored at minListFontSize. Titles keep their size.
	listFontShrink    = 2
	minListFontSize   = 14
	defaultListHeight = 1.6
)

// colorKeyForRole maps element roles to template color names. Roles not in
// the map, and colors a template does not define, resolve to "text".
var colorKeyForRole = map[model.Role]string{
	model.RoleTitle:    "primary",
	model.RoleSubtitle: "secondary",
	model.RoleHeading:  "primary",
	model.RoleBody:     "text",
	model.RoleFooter:   "text_light",
}

// Applicator applies one design template to inferred slide content. It
// assumes the template has already been validated; see the template package.
type Applicator struct {
	template *model.Template
}

// NewApplicator creates an applicator for a validated template.
func NewApplicator(tmpl *model.Template) *Applicator {
	return &Applicator{template: tmpl}
}

// ApplyToElement styles a single element: typography and color by role,
// list-specific formatting for list content, and layout position for the
// slide's layout type.
func (a *Applicator) ApplyToElement(el model.Element, slideLayout model.LayoutType) model.StyledElement {
	typography := a.typographyForRole(el.Role)
	color := a.colorForRole(el.Role)

	if el.ContentType.IsList() {
		return a.applyToList(el, typography, color, slideLayout)
	}

	styled := model.StyledElement{
		Content:          strings.TrimSpace(el.Content),
		Role:             el.Role,
		FontFamily:       typography.FontFamily,
		FontSize:         typography.FontSize,
		FontWeight:       typography.FontWeight,
		LineHeight:       typography.LineHeight,
		Color:            color,
		ContentType:      el.ContentType,
		OriginalPosition: el.Position,
	}

	ApplyLayout(&styled, a.template, slideLayout)
	return styled
}

// applyToList styles a list element: items are re-rendered with canonical
// markers, the font shrinks slightly (except for titles), and line spacing
// widens for readability.
func (a *Applicator) applyToList(el model.Element, typography model.Typography, color string, slideLayout model.LayoutType) model.StyledElement {
	fontSize := typography.FontSize
	if el.Role != model.RoleTitle {
		fontSize = typography.FontSize - listFontShrink
		if fontSize < minListFontSize {
			fontSize = minListFontSize
		}
	}

	lineHeight := typography.LineHeight
	if lineHeight == 0 {
		lineHeight = defaultListHeight
	}

	styled := model.StyledElement{
		Content:          analyze.FormatListItems(el.Items, el.ContentType),
		Role:             el.Role,
		FontFamily:       typography.FontFamily,
		FontSize:         fontSize,
		FontWeight:       typography.FontWeight,
		LineHeight:       lineHeight,
		Color:            color,
		ContentType:      el.ContentType,
		IsList:           true,
		Items:            el.Items,
		OriginalPosition: el.Position,
	}

	ApplyLayout(&styled, a.template, slideLayout)
	return styled
}

// ApplySlide styles every element of one slide and resolves the slide
// background color from the template.
func (a *Applicator) ApplySlide(index int, layoutType model.LayoutType, elements []model.Element) model.StyledSlide {
	slide := model.StyledSlide{
		Index:           index,
		LayoutType:      layoutType,
		BackgroundColor: a.template.Colors["background"],
	}

	for _, el := range elements {
		slide.Elements = append(slide.Elements, a.ApplyToElement(el, layoutType))
	}

	return slide
}

// typographyForRole returns the template typography for a role, falling
// back to body typography for roles the template does not define.
func (a *Applicator) typographyForRole(role model.Role) model.Typography {
	if typo, ok := a.template.Typography[role.Key()]; ok {
		return typo
	}
	return a.template.Typography["body"]
}

// colorForRole resolves the template color for a role, falling back to the
// text color when the role's mapped color is absent.
func (a *Applicator) colorForRole(role model.Role) string {
	key, ok := colorKeyForRole[role]
	if !ok {
		key = "text"
	}
	if color, ok := a.template.Colors[key]; ok {
		return color
	}
	return a.template.Colors["text"]
}
