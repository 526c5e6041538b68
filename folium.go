// Package folium reconstructs the latent document structure of slide text —
// titles, subtitles, headings, paragraphs, and lists — and applies a design
// template to the result.
//
// The input is the raw per-slide text a presentation service hands back,
// with no structural metadata. The pipeline is a pure, deterministic
// function of that text and a validated template:
//
//	tmpl, err := store.Load("corporate")
//	if err != nil {
//	    // handle error
//	}
//	elements := folium.ProcessSlide(text, 0, tmpl, model.LayoutTypeTitle)
//
// Whole decks go through [ProcessDeck]; elements that already carry slide
// geometry go through [RefineAndStyle], which re-infers roles from position
// and emphasis before styling.
//
// The pipeline holds no state and performs no I/O, so slides may be
// processed concurrently by calling it from any number of goroutines.
// The lower-level segment, analyze, template, and design packages are also
// available for callers composing their own passes.
package folium

import (
	"strings"

	"github.com/tsawler/folium/analyze"
	"github.com/tsawler/folium/design"
	"github.com/tsawler/folium/model"
	"github.com/tsawler/folium/segment"
)

// ProcessSlide runs the full pipeline for one slide: structural
// segmentation, content analysis, and design application. slideIndex is the
// slide's 0-based position in the deck and gates subtitle detection to the
// first slide. Empty input yields no elements.
//
// The template must have been validated; see the template package.
func ProcessSlide(text string, slideIndex int, tmpl *model.Template, layoutType model.LayoutType) []model.StyledElement {
	components := segment.SplitSlideText(text, slideIndex)
	if len(components) == 0 {
		return nil
	}

	applicator := design.NewApplicator(tmpl)

	var styled []model.StyledElement
	for _, el := range ElementsFromComponents(components) {
		styled = append(styled, applicator.ApplyToElement(el, layoutType))
	}
	return styled
}

// ProcessDeck applies a template across a whole deck, producing one styled
// slide per input slide with the template's background color.
func ProcessDeck(deck *model.Deck, tmpl *model.Template) *model.StyledDeck {
	styled := &model.StyledDeck{
		Title:        deck.Title,
		TemplateName: tmpl.Metadata.Name,
	}

	applicator := design.NewApplicator(tmpl)
	for i, slide := range deck.Slides {
		components := segment.SplitSlideText(slide.Text, i)
		elements := ElementsFromComponents(components)
		styled.Slides = append(styled.Slides, applicator.ApplySlide(i, slide.LayoutType, elements))
	}

	return styled
}

// RefineAndStyle is the pipeline entry point for elements extracted with
// slide geometry: roles are re-inferred from position and content signals,
// then the template is applied.
func RefineAndStyle(elements []model.Element, tmpl *model.Template, layoutType model.LayoutType) []model.StyledElement {
	applicator := design.NewApplicator(tmpl)

	var styled []model.StyledElement
	for _, el := range analyze.RefineRoles(elements) {
		styled = append(styled, applicator.ApplyToElement(el, layoutType))
	}
	return styled
}

// ElementsFromComponents converts segmentation output into elements ready
// for design application. List components keep the item metadata the
// segmenter extracted; everything else is run through content analysis for
// emphasis, title-case, and list signals.
func ElementsFromComponents(components []model.Component) []model.Element {
	var elements []model.Element
	for _, comp := range components {
		el := model.Element{
			Content: comp.Content,
			Role:    comp.Role,
		}

		if comp.IsList {
			el.ContentType = comp.ContentType
			el.Items = comp.Items
			el.IsList = true
		} else {
			structure := analyze.AnalyzeText(comp.Content)
			el.ContentType = structure.ContentType
			el.Items = structure.Items
			el.IsList = structure.ContentType.IsList()
			el.HasEmphasis = structure.HasEmphasis
			el.IsTitleCase = structure.IsTitleCase
		}

		elements = append(elements, el)
	}
	return elements
}

// RenderComponents renders components as "[ROLE] content" blocks separated
// by blank lines. Useful for debugging segmentation output.
func RenderComponents(components []model.Component) string {
	rendered := make([]string, len(components))
	for i, comp := range components {
		rendered[i] = comp.String()
	}
	return strings.Join(rendered, "\n\n")
}
