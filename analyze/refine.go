package analyze

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/folium/model"
)

// Content length thresholds for role refinement, in runes.
const (
	maxTitleLen    = 100
	maxSubtitleLen = 150
	maxHeadingLen  = 100
	maxFooterLen   = 50
)

// RefineRoles re-infers roles for a slide's elements using position and
// content signals. Elements are ordered by ascending vertical position, then
// horizontal, before the rules apply; elements without geometry keep their
// original order.
//
// The input slice is not mutated. Each returned element carries the refined
// role along with the content analysis that produced it.
//
// Rules are checked top to bottom and the first match wins per element:
//
//  1. An existing TITLE or SUBTITLE is kept, unless its content is itself a
//     list, which demotes it to HEADING.
//  2. The topmost element becomes TITLE when short and emphasized or
//     title-cased.
//  3. The second element becomes SUBTITLE when short and at least two
//     elements exist.
//  4. Any short, emphasized element becomes HEADING.
//  5. List content stays BODY; the list metadata travels separately.
//  6. The last element becomes FOOTER when very short.
//  7. Everything else is BODY.
func RefineRoles(elements []model.Element) []model.Element {
	if len(elements) == 0 {
		return nil
	}

	refined := make([]model.Element, len(elements))
	copy(refined, elements)
	sort.SliceStable(refined, func(i, j int) bool {
		if refined[i].Position.Y != refined[j].Position.Y {
			return refined[i].Position.Y < refined[j].Position.Y
		}
		return refined[i].Position.X < refined[j].Position.X
	})

	for idx := range refined {
		structure := AnalyzeText(refined[idx].Content)
		refined[idx].Role = refineRole(refined[idx], structure, idx, len(refined))
		refined[idx].ContentType = structure.ContentType
		refined[idx].IsList = structure.ContentType.IsList()
		refined[idx].Items = structure.Items
		refined[idx].HasEmphasis = structure.HasEmphasis
		refined[idx].IsTitleCase = structure.IsTitleCase
	}

	return refined
}

// refineRole applies the refinement rules to one element. index is the
// element's position in the slide's top-to-bottom order.
func refineRole(el model.Element, structure TextStructure, index, total int) model.Role {
	length := utf8.RuneCountInString(strings.TrimSpace(el.Content))

	if el.Role == model.RoleTitle || el.Role == model.RoleSubtitle {
		if structure.ContentType.IsList() {
			return model.RoleHeading
		}
		return el.Role
	}

	if index == 0 && length < maxTitleLen &&
		(structure.HasEmphasis || structure.IsTitleCase) {
		return model.RoleTitle
	}

	if index == 1 && total >= 2 && length < maxSubtitleLen {
		return model.RoleSubtitle
	}

	if length < maxHeadingLen && structure.HasEmphasis {
		return model.RoleHeading
	}

	if structure.ContentType.IsList() {
		return model.RoleBody
	}

	if index == total-1 && length < maxFooterLen {
		return model.RoleFooter
	}

	return model.RoleBody
}
