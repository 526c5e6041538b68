package analyze

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/folium/model"
)

// minListMatches is the number of marker lines a block needs before this
// analyzer classifies it as a list. A single marker line stays plain here,
// unlike segment.ExtractList which triggers on one.
const minListMatches = 2

var (
	// Multi-line list patterns: one match per marker line in the block.
	numberedListPattern = regexp.MustCompile(`(?m)^\s*(\d+)[.):]\s+(.+)`)
	bulletListPattern   = regexp.MustCompile(`(?m)^\s*[•\-\*–—]\s+(.+)`)

	// allCapsPattern matches text whose letters are exclusively Latin or
	// Cyrillic upper case; digits, whitespace, and non-word symbols are
	// allowed alongside them.
	allCapsPattern = regexp.MustCompile(`^(?:[A-ZА-ЯЁ0-9\s]|[^\p{L}\p{N}_])+$`)
)

// TextStructure describes the inferred structure of one block of text
type TextStructure struct {
	// ContentType is the detected content type of the block
	ContentType model.ContentType

	// Items holds extracted list items for list content, or the block's
	// non-empty lines for plain content
	Items []string

	// HasEmphasis is true when the whole block is upper-case emphasis
	HasEmphasis bool

	// IsTitleCase is true when at least half the words are capitalized
	IsTitleCase bool
}

// AnalyzeText determines the structure of a single block of text. Empty or
// whitespace-only input yields a plain structure with no items.
func AnalyzeText(text string) TextStructure {
	if strings.TrimSpace(text) == "" {
		return TextStructure{ContentType: model.ContentTypePlain}
	}

	numbered := numberedListPattern.FindAllStringSubmatch(text, -1)
	bulleted := bulletListPattern.FindAllStringSubmatch(text, -1)

	var structure TextStructure
	switch {
	case len(numbered) >= minListMatches:
		structure.ContentType = model.ContentTypeNumberedList
		for _, m := range numbered {
			structure.Items = append(structure.Items, strings.TrimSpace(m[2]))
		}
	case len(bulleted) >= minListMatches:
		structure.ContentType = model.ContentTypeBulletList
		for _, m := range bulleted {
			structure.Items = append(structure.Items, strings.TrimSpace(m[1]))
		}
	default:
		structure.ContentType = model.ContentTypePlain
		for _, line := range strings.Split(text, "\n") {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				structure.Items = append(structure.Items, trimmed)
			}
		}
	}

	structure.HasEmphasis = allCapsPattern.MatchString(strings.TrimSpace(text))
	structure.IsTitleCase = isTitleCase(text)

	return structure
}

// isTitleCase reports whether at least half of the space-separated words
// start with an upper-case rune.
func isTitleCase(text string) bool {
	words := strings.Fields(text)
	if len(words) == 0 {
		return false
	}

	capitalized := 0
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		if unicode.IsUpper(r) {
			capitalized++
		}
	}
	return float64(capitalized)/float64(len(words)) >= 0.5
}

// FormatListItems renders items with canonical markers: "1. item" (1-based)
// for numbered lists, "• item" for bulleted lists. Any other content type
// joins the items unchanged. The rendering is idempotent: re-parsing the
// output and formatting it again yields the same text.
func FormatListItems(items []string, listType model.ContentType) string {
	switch listType {
	case model.ContentTypeNumberedList:
		rendered := make([]string, len(items))
		for i, item := range items {
			rendered[i] = fmt.Sprintf("%d. %s", i+1, item)
		}
		return strings.Join(rendered, "\n")
	case model.ContentTypeBulletList:
		rendered := make([]string, len(items))
		for i, item := range items {
			rendered[i] = "• " + item
		}
		return strings.Join(rendered, "\n")
	default:
		return strings.Join(items, "\n")
	}
}
