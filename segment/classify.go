package segment

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Marker patterns shared by the classifier and the list extractor. The
// numbered form accepts ".", ")" and ":" as separators; the bullet form
// accepts the common bullet glyphs and dashes.
var (
	numberedMarker = regexp.MustCompile(`^\s*(\d+)[.):]\s+`)
	bulletMarker   = regexp.MustCompile(`^\s*[•\-\*–—]\s+`)

	numberedItemText = regexp.MustCompile(`^\s*\d+[.):]\s+(.+)`)
	bulletItemText   = regexp.MustCompile(`^\s*[•\-\*–—]\s+(.+)`)
)

// IsListItem reports whether the line starts with a numbered marker
// ("1.", "2)", "3:") or a bullet glyph.
func IsListItem(line string) bool {
	return numberedMarker.MatchString(line) || bulletMarker.MatchString(line)
}

// IsNumberedItem reports whether the line starts with a numbered marker.
func IsNumberedItem(line string) bool {
	return numberedMarker.MatchString(line)
}

// IsHeading reports whether the line looks like a heading: short and either
// fully upper-case, colon-terminated, or mostly capitalized.
func IsHeading(line string) bool {
	length := utf8.RuneCountInString(line)
	if length > 80 {
		return false
	}

	if isUpper(line) && length > 3 {
		return true
	}

	if strings.HasSuffix(line, ":") {
		return true
	}

	words := strings.Fields(line)
	if len(words) > 0 {
		capitalized := 0
		for _, w := range words {
			if firstRuneUpper(w) {
				capitalized++
			}
		}
		if float64(capitalized)/float64(len(words)) >= 0.7 && length < 60 {
			return true
		}
	}

	return false
}

// CountWords returns the number of whitespace-delimited words in the line.
func CountWords(line string) int {
	return len(strings.Fields(line))
}

// isUpper reports whether the string contains at least one cased rune and
// no lower-case runes.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// firstRuneUpper reports whether the word starts with an upper-case rune.
func firstRuneUpper(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsUpper(r)
}
