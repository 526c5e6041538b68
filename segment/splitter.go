package segment

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/folium/model"
)

const (
	// maxTitleWords is the largest word count a first line may have and
	// still become the slide title
	maxTitleWords = 6

	// maxSubtitleLen is the largest rune count a second line may have and
	// still become the subtitle of the deck's first slide
	maxSubtitleLen = 150
)

// SplitSlideText splits raw slide text into an ordered sequence of
// role-tagged components. slideIndex is the slide's 0-based position within
// the deck; it only gates subtitle detection, which applies to the first
// slide alone.
//
// Empty and whitespace-only input yields an empty sequence, not an error.
// The input is NFC-normalized before classification so decomposed Unicode
// from the slide service classifies the same as precomposed text.
func SplitSlideText(text string, slideIndex int) []model.Component {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lines := splitLines(norm.NFC.String(text))
	if len(lines) == 0 {
		return nil
	}

	var components []model.Component
	i := 0

	// Title: a short first line on any slide. Colon-terminated and
	// list-marker lines are structural, not titular, and fall through to
	// the formatting loop however short they are.
	if CountWords(lines[0]) <= maxTitleWords &&
		!strings.HasSuffix(lines[0], ":") && !IsListItem(lines[0]) {
		components = append(components, model.Component{
			Role:      model.RoleTitle,
			Content:   lines[0],
			LineIndex: 0,
		})
		i = 1

		// Subtitle: a short second line, first slide only.
		if slideIndex == 0 && len(lines) > 1 &&
			utf8.RuneCountInString(lines[1]) < maxSubtitleLen &&
			CountWords(lines[1]) <= maxTitleWords {
			components = append(components, model.Component{
				Role:      model.RoleSubtitle,
				Content:   lines[1],
				LineIndex: 1,
			})
			i = 2
		}
	}

	if i < len(lines) {
		components = append(components, formatWithLists(lines[i:], i)...)
	}

	return components
}

// splitLines breaks text into trimmed, non-empty lines.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

// stripMarker removes a leading list marker from a line, returning the line
// unchanged when it carries none.
func stripMarker(line string) string {
	if m := numberedItemText.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	if m := bulletItemText.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return line
}

// formatWithLists segments the remaining lines of a slide. offset is the
// position of lines[0] within the full slide, carried into LineIndex so
// component provenance stays globally consistent.
func formatWithLists(lines []string, offset int) []model.Component {
	var components []model.Component
	i := 0

	for i < len(lines) {
		line := lines[i]

		// Colon-terminated line: a bold heading whose following lines
		// form a bulleted list, up to the next colon heading. Collected
		// lines always render with bullet markers even when their own
		// markers are numeric; only ExtractList below preserves the
		// numbered/bulleted distinction.
		if strings.HasSuffix(line, ":") {
			components = append(components, model.Component{
				Role:      model.RoleHeading,
				Content:   line,
				Bold:      true,
				LineIndex: offset + i,
			})
			i++

			var items []string
			for i < len(lines) {
				if strings.HasSuffix(lines[i], ":") {
					break
				}
				items = append(items, stripMarker(lines[i]))
				i++
			}

			if len(items) > 0 {
				components = append(components, model.Component{
					Role:        model.RoleBody,
					Content:     renderList(items, model.ContentTypeBulletList),
					ContentType: model.ContentTypeBulletList,
					IsList:      true,
					Items:       items,
					LineIndex:   offset + i - len(items),
				})
			}
			continue
		}

		if list, consumed := ExtractList(lines, i); list != nil {
			list.LineIndex = offset + i
			components = append(components, *list)
			i += consumed
			continue
		}

		if IsHeading(line) {
			components = append(components, model.Component{
				Role:      model.RoleHeading,
				Content:   line,
				LineIndex: offset + i,
			})
			i++
			continue
		}

		// Paragraph: absorb following lines until the next heading or
		// list marker.
		start := i
		paragraph := []string{line}
		i++
		for i < len(lines) {
			next := lines[i]
			if strings.HasSuffix(next, ":") || IsHeading(next) || IsListItem(next) {
				break
			}
			paragraph = append(paragraph, next)
			i++
		}

		components = append(components, model.Component{
			Role:      model.RoleBody,
			Content:   strings.Join(paragraph, "\n"),
			LineIndex: offset + start,
		})
	}

	return components
}
