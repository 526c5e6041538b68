package segment

import (
	"fmt"
	"strings"

	"github.com/tsawler/folium/model"
)

// ExtractList reads a run of consecutive list-item lines starting at start
// and returns the extracted list component together with the number of lines
// consumed. It returns nil and zero when the line at start is not a list
// item, so callers can fall through to other rules without advancing.
//
// The list type is decided by the first line alone: a numbered marker makes
// the whole run a numbered list, anything else a bulleted one. Later lines
// are consumed as long as they carry any list marker, but their item text is
// captured with the first line's pattern, so a mid-list marker change keeps
// the run together while dropping the mismatched items' text.
func ExtractList(lines []string, start int) (*model.Component, int) {
	if !IsListItem(lines[start]) {
		return nil, 0
	}

	listType := model.ContentTypeBulletList
	if IsNumberedItem(lines[start]) {
		listType = model.ContentTypeNumberedList
	}

	var items []string
	i := start
	for i < len(lines) && IsListItem(lines[i]) {
		var m []string
		if listType == model.ContentTypeNumberedList {
			m = numberedItemText.FindStringSubmatch(lines[i])
		} else {
			m = bulletItemText.FindStringSubmatch(lines[i])
		}
		if m != nil {
			items = append(items, m[1])
		}
		i++
	}

	return &model.Component{
		Role:        model.RoleBody,
		Content:     renderList(items, listType),
		ContentType: listType,
		IsList:      true,
		Items:       items,
		LineIndex:   start,
	}, i - start
}

// renderList joins items with canonical markers: "1. item" for numbered
// lists (1-based, regardless of source numbering) and "• item" for bulleted.
func renderList(items []string, listType model.ContentType) string {
	rendered := make([]string, len(items))
	for i, item := range items {
		if listType == model.ContentTypeNumberedList {
			rendered[i] = fmt.Sprintf("%d. %s", i+1, item)
		} else {
			rendered[i] = "• " + item
		}
	}
	return strings.Join(rendered, "\n")
}
