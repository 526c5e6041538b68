package model

// LayoutType is the coarse classification of a slide, used to select layout
// geometry from a template
type LayoutType int

const (
	LayoutTypeContent LayoutType = iota
	LayoutTypeTitle
	LayoutTypeSection
)

// String returns a string representation of the layout type
func (lt LayoutType) String() string {
	switch lt {
	case LayoutTypeTitle:
		return "TITLE"
	case LayoutTypeSection:
		return "SECTION"
	default:
		return "CONTENT"
	}
}

// TemplateKey returns the template layouts key for this layout type. Only
// title slides select the title layout; all other layout types share the
// content layout.
func (lt LayoutType) TemplateKey() string {
	if lt == LayoutTypeTitle {
		return "title_slide"
	}
	return "content_slide"
}

// LayoutTypeForSlide returns the default layout type for a slide by position:
// the first slide of a deck is a title slide, the rest are content slides.
func LayoutTypeForSlide(index int) LayoutType {
	if index == 0 {
		return LayoutTypeTitle
	}
	return LayoutTypeContent
}

// Element is a component enriched with content analysis and an optional
// source position, ready for design application
type Element struct {
	// Content is the textual payload
	Content string

	// Role is the structural classification
	Role Role

	// ContentType distinguishes plain text from list variants
	ContentType ContentType

	// Items holds extracted list item texts when ContentType is a list
	Items []string

	// IsList is true iff ContentType is a list variant
	IsList bool

	// HasEmphasis is true when the whole content is upper-case emphasis
	HasEmphasis bool

	// IsTitleCase is true when at least half the words are capitalized
	IsTitleCase bool

	// Position is the element's source rectangle, when known. Elements
	// derived from raw text have a zero position; elements extracted with
	// geometry keep it for ordering and as a layout fallback.
	Position Rect
}

// StyledElement is the final output of the pipeline: an element with
// resolved typography, color, and layout position
type StyledElement struct {
	Content     string
	Role        Role
	FontFamily  string
	FontSize    float64
	FontWeight  string
	LineHeight  float64
	Color       string
	ContentType ContentType
	IsList      bool
	Items       []string

	// OriginalPosition is the element's pre-layout rectangle
	OriginalPosition Rect

	// StyledPosition is the rectangle resolved from the template layout
	StyledPosition Rect
}

// Slide holds one slide's raw text and index within the deck
type Slide struct {
	Index      int
	LayoutType LayoutType
	Text       string
}

// Deck is an ordered sequence of slides
type Deck struct {
	Title  string
	Slides []Slide
}

// NewDeck builds a deck from per-slide raw text, assigning each slide its
// default layout type by position.
func NewDeck(title string, slideTexts ...string) *Deck {
	deck := &Deck{Title: title}
	for i, text := range slideTexts {
		deck.Slides = append(deck.Slides, Slide{
			Index:      i,
			LayoutType: LayoutTypeForSlide(i),
			Text:       text,
		})
	}
	return deck
}

// StyledSlide is a fully designed slide specification
type StyledSlide struct {
	Index           int
	LayoutType      LayoutType
	BackgroundColor string
	Elements        []StyledElement
}

// StyledDeck is a fully designed deck specification
type StyledDeck struct {
	Title        string
	TemplateName string
	Slides       []StyledSlide
}
