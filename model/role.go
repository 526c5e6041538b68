package model

// Role represents the structural classification of a slide component
type Role int

const (
	RoleBody Role = iota
	RoleTitle
	RoleSubtitle
	RoleHeading
	RoleFooter
)

// String returns the display form of the role, e.g. "TITLE"
func (r Role) String() string {
	switch r {
	case RoleTitle:
		return "TITLE"
	case RoleSubtitle:
		return "SUBTITLE"
	case RoleHeading:
		return "HEADING"
	case RoleFooter:
		return "FOOTER"
	default:
		return "BODY"
	}
}

// Key returns the lowercase role name used for template typography and
// color lookups, e.g. "title"
func (r Role) Key() string {
	switch r {
	case RoleTitle:
		return "title"
	case RoleSubtitle:
		return "subtitle"
	case RoleHeading:
		return "heading"
	case RoleFooter:
		return "footer"
	default:
		return "body"
	}
}

// ContentType represents the kind of content a component carries
type ContentType int

const (
	ContentTypePlain ContentType = iota
	ContentTypeNumberedList
	ContentTypeBulletList
	ContentTypeMixed
)

// String returns a string representation of the content type
func (ct ContentType) String() string {
	switch ct {
	case ContentTypeNumberedList:
		return "numbered_list"
	case ContentTypeBulletList:
		return "bullet_list"
	case ContentTypeMixed:
		return "mixed"
	default:
		return "plain"
	}
}

// IsList reports whether the content type is a list variant
func (ct ContentType) IsList() bool {
	return ct == ContentTypeNumberedList || ct == ContentTypeBulletList
}
