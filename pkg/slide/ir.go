package slide

// ElementType is the semantic role IR assigns to an element.
type ElementType string

const (
	TypeTitle      ElementType = "title"
	TypeText       ElementType = "text"
	TypeBullets    ElementType = "bullets"
	TypeImage      ElementType = "image"
	TypeDecoration ElementType = "decoration"
)

// TextTypes is the set of element types considered to carry body/title
// text, as opposed to purely visual content (image, decoration).
var TextTypes = map[ElementType]bool{
	TypeTitle:   true,
	TypeText:    true,
	TypeBullets: true,
}

// IsBody reports whether t is a "body" type for layout-topology purposes:
// text or bullets (but not title, image, or decoration).
func (t ElementType) IsBody() bool {
	return t == TypeText || t == TypeBullets
}

// IRLayout is the IR's own notion of an element's box and stacking order.
type IRLayout struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
	ZIndex int     `json:"zIndex"`
}

// IRStyle carries optional style hints; fields are pointers so "unset" is
// distinguishable from a zero value.
type IRStyle struct {
	FontSize   *float64 `json:"fontSize,omitempty"`
	LineHeight *float64 `json:"lineHeight,omitempty"`
}

// IRElement is one semantic element of the intermediate representation.
type IRElement struct {
	EID      string      `json:"eid"`
	Type     ElementType `json:"type"`
	Priority int         `json:"priority"`
	Content  string      `json:"content"`
	Layout   IRLayout    `json:"layout"`
	Style    IRStyle     `json:"style"`
	Group    string      `json:"group,omitempty"`
}

// IRDocument is the complete semantic description of a slide's elements.
type IRDocument struct {
	Slide    SlideSize   `json:"slide"`
	Elements []IRElement `json:"elements"`
}

// ElementByEID returns the element with the given eid, or false if absent.
func (d *IRDocument) ElementByEID(eid string) (IRElement, bool) {
	for _, e := range d.Elements {
		if e.EID == eid {
			return e, true
		}
	}
	return IRElement{}, false
}

// SameGroup reports whether a and b share a non-empty group tag.
func SameGroup(a, b IRElement) bool {
	return a.Group != "" && a.Group == b.Group
}
