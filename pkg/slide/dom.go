package slide

import "github.com/dshills/slidediag/pkg/geometry"

// SlideSize is the width/height of a slide canvas, in pixels.
type SlideSize struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Computed holds the rendering-derived font metrics of an element.
type Computed struct {
	FontSize   float64 `json:"fontSize"`
	LineHeight float64 `json:"lineHeight"`
}

// DOMElement is one measured element of a rendered slide, keyed by its
// stable eid. SafeBox is always BBox inflated by the document's
// SafePadding; ContentBox is nil when the element has no rendered inline
// content.
type DOMElement struct {
	EID        string         `json:"eid"`
	BBox       geometry.Rect  `json:"bbox"`
	SafeBox    geometry.Rect  `json:"safeBox"`
	ContentBox *geometry.Rect `json:"contentBox"`
	ZIndex     int            `json:"zIndex"`
	Computed   Computed       `json:"computed"`
}

// DOMDocument is the complete set of measurements for one rendered slide.
type DOMDocument struct {
	Slide       SlideSize    `json:"slide"`
	SafePadding float64      `json:"safe_padding"`
	Elements    []DOMElement `json:"elements"`
}

// ElementByEID returns the element with the given eid, or false if absent.
func (d *DOMDocument) ElementByEID(eid string) (DOMElement, bool) {
	for _, e := range d.Elements {
		if e.EID == eid {
			return e, true
		}
	}
	return DOMElement{}, false
}
