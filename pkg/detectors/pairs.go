package detectors

import "github.com/dshills/slidediag/pkg/slide"

// pairedElement is one element with its DOM measurement and IR semantics
// joined by eid.
type pairedElement struct {
	EID string
	DOM slide.DOMElement
	IR  slide.IRElement
}

// pairElements joins dom.Elements (in DOM array order, so detector output
// order is deterministic) against ir by eid. Elements present in only one
// document are silently skipped.
func pairElements(dom *slide.DOMDocument, ir *slide.IRDocument) []pairedElement {
	out := make([]pairedElement, 0, len(dom.Elements))
	for _, d := range dom.Elements {
		irEl, ok := ir.ElementByEID(d.EID)
		if !ok {
			continue
		}
		out = append(out, pairedElement{EID: d.EID, DOM: d, IR: irEl})
	}
	return out
}
