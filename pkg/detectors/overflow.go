package detectors

import (
	"math"

	"github.com/dshills/slidediag/pkg/diagconsts"
	"github.com/dshills/slidediag/pkg/geometry"
	"github.com/dshills/slidediag/pkg/slide"
)

// ContentOverflow fires when an element's own bbox cannot contain its text
// contentBox, measured independently on both axes. One defect per element,
// carrying both overflow_x_px and overflow_y_px.
func ContentOverflow(dom *slide.DOMDocument, ir *slide.IRDocument, tuning diagconsts.Tuning) []slide.Defect {
	var defects []slide.Defect
	for _, p := range pairElements(dom, ir) {
		if p.DOM.ContentBox == nil {
			continue
		}
		cb := *p.DOM.ContentBox
		bb := p.DOM.BBox

		overflowX := cb.Right() - bb.Right()
		overflowY := cb.Bottom() - bb.Bottom()
		if overflowX < 0 {
			overflowX = 0
		}
		if overflowY < 0 {
			overflowY = 0
		}
		if overflowX == 0 && overflowY == 0 {
			continue
		}

		defects = append(defects, slide.Defect{
			Type:     slide.DefectContentOverflow,
			Severity: geometry.Round(overflowX + overflowY),
			EID:      p.EID,
			Details: map[string]any{
				"overflow_x_px": geometry.RoundClamped(overflowX),
				"overflow_y_px": geometry.RoundClamped(overflowY),
			},
		})
	}
	return defects
}

// ContentUnderflow reports a defect when a text-typed element's bbox is
// much taller than its contentBox — the container has more room than the
// text needs. It is emitted as a content_overflow-typed defect (tagged
// "kind": "content_underflow" in Details) carrying a shrink_container
// hint, rather than as its own defect type.
func ContentUnderflow(dom *slide.DOMDocument, ir *slide.IRDocument, tuning diagconsts.Tuning) []slide.Defect {
	var defects []slide.Defect
	for _, p := range pairElements(dom, ir) {
		if !p.IR.Type.IsBody() && p.IR.Type != slide.TypeTitle {
			continue
		}
		if p.DOM.ContentBox == nil {
			continue
		}
		cb := *p.DOM.ContentBox
		if cb.H <= 0 {
			continue
		}
		bb := p.DOM.BBox
		if bb.H <= cb.H*tuning.UnderflowRatio {
			continue
		}

		suggestedH := math.Ceil(cb.H + tuning.HintBufferPx)
		excess := bb.H - cb.H*tuning.UnderflowRatio
		defects = append(defects, slide.Defect{
			Type:     slide.DefectContentOverflow,
			Severity: geometry.RoundClamped(excess),
			EID:      p.EID,
			Details: map[string]any{
				"kind":          "content_underflow",
				"bbox_h":        bb.H,
				"content_box_h": cb.H,
			},
			Hint: &slide.Hint{
				Action:     slide.ActionShrinkContainer,
				TargetEID:  p.EID,
				SuggestedH: fptr(suggestedH),
			},
		})
	}
	return defects
}
