package detectors

import (
	"github.com/dshills/slidediag/pkg/diagconsts"
	"github.com/dshills/slidediag/pkg/geometry"
	"github.com/dshills/slidediag/pkg/slide"
)

// OutOfBounds fires once per edge that an element's safeBox extends past
// the slide boundary by more than tuning.OOBEpsPx.
func OutOfBounds(dom *slide.DOMDocument, ir *slide.IRDocument, tuning diagconsts.Tuning) []slide.Defect {
	var defects []slide.Defect
	for _, p := range pairElements(dom, ir) {
		sb := p.DOM.SafeBox
		bb := p.DOM.BBox

		checks := []struct {
			edge      string
			overshoot float64
			hint      func() *slide.Hint
		}{
			{"left", -sb.X, func() *slide.Hint {
				return &slide.Hint{Action: slide.ActionSetPosition, TargetEID: p.EID, SuggestedX: fptr(0)}
			}},
			{"top", -sb.Y, func() *slide.Hint {
				return &slide.Hint{Action: slide.ActionSetPosition, TargetEID: p.EID, SuggestedY: fptr(0)}
			}},
			{"right", sb.Right() - tuning.SlideW, func() *slide.Hint {
				return &slide.Hint{Action: slide.ActionSetPosition, TargetEID: p.EID, SuggestedX: fptr(tuning.SlideW - bb.W)}
			}},
			{"bottom", sb.Bottom() - tuning.SlideH, func() *slide.Hint {
				return &slide.Hint{Action: slide.ActionSetPosition, TargetEID: p.EID, SuggestedY: fptr(tuning.SlideH - bb.H)}
			}},
		}

		for _, c := range checks {
			if c.overshoot <= tuning.OOBEpsPx {
				continue
			}
			defects = append(defects, slide.Defect{
				Type:     slide.DefectOutOfBounds,
				Severity: geometry.RoundClamped(c.overshoot),
				EID:      p.EID,
				Details: map[string]any{
					"edge":   c.edge,
					"by_px":  geometry.Round(c.overshoot),
				},
				Hint: c.hint(),
			})
		}
	}
	return defects
}
