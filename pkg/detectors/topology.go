package detectors

import (
	"github.com/dshills/slidediag/pkg/diagconsts"
	"github.com/dshills/slidediag/pkg/slide"
)

// LayoutTopology fires for every (title T, body B) pair where B's type is
// text or bullets and T's vertical center strictly exceeds B's — i.e. the
// title is visually below the body.
func LayoutTopology(dom *slide.DOMDocument, ir *slide.IRDocument, tuning diagconsts.Tuning) []slide.Defect {
	paired := pairElements(dom, ir)

	var titles, bodies []pairedElement
	for _, p := range paired {
		switch {
		case p.IR.Type == slide.TypeTitle:
			titles = append(titles, p)
		case p.IR.Type.IsBody():
			bodies = append(bodies, p)
		}
	}

	var defects []slide.Defect
	for _, t := range titles {
		for _, b := range bodies {
			titleCY := t.DOM.BBox.CenterY()
			bodyCY := b.DOM.BBox.CenterY()
			if titleCY <= bodyCY {
				continue
			}

			suggestedY := b.DOM.BBox.Y - t.DOM.BBox.H - tuning.SafePadding
			if suggestedY < 0 {
				suggestedY = 0
			}
			defects = append(defects, slide.Defect{
				Type:     slide.DefectLayoutTopology,
				Severity: tuning.TopologySeverity,
				EID:      t.EID,
				OtherEID: b.EID,
				Details: map[string]any{
					"title_eid": t.EID,
					"body_eid":  b.EID,
					"title_cy":  titleCY,
					"body_cy":   bodyCY,
				},
				Hint: &slide.Hint{
					Action:     slide.ActionMoveToTop,
					TargetEID:  t.EID,
					SuggestedY: fptr(suggestedY),
				},
			})
		}
	}
	return defects
}
