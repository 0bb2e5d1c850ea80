package detectors

import (
	"fmt"

	"github.com/dshills/slidediag/pkg/diagconsts"
	"github.com/dshills/slidediag/pkg/geometry"
	"github.com/dshills/slidediag/pkg/separation"
	"github.com/dshills/slidediag/pkg/slide"
)

// OverlapResult bundles the two defect/warning kinds that the overlap scan
// produces together, since both come from the same pairwise pass over
// elements.
type OverlapResult struct {
	Defects  []slide.Defect
	Warnings []slide.Warning
}

// Overlap scans every unordered pair of DOM elements and, for pairs whose
// safeBoxes overlap by at least tuning.MinOverlapAreaPx, emits either an
// "overlap" defect (same zIndex) or an "occlusion_suspected" warning
// (different zIndex). Decoration elements and same-group pairs are
// skipped entirely.
func Overlap(dom *slide.DOMDocument, ir *slide.IRDocument, tuning diagconsts.Tuning) OverlapResult {
	paired := pairElements(dom, ir)

	var result OverlapResult
	for i := 0; i < len(paired); i++ {
		for j := i + 1; j < len(paired); j++ {
			a, b := paired[i], paired[j]

			if a.IR.Type == slide.TypeDecoration || b.IR.Type == slide.TypeDecoration {
				continue
			}
			if slide.SameGroup(a.IR, b.IR) {
				continue
			}

			area := geometry.IntersectionArea(a.DOM.SafeBox, b.DOM.SafeBox)
			if area < tuning.MinOverlapAreaPx {
				continue
			}

			owner, other := pickOwner(a, b)

			if owner.DOM.ZIndex == other.DOM.ZIndex {
				result.Defects = append(result.Defects, buildOverlapDefect(owner, other, area, tuning))
			} else {
				top, bottom := owner, other
				if top.DOM.ZIndex < bottom.DOM.ZIndex {
					top, bottom = bottom, top
				}
				result.Warnings = append(result.Warnings, slide.Warning{
					Type:     slide.WarningOcclusionSuspected,
					OwnerEID: owner.EID,
					OtherEID: other.EID,
					Details: map[string]any{
						"top_eid":         top.EID,
						"overlap_area_px": geometry.Round(area),
					},
				})
			}
		}
	}
	return result
}

// pickOwner returns (owner, other) for an overlapping pair: owner is the
// lower-priority element, tie-broken to a (first lexicographically by
// position in the pair scan, i.e. a wins ties). Spec invariant 2.
func pickOwner(a, b pairedElement) (owner, other pairedElement) {
	if b.IR.Priority < a.IR.Priority {
		return b, a
	}
	return a, b
}

func buildOverlapDefect(owner, other pairedElement, area float64, tuning diagconsts.Tuning) slide.Defect {
	mult := 1.0
	boosted := slide.TextTypes[owner.IR.Type] || slide.TextTypes[other.IR.Type]
	if boosted {
		mult = tuning.TextOverlapSeverityMult
	}

	details := map[string]any{
		"overlap_area_px": geometry.Round(area),
	}
	if boosted {
		details["severity_note"] = fmt.Sprintf("text-type overlap, severity boosted x%v", mult)
	}

	return slide.Defect{
		Type:     slide.DefectOverlap,
		Severity: geometry.Round(area * mult),
		OwnerEID: owner.EID,
		OtherEID: other.EID,
		Details:  details,
		Hint:     overlapHint(owner, other, tuning),
	}
}

func overlapHint(owner, other pairedElement, tuning diagconsts.Tuning) *slide.Hint {
	opts := separation.Options(
		separation.Box{BBox: owner.DOM.BBox, SafeBox: owner.DOM.SafeBox},
		separation.Box{BBox: other.DOM.BBox, SafeBox: other.DOM.SafeBox},
		tuning.SafePadding,
	)
	cheapest, ok := separation.Cheapest(opts)
	if !ok {
		return nil
	}

	hint := &slide.Hint{
		Action:    slide.HintAction(cheapest.Direction),
		TargetEID: owner.EID,
	}
	if cheapest.TargetX != nil {
		hint.SuggestedX = cheapest.TargetX
	}
	if cheapest.TargetY != nil {
		hint.SuggestedY = cheapest.TargetY
	}
	return hint
}
