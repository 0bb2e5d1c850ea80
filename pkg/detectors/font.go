package detectors

import (
	"github.com/dshills/slidediag/pkg/diagconsts"
	"github.com/dshills/slidediag/pkg/geometry"
	"github.com/dshills/slidediag/pkg/slide"
)

// FontTooSmall applies to every element whose IR type is not image or
// decoration. The minimum acceptable font size is resolved by scanning
// tuning.FontTiers; elements whose priority matches no tier are skipped.
// Fires when computed.fontSize < min.
func FontTooSmall(dom *slide.DOMDocument, ir *slide.IRDocument, tuning diagconsts.Tuning) []slide.Defect {
	var defects []slide.Defect
	for _, p := range pairElements(dom, ir) {
		if p.IR.Type == slide.TypeImage || p.IR.Type == slide.TypeDecoration {
			continue
		}
		min, ok := diagconsts.ResolveMinFont(tuning.FontTiers, p.IR.Priority)
		if !ok {
			continue
		}
		fontSize := p.DOM.Computed.FontSize
		if fontSize >= min {
			continue
		}

		severity := geometry.Round((min - fontSize) * 10)
		defects = append(defects, slide.Defect{
			Type:     slide.DefectFontTooSmall,
			Severity: severity,
			EID:      p.EID,
			Details: map[string]any{
				"font_size": fontSize,
				"min_px":    min,
				"priority":  p.IR.Priority,
			},
			Hint: &slide.Hint{
				Action:            slide.ActionSetFontSize,
				TargetEID:         p.EID,
				SuggestedFontSize: fptr(min),
			},
		})
	}
	return defects
}
