package export

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"

	"github.com/dshills/slidediag/pkg/slide"
)

// SVGOptions configures the debug SVG rendering.
type SVGOptions struct {
	ShowSafeBoxes  bool   // Outline each element's inflated safeBox
	ShowLabels     bool   // Label each element with its eid
	ShowConflicts  bool   // Outline conflict-component membership
	Title          string // Optional title banner
}

// DefaultSVGOptions returns sensible defaults for RenderSVG.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		ShowSafeBoxes: true,
		ShowLabels:    true,
		ShowConflicts: true,
		Title:         "Slide Diagnostics",
	}
}

// defectColor maps a defect type to its highlight color.
func defectColor(t slide.DefectType) string {
	switch t {
	case slide.DefectLayoutTopology:
		return "#f56565"
	case slide.DefectFontTooSmall:
		return "#ed8936"
	case slide.DefectContentOverflow:
		return "#ecc94b"
	case slide.DefectOutOfBounds:
		return "#9f7aea"
	case slide.DefectOverlap:
		return "#fc8181"
	default:
		return "#cbd5e0"
	}
}

// RenderSVG draws the slide canvas: every element's bbox (and optionally
// safeBox), colored by the worst defect that names it, with dashed bbox
// borders for conflict-component members. Warnings are not drawn; the
// legend only reports their count.
func RenderSVG(dom *slide.DOMDocument, diag *slide.DiagDocument, opts SVGOptions) []byte {
	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	w, h := int(dom.Slide.W), int(dom.Slide.H)
	canvas.Start(w, h)
	canvas.Rect(0, 0, w, h, "fill:#1a1a2e")

	if opts.Title != "" {
		canvas.Text(w/2, 20, opts.Title, "text-anchor:middle;font-size:16px;fill:#e2e8f0;font-family:sans-serif")
	}

	defectColorByEID := indexDefectColors(diag.Defects)
	conflictMembers := indexConflictMembers(diag.Summary.ConflictGraph)

	for _, el := range dom.Elements {
		strokeColor := "#4a5568"
		strokeWidth := 1
		if c, ok := defectColorByEID[el.EID]; ok {
			strokeColor = c
			strokeWidth = 3
		}

		style := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%d", strokeColor, strokeWidth)
		if conflictMembers[el.EID] && opts.ShowConflicts {
			style += ";stroke-dasharray:6,3"
		}
		canvas.Rect(int(el.BBox.X), int(el.BBox.Y), int(el.BBox.W), int(el.BBox.H), style)

		if opts.ShowSafeBoxes {
			canvas.Rect(int(el.SafeBox.X), int(el.SafeBox.Y), int(el.SafeBox.W), int(el.SafeBox.H),
				"fill:none;stroke:#718096;stroke-width:1;stroke-dasharray:2,2")
		}
		if opts.ShowLabels {
			canvas.Text(int(el.BBox.X)+4, int(el.BBox.Y)+14, el.EID, "font-size:11px;fill:#cbd5e0;font-family:sans-serif")
		}
	}

	drawLegend(canvas, diag)
	canvas.End()
	return buf.Bytes()
}

// indexDefectColors returns, for every eid named by a defect (via EID,
// OwnerEID, or OtherEID), the highlight color of the most severe defect
// naming it.
func indexDefectColors(defects []slide.Defect) map[string]string {
	bestSeverity := make(map[string]int)
	colors := make(map[string]string)

	consider := func(eid string, d slide.Defect) {
		if eid == "" {
			return
		}
		if d.Severity >= bestSeverity[eid] {
			bestSeverity[eid] = d.Severity
			colors[eid] = defectColor(d.Type)
		}
	}
	for _, d := range defects {
		consider(d.EID, d)
		consider(d.OwnerEID, d)
		consider(d.OtherEID, d)
	}
	return colors
}

func indexConflictMembers(components []slide.ConflictComponent) map[string]bool {
	members := make(map[string]bool)
	for _, c := range components {
		for _, eid := range c.EIDs {
			members[eid] = true
		}
	}
	return members
}

func drawLegend(canvas *svg.SVG, diag *slide.DiagDocument) {
	x, y := 10, 40
	canvas.Text(x, y, fmt.Sprintf("defects: %d  severity: %d  warnings: %d",
		diag.Summary.DefectCount, diag.Summary.TotalSeverity, diag.Summary.WarningCount),
		"font-size:11px;fill:#a0aec0;font-family:sans-serif")
}
