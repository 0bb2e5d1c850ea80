package diagnostics

import (
	"testing"

	"github.com/dshills/slidediag/pkg/geometry"
	"github.com/dshills/slidediag/pkg/slide"
)

// elOpts bundles the fields test helpers need to build one paired DOM+IR
// element; zero-valued fields take sensible defaults.
type elOpts struct {
	eid      string
	bbox     geometry.Rect
	typ      slide.ElementType
	priority int
	zIndex   int
	fontSize float64
	group    string
}

func buildDocs(els ...elOpts) (*slide.DOMDocument, *slide.IRDocument) {
	dom := &slide.DOMDocument{Slide: slide.SlideSize{W: 1280, H: 720}, SafePadding: 8}
	ir := &slide.IRDocument{Slide: slide.SlideSize{W: 1280, H: 720}}

	for _, e := range els {
		fontSize := e.fontSize
		if fontSize == 0 {
			fontSize = 20
		}
		dom.Elements = append(dom.Elements, slide.DOMElement{
			EID:     e.eid,
			BBox:    e.bbox,
			SafeBox: geometry.InflateRect(e.bbox, 8),
			ZIndex:  e.zIndex,
			Computed: slide.Computed{FontSize: fontSize, LineHeight: 1.2},
		})
		ir.Elements = append(ir.Elements, slide.IRElement{
			EID:      e.eid,
			Type:     e.typ,
			Priority: e.priority,
			Group:    e.group,
			Layout:   slide.IRLayout{X: e.bbox.X, Y: e.bbox.Y, W: e.bbox.W, H: e.bbox.H, ZIndex: e.zIndex},
		})
	}
	return dom, ir
}

// Scenario 1: clean slide.
func TestScenarioCleanSlide(t *testing.T) {
	dom, ir := buildDocs(
		elOpts{eid: "title", bbox: geometry.Rect{X: 100, Y: 50, W: 800, H: 80}, typ: slide.TypeTitle, priority: 100, fontSize: 44},
		elOpts{eid: "text", bbox: geometry.Rect{X: 100, Y: 200, W: 800, H: 200}, typ: slide.TypeText, priority: 60, fontSize: 20},
	)
	diag := New().Diagnose(dom, ir)

	if diag.Summary.DefectCount != 0 {
		t.Errorf("DefectCount = %d, want 0: %+v", diag.Summary.DefectCount, diag.Defects)
	}
	if diag.Summary.WarningCount != 0 {
		t.Errorf("WarningCount = %d, want 0", diag.Summary.WarningCount)
	}
	if diag.Summary.ConflictGraph != nil {
		t.Errorf("ConflictGraph = %+v, want nil", diag.Summary.ConflictGraph)
	}
}

// Scenario 2: title below body.
func TestScenarioTitleBelowBody(t *testing.T) {
	dom, ir := buildDocs(
		elOpts{eid: "title", bbox: geometry.Rect{X: 100, Y: 400, W: 800, H: 80}, typ: slide.TypeTitle, priority: 100, fontSize: 44},
		elOpts{eid: "text", bbox: geometry.Rect{X: 100, Y: 100, W: 800, H: 200}, typ: slide.TypeText, priority: 60, fontSize: 20},
	)
	diag := New().Diagnose(dom, ir)

	var found *slide.Defect
	for i := range diag.Defects {
		if diag.Defects[i].Type == slide.DefectLayoutTopology {
			found = &diag.Defects[i]
		}
	}
	if found == nil {
		t.Fatalf("expected a layout_topology defect, got %+v", diag.Defects)
	}
	if found.Severity != 1000 {
		t.Errorf("Severity = %d, want 1000", found.Severity)
	}
	if found.Hint == nil || found.Hint.Action != slide.ActionMoveToTop {
		t.Fatalf("Hint = %+v, want move_to_top", found.Hint)
	}
	wantY := 100.0 - 80.0 - 8.0
	if *found.Hint.SuggestedY != wantY {
		t.Errorf("SuggestedY = %v, want %v", *found.Hint.SuggestedY, wantY)
	}
}

// Scenario 3: right out-of-bounds.
func TestScenarioRightOOB(t *testing.T) {
	dom, ir := buildDocs(
		elOpts{eid: "img", bbox: geometry.Rect{X: 1200, Y: 0, W: 200, H: 100}, typ: slide.TypeImage, priority: 50},
	)
	diag := New().Diagnose(dom, ir)

	var found *slide.Defect
	for i := range diag.Defects {
		if diag.Defects[i].Type == slide.DefectOutOfBounds {
			found = &diag.Defects[i]
		}
	}
	if found == nil {
		t.Fatalf("expected an out_of_bounds defect, got %+v", diag.Defects)
	}
	if found.Details["edge"] != "right" {
		t.Errorf("edge = %v, want right", found.Details["edge"])
	}
	if by, _ := found.Details["by_px"].(int); by != 128 {
		t.Errorf("by_px = %v, want 128", found.Details["by_px"])
	}
	if found.Hint == nil || *found.Hint.SuggestedX != 1080 {
		t.Errorf("SuggestedX = %+v, want 1080", found.Hint)
	}
}

// Scenario 4: overlap, same z-index.
func TestScenarioOverlapSameZ(t *testing.T) {
	dom, ir := buildDocs(
		elOpts{eid: "a", bbox: geometry.Rect{X: 100, Y: 100, W: 400, H: 200}, typ: slide.TypeText, priority: 60, zIndex: 10},
		elOpts{eid: "b", bbox: geometry.Rect{X: 300, Y: 100, W: 400, H: 200}, typ: slide.TypeText, priority: 100, zIndex: 10},
	)
	diag := New().Diagnose(dom, ir)

	var found *slide.Defect
	for i := range diag.Defects {
		if diag.Defects[i].Type == slide.DefectOverlap {
			found = &diag.Defects[i]
		}
	}
	if found == nil {
		t.Fatalf("expected an overlap defect, got %+v", diag.Defects)
	}
	if found.OwnerEID != "a" {
		t.Errorf("OwnerEID = %q, want a (lower priority)", found.OwnerEID)
	}
	if found.Hint == nil || len(found.Hint.Action) == 0 {
		t.Error("expected a populated hint direction")
	}

	if diag.Summary.ConflictGraph == nil || len(diag.Summary.ConflictGraph) != 1 {
		t.Fatalf("ConflictGraph = %+v, want one component", diag.Summary.ConflictGraph)
	}
	comp := diag.Summary.ConflictGraph[0]
	if len(comp.EIDs) != 2 || len(comp.Edges) != 1 {
		t.Errorf("component = %+v, want 2 eids and 1 edge", comp)
	}
	seps := comp.Edges[0].Separations
	for i := 1; i < len(seps); i++ {
		if seps[i-1].CostPx > seps[i].CostPx {
			t.Errorf("separations not sorted ascending by cost: %+v", seps)
		}
	}
}

// Scenario 5: occlusion warning (differing zIndex).
func TestScenarioOcclusionWarning(t *testing.T) {
	dom, ir := buildDocs(
		elOpts{eid: "a", bbox: geometry.Rect{X: 100, Y: 100, W: 400, H: 200}, typ: slide.TypeText, priority: 60, zIndex: 10},
		elOpts{eid: "b", bbox: geometry.Rect{X: 300, Y: 100, W: 400, H: 200}, typ: slide.TypeText, priority: 100, zIndex: 20},
	)
	diag := New().Diagnose(dom, ir)

	overlapCount := 0
	for _, d := range diag.Defects {
		if d.Type == slide.DefectOverlap {
			overlapCount++
		}
	}
	if overlapCount != 0 {
		t.Errorf("overlap defect count = %d, want 0", overlapCount)
	}
	if len(diag.Warnings) != 1 {
		t.Fatalf("warnings = %+v, want 1", diag.Warnings)
	}
	w := diag.Warnings[0]
	if w.Type != slide.WarningOcclusionSuspected {
		t.Errorf("warning type = %q", w.Type)
	}
	if w.Details["top_eid"] != "b" {
		t.Errorf("top_eid = %v, want b (higher zIndex)", w.Details["top_eid"])
	}
	areaPx, _ := w.Details["overlap_area_px"].(int)
	if diag.Summary.WarningSeverity != areaPx {
		t.Errorf("WarningSeverity = %d, want %d", diag.Summary.WarningSeverity, areaPx)
	}
}

// Scenario 6: font too small.
func TestScenarioFontTooSmall(t *testing.T) {
	dom, ir := buildDocs(
		elOpts{eid: "t", bbox: geometry.Rect{X: 0, Y: 0, W: 400, H: 100}, typ: slide.TypeText, priority: 60, fontSize: 12},
	)
	diag := New().Diagnose(dom, ir)

	var found *slide.Defect
	for i := range diag.Defects {
		if diag.Defects[i].Type == slide.DefectFontTooSmall {
			found = &diag.Defects[i]
		}
	}
	if found == nil {
		t.Fatalf("expected a font_too_small defect, got %+v", diag.Defects)
	}
	if found.Severity != 40 {
		t.Errorf("Severity = %d, want 40", found.Severity)
	}
	if found.Hint == nil || *found.Hint.SuggestedFontSize != 16 {
		t.Errorf("SuggestedFontSize = %+v, want 16", found.Hint)
	}
}

// Out-of-bounds boundary: exactly at OOB_EPS_PX must not fire.
func TestOutOfBoundsBoundaryDoesNotFire(t *testing.T) {
	// safeBox right edge = bbox.Right() + 8; overshoot = safeBox.Right() - 1280.
	// Want overshoot == 1 (== OOBEpsPx) exactly -> should NOT fire. Y is set
	// to 8 so the safeBox's top edge sits at 0, keeping the top/bottom
	// overshoots at 0 and isolating the right-edge boundary under test.
	dom, ir := buildDocs(
		elOpts{eid: "e", bbox: geometry.Rect{X: 1280 - 200 + 1 - 8, Y: 8, W: 200, H: 50}, typ: slide.TypeImage, priority: 10},
	)
	diag := New().Diagnose(dom, ir)
	for _, d := range diag.Defects {
		if d.Type == slide.DefectOutOfBounds {
			t.Fatalf("expected no out_of_bounds defect at exactly OOB_EPS_PX, got %+v", d)
		}
	}
}

// Font boundary: equality (fontSize == min) must not fire.
func TestFontTooSmallBoundaryDoesNotFire(t *testing.T) {
	dom, ir := buildDocs(
		elOpts{eid: "t", bbox: geometry.Rect{X: 0, Y: 0, W: 400, H: 100}, typ: slide.TypeText, priority: 60, fontSize: 16},
	)
	diag := New().Diagnose(dom, ir)
	for _, d := range diag.Defects {
		if d.Type == slide.DefectFontTooSmall {
			t.Fatalf("expected no font_too_small defect at exact tier minimum, got %+v", d)
		}
	}
}
