package diagnostics

import (
	"github.com/dshills/slidediag/pkg/conflict"
	"github.com/dshills/slidediag/pkg/detectors"
	"github.com/dshills/slidediag/pkg/diagconsts"
	"github.com/dshills/slidediag/pkg/hints"
	"github.com/dshills/slidediag/pkg/severity"
	"github.com/dshills/slidediag/pkg/slide"
)

// Engine runs the diagnostics pipeline against a fixed Tuning. It holds no
// mutable state between runs: every Diagnose call is independent and
// deterministic given its inputs.
type Engine struct {
	Tuning diagconsts.Tuning
}

// New returns an Engine configured with the default tuning.
func New() *Engine {
	return &Engine{Tuning: diagconsts.Default()}
}

// NewWithTuning returns an Engine configured with a caller-supplied
// tuning, e.g. one loaded via diagconsts.LoadTuning.
func NewWithTuning(tuning diagconsts.Tuning) *Engine {
	return &Engine{Tuning: tuning}
}

// Diagnose runs the full detector pipeline over dom and ir and returns the
// assembled DiagDocument. Detectors execute in a fixed order, which is
// also the reporting order and the external planner's fix-priority order
// (highest to lowest).
func (e *Engine) Diagnose(dom *slide.DOMDocument, ir *slide.IRDocument) *slide.DiagDocument {
	tuning := e.Tuning

	var defects []slide.Defect
	var warnings []slide.Warning

	// 1. layout_topology
	defects = append(defects, detectors.LayoutTopology(dom, ir, tuning)...)
	// 2. font_too_small
	defects = append(defects, detectors.FontTooSmall(dom, ir, tuning)...)
	// 3. content_overflow (+ content_underflow)
	defects = append(defects, detectors.ContentOverflow(dom, ir, tuning)...)
	defects = append(defects, detectors.ContentUnderflow(dom, ir, tuning)...)
	// 4. out_of_bounds
	defects = append(defects, detectors.OutOfBounds(dom, ir, tuning)...)
	// 5. overlap (+ occlusion_suspected)
	overlapResult := detectors.Overlap(dom, ir, tuning)
	defects = append(defects, overlapResult.Defects...)
	warnings = append(warnings, overlapResult.Warnings...)

	// (a) validate every hint
	hints.ValidateAll(defects)
	// (b) annotate budget constraints for high-priority elements
	hints.AnnotateBudgets(defects, ir, tuning)
	// (c) build the conflict graph from overlap defects
	conflictGraph := conflict.Analyze(defects, dom, ir, tuning)
	// (d) compute severities
	totalSeverity := severity.TotalSeverity(defects)
	warningSeverity := severity.WarningSeverity(warnings)

	// (e) assemble the summary; conflict_graph key present only if non-empty
	summary := slide.Summary{
		DefectCount:     len(defects),
		TotalSeverity:   totalSeverity,
		WarningCount:    len(warnings),
		WarningSeverity: warningSeverity,
	}
	if len(conflictGraph) > 0 {
		summary.ConflictGraph = conflictGraph
	}

	return &slide.DiagDocument{
		Defects:  defects,
		Warnings: warnings,
		Summary:  summary,
	}
}

// Diagnose is a package-level convenience that runs the engine with
// default tuning, for callers that don't need to reuse an Engine value.
func Diagnose(dom *slide.DOMDocument, ir *slide.IRDocument) *slide.DiagDocument {
	return New().Diagnose(dom, ir)
}
