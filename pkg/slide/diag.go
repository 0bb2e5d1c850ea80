package slide

// DefectType discriminates the five defect kinds the engine emits. Details
// are carried in the untyped Details map since each variant's shape
// differs; callers that need strict typing should switch on Type.
type DefectType string

const (
	DefectLayoutTopology DefectType = "layout_topology"
	DefectFontTooSmall   DefectType = "font_too_small"
	DefectContentOverflow DefectType = "content_overflow"
	DefectOutOfBounds    DefectType = "out_of_bounds"
	DefectOverlap        DefectType = "overlap"
)

// WarningType discriminates warning kinds. Only one exists today.
type WarningType string

const (
	WarningOcclusionSuspected WarningType = "occlusion_suspected"
)

// HintAction names the repair action a Hint proposes.
type HintAction string

const (
	ActionMoveToTop       HintAction = "move_to_top"
	ActionSetFontSize     HintAction = "set_fontSize"
	ActionShrinkContainer HintAction = "shrink_container"
	ActionMoveUp          HintAction = "move_up"
	ActionMoveDown        HintAction = "move_down"
	ActionMoveLeft        HintAction = "move_left"
	ActionMoveRight       HintAction = "move_right"
	ActionSetPosition     HintAction = "set_position"
)

// Budget is an advisory maximum the external planner is expected to
// respect when applying a hint to a high-priority element. The core does
// not re-clamp the hint to this budget itself.
type Budget struct {
	PositionBudgetPx float64 `json:"position_budget_px"`
	SizeBudgetPx     float64 `json:"size_budget_px"`
}

// Hint is a validated, bounded repair suggestion attached to a defect.
type Hint struct {
	Action           HintAction `json:"action"`
	Validated        bool       `json:"validated"`
	Reason           string     `json:"reason,omitempty"`
	SuggestedX       *float64   `json:"suggested_x,omitempty"`
	SuggestedY       *float64   `json:"suggested_y,omitempty"`
	SuggestedW       *float64   `json:"suggested_w,omitempty"`
	SuggestedH       *float64   `json:"suggested_h,omitempty"`
	SuggestedFontSize *float64  `json:"suggested_fontSize,omitempty"`
	TargetEID        string     `json:"target_eid,omitempty"`
	Budget           *Budget    `json:"budget,omitempty"`
}

// Defect is a fixable violation of a layout rule.
type Defect struct {
	Type     DefectType     `json:"type"`
	Severity int            `json:"severity"`
	Details  map[string]any `json:"details,omitempty"`
	EID      string         `json:"eid,omitempty"`
	OwnerEID string         `json:"owner_eid,omitempty"`
	OtherEID string         `json:"other_eid,omitempty"`
	Hint     *Hint          `json:"hint,omitempty"`
}

// Warning is a suspicious but not definitively wrong situation.
type Warning struct {
	Type     WarningType    `json:"type"`
	OwnerEID string         `json:"owner_eid"`
	OtherEID string         `json:"other_eid"`
	Details  map[string]any `json:"details,omitempty"`
}

// SeparationDirection names one of the four cardinal one-axis moves a
// SeparationOption proposes.
type SeparationDirection string

const (
	DirMoveUp    SeparationDirection = "move_up"
	DirMoveDown  SeparationDirection = "move_down"
	DirMoveLeft  SeparationDirection = "move_left"
	DirMoveRight SeparationDirection = "move_right"
)

// SeparationOption is one candidate one-axis move that would clear a
// specific overlap, with its pixel cost.
type SeparationOption struct {
	Direction SeparationDirection `json:"direction"`
	TargetX   *float64            `json:"target_x,omitempty"`
	TargetY   *float64            `json:"target_y,omitempty"`
	CostPx    int                 `json:"cost_px"`
}

// ConflictEdge is one overlapping pair within a ConflictComponent.
type ConflictEdge struct {
	OwnerEID     string             `json:"owner_eid"`
	OtherEID     string             `json:"other_eid"`
	OverlapArea  float64            `json:"overlap_area"`
	Separations  []SeparationOption `json:"separations"`
}

// SpaceEnvelope is the free pixel distance from one element's safeBox to
// the nearest non-group obstacle (or slide edge) in each cardinal
// direction.
type SpaceEnvelope struct {
	EID        string  `json:"eid"`
	FreeTop    float64 `json:"free_top"`
	FreeBottom float64 `json:"free_bottom"`
	FreeLeft   float64 `json:"free_left"`
	FreeRight  float64 `json:"free_right"`
}

// ConflictComponent is one connected subgraph of mutually-overlapping
// elements, reported as a unit so external planners can reason about them
// jointly. |EIDs| is always >= 2.
type ConflictComponent struct {
	EIDs      []string        `json:"eids"`
	Edges     []ConflictEdge  `json:"edges"`
	Envelopes []SpaceEnvelope `json:"envelopes"`
}

// Summary aggregates counts and severities across the document, plus the
// optional conflict graph.
type Summary struct {
	DefectCount     int                  `json:"defect_count"`
	TotalSeverity   int                  `json:"total_severity"`
	WarningCount    int                  `json:"warning_count"`
	WarningSeverity int                  `json:"warning_severity"`
	ConflictGraph   []ConflictComponent  `json:"conflict_graph,omitempty"`
}

// DiagDocument is the sole output of the diagnostics engine.
type DiagDocument struct {
	Defects  []Defect  `json:"defects"`
	Warnings []Warning `json:"warnings"`
	Summary  Summary   `json:"summary"`
}
