package hints

import (
	"math"

	"github.com/dshills/slidediag/pkg/slide"
)

// positionSizeActions is the set of hint actions that move or resize an
// element, as opposed to purely structural actions.
var positionSizeActions = map[slide.HintAction]bool{
	slide.ActionMoveToTop:       true,
	slide.ActionSetPosition:     true,
	slide.ActionSetFontSize:     true,
	slide.ActionShrinkContainer: true,
	slide.ActionMoveUp:          true,
	slide.ActionMoveDown:        true,
	slide.ActionMoveLeft:        true,
	slide.ActionMoveRight:       true,
}

// Validate normalises h in place: an empty Action is rejected (validated
// stays false); numeric suggestions are rounded; otherwise validated is
// set true.
func Validate(h *slide.Hint) {
	if h == nil {
		return
	}
	if h.Action == "" {
		h.Validated = false
		h.Reason = "missing action"
		return
	}

	roundPtr(&h.SuggestedX)
	roundPtr(&h.SuggestedY)
	roundPtr(&h.SuggestedW)
	roundPtr(&h.SuggestedH)
	roundPtr(&h.SuggestedFontSize)

	h.Validated = true
}

// ValidateAll validates every hint attached to defects, in place.
func ValidateAll(defects []slide.Defect) {
	for i := range defects {
		Validate(defects[i].Hint)
	}
}

// roundPtr rounds *p to the nearest integer value (still float64), leaving
// a nil pointer untouched.
func roundPtr(p **float64) {
	if *p == nil {
		return
	}
	v := math.Round(**p)
	*p = &v
}
