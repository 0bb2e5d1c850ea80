package hints

import (
	"github.com/dshills/slidediag/pkg/diagconsts"
	"github.com/dshills/slidediag/pkg/slide"
)

// AnnotateBudgets attaches a Budget to every position/size-modifying hint
// whose target element has IR priority >= tuning.HighPriorityThreshold.
// Budgets are advisory maxima; the core never re-clamps the hint itself —
// planner feedback loops enforce budgets and report overrides.
func AnnotateBudgets(defects []slide.Defect, ir *slide.IRDocument, tuning diagconsts.Tuning) {
	for i := range defects {
		h := defects[i].Hint
		if h == nil || !positionSizeActions[h.Action] {
			continue
		}

		target := h.TargetEID
		if target == "" {
			target = defects[i].EID
		}
		if target == "" {
			target = defects[i].OwnerEID
		}

		el, ok := ir.ElementByEID(target)
		if !ok || el.Priority < tuning.HighPriorityThreshold {
			continue
		}

		h.Budget = &slide.Budget{
			PositionBudgetPx: tuning.HighPriorityPositionBudgetPx,
			SizeBudgetPx:     tuning.HighPrioritySizeBudgetPx,
		}
	}
}
