package separation

import (
	"sort"

	"github.com/dshills/slidediag/pkg/geometry"
	"github.com/dshills/slidediag/pkg/slide"
)

// Box is the minimal geometric shape Options needs for one element: its
// own bbox plus the safeBox used for overlap/clearance math.
type Box struct {
	BBox    geometry.Rect
	SafeBox geometry.Rect
}

// Options returns the four cardinal separation options that would move
// owner clear of other, in ascending cost order.
func Options(owner, other Box, safePadding float64) []slide.SeparationOption {
	yOffset := owner.SafeBox.Y - owner.BBox.Y
	xOffset := owner.SafeBox.X - owner.BBox.X

	targetUpY := other.SafeBox.Y - owner.BBox.H - safePadding
	costUp := owner.BBox.Y - targetUpY

	targetDownY := other.SafeBox.Bottom() + safePadding - yOffset
	costDown := targetDownY - owner.BBox.Y

	targetLeftX := other.SafeBox.X - owner.BBox.W - safePadding
	costLeft := owner.BBox.X - targetLeftX

	targetRightX := other.SafeBox.Right() + safePadding - xOffset
	costRight := targetRightX - owner.BBox.X

	options := []slide.SeparationOption{
		{Direction: slide.DirMoveUp, TargetY: ptr(targetUpY), CostPx: geometry.RoundClamped(costUp)},
		{Direction: slide.DirMoveDown, TargetY: ptr(targetDownY), CostPx: geometry.RoundClamped(costDown)},
		{Direction: slide.DirMoveLeft, TargetX: ptr(targetLeftX), CostPx: geometry.RoundClamped(costLeft)},
		{Direction: slide.DirMoveRight, TargetX: ptr(targetRightX), CostPx: geometry.RoundClamped(costRight)},
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].CostPx < options[j].CostPx
	})
	return options
}

// Cheapest returns the lowest-cost option from an already-sorted options
// list (as returned by Options), or the zero value and false if empty.
func Cheapest(options []slide.SeparationOption) (slide.SeparationOption, bool) {
	if len(options) == 0 {
		return slide.SeparationOption{}, false
	}
	return options[0], true
}

func ptr(v float64) *float64 {
	return &v
}
