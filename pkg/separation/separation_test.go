package separation

import (
	"testing"

	"github.com/dshills/slidediag/pkg/geometry"
)

func TestOptionsSortedAscendingAndNonNegative(t *testing.T) {
	owner := Box{
		BBox:    geometry.Rect{X: 100, Y: 100, W: 400, H: 200},
		SafeBox: geometry.Rect{X: 92, Y: 92, W: 416, H: 216},
	}
	other := Box{
		BBox:    geometry.Rect{X: 300, Y: 100, W: 400, H: 200},
		SafeBox: geometry.Rect{X: 292, Y: 92, W: 416, H: 216},
	}

	opts := Options(owner, other, 8)
	if len(opts) != 4 {
		t.Fatalf("len(opts) = %d, want 4", len(opts))
	}
	for i, o := range opts {
		if o.CostPx < 0 {
			t.Errorf("opts[%d].CostPx = %d, want >= 0", i, o.CostPx)
		}
		if i > 0 && opts[i-1].CostPx > o.CostPx {
			t.Errorf("opts not sorted ascending at index %d: %d > %d", i, opts[i-1].CostPx, o.CostPx)
		}
	}

	cheapest, ok := Cheapest(opts)
	if !ok || cheapest.CostPx != opts[0].CostPx {
		t.Errorf("Cheapest() = %v, want first element of sorted slice", cheapest)
	}
}
