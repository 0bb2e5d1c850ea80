package severity

import (
	"testing"

	"github.com/dshills/slidediag/pkg/slide"
)

func TestTotalSeverity(t *testing.T) {
	defects := []slide.Defect{{Severity: 10}, {Severity: 20}, {Severity: 0}}
	if got := TotalSeverity(defects); got != 30 {
		t.Errorf("TotalSeverity = %d, want 30", got)
	}
	if got := TotalSeverity(nil); got != 0 {
		t.Errorf("TotalSeverity(nil) = %d, want 0", got)
	}
}

func TestWarningSeverity(t *testing.T) {
	warnings := []slide.Warning{
		{Details: map[string]any{"overlap_area_px": 150}},
		{Details: map[string]any{"overlap_area_px": 50}},
		{Details: map[string]any{}},
	}
	if got := WarningSeverity(warnings); got != 200 {
		t.Errorf("WarningSeverity = %d, want 200", got)
	}
}
