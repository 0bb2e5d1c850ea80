// Package severity sums defect severities and warning overlap areas into
// the DiagDocument's summary counters.
package severity

import "github.com/dshills/slidediag/pkg/slide"

// TotalSeverity returns the sum of every defect's Severity.
func TotalSeverity(defects []slide.Defect) int {
	total := 0
	for _, d := range defects {
		total += d.Severity
	}
	return total
}

// WarningSeverity returns the sum of every warning's overlap_area_px
// detail. Warnings whose details are missing or malformed contribute 0.
func WarningSeverity(warnings []slide.Warning) int {
	total := 0
	for _, w := range warnings {
		if v, ok := w.Details["overlap_area_px"].(int); ok {
			total += v
		}
	}
	return total
}
