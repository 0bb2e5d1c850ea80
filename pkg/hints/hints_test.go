package hints

import (
	"testing"

	"github.com/dshills/slidediag/pkg/diagconsts"
	"github.com/dshills/slidediag/pkg/slide"
)

func TestValidateRejectsMissingAction(t *testing.T) {
	h := &slide.Hint{}
	Validate(h)
	if h.Validated {
		t.Error("expected Validated = false for missing action")
	}
}

func TestValidateRoundsSuggestions(t *testing.T) {
	x := 10.6
	h := &slide.Hint{Action: slide.ActionSetPosition, SuggestedX: &x}
	Validate(h)
	if !h.Validated {
		t.Fatal("expected Validated = true")
	}
	if *h.SuggestedX != 11 {
		t.Errorf("SuggestedX = %v, want rounded 11", *h.SuggestedX)
	}
}

func TestAnnotateBudgetsHighPriorityOnly(t *testing.T) {
	tuning := diagconsts.Default()
	ir := &slide.IRDocument{Elements: []slide.IRElement{
		{EID: "hi", Priority: 90},
		{EID: "lo", Priority: 10},
	}}
	x := 5.0
	defects := []slide.Defect{
		{EID: "hi", Hint: &slide.Hint{Action: slide.ActionSetPosition, TargetEID: "hi", SuggestedX: &x}},
		{EID: "lo", Hint: &slide.Hint{Action: slide.ActionSetPosition, TargetEID: "lo", SuggestedX: &x}},
	}
	AnnotateBudgets(defects, ir, tuning)

	if defects[0].Hint.Budget == nil {
		t.Error("expected budget on high-priority hint")
	}
	if defects[1].Hint.Budget != nil {
		t.Error("expected no budget on low-priority hint")
	}
}
