package timeline

import (
	"testing"

	"github.com/Josh-Abbott/timeline-schedule-go/internal/models"
)

func segmentWithConfidence(c *string) *models.ActivitySegment {
	return &models.ActivitySegment{Confidence: canonicalConfidence(c)}
}

func strPtr(s string) *string { return &s }

func TestAcceptSegment_DropsLowWhenEnabled(t *testing.T) {
	// The label is canonicalized at parse time, so any source casing of "low"
	// is rejected.
	for _, raw := range []string{"low", "LOW", "Low"} {
		seg := segmentWithConfidence(strPtr(raw))
		if AcceptSegment(seg, true) {
			t.Errorf("confidence %q should be rejected with dropLow enabled", raw)
		}
	}
}

func TestAcceptSegment_DisabledAcceptsEverything(t *testing.T) {
	for _, raw := range []*string{strPtr("low"), strPtr("HIGH"), strPtr("MEDIUM"), nil} {
		seg := segmentWithConfidence(raw)
		if !AcceptSegment(seg, false) {
			t.Errorf("confidence %q should be accepted with dropLow disabled", seg.Confidence)
		}
	}
}

func TestAcceptSegment_NonLowPasses(t *testing.T) {
	for _, raw := range []*string{strPtr("HIGH"), strPtr("MEDIUM"), nil} {
		seg := segmentWithConfidence(raw)
		if !AcceptSegment(seg, true) {
			t.Errorf("confidence %q should pass the filter", seg.Confidence)
		}
	}
}

func TestAcceptVisit_NumericThreshold(t *testing.T) {
	cases := []struct {
		confidence *float64
		threshold  float64
		want       bool
	}{
		{f64Ptr(87.5), 50, true},
		{f64Ptr(49.9), 50, false},
		{f64Ptr(50), 50, true}, // boundary is inclusive
		{f64Ptr(0), 0, true},
		{nil, 50, false},
		{nil, 0, true}, // absent treated as 0, and 0 >= 0
	}
	for i, tc := range cases {
		visit := &models.PlaceVisit{VisitConfidence: tc.confidence}
		if got := AcceptVisit(visit, tc.threshold); got != tc.want {
			t.Errorf("case %d: AcceptVisit = %v, want %v", i, got, tc.want)
		}
	}
}

func TestAcceptVisit_AbsenceNotMutated(t *testing.T) {
	visit := &models.PlaceVisit{}
	AcceptVisit(visit, 50)
	// The 0-for-comparison rule must not leak into the record.
	if visit.VisitConfidence != nil {
		t.Error("filter must not materialize a 0 confidence on the record")
	}
}

func f64Ptr(f float64) *float64 { return &f }
