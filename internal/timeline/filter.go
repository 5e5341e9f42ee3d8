package timeline

import "github.com/Josh-Abbott/timeline-schedule-go/internal/models"

// lowConfidence is the only segment label the filter ever rejects.
const lowConfidence = "LOW"

// AcceptSegment reports whether an activity segment passes the confidence
// filter. The segment policy is a boolean switch, not a numeric cutoff: with
// dropLow set, segments whose canonical confidence is "LOW" are rejected;
// everything else passes.
func AcceptSegment(seg *models.ActivitySegment, dropLow bool) bool {
	return !(dropLow && seg.Confidence == lowConfidence)
}

// AcceptVisit reports whether a place visit passes the numeric confidence
// threshold (0-100 scale). An absent visitConfidence counts as 0 for this
// comparison only; the record itself keeps the nil.
func AcceptVisit(visit *models.PlaceVisit, threshold float64) bool {
	confidence := 0.0
	if visit.VisitConfidence != nil {
		confidence = *visit.VisitConfidence
	}
	return confidence >= threshold
}
