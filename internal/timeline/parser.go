package timeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Josh-Abbott/timeline-schedule-go/internal/models"
)

// ErrNoTimeline reports a document that parsed but carries no timelineObjects
// field. Callers skip such documents and continue; it is not a pipeline failure.
var ErrNoTimeline = errors.New("document has no timelineObjects field")

// RecordKind tags which variant a parsed Record holds.
type RecordKind int

const (
	KindSegment RecordKind = iota
	KindVisit
)

// Record is one classified timeline entry. Exactly one of Segment/Visit is set,
// selected by Kind. Records preserve source order and are immutable after parse.
type Record struct {
	Kind    RecordKind
	Segment *models.ActivitySegment
	Visit   *models.PlaceVisit
}

// Wire shapes for the export JSON. All leaf fields are pointers so that absent
// and present-but-zero stay distinguishable.
type document struct {
	TimelineObjects *[]entry `json:"timelineObjects"`
}

type entry struct {
	ActivitySegment *rawSegment `json:"activitySegment"`
	PlaceVisit      *rawVisit   `json:"placeVisit"`
}

type rawSegment struct {
	StartLocation *rawLocation `json:"startLocation"`
	EndLocation   *rawLocation `json:"endLocation"`
	Duration      *rawDuration `json:"duration"`
	Distance      *float64     `json:"distance"`
	Confidence    *string      `json:"confidence"`
	WaypointPath  *struct {
		TravelMode *string `json:"travelMode"`
	} `json:"waypointPath"`
}

type rawVisit struct {
	Location        *rawLocation `json:"location"`
	Duration        *rawDuration `json:"duration"`
	VisitConfidence *float64     `json:"visitConfidence"`
}

type rawLocation struct {
	LatitudeE7  *int64  `json:"latitudeE7"`
	LongitudeE7 *int64  `json:"longitudeE7"`
	Name        *string `json:"name"`
	PlaceID     *string `json:"placeId"`
	Address     *string `json:"address"`
}

type rawDuration struct {
	StartTimestamp *string `json:"startTimestamp"`
	EndTimestamp   *string `json:"endTimestamp"`
}

// ParseDocument classifies one export document's entries into segment and visit
// records, preserving source order. A document without timelineObjects returns
// ErrNoTimeline; entries that are neither segment nor visit are dropped so
// future export entry types do not break ingestion.
func ParseDocument(data []byte) ([]Record, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode timeline document: %w", err)
	}
	if doc.TimelineObjects == nil {
		return nil, ErrNoTimeline
	}

	var records []Record
	for _, e := range *doc.TimelineObjects {
		switch {
		case e.ActivitySegment != nil:
			records = append(records, Record{Kind: KindSegment, Segment: parseSegment(e.ActivitySegment)})
		case e.PlaceVisit != nil:
			records = append(records, Record{Kind: KindVisit, Visit: parseVisit(e.PlaceVisit)})
		}
	}
	return records, nil
}

func parseSegment(raw *rawSegment) *models.ActivitySegment {
	seg := &models.ActivitySegment{
		DistanceMeters: raw.Distance,
		Confidence:     canonicalConfidence(raw.Confidence),
	}
	if raw.Duration != nil {
		seg.StartTimestamp = raw.Duration.StartTimestamp
		seg.EndTimestamp = raw.Duration.EndTimestamp
	}
	if raw.StartLocation != nil {
		seg.StartLatitude = FromE7(raw.StartLocation.LatitudeE7)
		seg.StartLongitude = FromE7(raw.StartLocation.LongitudeE7)
	}
	if raw.EndLocation != nil {
		seg.EndLatitude = FromE7(raw.EndLocation.LatitudeE7)
		seg.EndLongitude = FromE7(raw.EndLocation.LongitudeE7)
	}
	if raw.WaypointPath != nil {
		seg.TravelMode = raw.WaypointPath.TravelMode
	}
	return seg
}

func parseVisit(raw *rawVisit) *models.PlaceVisit {
	visit := &models.PlaceVisit{
		VisitConfidence: raw.VisitConfidence,
	}
	if raw.Location != nil {
		visit.PlaceName = raw.Location.Name
		visit.PlaceID = raw.Location.PlaceID
		visit.Address = raw.Location.Address
		visit.Latitude = FromE7(raw.Location.LatitudeE7)
		visit.Longitude = FromE7(raw.Location.LongitudeE7)
	}
	if raw.Duration != nil {
		visit.StartTimestamp = raw.Duration.StartTimestamp
		visit.EndTimestamp = raw.Duration.EndTimestamp
	}
	return visit
}

// canonicalConfidence upper-cases the export's confidence label, defaulting to
// "UNKNOWN" when the field is absent.
func canonicalConfidence(c *string) string {
	if c == nil {
		return "UNKNOWN"
	}
	return strings.ToUpper(*c)
}
