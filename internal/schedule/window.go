// Package schedule derives a weekly 7x24 behavioral grid from time-windowed
// place visits.
package schedule

import (
	"errors"
	"time"

	"github.com/Josh-Abbott/timeline-schedule-go/internal/models"
)

// ErrNoVisits reports that a reporting window contains no usable visits. It is
// an explicit signal so an empty window never masquerades as a populated run.
var ErrNoVisits = errors.New("no place visits in reporting window")

// Visit is a place visit with its start timestamp already resolved to UTC, so
// the aggregator never re-parses text timestamps.
type Visit struct {
	PlaceName *string
	Start     time.Time
}

// SelectWindow restricts visits to the closed interval [start, end], compared
// in UTC against each record's start timestamp. Records whose start timestamp
// is absent or unparseable are dropped, not errors. Input order is preserved.
// An empty input or an empty survivor set returns ErrNoVisits.
func SelectWindow(visits []models.PlaceVisit, start, end time.Time) ([]Visit, error) {
	start = start.UTC()
	end = end.UTC()

	var selected []Visit
	for _, v := range visits {
		if v.StartTimestamp == nil {
			continue
		}
		ts, err := time.Parse(time.RFC3339, *v.StartTimestamp)
		if err != nil {
			continue
		}
		ts = ts.UTC()
		if ts.Before(start) || ts.After(end) {
			continue
		}
		selected = append(selected, Visit{PlaceName: v.PlaceName, Start: ts})
	}
	if len(selected) == 0 {
		return nil, ErrNoVisits
	}
	return selected, nil
}

// ParsePeriod parses a reporting bound given as a YYYY-MM-DD date string into
// UTC midnight of that day.
func ParsePeriod(date string) (time.Time, error) {
	return time.Parse("2006-01-02", date)
}
