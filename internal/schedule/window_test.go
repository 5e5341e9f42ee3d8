package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/Josh-Abbott/timeline-schedule-go/internal/models"
)

func strPtr(s string) *string { return &s }

func visitAt(name, ts string) models.PlaceVisit {
	return models.PlaceVisit{PlaceName: strPtr(name), StartTimestamp: strPtr(ts)}
}

func mustPeriod(t *testing.T, date string) time.Time {
	t.Helper()
	p, err := ParsePeriod(date)
	if err != nil {
		t.Fatalf("bad period %s: %v", date, err)
	}
	return p
}

func TestSelectWindow_InclusiveBounds(t *testing.T) {
	visits := []models.PlaceVisit{
		visitAt("before", "2018-12-31T23:59:59Z"),
		visitAt("atStart", "2019-01-01T00:00:00Z"),
		visitAt("inside", "2019-03-15T12:00:00Z"),
		visitAt("atEnd", "2019-06-30T00:00:00Z"),
		visitAt("after", "2019-06-30T00:00:01Z"),
	}

	selected, err := SelectWindow(visits, mustPeriod(t, "2019-01-01"), mustPeriod(t, "2019-06-30"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(selected) != 3 {
		t.Fatalf("expected 3 visits, got %d", len(selected))
	}
	want := []string{"atStart", "inside", "atEnd"}
	for i, name := range want {
		if *selected[i].PlaceName != name {
			t.Errorf("position %d: expected %s, got %s", i, name, *selected[i].PlaceName)
		}
	}
}

func TestSelectWindow_NormalizesOffsetsToUTC(t *testing.T) {
	// 2019-01-01T01:00:00+02:00 is 2018-12-31T23:00:00 UTC, outside the window.
	visits := []models.PlaceVisit{
		visitAt("offset", "2019-01-01T01:00:00+02:00"),
	}
	_, err := SelectWindow(visits, mustPeriod(t, "2019-01-01"), mustPeriod(t, "2019-12-31"))
	if !errors.Is(err, ErrNoVisits) {
		t.Fatalf("expected ErrNoVisits, got %v", err)
	}

	// 2019-01-01T02:00:00+02:00 is exactly midnight UTC, inside.
	visits = []models.PlaceVisit{
		visitAt("offset", "2019-01-01T02:00:00+02:00"),
	}
	selected, err := SelectWindow(visits, mustPeriod(t, "2019-01-01"), mustPeriod(t, "2019-12-31"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(selected) != 1 || !selected[0].Start.Equal(time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("offset timestamp not normalized to UTC: %+v", selected)
	}
}

func TestSelectWindow_DropsUnparseable(t *testing.T) {
	visits := []models.PlaceVisit{
		{PlaceName: strPtr("noTimestamp")},
		visitAt("garbage", "not-a-timestamp"),
		visitAt("good", "2019-03-01T10:00:00Z"),
	}
	selected, err := SelectWindow(visits, mustPeriod(t, "2019-01-01"), mustPeriod(t, "2019-12-31"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(selected) != 1 || *selected[0].PlaceName != "good" {
		t.Errorf("expected only the parseable visit, got %d", len(selected))
	}
}

func TestSelectWindow_EmptyInput(t *testing.T) {
	if _, err := SelectWindow(nil, mustPeriod(t, "2019-01-01"), mustPeriod(t, "2019-12-31")); !errors.Is(err, ErrNoVisits) {
		t.Errorf("expected ErrNoVisits for empty input, got %v", err)
	}
}

func TestSelectWindow_NothingSurvives(t *testing.T) {
	// The dataset is entirely outside the window; the explicit
	// empty signal fires and no schedule is built.
	visits := []models.PlaceVisit{
		visitAt("old", "2015-06-01T08:00:00Z"),
		visitAt("older", "2014-02-01T08:00:00Z"),
	}
	_, err := SelectWindow(visits, mustPeriod(t, "2019-01-01"), mustPeriod(t, "2019-12-31"))
	if !errors.Is(err, ErrNoVisits) {
		t.Errorf("expected ErrNoVisits, got %v", err)
	}
}

func TestSelectWindow_KeepsNilNames(t *testing.T) {
	// Unnamed visits survive selection; the aggregator decides what they count for.
	visits := []models.PlaceVisit{
		{StartTimestamp: strPtr("2019-03-01T10:00:00Z")},
	}
	selected, err := SelectWindow(visits, mustPeriod(t, "2019-01-01"), mustPeriod(t, "2019-12-31"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(selected) != 1 || selected[0].PlaceName != nil {
		t.Errorf("nil-named visit should survive selection untouched")
	}
}
