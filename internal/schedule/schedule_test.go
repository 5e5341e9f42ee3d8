package schedule

import (
	"testing"
	"time"

	"github.com/Josh-Abbott/timeline-schedule-go/internal/models"
)

// 2019-01-07 is a Monday.
func atUTC(day, hour int) time.Time {
	return time.Date(2019, 1, 7+day, hour, 0, 0, 0, time.UTC)
}

func named(name string, day, hour int) Visit {
	return Visit{PlaceName: strPtr(name), Start: atUTC(day, hour)}
}

const (
	monday    = 0
	tuesday   = 1
	wednesday = 2
)

func TestBuildWeekly_ModeWinsExactSlot(t *testing.T) {
	// Monday 09:00 has Office, Office, Cafe -> Office wins 2-to-1.
	visits := []Visit{
		named("Office", monday, 9),
		named("Office", monday, 9),
		named("Cafe", monday, 9),
	}
	ws := BuildWeekly(visits, 10)

	slot := ws.Slot(monday, 9)
	if !slot.Filled || slot.Place != "Office" {
		t.Errorf("expected (Monday, 9) = Office, got %+v", slot)
	}
}

func TestBuildWeekly_HourlyFallback(t *testing.T) {
	// No records at (Tuesday, 14); Gym dominates hour 14 globally.
	visits := []Visit{
		named("Gym", monday, 14),
		named("Gym", wednesday, 14),
		named("Gym", wednesday, 14),
	}
	ws := BuildWeekly(visits, 10)

	slot := ws.Slot(tuesday, 14)
	if !slot.Filled || slot.Place != "Gym" {
		t.Errorf("expected (Tuesday, 14) to fall back to Gym, got %+v", slot)
	}
}

func TestBuildWeekly_NilNameFallsThroughToHourly(t *testing.T) {
	// The only visit at (Monday, 8) is unnamed; it must not fill
	// tier 1, and the hourly table (fed by other days) fills the slot instead.
	visits := []Visit{
		{PlaceName: nil, Start: atUTC(monday, 8)},
		named("Bakery", tuesday, 8),
	}
	ws := BuildWeekly(visits, 10)

	slot := ws.Slot(monday, 8)
	if !slot.Filled || slot.Place != "Bakery" {
		t.Errorf("expected (Monday, 8) to fall back to Bakery, got %+v", slot)
	}
}

func TestBuildWeekly_NilNamesNeverCount(t *testing.T) {
	// An unnamed visit must not outvote a named one anywhere.
	visits := []Visit{
		{PlaceName: nil, Start: atUTC(monday, 9)},
		{PlaceName: nil, Start: atUTC(monday, 9)},
		named("Office", monday, 9),
	}
	ws := BuildWeekly(visits, 10)

	if slot := ws.Slot(monday, 9); slot.Place != "Office" {
		t.Errorf("expected Office, got %+v", slot)
	}
}

func TestBuildWeekly_EmptyHourStaysEmpty(t *testing.T) {
	// No fallback beyond the hour table: an hour with no named visits anywhere
	// yields explicit-empty slots, not labels borrowed from other hours.
	visits := []Visit{
		named("Home", monday, 22),
	}
	ws := BuildWeekly(visits, 10)

	for day := 0; day < 7; day++ {
		if slot := ws.Slot(day, 3); slot.Filled {
			t.Errorf("expected (day %d, 3) empty, got %q", day, slot.Place)
		}
	}
}

func TestBuildWeekly_GridComplete(t *testing.T) {
	// Every one of the 168 cells is either filled or explicitly empty, and a
	// filled cell always carries a label.
	visits := []Visit{
		named("Home", monday, 0),
		named("Office", tuesday, 9),
		{PlaceName: nil, Start: atUTC(wednesday, 12)},
	}
	ws := BuildWeekly(visits, 10)

	for day := 0; day < 7; day++ {
		for hour := 0; hour < models.HoursPerDay; hour++ {
			slot := ws.Slot(day, hour)
			if slot.Filled && slot.Place == "" {
				t.Errorf("(day %d, hour %d) filled without a label", day, hour)
			}
			if !slot.Filled && slot.Place != "" {
				t.Errorf("(day %d, hour %d) empty but labeled %q", day, hour, slot.Place)
			}
		}
	}
}

func TestBuildWeekly_TieBreakFirstSeen(t *testing.T) {
	// Equal counts resolve to the name that appeared first in input order,
	// in both tiers.
	visits := []Visit{
		named("Cafe", monday, 9),
		named("Office", monday, 9),
	}
	ws := BuildWeekly(visits, 10)
	if slot := ws.Slot(monday, 9); slot.Place != "Cafe" {
		t.Errorf("tier 1 tie should resolve first-seen: got %q", slot.Place)
	}

	visits = []Visit{
		named("Gym", monday, 14),
		named("Pool", wednesday, 14),
	}
	ws = BuildWeekly(visits, 10)
	if slot := ws.Slot(tuesday, 14); slot.Place != "Gym" {
		t.Errorf("tier 2 tie should resolve first-seen: got %q", slot.Place)
	}
}

func TestBuildWeekly_TruncatesDisplayNames(t *testing.T) {
	visits := []Visit{
		named("Amphitheatre Parkway Office", monday, 10),
	}
	ws := BuildWeekly(visits, 10)
	if slot := ws.Slot(monday, 10); slot.Place != "Amphitheat" {
		t.Errorf("expected truncated label, got %q", slot.Place)
	}
}

func TestBuildWeekly_TruncationMergesCounts(t *testing.T) {
	// Names identical within the truncation length tally as one place.
	visits := []Visit{
		named("Starbucks Main St", monday, 9),
		named("Starbucks Oak Ave", monday, 9),
		named("Office", monday, 9),
	}
	ws := BuildWeekly(visits, 9)
	if slot := ws.Slot(monday, 9); slot.Place != "Starbucks" {
		t.Errorf("expected merged Starbucks mode, got %q", slot.Place)
	}
}

func TestBuildWeekly_DayAxisIsMondayFirst(t *testing.T) {
	// 2019-01-13 is a Sunday and must land on index 6.
	visits := []Visit{
		{PlaceName: strPtr("Brunch"), Start: time.Date(2019, 1, 13, 11, 0, 0, 0, time.UTC)},
	}
	ws := BuildWeekly(visits, 10)
	if slot := ws.Slot(6, 11); !slot.Filled || slot.Place != "Brunch" {
		t.Errorf("expected Sunday slot filled, got %+v", slot)
	}
}

func TestDistinctPlaces_OrderedByFirstAppearance(t *testing.T) {
	visits := []Visit{
		named("Home", monday, 0),
		named("Office", monday, 9),
		named("Home", tuesday, 0),
	}
	ws := BuildWeekly(visits, 10)

	places := ws.DistinctPlaces()
	if len(places) != 2 {
		t.Fatalf("expected 2 distinct places, got %d: %v", len(places), places)
	}
	if places[0] != "Home" || places[1] != "Office" {
		t.Errorf("unexpected order: %v", places)
	}
}
