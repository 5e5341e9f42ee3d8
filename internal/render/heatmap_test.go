package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Josh-Abbott/timeline-schedule-go/internal/models"
)

func sampleResponse() *models.ScheduleResponse {
	ws := &models.WeeklySchedule{}
	for day := 0; day < 7; day++ {
		for hour := 0; hour < models.HoursPerDay; hour++ {
			ws.SetEmpty(day, hour)
		}
	}
	ws.SetSlot(0, 9, "Office")
	ws.SetSlot(0, 12, "Cafe")

	return &models.ScheduleResponse{
		Schedule:    ws,
		Places:      ws.DistinctPlaces(),
		StartPeriod: "2019-01-01",
		EndPeriod:   "2019-06-30",
		VisitCount:  3,
	}
}

func TestWeekly_RendersGrid(t *testing.T) {
	var buf bytes.Buffer
	Weekly(&buf, sampleResponse(), true)
	out := buf.String()

	if !strings.Contains(out, "Weekly Schedule (January 01, 2019 to June 30, 2019)") {
		t.Errorf("missing formatted title:\n%s", out)
	}
	for _, day := range models.DaysOfWeek {
		if !strings.Contains(out, day) {
			t.Errorf("missing day header %s", day)
		}
	}
	if !strings.Contains(out, "Office") || !strings.Contains(out, "Cafe") {
		t.Error("missing place labels")
	}
	if !strings.Contains(out, "09:00") || !strings.Contains(out, "23:00") {
		t.Error("missing hour rows")
	}
	if !strings.Contains(out, "2 places, 3 visits") {
		t.Error("missing summary line")
	}

	// One row per hour plus title, spacer, header, rule, spacer, summary.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != models.HoursPerDay+6 {
		t.Errorf("expected %d lines, got %d", models.HoursPerDay+6, len(lines))
	}
}

func TestWeekly_RawRangeInTitle(t *testing.T) {
	resp := sampleResponse()
	resp.StartPeriod = "start-of-term"
	resp.EndPeriod = "end-of-term"

	var buf bytes.Buffer
	Weekly(&buf, resp, true)
	if !strings.Contains(buf.String(), "Weekly Schedule (start-of-term to end-of-term)") {
		t.Error("non-date periods should render verbatim")
	}
}
