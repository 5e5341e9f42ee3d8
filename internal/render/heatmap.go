// Package render draws the weekly schedule as a color-coded terminal matrix.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/Josh-Abbott/timeline-schedule-go/internal/models"
)

// palette cycles across distinct places. Empty slots render uncolored.
var palette = []*color.Color{
	color.New(color.FgBlue),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
	color.New(color.FgRed),
	color.New(color.FgHiBlue),
	color.New(color.FgHiGreen),
	color.New(color.FgHiYellow),
	color.New(color.FgHiMagenta),
	color.New(color.FgHiCyan),
	color.New(color.FgHiRed),
}

// Weekly writes the 7x24 grid to w, one row per hour, one column per day.
// Each distinct place gets its own color from the palette; the color map is
// keyed by the response's distinct-place ordering so reruns color identically.
func Weekly(w io.Writer, resp *models.ScheduleResponse, noColor bool) {
	if noColor {
		color.NoColor = true
	}

	colorFor := make(map[string]*color.Color, len(resp.Places))
	for i, place := range resp.Places {
		colorFor[place] = palette[i%len(palette)]
	}

	cellWidth := 12
	for _, place := range resp.Places {
		if len(place)+2 > cellWidth {
			cellWidth = len(place) + 2
		}
	}

	fmt.Fprintln(w, title(resp.StartPeriod, resp.EndPeriod))
	fmt.Fprintln(w)

	// Header row.
	fmt.Fprintf(w, "%5s", "")
	for _, day := range models.DaysOfWeek {
		fmt.Fprintf(w, " %-*s", cellWidth, day)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%5s %s\n", "", strings.Repeat("-", (cellWidth+1)*7))

	for hour := 0; hour < models.HoursPerDay; hour++ {
		fmt.Fprintf(w, "%02d:00", hour)
		for day := 0; day < 7; day++ {
			slot := resp.Schedule.Slot(day, hour)
			if !slot.Filled {
				fmt.Fprintf(w, " %-*s", cellWidth, ".")
				continue
			}
			cell := fmt.Sprintf("%-*s", cellWidth, slot.Place)
			fmt.Fprintf(w, " %s", colorFor[slot.Place].Sprint(cell))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%d places, %d visits\n", len(resp.Places), resp.VisitCount)
}

// title formats the reporting range like "Weekly Schedule (January 01, 2019 to
// June 30, 2019)", falling back to the raw strings if they are not dates.
func title(start, end string) string {
	if start == "" || end == "" {
		return "Weekly Schedule"
	}
	s, errS := time.Parse("2006-01-02", start)
	e, errE := time.Parse("2006-01-02", end)
	if errS != nil || errE != nil {
		return fmt.Sprintf("Weekly Schedule (%s to %s)", start, end)
	}
	return fmt.Sprintf("Weekly Schedule (%s to %s)", s.Format("January 02, 2006"), e.Format("January 02, 2006"))
}
