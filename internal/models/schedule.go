package models

// DaysOfWeek lists the grid's day order, Monday first.
var DaysOfWeek = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// HoursPerDay is the number of hour rows in the weekly grid.
const HoursPerDay = 24

// ScheduleSlot holds the representative place for one (day, hour) cell.
// Filled distinguishes an explicit empty cell from a populated one; a slot is
// never left in an unset state.
type ScheduleSlot struct {
	Place  string `json:"place,omitempty"`
	Filled bool   `json:"filled"`
}

// WeeklySchedule is the complete 7x24 grid of representative places,
// indexed [day][hour] with day 0 = Monday.
type WeeklySchedule struct {
	Slots [7][HoursPerDay]ScheduleSlot `json:"slots"`
}

// Slot returns the cell at (day, hour).
func (w *WeeklySchedule) Slot(day, hour int) ScheduleSlot {
	return w.Slots[day][hour]
}

// SetSlot fills the cell at (day, hour) with a place label.
func (w *WeeklySchedule) SetSlot(day, hour int, place string) {
	w.Slots[day][hour] = ScheduleSlot{Place: place, Filled: true}
}

// SetEmpty marks the cell at (day, hour) as explicitly empty.
func (w *WeeklySchedule) SetEmpty(day, hour int) {
	w.Slots[day][hour] = ScheduleSlot{Filled: false}
}

// DistinctPlaces returns the distinct non-empty labels in the grid, ordered by
// first appearance scanning days Monday..Sunday and hours 0..23. The renderer
// uses this ordering for its color map.
func (w *WeeklySchedule) DistinctPlaces() []string {
	seen := make(map[string]bool)
	var places []string
	for day := 0; day < 7; day++ {
		for hour := 0; hour < HoursPerDay; hour++ {
			s := w.Slots[day][hour]
			if !s.Filled || seen[s.Place] {
				continue
			}
			seen[s.Place] = true
			places = append(places, s.Place)
		}
	}
	return places
}

// ScheduleResponse represents the weekly schedule API payload.
type ScheduleResponse struct {
	Schedule    *WeeklySchedule `json:"schedule"`
	Places      []string        `json:"places"`
	StartPeriod string          `json:"startPeriod"`
	EndPeriod   string          `json:"endPeriod"`
	VisitCount  int             `json:"visitCount"`
}
