package schedule

import (
	"sort"
	"time"

	"github.com/Josh-Abbott/timeline-schedule-go/internal/models"
)

// DefaultMaxNameLength is the default display truncation for place names.
const DefaultMaxNameLength = 10

// counter tallies display names while remembering the order in which distinct
// names first appeared, so ties between equally frequent names resolve to the
// first-seen name rather than to map iteration order.
type counter struct {
	counts map[string]int
	order  map[string]int
	next   int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int), order: make(map[string]int)}
}

func (c *counter) add(name string) {
	if _, ok := c.counts[name]; !ok {
		c.order[name] = c.next
		c.next++
	}
	c.counts[name]++
}

// mode returns the most frequent name and whether any name was tallied.
// Ties resolve to the name that first appeared in the input.
func (c *counter) mode() (string, bool) {
	best, ok := "", false
	for name, n := range c.counts {
		if !ok || n > c.counts[best] || (n == c.counts[best] && c.order[name] < c.order[best]) {
			best, ok = name, true
		}
	}
	return best, ok
}

// ranked returns the tallied names ordered by count descending, ties by first
// appearance.
func (c *counter) ranked() []string {
	names := make([]string, 0, len(c.counts))
	for name := range c.counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if c.counts[names[i]] != c.counts[names[j]] {
			return c.counts[names[i]] > c.counts[names[j]]
		}
		return c.order[names[i]] < c.order[names[j]]
	})
	return names
}

// dayIndex maps a UTC weekday onto the grid's Monday-first day axis.
func dayIndex(t time.Time) int {
	// time.Weekday is Sunday-based.
	return (int(t.Weekday()) + 6) % 7
}

// BuildWeekly collapses time-windowed visits into the full 7x24 grid. Each
// slot is filled by a two-tier policy:
//
//  1. If any visit at exactly (day, hour) carries a display name, the slot
//     takes the most frequent such name.
//  2. Otherwise the slot falls back to the most frequent display name across
//     all visits sharing that hour on any day. This also covers slots whose
//     only visits are unnamed.
//
// A slot with no hourly candidates either is marked explicitly empty; there is
// no day-level or global fallback beyond the hour table. Unnamed visits never
// count toward either tier but stay in the working set. Ties in both tiers
// resolve to the first name seen in input order.
func BuildWeekly(visits []Visit, maxNameLen int) *models.WeeklySchedule {
	if maxNameLen <= 0 {
		maxNameLen = DefaultMaxNameLength
	}

	type slotVisit struct {
		display *string
	}
	var slots [7][models.HoursPerDay][]slotVisit

	// Hour-wide frequency tables, independent of day, computed once for the
	// fallback tier.
	var hourly [models.HoursPerDay]*counter
	for h := range hourly {
		hourly[h] = newCounter()
	}

	for _, v := range visits {
		day, hour := dayIndex(v.Start), v.Start.Hour()
		display := TruncateName(v.PlaceName, maxNameLen)
		slots[day][hour] = append(slots[day][hour], slotVisit{display: display})
		if display != nil {
			hourly[hour].add(*display)
		}
	}

	ws := &models.WeeklySchedule{}
	for day := 0; day < 7; day++ {
		for hour := 0; hour < models.HoursPerDay; hour++ {
			exact := newCounter()
			for _, sv := range slots[day][hour] {
				if sv.display != nil {
					exact.add(*sv.display)
				}
			}
			if name, ok := exact.mode(); ok {
				ws.SetSlot(day, hour, name)
				continue
			}
			if ranked := hourly[hour].ranked(); len(ranked) > 0 {
				ws.SetSlot(day, hour, ranked[0])
				continue
			}
			ws.SetEmpty(day, hour)
		}
	}
	return ws
}
