package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Josh-Abbott/timeline-schedule-go/internal/models"
	"github.com/Josh-Abbott/timeline-schedule-go/internal/repository"
	"github.com/Josh-Abbott/timeline-schedule-go/internal/schedule"
)

// ErrBadPeriod reports an unparseable or inverted reporting window.
var ErrBadPeriod = errors.New("invalid reporting period")

// ScheduleService builds weekly schedules from stored place visits.
type ScheduleService struct {
	visits *repository.VisitRepository
}

// NewScheduleService creates a new schedule service.
func NewScheduleService(visits *repository.VisitRepository) *ScheduleService {
	return &ScheduleService{visits: visits}
}

// WeeklySchedule loads the stored visits, restricts them to the inclusive
// [startPeriod, endPeriod] reporting window (YYYY-MM-DD, compared in UTC), and
// aggregates the survivors into the 7x24 grid. An empty window surfaces as
// schedule.ErrNoVisits; callers report it as a no-data condition rather than
// rendering a blank grid.
func (s *ScheduleService) WeeklySchedule(startPeriod, endPeriod string, maxNameLen int) (*models.ScheduleResponse, error) {
	start, end, err := parsePeriods(startPeriod, endPeriod)
	if err != nil {
		return nil, err
	}

	stored, err := s.visits.ListForSchedule()
	if err != nil {
		return nil, err
	}

	windowed, err := schedule.SelectWindow(stored, start, end)
	if err != nil {
		return nil, err
	}

	grid := schedule.BuildWeekly(windowed, maxNameLen)
	return &models.ScheduleResponse{
		Schedule:    grid,
		Places:      grid.DistinctPlaces(),
		StartPeriod: startPeriod,
		EndPeriod:   endPeriod,
		VisitCount:  len(windowed),
	}, nil
}

func parsePeriods(startPeriod, endPeriod string) (time.Time, time.Time, error) {
	start, err := schedule.ParsePeriod(startPeriod)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start %q", ErrBadPeriod, startPeriod)
	}
	end, err := schedule.ParsePeriod(endPeriod)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end %q", ErrBadPeriod, endPeriod)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end %s before start %s", ErrBadPeriod, endPeriod, startPeriod)
	}
	return start, end, nil
}
