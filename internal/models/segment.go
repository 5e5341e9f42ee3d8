package models

// ActivitySegment represents a movement between two locations over an interval.
// Fields absent from the source export stay nil; they are never coerced to zero.
type ActivitySegment struct {
	ID             int64    `json:"id" db:"id"`
	StartTimestamp *string  `json:"startTimestamp,omitempty" db:"start_timestamp"` // verbatim ISO 8601 text
	EndTimestamp   *string  `json:"endTimestamp,omitempty" db:"end_timestamp"`
	StartLatitude  *float64 `json:"startLatitude,omitempty" db:"start_latitude"`
	StartLongitude *float64 `json:"startLongitude,omitempty" db:"start_longitude"`
	EndLatitude    *float64 `json:"endLatitude,omitempty" db:"end_latitude"`
	EndLongitude   *float64 `json:"endLongitude,omitempty" db:"end_longitude"`
	DistanceMeters *float64 `json:"distanceMeters,omitempty" db:"distance_meters"`
	Confidence     string   `json:"confidence" db:"confidence"` // upper-cased, "UNKNOWN" when absent
	TravelMode     *string  `json:"travelMode,omitempty" db:"travel_mode"`
}

// SegmentsResponse represents a paginated response of activity segments.
type SegmentsResponse struct {
	Data       []ActivitySegment `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
}

// SegmentFilter represents filter parameters for querying activity segments.
type SegmentFilter struct {
	Confidence string `form:"confidence"`
	TravelMode string `form:"travelMode"`
	Page       int    `form:"page"`
	PageSize   int    `form:"pageSize"`
}
