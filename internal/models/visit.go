package models

// PlaceVisit represents a stay at one location over an interval.
// VisitConfidence stays nil when the export omits it; the confidence filter
// treats nil as 0 for its comparison, but storage keeps the NULL.
type PlaceVisit struct {
	ID              int64    `json:"id" db:"id"`
	PlaceName       *string  `json:"placeName,omitempty" db:"place_name"`
	PlaceID         *string  `json:"placeId,omitempty" db:"place_id"`
	Latitude        *float64 `json:"latitude,omitempty" db:"latitude"`
	Longitude       *float64 `json:"longitude,omitempty" db:"longitude"`
	Address         *string  `json:"address,omitempty" db:"address"`
	StartTimestamp  *string  `json:"startTimestamp,omitempty" db:"start_timestamp"`
	EndTimestamp    *string  `json:"endTimestamp,omitempty" db:"end_timestamp"`
	VisitConfidence *float64 `json:"visitConfidence,omitempty" db:"visit_confidence"`
}

// VisitsResponse represents a paginated response of place visits.
type VisitsResponse struct {
	Data       []PlaceVisit `json:"data"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"pageSize"`
	TotalPages int          `json:"totalPages"`
}

// VisitFilter represents filter parameters for querying place visits.
type VisitFilter struct {
	PlaceName     string  `form:"placeName"`
	PlaceID       string  `form:"placeId"`
	MinConfidence float64 `form:"minConfidence"`
	Page          int     `form:"page"`
	PageSize      int     `form:"pageSize"`
}
