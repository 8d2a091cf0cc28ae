// Package domain contains the core business entities and rules for the tour
// discovery engine. These types are store-agnostic and form the foundation
// upon which all other components are built.
package domain

import (
	"strings"
	"time"
)

// TourStatus is the lifecycle state of a tour listing.
type TourStatus string

// Tour lifecycle states.
const (
	StatusDraft     TourStatus = "DRAFT"
	StatusPublished TourStatus = "PUBLISHED"
	StatusArchived  TourStatus = "ARCHIVED"
)

// Difficulty classifies how demanding a tour is.
// An empty value means the tour is unclassified.
type Difficulty string

// Available difficulty levels.
const (
	DifficultyEasy        Difficulty = "EASY"
	DifficultyModerate    Difficulty = "MODERATE"
	DifficultyChallenging Difficulty = "CHALLENGING"
)

// ParseDifficulty converts a raw token to a Difficulty, case-insensitively.
// The second return value reports whether the token named a known level.
// Unlike duration and sort tokens, difficulty is a narrow enum users may
// hand-type via raw API calls, so callers must reject unknown tokens.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(strings.ToUpper(s)) {
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyModerate:
		return DifficultyModerate, true
	case DifficultyChallenging:
		return DifficultyChallenging, true
	default:
		return "", false
	}
}

// ScheduleStatus is the booking state of a single tour departure.
type ScheduleStatus string

// Schedule states.
const (
	ScheduleOpen    ScheduleStatus = "OPEN"
	ScheduleSoldOut ScheduleStatus = "SOLD_OUT"
	ScheduleClosed  ScheduleStatus = "CLOSED"
)

// Tour represents a single tour listing in the catalog.
// The discovery engine reads tours; it never creates or mutates them.
type Tour struct {
	// ID is the catalog identifier of the tour
	ID int64 `json:"id"`

	// Name is the display name of the tour
	Name string `json:"name"`

	// Slug is the unique URL-friendly identifier
	Slug string `json:"slug"`

	// Summary is a short description shown on listing cards
	Summary string `json:"summary,omitempty"`

	// CoverImage is a reference to the tour's cover image
	CoverImage string `json:"coverImage,omitempty"`

	// Location is a free-form location string (e.g., "Ubud, Bali")
	Location string `json:"location,omitempty"`

	// DurationDays is the tour length in whole days (>= 1)
	DurationDays int `json:"durationDays"`

	// PriceAdult is the per-adult price; the only price that filters apply to
	PriceAdult float64 `json:"priceAdult"`

	// PriceChild is the per-child price
	PriceChild float64 `json:"priceChild"`

	// Difficulty is the optional difficulty classification
	Difficulty Difficulty `json:"difficulty,omitempty"`

	// RatingAverage is the aggregated review rating (0-5)
	RatingAverage float64 `json:"ratingAverage"`

	// ReviewCount is the number of reviews behind RatingAverage
	ReviewCount int `json:"reviewCount"`

	// Status is the lifecycle state; only published tours are discoverable
	Status TourStatus `json:"status"`

	// Featured marks the tour for homepage highlighting
	Featured bool `json:"featured"`

	// CreatedAt orders tours under the "newest" sort mode
	CreatedAt time.Time `json:"createdAt"`

	// DeletedAt is the soft-delete marker; set means logically removed
	DeletedAt *time.Time `json:"-"`

	// NextAvailableDate is the start of the earliest open future departure.
	// It is computed and attached by the discovery service, not stored.
	NextAvailableDate *time.Time `json:"nextAvailableDate,omitempty"`
}

// Visible reports whether the tour may appear in discovery results:
// published and not soft-deleted.
func (t *Tour) Visible() bool {
	return t.Status == StatusPublished && t.DeletedAt == nil
}

// Schedule represents a dated departure of a tour with limited capacity.
// Discovery only reads schedules to surface the next available date;
// capacity mutation belongs to booking.
type Schedule struct {
	// ID is the catalog identifier of the schedule
	ID int64 `json:"id"`

	// TourID references the tour this departure belongs to
	TourID int64 `json:"tourId"`

	// StartDate is when the departure begins
	StartDate time.Time `json:"startDate"`

	// Capacity is the number of bookable seats
	Capacity int `json:"capacity"`

	// Status is the booking state of this departure
	Status ScheduleStatus `json:"status"`
}

// AvailableAt reports whether this departure counts as a "next available
// date" candidate at the given instant: open and not yet started.
func (s *Schedule) AvailableAt(now time.Time) bool {
	return s.Status == ScheduleOpen && !s.StartDate.Before(now)
}
