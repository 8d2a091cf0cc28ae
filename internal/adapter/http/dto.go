package http

import (
	"strings"
	"time"

	"github.com/tour-booking/tour-discovery-service/internal/domain"
)

// TourItemDTO is the wire shape of a tour in listing responses.
type TourItemDTO struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Slug              string  `json:"slug"`
	Summary           string  `json:"summary,omitempty"`
	CoverImage        string  `json:"coverImage,omitempty"`
	Location          string  `json:"location,omitempty"`
	DurationDays      int     `json:"durationDays"`
	PriceAdult        float64 `json:"priceAdult"`
	PriceChild        float64 `json:"priceChild"`
	Difficulty        string  `json:"difficulty,omitempty"`
	RatingAverage     float64 `json:"ratingAverage"`
	ReviewCount       int     `json:"reviewCount"`
	Featured          bool    `json:"featured"`
	NextAvailableDate string  `json:"nextAvailableDate,omitempty"`
}

// PaginationDTO is the wire shape of pagination metadata.
type PaginationDTO struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// ToursPageDTO is the wire shape of a paginated tour listing.
type ToursPageDTO struct {
	Tours      []TourItemDTO `json:"tours"`
	Pagination PaginationDTO `json:"pagination"`
}

// FeaturedToursDTO is the wire shape of the featured listing.
type FeaturedToursDTO struct {
	Tours []TourItemDTO `json:"tours"`
}

// SuggestionDTO is the wire shape of a single search suggestion.
type SuggestionDTO struct {
	Type string `json:"type"`
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// SuggestionsDTO is the wire shape of the suggestion listing.
type SuggestionsDTO struct {
	Suggestions []SuggestionDTO `json:"suggestions"`
}

// ToTourItemDTO converts a domain tour to its wire shape. Difficulty is
// lower-cased on the wire; dates are RFC3339.
func ToTourItemDTO(tour domain.Tour) TourItemDTO {
	dto := TourItemDTO{
		ID:            tour.ID,
		Name:          tour.Name,
		Slug:          tour.Slug,
		Summary:       tour.Summary,
		CoverImage:    tour.CoverImage,
		Location:      tour.Location,
		DurationDays:  tour.DurationDays,
		PriceAdult:    tour.PriceAdult,
		PriceChild:    tour.PriceChild,
		Difficulty:    strings.ToLower(string(tour.Difficulty)),
		RatingAverage: tour.RatingAverage,
		ReviewCount:   tour.ReviewCount,
		Featured:      tour.Featured,
	}
	if tour.NextAvailableDate != nil {
		dto.NextAvailableDate = tour.NextAvailableDate.Format(time.RFC3339)
	}
	return dto
}

// ToToursPageDTO converts a domain tour page to its wire shape.
func ToToursPageDTO(page *domain.TourPage) ToursPageDTO {
	tours := make([]TourItemDTO, len(page.Tours))
	for i, tour := range page.Tours {
		tours[i] = ToTourItemDTO(tour)
	}
	return ToursPageDTO{
		Tours: tours,
		Pagination: PaginationDTO{
			Page:       page.Pagination.Page,
			Limit:      page.Pagination.Limit,
			Total:      page.Pagination.Total,
			TotalPages: page.Pagination.TotalPages,
			HasNext:    page.Pagination.HasNext,
			HasPrev:    page.Pagination.HasPrev,
		},
	}
}

// ToFeaturedToursDTO converts the featured shortlist to its wire shape.
func ToFeaturedToursDTO(tours []domain.Tour) FeaturedToursDTO {
	items := make([]TourItemDTO, len(tours))
	for i, tour := range tours {
		items[i] = ToTourItemDTO(tour)
	}
	return FeaturedToursDTO{Tours: items}
}

// ToSuggestionsDTO converts suggestions to their wire shape.
func ToSuggestionsDTO(suggestions []domain.Suggestion) SuggestionsDTO {
	items := make([]SuggestionDTO, len(suggestions))
	for i, s := range suggestions {
		items[i] = SuggestionDTO{
			Type: string(s.Type),
			ID:   s.ID,
			Name: s.Name,
			Slug: s.Slug,
		}
	}
	return SuggestionsDTO{Suggestions: items}
}
