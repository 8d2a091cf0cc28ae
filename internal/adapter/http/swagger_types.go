// Package http provides swagger type definitions for API documentation.
// These types mirror the response envelopes but are defined here to help
// swag generate proper documentation.
package http

// SwaggerToursPageResponse represents the tour listing response for
// swagger documentation.
// @Description One page of tours with pagination metadata
type SwaggerToursPageResponse struct {
	// Success indicates whether the request was successful
	Success bool `json:"success" example:"true"`

	// Data contains the page of tours
	Data ToursPageDTO `json:"data"`
}

// SwaggerFeaturedToursResponse represents the featured listing response
// for swagger documentation.
// @Description Featured tours ordered by rating
type SwaggerFeaturedToursResponse struct {
	// Success indicates whether the request was successful
	Success bool `json:"success" example:"true"`

	// Data contains the featured tours
	Data FeaturedToursDTO `json:"data"`
}

// SwaggerSuggestionsResponse represents the suggestion response for
// swagger documentation.
// @Description Mixed tour and destination suggestions
type SwaggerSuggestionsResponse struct {
	// Success indicates whether the request was successful
	Success bool `json:"success" example:"true"`

	// Data contains the suggestions
	Data SuggestionsDTO `json:"data"`
}
