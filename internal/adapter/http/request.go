// Package http provides the HTTP handler layer for the tour discovery API.
// It handles query parsing, validation, and response formatting.
package http

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tour-booking/tour-discovery-service/internal/domain"
)

// ListToursParams holds the raw query-string parameters of a tour listing
// request before parsing.
type ListToursParams struct {
	Page       string
	Limit      string
	Search     string
	Sort       string
	PriceMin   string
	PriceMax   string
	Difficulty string
	Location   string
	Duration   string
}

// SuggestionsParams holds the raw query-string parameters of a suggestion
// request.
type SuggestionsParams struct {
	Query string
	Limit string
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add appends a field error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors returns true if any validation errors were collected.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a field->message map for responses.
func (v *ValidationErrors) ToMap() map[string]string {
	m := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		m[e.Field] = e.Message
	}
	return m
}

// Parse converts the raw parameters into a typed listing query,
// collecting every field error instead of stopping at the first.
//
// Typed fields (page, limit, prices, difficulty) reject malformed input;
// vocabulary tokens (sort, duration) degrade leniently further down and
// never produce an error here.
func (p *ListToursParams) Parse() (domain.ListToursQuery, error) {
	errs := &ValidationErrors{}
	query := domain.ListToursQuery{
		Search:   p.Search,
		Sort:     domain.ParseSortOption(p.Sort),
		Location: strings.TrimSpace(p.Location),
		Duration: strings.TrimSpace(p.Duration),
	}

	query.Page = parseIntParam(errs, "page", p.Page, domain.DefaultPage)
	if query.Page < 1 && p.Page != "" {
		errs.Add("page", "must be a positive integer")
	}

	query.Limit = parseIntParam(errs, "limit", p.Limit, domain.DefaultLimit)
	if p.Limit != "" && (query.Limit < 1 || query.Limit > domain.MaxLimit) {
		errs.Add("limit", fmt.Sprintf("must be between 1 and %d", domain.MaxLimit))
	}

	query.PriceMin = parseFloatParam(errs, "priceMin", p.PriceMin)
	query.PriceMax = parseFloatParam(errs, "priceMax", p.PriceMax)

	if p.Difficulty != "" {
		difficulty, ok := domain.ParseDifficulty(p.Difficulty)
		if !ok {
			errs.Add("difficulty", "must be one of: easy, moderate, challenging")
		} else {
			query.Difficulty = difficulty
		}
	}

	if errs.HasErrors() {
		return domain.ListToursQuery{}, errs
	}
	return query, nil
}

// Parse converts the raw suggestion parameters into a query string and
// limit.
func (p *SuggestionsParams) Parse() (string, int, error) {
	errs := &ValidationErrors{}

	query := strings.TrimSpace(p.Query)
	if len(query) < domain.MinSuggestionQueryLength {
		errs.Add("q", fmt.Sprintf("must be at least %d characters", domain.MinSuggestionQueryLength))
	}

	limit := parseIntParam(errs, "limit", p.Limit, domain.DefaultSuggestionLimit)
	if p.Limit != "" && (limit < 1 || limit > domain.MaxSuggestionLimit) {
		errs.Add("limit", fmt.Sprintf("must be between 1 and %d", domain.MaxSuggestionLimit))
	}

	if errs.HasErrors() {
		return "", 0, errs
	}
	return query, limit, nil
}

// parseIntParam parses an integer parameter, recording an error for
// non-numeric input and returning the fallback for absent input.
func parseIntParam(errs *ValidationErrors, field, raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		errs.Add(field, "must be an integer")
		return fallback
	}
	return value
}

// parseFloatParam parses an optional non-negative float parameter.
func parseFloatParam(errs *ValidationErrors, field, raw string) *float64 {
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		errs.Add(field, "must be a number")
		return nil
	}
	if value < 0 {
		errs.Add(field, "must be non-negative")
		return nil
	}
	return &value
}

// parseFeaturedLimit parses the optional featured limit. Malformed or
// out-of-range values fall back to the default shortlist size.
func parseFeaturedLimit(raw string) int {
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 || value > domain.MaxLimit {
		return 0
	}
	return value
}
