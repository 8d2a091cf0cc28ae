package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/tour-booking/tour-discovery-service/internal/adapter/http/response"
	"github.com/tour-booking/tour-discovery-service/internal/domain"
	"github.com/tour-booking/tour-discovery-service/internal/usecase"
)

// TourHandler handles HTTP requests for tour discovery endpoints.
type TourHandler struct {
	useCase usecase.TourDiscoveryUseCase
}

// NewTourHandler creates a new TourHandler with the given use case.
func NewTourHandler(uc usecase.TourDiscoveryUseCase) *TourHandler {
	return &TourHandler{
		useCase: uc,
	}
}

// ListTours handles GET /api/v1/tours
//
// @Summary List tours
// @Description Returns one page of published tours matching the filters, in the requested sort order
// @Tags tours
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Param limit query int false "Page size (1-50)" default(8)
// @Param search query string false "Free-text search over name, location, and summary"
// @Param sort query string false "Sort mode: popular, newest, price_asc, price_desc, rating" default(popular)
// @Param priceMin query number false "Minimum adult price"
// @Param priceMax query number false "Maximum adult price"
// @Param difficulty query string false "Difficulty filter: easy, moderate, challenging"
// @Param location query string false "Location substring filter"
// @Param duration query string false "Duration bucket, e.g. 1-3 or 8+"
// @Success 200 {object} SwaggerToursPageResponse
// @Failure 400 {object} response.Response "Validation error"
// @Failure 503 {object} response.Response "Catalog unavailable"
// @Router /api/v1/tours [get]
func (h *TourHandler) ListTours(c echo.Context) error {
	params := ListToursParams{
		Page:       c.QueryParam("page"),
		Limit:      c.QueryParam("limit"),
		Search:     c.QueryParam("search"),
		Sort:       c.QueryParam("sort"),
		PriceMin:   c.QueryParam("priceMin"),
		PriceMax:   c.QueryParam("priceMax"),
		Difficulty: c.QueryParam("difficulty"),
		Location:   c.QueryParam("location"),
		Duration:   c.QueryParam("duration"),
	}

	query, err := params.Parse()
	if err != nil {
		return h.handleValidationError(c, err)
	}

	page, err := h.useCase.ListTours(c.Request().Context(), query)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, response.Success(ToToursPageDTO(page)))
}

// FeaturedTours handles GET /api/v1/tours/featured
//
// @Summary List featured tours
// @Description Returns the highest-rated featured tours
// @Tags tours
// @Produce json
// @Param limit query int false "Shortlist size" default(4)
// @Success 200 {object} SwaggerFeaturedToursResponse
// @Failure 503 {object} response.Response "Catalog unavailable"
// @Router /api/v1/tours/featured [get]
func (h *TourHandler) FeaturedTours(c echo.Context) error {
	limit := parseFeaturedLimit(c.QueryParam("limit"))

	tours, err := h.useCase.FeaturedTours(c.Request().Context(), limit)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, response.Success(ToFeaturedToursDTO(tours)))
}

// Suggestions handles GET /api/v1/tours/suggestions
//
// @Summary Search suggestions
// @Description Returns mixed tour and destination suggestions for a partial query
// @Tags tours
// @Produce json
// @Param q query string true "Search query (minimum 2 characters)"
// @Param limit query int false "Maximum suggestions (1-10)" default(5)
// @Success 200 {object} SwaggerSuggestionsResponse
// @Failure 400 {object} response.Response "Validation error"
// @Failure 503 {object} response.Response "Catalog unavailable"
// @Router /api/v1/tours/suggestions [get]
func (h *TourHandler) Suggestions(c echo.Context) error {
	params := SuggestionsParams{
		Query: c.QueryParam("q"),
		Limit: c.QueryParam("limit"),
	}

	query, limit, err := params.Parse()
	if err != nil {
		return h.handleValidationError(c, err)
	}

	suggestions, err := h.useCase.Suggestions(c.Request().Context(), query, limit)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, response.Success(ToSuggestionsDTO(suggestions)))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *TourHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *TourHandler) handleError(c echo.Context, err error) error {
	// Check for invalid request (domain validation)
	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	// Check for context deadline exceeded (timeout)
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	// Check for context cancelled
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	// Check for catalog store failure
	var catalogErr *domain.CatalogError
	if errors.As(err, &catalogErr) {
		return response.ServiceUnavailable(c)
	}

	// Default to internal server error
	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *TourHandler) Health(c echo.Context) error {
	return response.Health(c)
}
