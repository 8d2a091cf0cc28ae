// Package integration provides helpers and integration tests for the tour
// discovery system. Integration tests verify that components work together
// correctly, including HTTP handlers, the use case, and the mock catalog.
package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/tour-booking/tour-discovery-service/internal/adapter/http"
	"github.com/tour-booking/tour-discovery-service/internal/adapter/http/response"
	"github.com/tour-booking/tour-discovery-service/internal/domain"
	"github.com/tour-booking/tour-discovery-service/internal/infrastructure/timeutil"
	"github.com/tour-booking/tour-discovery-service/internal/usecase"
)

// FixedNow is the deterministic "now" used by integration tests so
// next-available-date lookups are reproducible.
var FixedNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.TourHandler
}

// NewTestServer creates a new test server with the given use case.
func NewTestServer(uc usecase.TourDiscoveryUseCase) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewTourHandler(uc)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Get executes a GET request against the test server.
func (ts *TestServer) Get(path string) Response {
	httpReq := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// ListRequest makes a tour listing request with the given query parameters.
func (ts *TestServer) ListRequest(params url.Values) Response {
	path := "/api/v1/tours"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	return ts.Get(path)
}

// FeaturedRequest makes a featured tours request.
func (ts *TestServer) FeaturedRequest(limit int) Response {
	path := "/api/v1/tours/featured"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	return ts.Get(path)
}

// SuggestionsRequest makes a search suggestions request.
func (ts *TestServer) SuggestionsRequest(query string, limit int) Response {
	params := url.Values{}
	params.Set("q", query)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	return ts.Get("/api/v1/tours/suggestions?" + params.Encode())
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Get("/health")
}

// envelope mirrors the response envelope with a raw data payload so tests
// can decode into the endpoint-specific DTO.
type envelope struct {
	Success bool                  `json:"success"`
	Data    json.RawMessage       `json:"data"`
	Error   *response.ErrorDetail `json:"error"`
}

// ParseToursPage parses the response body as a paginated tour listing.
func (r *Response) ParseToursPage() (*httpAdapter.ToursPageDTO, error) {
	var env envelope
	if err := json.Unmarshal(r.Body, &env); err != nil {
		return nil, err
	}
	var page httpAdapter.ToursPageDTO
	if err := json.Unmarshal(env.Data, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ParseFeatured parses the response body as a featured shortlist.
func (r *Response) ParseFeatured() (*httpAdapter.FeaturedToursDTO, error) {
	var env envelope
	if err := json.Unmarshal(r.Body, &env); err != nil {
		return nil, err
	}
	var featured httpAdapter.FeaturedToursDTO
	if err := json.Unmarshal(env.Data, &featured); err != nil {
		return nil, err
	}
	return &featured, nil
}

// ParseSuggestions parses the response body as a suggestion listing.
func (r *Response) ParseSuggestions() (*httpAdapter.SuggestionsDTO, error) {
	var env envelope
	if err := json.Unmarshal(r.Body, &env); err != nil {
		return nil, err
	}
	var suggestions httpAdapter.SuggestionsDTO
	if err := json.Unmarshal(env.Data, &suggestions); err != nil {
		return nil, err
	}
	return &suggestions, nil
}

// ParseError parses the response body and returns the error detail.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	var env envelope
	if err := json.Unmarshal(r.Body, &env); err != nil {
		return nil, err
	}
	return env.Error, nil
}

// CreateUseCase creates a use case over the given catalog with a fixed clock.
func CreateUseCase(catalog domain.TourCatalog) usecase.TourDiscoveryUseCase {
	return usecase.NewTourDiscoveryUseCase(catalog, &usecase.Config{
		Clock: timeutil.NewMockClock(FixedNow),
	})
}

// CreateUseCaseWithConfig creates a use case with custom configuration.
func CreateUseCaseWithConfig(catalog domain.TourCatalog, config *usecase.Config) usecase.TourDiscoveryUseCase {
	return usecase.NewTourDiscoveryUseCase(catalog, config)
}

// SampleTours returns a fixed set of published tours covering the filter
// and sort axes: prices, difficulties, locations, ratings, and durations.
func SampleTours() []domain.Tour {
	return []domain.Tour{
		{
			ID:            1,
			Name:          "Bali Beach Escape",
			Slug:          "bali-beach-escape",
			Summary:       "Relaxed coastal days around Seminyak and Uluwatu",
			Location:      "Bali, Indonesia",
			DurationDays:  4,
			PriceAdult:    350,
			PriceChild:    200,
			Difficulty:    domain.DifficultyEasy,
			RatingAverage: 4.6,
			ReviewCount:   210,
			Status:        domain.StatusPublished,
			Featured:      true,
			CreatedAt:     time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            2,
			Name:          "Mount Bromo Sunrise Trek",
			Slug:          "mount-bromo-sunrise-trek",
			Summary:       "Overnight trek to the crater rim for sunrise",
			Location:      "East Java, Indonesia",
			DurationDays:  2,
			PriceAdult:    180,
			PriceChild:    120,
			Difficulty:    domain.DifficultyModerate,
			RatingAverage: 4.8,
			ReviewCount:   340,
			Status:        domain.StatusPublished,
			Featured:      true,
			CreatedAt:     time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            3,
			Name:          "Komodo Island Expedition",
			Slug:          "komodo-island-expedition",
			Summary:       "Liveaboard sailing through the Komodo archipelago",
			Location:      "Flores, Indonesia",
			DurationDays:  6,
			PriceAdult:    950,
			PriceChild:    600,
			Difficulty:    domain.DifficultyChallenging,
			RatingAverage: 4.9,
			ReviewCount:   95,
			Status:        domain.StatusPublished,
			Featured:      false,
			CreatedAt:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            4,
			Name:          "Ubud Rice Terrace Walk",
			Slug:          "ubud-rice-terrace-walk",
			Summary:       "Half-day guided walk through Tegalalang",
			Location:      "Bali, Indonesia",
			DurationDays:  1,
			PriceAdult:    45,
			PriceChild:    25,
			Difficulty:    domain.DifficultyEasy,
			RatingAverage: 4.2,
			ReviewCount:   520,
			Status:        domain.StatusPublished,
			Featured:      false,
			CreatedAt:     time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            5,
			Name:          "Raja Ampat Dive Safari",
			Slug:          "raja-ampat-dive-safari",
			Summary:       "Ten days of diving in the coral triangle",
			Location:      "West Papua, Indonesia",
			DurationDays:  10,
			PriceAdult:    2400,
			PriceChild:    1800,
			Difficulty:    domain.DifficultyChallenging,
			RatingAverage: 5.0,
			ReviewCount:   48,
			Status:        domain.StatusPublished,
			Featured:      true,
			CreatedAt:     time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            6,
			Name:          "Toraja Highlands Culture Tour",
			Slug:          "toraja-highlands-culture-tour",
			Location:      "South Sulawesi, Indonesia",
			DurationDays:  5,
			PriceAdult:    420,
			PriceChild:    260,
			Difficulty:    domain.DifficultyModerate,
			RatingAverage: 4.4,
			ReviewCount:   60,
			Status:        domain.StatusDraft,
			CreatedAt:     time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            7,
			Name:          "Bali Volcano Cycling",
			Slug:          "bali-volcano-cycling",
			Location:      "Bali, Indonesia",
			DurationDays:  1,
			PriceAdult:    60,
			PriceChild:    40,
			Difficulty:    domain.DifficultyModerate,
			RatingAverage: 4.1,
			ReviewCount:   130,
			Status:        domain.StatusPublished,
			Featured:      true,
			CreatedAt:     time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
			DeletedAt:     ptrTime(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)),
		},
	}
}

func ptrTime(t time.Time) *time.Time {
	return &t
}

// SampleSchedules returns departures for the sample tours relative to
// FixedNow: tour 1 has a past and a future departure, tour 2 only a
// sold-out one, tour 3 two future departures.
func SampleSchedules() []domain.Schedule {
	return []domain.Schedule{
		{ID: 10, TourID: 1, StartDate: FixedNow.AddDate(0, 0, -7), Capacity: 12, Status: domain.ScheduleOpen},
		{ID: 11, TourID: 1, StartDate: FixedNow.AddDate(0, 0, 14), Capacity: 12, Status: domain.ScheduleOpen},
		{ID: 12, TourID: 2, StartDate: FixedNow.AddDate(0, 0, 3), Capacity: 8, Status: domain.ScheduleSoldOut},
		{ID: 13, TourID: 3, StartDate: FixedNow.AddDate(0, 1, 0), Capacity: 16, Status: domain.ScheduleOpen},
		{ID: 14, TourID: 3, StartDate: FixedNow.AddDate(0, 0, 21), Capacity: 16, Status: domain.ScheduleOpen},
	}
}
