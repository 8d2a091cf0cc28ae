package integration

import (
	"net/http"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tour-booking/tour-discovery-service/test/mock"
)

// TestConcurrent_ListRequests tests that concurrent identical listing
// requests return identical results without interference. Each request
// runs its fetch and count legs concurrently against the shared catalog.
func TestConcurrent_ListRequests(t *testing.T) {
	// Arrange
	catalog := mock.NewCatalog().WithTours(SampleTours()).WithSchedules(SampleSchedules())
	ts := NewTestServer(CreateUseCase(catalog))

	params := url.Values{}
	params.Set("sort", "price_asc")

	numRequests := 10
	var wg sync.WaitGroup
	results := make([]Response, numRequests)

	// Act - Fire concurrent requests
	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = ts.ListRequest(params)
		}(i)
	}

	wg.Wait()

	// Assert - Every request sees the same page
	for i := 0; i < numRequests; i++ {
		assert.Equal(t, http.StatusOK, results[i].Code, "request %d should succeed", i)

		page, err := results[i].ParseToursPage()
		require.NoError(t, err)
		require.Len(t, page.Tours, 5, "request %d should see all tours", i)
		assert.Equal(t, int64(4), page.Tours[0].ID, "request %d order differs", i)
		assert.Equal(t, int64(5), page.Pagination.Total)
	}

	// Each listing triggers one find and one count
	assert.Equal(t, numRequests, catalog.FindCalls())
	assert.Equal(t, numRequests, catalog.CountCalls())
}

// TestConcurrent_MixedEndpoints tests that listings, featured lookups,
// and suggestions can run in parallel against one server.
func TestConcurrent_MixedEndpoints(t *testing.T) {
	// Arrange
	catalog := mock.NewCatalog().WithTours(SampleTours()).WithSchedules(SampleSchedules())
	ts := NewTestServer(CreateUseCase(catalog))

	var wg sync.WaitGroup
	numRounds := 5
	listResults := make([]Response, numRounds)
	featuredResults := make([]Response, numRounds)
	suggestionResults := make([]Response, numRounds)

	// Act
	for i := 0; i < numRounds; i++ {
		wg.Add(3)
		go func(idx int) {
			defer wg.Done()
			listResults[idx] = ts.ListRequest(nil)
		}(i)
		go func(idx int) {
			defer wg.Done()
			featuredResults[idx] = ts.FeaturedRequest(0)
		}(i)
		go func(idx int) {
			defer wg.Done()
			suggestionResults[idx] = ts.SuggestionsRequest("bali", 0)
		}(i)
	}

	wg.Wait()

	// Assert
	for i := 0; i < numRounds; i++ {
		assert.Equal(t, http.StatusOK, listResults[i].Code)
		assert.Equal(t, http.StatusOK, featuredResults[i].Code)
		assert.Equal(t, http.StatusOK, suggestionResults[i].Code)

		featured, err := featuredResults[i].ParseFeatured()
		require.NoError(t, err)
		assert.Len(t, featured.Tours, 3)

		suggestions, err := suggestionResults[i].ParseSuggestions()
		require.NoError(t, err)
		assert.Len(t, suggestions.Suggestions, 3)
	}
}
