package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibedine/api-go/types"
)

func newTestClient(baseURL string) *Client {
	c := NewClient("test-key")
	c.BaseURL = baseURL
	return c
}

func searchPage(n int, nextToken string) types.TextSearchResponse {
	resp := types.TextSearchResponse{NextPageToken: nextToken}
	for i := 0; i < n; i++ {
		resp.Places = append(resp.Places, types.Place{ID: fmt.Sprintf("place-%d", i)})
	}
	return resp
}

func TestSearchRestaurants_FetchesAtMostThreePages(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		// Always hand back a continuation token; the client must stop anyway.
		json.NewEncoder(w).Encode(searchPage(20, "more"))
	}))
	defer ts.Close()

	got, err := newTestClient(ts.URL).SearchRestaurants(context.Background(), types.CityMumbai, 50)

	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Len(t, got, 50)
}

func TestSearchRestaurants_StopsWhenTokenMissing(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		json.NewEncoder(w).Encode(searchPage(5, ""))
	}))
	defer ts.Close()

	got, err := newTestClient(ts.URL).SearchRestaurants(context.Background(), types.CityDelhi, 50)

	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Len(t, got, 5)
}

func TestSearchRestaurants_StopsAtMaxResults(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		json.NewEncoder(w).Encode(searchPage(20, "more"))
	}))
	defer ts.Close()

	got, err := newTestClient(ts.URL).SearchRestaurants(context.Background(), types.CityBangalore, 30)

	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Len(t, got, 30)
}

func TestSearchCity_SendsCredentialAndFieldMask(t *testing.T) {
	var gotReq types.TextSearchRequest
	var gotKey, gotMask, gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-Goog-Api-Key")
		gotMask = r.Header.Get("X-Goog-FieldMask")
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotReq)
		json.NewEncoder(w).Encode(searchPage(1, ""))
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).SearchCity(context.Background(), types.CityMumbai, "page-2")

	require.NoError(t, err)
	assert.Equal(t, "/v1/places:searchText", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Contains(t, gotMask, "places.id")
	assert.Contains(t, gotMask, "nextPageToken")
	assert.Equal(t, "best restaurants in Mumbai, India", gotReq.TextQuery)
	assert.Equal(t, "en", gotReq.LanguageCode)
	assert.Equal(t, 20, gotReq.PageSize)
	assert.Equal(t, "page-2", gotReq.PageToken)
}

func TestSearchCity_UpstreamErrorCarriesStatusAndBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error": "quota exceeded"}`)
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).SearchCity(context.Background(), types.CityMumbai, "")

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusForbidden, upstreamErr.StatusCode)
	assert.Contains(t, upstreamErr.Body, "quota exceeded")
}

func TestGetPlaceByID(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/places/ChIJ123", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Goog-Api-Key"))
		assert.Contains(t, r.Header.Get("X-Goog-FieldMask"), "reviews")
		json.NewEncoder(w).Encode(types.Place{
			ID:          "ChIJ123",
			DisplayName: &types.LocalizedText{Text: "Trishna"},
		})
	}))
	defer ts.Close()

	got, err := newTestClient(ts.URL).GetPlaceByID(context.Background(), "ChIJ123")

	require.NoError(t, err)
	assert.Equal(t, "ChIJ123", got.ID)
	require.NotNil(t, got.DisplayName)
	assert.Equal(t, "Trishna", got.DisplayName.Text)
}

func TestGetPlaceByID_UpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, "no such place")
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).GetPlaceByID(context.Background(), "missing")

	var upstreamErr *UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusNotFound, upstreamErr.StatusCode)
}
