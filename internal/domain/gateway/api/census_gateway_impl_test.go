package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"census-etl/internal/domain/model/external"
	pkghttp "census-etl/pkg/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) CensusGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewCensusGateway(CensusGatewayConfig{BaseURL: server.URL + "/data/2024/acs/acs1"}, pkghttp.ClientOptions{})
}

func TestFetchPlacePopulations_SendsQueryAndDecodesRows(t *testing.T) {
	var path string
	var query url.Values
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		query = r.URL.Query()
		_, _ = w.Write([]byte(`[["NAME","B01003_001E","state","place"],["Anchorage municipality, Alaska","291538","02","03000"]]`))
	})

	rows, err := gateway.FetchPlacePopulations(context.Background(), PlaceQuery{StateCode: "02", APIKey: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "/data/2024/acs/acs1", path)
	assert.Equal(t, url.Values{
		"get": {"NAME,B01003_001E"},
		"for": {"place:*"},
		"in":  {"state:02"},
		"key": {"secret"},
	}, query)
	assert.Equal(t, external.CensusRows{
		{"NAME", "B01003_001E", "state", "place"},
		{"Anchorage municipality, Alaska", "291538", "02", "03000"},
	}, rows)
}

func TestFetchPlacePopulations_NoContent(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{name: "204", handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }},
		{name: "empty array", handler: func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`[]`)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestGateway(t, tt.handler).FetchPlacePopulations(context.Background(), PlaceQuery{StateCode: "72"})
			assert.ErrorIs(t, err, ErrNoContent)
		})
	}
}

func TestFetchPlacePopulations_StatusErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		clientError bool
		serverError bool
	}{
		{name: "bad request", status: http.StatusBadRequest, clientError: true},
		{name: "unauthorized", status: http.StatusUnauthorized, clientError: true},
		{name: "not found", status: http.StatusNotFound, clientError: true},
		{name: "redirect", status: http.StatusFound},
		{name: "internal error", status: http.StatusInternalServerError, serverError: true},
		{name: "bad gateway", status: http.StatusBadGateway, serverError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("error: invalid key \n"))
			})

			var (
				rows external.CensusRows
				err  error
			)
			require.NotPanics(t, func() {
				rows, err = gateway.FetchPlacePopulations(context.Background(), PlaceQuery{StateCode: "06"})
			})

			assert.Nil(t, rows)
			var statusErr *StatusError
			require.True(t, errors.As(err, &statusErr))
			assert.Equal(t, tt.status, statusErr.StatusCode)
			assert.Equal(t, "06", statusErr.StateCode)
			assert.Equal(t, "error: invalid key", statusErr.Message)
			assert.Equal(t, tt.clientError, statusErr.IsClientError())
			assert.Equal(t, tt.serverError, statusErr.IsServerError())
		})
	}
}

func TestFetchPlacePopulations_MalformedBodyIsWrapped(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"not rows"}`))
	})

	_, err := gateway.FetchPlacePopulations(context.Background(), PlaceQuery{StateCode: "06"})

	assert.ErrorContains(t, err, "failed to fetch places for state 06")
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestFetchPlacePopulations_ReturnsContextErrorsUnwrapped(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gateway.FetchPlacePopulations(ctx, PlaceQuery{StateCode: "06"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.NotContains(t, err.Error(), "failed to fetch places")
}

func TestFetchPlacePopulations_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[["NAME","B01003_001E"]]`))
	}))
	t.Cleanup(server.Close)

	gateway := NewCensusGateway(CensusGatewayConfig{BaseURL: server.URL, RequestsPerSecond: 20}, pkghttp.ClientOptions{})

	start := time.Now()
	for _, code := range []string{"01", "02", "04"} {
		_, err := gateway.FetchPlacePopulations(context.Background(), PlaceQuery{StateCode: code})
		require.NoError(t, err)
	}

	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}

func TestFetchPlacePopulations_RateLimitHonoursContext(t *testing.T) {
	gateway := NewCensusGateway(CensusGatewayConfig{BaseURL: "http://127.0.0.1:1", RequestsPerSecond: 1}, pkghttp.ClientOptions{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gateway.FetchPlacePopulations(ctx, PlaceQuery{StateCode: "01"})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchPlacePopulations_RateLimitWaitBeyondDeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[["NAME","B01003_001E","state","place"]]`))
	}))
	defer server.Close()

	gateway := NewCensusGateway(CensusGatewayConfig{BaseURL: server.URL, RequestsPerSecond: 0.1}, pkghttp.ClientOptions{})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := gateway.FetchPlacePopulations(ctx, PlaceQuery{StateCode: "01"})
	require.NoError(t, err)

	_, err = gateway.FetchPlacePopulations(ctx, PlaceQuery{StateCode: "02"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
