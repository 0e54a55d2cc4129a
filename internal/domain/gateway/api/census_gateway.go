package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"census-etl/internal/domain/model/external"
)

// ErrNoContent is returned when the census API answers a jurisdiction query with no rows at all.
var ErrNoContent = errors.New("census api returned no content")

// StatusError is returned when the census API answers with a non-2xx status.
type StatusError struct {
	StateCode  string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("census api returned status %d for state %s", e.StatusCode, e.StateCode)
	}
	return fmt.Sprintf("census api returned status %d for state %s: %s", e.StatusCode, e.StateCode, e.Message)
}

// IsClientError reports a 4xx status.
func (e *StatusError) IsClientError() bool {
	return e.StatusCode >= http.StatusBadRequest && e.StatusCode < http.StatusInternalServerError
}

// IsServerError reports a 5xx status.
func (e *StatusError) IsServerError() bool {
	return e.StatusCode >= http.StatusInternalServerError
}

// PlaceQuery selects every place of one state.
type PlaceQuery struct {
	// StateCode is the two-digit FIPS code.
	StateCode string
	APIKey    string
}

//go:generate mockgen -source=census_gateway.go -destination=mocks/census_gateway_mock.go -package=mocks

// CensusGateway defines the census data API calls used by the extraction
type CensusGateway interface {
	// FetchPlacePopulations returns the name and population of every place within a state.
	// The first row of the result is the column header.
	FetchPlacePopulations(ctx context.Context, query PlaceQuery) (external.CensusRows, error)
}
