package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"census-etl/internal/domain/model/external"
	"census-etl/pkg/http"

	"golang.org/x/time/rate"
)

const apiKeyParam = "key"

// CensusGatewayConfig locates the dataset and the variable holding the total population.
type CensusGatewayConfig struct {
	// BaseURL is the dataset endpoint, e.g. https://api.census.gov/data/2024/acs/acs1
	BaseURL            string
	PopulationVariable string
	// RequestsPerSecond caps the request rate; zero or less means unlimited.
	RequestsPerSecond float64
}

// censusGatewayImpl implements the CensusGateway interface
type censusGatewayImpl struct {
	httpClient         *http.Client
	populationVariable string
	limiter            *rate.Limiter
}

// NewCensusGateway creates a new instance of CensusGateway with HTTP client
func NewCensusGateway(config CensusGatewayConfig, clientOptions http.ClientOptions) CensusGateway {
	clientOptions.RedactParams = append(clientOptions.RedactParams, apiKeyParam)
	httpClient := http.NewHttpClient(config.BaseURL, clientOptions)

	populationVariable := config.PopulationVariable
	if populationVariable == "" {
		populationVariable = "B01003_001E"
	}

	var limiter *rate.Limiter
	if config.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.RequestsPerSecond), 1)
	}

	return &censusGatewayImpl{
		httpClient:         httpClient,
		populationVariable: populationVariable,
		limiter:            limiter,
	}
}

// FetchPlacePopulations issues one GET for all places of the given state
func (c *censusGatewayImpl) FetchPlacePopulations(ctx context.Context, query PlaceQuery) (external.CensusRows, error) {
	stateCode := query.StateCode

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			// the wait would outlive the deadline
			return nil, context.DeadlineExceeded
		}
	}

	params := url.Values{}
	params.Set("get", "NAME,"+c.populationVariable)
	params.Set("for", "place:*")
	params.Set("in", "state:"+stateCode)
	params.Set(apiKeyParam, query.APIKey)

	var (
		rows      external.CensusRows
		errorBody string
	)
	_, _, status, err := c.httpClient.Request().
		WithQueryParams(params).
		WithSuccessResp(&rows).
		WithErrorResp(&errorBody).
		Execute(ctx)

	if err == nil && status >= 200 && status < 300 {
		if len(rows) == 0 {
			return nil, ErrNoContent
		}
		return rows, nil
	}

	if status >= 300 {
		return nil, &StatusError{
			StateCode:  stateCode,
			StatusCode: status,
			Message:    strings.TrimSpace(errorBody),
		}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, err
	}
	if err == nil {
		err = fmt.Errorf("unexpected status %d", status)
	}

	return nil, fmt.Errorf("failed to fetch places for state %s: %w", stateCode, err)
}
