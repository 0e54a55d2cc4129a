package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"census-etl/internal/domain/entity"
	"census-etl/internal/domain/model"
	"census-etl/internal/domain/usecase/extract"
	pipelinemocks "census-etl/internal/domain/usecase/pipeline/mocks"
	"census-etl/internal/domain/usecase/population"
	populationmocks "census-etl/internal/domain/usecase/population/mocks"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubHealthUseCase struct {
	response model.HealthResponse
}

func (s stubHealthUseCase) CheckHealth(context.Context) model.HealthResponse {
	return s.response
}

func serve(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["message"]
}

func TestHealthController(t *testing.T) {
	tests := []struct {
		name       string
		status     model.HealthStatus
		wantStatus int
	}{
		{name: "up", status: model.StatusUp, wantStatus: http.StatusOK},
		{name: "down", status: model.StatusDown, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			NewHealthController(e.Group("/census-etl"), stubHealthUseCase{
				response: model.HealthResponse{Status: tt.status},
			}).InitHealthRoutes()

			rec := serve(e, http.MethodGet, "/census-etl/health")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), string(tt.status))
		})
	}
}

func TestExtractionController_RunsPipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	useCase := pipelinemocks.NewMockUseCase(ctrl)

	var requestID string
	useCase.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string) (*model.RunSummary, error) {
			requestID = id
			return &model.RunSummary{RequestID: id, RecordsExtracted: 2, RecordsLoaded: 2}, nil
		})

	e := echo.New()
	NewExtractionController(e.Group(""), useCase).InitExtractionRoutes()

	rec := serve(e, http.MethodPost, "/extractions")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, requestID)

	var summary model.RunSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, requestID, summary.RequestID)
	assert.Equal(t, int64(2), summary.RecordsLoaded)
}

func TestExtractionController_DryRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	useCase := pipelinemocks.NewMockUseCase(ctrl)
	useCase.EXPECT().DryRun(gomock.Any(), gomock.Any()).Return(&model.RunSummary{DryRun: true}, nil)

	e := echo.New()
	NewExtractionController(e.Group(""), useCase).InitExtractionRoutes()

	rec := serve(e, http.MethodPost, "/extractions?dryRun=true")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, http.StatusBadRequest, serve(e, http.MethodPost, "/extractions?dryRun=maybe").Code)
}

func TestExtractionController_ReportsFailureMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	useCase := pipelinemocks.NewMockUseCase(ctrl)
	useCase.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, extract.ErrMissingCredential)

	e := echo.New()
	NewExtractionController(e.Group(""), useCase).InitExtractionRoutes()

	rec := serve(e, http.MethodPost, "/extractions")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, extract.ErrMissingCredential.Error(), decodeMessage(t, rec))
}

func TestCityController_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	useCase := populationmocks.NewMockUseCase(ctrl)

	page := model.NewPage([]entity.CityPopulation{
		{Name: "Houston city, Texas", Population: 2314157, StateCode: "48", PlaceCode: "35000"},
	}, 0, 20, 1)
	useCase.EXPECT().FindAllCities(gomock.Any(), 0, 20, "").Return(page, nil)

	e := echo.New()
	NewCityController(e.Group(""), useCase).InitCityRoutes()

	rec := serve(e, http.MethodGet, "/cities")

	require.Equal(t, http.StatusOK, rec.Code)
	var body model.Page[entity.CityPopulation]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, page.Content, body.Content)
	assert.Equal(t, int64(1), body.TotalElements)
}

func TestCityController_CapsPageSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	useCase := populationmocks.NewMockUseCase(ctrl)
	useCase.EXPECT().FindAllCities(gomock.Any(), 2, maxPageSize, "48").
		Return(model.NewPage([]entity.CityPopulation{}, 2, maxPageSize, 0), nil)

	e := echo.New()
	NewCityController(e.Group(""), useCase).InitCityRoutes()

	rec := serve(e, http.MethodGet, "/cities?page=2&size=10000&state=48")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCityController_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "non numeric page", target: "/cities?page=abc"},
		{name: "negative page", target: "/cities?page=-1"},
		{name: "page beyond offset range", target: "/cities?page=" + strconv.Itoa(maxPage+1)},
		{name: "page overflowing int", target: "/cities?page=99999999999999999999"},
		{name: "zero size", target: "/cities?size=0"},
		{name: "non numeric size", target: "/cities?size=ten"},
		{name: "state with letters", target: "/cities?state=TX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			useCase := populationmocks.NewMockUseCase(ctrl)

			e := echo.New()
			NewCityController(e.Group(""), useCase).InitCityRoutes()

			rec := serve(e, http.MethodGet, tt.target)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, decodeMessage(t, rec))
		})
	}
}

func TestCityController_UnknownStateAndFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	useCase := populationmocks.NewMockUseCase(ctrl)
	useCase.EXPECT().FindAllCities(gomock.Any(), 0, 20, "03").Return(nil, population.ErrUnknownState)
	useCase.EXPECT().FindAllCities(gomock.Any(), 0, 20, "").Return(nil, errors.New("connection refused"))

	e := echo.New()
	NewCityController(e.Group(""), useCase).InitCityRoutes()

	assert.Equal(t, http.StatusBadRequest, serve(e, http.MethodGet, "/cities?state=03").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(e, http.MethodGet, "/cities").Code)
}
