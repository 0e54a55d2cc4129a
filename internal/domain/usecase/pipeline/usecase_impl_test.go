package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"census-etl/internal/domain/entity"
	dbmocks "census-etl/internal/domain/gateway/db/mocks"
	"census-etl/internal/domain/model"
	"census-etl/internal/domain/usecase/extract"
	extractmocks "census-etl/internal/domain/usecase/extract/mocks"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type PipelineUseCaseSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	extractor *extractmocks.MockUseCase
	warehouse *dbmocks.MockPopulationGateway
	useCase   *pipelineUseCase
}

func TestPipelineUseCaseSuite(t *testing.T) {
	suite.Run(t, new(PipelineUseCaseSuite))
}

func (s *PipelineUseCaseSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.extractor = extractmocks.NewMockUseCase(s.ctrl)
	s.warehouse = dbmocks.NewMockPopulationGateway(s.ctrl)

	s.useCase = NewPipelineUseCase(s.extractor, s.warehouse, len(model.Jurisdictions), zap.NewNop()).(*pipelineUseCase)
	clock := time.Date(2026, 1, 5, 3, 0, 0, 0, time.UTC)
	s.useCase.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
}

func (s *PipelineUseCaseSuite) extracted() *model.ExtractionResult {
	return &model.ExtractionResult{
		Cities: []entity.CityPopulation{
			{Name: "Memphis city, Tennessee", Population: 618639, StateCode: "47", PlaceCode: "48000"},
			{Name: "Knoxville city, Tennessee", Population: 195889, StateCode: "47", PlaceCode: "40000"},
		},
		Failures: []model.JurisdictionFailure{
			{Code: "02", Reason: model.FailureNoContent},
		},
		SkippedRows: 1,
	}
}

func (s *PipelineUseCaseSuite) TestRunLoadsExtractedCities() {
	result := s.extracted()
	s.extractor.EXPECT().Extract(gomock.Any()).Return(result, nil)
	s.warehouse.EXPECT().SaveAll(gomock.Any(), "run-1", result.Cities).Return(int64(2), nil)

	summary, err := s.useCase.Run(context.Background(), "run-1")

	s.Require().NoError(err)
	s.Equal("run-1", summary.RequestID)
	s.Equal(len(model.Jurisdictions), summary.Jurisdictions)
	s.Equal(2, summary.RecordsExtracted)
	s.Equal(int64(2), summary.RecordsLoaded)
	s.Equal(1, summary.SkippedRows)
	s.Equal(result.Failures, summary.FailedJurisdictions)
	s.False(summary.DryRun)
	s.True(summary.FinishedAt.After(summary.StartedAt))
}

func (s *PipelineUseCaseSuite) TestRunDoesNotLoadWhenExtractionFails() {
	s.extractor.EXPECT().Extract(gomock.Any()).Return(nil, extract.ErrMissingCredential)

	summary, err := s.useCase.Run(context.Background(), "run-2")

	s.ErrorIs(err, extract.ErrMissingCredential)
	s.Nil(summary)
}

func (s *PipelineUseCaseSuite) TestRunReportsLoadFailure() {
	result := s.extracted()
	loadErr := errors.New("connection refused")
	s.extractor.EXPECT().Extract(gomock.Any()).Return(result, nil)
	s.warehouse.EXPECT().SaveAll(gomock.Any(), "run-3", result.Cities).Return(int64(0), loadErr)

	summary, err := s.useCase.Run(context.Background(), "run-3")

	s.ErrorIs(err, loadErr)
	s.Require().NotNil(summary)
	s.Equal(2, summary.RecordsExtracted)
	s.Zero(summary.RecordsLoaded)
}

func (s *PipelineUseCaseSuite) TestDryRunSkipsLoad() {
	s.extractor.EXPECT().Extract(gomock.Any()).Return(s.extracted(), nil)

	summary, err := s.useCase.DryRun(context.Background(), "run-4")

	s.Require().NoError(err)
	s.True(summary.DryRun)
	s.Equal(2, summary.RecordsExtracted)
	s.Zero(summary.RecordsLoaded)
}
