package extract

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"

	"census-etl/internal/domain/entity"
	"census-etl/internal/domain/gateway/api"
	"census-etl/internal/domain/model"
	"census-etl/internal/domain/model/external"
	"census-etl/pkg/log"
	"census-etl/pkg/msg"

	"go.uber.org/zap"
)

const (
	DefaultPopulationThreshold int64 = 100000
	DefaultPopulationVariable        = "B01003_001E"
)

// Config tunes an extraction. Zero values fall back to the defaults.
type Config struct {
	APIKey              string
	PopulationThreshold int64
	PopulationVariable  string
	Jurisdictions       []model.Jurisdiction
}

type extractUseCase struct {
	apiKey             string
	threshold          int64
	populationVariable string
	jurisdictions      []model.Jurisdiction
	apiGateway         api.CensusGateway
	logger             log.Observer
}

func NewExtractUseCase(config Config, apiGateway api.CensusGateway, logger log.Observer) UseCase {
	if config.PopulationThreshold <= 0 {
		config.PopulationThreshold = DefaultPopulationThreshold
	}
	if config.PopulationVariable == "" {
		config.PopulationVariable = DefaultPopulationVariable
	}
	if len(config.Jurisdictions) == 0 {
		config.Jurisdictions = model.Jurisdictions
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &extractUseCase{
		apiKey:             strings.TrimSpace(config.APIKey),
		threshold:          config.PopulationThreshold,
		populationVariable: config.PopulationVariable,
		jurisdictions:      slices.Clone(config.Jurisdictions),
		apiGateway:         apiGateway,
		logger:             logger,
	}
}

// ExtractAllCitiesPopulations returns the places above the threshold
func (uc *extractUseCase) ExtractAllCitiesPopulations(ctx context.Context) ([]entity.CityPopulation, error) {
	result, err := uc.Extract(ctx)
	if err != nil {
		return nil, err
	}
	return result.Cities, nil
}

// Extract queries every jurisdiction in turn. A failing jurisdiction is logged and skipped.
func (uc *extractUseCase) Extract(ctx context.Context) (*model.ExtractionResult, error) {
	if uc.apiKey == "" {
		uc.logger.Error(msg.GetMessage("extract.missing-credential"))
		return nil, ErrMissingCredential
	}

	uc.logger.Info(msg.GetMessage("extract.start", len(uc.jurisdictions)),
		zap.Int("jurisdictions", len(uc.jurisdictions)),
		zap.Int64("threshold", uc.threshold))

	result := &model.ExtractionResult{
		Cities:   []entity.CityPopulation{},
		Failures: []model.JurisdictionFailure{},
	}

	for _, jurisdiction := range uc.jurisdictions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		code := jurisdiction.FIPS()
		rows, err := uc.apiGateway.FetchPlacePopulations(ctx, api.PlaceQuery{StateCode: code, APIKey: uc.apiKey})
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			result.Failures = append(result.Failures, uc.recordFailure(code, err))
			continue
		}

		cities, skipped := uc.collectCities(code, rows)
		result.Cities = append(result.Cities, cities...)
		result.SkippedRows += skipped
	}

	uc.logger.Info(msg.GetMessage("extract.end", len(result.Cities), uc.threshold, len(result.Failures)),
		zap.Int("records", len(result.Cities)),
		zap.Int("failed_jurisdictions", len(result.Failures)),
		zap.Int("skipped_rows", result.SkippedRows))

	return result, nil
}

// recordFailure logs a jurisdiction that contributes no rows and classifies the cause
func (uc *extractUseCase) recordFailure(code string, err error) model.JurisdictionFailure {
	failure := model.JurisdictionFailure{Code: code, Message: err.Error()}

	var statusErr *api.StatusError
	switch {
	case errors.Is(err, api.ErrNoContent):
		failure.Reason = model.FailureNoContent
		uc.logger.Warn(msg.GetMessage("extract.no-content", code),
			zap.String("jurisdiction", code))

	case errors.As(err, &statusErr) && statusErr.IsClientError():
		failure.Reason = model.FailureClientError
		failure.StatusCode = statusErr.StatusCode
		uc.logger.Error(msg.GetMessage("extract.client-error", code, statusErr.StatusCode),
			zap.String("jurisdiction", code),
			zap.Int("status", statusErr.StatusCode),
			zap.String("response", statusErr.Message))

	case errors.As(err, &statusErr):
		failure.Reason = model.FailureServerError
		failure.StatusCode = statusErr.StatusCode
		uc.logger.Error(msg.GetMessage("extract.server-error", code, statusErr.StatusCode),
			zap.String("jurisdiction", code),
			zap.Int("status", statusErr.StatusCode),
			zap.String("response", statusErr.Message))

	default:
		failure.Reason = model.FailureRequestFailed
		uc.logger.Error(msg.GetMessage("extract.request-failed", code),
			zap.String("jurisdiction", code),
			zap.Error(err))
	}

	return failure
}

// collectCities converts the data rows of one jurisdiction, keeping places strictly above the threshold.
// Rows without an integer population are skipped and counted.
func (uc *extractUseCase) collectCities(code string, rows external.CensusRows) ([]entity.CityPopulation, int) {
	layout := resolveColumns(rows.Header(), uc.populationVariable)

	var cities []entity.CityPopulation
	skipped := 0

	for _, row := range rows.Data() {
		name := layout.value(row, layout.name)
		raw := layout.value(row, layout.population)

		if state := strings.TrimSpace(layout.value(row, layout.state)); state != "" && state != code {
			skipped++
			uc.logger.Warn(msg.GetMessage("extract.state-mismatch", code, name, state),
				zap.String("jurisdiction", code),
				zap.String("place_name", name),
				zap.String("row_state", state))
			continue
		}

		population, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			skipped++
			uc.logger.Warn(msg.GetMessage("extract.bad-population", code, name, raw),
				zap.String("jurisdiction", code),
				zap.String("place_name", name),
				zap.String("population", raw))
			continue
		}

		if population <= uc.threshold {
			continue
		}

		cities = append(cities, entity.CityPopulation{
			Name:       name,
			Population: population,
			StateCode:  code,
			PlaceCode:  layout.value(row, layout.place),
		})
	}

	return cities, skipped
}

// columnLayout holds the index of each field within a data row; -1 means absent.
type columnLayout struct {
	name       int
	population int
	state      int
	place      int
}

// resolveColumns locates the fields by header name, defaulting to name in column 0 and population in column 1.
func resolveColumns(header []string, populationVariable string) columnLayout {
	layout := columnLayout{name: 0, population: 1, state: -1, place: -1}

	for i, column := range header {
		switch {
		case strings.EqualFold(column, "NAME"):
			layout.name = i
		case strings.EqualFold(column, populationVariable):
			layout.population = i
		case strings.EqualFold(column, "state"):
			layout.state = i
		case strings.EqualFold(column, "place"):
			layout.place = i
		}
	}

	return layout
}

func (l columnLayout) value(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return row[index]
}
