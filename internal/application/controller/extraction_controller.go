package controller

import (
	"net/http"
	"strconv"

	"census-etl/internal/domain/usecase/pipeline"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ExtractionController struct {
	api     *echo.Group
	useCase pipeline.UseCase
}

func NewExtractionController(api *echo.Group, useCase pipeline.UseCase) *ExtractionController {
	return &ExtractionController{api: api, useCase: useCase}
}

// InitExtractionRoutes initializes extraction routes
func (controller *ExtractionController) InitExtractionRoutes() {
	controller.api.POST("/extractions", controller.RunExtraction)
}

// RunExtraction godoc
// @Summary Run an extraction
// @Description Extract every jurisdiction from the census API and load the result into the warehouse
// @Tags extractions
// @Produce json
// @Param dryRun query bool false "Extract without loading" default(false)
// @Success 200 {object} model.RunSummary "Run summary"
// @Failure 400 {object} map[string]string "Invalid dryRun flag"
// @Failure 500 {object} map[string]string "Extraction or load failure"
// @Router /extractions [post]
func (controller *ExtractionController) RunExtraction(c echo.Context) error {
	dryRun := false
	if raw := c.QueryParam("dryRun"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "dryRun must be a boolean"})
		}
		dryRun = parsed
	}

	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	run := controller.useCase.Run
	if dryRun {
		run = controller.useCase.DryRun
	}

	summary, err := run(c.Request().Context(), requestID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, summary)
}
