package controller

import (
	"errors"
	"math"
	"net/http"

	"census-etl/internal/domain/usecase/population"
	"census-etl/pkg/util/numberutils"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 20
	maxPageSize     = 500
	// keeps page * size within int for every accepted size
	maxPage = math.MaxInt / maxPageSize
)

type CityController struct {
	api     *echo.Group
	useCase population.UseCase
}

func NewCityController(api *echo.Group, useCase population.UseCase) *CityController {
	return &CityController{api: api, useCase: useCase}
}

// InitCityRoutes initializes city routes
func (controller *CityController) InitCityRoutes() {
	controller.api.GET("/cities", controller.FindAllCities)
}

// FindAllCities godoc
// @Summary Get loaded cities
// @Description Retrieve the loaded cities ordered by population, with pagination and an optional state filter
// @Tags cities
// @Produce json
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(20)
// @Param state query string false "State FIPS code to filter by"
// @Success 200 {object} model.Page[entity.CityPopulation] "Paginated list of cities"
// @Failure 400 {object} map[string]string "Invalid query parameter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cities [get]
func (controller *CityController) FindAllCities(c echo.Context) error {
	page, err := numberutils.ToIntWithDefault(c.QueryParam("page"), 0)
	if err != nil || page < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "page must be a non-negative integer"})
	}
	if page > maxPage {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "page is out of range"})
	}

	size, err := numberutils.ToIntWithDefault(c.QueryParam("size"), defaultPageSize)
	if err != nil || size < 1 {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "size must be a positive integer"})
	}
	size = numberutils.MinInt(size, maxPageSize)

	var state string = c.QueryParam("state")
	if state != "" && !numberutils.IsDigits(state) {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "state must be a FIPS code"})
	}

	cities, err := controller.useCase.FindAllCities(c.Request().Context(), page, size, state)
	if errors.Is(err, population.ErrUnknownState) {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, cities)
}
