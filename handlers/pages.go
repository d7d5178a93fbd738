package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/gridapi/store"
)

// Home returns the landing-page read-model.
func (h *Handler) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, h.composer.Home(c.Request().Context()))
}

// Drivers returns the merged driver roster.
func (h *Handler) Drivers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.composer.Drivers(c.Request().Context()))
}

// Teams returns the season's constructors.
func (h *Handler) Teams(c echo.Context) error {
	return c.JSON(http.StatusOK, h.composer.Teams(c.Request().Context()))
}

// Schedule returns the season calendar.
func (h *Handler) Schedule(c echo.Context) error {
	return c.JSON(http.StatusOK, h.composer.Schedule(c.Request().Context()))
}

// Circuits returns the projected circuits with aggregation stats.
func (h *Handler) Circuits(c echo.Context) error {
	return c.JSON(http.StatusOK, h.composer.Circuits(c.Request().Context()))
}

// Standings returns both championship tables.
func (h *Handler) Standings(c echo.Context) error {
	return c.JSON(http.StatusOK, h.composer.Standings(c.Request().Context()))
}

// Results returns the classified result for one round, 404 when the round
// has not been run yet.
func (h *Handler) Results(c echo.Context) error {
	round, err := strconv.Atoi(c.QueryParam("round"))
	if err != nil || round < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "missing or invalid round param")
	}

	race := h.composer.RaceResult(c.Request().Context(), round)
	if race == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no result for round")
	}
	return c.JSON(http.StatusOK, race)
}

// News lists articles newest first; ?limit caps the count.
func (h *Handler) News(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit param")
		}
		limit = n
	}
	return c.JSON(http.StatusOK, h.composer.News(c.Request().Context(), limit))
}

// NewsDetail returns one article or a distinct not-found state.
func (h *Handler) NewsDetail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid article id")
	}

	article, err := h.composer.NewsArticle(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "article not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, article)
}
