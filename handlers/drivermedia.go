package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/gridapi/models"
	"github.com/padraicbc/gridapi/store"
)

type driverMediaRequest struct {
	Number      string `json:"number"`
	Team        string `json:"team"`
	ImageURL    string `json:"image_url"`
	CarImageURL string `json:"car_image_url"`
}

// GetDriverMedia returns the curated row for one driver, 404 when none
// has been saved yet.
func (h *Handler) GetDriverMedia(c echo.Context) error {
	driverID := c.Param("id")
	if driverID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing driver id")
	}

	media, err := h.store.GetDriverMedia(c.Request().Context(), driverID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if media == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no media for driver")
	}
	return c.JSON(http.StatusOK, media)
}

// SaveDriverMedia inserts or updates a driver's curated row.
func (h *Handler) SaveDriverMedia(c echo.Context) error {
	driverID := c.Param("id")
	if driverID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing driver id")
	}

	var req driverMediaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	media := &models.DriverMedia{
		DriverID:    driverID,
		Number:      req.Number,
		Team:        req.Team,
		ImageURL:    req.ImageURL,
		CarImageURL: req.CarImageURL,
	}
	if err := h.store.UpsertDriverMedia(c.Request().Context(), media); err != nil {
		var ve *store.ValidationError
		if errors.As(err, &ve) {
			return echo.NewHTTPError(http.StatusBadRequest, ve.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusOK)
}
