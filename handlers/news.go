package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/gridapi/store"
)

type newsRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

// AdminListNews lists every article for the admin dashboard.
func (h *Handler) AdminListNews(c echo.Context) error {
	articles, err := h.store.ListNews(c.Request().Context(), 0)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, articles)
}

// CreateNews inserts a new article.
func (h *Handler) CreateNews(c echo.Context) error {
	var req newsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.store.CreateNews(c.Request().Context(), req.Title, req.Content, req.ImageURL)
	if err != nil {
		return newsError(err)
	}
	return c.JSON(http.StatusCreated, map[string]int64{"id": id})
}

// UpdateNews overwrites an article's fields in place.
func (h *Handler) UpdateNews(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid article id")
	}

	var req newsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.store.UpdateNews(c.Request().Context(), id, req.Title, req.Content, req.ImageURL); err != nil {
		return newsError(err)
	}
	return c.NoContent(http.StatusOK)
}

// DeleteNews removes an article. Confirmation is the client's concern.
func (h *Handler) DeleteNews(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid article id")
	}

	if err := h.store.DeleteNews(c.Request().Context(), id); err != nil {
		return newsError(err)
	}
	return c.NoContent(http.StatusOK)
}

func newsError(err error) error {
	var ve *store.ValidationError
	switch {
	case errors.As(err, &ve):
		return echo.NewHTTPError(http.StatusBadRequest, ve.Error())
	case errors.Is(err, store.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "article not found")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
