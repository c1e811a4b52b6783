package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"library-manager/internal/model"
)

func (h *Handler) CreateGenre(c echo.Context) error {
	var req model.CreateGenreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	msg, err := h.svc.Genre.CreateGenre(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, msg)
}

func (h *Handler) GetGenres(c echo.Context) error {
	genres, err := h.svc.Genre.ListGenres(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, genres)
}

func (h *Handler) GetGenre(c echo.Context) error {
	genre, err := h.svc.Genre.GetGenre(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, genre)
}

func (h *Handler) UpdateGenre(c echo.Context) error {
	var req model.CreateGenreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	msg, err := h.svc.Genre.UpdateGenre(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, msg)
}

func (h *Handler) DeleteGenre(c echo.Context) error {
	msg, err := h.svc.Genre.DeleteGenre(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, msg)
}
