package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"library-manager/internal/model"
)

func (h *Handler) CreateLendBook(c echo.Context) error {
	var req model.CreateLendBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	msg, err := h.svc.Lend.CreateLendBook(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, msg)
}

func (h *Handler) GetLendBooks(c echo.Context) error {
	query, err := listQuery(c)
	if err != nil {
		return err
	}
	list, err := h.svc.Lend.ListLendBooks(c.Request().Context(), query)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetReaderLendBooks(c echo.Context) error {
	query, err := listQuery(c)
	if err != nil {
		return err
	}
	list, err := h.svc.Lend.ListReaderLendBooks(c.Request().Context(), c.Param("id"), query)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetBookLendHistory(c echo.Context) error {
	query, err := listQuery(c)
	if err != nil {
		return err
	}
	list, err := h.svc.Lend.ListBookLendHistory(c.Request().Context(), c.Param("id"), query)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetLendBook(c echo.Context) error {
	lend, err := h.svc.Lend.GetLendBook(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, lend)
}

func (h *Handler) UpdateLendBook(c echo.Context) error {
	var req model.CreateLendBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	msg, err := h.svc.Lend.UpdateLendBook(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, msg)
}
