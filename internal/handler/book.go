package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"library-manager/internal/model"
)

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	resp, err := h.svc.Book.CreateBook(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) GetBooks(c echo.Context) error {
	query, err := listQuery(c)
	if err != nil {
		return err
	}
	list, err := h.svc.Book.ListBooks(c.Request().Context(), query)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetBook(c echo.Context) error {
	book, err := h.svc.Book.GetBook(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	msg, err := h.svc.Book.UpdateBook(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, msg)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	msg, err := h.svc.Book.DeleteBook(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, msg)
}

func (h *Handler) UploadBookPhoto(c echo.Context) error {
	upload, err := formPhoto(c)
	if err != nil {
		return err
	}
	msg, err := h.svc.Book.UploadBookPhoto(c.Request().Context(), c.Param("id"), upload)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, msg)
}

func (h *Handler) DeleteBookPhoto(c echo.Context) error {
	msg, err := h.svc.Book.DeleteBookPhoto(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, msg)
}
