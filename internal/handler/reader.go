package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"library-manager/internal/model"
)

func (h *Handler) CreateReader(c echo.Context) error {
	var req model.CreateReaderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	resp, err := h.svc.Reader.CreateReader(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *Handler) GetReaders(c echo.Context) error {
	query, err := listQuery(c)
	if err != nil {
		return err
	}
	list, err := h.svc.Reader.ListReaders(c.Request().Context(), query)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetReader(c echo.Context) error {
	reader, err := h.svc.Reader.GetReader(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, reader)
}

func (h *Handler) UpdateReader(c echo.Context) error {
	var req model.CreateReaderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	msg, err := h.svc.Reader.UpdateReader(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, msg)
}

func (h *Handler) DeleteReader(c echo.Context) error {
	msg, err := h.svc.Reader.DeleteReader(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, msg)
}

func (h *Handler) UploadReaderPhoto(c echo.Context) error {
	upload, err := formPhoto(c)
	if err != nil {
		return err
	}
	msg, err := h.svc.Reader.UploadReaderPhoto(c.Request().Context(), c.Param("id"), upload)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, msg)
}

func (h *Handler) DeleteReaderPhoto(c echo.Context) error {
	msg, err := h.svc.Reader.DeleteReaderPhoto(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, msg)
}
