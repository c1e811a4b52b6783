package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"library-manager/internal/model"
	"library-manager/internal/service"
)

func (h *Handler) SignUp(c echo.Context) error {
	var req model.SignUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	msg, err := h.svc.Auth.SignUp(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, msg)
}

func (h *Handler) SignIn(c echo.Context) error {
	var req model.SignInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	resp, err := h.svc.Auth.SignIn(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) RefreshToken(c echo.Context) error {
	var req model.RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	resp, err := h.svc.Auth.RefreshToken(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetAdminData(c echo.Context) error {
	admin, err := h.svc.Auth.GetAdminData(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, admin)
}

func (h *Handler) UpdateAdminInfo(c echo.Context) error {
	var req model.UpdateAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	msg, err := h.svc.Auth.UpdateAdminInfo(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, msg)
}

func (h *Handler) UpdateAdminPassword(c echo.Context) error {
	var req model.UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	msg, err := h.svc.Auth.UpdateAdminPassword(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, msg)
}

func (h *Handler) DeleteAdmin(c echo.Context) error {
	msg, err := h.svc.Auth.DeleteAdmin(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, msg)
}

func (h *Handler) UploadAdminPhoto(c echo.Context) error {
	upload, err := formPhoto(c)
	if err != nil {
		return err
	}
	msg, err := h.svc.Auth.UploadAdminPhoto(c.Request().Context(), upload)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, msg)
}

func (h *Handler) DeleteAdminPhoto(c echo.Context) error {
	msg, err := h.svc.Auth.DeleteAdminPhoto(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, msg)
}

// formPhoto reads the multipart "photo" file; an absent file is left
// for the service to reject with its own message key.
func formPhoto(c echo.Context) (service.PhotoUpload, error) {
	fh, err := c.FormFile("photo")
	if err != nil {
		return service.PhotoUpload{}, nil
	}
	src, err := fh.Open()
	if err != nil {
		return service.PhotoUpload{}, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return service.PhotoUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Content:     src,
	}, nil
}
