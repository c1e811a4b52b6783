package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"library-manager/internal/errs"
	"library-manager/internal/model"
	"library-manager/pkg/auth"
	"library-manager/pkg/i18n"
	md "library-manager/pkg/middleware"
	"library-manager/pkg/validate"
)

type Services struct {
	Auth   AuthService
	Book   BookService
	Genre  GenreService
	Reader ReaderService
	Lend   LendService
}

type Handler struct {
	svc        Services
	tokens     *auth.TokenManager
	tr         i18n.Translator
	uploadsDir string
	log        *zap.Logger
}

func New(svc Services, tokens *auth.TokenManager, tr i18n.Translator, uploadsDir string, log *zap.Logger) *Handler {
	return &Handler{
		svc:        svc,
		tokens:     tokens,
		tr:         tr,
		uploadsDir: uploadsDir,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Static("/uploads", h.uploadsDir)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/auth/register", h.SignUp)
	api.POST("/auth/login", h.SignIn)
	api.POST("/auth/refreshToken", h.RefreshToken)

	authorized := api.Group("", md.JwtAuthentication(h.tokens))

	authorized.GET("/auth/me", h.GetAdminData)
	authorized.PUT("/auth/me", h.UpdateAdminInfo)
	authorized.PUT("/auth/me/updatePassword", h.UpdateAdminPassword)
	authorized.DELETE("/auth/me", h.DeleteAdmin)
	authorized.POST("/auth/me/uploadPhoto", h.UploadAdminPhoto)
	authorized.DELETE("/auth/me/deletePhoto", h.DeleteAdminPhoto)

	authorized.POST("/books", h.CreateBook)
	authorized.GET("/books", h.GetBooks)
	authorized.GET("/books/:id", h.GetBook)
	authorized.PUT("/books/:id", h.UpdateBook)
	authorized.DELETE("/books/:id", h.DeleteBook)
	authorized.POST("/books/uploadPhoto/:id", h.UploadBookPhoto)
	authorized.DELETE("/books/deletePhoto/:id", h.DeleteBookPhoto)

	authorized.POST("/genres", h.CreateGenre)
	authorized.GET("/genres", h.GetGenres)
	authorized.GET("/genres/:id", h.GetGenre)
	authorized.PUT("/genres/:id", h.UpdateGenre)
	authorized.DELETE("/genres/:id", h.DeleteGenre)

	authorized.POST("/readers", h.CreateReader)
	authorized.GET("/readers", h.GetReaders)
	authorized.GET("/readers/:id", h.GetReader)
	authorized.PUT("/readers/:id", h.UpdateReader)
	authorized.DELETE("/readers/:id", h.DeleteReader)
	authorized.POST("/readers/uploadPhoto/:id", h.UploadReaderPhoto)
	authorized.DELETE("/readers/deletePhoto/:id", h.DeleteReaderPhoto)

	authorized.POST("/lendBooks", h.CreateLendBook)
	authorized.GET("/lendBooks", h.GetLendBooks)
	authorized.GET("/lendBooks/reader/:id", h.GetReaderLendBooks)
	authorized.GET("/lendBooks/book/:id", h.GetBookLendHistory)
	authorized.GET("/lendBooks/:id", h.GetLendBook)
	authorized.PUT("/lendBooks/:id", h.UpdateLendBook)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps the error taxonomy onto status codes and resolves
// the condition's message key to display text.
func (h *Handler) httpError(err error) *echo.HTTPError {
	msg := err.Error()
	if key := errs.MessageKey(err); key != "" {
		msg = h.tr.Resolve(key)
	}
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, msg)
	case errors.Is(err, errs.ErrBadRequest), errors.Is(err, errs.ErrAlreadyExists):
		return echo.NewHTTPError(http.StatusBadRequest, msg)
	case errors.Is(err, errs.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, msg)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, msg)
	}
}

// listQuery picks the shared listing parameters off the query string.
func listQuery(c echo.Context) (model.ListQuery, error) {
	q := model.ListQuery{
		Search:        c.QueryParam("search"),
		SortBy:        c.QueryParam("sortBy"),
		SortDirection: c.QueryParam("sortDirection"),
		Genre:         c.QueryParam("genre"),
		LendStatus:    model.LendStatus(c.QueryParam("lendStatus")),
	}
	var err error
	if pageParam := c.QueryParam("currentPage"); pageParam != "" {
		if q.Page, err = strconv.Atoi(pageParam); err != nil {
			return model.ListQuery{}, echo.NewHTTPError(http.StatusBadRequest, errors.New("currentPage is invalid"))
		}
	}
	if sizeParam := c.QueryParam("pageSize"); sizeParam != "" {
		if q.PageSize, err = strconv.Atoi(sizeParam); err != nil {
			return model.ListQuery{}, echo.NewHTTPError(http.StatusBadRequest, errors.New("pageSize is invalid"))
		}
	}
	return q, nil
}
