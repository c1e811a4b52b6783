package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"library-manager/internal/errs"
	"library-manager/internal/handler"
	service_mocks "library-manager/internal/handler/mocks"
	"library-manager/internal/model"
	"library-manager/locales"
	"library-manager/pkg/i18n"
	"library-manager/pkg/validate"
)

func newTestHandler(t *testing.T, svc handler.Services) (*handler.Handler, *echo.Echo) {
	t.Helper()
	tr, err := i18n.NewTranslator(locales.FS, "en")
	require.NoError(t, err)
	log := zap.NewExample().Named("test")
	h := handler.New(svc, nil, tr, t.TempDir(), log)
	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	return h, e
}

func TestHandler_CreateLendBook(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLendService, req model.CreateLendBookRequest)

	okReq := model.CreateLendBookRequest{
		BookID:     "b57e29c1-4f16-4f66-b1c8-9173d8ccb3ab",
		ReaderID:   "58df81a3-7c77-44b2-8f32-b9f5a1d9f8a1",
		LendFrom:   "2024-03-01",
		LendTo:     "2024-04-01",
		LendStatus: model.StatusBorrowed,
	}

	var tests = []struct {
		name         string
		body         string
		req          model.CreateLendBookRequest
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"bookId":"b57e29c1-4f16-4f66-b1c8-9173d8ccb3ab","readerId":"58df81a3-7c77-44b2-8f32-b9f5a1d9f8a1","lendFrom":"2024-03-01","lendTo":"2024-04-01","lendStatus":"borrowed"}`,
			req:  okReq,
			mockBehavior: func(r *service_mocks.MockLendService, req model.CreateLendBookRequest) {
				r.EXPECT().
					CreateLendBook(context.Background(), req).
					Return(model.Message{Message: "Book lent out"}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"message":"Book lent out"}`,
			},
		},
		{
			name: "err. book already lent out",
			body: `{"bookId":"b57e29c1-4f16-4f66-b1c8-9173d8ccb3ab","readerId":"58df81a3-7c77-44b2-8f32-b9f5a1d9f8a1","lendFrom":"2024-03-01","lendTo":"2024-04-01","lendStatus":"borrowed"}`,
			req:  okReq,
			mockBehavior: func(r *service_mocks.MockLendService, req model.CreateLendBookRequest) {
				r.EXPECT().
					CreateLendBook(context.Background(), req).
					Return(model.Message{}, errs.WithKey(errs.ErrBadRequest, "lendBook.bookAlreadyLended"))
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"This book is already lent out"}`,
			},
		},
		{
			name: "err. reader not found",
			body: `{"bookId":"b57e29c1-4f16-4f66-b1c8-9173d8ccb3ab","readerId":"58df81a3-7c77-44b2-8f32-b9f5a1d9f8a1","lendFrom":"2024-03-01","lendTo":"2024-04-01","lendStatus":"borrowed"}`,
			req:  okReq,
			mockBehavior: func(r *service_mocks.MockLendService, req model.CreateLendBookRequest) {
				r.EXPECT().
					CreateLendBook(context.Background(), req).
					Return(model.Message{}, errs.WithKey(errs.ErrNotFound, "reader.readerNotFound"))
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"Reader not found"}`,
			},
		},
		{
			name:         "err. internal",
			body:         `{"bookId":"b57e29c1-4f16-4f66-b1c8-9173d8ccb3ab","readerId":"58df81a3-7c77-44b2-8f32-b9f5a1d9f8a1","lendFrom":"2024-03-01","lendTo":"2024-04-01","lendStatus":"borrowed"}`,
			req:          okReq,
			mockBehavior: func(r *service_mocks.MockLendService, req model.CreateLendBookRequest) {
				r.EXPECT().
					CreateLendBook(context.Background(), req).
					Return(model.Message{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLendService(c)
			h, e := newTestHandler(t, handler.Services{Lend: svc})
			e.POST("/api/v1/lendBooks", h.CreateLendBook)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/lendBooks", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.req)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetBooks(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBookService)

	var tests = []struct {
		name         string
		target       string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:   "ok",
			target: "/api/v1/books?search=witch&sortBy=title&sortDirection=asc&currentPage=2&pageSize=1",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					ListBooks(context.Background(), model.ListQuery{
						Search:        "witch",
						SortBy:        "title",
						SortDirection: "asc",
						Page:          2,
						PageSize:      1,
					}).
					Return(model.BookList{
						Data: []model.Book{
							{
								ID:            "f7cdc58f-2caf-4b15-9727-f89dcc629b27",
								AdminID:       "83575e12-7ce0-48ee-9931-51919ff3c9ee",
								Title:         "The Witcher",
								Description:   "Geralt of Rivia, a monster slayer for hire",
								Author:        "Andrzej Sapkowski",
								Rating:        5,
								Genre:         []string{"fantasy"},
								NumberOfPages: 384,
							},
						},
						ListMeta: model.ListMeta{TotalItems: 3, NumOfPages: 3},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"data":[{"id":"f7cdc58f-2caf-4b15-9727-f89dcc629b27","adminId":"83575e12-7ce0-48ee-9931-51919ff3c9ee","title":"The Witcher","description":"Geralt of Rivia, a monster slayer for hire","author":"Andrzej Sapkowski","rating":5,"genre":["fantasy"],"numberOfPages":384,"photo":null,"createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}],"totalItems":3,"numOfPages":3}`,
			},
		},
		{
			name:         "err. bad currentPage",
			target:       "/api/v1/books?currentPage=abc",
			mockBehavior: func(r *service_mocks.MockBookService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"currentPage is invalid"}`,
			},
		},
		{
			name:   "err. internal",
			target: "/api/v1/books",
			mockBehavior: func(r *service_mocks.MockBookService) {
				r.EXPECT().
					ListBooks(context.Background(), model.ListQuery{}).
					Return(model.BookList{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookService(c)
			h, e := newTestHandler(t, handler.Services{Book: svc})
			e.GET("/api/v1/books", h.GetBooks)

			r := httptest.NewRequest(http.MethodGet, tt.target, http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
