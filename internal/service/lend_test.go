package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"library-manager/internal/errs"
	"library-manager/internal/model"
	repo_mocks "library-manager/internal/repository/mocks"
	"library-manager/internal/service"
	"library-manager/locales"
	"library-manager/pkg/auth"
	"library-manager/pkg/i18n"
)

const testAdminID = "83575e12-7ce0-48ee-9931-51919ff3c9ee"

func newTestService(t *testing.T, repo *repo_mocks.MockRepository) *service.Service {
	t.Helper()
	tr, err := i18n.NewTranslator(locales.FS, "en")
	require.NoError(t, err)
	log := zap.NewExample().Named("test")
	return service.NewService(repo, nil, tr, nil, t.TempDir(), log)
}

func authCtx() context.Context {
	return auth.SetAuthContext(context.Background(), &auth.Claims{UserID: testAdminID})
}

func TestService_CreateLendBook(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *repo_mocks.MockRepository)

	req := model.CreateLendBookRequest{
		BookID:     "b57e29c1-4f16-4f66-b1c8-9173d8ccb3ab",
		ReaderID:   "58df81a3-7c77-44b2-8f32-b9f5a1d9f8a1",
		LendFrom:   "2024-03-01",
		LendTo:     "2024-04-01",
		LendStatus: model.StatusBorrowed,
	}

	var tests = []struct {
		name         string
		req          model.CreateLendBookRequest
		mockBehavior mockBehavior
		wantMsg      string
		wantErr      error
	}{
		{
			name: "ok",
			req:  req,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetReader(gomock.Any(), req.ReaderID).Return(model.Reader{ID: req.ReaderID}, nil)
				r.EXPECT().GetBook(gomock.Any(), req.BookID).Return(model.Book{ID: req.BookID}, nil)
				r.EXPECT().HasActiveLend(gomock.Any(), req.BookID).Return(false, nil)
				r.EXPECT().CreateLendBook(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantMsg: "Book lent out",
		},
		{
			name: "err. reader not found",
			req:  req,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetReader(gomock.Any(), req.ReaderID).Return(model.Reader{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name: "err. book not found",
			req:  req,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetReader(gomock.Any(), req.ReaderID).Return(model.Reader{ID: req.ReaderID}, nil)
				r.EXPECT().GetBook(gomock.Any(), req.BookID).Return(model.Book{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name: "err. book already lent out",
			req:  req,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetReader(gomock.Any(), req.ReaderID).Return(model.Reader{ID: req.ReaderID}, nil)
				r.EXPECT().GetBook(gomock.Any(), req.BookID).Return(model.Book{ID: req.BookID}, nil)
				r.EXPECT().HasActiveLend(gomock.Any(), req.BookID).Return(true, nil)
			},
			wantErr: errs.ErrBadRequest,
		},
		{
			name: "err. concurrent create loses to the index",
			req:  req,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetReader(gomock.Any(), req.ReaderID).Return(model.Reader{ID: req.ReaderID}, nil)
				r.EXPECT().GetBook(gomock.Any(), req.BookID).Return(model.Book{ID: req.BookID}, nil)
				r.EXPECT().HasActiveLend(gomock.Any(), req.BookID).Return(false, nil)
				r.EXPECT().CreateLendBook(gomock.Any(), gomock.Any()).Return(errs.ErrAlreadyExists)
			},
			wantErr: errs.ErrBadRequest,
		},
		{
			name: "err. malformed dates",
			req: model.CreateLendBookRequest{
				BookID:     req.BookID,
				ReaderID:   req.ReaderID,
				LendFrom:   "01.03.2024",
				LendTo:     "2024-04-01",
				LendStatus: model.StatusBorrowed,
			},
			mockBehavior: func(r *repo_mocks.MockRepository) {},
			wantErr:      errs.ErrBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			repo := repo_mocks.NewMockRepository(c)
			tt.mockBehavior(repo)
			svc := newTestService(t, repo)

			msg, err := svc.CreateLendBook(authCtx(), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantMsg, msg.Message)
		})
	}
}

func TestService_CreateLendBook_Unauthorized(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	svc := newTestService(t, repo)

	_, err := svc.CreateLendBook(context.Background(), model.CreateLendBookRequest{
		BookID:     "b57e29c1-4f16-4f66-b1c8-9173d8ccb3ab",
		ReaderID:   "58df81a3-7c77-44b2-8f32-b9f5a1d9f8a1",
		LendFrom:   "2024-03-01",
		LendTo:     "2024-04-01",
		LendStatus: model.StatusBorrowed,
	})
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

// The update path overwrites an existing record without re-checking
// whether the book is currently lent out elsewhere. Only the store's
// partial index can still reject it, surfacing as a bad request.
func TestService_UpdateLendBook(t *testing.T) {
	t.Parallel()
	const lendID = "7e0f1a8a-55c4-44ac-b74f-6cf53102e3c2"

	req := model.CreateLendBookRequest{
		BookID:     "b57e29c1-4f16-4f66-b1c8-9173d8ccb3ab",
		ReaderID:   "58df81a3-7c77-44b2-8f32-b9f5a1d9f8a1",
		LendFrom:   "2024-03-01",
		LendTo:     "2024-04-01",
		LendStatus: model.StatusAvailable,
	}

	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	repo.EXPECT().GetReader(gomock.Any(), req.ReaderID).Return(model.Reader{ID: req.ReaderID}, nil)
	repo.EXPECT().GetLendBook(gomock.Any(), lendID).Return(model.LendBook{ID: lendID}, nil)
	repo.EXPECT().UpdateLendBook(gomock.Any(), lendID, gomock.Any()).Return(nil)
	svc := newTestService(t, repo)

	msg, err := svc.UpdateLendBook(authCtx(), lendID, req)
	require.NoError(t, err)
	require.Equal(t, "Lending record updated", msg.Message)
}

func TestService_UpdateLendBook_NotFound(t *testing.T) {
	t.Parallel()
	const lendID = "7e0f1a8a-55c4-44ac-b74f-6cf53102e3c2"

	req := model.CreateLendBookRequest{
		BookID:     "b57e29c1-4f16-4f66-b1c8-9173d8ccb3ab",
		ReaderID:   "58df81a3-7c77-44b2-8f32-b9f5a1d9f8a1",
		LendFrom:   "2024-03-01",
		LendTo:     "2024-04-01",
		LendStatus: model.StatusBorrowed,
	}

	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	repo.EXPECT().GetReader(gomock.Any(), req.ReaderID).Return(model.Reader{ID: req.ReaderID}, nil)
	repo.EXPECT().GetLendBook(gomock.Any(), lendID).Return(model.LendBook{}, errs.ErrNotFound)
	svc := newTestService(t, repo)

	_, err := svc.UpdateLendBook(authCtx(), lendID, req)
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.Equal(t, "lendBook.noLendBooks", errs.MessageKey(err))
}

func TestService_ListLendBooks_ScopedToAdmin(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	repo.EXPECT().
		ListLendBooks(gomock.Any(),
			model.LendFilter{AdminID: testAdminID, Status: model.StatusAll},
			model.ListParams{Page: 1, PageSize: 10}).
		Return([]model.LendBook{{ID: "7e0f1a8a-55c4-44ac-b74f-6cf53102e3c2"}}, 21, nil)
	svc := newTestService(t, repo)

	list, err := svc.ListLendBooks(authCtx(), model.ListQuery{LendStatus: model.StatusAll})
	require.NoError(t, err)
	require.Len(t, list.Data, 1)
	require.Equal(t, 21, list.TotalItems)
	require.Equal(t, 3, list.NumOfPages)
}

func TestService_CreateLendBook_RepoError(t *testing.T) {
	t.Parallel()
	req := model.CreateLendBookRequest{
		BookID:     "b57e29c1-4f16-4f66-b1c8-9173d8ccb3ab",
		ReaderID:   "58df81a3-7c77-44b2-8f32-b9f5a1d9f8a1",
		LendFrom:   "2024-03-01",
		LendTo:     "2024-04-01",
		LendStatus: model.StatusBorrowed,
	}

	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	repo.EXPECT().GetReader(gomock.Any(), req.ReaderID).Return(model.Reader{}, errors.New("db internal"))
	svc := newTestService(t, repo)

	_, err := svc.CreateLendBook(authCtx(), req)
	require.EqualError(t, err, "db internal")
}
