package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"library-manager/internal/errs"
	"library-manager/internal/model"
	repo_mocks "library-manager/internal/repository/mocks"
)

func TestService_CreateReader(t *testing.T) {
	t.Parallel()
	req := model.CreateReaderRequest{
		FirstName:   "Anna",
		LastName:    "Nowak",
		PhoneNumber: "123456789",
		Address: model.ReaderAddress{
			Street:     "Main 1",
			City:       "Warsaw",
			PostalCode: "00-001",
		},
	}

	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	repo.EXPECT().
		CreateReader(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, reader model.Reader) error {
			require.Equal(t, testAdminID, reader.AdminID)
			require.Equal(t, "Main 1", reader.Street)
			require.Equal(t, "Warsaw", reader.City)
			require.Equal(t, "00-001", reader.PostalCode)
			return nil
		})
	svc := newTestService(t, repo)

	resp, err := svc.CreateReader(authCtx(), req)
	require.NoError(t, err)
	require.Equal(t, "Reader created", resp.Message)
	require.NotEmpty(t, resp.ReaderID)
}

func TestService_DeleteReader(t *testing.T) {
	t.Parallel()
	const readerID = "58df81a3-7c77-44b2-8f32-b9f5a1d9f8a1"

	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	repo.EXPECT().DeleteReader(gomock.Any(), readerID).Return(nil)
	svc := newTestService(t, repo)

	msg, err := svc.DeleteReader(context.Background(), readerID)
	require.NoError(t, err)
	require.Equal(t, "Reader removed", msg.Message)
}

func TestService_DeleteReader_NotFound(t *testing.T) {
	t.Parallel()
	const readerID = "58df81a3-7c77-44b2-8f32-b9f5a1d9f8a1"

	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	repo.EXPECT().DeleteReader(gomock.Any(), readerID).Return(errs.ErrNotFound)
	svc := newTestService(t, repo)

	_, err := svc.DeleteReader(context.Background(), readerID)
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.Equal(t, "reader.readerNotFound", errs.MessageKey(err))
}
