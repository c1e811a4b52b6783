package service_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"library-manager/internal/errs"
	"library-manager/internal/model"
	repo_mocks "library-manager/internal/repository/mocks"
	"library-manager/internal/service"
	"library-manager/locales"
	"library-manager/pkg/i18n"
)

func newTestPhotoService(t *testing.T, repo *repo_mocks.MockRepository, uploads string) *service.Service {
	t.Helper()
	tr, err := i18n.NewTranslator(locales.FS, "en")
	require.NoError(t, err)
	log := zap.NewExample().Named("test")
	return service.NewService(repo, nil, tr, nil, uploads, log)
}

func TestService_UploadBookPhoto(t *testing.T) {
	t.Parallel()
	const bookID = "b57e29c1-4f16-4f66-b1c8-9173d8ccb3ab"
	uploads := t.TempDir()

	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	repo.EXPECT().GetBook(gomock.Any(), bookID).Return(model.Book{ID: bookID}, nil).Times(2)
	ref := "/uploads/cover.png"
	repo.EXPECT().UpdateBookPhoto(gomock.Any(), bookID, &ref).Return(nil).Times(2)
	svc := newTestPhotoService(t, repo, uploads)

	msg, err := svc.UploadBookPhoto(context.Background(), bookID, service.PhotoUpload{
		Filename:    "cover.png",
		ContentType: "image/png",
		Content:     strings.NewReader("first"),
	})
	require.NoError(t, err)
	require.Equal(t, "File uploaded", msg.Message)

	// same filename overwrites the stored file
	_, err = svc.UploadBookPhoto(context.Background(), bookID, service.PhotoUpload{
		Filename:    "cover.png",
		ContentType: "image/png",
		Content:     strings.NewReader("second"),
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(uploads, "cover.png"))
	require.NoError(t, err)
	require.Equal(t, "second", string(data))
}

func TestService_UploadBookPhoto_BadFormat(t *testing.T) {
	t.Parallel()
	const bookID = "b57e29c1-4f16-4f66-b1c8-9173d8ccb3ab"

	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	repo.EXPECT().GetBook(gomock.Any(), bookID).Return(model.Book{ID: bookID}, nil)
	svc := newTestPhotoService(t, repo, t.TempDir())

	_, err := svc.UploadBookPhoto(context.Background(), bookID, service.PhotoUpload{
		Filename:    "notes.txt",
		ContentType: "text/plain",
		Content:     strings.NewReader("hi"),
	})
	require.ErrorIs(t, err, errs.ErrBadRequest)
	require.Equal(t, "validation.file.badFormat", errs.MessageKey(err))
}

func TestService_UploadBookPhoto_NoFile(t *testing.T) {
	t.Parallel()
	const bookID = "b57e29c1-4f16-4f66-b1c8-9173d8ccb3ab"

	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	repo.EXPECT().GetBook(gomock.Any(), bookID).Return(model.Book{ID: bookID}, nil)
	svc := newTestPhotoService(t, repo, t.TempDir())

	_, err := svc.UploadBookPhoto(context.Background(), bookID, service.PhotoUpload{})
	require.ErrorIs(t, err, errs.ErrBadRequest)
	require.Equal(t, "validation.file.noFileUploaded", errs.MessageKey(err))
}

func TestService_DeleteBookPhoto(t *testing.T) {
	t.Parallel()
	const bookID = "b57e29c1-4f16-4f66-b1c8-9173d8ccb3ab"
	uploads := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(uploads, "cover.png"), []byte("img"), 0o644))
	ref := "/uploads/cover.png"

	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	repo.EXPECT().GetBook(gomock.Any(), bookID).Return(model.Book{ID: bookID, Photo: &ref}, nil)
	repo.EXPECT().UpdateBookPhoto(gomock.Any(), bookID, nil).Return(nil)
	svc := newTestPhotoService(t, repo, uploads)

	msg, err := svc.DeleteBookPhoto(context.Background(), bookID)
	require.NoError(t, err)
	require.Equal(t, "File removed", msg.Message)
	_, err = os.Stat(filepath.Join(uploads, "cover.png"))
	require.True(t, os.IsNotExist(err))
}

func TestService_DeleteBookPhoto_NoPhoto(t *testing.T) {
	t.Parallel()
	const bookID = "b57e29c1-4f16-4f66-b1c8-9173d8ccb3ab"

	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	repo.EXPECT().GetBook(gomock.Any(), bookID).Return(model.Book{ID: bookID}, nil)
	svc := newTestPhotoService(t, repo, t.TempDir())

	_, err := svc.DeleteBookPhoto(context.Background(), bookID)
	require.ErrorIs(t, err, errs.ErrBadRequest)
	require.Equal(t, "validation.file.noFilesToRemove", errs.MessageKey(err))
}
