package service

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"library-manager/internal/errs"
	"library-manager/internal/model"
	"library-manager/pkg/auth"
)

// PhotoUpload is one multipart file as received by a handler.
type PhotoUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

func (s *Service) UploadAdminPhoto(ctx context.Context, upload PhotoUpload) (model.Message, error) {
	claims, err := auth.FromContext(ctx)
	if err != nil {
		return model.Message{}, errs.WithKey(errs.ErrUnauthorized, "auth.unauthorized")
	}
	if _, err := s.repo.GetAdmin(ctx, claims.UserID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Message{}, errs.WithKey(errs.ErrNotFound, "admin.adminNotFound")
		}
		return model.Message{}, err
	}
	return s.uploadPhoto(ctx, upload, func(ctx context.Context, ref *string) error {
		return s.repo.UpdateAdminPhoto(ctx, claims.UserID, ref)
	})
}

func (s *Service) DeleteAdminPhoto(ctx context.Context) (model.Message, error) {
	claims, err := auth.FromContext(ctx)
	if err != nil {
		return model.Message{}, errs.WithKey(errs.ErrUnauthorized, "auth.unauthorized")
	}
	admin, err := s.repo.GetAdmin(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Message{}, errs.WithKey(errs.ErrNotFound, "admin.adminNotFound")
		}
		return model.Message{}, err
	}
	return s.deletePhoto(ctx, admin.Photo, func(ctx context.Context) error {
		return s.repo.UpdateAdminPhoto(ctx, claims.UserID, nil)
	})
}

func (s *Service) UploadBookPhoto(ctx context.Context, id string, upload PhotoUpload) (model.Message, error) {
	if _, err := s.repo.GetBook(ctx, id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Message{}, errs.WithKey(errs.ErrNotFound, "book.bookNotFound")
		}
		return model.Message{}, err
	}
	return s.uploadPhoto(ctx, upload, func(ctx context.Context, ref *string) error {
		return s.repo.UpdateBookPhoto(ctx, id, ref)
	})
}

func (s *Service) DeleteBookPhoto(ctx context.Context, id string) (model.Message, error) {
	book, err := s.repo.GetBook(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Message{}, errs.WithKey(errs.ErrNotFound, "book.bookNotFound")
		}
		return model.Message{}, err
	}
	return s.deletePhoto(ctx, book.Photo, func(ctx context.Context) error {
		return s.repo.UpdateBookPhoto(ctx, id, nil)
	})
}

func (s *Service) UploadReaderPhoto(ctx context.Context, id string, upload PhotoUpload) (model.Message, error) {
	if _, err := s.repo.GetReader(ctx, id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Message{}, errs.WithKey(errs.ErrNotFound, "reader.readerNotFound")
		}
		return model.Message{}, err
	}
	return s.uploadPhoto(ctx, upload, func(ctx context.Context, ref *string) error {
		return s.repo.UpdateReaderPhoto(ctx, id, ref)
	})
}

func (s *Service) DeleteReaderPhoto(ctx context.Context, id string) (model.Message, error) {
	reader, err := s.repo.GetReader(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Message{}, errs.WithKey(errs.ErrNotFound, "reader.readerNotFound")
		}
		return model.Message{}, err
	}
	return s.deletePhoto(ctx, reader.Photo, func(ctx context.Context) error {
		return s.repo.UpdateReaderPhoto(ctx, id, nil)
	})
}

// uploadPhoto stores the file under the uploads dir keyed by the
// original filename (a second upload with the same name overwrites)
// and persists the public /uploads/<name> reference.
func (s *Service) uploadPhoto(ctx context.Context, upload PhotoUpload, persist func(ctx context.Context, ref *string) error) (model.Message, error) {
	if upload.Content == nil || upload.Filename == "" {
		return model.Message{}, errs.WithKey(errs.ErrBadRequest, "validation.file.noFileUploaded")
	}
	if c, ok := upload.Content.(io.Closer); ok {
		defer c.Close() //nolint:errcheck
	}
	if !strings.HasPrefix(upload.ContentType, "image") {
		return model.Message{}, errs.WithKey(errs.ErrBadRequest, "validation.file.badFormat")
	}

	name := filepath.Base(upload.Filename)
	dst, err := os.Create(filepath.Join(s.uploads, name))
	if err != nil {
		return model.Message{}, errs.WithKey(err, "validation.file.somethingWentWrong")
	}
	defer dst.Close()
	if _, err := io.Copy(dst, upload.Content); err != nil {
		return model.Message{}, errs.WithKey(err, "validation.file.somethingWentWrong")
	}

	ref := "/uploads/" + name
	if err := persist(ctx, &ref); err != nil {
		return model.Message{}, err
	}
	return model.Message{Message: s.tr.Resolve("validation.file.fileUploadedSuccessfully")}, nil
}

// deletePhoto removes the stored file and clears the reference.
func (s *Service) deletePhoto(ctx context.Context, photo *string, persist func(ctx context.Context) error) (model.Message, error) {
	if photo == nil || *photo == "" {
		return model.Message{}, errs.WithKey(errs.ErrBadRequest, "validation.file.noFilesToRemove")
	}
	name := filepath.Base(*photo)
	path := filepath.Join(s.uploads, name)
	if _, err := os.Stat(path); err != nil {
		return model.Message{}, errs.WithKey(errs.ErrBadRequest, "validation.file.noFilesToRemove")
	}
	if err := persist(ctx); err != nil {
		return model.Message{}, err
	}
	if err := os.Remove(path); err != nil {
		return model.Message{}, errs.WithKey(err, "validation.file.somethingWentWrong")
	}
	return model.Message{Message: s.tr.Resolve("validation.file.fileRemovedSuccessfully")}, nil
}
