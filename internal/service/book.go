package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"library-manager/internal/errs"
	"library-manager/internal/model"
	"library-manager/pkg/auth"
)

func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.CreateBookResponse, error) {
	claims, err := auth.FromContext(ctx)
	if err != nil {
		return model.CreateBookResponse{}, errs.WithKey(errs.ErrUnauthorized, "auth.unauthorized")
	}
	book := model.Book{
		ID:            uuid.New().String(),
		AdminID:       claims.UserID,
		Title:         req.Title,
		Description:   req.Description,
		Author:        req.Author,
		Rating:        req.Rating,
		Genre:         req.Genre,
		NumberOfPages: req.NumberOfPages,
	}
	if err := s.repo.CreateBook(ctx, book); err != nil {
		return model.CreateBookResponse{}, err
	}
	return model.CreateBookResponse{
		Message: s.tr.Resolve("book.bookCreated"),
		BookID:  book.ID,
	}, nil
}

func (s *Service) GetBook(ctx context.Context, id string) (model.Book, error) {
	book, err := s.repo.GetBook(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Book{}, errs.WithKey(errs.ErrNotFound, "book.bookNotFound")
		}
		return model.Book{}, err
	}
	return book, nil
}

func (s *Service) UpdateBook(ctx context.Context, id string, req model.CreateBookRequest) (model.Message, error) {
	if err := s.repo.UpdateBook(ctx, id, req); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Message{}, errs.WithKey(errs.ErrNotFound, "book.bookNotFound")
		}
		return model.Message{}, err
	}
	return model.Message{Message: s.tr.Resolve("book.bookUpdated")}, nil
}

func (s *Service) DeleteBook(ctx context.Context, id string) (model.Message, error) {
	if err := s.repo.DeleteBook(ctx, id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Message{}, errs.WithKey(errs.ErrNotFound, "book.bookNotFound")
		}
		return model.Message{}, err
	}
	return model.Message{Message: s.tr.Resolve("book.bookDeleted")}, nil
}

// ListBooks is owner-scoped; the genre query parameter arrives as an
// underscore-joined tag list and every tag must match.
func (s *Service) ListBooks(ctx context.Context, query model.ListQuery) (model.BookList, error) {
	claims, err := auth.FromContext(ctx)
	if err != nil {
		return model.BookList{}, errs.WithKey(errs.ErrUnauthorized, "auth.unauthorized")
	}
	var genres []string
	if query.Genre != "" {
		genres = strings.Split(query.Genre, "_")
	}
	params := model.NormalizeListParams(query.Search, query.SortBy, query.SortDirection, query.Page, query.PageSize)
	books, total, err := s.repo.ListBooks(ctx, claims.UserID, genres, params)
	if err != nil {
		return model.BookList{}, err
	}
	return model.BookList{
		Data:     books,
		ListMeta: model.NewListMeta(total, params.PageSize),
	}, nil
}
