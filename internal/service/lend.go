package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"library-manager/internal/errs"
	"library-manager/internal/model"
	"library-manager/pkg/auth"
)

// CreateLendBook records a book being lent to a reader. A book with
// any currently borrowed loan record cannot be lent again; the check
// here is backstopped by the store's partial unique index, so two
// concurrent creates cannot both slip through.
func (s *Service) CreateLendBook(ctx context.Context, req model.CreateLendBookRequest) (model.Message, error) {
	claims, err := auth.FromContext(ctx)
	if err != nil {
		return model.Message{}, errs.WithKey(errs.ErrUnauthorized, "auth.unauthorized")
	}
	lendFrom, lendTo, err := parseLendDates(req.LendFrom, req.LendTo)
	if err != nil {
		return model.Message{}, err
	}

	if _, err := s.repo.GetReader(ctx, req.ReaderID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Message{}, errs.WithKey(errs.ErrNotFound, "reader.readerNotFound")
		}
		return model.Message{}, err
	}
	if _, err := s.repo.GetBook(ctx, req.BookID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Message{}, errs.WithKey(errs.ErrNotFound, "book.bookNotFound")
		}
		return model.Message{}, err
	}
	active, err := s.repo.HasActiveLend(ctx, req.BookID)
	if err != nil {
		return model.Message{}, err
	}
	if active {
		return model.Message{}, errs.WithKey(errs.ErrBadRequest, "lendBook.bookAlreadyLended")
	}

	lend := model.LendBook{
		ID:         uuid.New().String(),
		AdminID:    claims.UserID,
		BookID:     req.BookID,
		ReaderID:   req.ReaderID,
		LendFrom:   lendFrom,
		LendTo:     lendTo,
		LendStatus: req.LendStatus,
	}
	if err := s.repo.CreateLendBook(ctx, lend); err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return model.Message{}, errs.WithKey(errs.ErrBadRequest, "lendBook.bookAlreadyLended")
		}
		return model.Message{}, err
	}

	s.events.PublishLendEvent(model.LendEvent{
		Type:     model.LendEventCreated,
		LendID:   lend.ID,
		AdminID:  lend.AdminID,
		BookID:   lend.BookID,
		ReaderID: lend.ReaderID,
		Status:   lend.LendStatus,
	})
	return model.Message{Message: s.tr.Resolve("lendBook.createLendBook")}, nil
}

// UpdateLendBook overwrites every mutable field of a loan record.
// Unlike create it does not re-check the active-loan precondition;
// only the store's partial index still rejects a second borrowed row
// per book.
func (s *Service) UpdateLendBook(ctx context.Context, id string, req model.CreateLendBookRequest) (model.Message, error) {
	claims, err := auth.FromContext(ctx)
	if err != nil {
		return model.Message{}, errs.WithKey(errs.ErrUnauthorized, "auth.unauthorized")
	}
	lendFrom, lendTo, err := parseLendDates(req.LendFrom, req.LendTo)
	if err != nil {
		return model.Message{}, err
	}

	if _, err := s.repo.GetReader(ctx, req.ReaderID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Message{}, errs.WithKey(errs.ErrNotFound, "reader.readerNotFound")
		}
		return model.Message{}, err
	}
	if _, err := s.repo.GetLendBook(ctx, id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Message{}, errs.WithKey(errs.ErrNotFound, "lendBook.noLendBooks")
		}
		return model.Message{}, err
	}

	lend := model.LendBook{
		BookID:     req.BookID,
		ReaderID:   req.ReaderID,
		LendFrom:   lendFrom,
		LendTo:     lendTo,
		LendStatus: req.LendStatus,
	}
	if err := s.repo.UpdateLendBook(ctx, id, lend); err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return model.Message{}, errs.WithKey(errs.ErrBadRequest, "lendBook.bookAlreadyLended")
		}
		return model.Message{}, err
	}

	s.events.PublishLendEvent(model.LendEvent{
		Type:     model.LendEventUpdated,
		LendID:   id,
		AdminID:  claims.UserID,
		BookID:   req.BookID,
		ReaderID: req.ReaderID,
		Status:   req.LendStatus,
	})
	return model.Message{Message: s.tr.Resolve("lendBook.updatedLendBook")}, nil
}

func (s *Service) GetLendBook(ctx context.Context, id string) (model.LendBook, error) {
	lend, err := s.repo.GetLendBook(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.LendBook{}, errs.WithKey(errs.ErrNotFound, "lendBook.noLendBooks")
		}
		return model.LendBook{}, err
	}
	return lend, nil
}

// ListLendBooks lists the acting admin's loan records.
func (s *Service) ListLendBooks(ctx context.Context, query model.ListQuery) (model.LendBookList, error) {
	claims, err := auth.FromContext(ctx)
	if err != nil {
		return model.LendBookList{}, errs.WithKey(errs.ErrUnauthorized, "auth.unauthorized")
	}
	return s.listLends(ctx, model.LendFilter{AdminID: claims.UserID, Status: query.LendStatus}, query)
}

// ListReaderLendBooks lists loans of one reader; scoping comes from
// the path, not the owning admin.
func (s *Service) ListReaderLendBooks(ctx context.Context, readerID string, query model.ListQuery) (model.LendBookList, error) {
	return s.listLends(ctx, model.LendFilter{ReaderID: readerID, Status: query.LendStatus}, query)
}

// ListBookLendHistory lists the full lending history of one book.
func (s *Service) ListBookLendHistory(ctx context.Context, bookID string, query model.ListQuery) (model.LendBookList, error) {
	return s.listLends(ctx, model.LendFilter{BookID: bookID, Status: query.LendStatus}, query)
}

func (s *Service) listLends(ctx context.Context, filter model.LendFilter, query model.ListQuery) (model.LendBookList, error) {
	params := model.NormalizeListParams(query.Search, query.SortBy, query.SortDirection, query.Page, query.PageSize)
	lends, total, err := s.repo.ListLendBooks(ctx, filter, params)
	if err != nil {
		return model.LendBookList{}, err
	}
	return model.LendBookList{
		Data:     lends,
		ListMeta: model.NewListMeta(total, params.PageSize),
	}, nil
}

func parseLendDates(from, to string) (time.Time, time.Time, error) {
	lendFrom, err := time.Parse(time.DateOnly, from)
	if err != nil {
		return time.Time{}, time.Time{}, errs.WithKey(errs.ErrBadRequest, "validation.common.badObject")
	}
	lendTo, err := time.Parse(time.DateOnly, to)
	if err != nil {
		return time.Time{}, time.Time{}, errs.WithKey(errs.ErrBadRequest, "validation.common.badObject")
	}
	return lendFrom, lendTo, nil
}
