package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"library-manager/internal/errs"
	"library-manager/internal/model"
	"library-manager/pkg/auth"
)

func (s *Service) CreateReader(ctx context.Context, req model.CreateReaderRequest) (model.CreateReaderResponse, error) {
	claims, err := auth.FromContext(ctx)
	if err != nil {
		return model.CreateReaderResponse{}, errs.WithKey(errs.ErrUnauthorized, "auth.unauthorized")
	}
	reader := model.Reader{
		ID:          uuid.New().String(),
		AdminID:     claims.UserID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Street:      req.Address.Street,
		City:        req.Address.City,
		PostalCode:  req.Address.PostalCode,
	}
	if err := s.repo.CreateReader(ctx, reader); err != nil {
		return model.CreateReaderResponse{}, err
	}
	return model.CreateReaderResponse{
		Message:  s.tr.Resolve("reader.readerCreated"),
		ReaderID: reader.ID,
	}, nil
}

func (s *Service) GetReader(ctx context.Context, id string) (model.Reader, error) {
	reader, err := s.repo.GetReader(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Reader{}, errs.WithKey(errs.ErrNotFound, "reader.readerNotFound")
		}
		return model.Reader{}, err
	}
	return reader, nil
}

func (s *Service) UpdateReader(ctx context.Context, id string, req model.CreateReaderRequest) (model.Message, error) {
	if err := s.repo.UpdateReader(ctx, id, req); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Message{}, errs.WithKey(errs.ErrNotFound, "reader.readerNotFound")
		}
		return model.Message{}, err
	}
	return model.Message{Message: s.tr.Resolve("reader.readerUpdated")}, nil
}

// DeleteReader removes the reader and force-closes their open loans;
// history rows survive with status available and lend_to stamped at
// the deletion time.
func (s *Service) DeleteReader(ctx context.Context, id string) (model.Message, error) {
	if err := s.repo.DeleteReader(ctx, id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Message{}, errs.WithKey(errs.ErrNotFound, "reader.readerNotFound")
		}
		return model.Message{}, err
	}
	s.events.PublishLendEvent(model.LendEvent{
		Type:     model.LendEventForceClosed,
		ReaderID: id,
		Status:   model.StatusAvailable,
	})
	return model.Message{Message: s.tr.Resolve("reader.readerRemoved")}, nil
}

func (s *Service) ListReaders(ctx context.Context, query model.ListQuery) (model.ReaderList, error) {
	claims, err := auth.FromContext(ctx)
	if err != nil {
		return model.ReaderList{}, errs.WithKey(errs.ErrUnauthorized, "auth.unauthorized")
	}
	params := model.NormalizeListParams(query.Search, query.SortBy, query.SortDirection, query.Page, query.PageSize)
	readers, total, err := s.repo.ListReaders(ctx, claims.UserID, params)
	if err != nil {
		return model.ReaderList{}, err
	}
	return model.ReaderList{
		Data:     readers,
		ListMeta: model.NewListMeta(total, params.PageSize),
	}, nil
}
