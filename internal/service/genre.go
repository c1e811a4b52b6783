package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"library-manager/internal/errs"
	"library-manager/internal/model"
)

// CreateGenre stores the key lower-cased; uniqueness is
// case-insensitive so "Sci-Fi" collides with an existing "sci-fi".
func (s *Service) CreateGenre(ctx context.Context, req model.CreateGenreRequest) (model.Message, error) {
	key := strings.ToLower(req.GenreTranslationKey)
	genre := model.Genre{
		ID:             uuid.New().String(),
		TranslationKey: key,
	}
	if err := s.repo.CreateGenre(ctx, genre); err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return model.Message{}, errs.WithKey(errs.ErrAlreadyExists, "genre.genreAlreadyExists")
		}
		return model.Message{}, err
	}
	return model.Message{Message: s.tr.Resolve("genre.genreCreated")}, nil
}

func (s *Service) UpdateGenre(ctx context.Context, id string, req model.CreateGenreRequest) (model.Message, error) {
	if _, err := s.repo.GetGenre(ctx, id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Message{}, errs.WithKey(errs.ErrNotFound, "genre.genreNotFound")
		}
		return model.Message{}, err
	}
	key := strings.ToLower(req.GenreTranslationKey)
	if _, err := s.repo.GetGenreByKey(ctx, key); err == nil {
		return model.Message{}, errs.WithKey(errs.ErrAlreadyExists, "genre.genreAlreadyExists")
	} else if !errors.Is(err, errs.ErrNotFound) {
		return model.Message{}, err
	}
	if err := s.repo.UpdateGenre(ctx, id, key); err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return model.Message{}, errs.WithKey(errs.ErrAlreadyExists, "genre.genreAlreadyExists")
		}
		return model.Message{}, err
	}
	return model.Message{Message: s.tr.Resolve("genre.genreUpdated")}, nil
}

func (s *Service) DeleteGenre(ctx context.Context, id string) (model.Message, error) {
	if err := s.repo.DeleteGenre(ctx, id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Message{}, errs.WithKey(errs.ErrNotFound, "genre.genreNotFound")
		}
		return model.Message{}, err
	}
	return model.Message{Message: s.tr.Resolve("genre.genreRemoved")}, nil
}

func (s *Service) GetGenre(ctx context.Context, id string) (model.Genre, error) {
	genre, err := s.repo.GetGenre(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Genre{}, errs.WithKey(errs.ErrNotFound, "genre.genreNotFound")
		}
		return model.Genre{}, err
	}
	return genre, nil
}

func (s *Service) ListGenres(ctx context.Context) ([]model.Genre, error) {
	return s.repo.ListGenres(ctx)
}
