package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"library-manager/internal/errs"
	"library-manager/internal/model"
)

func (r *repository) CreateGenre(ctx context.Context, genre model.Genre) error {
	q, args, err := qb.Insert(genreTableName).
		Columns("id", "translation_key").
		Values(genre.ID, genre.TranslationKey).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		if isUniqueViolation(err) {
			return errs.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *repository) GetGenre(ctx context.Context, id string) (model.Genre, error) {
	return r.getGenre(ctx, sq.Eq{"id": id})
}

// GetGenreByKey matches case-insensitively; keys are stored
// lower-cased but the index guards lower(translation_key) anyway.
func (r *repository) GetGenreByKey(ctx context.Context, translationKey string) (model.Genre, error) {
	return r.getGenre(ctx, sq.Eq{"lower(translation_key)": translationKey})
}

func (r *repository) getGenre(ctx context.Context, pred sq.Eq) (model.Genre, error) {
	q, args, err := qb.Select("id", "translation_key", "created_at", "updated_at").
		From(genreTableName).
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Genre{}, err
	}
	var genre model.Genre
	if err := r.db.GetContext(ctx, &genre, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Genre{}, errs.ErrNotFound
		}
		return model.Genre{}, err
	}
	return genre, nil
}

func (r *repository) UpdateGenre(ctx context.Context, id, translationKey string) error {
	q, args, err := qb.Update(genreTableName).
		Set("translation_key", translationKey).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	return r.execAffecting(ctx, q, args)
}

func (r *repository) DeleteGenre(ctx context.Context, id string) error {
	q, args, err := qb.Delete(genreTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	return r.execAffecting(ctx, q, args)
}

// ListGenres is global: genres are shared across admins and the
// catalog is small enough to skip pagination.
func (r *repository) ListGenres(ctx context.Context) ([]model.Genre, error) {
	q, args, err := qb.Select("id", "translation_key", "created_at", "updated_at").
		From(genreTableName).
		OrderBy("translation_key asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	genres := make([]model.Genre, 0)
	if err := r.db.SelectContext(ctx, &genres, q, args...); err != nil {
		return nil, err
	}
	return genres, nil
}
