package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"library-manager/internal/errs"
	"library-manager/internal/model"
)

var bookSortColumns = map[string]string{
	"title":         "title",
	"author":        "author",
	"rating":        "rating",
	"numberOfPages": "number_of_pages",
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
}

func (r *repository) CreateBook(ctx context.Context, book model.Book) error {
	q, args, err := qb.Insert(bookTableName).
		Columns("id", "admin_id", "title", "description", "author", "rating", "genre", "number_of_pages").
		Values(book.ID, book.AdminID, book.Title, book.Description, book.Author, book.Rating, book.Genre, book.NumberOfPages).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", q), zap.Error(err))
		return err
	}
	return nil
}

func (r *repository) GetBook(ctx context.Context, id string) (model.Book, error) {
	q, args, err := qb.Select("id", "admin_id", "title", "description", "author", "rating", "genre", "number_of_pages", "photo", "created_at", "updated_at").
		From(bookTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) UpdateBook(ctx context.Context, id string, req model.CreateBookRequest) error {
	q, args, err := qb.Update(bookTableName).
		Set("title", req.Title).
		Set("description", req.Description).
		Set("author", req.Author).
		Set("rating", req.Rating).
		Set("genre", pq.StringArray(req.Genre)).
		Set("number_of_pages", req.NumberOfPages).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	return r.execAffecting(ctx, q, args)
}

func (r *repository) UpdateBookPhoto(ctx context.Context, id string, photo *string) error {
	return r.updatePhoto(ctx, bookTableName, id, photo)
}

func (r *repository) DeleteBook(ctx context.Context, id string) error {
	q, args, err := qb.Delete(bookTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	return r.execAffecting(ctx, q, args)
}

// ListBooks scopes to the owning admin, matches search against
// title+author, and requires every genre tag to be present.
func (r *repository) ListBooks(ctx context.Context, adminID string, genres []string, p model.ListParams) ([]model.Book, int, error) {
	preds := []sq.Sqlizer{sq.Eq{"admin_id": adminID}}
	if p.Search != "" {
		preds = append(preds, searchExpr(p.Search, "title", "author"))
	}
	if len(genres) > 0 {
		preds = append(preds, sq.Expr("genre @> ?", pq.StringArray(genres)))
	}

	base := qb.Select("id", "admin_id", "title", "description", "author", "rating", "genre", "number_of_pages", "photo", "created_at", "updated_at").
		From(bookTableName)
	countBase := qb.Select("count(*)").From(bookTableName)
	for _, pred := range preds {
		base = base.Where(pred)
		countBase = countBase.Where(pred)
	}

	books := make([]model.Book, 0, p.PageSize)
	var total int

	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		q, args, err := withListing(base, sortColumn(bookSortColumns, p.SortBy), p).ToSql()
		if err != nil {
			return err
		}
		r.log.Debug("ListBooks", zap.String("query", q), zap.Any("args", args))
		return r.db.SelectContext(ctx, &books, q, args...)
	})
	gg.Go(func() error {
		q, args, err := countBase.ToSql()
		if err != nil {
			return err
		}
		return r.db.GetContext(ctx, &total, q, args...)
	})
	if err := gg.Wait(); err != nil {
		return nil, 0, err
	}

	return books, total, nil
}
