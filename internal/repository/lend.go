package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"library-manager/internal/errs"
	"library-manager/internal/model"
)

var lendSortColumns = map[string]string{
	"lendFrom":   "lend_from",
	"lendTo":     "lend_to",
	"lendStatus": "lend_status",
	"createdAt":  "created_at",
	"updatedAt":  "updated_at",
}

func (r *repository) CreateLendBook(ctx context.Context, lend model.LendBook) error {
	q, args, err := qb.Insert(lendBookTableName).
		Columns("id", "admin_id", "book_id", "reader_id", "lend_from", "lend_to", "lend_status").
		Values(lend.ID, lend.AdminID, lend.BookID, lend.ReaderID, lend.LendFrom, lend.LendTo, lend.LendStatus).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		// the partial unique index rejects a second borrowed row for
		// the same book, closing the check-then-insert race
		if isUniqueViolation(err) {
			return errs.ErrAlreadyExists
		}
		r.log.Error("CreateLendBook", zap.String("q", q), zap.Error(err))
		return err
	}
	return nil
}

func (r *repository) GetLendBook(ctx context.Context, id string) (model.LendBook, error) {
	q, args, err := qb.Select("id", "admin_id", "book_id", "reader_id", "lend_from", "lend_to", "lend_status", "created_at", "updated_at").
		From(lendBookTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.LendBook{}, err
	}
	var lend model.LendBook
	if err := r.db.GetContext(ctx, &lend, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.LendBook{}, errs.ErrNotFound
		}
		return model.LendBook{}, err
	}
	return lend, nil
}

func (r *repository) UpdateLendBook(ctx context.Context, id string, lend model.LendBook) error {
	q, args, err := qb.Update(lendBookTableName).
		Set("book_id", lend.BookID).
		Set("reader_id", lend.ReaderID).
		Set("lend_from", lend.LendFrom).
		Set("lend_to", lend.LendTo).
		Set("lend_status", lend.LendStatus).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	return r.execAffecting(ctx, q, args)
}

// HasActiveLend reports whether any loan record currently holds the
// book as borrowed, regardless of which admin lent it.
func (r *repository) HasActiveLend(ctx context.Context, bookID string) (bool, error) {
	q := `
	select exists (
	    select 1 from lend_book
	    where book_id = $1 and lend_status = 'borrowed'
	)`
	var active bool
	if err := r.db.QueryRowContext(ctx, q, bookID).Scan(&active); err != nil {
		return false, err
	}
	return active, nil
}

func (r *repository) ListLendBooks(ctx context.Context, filter model.LendFilter, p model.ListParams) ([]model.LendBook, int, error) {
	preds := make([]sq.Sqlizer, 0, 4)
	if filter.AdminID != "" {
		preds = append(preds, sq.Eq{"admin_id": filter.AdminID})
	}
	if filter.BookID != "" {
		preds = append(preds, sq.Eq{"book_id": filter.BookID})
	}
	if filter.ReaderID != "" {
		preds = append(preds, sq.Eq{"reader_id": filter.ReaderID})
	}
	if filter.Status != "" && filter.Status != model.StatusAll {
		preds = append(preds, sq.Eq{"lend_status": filter.Status})
	}

	base := qb.Select("id", "admin_id", "book_id", "reader_id", "lend_from", "lend_to", "lend_status", "created_at", "updated_at").
		From(lendBookTableName)
	countBase := qb.Select("count(*)").From(lendBookTableName)
	for _, pred := range preds {
		base = base.Where(pred)
		countBase = countBase.Where(pred)
	}

	lends := make([]model.LendBook, 0, p.PageSize)
	var total int

	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		q, args, err := withListing(base, sortColumn(lendSortColumns, p.SortBy), p).ToSql()
		if err != nil {
			return err
		}
		return r.db.SelectContext(ctx, &lends, q, args...)
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

	return lends, total, nil
}
