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

var readerSortColumns = map[string]string{
	"firstName":   "first_name",
	"lastName":    "last_name",
	"phoneNumber": "phone_number",
	"city":        "city",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
}

func (r *repository) CreateReader(ctx context.Context, reader model.Reader) error {
	q, args, err := qb.Insert(readerTableName).
		Columns("id", "admin_id", "first_name", "last_name", "phone_number", "street", "city", "postal_code").
		Values(reader.ID, reader.AdminID, reader.FirstName, reader.LastName, reader.PhoneNumber, reader.Street, reader.City, reader.PostalCode).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		r.log.Error("CreateReader", zap.String("q", q), zap.Error(err))
		return err
	}
	return nil
}

func (r *repository) GetReader(ctx context.Context, id string) (model.Reader, error) {
	q, args, err := qb.Select("id", "admin_id", "first_name", "last_name", "phone_number", "street", "city", "postal_code", "photo", "created_at", "updated_at").
		From(readerTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Reader{}, err
	}
	var reader model.Reader
	if err := r.db.GetContext(ctx, &reader, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reader{}, errs.ErrNotFound
		}
		return model.Reader{}, err
	}
	return reader, nil
}

func (r *repository) UpdateReader(ctx context.Context, id string, req model.CreateReaderRequest) error {
	q, args, err := qb.Update(readerTableName).
		Set("first_name", req.FirstName).
		Set("last_name", req.LastName).
		Set("phone_number", req.PhoneNumber).
		Set("street", req.Address.Street).
		Set("city", req.Address.City).
		Set("postal_code", req.Address.PostalCode).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	return r.execAffecting(ctx, q, args)
}

func (r *repository) UpdateReaderPhoto(ctx context.Context, id string, photo *string) error {
	return r.updatePhoto(ctx, readerTableName, id, photo)
}

// DeleteReader removes the reader and force-closes every loan that
// references them: status flips to available and lend_to is stamped
// with the deletion time. Loan rows are kept for history. Both steps
// run in one transaction.
func (r *repository) DeleteReader(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx, `delete from reader where id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}

	closeLoans := `
update lend_book
    set lend_status = 'available',
        lend_to = now(),
        updated_at = now()
where reader_id = $1`
	if _, err := tx.ExecContext(ctx, closeLoans, id); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *repository) ListReaders(ctx context.Context, adminID string, p model.ListParams) ([]model.Reader, int, error) {
	preds := []sq.Sqlizer{sq.Eq{"admin_id": adminID}}
	if p.Search != "" {
		preds = append(preds, searchExpr(p.Search, "first_name", "last_name"))
	}

	base := qb.Select("id", "admin_id", "first_name", "last_name", "phone_number", "street", "city", "postal_code", "photo", "created_at", "updated_at").
		From(readerTableName)
	countBase := qb.Select("count(*)").From(readerTableName)
	for _, pred := range preds {
		base = base.Where(pred)
		countBase = countBase.Where(pred)
	}

	readers := make([]model.Reader, 0, p.PageSize)
	var total int

	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		q, args, err := withListing(base, sortColumn(readerSortColumns, p.SortBy), p).ToSql()
		if err != nil {
			return err
		}
		return r.db.SelectContext(ctx, &readers, q, args...)
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

	return readers, total, nil
}
