package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"library-manager/internal/errs"
	"library-manager/internal/model"
)

func (r *repository) CreateAdmin(ctx context.Context, admin model.Admin) error {
	q, args, err := qb.Insert(adminTableName).
		Columns("id", "first_name", "last_name", "email", "password_hash").
		Values(admin.ID, admin.FirstName, admin.LastName, admin.Email, admin.PasswordHash).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		if isUniqueViolation(err) {
			return errs.ErrAlreadyExists
		}
		r.log.Error("CreateAdmin", zap.String("q", q), zap.Error(err))
		return err
	}
	return nil
}

func (r *repository) GetAdmin(ctx context.Context, id string) (model.Admin, error) {
	return r.getAdmin(ctx, sq.Eq{"id": id})
}

func (r *repository) GetAdminByEmail(ctx context.Context, email string) (model.Admin, error) {
	return r.getAdmin(ctx, sq.Eq{"email": email})
}

func (r *repository) getAdmin(ctx context.Context, pred sq.Eq) (model.Admin, error) {
	q, args, err := qb.Select("id", "first_name", "last_name", "email", "password_hash", "photo", "created_at", "updated_at").
		From(adminTableName).
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Admin{}, err
	}
	var admin model.Admin
	if err := r.db.GetContext(ctx, &admin, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Admin{}, errs.ErrNotFound
		}
		return model.Admin{}, err
	}
	return admin, nil
}

func (r *repository) UpdateAdmin(ctx context.Context, id string, req model.UpdateAdminRequest) error {
	q, args, err := qb.Update(adminTableName).
		Set("first_name", req.FirstName).
		Set("last_name", req.LastName).
		Set("email", req.Email).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	return r.execAffecting(ctx, q, args)
}

func (r *repository) UpdateAdminPassword(ctx context.Context, id, passwordHash string) error {
	q, args, err := qb.Update(adminTableName).
		Set("password_hash", passwordHash).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	return r.execAffecting(ctx, q, args)
}

func (r *repository) UpdateAdminPhoto(ctx context.Context, id string, photo *string) error {
	return r.updatePhoto(ctx, adminTableName, id, photo)
}

func (r *repository) DeleteAdmin(ctx context.Context, id string) error {
	q, args, err := qb.Delete(adminTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	return r.execAffecting(ctx, q, args)
}

// execAffecting runs a statement that must touch an existing row;
// zero rows affected maps to ErrNotFound.
func (r *repository) execAffecting(ctx context.Context, q string, args []interface{}) error {
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return errs.ErrAlreadyExists
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// updatePhoto sets or clears the photo reference on any of the
// photo-carrying tables.
func (r *repository) updatePhoto(ctx context.Context, table, id string, photo *string) error {
	q, args, err := qb.Update(table).
		Set("photo", photo).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	return r.execAffecting(ctx, q, args)
}
