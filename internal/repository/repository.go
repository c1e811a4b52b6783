package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"library-manager/internal/model"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	CreateAdmin(ctx context.Context, admin model.Admin) error
	GetAdmin(ctx context.Context, id string) (model.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (model.Admin, error)
	UpdateAdmin(ctx context.Context, id string, req model.UpdateAdminRequest) error
	UpdateAdminPassword(ctx context.Context, id, passwordHash string) error
	UpdateAdminPhoto(ctx context.Context, id string, photo *string) error
	DeleteAdmin(ctx context.Context, id string) error

	CreateBook(ctx context.Context, book model.Book) error
	GetBook(ctx context.Context, id string) (model.Book, error)
	UpdateBook(ctx context.Context, id string, req model.CreateBookRequest) error
	UpdateBookPhoto(ctx context.Context, id string, photo *string) error
	DeleteBook(ctx context.Context, id string) error
	ListBooks(ctx context.Context, adminID string, genres []string, p model.ListParams) ([]model.Book, int, error)

	CreateGenre(ctx context.Context, genre model.Genre) error
	GetGenre(ctx context.Context, id string) (model.Genre, error)
	GetGenreByKey(ctx context.Context, translationKey string) (model.Genre, error)
	UpdateGenre(ctx context.Context, id, translationKey string) error
	DeleteGenre(ctx context.Context, id string) error
	ListGenres(ctx context.Context) ([]model.Genre, error)

	CreateReader(ctx context.Context, reader model.Reader) error
	GetReader(ctx context.Context, id string) (model.Reader, error)
	UpdateReader(ctx context.Context, id string, req model.CreateReaderRequest) error
	UpdateReaderPhoto(ctx context.Context, id string, photo *string) error
	DeleteReader(ctx context.Context, id string) error
	ListReaders(ctx context.Context, adminID string, p model.ListParams) ([]model.Reader, int, error)

	CreateLendBook(ctx context.Context, lend model.LendBook) error
	GetLendBook(ctx context.Context, id string) (model.LendBook, error)
	UpdateLendBook(ctx context.Context, id string, lend model.LendBook) error
	HasActiveLend(ctx context.Context, bookID string) (bool, error)
	ListLendBooks(ctx context.Context, filter model.LendFilter, p model.ListParams) ([]model.LendBook, int, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	adminTableName    = `admin`
	bookTableName     = `book`
	genreTableName    = `genre`
	readerTableName   = `reader`
	lendBookTableName = `lend_book`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
