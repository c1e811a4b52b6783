package handler

import (
	"context"

	"library-manager/internal/model"
	"library-manager/internal/service"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

type AuthService interface {
	SignUp(ctx context.Context, req model.SignUpRequest) (model.Message, error)
	SignIn(ctx context.Context, req model.SignInRequest) (model.SignInResponse, error)
	RefreshToken(ctx context.Context, req model.RefreshTokenRequest) (model.RefreshTokenResponse, error)
	GetAdminData(ctx context.Context) (model.Admin, error)
	UpdateAdminInfo(ctx context.Context, req model.UpdateAdminRequest) (model.Message, error)
	UpdateAdminPassword(ctx context.Context, req model.UpdatePasswordRequest) (model.Message, error)
	DeleteAdmin(ctx context.Context) (model.Message, error)
	UploadAdminPhoto(ctx context.Context, upload service.PhotoUpload) (model.Message, error)
	DeleteAdminPhoto(ctx context.Context) (model.Message, error)
}

type BookService interface {
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.CreateBookResponse, error)
	GetBook(ctx context.Context, id string) (model.Book, error)
	UpdateBook(ctx context.Context, id string, req model.CreateBookRequest) (model.Message, error)
	DeleteBook(ctx context.Context, id string) (model.Message, error)
	ListBooks(ctx context.Context, query model.ListQuery) (model.BookList, error)
	UploadBookPhoto(ctx context.Context, id string, upload service.PhotoUpload) (model.Message, error)
	DeleteBookPhoto(ctx context.Context, id string) (model.Message, error)
}

type GenreService interface {
	CreateGenre(ctx context.Context, req model.CreateGenreRequest) (model.Message, error)
	UpdateGenre(ctx context.Context, id string, req model.CreateGenreRequest) (model.Message, error)
	DeleteGenre(ctx context.Context, id string) (model.Message, error)
	GetGenre(ctx context.Context, id string) (model.Genre, error)
	ListGenres(ctx context.Context) ([]model.Genre, error)
}

type ReaderService interface {
	CreateReader(ctx context.Context, req model.CreateReaderRequest) (model.CreateReaderResponse, error)
	GetReader(ctx context.Context, id string) (model.Reader, error)
	UpdateReader(ctx context.Context, id string, req model.CreateReaderRequest) (model.Message, error)
	DeleteReader(ctx context.Context, id string) (model.Message, error)
	ListReaders(ctx context.Context, query model.ListQuery) (model.ReaderList, error)
	UploadReaderPhoto(ctx context.Context, id string, upload service.PhotoUpload) (model.Message, error)
	DeleteReaderPhoto(ctx context.Context, id string) (model.Message, error)
}

type LendService interface {
	CreateLendBook(ctx context.Context, req model.CreateLendBookRequest) (model.Message, error)
	UpdateLendBook(ctx context.Context, id string, req model.CreateLendBookRequest) (model.Message, error)
	GetLendBook(ctx context.Context, id string) (model.LendBook, error)
	ListLendBooks(ctx context.Context, query model.ListQuery) (model.LendBookList, error)
	ListReaderLendBooks(ctx context.Context, readerID string, query model.ListQuery) (model.LendBookList, error)
	ListBookLendHistory(ctx context.Context, bookID string, query model.ListQuery) (model.LendBookList, error)
}
