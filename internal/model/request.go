package model

type SignUpRequest struct {
	FirstName string `json:"firstName" validate:"required,min=2"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type UpdateAdminRequest struct {
	FirstName string `json:"firstName" validate:"required,min=2"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
}

type UpdatePasswordRequest struct {
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type CreateBookRequest struct {
	Title         string   `json:"title" validate:"required,min=2"`
	Description   string   `json:"description" validate:"required,min=10"`
	Author        string   `json:"author" validate:"required,min=2"`
	Rating        int      `json:"rating" validate:"required,min=1,max=5"`
	Genre         []string `json:"genre" validate:"required,min=1"`
	NumberOfPages int      `json:"numberOfPages" validate:"required,min=1"`
}

type CreateGenreRequest struct {
	GenreTranslationKey string `json:"genreTranslationKey" validate:"required"`
}

type ReaderAddress struct {
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required,len=6"`
}

type CreateReaderRequest struct {
	FirstName   string        `json:"firstName" validate:"required"`
	LastName    string        `json:"lastName" validate:"required"`
	PhoneNumber string        `json:"phoneNumber" validate:"required,len=9,numeric"`
	Address     ReaderAddress `json:"address" validate:"required"`
}

type CreateLendBookRequest struct {
	BookID     string     `json:"bookId" validate:"required"`
	ReaderID   string     `json:"readerId" validate:"required"`
	LendFrom   string     `json:"lendFrom" validate:"required"`
	LendTo     string     `json:"lendTo" validate:"required"`
	LendStatus LendStatus `json:"lendStatus" validate:"required,oneof=borrowed available"`
}
