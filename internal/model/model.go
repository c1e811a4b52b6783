package model

import (
	"time"

	"github.com/lib/pq"
)

type Admin struct {
	ID           string    `json:"id" db:"id"`
	FirstName    string    `json:"firstName" db:"first_name"`
	LastName     string    `json:"lastName" db:"last_name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Photo        *string   `json:"photo" db:"photo"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

type Book struct {
	ID            string         `json:"id" db:"id"`
	AdminID       string         `json:"adminId" db:"admin_id"`
	Title         string         `json:"title" db:"title"`
	Description   string         `json:"description" db:"description"`
	Author        string         `json:"author" db:"author"`
	Rating        int            `json:"rating" db:"rating"`
	Genre         pq.StringArray `json:"genre" db:"genre"`
	NumberOfPages int            `json:"numberOfPages" db:"number_of_pages"`
	Photo         *string        `json:"photo" db:"photo"`
	CreatedAt     time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time      `json:"updatedAt" db:"updated_at"`
}

// Genre is global and shared by every admin, referenced from books
// only by its tag string.
type Genre struct {
	ID             string    `json:"id" db:"id"`
	TranslationKey string    `json:"genreTranslationKey" db:"translation_key"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

type Reader struct {
	ID          string    `json:"id" db:"id"`
	AdminID     string    `json:"adminId" db:"admin_id"`
	FirstName   string    `json:"firstName" db:"first_name"`
	LastName    string    `json:"lastName" db:"last_name"`
	PhoneNumber string    `json:"phoneNumber" db:"phone_number"`
	Street      string    `json:"street" db:"street"`
	City        string    `json:"city" db:"city"`
	PostalCode  string    `json:"postalCode" db:"postal_code"`
	Photo       *string   `json:"photo" db:"photo"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

type LendStatus string

const (
	StatusBorrowed  LendStatus = "borrowed"
	StatusAvailable LendStatus = "available"

	// StatusAll is a filter sentinel, never stored.
	StatusAll LendStatus = "all"
)

type LendBook struct {
	ID         string     `json:"id" db:"id"`
	AdminID    string     `json:"adminId" db:"admin_id"`
	BookID     string     `json:"bookId" db:"book_id"`
	ReaderID   string     `json:"readerId" db:"reader_id"`
	LendFrom   time.Time  `json:"lendFrom" db:"lend_from"`
	LendTo     time.Time  `json:"lendTo" db:"lend_to"`
	LendStatus LendStatus `json:"lendStatus" db:"lend_status"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time  `json:"updatedAt" db:"updated_at"`
}
