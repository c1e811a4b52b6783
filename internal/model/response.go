package model

import "time"

type Message struct {
	Message string `json:"message"`
}

type CreateBookResponse struct {
	Message string `json:"message"`
	BookID  string `json:"bookId"`
}

type CreateReaderResponse struct {
	Message  string `json:"message"`
	ReaderID string `json:"readerId"`
}

type SignInResponse struct {
	Message      string `json:"message"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type RefreshTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// LendEvent is the audit record published to Kafka on every loan
// state change.
type LendEvent struct {
	Type     string     `json:"type"`
	LendID   string     `json:"lendId,omitempty"`
	AdminID  string     `json:"adminId,omitempty"`
	BookID   string     `json:"bookId,omitempty"`
	ReaderID string     `json:"readerId,omitempty"`
	Status   LendStatus `json:"status,omitempty"`
	At       time.Time  `json:"at"`
}

const (
	LendEventCreated     = "lend.created"
	LendEventUpdated     = "lend.updated"
	LendEventForceClosed = "lend.force_closed"
)
