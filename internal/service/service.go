package service

import (
	"go.uber.org/zap"

	"library-manager/internal/repository"
	"library-manager/pkg/auth"
	"library-manager/pkg/i18n"
)

type Service struct {
	log     *zap.Logger
	repo    repository.Repository
	tokens  *auth.TokenManager
	tr      i18n.Translator
	events  *Publisher
	uploads string
}

// NewService wires the core. events may be nil when Kafka publishing
// is disabled; uploads is the directory photo files are stored in.
func NewService(repo repository.Repository, tokens *auth.TokenManager, tr i18n.Translator, events *Publisher, uploads string, log *zap.Logger) *Service {
	return &Service{
		log:     log,
		repo:    repo,
		tokens:  tokens,
		tr:      tr,
		events:  events,
		uploads: uploads,
	}
}
