package usecase

import (
	"axle-assist/internal/chat"
	"axle-assist/internal/loads/repository"
	"axle-assist/internal/router"
	"axle-assist/pkg/log"
)

type implUsecase struct {
	router router.Router
	repo   repository.LoadRepository
	l      log.Logger
}

var _ chat.UseCase = (*implUsecase)(nil)

// New creates the chat use case over an intent router and a load repository.
func New(r router.Router, repo repository.LoadRepository, l log.Logger) *implUsecase {
	return &implUsecase{
		router: r,
		repo:   repo,
		l:      l,
	}
}
