package usecase

import (
	"mindlyst/internal/tasklist/repository"
	pkgLog "mindlyst/pkg/log"
)

// implUseCase is the private implementation of tasklist.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    pkgLog.Logger
}

// New creates a new tasklist UseCase implementation.
func New(repo repository.Repository, l pkgLog.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
