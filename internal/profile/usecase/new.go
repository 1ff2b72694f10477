package usecase

import (
	"bank-api/internal/profile"
	pkgLog "bank-api/pkg/log"
)

type usecase struct {
	l pkgLog.Logger
}

func New(l pkgLog.Logger) profile.UseCase {
	return &usecase{l: l}
}
