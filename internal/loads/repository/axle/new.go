package axle

import (
	"axle-assist/internal/loads/repository"
	pkgAxle "axle-assist/pkg/axle"
	pkgLog "axle-assist/pkg/log"
)

type implRepository struct {
	client *pkgAxle.Client
	l      pkgLog.Logger
}

var _ repository.LoadRepository = (*implRepository)(nil)

// New creates a LoadRepository backed by the Axle transaction API.
func New(client *pkgAxle.Client, l pkgLog.Logger) *implRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}
