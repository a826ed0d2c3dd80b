package http

import (
	"github.com/gin-gonic/gin"

	"axle-assist/internal/chat"
	pkgAxle "axle-assist/pkg/axle"
	pkgLog "axle-assist/pkg/log"
)

// Handler exposes the chat endpoints.
type Handler interface {
	ProcessMessage(c *gin.Context)
	SearchLoadsPassthrough(c *gin.Context)
}

type handler struct {
	l    pkgLog.Logger
	uc   chat.UseCase
	axle *pkgAxle.Client
}

var _ Handler = (*handler)(nil)

// New creates the chat HTTP handler. The axle client backs the legacy
// passthrough route only; chat turns reach the upstream through the use
// case.
func New(l pkgLog.Logger, uc chat.UseCase, axle *pkgAxle.Client) Handler {
	return &handler{
		l:    l,
		uc:   uc,
		axle: axle,
	}
}
