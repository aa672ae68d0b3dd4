package handler

import (
	"github.com/deppfellow/lightbnb/internal/server"
)

// Handlers groups every HTTP handler for the router.
type Handlers struct {
	Health *HealthHandler
}

func NewHandlers(s *server.Server) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(s),
	}
}
