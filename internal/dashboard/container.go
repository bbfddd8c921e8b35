package dashboard

import (
	"github.com/freddykhant/northstar/internal/completion"
	"github.com/freddykhant/northstar/internal/habit"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(habitRepo habit.Repository, completions completion.Service) *Container {
	service := NewService(habitRepo, completions)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
