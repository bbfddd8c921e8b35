package completion

import (
	"gorm.io/gorm"

	"github.com/freddykhant/northstar/internal/habit"
)

type Container struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewContainer(db *gorm.DB, habitRepo habit.Repository) *Container {
	repo := NewRepository(db)
	service := NewService(repo, habitRepo)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
