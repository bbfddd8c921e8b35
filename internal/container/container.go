package container

import (
	"context"
	"log"
	"os"

	"github.com/freddykhant/northstar/internal/auth"
	"github.com/freddykhant/northstar/internal/completion"
	"github.com/freddykhant/northstar/internal/config"
	"github.com/freddykhant/northstar/internal/dashboard"
	"github.com/freddykhant/northstar/internal/habit"
	"github.com/freddykhant/northstar/internal/user"
)

type Container struct {
	UserContainer       *user.UserContainer
	HabitContainer      *habit.Container
	CompletionContainer *completion.Container
	DashboardContainer  *dashboard.Container
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&user.User{},
		&habit.Habit{},
		&completion.CompletionEvent{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	habitContainer := habit.NewContainer(config.DB)
	completionContainer := completion.NewContainer(config.DB, habitContainer.Repo)
	dashboardContainer := dashboard.NewContainer(habitContainer.Repo, completionContainer.Service)

	return &Container{
		UserContainer:       userContainer,
		HabitContainer:      habitContainer,
		CompletionContainer: completionContainer,
		DashboardContainer:  dashboardContainer,
	}
}
