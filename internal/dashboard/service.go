package dashboard

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/freddykhant/northstar/internal/auth"
	"github.com/freddykhant/northstar/internal/completion"
	"github.com/freddykhant/northstar/internal/config"
	"github.com/freddykhant/northstar/internal/dates"
	"github.com/freddykhant/northstar/internal/habit"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidRange = completion.ErrInvalidRange
)

// Service is the read side of the core: it derives every dashboard view
// on demand from the completion store and the habit directory, holding
// no state of its own. Callers may cache responses; correctness never
// depends on it.
type Service interface {
	GetDailyChecklist(ctx context.Context, date dates.Date) ([]ChecklistItem, error)
	GetDayStats(ctx context.Context, date dates.Date) (*DayStatsResponse, error)
	GetActivityMap(ctx context.Context, start, end dates.Date) (*ActivityResponse, error)
}

type service struct {
	habitRepo   habit.Repository
	completions completion.Service
}

func NewService(habitRepo habit.Repository, completions completion.Service) Service {
	return &service{habitRepo: habitRepo, completions: completions}
}

func userIDFromContext(ctx context.Context) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	return id, nil
}

func (s *service) GetDailyChecklist(ctx context.Context, date dates.Date) ([]ChecklistItem, error) {
	log := config.WithContext(ctx)

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	habits, err := s.habitRepo.FindActiveByUserID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load active habits for checklist")
		return nil, err
	}

	done, err := s.completions.QueryDay(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	return BuildChecklist(habits, done), nil
}

func (s *service) GetDayStats(ctx context.Context, date dates.Date) (*DayStatsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	events, err := s.completions.QueryRange(ctx, userID, date, date)
	if err != nil {
		return nil, err
	}

	stats := BuildDayStats(date, events)
	return &stats, nil
}

func (s *service) GetActivityMap(ctx context.Context, start, end dates.Date) (*ActivityResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	events, err := s.completions.QueryRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	current, best := ComputeStreaks(SuccessDays(events), dates.Today())

	return &ActivityResponse{
		Days:          BuildActivityMap(start, end, events),
		CurrentStreak: current,
		BestStreak:    best,
	}, nil
}
