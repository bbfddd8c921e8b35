package completion

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/freddykhant/northstar/internal/config"
	"github.com/freddykhant/northstar/internal/dates"
	"github.com/freddykhant/northstar/internal/habit"
)

var (
	ErrHabitNotFound = errors.New("habit not found")
	ErrInvalidRange  = errors.New("start date must not be after end date")
)

type Service interface {
	// Toggle flips the completion state of one (habit, date) cell. The
	// caller never specifies the target state, only the cell.
	Toggle(ctx context.Context, userID, habitID uuid.UUID, date dates.Date) (*ToggleResponse, error)
	QueryRange(ctx context.Context, userID uuid.UUID, start, end dates.Date) ([]*CompletionEvent, error)
	QueryDay(ctx context.Context, userID uuid.UUID, date dates.Date) (map[uuid.UUID]bool, error)
}

type service struct {
	repo      Repository
	habitRepo habit.Repository
}

func NewService(repo Repository, habitRepo habit.Repository) Service {
	return &service{repo: repo, habitRepo: habitRepo}
}

func (s *service) Toggle(ctx context.Context, userID, habitID uuid.UUID, date dates.Date) (*ToggleResponse, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"habit_id": habitID,
		"user_id":  userID,
		"date":     date,
	})

	if _, err := s.habitRepo.FindByIDAndUserID(habitID, userID); err != nil {
		if errors.Is(err, habit.ErrNotFound) {
			log.Warn("Toggle on habit that does not exist or is not owned by user")
			return nil, ErrHabitNotFound
		}
		log.WithError(err).Error("Failed to verify habit ownership")
		return nil, err
	}

	deleted, err := s.repo.DeleteByCell(habitID, userID, date)
	if err != nil {
		log.WithError(err).Error("Failed to delete completion")
		return nil, err
	}
	if deleted {
		log.Debug("Completion removed")
		return &ToggleResponse{HabitID: habitID, Date: date, Completed: false}, nil
	}

	event := CompletionEvent{
		HabitID:       habitID,
		UserID:        userID,
		CompletedDate: date,
	}
	if err := s.repo.Create(&event); err != nil {
		// A concurrent toggle inserted the cell between our delete and
		// create. The unique index guarantees a single row exists, so
		// the cell is completed either way.
		if errors.Is(err, ErrDuplicateCell) {
			log.Debug("Toggle race settled as completed")
			return &ToggleResponse{HabitID: habitID, Date: date, Completed: true}, nil
		}
		log.WithError(err).Error("Failed to record completion")
		return nil, err
	}

	log.Debug("Completion recorded")
	return &ToggleResponse{HabitID: habitID, Date: date, Completed: true}, nil
}

func (s *service) QueryRange(ctx context.Context, userID uuid.UUID, start, end dates.Date) ([]*CompletionEvent, error) {
	if start.After(end) {
		return nil, ErrInvalidRange
	}

	events, err := s.repo.ListRange(userID, start, end)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to query completion range")
		return nil, err
	}
	return events, nil
}

func (s *service) QueryDay(ctx context.Context, userID uuid.UUID, date dates.Date) (map[uuid.UUID]bool, error) {
	ids, err := s.repo.ListHabitIDsByDay(userID, date)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to query completions for day")
		return nil, err
	}

	done := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		done[id] = true
	}
	return done, nil
}
