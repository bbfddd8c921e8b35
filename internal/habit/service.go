package habit

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/freddykhant/northstar/internal/config"
)

var (
	ErrHabitNotFound   = errors.New("habit not found")
	ErrInvalidCategory = errors.New("invalid category")
	ErrNameRequired    = errors.New("habit name is required")
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateHabitDTO) (*HabitResponse, error)
	List(ctx context.Context, userID uuid.UUID) ([]*HabitResponse, error)
	// ListActive returns the user's active habits ordered by creation
	// time descending; this is the directory the dashboard reads.
	ListActive(ctx context.Context, userID uuid.UUID) ([]*Habit, error)
	Get(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*HabitResponse, error)
	Update(ctx context.Context, id uuid.UUID, userID uuid.UUID, dto UpdateHabitDTO) (*HabitResponse, error)
	SetActive(ctx context.Context, id uuid.UUID, userID uuid.UUID, active bool) (*HabitResponse, error)
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, dto CreateHabitDTO) (*HabitResponse, error) {
	log := config.WithContext(ctx)

	if dto.Name == "" {
		return nil, ErrNameRequired
	}
	if !dto.Category.IsValid() {
		return nil, ErrInvalidCategory
	}

	h := Habit{
		Name:     dto.Name,
		Category: dto.Category,
		IsActive: true,
		UserID:   userID,
	}

	if err := s.repo.Create(&h); err != nil {
		log.WithError(err).Error("Failed to create habit")
		return nil, err
	}

	log.WithField("habit_id", h.ID).Info("Habit created")
	return toResponse(&h), nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]*HabitResponse, error) {
	habits, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list habits")
		return nil, err
	}

	responses := make([]*HabitResponse, 0, len(habits))
	for _, h := range habits {
		responses = append(responses, toResponse(h))
	}
	return responses, nil
}

func (s *service) ListActive(ctx context.Context, userID uuid.UUID) ([]*Habit, error) {
	habits, err := s.repo.FindActiveByUserID(userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list active habits")
		return nil, err
	}
	return habits, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*HabitResponse, error) {
	h, err := s.repo.FindByIDAndUserID(id, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}
	return toResponse(h), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, userID uuid.UUID, dto UpdateHabitDTO) (*HabitResponse, error) {
	log := config.WithContext(ctx)

	h, err := s.repo.FindByIDAndUserID(id, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}

	if dto.Name != nil {
		if *dto.Name == "" {
			return nil, ErrNameRequired
		}
		h.Name = *dto.Name
	}
	if dto.Category != nil {
		if !dto.Category.IsValid() {
			return nil, ErrInvalidCategory
		}
		h.Category = *dto.Category
	}
	if dto.IsActive != nil {
		h.IsActive = *dto.IsActive
	}

	if err := s.repo.Update(h); err != nil {
		log.WithError(err).Error("Failed to update habit")
		return nil, err
	}

	return toResponse(h), nil
}

func (s *service) SetActive(ctx context.Context, id uuid.UUID, userID uuid.UUID, active bool) (*HabitResponse, error) {
	return s.Update(ctx, id, userID, UpdateHabitDTO{IsActive: &active})
}

// Delete hard-deletes the habit; completion events cascade with it.
func (s *service) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	log := config.WithContext(ctx)

	if err := s.repo.Delete(id, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrHabitNotFound
		}
		log.WithError(err).Error("Failed to delete habit")
		return err
	}

	log.WithField("habit_id", id).Info("Habit deleted")
	return nil
}
