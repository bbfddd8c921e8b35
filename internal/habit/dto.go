package habit

import (
	"time"

	"github.com/google/uuid"
)

type CreateHabitDTO struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

type UpdateHabitDTO struct {
	Name     *string   `json:"name"`
	Category *Category `json:"category"`
	IsActive *bool     `json:"is_active"`
}

type HabitResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  Category  `json:"category"`
	Color     string    `json:"color"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toResponse(h *Habit) *HabitResponse {
	return &HabitResponse{
		ID:        h.ID,
		Name:      h.Name,
		Category:  h.Category,
		Color:     h.Category.Color(),
		IsActive:  h.IsActive,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}
