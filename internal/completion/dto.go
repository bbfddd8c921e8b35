package completion

import (
	"github.com/google/uuid"

	"github.com/freddykhant/northstar/internal/dates"
)

type ToggleCompletionDTO struct {
	HabitID string `json:"habit_id"`
	Date    string `json:"date"`
}

// ToggleResponse carries the new state of the toggled cell plus enough
// identifying data for the caller to patch any cached view in place.
type ToggleResponse struct {
	HabitID   uuid.UUID  `json:"habit_id"`
	Date      dates.Date `json:"date"`
	Completed bool       `json:"completed"`
}
