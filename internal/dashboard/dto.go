package dashboard

import (
	"github.com/google/uuid"

	"github.com/freddykhant/northstar/internal/dates"
	"github.com/freddykhant/northstar/internal/habit"
)

type ChecklistItem struct {
	HabitID     uuid.UUID      `json:"habit_id"`
	Name        string         `json:"name"`
	Category    habit.Category `json:"category"`
	Color       string         `json:"color"`
	IsCompleted bool           `json:"is_completed"`
}

type HabitRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CategoryStat struct {
	Category habit.Category `json:"category"`
	Count    int            `json:"count"`
	Habits   []HabitRef     `json:"habits"`
}

type DayStatsResponse struct {
	Date             dates.Date     `json:"date"`
	TotalCompletions int            `json:"total_completions"`
	ByCategory       []CategoryStat `json:"by_category"`
}

// DayCell is one square of the activity grid. Valid is false only for
// leading pad cells that exist to align the grid on a week boundary;
// a real day with no completions is Valid with all categories false.
type DayCell struct {
	Date      dates.Date `json:"date"`
	Valid     bool       `json:"valid"`
	Mind      bool       `json:"mind"`
	Body      bool       `json:"body"`
	Soul      bool       `json:"soul"`
	Count     int        `json:"count"`
	Color     string     `json:"color,omitempty"`
	Intensity float64    `json:"intensity"`
}

type ActivityResponse struct {
	Days          []DayCell `json:"days"`
	CurrentStreak int       `json:"current_streak"`
	BestStreak    int       `json:"best_streak"`
}
