package completion

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freddykhant/northstar/internal/dates"
)

// ErrDuplicateCell reports an insert that lost a race against another
// toggle on the same (habit, date, user) cell. Callers treat it as
// "already completed", never as a failure.
var ErrDuplicateCell = errors.New("completion already recorded for this habit and date")

type Repository interface {
	Create(e *CompletionEvent) error
	// DeleteByCell removes the cell's event if present and reports
	// whether a row was actually deleted.
	DeleteByCell(habitID, userID uuid.UUID, date dates.Date) (bool, error)
	ExistsByCell(habitID, userID uuid.UUID, date dates.Date) (bool, error)
	// ListRange returns the user's events in [start, end] inclusive,
	// date-sorted, with each event's habit preloaded so callers get the
	// category without a second round trip.
	ListRange(userID uuid.UUID, start, end dates.Date) ([]*CompletionEvent, error)
	ListHabitIDsByDay(userID uuid.UUID, date dates.Date) ([]uuid.UUID, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(e *CompletionEvent) error {
	if err := r.db.Create(e).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateCell
		}
		return err
	}
	return nil
}

func (r *repository) DeleteByCell(habitID, userID uuid.UUID, date dates.Date) (bool, error) {
	res := r.db.Delete(
		&CompletionEvent{},
		"habit_id = ? AND user_id = ? AND completed_date = ?",
		habitID, userID, date,
	)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) ExistsByCell(habitID, userID uuid.UUID, date dates.Date) (bool, error) {
	var count int64
	err := r.db.Model(&CompletionEvent{}).
		Where("habit_id = ? AND user_id = ? AND completed_date = ?", habitID, userID, date).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) ListRange(userID uuid.UUID, start, end dates.Date) ([]*CompletionEvent, error) {
	var events []*CompletionEvent
	err := r.db.
		Preload("Habit").
		Where("user_id = ? AND completed_date BETWEEN ? AND ?", userID, start, end).
		Order("completed_date ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *repository) ListHabitIDsByDay(userID uuid.UUID, date dates.Date) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&CompletionEvent{}).
		Where("user_id = ? AND completed_date = ?", userID, date).
		Pluck("habit_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
