package habit

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("habit record not found")

type Repository interface {
	Create(h *Habit) error
	Update(h *Habit) error
	Delete(id uuid.UUID, userID uuid.UUID) error
	FindByIDAndUserID(id uuid.UUID, userID uuid.UUID) (*Habit, error)
	FindAllByUserID(userID uuid.UUID) ([]*Habit, error)
	FindActiveByUserID(userID uuid.UUID) ([]*Habit, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(h *Habit) error {
	return r.db.Create(h).Error
}

func (r *repository) Update(h *Habit) error {
	return r.db.Save(h).Error
}

func (r *repository) Delete(id uuid.UUID, userID uuid.UUID) error {
	res := r.db.Delete(&Habit{}, "id = ? AND user_id = ?", id, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) FindByIDAndUserID(id uuid.UUID, userID uuid.UUID) (*Habit, error) {
	var h Habit
	if err := r.db.First(&h, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}

func (r *repository) FindAllByUserID(userID uuid.UUID) ([]*Habit, error) {
	var habits []*Habit
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (r *repository) FindActiveByUserID(userID uuid.UUID) ([]*Habit, error) {
	var habits []*Habit
	if err := r.db.
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}
