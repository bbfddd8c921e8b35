package habit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freddykhant/northstar/internal/habit"
)

func TestCategoryIsValid(t *testing.T) {
	for _, c := range habit.AllCategories {
		assert.True(t, c.IsValid(), "category %s", c)
	}

	assert.False(t, habit.Category("").IsValid())
	assert.False(t, habit.Category("spirit").IsValid())
	assert.False(t, habit.Category("Mind").IsValid())
}

func TestCategoryColor(t *testing.T) {
	for _, c := range habit.AllCategories {
		assert.NotEmpty(t, c.Color(), "category %s", c)
	}
	assert.Empty(t, habit.Category("spirit").Color())
}
