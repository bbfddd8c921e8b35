package dashboard_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freddykhant/northstar/internal/completion"
	"github.com/freddykhant/northstar/internal/dashboard"
	"github.com/freddykhant/northstar/internal/dates"
	"github.com/freddykhant/northstar/internal/habit"
)

func event(date dates.Date, category habit.Category, name string) *completion.CompletionEvent {
	id := uuid.New()
	return &completion.CompletionEvent{
		ID:            uuid.New(),
		HabitID:       id,
		CompletedDate: date,
		Habit: habit.Habit{
			ID:       id,
			Name:     name,
			Category: category,
		},
	}
}

func TestBlendColor(t *testing.T) {
	cases := []struct {
		name   string
		vector dashboard.DayVector
		want   string
	}{
		{"None", dashboard.DayVector{}, ""},
		{"Mind", dashboard.DayVector{Mind: true}, habit.CategoryMind.Color()},
		{"Body", dashboard.DayVector{Body: true}, habit.CategoryBody.Color()},
		{"Soul", dashboard.DayVector{Soul: true}, habit.CategorySoul.Color()},
		{"MindBody", dashboard.DayVector{Mind: true, Body: true}, "#14B8A6"},
		{"MindSoul", dashboard.DayVector{Mind: true, Soul: true}, "#A855F7"},
		{"BodySoul", dashboard.DayVector{Body: true, Soul: true}, "#EAB308"},
		{"All", dashboard.DayVector{Mind: true, Body: true, Soul: true}, "#FFFFFF"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dashboard.BlendColor(tc.vector))
		})
	}
}

func TestIntensity(t *testing.T) {
	assert.Equal(t, 0.0, dashboard.Intensity(0))
	assert.Equal(t, 0.25, dashboard.Intensity(1))
	assert.Equal(t, 0.5, dashboard.Intensity(2))
	assert.Equal(t, 1.0, dashboard.Intensity(4))
	assert.Equal(t, 1.0, dashboard.Intensity(9))
}

func TestBuildChecklist(t *testing.T) {
	first := &habit.Habit{ID: uuid.New(), Name: "Journal", Category: habit.CategorySoul}
	second := &habit.Habit{ID: uuid.New(), Name: "Run", Category: habit.CategoryBody}

	items := dashboard.BuildChecklist(
		[]*habit.Habit{first, second},
		map[uuid.UUID]bool{second.ID: true},
	)

	require.Len(t, items, 2)
	assert.Equal(t, "Journal", items[0].Name)
	assert.False(t, items[0].IsCompleted)
	assert.Equal(t, "Run", items[1].Name)
	assert.True(t, items[1].IsCompleted)
	assert.Equal(t, habit.CategoryBody.Color(), items[1].Color)
}

func TestBuildDayStats(t *testing.T) {
	date := dates.Date("2025-01-10")

	t.Run("Empty", func(t *testing.T) {
		stats := dashboard.BuildDayStats(date, nil)
		assert.Equal(t, 0, stats.TotalCompletions)
		assert.Empty(t, stats.ByCategory)
	})

	t.Run("ZeroCountCategoriesOmitted", func(t *testing.T) {
		stats := dashboard.BuildDayStats(date, []*completion.CompletionEvent{
			event(date, habit.CategoryMind, "Meditate"),
		})

		assert.Equal(t, 1, stats.TotalCompletions)
		require.Len(t, stats.ByCategory, 1)
		assert.Equal(t, habit.CategoryMind, stats.ByCategory[0].Category)
		assert.Equal(t, 1, stats.ByCategory[0].Count)
		require.Len(t, stats.ByCategory[0].Habits, 1)
		assert.Equal(t, "Meditate", stats.ByCategory[0].Habits[0].Name)
	})

	t.Run("CountsSumToTotal", func(t *testing.T) {
		stats := dashboard.BuildDayStats(date, []*completion.CompletionEvent{
			event(date, habit.CategoryMind, "Meditate"),
			event(date, habit.CategoryMind, "Read"),
			event(date, habit.CategoryBody, "Run"),
			event(date, habit.CategorySoul, "Journal"),
		})

		sum := 0
		for _, s := range stats.ByCategory {
			sum += s.Count
			assert.Len(t, s.Habits, s.Count)
		}
		assert.Equal(t, stats.TotalCompletions, sum)
		assert.Equal(t, 4, stats.TotalCompletions)
	})

	t.Run("OtherDatesIgnored", func(t *testing.T) {
		stats := dashboard.BuildDayStats(date, []*completion.CompletionEvent{
			event(date.Prev(), habit.CategoryMind, "Meditate"),
		})
		assert.Equal(t, 0, stats.TotalCompletions)
	})
}

func TestBuildActivityMapCompleteness(t *testing.T) {
	start := dates.Date("2025-01-01")
	end := dates.Date("2025-01-31")

	cells := dashboard.BuildActivityMap(start, end, []*completion.CompletionEvent{
		event("2025-01-10", habit.CategoryMind, "Meditate"),
		event("2025-01-10", habit.CategoryBody, "Run"),
	})

	seen := make(map[dates.Date]int)
	valid := 0
	for _, c := range cells {
		if c.Valid {
			valid++
			seen[c.Date]++
		}
	}

	assert.Equal(t, 31, valid, "exactly one valid cell per date in range")
	for d, n := range seen {
		assert.Equal(t, 1, n, "duplicate cell for %s", d)
	}

	// 2025-01-01 is a Wednesday, so three pad cells precede it.
	require.Greater(t, len(cells), 3)
	for _, c := range cells[:3] {
		assert.False(t, c.Valid, "pad cell %s must be invalid", c.Date)
		assert.False(t, c.Mind || c.Body || c.Soul)
	}
	assert.True(t, cells[3].Valid)
	assert.Equal(t, start, cells[3].Date)
}

func TestBuildActivityMapCells(t *testing.T) {
	start := dates.Date("2025-01-05") // a Sunday, no padding
	end := dates.Date("2025-01-07")

	cells := dashboard.BuildActivityMap(start, end, []*completion.CompletionEvent{
		event("2025-01-05", habit.CategoryMind, "Meditate"),
		event("2025-01-05", habit.CategoryBody, "Run"),
	})

	require.Len(t, cells, 3)

	assert.True(t, cells[0].Mind)
	assert.True(t, cells[0].Body)
	assert.False(t, cells[0].Soul)
	assert.Equal(t, 2, cells[0].Count)
	assert.Equal(t, "#14B8A6", cells[0].Color)
	assert.Equal(t, 0.5, cells[0].Intensity)

	// A real day with no completions is valid and all false, not absent.
	assert.True(t, cells[1].Valid)
	assert.False(t, cells[1].Mind || cells[1].Body || cells[1].Soul)
	assert.Equal(t, 0, cells[1].Count)
	assert.Equal(t, 0.0, cells[1].Intensity)
}

func TestComputeStreaks(t *testing.T) {
	days := func(ss ...string) []dates.Date {
		out := make([]dates.Date, len(ss))
		for i, s := range ss {
			out[i] = dates.Date(s)
		}
		return out
	}

	t.Run("Empty", func(t *testing.T) {
		current, best := dashboard.ComputeStreaks(nil, "2025-01-07")
		assert.Equal(t, 0, current)
		assert.Equal(t, 0, best)
	})

	t.Run("GapBreaksRun", func(t *testing.T) {
		// Five consecutive days, a gap, then one more day.
		history := days("2025-01-01", "2025-01-02", "2025-01-03", "2025-01-04", "2025-01-05", "2025-01-07")

		current, best := dashboard.ComputeStreaks(history, "2025-01-07")
		assert.Equal(t, 5, best)
		assert.Equal(t, 1, current)
	})

	t.Run("TodayMissingDoesNotBreak", func(t *testing.T) {
		history := days("2025-01-05", "2025-01-06")

		// No completion yet today; the run ending yesterday holds.
		current, best := dashboard.ComputeStreaks(history, "2025-01-07")
		assert.Equal(t, 2, current)
		assert.Equal(t, 2, best)
	})

	t.Run("FullDayGapBreaks", func(t *testing.T) {
		history := days("2025-01-05", "2025-01-06")

		current, best := dashboard.ComputeStreaks(history, "2025-01-08")
		assert.Equal(t, 0, current)
		assert.Equal(t, 2, best)
	})

	t.Run("Monotonicity", func(t *testing.T) {
		history := days("2025-01-05", "2025-01-06")
		current, _ := dashboard.ComputeStreaks(history, "2025-01-07")

		// Completing the next consecutive day extends the streak by one.
		extended := append(history, "2025-01-07")
		next, _ := dashboard.ComputeStreaks(extended, "2025-01-07")
		assert.Equal(t, current+1, next)

		// A completion that leaves a gap does not extend it.
		gapped := append(days("2025-01-05", "2025-01-06"), "2025-01-09")
		after, _ := dashboard.ComputeStreaks(gapped, "2025-01-09")
		assert.Equal(t, 1, after)
	})

	t.Run("SingleDayToday", func(t *testing.T) {
		current, best := dashboard.ComputeStreaks(days("2025-01-07"), "2025-01-07")
		assert.Equal(t, 1, current)
		assert.Equal(t, 1, best)
	})
}

func TestSuccessDays(t *testing.T) {
	got := dashboard.SuccessDays([]*completion.CompletionEvent{
		event("2025-01-01", habit.CategoryMind, "Meditate"),
		event("2025-01-01", habit.CategoryBody, "Run"),
		event("2025-01-03", habit.CategorySoul, "Journal"),
	})
	assert.Equal(t, []dates.Date{"2025-01-01", "2025-01-03"}, got)
}
