package dashboard

import (
	"github.com/google/uuid"

	"github.com/freddykhant/northstar/internal/completion"
	"github.com/freddykhant/northstar/internal/dates"
	"github.com/freddykhant/northstar/internal/habit"
)

// Every view in this file is a deterministic function of its inputs.
// "Today" is passed in rather than read from the clock so streak math
// stays reproducible.

// DayVector records which categories had at least one completion on a
// single day.
type DayVector struct {
	Mind bool
	Body bool
	Soul bool
}

func (v DayVector) Any() bool {
	return v.Mind || v.Body || v.Soul
}

func (v *DayVector) mark(c habit.Category) {
	switch c {
	case habit.CategoryMind:
		v.Mind = true
	case habit.CategoryBody:
		v.Body = true
	case habit.CategorySoul:
		v.Soul = true
	}
}

// BlendColor maps the 3-bit category vector of a day to its indicator
// color. Overlapping categories blend; all three read as full intensity
// white.
func BlendColor(v DayVector) string {
	switch {
	case v.Mind && v.Body && v.Soul:
		return "#FFFFFF"
	case v.Mind && v.Body:
		return "#14B8A6" // teal
	case v.Mind && v.Soul:
		return "#A855F7" // purple
	case v.Body && v.Soul:
		return "#EAB308" // yellow
	case v.Mind:
		return habit.CategoryMind.Color()
	case v.Body:
		return habit.CategoryBody.Color()
	case v.Soul:
		return habit.CategorySoul.Color()
	default:
		return ""
	}
}

// Intensity scales the indicator by total completions for the day,
// saturating at four.
func Intensity(count int) float64 {
	if count <= 0 {
		return 0
	}
	if count >= 4 {
		return 1
	}
	return 0.25 * float64(count)
}

// BuildChecklist annotates the user's active habits with their
// completion state for one day. Habit order is preserved from the
// directory (creation time descending).
func BuildChecklist(habits []*habit.Habit, done map[uuid.UUID]bool) []ChecklistItem {
	items := make([]ChecklistItem, 0, len(habits))
	for _, h := range habits {
		items = append(items, ChecklistItem{
			HabitID:     h.ID,
			Name:        h.Name,
			Category:    h.Category,
			Color:       h.Category.Color(),
			IsCompleted: done[h.ID],
		})
	}
	return items
}

// BuildDayStats totals one day's completions and breaks them down by
// category. Categories with no completions are omitted.
func BuildDayStats(date dates.Date, events []*completion.CompletionEvent) DayStatsResponse {
	byCategory := make(map[habit.Category][]HabitRef, len(habit.AllCategories))
	total := 0

	for _, e := range events {
		if e.CompletedDate != date {
			continue
		}
		total++
		byCategory[e.Habit.Category] = append(byCategory[e.Habit.Category], HabitRef{
			ID:   e.HabitID,
			Name: e.Habit.Name,
		})
	}

	stats := make([]CategoryStat, 0, len(byCategory))
	for _, c := range habit.AllCategories {
		refs := byCategory[c]
		if len(refs) == 0 {
			continue
		}
		stats = append(stats, CategoryStat{
			Category: c,
			Count:    len(refs),
			Habits:   refs,
		})
	}

	return DayStatsResponse{
		Date:             date,
		TotalCompletions: total,
		ByCategory:       stats,
	}
}

// BuildActivityMap produces exactly one cell per calendar date in
// [start, end], all-false for days without completions. Leading pad
// cells (Valid=false) align the first real day on its weekday so grid
// renderers can tell "no activity" from "before the range".
func BuildActivityMap(start, end dates.Date, events []*completion.CompletionEvent) []DayCell {
	type accum struct {
		vector DayVector
		count  int
	}
	byDate := make(map[dates.Date]*accum)
	for _, e := range events {
		a := byDate[e.CompletedDate]
		if a == nil {
			a = &accum{}
			byDate[e.CompletedDate] = a
		}
		a.vector.mark(e.Habit.Category)
		a.count++
	}

	days := dates.Range(start, end)
	pad := int(start.Weekday()) // days since Sunday
	cells := make([]DayCell, 0, pad+len(days))

	for i := pad; i > 0; i-- {
		cells = append(cells, DayCell{Date: start.AddDays(-i), Valid: false})
	}

	for _, d := range days {
		cell := DayCell{Date: d, Valid: true}
		if a := byDate[d]; a != nil {
			cell.Mind = a.vector.Mind
			cell.Body = a.vector.Body
			cell.Soul = a.vector.Soul
			cell.Count = a.count
			cell.Color = BlendColor(a.vector)
			cell.Intensity = Intensity(a.count)
		}
		cells = append(cells, cell)
	}

	return cells
}

// SuccessDays extracts the sorted distinct dates on which at least one
// habit was completed. Events arrive date-sorted from the store, so a
// single pass suffices.
func SuccessDays(events []*completion.CompletionEvent) []dates.Date {
	var days []dates.Date
	for _, e := range events {
		if len(days) == 0 || days[len(days)-1] != e.CompletedDate {
			days = append(days, e.CompletedDate)
		}
	}
	return days
}

// ComputeStreaks derives the current and best streaks from the sorted
// distinct success days in one O(n) scan. The current streak survives a
// missing today: it only breaks once a full day passes with no
// completions, so a run ending yesterday still counts.
func ComputeStreaks(successDays []dates.Date, today dates.Date) (current, best int) {
	if len(successDays) == 0 {
		return 0, 0
	}

	run := 1
	best = 1
	for i := 1; i < len(successDays); i++ {
		if successDays[i-1].Next() == successDays[i] {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}

	last := successDays[len(successDays)-1]
	if last == today || last.Next() == today {
		current = run
	}
	return current, best
}
