package timeline

import (
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/matheuskafuri/grid7/internal/news"
)

// Upcoming returns the events dated today or later, soonest first. Events
// sharing a date keep their input order.
func Upcoming(events []news.LaunchEvent, now time.Time) []news.LaunchEvent {
	today := calendarDay(now)

	var out []news.LaunchEvent
	for _, e := range events {
		if !eventDay(e).Before(today) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return eventDay(out[i]).Before(eventDay(out[j]))
	})
	return out
}

// Countdown renders how far away an event is, e.g. "3 months from now".
func Countdown(e news.LaunchEvent, now time.Time) string {
	day := eventDay(e)
	today := calendarDay(now)
	if day.Equal(today) {
		return "today"
	}
	return humanize.RelTime(day, today, "ago", "from now")
}

// calendarDay truncates t to midnight UTC of its local calendar date.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func eventDay(e news.LaunchEvent) time.Time {
	y, m, d := e.Date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
