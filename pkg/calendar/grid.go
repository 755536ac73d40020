package calendar

import (
	"sort"
	"time"
)

type Day struct {
	Date   string  `json:"date"`
	Events []Event `json:"events"`
}

// Bucket groups events by day, keeping those dated within [from, to].
// Days are returned in ascending order; days without events are omitted.
func Bucket(events []Event, from, to time.Time) []Day {
	lo := from.Format(DateLayout)
	hi := to.Format(DateLayout)

	byDate := make(map[string][]Event)
	for _, e := range events {
		if e.Date < lo || e.Date > hi {
			continue
		}
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	days := make([]Day, 0, len(byDate))
	for date, evs := range byDate {
		days = append(days, Day{Date: date, Events: evs})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

type Cell struct {
	Date    string  `json:"date"`
	Day     int     `json:"day"`
	InMonth bool    `json:"in_month"`
	IsToday bool    `json:"is_today"`
	Events  []Event `json:"events"`
}

type Month struct {
	Year      int      `json:"year"`
	Month     int      `json:"month"`
	WeekStart string   `json:"week_start"`
	Weeks     [][]Cell `json:"weeks"`
}

// MonthGrid lays out a month as whole weeks beginning on weekStart, padding
// with days of the neighbouring months.
func MonthGrid(year int, month time.Month, weekStart time.Weekday, events []Event, today time.Time) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	offset := (int(first.Weekday()) - int(weekStart) + 7) % 7
	cursor := first.AddDate(0, 0, -offset)

	byDate := make(map[string][]Event)
	for _, e := range events {
		byDate[e.Date] = append(byDate[e.Date], e)
	}
	todayKey := today.Format(DateLayout)

	grid := Month{Year: year, Month: int(month), WeekStart: weekStart.String()}
	for !cursor.After(last) {
		week := make([]Cell, 7)
		for i := range week {
			key := cursor.Format(DateLayout)
			evs := byDate[key]
			if evs == nil {
				evs = []Event{}
			}
			week[i] = Cell{
				Date:    key,
				Day:     cursor.Day(),
				InMonth: cursor.Month() == month,
				IsToday: key == todayKey,
				Events:  evs,
			}
			cursor = cursor.AddDate(0, 0, 1)
		}
		grid.Weeks = append(grid.Weeks, week)
	}
	return grid
}
