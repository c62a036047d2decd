package domain

import (
	"errors"
	"time"
)

var ErrReminderNotFound = errors.New("reminder not found")

// Reminder is a todo with scheduling metadata. Ownership semantics are
// identical to Todo.
type Reminder struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Text      string    `json:"text" bson:"text"`
	Completed bool      `json:"completed" bson:"completed"`
	OwnerID   string    `json:"owner_id" bson:"owner_id"`
	OwnerName string    `json:"owner_name" bson:"owner_name"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	DueDate   time.Time `json:"due_date" bson:"due_date"`
	Time      string    `json:"time" bson:"time"`
	Category  string    `json:"category,omitempty" bson:"category,omitempty"`
}

// ReminderGroups buckets reminders by due date relative to a reference time.
// Purely a presentation grouping; nothing is persisted.
type ReminderGroups struct {
	Today    []Reminder `json:"today"`
	Tomorrow []Reminder `json:"tomorrow"`
	Upcoming []Reminder `json:"upcoming"`
}

// GroupByDueDate splits reminders into Today/Tomorrow/Upcoming buckets.
// Overdue reminders land in Today so they stay visible. Input order is
// preserved within each bucket.
func GroupByDueDate(reminders []Reminder, now time.Time) ReminderGroups {
	startOfTomorrow := startOfDay(now).AddDate(0, 0, 1)
	startOfDayAfter := startOfTomorrow.AddDate(0, 0, 1)

	groups := ReminderGroups{
		Today:    []Reminder{},
		Tomorrow: []Reminder{},
		Upcoming: []Reminder{},
	}
	for _, r := range reminders {
		switch {
		case r.DueDate.Before(startOfTomorrow):
			groups.Today = append(groups.Today, r)
		case r.DueDate.Before(startOfDayAfter):
			groups.Tomorrow = append(groups.Tomorrow, r)
		default:
			groups.Upcoming = append(groups.Upcoming, r)
		}
	}
	return groups
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
