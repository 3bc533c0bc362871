package model

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown status %q", s)
	}
	return st, nil
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown priority %q", s)
	}
	return p, nil
}

type Task struct {
	ID        int64      `json:"id"`
	Text      string     `json:"text"`
	Status    Status     `json:"status"`
	Priority  Priority   `json:"priority"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DueDate   *time.Time `json:"due_date,omitempty"`
}

func (t Task) Identity() int64 { return t.ID }

func (t Task) WithIdentity(id int64) Task {
	t.ID = id
	return t
}

// Clone detaches the value from stored state, including the due-date pointer.
func (t Task) Clone() Task {
	if t.DueDate != nil {
		due := *t.DueDate
		t.DueDate = &due
	}
	return t
}

// TaskUpdate carries a partial update: nil pointer fields are left unchanged.
// RemoveDueDate clears the due date; a non-nil DueDate replaces it.
type TaskUpdate struct {
	Text          *string
	Status        *Status
	Priority      *Priority
	DueDate       *time.Time
	RemoveDueDate bool
}

type Filter string

const FilterAll Filter = "all"

func (f Filter) Valid() bool {
	return f == FilterAll || Status(f).Valid()
}

func ParseFilter(s string) (Filter, error) {
	f := Filter(s)
	if !f.Valid() {
		return "", fmt.Errorf("unknown filter %q", s)
	}
	return f, nil
}

// Matches reports whether a task is visible under the filter.
func (f Filter) Matches(t Task) bool {
	return f == FilterAll || Status(f) == t.Status
}

var dueDateLayouts = []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"}

// ParseDueDate normalizes a user-supplied date string to a timestamp.
func ParseDueDate(s string) (time.Time, error) {
	for _, layout := range dueDateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
