package service

import (
	"time"

	"todoboard/internal/model"
)

// TaskView is the presentation-facing shape of a task: the optional due date
// becomes an RFC3339 string, or an explicit null when unset.
type TaskView struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	DueDate   *string   `json:"due_date"`
}

// Present is a pure projection with no side effects on stored state.
func Present(t model.Task) TaskView {
	v := TaskView{
		ID:        t.ID,
		Text:      t.Text,
		Status:    string(t.Status),
		Priority:  string(t.Priority),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if t.DueDate != nil {
		due := t.DueDate.Format(time.RFC3339)
		v.DueDate = &due
	}
	return v
}
