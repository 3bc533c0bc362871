package service

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"todoboard/internal/model"
	"todoboard/internal/result"
)

// TaskStore is the slice of the record store the service needs.
type TaskStore interface {
	All() []model.Task
	Get(id int64) (model.Task, bool)
	Create(t model.Task) model.Task
	Update(id int64, apply func(model.Task) model.Task) (model.Task, bool)
	Delete(id int64) bool
	Exists(id int64) bool
	Count() int
	Query(pred func(model.Task) bool) []model.Task
}

// TaskService owns the todo collection and the active list filter for one
// application session. All mutation goes through its methods.
type TaskService struct {
	store  TaskStore
	filter model.Filter
	logger *zap.Logger
}

func NewTaskService(store TaskStore, logger *zap.Logger) *TaskService {
	return &TaskService{
		store:  store,
		filter: model.FilterAll,
		logger: logger,
	}
}

// CreateTask is the input for Add. Status and Priority default to pending and
// medium when empty.
type CreateTask struct {
	Text     string
	Status   model.Status
	Priority model.Priority
	DueDate  *time.Time
}

// Add validates the input, stamps both timestamps, and delegates identity
// assignment to the store. Anything the store panics with is downgraded to a
// generic failure so callers never see an unwound stack.
func (s *TaskService) Add(in CreateTask) (res result.Result[model.Task]) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("task creation failed", zap.Any("panic", r))
			res = result.Fail[model.Task]("internal error")
		}
	}()

	text := strings.TrimSpace(in.Text)
	status := in.Status
	if status == "" {
		status = model.StatusPending
	}
	priority := in.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	if checks := result.Combine(
		validateText(text),
		validateStatus(status),
		validatePriority(priority),
	); !checks.IsOK() {
		return result.Fail[model.Task](checks.Err())
	}

	now := time.Now()
	created := s.store.Create(model.Task{
		Text:      text,
		Status:    status,
		Priority:  priority,
		CreatedAt: now,
		UpdatedAt: now,
		DueDate:   in.DueDate,
	})

	s.logger.Info("task created",
		zap.Int64("id", created.ID),
		zap.String("status", string(created.Status)),
	)
	return result.Ok(created)
}

// Update merges only the fields present in upd and always refreshes
// UpdatedAt. Due-date handling: RemoveDueDate clears it, a non-nil DueDate
// replaces it, neither leaves it untouched.
func (s *TaskService) Update(id int64, upd model.TaskUpdate) result.Result[model.Task] {
	if !s.store.Exists(id) {
		return result.Fail[model.Task]("not found")
	}

	checks := make([]result.Outcome, 0, 3)
	if upd.Text != nil {
		checks = append(checks, validateText(strings.TrimSpace(*upd.Text)))
	}
	if upd.Status != nil {
		checks = append(checks, validateStatus(*upd.Status))
	}
	if upd.Priority != nil {
		checks = append(checks, validatePriority(*upd.Priority))
	}
	if combined := result.Combine(checks...); !combined.IsOK() {
		return result.Fail[model.Task](combined.Err())
	}

	updated, ok := s.store.Update(id, func(t model.Task) model.Task {
		if upd.Text != nil {
			t.Text = strings.TrimSpace(*upd.Text)
		}
		if upd.Status != nil {
			t.Status = *upd.Status
		}
		if upd.Priority != nil {
			t.Priority = *upd.Priority
		}
		switch {
		case upd.RemoveDueDate:
			t.DueDate = nil
		case upd.DueDate != nil:
			due := *upd.DueDate
			t.DueDate = &due
		}
		t.UpdatedAt = time.Now()
		return t
	})
	if !ok {
		return result.Fail[model.Task]("not found")
	}

	s.logger.Info("task updated", zap.Int64("id", id))
	return result.Ok(updated)
}

func (s *TaskService) Delete(id int64) result.Result[bool] {
	if !s.store.Delete(id) {
		return result.Fail[bool]("not found")
	}
	s.logger.Info("task deleted", zap.Int64("id", id))
	return result.Ok(true)
}

func (s *TaskService) Get(id int64) (model.Task, bool) {
	return s.store.Get(id)
}

func (s *TaskService) Count() int {
	return s.store.Count()
}

func (s *TaskService) SetFilter(f model.Filter) error {
	if !f.Valid() {
		return fmt.Errorf("unknown filter %q", string(f))
	}
	s.filter = f
	return nil
}

func (s *TaskService) Filter() model.Filter {
	return s.filter
}

// Todos is a live projection: the active filter is re-applied to the full
// store contents on every call, in insertion order.
func (s *TaskService) Todos() []model.Task {
	if s.filter == model.FilterAll {
		return s.store.All()
	}
	return s.store.Query(s.filter.Matches)
}

func validateText(text string) result.Result[struct{}] {
	if text == "" {
		return result.Fail[struct{}]("text must not be empty")
	}
	return result.OkEmpty()
}

func validateStatus(st model.Status) result.Result[struct{}] {
	if !st.Valid() {
		return result.Fail[struct{}](fmt.Sprintf("unknown status %q", string(st)))
	}
	return result.OkEmpty()
}

func validatePriority(p model.Priority) result.Result[struct{}] {
	if !p.Valid() {
		return result.Fail[struct{}](fmt.Sprintf("unknown priority %q", string(p)))
	}
	return result.OkEmpty()
}
