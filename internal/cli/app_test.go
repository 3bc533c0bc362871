package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"todoboard/internal/model"
	"todoboard/internal/notify"
	"todoboard/internal/repo"
	"todoboard/internal/service"
)

func newTestApp(t *testing.T) (*App, *service.TaskService, *bytes.Buffer) {
	t.Helper()

	store, err := repo.New[model.Task](nil)
	require.NoError(t, err)

	logger := zap.NewNop()
	svc := service.NewTaskService(store, logger)

	out := &bytes.Buffer{}
	notifier := notify.New(out, logger, time.Millisecond)
	// not started: pushes are queued and dropped, tests read the rendered view

	return New(svc, notifier, out, logger), svc, out
}

func runScript(t *testing.T, app *App, lines ...string) {
	t.Helper()
	script := strings.Join(lines, "\n") + "\n"
	err := app.Run(context.Background(), strings.NewReader(script))
	require.NoError(t, err)
}

func TestApp_AddListDelete(t *testing.T) {
	app, svc, out := newTestApp(t)

	runScript(t, app,
		"add Buy milk priority=medium",
		"list",
		"delete 1",
		"quit",
	)

	assert.Contains(t, out.String(), "Buy milk")
	assert.Equal(t, 0, svc.Count())
}

func TestApp_UpdateFlow(t *testing.T) {
	app, svc, out := newTestApp(t)

	runScript(t, app,
		"add Write report",
		"update 1 status=in-progress priority=high",
		"update 1 text=Write the quarterly report",
	)

	task, ok := svc.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Write the quarterly report", task.Text)
	assert.Equal(t, model.StatusInProgress, task.Status)
	assert.Equal(t, model.PriorityHigh, task.Priority)
	assert.NotContains(t, out.String(), "error:")
}

func TestApp_DueDateHandling(t *testing.T) {
	app, svc, _ := newTestApp(t)

	runScript(t, app,
		"add Pay rent due=2026-09-01",
		"update 1 priority=high",
		"update 1 due=none",
	)

	task, ok := svc.Get(1)
	require.True(t, ok)
	assert.Nil(t, task.DueDate)
	assert.Equal(t, model.PriorityHigh, task.Priority)
}

func TestApp_FilterView(t *testing.T) {
	app, _, out := newTestApp(t)

	runScript(t, app,
		"add first task",
		"add second task status=completed",
		"filter completed",
	)

	rendered := out.String()
	idx := strings.LastIndex(rendered, "-- completed")
	require.GreaterOrEqual(t, idx, 0)
	tail := rendered[idx:]
	assert.Contains(t, tail, "second task")
	assert.NotContains(t, tail, "first task")
}

func TestApp_DoneShortcut(t *testing.T) {
	app, svc, _ := newTestApp(t)

	runScript(t, app,
		"add ship it",
		"done 1",
	)

	task, ok := svc.Get(1)
	require.True(t, ok)
	assert.Equal(t, model.StatusCompleted, task.Status)
}

func TestApp_Errors(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		wantMsg string
	}{
		{
			name:    "unknown command",
			lines:   []string{"frobnicate"},
			wantMsg: `unknown command "frobnicate"`,
		},
		{
			name:    "update missing id",
			lines:   []string{"update 9 status=completed"},
			wantMsg: "error: not found",
		},
		{
			name:    "delete missing id",
			lines:   []string{"delete 9"},
			wantMsg: "error: not found",
		},
		{
			name:    "bad id",
			lines:   []string{"delete zero"},
			wantMsg: `error: bad id "zero"`,
		},
		{
			name:    "bad filter",
			lines:   []string{"filter archived"},
			wantMsg: `error: unknown filter "archived"`,
		},
		{
			name:    "empty add",
			lines:   []string{"add    "},
			wantMsg: "error: text must not be empty",
		},
		{
			name:    "unknown option",
			lines:   []string{"add task color=red"},
			wantMsg: `error: unknown option "color"`,
		},
		{
			name:    "bad due date",
			lines:   []string{"add task due=whenever"},
			wantMsg: `error: unrecognized date "whenever"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, out := newTestApp(t)
			runScript(t, app, tt.lines...)
			assert.Contains(t, out.String(), tt.wantMsg)
		})
	}
}

func TestApp_EOFEndsSession(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), strings.NewReader(""))
	assert.NoError(t, err)
}
