package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"todoboard/internal/model"
	"todoboard/internal/notify"
	"todoboard/internal/service"
)

// App is the presentation adapter: it parses user commands, calls the task
// service, and re-renders the current filtered view after every mutation.
type App struct {
	service  *service.TaskService
	notifier *notify.Notifier
	out      io.Writer
	logger   *zap.Logger
}

func New(svc *service.TaskService, notifier *notify.Notifier, out io.Writer, logger *zap.Logger) *App {
	return &App{
		service:  svc,
		notifier: notifier,
		out:      out,
		logger:   logger,
	}
}

// Run reads commands line by line until EOF, quit, or context cancellation.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(a.out, "> ")

	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Fprint(a.out, "> ")
			continue
		}

		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "quit", "exit":
			return nil
		case "help":
			a.help()
		case "add":
			a.handleAdd(args)
		case "list":
			a.render()
		case "filter":
			a.handleFilter(args)
		case "update":
			a.handleUpdate(args)
		case "done":
			a.handleDone(args)
		case "delete", "rm":
			a.handleDelete(args)
		default:
			fmt.Fprintf(a.out, "unknown command %q (try help)\n", cmd)
		}

		fmt.Fprint(a.out, "> ")
	}
	return scanner.Err()
}

func (a *App) handleAdd(args []string) {
	text, pairs, err := splitArgs(args, true)
	if err != nil {
		a.printErr(err.Error())
		return
	}

	in := service.CreateTask{Text: text}
	if v, ok := pairs["status"]; ok {
		st, err := model.ParseStatus(v)
		if err != nil {
			a.printErr(err.Error())
			return
		}
		in.Status = st
	}
	if v, ok := pairs["priority"]; ok {
		p, err := model.ParsePriority(v)
		if err != nil {
			a.printErr(err.Error())
			return
		}
		in.Priority = p
	}
	if v, ok := pairs["due"]; ok {
		due, err := model.ParseDueDate(v)
		if err != nil {
			a.printErr(err.Error())
			return
		}
		in.DueDate = &due
	}

	res := a.service.Add(in)
	if !res.IsOK() {
		a.printErr(res.Err())
		return
	}
	a.notifier.Push("added task %d", res.Value().ID)
	a.render()
}

func (a *App) handleUpdate(args []string) {
	if len(args) < 2 {
		a.printErr("usage: update <id> key=value ...")
		return
	}
	id, err := parseID(args[0])
	if err != nil {
		a.printErr(err.Error())
		return
	}

	text, pairs, err := splitArgs(args[1:], false)
	if err != nil {
		a.printErr(err.Error())
		return
	}

	var upd model.TaskUpdate
	if text != "" {
		upd.Text = &text
	}
	if v, ok := pairs["status"]; ok {
		st, err := model.ParseStatus(v)
		if err != nil {
			a.printErr(err.Error())
			return
		}
		upd.Status = &st
	}
	if v, ok := pairs["priority"]; ok {
		p, err := model.ParsePriority(v)
		if err != nil {
			a.printErr(err.Error())
			return
		}
		upd.Priority = &p
	}
	if v, ok := pairs["due"]; ok {
		if v == "none" {
			upd.RemoveDueDate = true
		} else {
			due, err := model.ParseDueDate(v)
			if err != nil {
				a.printErr(err.Error())
				return
			}
			upd.DueDate = &due
		}
	}

	res := a.service.Update(id, upd)
	if !res.IsOK() {
		a.printErr(res.Err())
		return
	}
	a.notifier.Push("updated task %d", id)
	a.render()
}

func (a *App) handleDone(args []string) {
	if len(args) != 1 {
		a.printErr("usage: done <id>")
		return
	}
	id, err := parseID(args[0])
	if err != nil {
		a.printErr(err.Error())
		return
	}

	completed := model.StatusCompleted
	res := a.service.Update(id, model.TaskUpdate{Status: &completed})
	if !res.IsOK() {
		a.printErr(res.Err())
		return
	}
	a.notifier.Push("completed task %d", id)
	a.render()
}

func (a *App) handleDelete(args []string) {
	if len(args) != 1 {
		a.printErr("usage: delete <id>")
		return
	}
	id, err := parseID(args[0])
	if err != nil {
		a.printErr(err.Error())
		return
	}

	res := a.service.Delete(id)
	if !res.IsOK() {
		a.printErr(res.Err())
		return
	}
	a.notifier.Push("deleted task %d", id)
	a.render()
}

func (a *App) handleFilter(args []string) {
	if len(args) != 1 {
		a.printErr("usage: filter <all|pending|in-progress|completed>")
		return
	}
	f, err := model.ParseFilter(args[0])
	if err != nil {
		a.printErr(err.Error())
		return
	}
	if err := a.service.SetFilter(f); err != nil {
		a.printErr(err.Error())
		return
	}
	a.render()
}

func (a *App) render() {
	todos := a.service.Todos()
	fmt.Fprintf(a.out, "-- %s (%d) --\n", a.service.Filter(), len(todos))
	for _, t := range todos {
		v := service.Present(t)
		due := "-"
		if v.DueDate != nil {
			due = *v.DueDate
		}
		fmt.Fprintf(a.out, "%3d  %-11s  %-6s  %-20s  %s\n", v.ID, v.Status, v.Priority, due, v.Text)
	}
}

func (a *App) printErr(msg string) {
	a.logger.Warn("command failed", zap.String("reason", msg))
	fmt.Fprintf(a.out, "error: %s\n", msg)
}

func (a *App) help() {
	fmt.Fprint(a.out, `commands:
  add <text> [status=...] [priority=low|medium|high] [due=DATE]
  list
  filter <all|pending|in-progress|completed>
  update <id> [text=...] [status=...] [priority=...] [due=DATE|none]
  done <id>
  delete <id>
  quit
`)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("bad id %q", s)
	}
	return id, nil
}

var pairKeys = map[string]struct{}{
	"text": {}, "status": {}, "priority": {}, "due": {},
}

// splitArgs separates key=value pairs from free text. With allowBare, bare
// tokens accumulate into the text argument; otherwise bare tokens are only
// legal as a continuation of text=.
func splitArgs(args []string, allowBare bool) (string, map[string]string, error) {
	pairs := make(map[string]string)
	var textParts []string
	inText := allowBare

	for _, tok := range args {
		key, value, isPair := strings.Cut(tok, "=")
		if isPair {
			if _, known := pairKeys[key]; !known {
				return "", nil, fmt.Errorf("unknown option %q", key)
			}
			if key == "text" {
				textParts = []string{value}
				inText = true
				continue
			}
			pairs[key] = value
			inText = false
			continue
		}
		if !inText {
			return "", nil, fmt.Errorf("unexpected argument %q", tok)
		}
		textParts = append(textParts, tok)
	}

	return strings.Join(textParts, " "), pairs, nil
}
