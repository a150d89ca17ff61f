package usecase

import (
	"context"
	"strings"

	"taskflow/internal/model"
	"taskflow/internal/task"
	repo "taskflow/internal/task/repository"
)

// List returns the tasks visible to the caller, filtered by status, priority and due window.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	opt, err := uc.listOptions(sc, input)
	if err != nil {
		return task.ListOutput{}, err
	}

	tasks, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}
	return task.ListOutput{Tasks: tasks}, nil
}

// Stats summarises the caller's visible tasks for the dashboard.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (task.StatsOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{VisibleTo: visibleTo(sc)})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats ListTasks: %v", err)
		return task.StatsOutput{}, err
	}

	today := uc.today()
	var out task.StatsOutput
	for _, t := range tasks {
		out.Total++
		if t.Priority == model.PriorityHigh {
			out.HighPriority++
		}
		if t.Completed {
			out.Completed++
			continue
		}
		out.Pending++
		switch {
		case t.DueDate == "":
		case t.DueDate == today:
			out.DueToday++
		case t.DueDate < today:
			out.Overdue++
		}
	}
	if out.Total > 0 {
		out.CompletionRate = float64(out.Completed) / float64(out.Total) * 100
	}
	return out, nil
}

func (uc *implUseCase) listOptions(sc model.Scope, input task.ListInput) (repo.ListTasksOptions, error) {
	opt := repo.ListTasksOptions{
		VisibleTo: visibleTo(sc),
		Completed: input.Completed,
	}

	if strings.TrimSpace(input.Priority) != "" {
		priority, ok := model.ParsePriority(input.Priority)
		if !ok {
			return repo.ListTasksOptions{}, task.ErrInvalidFilter
		}
		opt.Priority = priority
	}

	switch strings.ToLower(strings.TrimSpace(input.Due)) {
	case "":
	case task.DueToday:
		today := uc.today()
		opt.DueFrom, opt.DueTo = today, today
	case task.DueWeek:
		opt.DueFrom, opt.DueTo = uc.dates.WeekBounds(uc.now())
	case task.DueOverdue:
		pending := false
		opt.DueBefore = uc.today()
		opt.Completed = &pending
	default:
		return repo.ListTasksOptions{}, task.ErrInvalidFilter
	}

	return opt, nil
}

// visibleTo is empty for admins, who see every task.
func visibleTo(sc model.Scope) string {
	if sc.IsAdmin() {
		return ""
	}
	return sc.UserID
}
