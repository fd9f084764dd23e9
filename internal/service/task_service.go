package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AlliAyobami/myToDo/internal/cache"
	dom "github.com/AlliAyobami/myToDo/internal/domain"
	"github.com/AlliAyobami/myToDo/internal/problem"
	"github.com/AlliAyobami/myToDo/internal/repo"
	"github.com/AlliAyobami/myToDo/internal/timeline"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

// TaskService handles task CRUD and the timeline pipeline.
type TaskService struct {
	repo   repo.TaskRepo
	lists  repo.ListRepo
	cache  *cache.TaskCache
	engine *timeline.Engine
	sf     singleflight.Group
}

// NewTaskService creates a TaskService. If c is nil, caching is disabled.
func NewTaskService(r repo.TaskRepo, lists repo.ListRepo, c *cache.TaskCache, engine *timeline.Engine) *TaskService {
	return &TaskService{repo: r, lists: lists, cache: c, engine: engine}
}

func (s *TaskService) Create(ctx context.Context, userID, listID int64, title, desc string, dueDate *time.Time) (dom.Task, error) {
	title = strings.TrimSpace(title)
	desc = strings.TrimSpace(desc)
	if title == "" {
		return dom.Task{}, problem.Invalid("title is required")
	}
	if dueDate != nil && dueDate.Before(time.Now().UTC()) {
		return dom.Task{}, problem.Invalid("due_date is in the past")
	}

	t, err := s.repo.Create(ctx, userID, dom.Task{
		Title:       title,
		Description: desc,
		DueDate:     dueDate,
		ListID:      listID,
	})
	if err != nil {
		// The insert selects from the owner's live lists; no row means
		// the target list is missing, deleted, or someone else's.
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, problem.NotFound("ToDoList", listID)
		}
		return dom.Task{}, err
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

// ListByList returns one page of a list's tasks plus the total count.
// Soft-deleted tasks are never included.
func (s *TaskService) ListByList(ctx context.Context, userID, listID int64, page, perPage int) ([]dom.Task, int64, error) {
	page, perPage = NormalizePage(page, perPage)
	if _, err := s.lists.GetByID(ctx, userID, listID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, problem.NotFound("ToDoList", listID)
		}
		return nil, 0, err
	}
	if s.cache != nil {
		key := fmt.Sprintf("tasks:%d:%d:%d:%d", userID, listID, page, perPage)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if p, err := s.cache.GetTasks(ctx, userID, listID, page, perPage); err == nil && p != nil {
				return *p, nil
			}
			items, total, err := s.repo.ListByList(ctx, userID, listID, perPage, (page-1)*perPage)
			if err != nil {
				return nil, err
			}
			p := cache.Page[dom.Task]{Items: items, Total: total}
			_ = s.cache.SetTasks(ctx, userID, listID, page, perPage, p)
			return p, nil
		})
		if err != nil {
			return nil, 0, err
		}
		p := v.(cache.Page[dom.Task])
		return p.Items, p.Total, nil
	}
	return s.repo.ListByList(ctx, userID, listID, perPage, (page-1)*perPage)
}

// GetByID returns the task. With includeDeleted, soft-deleted tasks are
// still retrievable by direct id lookup (audit access); otherwise they
// behave exactly like missing ones.
func (s *TaskService) GetByID(ctx context.Context, userID, id int64, includeDeleted bool) (dom.Task, error) {
	var (
		t   dom.Task
		err error
	)
	if includeDeleted {
		t, err = s.repo.GetByIDAny(ctx, userID, id)
	} else {
		t, err = s.repo.GetByID(ctx, userID, id)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, problem.NotFound("Task", id)
		}
		return dom.Task{}, err
	}
	return t, nil
}

// Update applies a partial update. A clearDue of true removes the due
// date; otherwise a non-nil dueDate replaces it and nil keeps it.
func (s *TaskService) Update(ctx context.Context, userID, id int64, title, desc *string, dueDate *time.Time, clearDue bool, listID *int64) (dom.Task, error) {
	existing, err := s.GetByID(ctx, userID, id, false)
	if err != nil {
		return dom.Task{}, err
	}
	patch := existing
	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return dom.Task{}, problem.Invalid("title is required")
		}
		patch.Title = trimmed
	}
	if desc != nil {
		patch.Description = strings.TrimSpace(*desc)
	}
	if clearDue {
		patch.DueDate = nil
	} else if dueDate != nil {
		if dueDate.Before(time.Now().UTC()) {
			return dom.Task{}, problem.Invalid("due_date is in the past")
		}
		patch.DueDate = dueDate
	}
	if listID != nil {
		// Reassignment only within the same owner; a foreign or deleted
		// target list is a disallowed operation, not a missing task.
		if _, err := s.lists.GetByID(ctx, userID, *listID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return dom.Task{}, problem.Invalid(fmt.Sprintf("cannot move task to list %d", *listID))
			}
			return dom.Task{}, err
		}
		patch.ListID = *listID
	}
	t, err := s.repo.Update(ctx, userID, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, problem.NotFound("Task", id)
		}
		return dom.Task{}, err
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.SoftDelete(ctx, userID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return problem.NotFound("Task", id)
		}
		return err
	}
	s.invalidateCache(ctx, userID)
	return nil
}

// Timeline runs the full pipeline: fetch task, classify its due-date
// proximity, build the notification payload. The interval is computed
// fresh on every call and never cached or stored.
func (s *TaskService) Timeline(ctx context.Context, userID, id int64) (dom.Notification, error) {
	t, err := s.GetByID(ctx, userID, id, false)
	if err != nil {
		return dom.Notification{}, err
	}
	iv, err := s.engine.Proximity(&t)
	if err != nil {
		return dom.Notification{}, err
	}
	return timeline.BuildNotification(iv), nil
}

func (s *TaskService) invalidateCache(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.InvalidateOwner(ctx, userID)
	}
}
