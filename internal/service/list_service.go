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

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

const (
	// The original system paginated by 5; kept as the default page size.
	DefaultPerPage = 5
	MaxPerPage     = 100
)

// NormalizePage clamps page/perPage to sane bounds.
func NormalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

// ListService handles to-do list CRUD.
type ListService struct {
	repo  repo.ListRepo
	cache *cache.TaskCache
	sf    singleflight.Group
}

// NewListService creates a ListService. If c is nil, caching is disabled.
func NewListService(r repo.ListRepo, c *cache.TaskCache) *ListService {
	return &ListService{repo: r, cache: c}
}

func (s *ListService) Create(ctx context.Context, userID int64, name string, dueDate *time.Time, status dom.ListStatus) (dom.ToDoList, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return dom.ToDoList{}, problem.Invalid("name is required")
	}
	if status == "" {
		status = dom.StatusPending
	}
	if !status.Valid() {
		return dom.ToDoList{}, problem.Invalid(fmt.Sprintf("unknown status %q", status))
	}
	if dueDate != nil && dueDate.Before(time.Now().UTC()) {
		return dom.ToDoList{}, problem.Invalid("due_date is in the past")
	}

	l, err := s.repo.Create(ctx, dom.ToDoList{
		Name:    name,
		DueDate: dueDate,
		Status:  status,
		UserID:  userID,
	})
	if err != nil {
		return dom.ToDoList{}, err
	}
	s.invalidateCache(ctx, userID)
	return l, nil
}

// List returns one page of the user's lists plus the total count.
func (s *ListService) List(ctx context.Context, userID int64, page, perPage int) ([]dom.ToDoList, int64, error) {
	page, perPage = NormalizePage(page, perPage)
	if s.cache != nil {
		key := fmt.Sprintf("lists:%d:%d:%d", userID, page, perPage)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if p, err := s.cache.GetLists(ctx, userID, page, perPage); err == nil && p != nil {
				return *p, nil
			}
			items, total, err := s.repo.ListByOwner(ctx, userID, perPage, (page-1)*perPage)
			if err != nil {
				return nil, err
			}
			p := cache.Page[dom.ToDoList]{Items: items, Total: total}
			_ = s.cache.SetLists(ctx, userID, page, perPage, p)
			return p, nil
		})
		if err != nil {
			return nil, 0, err
		}
		p := v.(cache.Page[dom.ToDoList])
		return p.Items, p.Total, nil
	}
	return s.repo.ListByOwner(ctx, userID, perPage, (page-1)*perPage)
}

func (s *ListService) GetByID(ctx context.Context, userID, id int64) (dom.ToDoList, error) {
	l, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.ToDoList{}, problem.NotFound("ToDoList", id)
		}
		return dom.ToDoList{}, err
	}
	return l, nil
}

func (s *ListService) Update(ctx context.Context, userID, id int64, name *string, dueDate *time.Time, status *dom.ListStatus) (dom.ToDoList, error) {
	existing, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return dom.ToDoList{}, err
	}
	patch := existing
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return dom.ToDoList{}, problem.Invalid("name is required")
		}
		patch.Name = trimmed
	}
	if dueDate != nil {
		if dueDate.Before(time.Now().UTC()) {
			return dom.ToDoList{}, problem.Invalid("due_date is in the past")
		}
		patch.DueDate = dueDate
	}
	if status != nil {
		if !status.Valid() {
			return dom.ToDoList{}, problem.Invalid(fmt.Sprintf("unknown status %q", *status))
		}
		patch.Status = *status
	}
	l, err := s.repo.Update(ctx, userID, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.ToDoList{}, problem.NotFound("ToDoList", id)
		}
		return dom.ToDoList{}, err
	}
	s.invalidateCache(ctx, userID)
	return l, nil
}

func (s *ListService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.SoftDelete(ctx, userID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return problem.NotFound("ToDoList", id)
		}
		return err
	}
	s.invalidateCache(ctx, userID)
	return nil
}

func (s *ListService) invalidateCache(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.InvalidateOwner(ctx, userID)
	}
}
