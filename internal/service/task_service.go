package service

import (
	"context"
	"errors"
	"strconv"

	"Tasker/internal/cache"
	dom "Tasker/internal/domain"
	"Tasker/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var (
	ErrNotFound  = errors.New("task not found")
	ErrForbidden = errors.New("task belongs to another user")
)

// TaskService applies ownership rules on top of TaskRepo. Every operation
// takes the acting user's id and only that user's tasks are reachable.
type TaskService struct {
	repo  repo.TaskRepo
	cache *cache.TaskCache
	sf    singleflight.Group
}

// NewTaskService creates a TaskService. If c is nil, caching is disabled.
func NewTaskService(r repo.TaskRepo, c *cache.TaskCache) *TaskService {
	return &TaskService{repo: r, cache: c}
}

// Create stores the title and description exactly as given: the API
// contract bounds raw length only and never normalizes whitespace.
func (s *TaskService) Create(ctx context.Context, ownerID int64, title string, description *string) (dom.Task, error) {
	t, err := s.repo.Create(ctx, ownerID, title, description)
	if err != nil {
		return dom.Task{}, err
	}
	s.invalidateCache(ctx, ownerID)
	return t, nil
}

// List returns the owner's tasks newest first. Concurrent cache misses for
// the same owner collapse into a single database query.
func (s *TaskService) List(ctx context.Context, ownerID int64) ([]dom.Task, error) {
	if s.cache == nil {
		return s.repo.ListByOwner(ctx, ownerID)
	}
	key := "list:" + strconv.FormatInt(ownerID, 10)
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		if list, err := s.cache.GetList(ctx, ownerID); err == nil && list != nil {
			return list, nil
		}
		list, err := s.repo.ListByOwner(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		_ = s.cache.SetList(ctx, ownerID, list)
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.Task), nil
}

func (s *TaskService) Get(ctx context.Context, ownerID, id int64) (dom.Task, error) {
	t, err := s.repo.GetOwned(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, s.classifyMiss(ctx, id)
		}
		return dom.Task{}, err
	}
	return t, nil
}

func (s *TaskService) Update(ctx context.Context, ownerID, id int64, patch dom.TaskPatch) (dom.Task, error) {
	t, err := s.repo.Update(ctx, id, ownerID, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, s.classifyMiss(ctx, id)
		}
		return dom.Task{}, err
	}
	s.invalidateCache(ctx, ownerID)
	return t, nil
}

func (s *TaskService) Toggle(ctx context.Context, ownerID, id int64) (dom.Task, error) {
	t, err := s.repo.Toggle(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, s.classifyMiss(ctx, id)
		}
		return dom.Task{}, err
	}
	s.invalidateCache(ctx, ownerID)
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, ownerID, id int64) error {
	deleted, err := s.repo.Delete(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return s.classifyMiss(ctx, id)
	}
	s.invalidateCache(ctx, ownerID)
	return nil
}

// classifyMiss decides between Forbidden and NotFound after an owner-scoped
// lookup came up empty: an unscoped probe tells whether the id exists under
// another owner. This deliberately reveals that the id exists in exchange
// for precise client errors.
func (s *TaskService) classifyMiss(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if exists {
		return ErrForbidden
	}
	return ErrNotFound
}

func (s *TaskService) invalidateCache(ctx context.Context, ownerID int64) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, ownerID)
	}
}
