package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	dom "github.com/AlliAyobami/myToDo/internal/domain"

	"github.com/redis/go-redis/v9"
)

// Page is a cached paginated result.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}

// TaskCache caches paginated list/task query results in Redis, keyed
// per owner so invalidation on a write only evicts that user's pages.
type TaskCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTaskCache returns a new TaskCache.
func NewTaskCache(rdb *redis.Client, ttl time.Duration) *TaskCache {
	return &TaskCache{rdb: rdb, ttl: ttl}
}

func listsKey(userID int64, page, perPage int) string {
	return fmt.Sprintf("todo:u%d:lists:p%d:n%d", userID, page, perPage)
}

func tasksKey(userID, listID int64, page, perPage int) string {
	return fmt.Sprintf("todo:u%d:l%d:tasks:p%d:n%d", userID, listID, page, perPage)
}

func ownerPattern(userID int64) string {
	return fmt.Sprintf("todo:u%d:*", userID)
}

// GetLists returns the cached lists page, or nil on miss.
func (c *TaskCache) GetLists(ctx context.Context, userID int64, page, perPage int) (*Page[dom.ToDoList], error) {
	return get[dom.ToDoList](ctx, c.rdb, listsKey(userID, page, perPage))
}

// SetLists stores a lists page.
func (c *TaskCache) SetLists(ctx context.Context, userID int64, page, perPage int, p Page[dom.ToDoList]) error {
	return set(ctx, c.rdb, listsKey(userID, page, perPage), p, c.ttl)
}

// GetTasks returns the cached tasks page for a list, or nil on miss.
func (c *TaskCache) GetTasks(ctx context.Context, userID, listID int64, page, perPage int) (*Page[dom.Task], error) {
	return get[dom.Task](ctx, c.rdb, tasksKey(userID, listID, page, perPage))
}

// SetTasks stores a tasks page.
func (c *TaskCache) SetTasks(ctx context.Context, userID, listID int64, page, perPage int, p Page[dom.Task]) error {
	return set(ctx, c.rdb, tasksKey(userID, listID, page, perPage), p, c.ttl)
}

// InvalidateOwner removes every cached page of the given user
// (cache invalidation on write).
func (c *TaskCache) InvalidateOwner(ctx context.Context, userID int64) error {
	iter := c.rdb.Scan(ctx, 0, ownerPattern(userID), 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func get[T any](ctx context.Context, rdb *redis.Client, key string) (*Page[T], error) {
	b, err := rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var p Page[T]
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func set[T any](ctx context.Context, rdb *redis.Client, key string, p Page[T], ttl time.Duration) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, b, ttl).Err()
}
