package repo

import (
	"context"
	"time"

	dom "github.com/AlliAyobami/myToDo/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ListRepo provides to-do list persistence, owner-scoped.
type ListRepo interface {
	Create(ctx context.Context, l dom.ToDoList) (dom.ToDoList, error)
	GetByID(ctx context.Context, userID, id int64) (dom.ToDoList, error)
	ListByOwner(ctx context.Context, userID int64, limit, offset int) ([]dom.ToDoList, int64, error)
	Update(ctx context.Context, userID, id int64, patch dom.ToDoList) (dom.ToDoList, error)
	SoftDelete(ctx context.Context, userID, id int64) error
}

type PGListRepo struct {
	db *pgxpool.Pool
}

func NewPGListRepo(db *pgxpool.Pool) *PGListRepo {
	return &PGListRepo{db: db}
}

const listColumns = `id, name, due_date, status, user_id, created_at, updated_at, deleted_at`

func scanList(row pgx.Row) (dom.ToDoList, error) {
	var l dom.ToDoList
	err := row.Scan(&l.ID, &l.Name, &l.DueDate, &l.Status, &l.UserID,
		&l.CreatedAt, &l.UpdatedAt, &l.DeletedAt)
	return l, err
}

func (r *PGListRepo) Create(ctx context.Context, l dom.ToDoList) (dom.ToDoList, error) {
	query := `
		INSERT INTO to_do_lists (name, due_date, status, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + listColumns
	return scanList(r.db.QueryRow(ctx, query, l.Name, l.DueDate, l.Status, l.UserID))
}

func (r *PGListRepo) GetByID(ctx context.Context, userID, id int64) (dom.ToDoList, error) {
	query := `
		SELECT ` + listColumns + `
		FROM to_do_lists WHERE id = $2 AND user_id = $1 AND deleted_at IS NULL`
	return scanList(r.db.QueryRow(ctx, query, userID, id))
}

func (r *PGListRepo) ListByOwner(ctx context.Context, userID int64, limit, offset int) ([]dom.ToDoList, int64, error) {
	query := `
		SELECT ` + listColumns + `, COUNT(*) OVER() AS total
		FROM to_do_lists WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var (
		list  []dom.ToDoList
		total int64
	)
	for rows.Next() {
		var l dom.ToDoList
		if err := rows.Scan(&l.ID, &l.Name, &l.DueDate, &l.Status, &l.UserID,
			&l.CreatedAt, &l.UpdatedAt, &l.DeletedAt, &total); err != nil {
			return nil, 0, err
		}
		list = append(list, l)
	}
	return list, total, rows.Err()
}

func (r *PGListRepo) Update(ctx context.Context, userID, id int64, patch dom.ToDoList) (dom.ToDoList, error) {
	query := `
		UPDATE to_do_lists SET name = $3, due_date = $4, status = $5, updated_at = NOW()
		WHERE id = $2 AND user_id = $1 AND deleted_at IS NULL
		RETURNING ` + listColumns
	return scanList(r.db.QueryRow(ctx, query, userID, id, patch.Name, patch.DueDate, patch.Status))
}

func (r *PGListRepo) SoftDelete(ctx context.Context, userID, id int64) error {
	now := time.Now().UTC()
	tag, err := r.db.Exec(ctx, `
		UPDATE to_do_lists SET deleted_at = $3, updated_at = $3
		WHERE id = $2 AND user_id = $1 AND deleted_at IS NULL`,
		userID, id, now)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
