package repo

import (
	"context"
	"time"

	dom "github.com/AlliAyobami/myToDo/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TaskRepo provides task persistence. Every method is scoped to the
// owner: ownership goes through the task's list, checked with an
// explicit join (no implicit relation traversal).
type TaskRepo interface {
	Create(ctx context.Context, userID int64, t dom.Task) (dom.Task, error)
	GetByID(ctx context.Context, userID, id int64) (dom.Task, error)
	// GetByIDAny also returns soft-deleted tasks (audit lookups).
	GetByIDAny(ctx context.Context, userID, id int64) (dom.Task, error)
	ListByList(ctx context.Context, userID, listID int64, limit, offset int) ([]dom.Task, int64, error)
	Update(ctx context.Context, userID, id int64, patch dom.Task) (dom.Task, error)
	SoftDelete(ctx context.Context, userID, id int64) error
}

type PGTaskRepo struct {
	db *pgxpool.Pool
}

func NewPGTaskRepo(db *pgxpool.Pool) *PGTaskRepo {
	return &PGTaskRepo{db: db}
}

const taskColumns = `t.id, t.title, t.description, t.due_date, t.to_do_list_id, t.created_at, t.updated_at, t.deleted_at`

func scanTask(row pgx.Row) (dom.Task, error) {
	var t dom.Task
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.DueDate, &t.ListID,
		&t.CreatedAt, &t.UpdatedAt, &t.DeletedAt)
	return t, err
}

func (r *PGTaskRepo) Create(ctx context.Context, userID int64, t dom.Task) (dom.Task, error) {
	// The list subquery both resolves the FK and enforces ownership:
	// no matching live list -> no row inserted -> ErrNoRows.
	query := `
		INSERT INTO tasks (title, description, due_date, to_do_list_id)
		SELECT $2, $3, $4, l.id FROM to_do_lists l
		WHERE l.id = $5 AND l.user_id = $1 AND l.deleted_at IS NULL
		RETURNING id, title, description, due_date, to_do_list_id, created_at, updated_at, deleted_at`
	return scanTask(r.db.QueryRow(ctx, query, userID, t.Title, t.Description, t.DueDate, t.ListID))
}

func (r *PGTaskRepo) GetByID(ctx context.Context, userID, id int64) (dom.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		JOIN to_do_lists l ON l.id = t.to_do_list_id AND l.deleted_at IS NULL
		WHERE t.id = $2 AND l.user_id = $1 AND t.deleted_at IS NULL`
	return scanTask(r.db.QueryRow(ctx, query, userID, id))
}

func (r *PGTaskRepo) GetByIDAny(ctx context.Context, userID, id int64) (dom.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		JOIN to_do_lists l ON l.id = t.to_do_list_id
		WHERE t.id = $2 AND l.user_id = $1`
	return scanTask(r.db.QueryRow(ctx, query, userID, id))
}

func (r *PGTaskRepo) ListByList(ctx context.Context, userID, listID int64, limit, offset int) ([]dom.Task, int64, error) {
	query := `
		SELECT ` + taskColumns + `, COUNT(*) OVER() AS total
		FROM tasks t
		JOIN to_do_lists l ON l.id = t.to_do_list_id AND l.deleted_at IS NULL
		WHERE t.to_do_list_id = $2 AND l.user_id = $1 AND t.deleted_at IS NULL
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.db.Query(ctx, query, userID, listID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var (
		list  []dom.Task
		total int64
	)
	for rows.Next() {
		var t dom.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.DueDate, &t.ListID,
			&t.CreatedAt, &t.UpdatedAt, &t.DeletedAt, &total); err != nil {
			return nil, 0, err
		}
		list = append(list, t)
	}
	return list, total, rows.Err()
}

func (r *PGTaskRepo) Update(ctx context.Context, userID, id int64, patch dom.Task) (dom.Task, error) {
	// Reassignment target (patch.ListID) must belong to the same owner;
	// the second join in the USING clause guarantees it.
	query := `
		UPDATE tasks t
		SET title = $3, description = $4, due_date = $5, to_do_list_id = target.id, updated_at = NOW()
		FROM to_do_lists cur, to_do_lists target
		WHERE t.id = $2 AND t.deleted_at IS NULL
		  AND cur.id = t.to_do_list_id AND cur.user_id = $1 AND cur.deleted_at IS NULL
		  AND target.id = $6 AND target.user_id = $1 AND target.deleted_at IS NULL
		RETURNING t.id, t.title, t.description, t.due_date, t.to_do_list_id, t.created_at, t.updated_at, t.deleted_at`
	return scanTask(r.db.QueryRow(ctx, query, userID, id, patch.Title, patch.Description, patch.DueDate, patch.ListID))
}

func (r *PGTaskRepo) SoftDelete(ctx context.Context, userID, id int64) error {
	now := time.Now().UTC()
	tag, err := r.db.Exec(ctx, `
		UPDATE tasks t SET deleted_at = $3, updated_at = $3
		FROM to_do_lists l
		WHERE t.id = $2 AND t.deleted_at IS NULL
		  AND l.id = t.to_do_list_id AND l.user_id = $1 AND l.deleted_at IS NULL`,
		userID, id, now)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
