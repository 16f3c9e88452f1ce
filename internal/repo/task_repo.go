package repo

import (
	"context"

	dom "Tasker/internal/domain"
)

// TaskRepo provides task persistence. Every operation except Exists takes
// the owner id and only touches rows belonging to that owner.
type TaskRepo interface {
	Create(ctx context.Context, ownerID int64, title string, description *string) (dom.Task, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]dom.Task, error)
	GetOwned(ctx context.Context, id, ownerID int64) (dom.Task, error)
	Update(ctx context.Context, id, ownerID int64, patch dom.TaskPatch) (dom.Task, error)
	Toggle(ctx context.Context, id, ownerID int64) (dom.Task, error)
	Delete(ctx context.Context, id, ownerID int64) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

const taskColumns = `id, owner_id, title, description, completed, created_at, updated_at`

type PGTaskRepo struct {
	db Querier
}

func NewPGTaskRepo(db Querier) *PGTaskRepo {
	return &PGTaskRepo{db: db}
}

func scanTask(row interface{ Scan(dest ...any) error }) (dom.Task, error) {
	var t dom.Task
	err := row.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.Completed,
		&t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *PGTaskRepo) Create(ctx context.Context, ownerID int64, title string, description *string) (dom.Task, error) {
	query := `
		INSERT INTO tasks (owner_id, title, description)
		VALUES ($1, $2, $3)
		RETURNING ` + taskColumns
	return scanTask(r.db.QueryRow(ctx, query, ownerID, title, description))
}

// ListByOwner returns the owner's tasks newest first; id DESC breaks
// equal-timestamp ties in reverse insertion order.
func (r *PGTaskRepo) ListByOwner(ctx context.Context, ownerID int64) ([]dom.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// GetOwned returns the task only if it exists and belongs to ownerID;
// pgx.ErrNoRows otherwise.
func (r *PGTaskRepo) GetOwned(ctx context.Context, id, ownerID int64) (dom.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks WHERE id = $1 AND owner_id = $2`
	return scanTask(r.db.QueryRow(ctx, query, id, ownerID))
}

// Update applies a partial patch; nil fields keep their current value.
// updated_at is refreshed unconditionally.
func (r *PGTaskRepo) Update(ctx context.Context, id, ownerID int64, patch dom.TaskPatch) (dom.Task, error) {
	query := `
		UPDATE tasks SET
			title       = COALESCE($3, title),
			description = COALESCE($4, description),
			completed   = COALESCE($5, completed),
			updated_at  = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + taskColumns
	return scanTask(r.db.QueryRow(ctx, query, id, ownerID, patch.Title, patch.Description, patch.Completed))
}

func (r *PGTaskRepo) Toggle(ctx context.Context, id, ownerID int64) (dom.Task, error) {
	query := `
		UPDATE tasks SET completed = NOT completed, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + taskColumns
	return scanTask(r.db.QueryRow(ctx, query, id, ownerID))
}

// Delete removes the owner's task and reports whether a row was hit.
func (r *PGTaskRepo) Delete(ctx context.Context, id, ownerID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Exists is the unscoped probe behind the Forbidden/NotFound split: it
// answers whether the id exists under any owner.
func (r *PGTaskRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tasks WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
